package matio

import "errors"

// ErrTruncatedFile indicates a matrix or labels file ended before its
// declared header counts were satisfied.
var ErrTruncatedFile = errors.New("matio: file truncated")

// ErrMalformedLabels indicates the labels file's header or body could
// not be parsed as the expected whitespace-separated integers.
var ErrMalformedLabels = errors.New("matio: malformed labels file")
