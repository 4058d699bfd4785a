package partition

import "errors"

// Sentinel errors for Plan's programming-error contract: length<0 or
// workers<=0 is a caller bug, not a runtime condition.
var (
	// ErrInvalidLength indicates a negative length was requested.
	ErrInvalidLength = errors.New("partition: length must be >= 0")

	// ErrInvalidWorkers indicates a non-positive worker count was requested.
	ErrInvalidWorkers = errors.New("partition: workers must be > 0")
)
