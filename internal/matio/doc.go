// Package matio implements the input/output surface a runnable
// co-clustering CLI needs: loading the dense binary matrix, loading and
// writing the text label files.
package matio
