// Package partition computes balanced, contiguous row and column slabs for
// a fixed number of simulated worker ranks.
//
// A Plan is a pure function of (length, workers): it never touches the
// matrix or the labels, and the same inputs always produce the same
// output — callers may compute a Plan once at startup and reuse it for
// every iteration.
package partition
