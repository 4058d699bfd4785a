// Package coclust implements the core co-clustering engine: the
// iterative refinement loop that alternately recomputes the R×C
// block-average matrix and reassigns rows, then columns, to the label
// minimizing reconstruction error, until convergence or an iteration cap.
//
// The package owns the data model (Matrix, Labels, BlockMatrix), the two
// reassignment kernels, and the iteration controller; it delegates
// cross-rank combination to internal/collective and within-rank
// data-parallel reduction to internal/gpukernel.
package coclust
