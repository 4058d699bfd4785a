package coclust

import "time"

// IterationStats reports one refinement iteration's outcome.
type IterationStats struct {
	// Iteration is the 0-based iteration index.
	Iteration int
	// RowChanges is the number of rows whose label changed this iteration,
	// summed across every rank.
	RowChanges int
	// ColChanges is the number of columns whose label changed this iteration.
	ColChanges int
	// TotalError is the sum, over every matrix cell, of its squared
	// difference from this iteration's block-average matrix (computed before
	// any reassignment) at the cell's row label after the row phase and
	// column label after the column phase. When labels changed this
	// iteration, the block matrix is not recomputed for the new labeling.
	TotalError float64
	// MeanSquaredError is TotalError divided by the cell count.
	MeanSquaredError float64
	// Duration is the wall-clock time this iteration took.
	Duration time.Duration
	// Converged reports whether this was the last iteration because
	// RowChanges and ColChanges both reached zero (rather than because
	// the iteration cap was hit).
	Converged bool
}

// Result is Cluster's return value: the run's final stats plus the
// bookkeeping the caller needs to tell convergence apart from hitting
// the iteration cap.
type Result struct {
	// Iterations is the number of iterations actually run.
	Iterations int
	// Converged is true iff the run stopped because no label changed,
	// false if it stopped because MaxIterations was reached first.
	Converged bool
	// Elapsed is the total wall-clock duration of the run.
	Elapsed time.Duration
	// Final is the last iteration's stats.
	Final IterationStats
}
