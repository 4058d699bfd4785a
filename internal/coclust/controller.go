package coclust

import (
	"context"
	"time"

	"github.com/coclust/coclust/internal/collective"
	"github.com/coclust/coclust/internal/gpukernel"
	"github.com/coclust/coclust/internal/partition"
)

// Cluster runs co-clustering to convergence or until MaxIterations is
// reached, whichever comes first. rl and cl hold the
// initial row and column labels on entry and are overwritten in place
// with the final labels on return.
//
// Every iteration is itself distributed across a simulated world of
// Ranks processes (default 4), each driving a Workers-wide simulated
// GPU-thread pool (default GOMAXPROCS) over its local row/column slab;
// see internal/collective and internal/gpukernel.
func Cluster(ctx context.Context, m *Matrix, rl, cl Labels, r, c int, opts ...Option) (Result, error) {
	if m == nil {
		return Result{}, ErrInvalidDimensions
	}
	if len(rl) != m.NumRows || len(cl) != m.NumCols {
		return Result{}, ErrShapeMismatch
	}
	if r <= 0 || r > m.NumRows || c <= 0 || c > m.NumCols {
		return Result{}, ErrInvalidLabelCount
	}
	if !rl.InRange(r) || !cl.InRange(c) {
		return Result{}, ErrInvalidLabelCount
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rowPlan, err := partition.New(m.NumRows, cfg.ranks)
	if err != nil {
		return Result{}, err
	}
	colPlan, err := partition.New(m.NumCols, cfg.ranks)
	if err != nil {
		return Result{}, err
	}

	world, err := collective.New(cfg.ranks)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	var result Result

	for iteration := 0; iteration < cfg.maxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		iterStart := time.Now()

		var (
			finalRl, finalCl       Labels
			rowChanges, colChanges int
			totalError             float64
		)

		runErr := world.Run(ctx, func(ctx context.Context, comm *collective.Comm) error {
			pool, err := gpukernel.NewPool(cfg.workers)
			if err != nil {
				return err
			}

			rank := comm.Rank()
			rowLo, rowHi := rowPlan.Slab(rank)
			colLo, colHi := colPlan.Slab(rank)

			localRl := rl.Clone()
			localCl := cl.Clone()

			a, err := computeBlockAverages(ctx, pool, comm, m, localRl, localCl, rowLo, rowHi, r, c)
			if err != nil {
				return err
			}

			if rank == 0 {
				if e := cfg.logger.Debug(); e.Enabled() {
					e.Str("block_matrix", formatBlockMatrix(a)).Msg("block averages")
				}
			}

			rowSlab := localRl[rowLo:rowHi].Clone()
			rowLocalChanged, _, err := reassignRows(ctx, pool, m, localCl, rowSlab, a, rowLo)
			if err != nil {
				return err
			}

			gatheredRl, err := comm.AllGatherVarying(ctx, rowSlab, rowPlan.Counts, rowPlan.Disp)
			if err != nil {
				return err
			}
			localRl = Labels(gatheredRl)

			rowChangeTotal, err := comm.AllReduceScalar(ctx, rowLocalChanged)
			if err != nil {
				return err
			}

			if err := comm.Barrier(ctx); err != nil {
				return err
			}

			colSlab := localCl[colLo:colHi].Clone()
			colLocalChanged, colLocalError, err := reassignCols(ctx, pool, m, localRl, colSlab, a, colLo)
			if err != nil {
				return err
			}

			gatheredCl, err := comm.AllGatherVarying(ctx, colSlab, colPlan.Counts, colPlan.Disp)
			if err != nil {
				return err
			}
			localCl = Labels(gatheredCl)

			colChangeTotal, err := comm.AllReduceScalar(ctx, colLocalChanged)
			if err != nil {
				return err
			}

			errVec, err := comm.AllReduceSum(ctx, []float64{colLocalError})
			if err != nil {
				return err
			}

			if rank == 0 {
				finalRl = localRl
				finalCl = localCl
				rowChanges = rowChangeTotal
				colChanges = colChangeTotal
				totalError = errVec[0]
			}

			return nil
		})
		if runErr != nil {
			return Result{}, runErr
		}

		copy(rl, finalRl)
		copy(cl, finalCl)

		stats := IterationStats{
			Iteration:        iteration,
			RowChanges:       rowChanges,
			ColChanges:       colChanges,
			TotalError:       totalError,
			MeanSquaredError: totalError / float64(m.NumRows*m.NumCols),
			Duration:         time.Since(iterStart),
			Converged:        rowChanges == 0 && colChanges == 0,
		}

		cfg.logger.Info().
			Int("iteration", stats.Iteration).
			Int("row_changes", stats.RowChanges).
			Int("col_changes", stats.ColChanges).
			Float64("total_error", stats.TotalError).
			Dur("duration", stats.Duration).
			Msg("iteration complete")

		if cfg.onIteration != nil {
			cfg.onIteration(stats)
		}

		result.Iterations = iteration + 1
		result.Final = stats

		if stats.Converged {
			result.Converged = true
			break
		}
	}

	result.Elapsed = time.Since(start)

	return result, nil
}
