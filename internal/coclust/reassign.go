package coclust

import (
	"context"

	"github.com/coclust/coclust/internal/gpukernel"
)

// argmin computes the index of the smallest value in dist, breaking ties
// toward the smallest index, except that current is preferred whenever it
// is among the tied labels.
func argmin(dist []float32, current int) int {
	best := 0
	bestVal := dist[0]
	for k := 1; k < len(dist); k++ {
		if dist[k] < bestVal {
			best = k
			bestVal = dist[k]
		}
	}
	if dist[current] == bestVal {
		return current
	}

	return best
}

// reassignRows dispatches one simulated GPU thread per local row (fanned
// out over pool), each computing best(i) = argmin over the R
// row-labels of the squared reconstruction error against the current
// column labels, and writing the result back into localRl in place.
//
// Returns the count of local rows whose label changed and the sum, over
// local rows, of each row's best (minimum) distance.
func reassignRows(ctx context.Context, pool *gpukernel.Pool, m *Matrix, cl Labels, localRl []int32, a *BlockMatrix, rowOffset int) (changed int, sumError float64, err error) {
	partialChanged := make([]int, pool.Workers())
	partialError := make([]float64, pool.Workers())

	dist := make([][]float32, pool.Workers())
	for w := range dist {
		dist[w] = make([]float32, a.R)
	}

	err = pool.Launch(ctx, len(localRl), func(worker, lo, hi int) error {
		d := dist[worker]
		for li := lo; li < hi; li++ {
			row := m.Row(rowOffset + li)
			for r := 0; r < a.R; r++ {
				d[r] = 0
			}
			for j, v := range row {
				cj := int(cl[j])
				for r := 0; r < a.R; r++ {
					diff := a.At(r, cj) - v
					d[r] += diff * diff
				}
			}

			current := int(localRl[li])
			best := argmin(d, current)
			if best != current {
				localRl[li] = int32(best)
				partialChanged[worker]++
			}
			partialError[worker] += float64(d[best])
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	for w := range partialChanged {
		changed += partialChanged[w]
		sumError += partialError[w]
	}

	return changed, sumError, nil
}

// reassignCols is symmetric to reassignRows over the local column slab,
// using the already-refreshed global row labels rl.
func reassignCols(ctx context.Context, pool *gpukernel.Pool, m *Matrix, rl Labels, localCl []int32, a *BlockMatrix, colOffset int) (changed int, sumError float64, err error) {
	partialChanged := make([]int, pool.Workers())
	partialError := make([]float64, pool.Workers())

	dist := make([][]float32, pool.Workers())
	for w := range dist {
		dist[w] = make([]float32, a.C)
	}

	err = pool.Launch(ctx, len(localCl), func(worker, lo, hi int) error {
		d := dist[worker]
		for li := lo; li < hi; li++ {
			j := colOffset + li
			for c := 0; c < a.C; c++ {
				d[c] = 0
			}
			for i := 0; i < m.NumRows; i++ {
				ri := int(rl[i])
				v := m.Data[i*m.NumCols+j]
				for c := 0; c < a.C; c++ {
					diff := a.At(ri, c) - v
					d[c] += diff * diff
				}
			}

			current := int(localCl[li])
			best := argmin(d, current)
			if best != current {
				localCl[li] = int32(best)
				partialChanged[worker]++
			}
			partialError[worker] += float64(d[best])
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	for w := range partialChanged {
		changed += partialChanged[w]
		sumError += partialError[w]
	}

	return changed, sumError, nil
}
