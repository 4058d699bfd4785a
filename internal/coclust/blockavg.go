package coclust

import (
	"context"

	"github.com/coclust/coclust/internal/collective"
	"github.com/coclust/coclust/internal/gpukernel"
)

// computeBlockAverages fuses cluster-id materialization directly into
// local accumulation, fanned out over pool across the local row slab
// [rowLo, rowHi); the resulting per-worker partials are combined on the
// host, then globally sum-reduced across ranks via comm before averaging.
func computeBlockAverages(
	ctx context.Context,
	pool *gpukernel.Pool,
	comm *collective.Comm,
	m *Matrix,
	rl, cl Labels,
	rowLo, rowHi, r, c int,
) (*BlockMatrix, error) {
	numClusters := r * c

	partialSums := make([][]float64, pool.Workers())
	partialCounts := make([][]int32, pool.Workers())
	for w := range partialSums {
		partialSums[w] = make([]float64, numClusters)
		partialCounts[w] = make([]int32, numClusters)
	}

	err := pool.Launch(ctx, rowHi-rowLo, func(worker, lo, hi int) error {
		sums := partialSums[worker]
		counts := partialCounts[worker]
		for i := rowLo + lo; i < rowLo+hi; i++ {
			rowLabel := int(rl[i])
			row := m.Row(i)
			for j, v := range row {
				cid := rowLabel*c + int(cl[j])
				sums[cid] += float64(v)
				counts[cid]++
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	localSums := make([]float64, numClusters)
	localCounts := make([]int32, numClusters)
	for w := range partialSums {
		for k := 0; k < numClusters; k++ {
			localSums[k] += partialSums[w][k]
			localCounts[k] += partialCounts[w][k]
		}
	}

	globalSums, err := comm.AllReduceSum(ctx, localSums)
	if err != nil {
		return nil, err
	}
	globalCounts, err := comm.AllReduceCount(ctx, localCounts)
	if err != nil {
		return nil, err
	}

	a := newBlockMatrix(r, c)
	for k := 0; k < numClusters; k++ {
		if globalCounts[k] > 0 {
			a.Data[k] = float32(globalSums[k] / float64(globalCounts[k]))
		}
	}

	return a, nil
}
