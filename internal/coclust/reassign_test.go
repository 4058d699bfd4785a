package coclust

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coclust/coclust/internal/gpukernel"
)

func TestArgmin_PrefersCurrentOnTie(t *testing.T) {
	dist := []float32{2, 1, 1, 3}
	require.Equal(t, 2, argmin(dist, 2))
	require.Equal(t, 1, argmin(dist, 0))
}

func TestArgmin_UniqueMinimum(t *testing.T) {
	dist := []float32{5, 1, 9}
	require.Equal(t, 1, argmin(dist, 0))
}

func TestReassignRows_MovesRowToBetterCluster(t *testing.T) {
	data := []float32{
		1, 1, 0, 0,
		1, 1, 0, 0,
		0, 0, 2, 2,
		1, 1, 0, 0, // row 3 actually belongs with row-cluster 0, mislabeled as 1
	}
	m, err := NewMatrixFromData(4, 4, data)
	require.NoError(t, err)

	cl := Labels{0, 0, 1, 1}
	a := newBlockMatrix(2, 2)
	a.Data[0*2+0] = 1 // row-cluster 0, col-cluster 0
	a.Data[1*2+1] = 2 // row-cluster 1, col-cluster 1

	pool, err := gpukernel.NewPool(2)
	require.NoError(t, err)

	localRl := []int32{0, 0, 1, 1}
	changed, _, err := reassignRows(context.Background(), pool, m, cl, localRl, a, 0)
	require.NoError(t, err)
	require.Equal(t, 1, changed)
	require.Equal(t, int32(0), localRl[3])
}

func TestReassignCols_MovesColToBetterCluster(t *testing.T) {
	data := []float32{
		1, 1, 0, 1,
		1, 1, 0, 1,
		0, 0, 2, 0,
		0, 0, 2, 0,
	}
	m, err := NewMatrixFromData(4, 4, data)
	require.NoError(t, err)

	rl := Labels{0, 0, 1, 1}
	a := newBlockMatrix(2, 2)
	a.Data[0*2+0] = 1
	a.Data[1*2+1] = 2

	pool, err := gpukernel.NewPool(2)
	require.NoError(t, err)

	localCl := []int32{0, 0, 1, 1} // col 3 should move to col-cluster 0
	changed, _, err := reassignCols(context.Background(), pool, m, rl, localCl, a, 0)
	require.NoError(t, err)
	require.Equal(t, 1, changed)
	require.Equal(t, int32(0), localCl[3])
}
