package coclust

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMatrix_RejectsNonPositiveDimensions(t *testing.T) {
	_, err := NewMatrix(0, 3)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewMatrix(3, -1)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewMatrixFromData_RejectsShapeMismatch(t *testing.T) {
	_, err := NewMatrixFromData(2, 2, []float32{1, 2, 3})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMatrix_AtAndRow(t *testing.T) {
	m, err := NewMatrixFromData(2, 3, []float32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float32(6), v)

	require.Equal(t, []float32{4, 5, 6}, m.Row(1))
}

func TestMatrix_At_OutOfBounds(t *testing.T) {
	m, err := NewMatrix(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestLabels_CloneIsIndependent(t *testing.T) {
	l := Labels{0, 1, 2}
	c := l.Clone()
	c[0] = 9
	require.Equal(t, int32(0), l[0])
}

func TestLabels_InRange(t *testing.T) {
	require.True(t, Labels{0, 1, 2}.InRange(3))
	require.False(t, Labels{0, 1, 3}.InRange(3))
	require.False(t, Labels{-1, 0}.InRange(3))
}

func TestMatrix_Dense(t *testing.T) {
	m, err := NewMatrixFromData(2, 2, []float32{1, 2, 3, 4})
	require.NoError(t, err)

	d := m.Dense()
	rows, cols := d.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, 4.0, d.At(1, 1))
}

func TestBlockMatrix_At(t *testing.T) {
	a := newBlockMatrix(2, 3)
	a.Data[1*3+2] = 7
	require.Equal(t, float32(7), a.At(1, 2))
}
