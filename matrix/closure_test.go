package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lasso/matrix"
)

func TestShortestPathClosure(t *testing.T) {
	// Path A-B-C plus isolated D.
	m, err := matrix.FromRows([]string{"A", "B", "C", "D"}, [][]float64{
		{0, 2, 0, 0},
		{2, 0, 3, 0},
		{0, 3, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	n, err := matrix.ShortestPathClosure(m)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	d, err := m.Distance("A", "C")
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)
	assert.Equal(t, [][2]int{{0, 3}, {1, 3}, {2, 3}}, m.Missing(), "D stays unreachable")

	n, err = matrix.ShortestPathClosure(m)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestShortestPathClosure_KeepsKnownEntries(t *testing.T) {
	// d(A,C)=10 is longer than A-B-C=3 but is known, so it stays.
	m, err := matrix.FromRows(nil, [][]float64{
		{0, 1, 10},
		{1, 0, 2},
		{10, 2, 0},
	})
	require.NoError(t, err)
	n, err := matrix.ShortestPathClosure(m)
	require.NoError(t, err)
	assert.Zero(t, n)
	v, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	_, err = matrix.ShortestPathClosure(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
