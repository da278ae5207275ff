package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lasso/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromRows_Shape ensures that FromRows rejects empty, ragged and mislabelled input.
func TestFromRows_Shape(t *testing.T) {
	_, err := matrix.FromRows(nil, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows(nil, [][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromRows([]string{"A"}, [][]float64{{0, 1}, {1, 0}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows([]string{"A", "A"}, [][]float64{{0, 1}, {1, 0}})
	require.ErrorIs(t, err, matrix.ErrDuplicateTaxon)

	_, err = matrix.FromRows([]string{"A", ""}, [][]float64{{0, 1}, {1, 0}})
	require.ErrorIs(t, err, matrix.ErrEmptyTaxon)
}

// TestFromRows_Numeric covers the numeric ingestion policy.
func TestFromRows_Numeric(t *testing.T) {
	_, err := matrix.FromRows(nil, [][]float64{{0, -1}, {-1, 0}})
	require.ErrorIs(t, err, matrix.ErrBadWeight)

	_, err = matrix.FromRows(nil, [][]float64{{0, math.NaN()}, {1, 0}})
	require.ErrorIs(t, err, matrix.ErrBadWeight)

	_, err = matrix.FromRows(nil, [][]float64{{1, 2}, {2, 0}})
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)

	_, err = matrix.FromRows(nil, [][]float64{{0, 2}, {3, 0}})
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	m, err := matrix.FromRows(nil, [][]float64{{0, 2, 0}, {4, 0, 5}, {0, 0, 0}}, matrix.WithSymmetrize())
	require.NoError(t, err)
	d, _ := m.Distance("0", "1")
	assert.Equal(t, 3.0, d) // averaged
	d, _ = m.Distance("1", "2")
	assert.Equal(t, 5.0, d) // zero side is unknown

	_, err = matrix.FromRows(nil, [][]float64{{0, 2}, {2.05, 0}}, matrix.WithEpsilon(0.1))
	require.NoError(t, err)
}

// TestDistance_GetSet validates symmetric writes and label lookups.
func TestDistance_GetSet(t *testing.T) {
	m, err := matrix.NewDistance([]string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, []string{"A", "B", "C"}, m.Taxa())
	assert.False(t, m.Complete())

	require.NoError(t, m.SetDistance("A", "C", 7))
	d, err := m.Distance("C", "A")
	require.NoError(t, err)
	assert.Equal(t, 7.0, d)

	_, err = m.Distance("A", "Z")
	require.ErrorIs(t, err, matrix.ErrUnknownTaxon)
	require.ErrorIs(t, m.SetDistance("A", "B", -2), matrix.ErrBadWeight)
	require.ErrorIs(t, m.SetDistance("A", "A", 1), matrix.ErrNonZeroDiagonal)
	require.NoError(t, m.SetDistance("A", "A", 0))

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	assert.Equal(t, map[matrix.Pair]float64{matrix.NewPair("C", "A"): 7}, m.Map())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, m.Missing())
}

// TestDistance_CloneIndependent verifies that Clone is a deep copy.
func TestDistance_CloneIndependent(t *testing.T) {
	m, err := matrix.FromRows([]string{"A", "B"}, [][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	c := m.Clone()
	require.True(t, m.Equal(c, 0))

	require.NoError(t, c.SetDistance("A", "B", 9))
	d, _ := m.Distance("A", "B")
	assert.Equal(t, 1.0, d)
	assert.False(t, m.Equal(c, 0))
	assert.Equal(t, [][]float64{{0, 9}, {9, 0}}, c.Rows())
}
