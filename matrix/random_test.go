package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lasso/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomUltrametric_ThreePoint checks the strong triangle inequality:
// among any three taxa the two largest distances are equal.
func TestRandomUltrametric_ThreePoint(t *testing.T) {
	m, err := matrix.RandomUltrametric(9, matrix.NewRand(42))
	require.NoError(t, err)
	require.True(t, m.Complete())

	rows := m.Rows()
	n := len(rows)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				a, b, c := rows[i][j], rows[i][k], rows[j][k]
				switch {
				case a <= b && a <= c:
					assert.Equal(t, b, c)
				case b <= a && b <= c:
					assert.Equal(t, a, c)
				default:
					assert.Equal(t, a, b)
				}
			}
		}
	}

	again, err := matrix.RandomUltrametric(9, matrix.NewRand(42))
	require.NoError(t, err)
	assert.True(t, m.Equal(again, 0), "same seed must give same matrix")
}

// TestRandomCaterpillar_FourPoint checks that a<b<c<d always splits ab|cd.
func TestRandomCaterpillar_FourPoint(t *testing.T) {
	m, err := matrix.RandomCaterpillar(7, matrix.NewRand(7))
	require.NoError(t, err)
	r := m.Rows()
	n := len(r)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					s1 := r[a][b] + r[c][d]
					s2 := r[a][c] + r[b][d]
					s3 := r[a][d] + r[b][c]
					assert.Less(t, s1, s2)
					assert.Equal(t, s2, s3)
				}
			}
		}
	}
}

// TestGenerators_Validation covers argument errors.
func TestGenerators_Validation(t *testing.T) {
	_, err := matrix.RandomUltrametric(1, matrix.NewRand(1))
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.RandomUltrametric(3, nil)
	require.ErrorIs(t, err, matrix.ErrNeedRandSource)
	_, err = matrix.RandomCaterpillar(3, matrix.NewRand(1))
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Sparsify(nil, 0.5, matrix.NewRand(1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSparsify removes entries deterministically and only ever zeroes cells.
func TestSparsify(t *testing.T) {
	m, err := matrix.RandomUltrametric(8, matrix.NewRand(3))
	require.NoError(t, err)
	full := m.Clone()

	removed, err := matrix.Sparsify(m, 0.3, matrix.NewRand(5))
	require.NoError(t, err)
	assert.Equal(t, removed, len(m.Missing()))

	fr, mr := full.Rows(), m.Rows()
	for i := range mr {
		for j := range mr[i] {
			if mr[i][j] != 0 {
				assert.Equal(t, fr[i][j], mr[i][j])
			}
		}
	}

	none, err := matrix.Sparsify(full.Clone(), 0, matrix.NewRand(5))
	require.NoError(t, err)
	assert.Zero(t, none)
}
