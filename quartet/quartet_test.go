package quartet_test

import (
	"testing"

	"github.com/katalvlaran/lasso/matrix"
	"github.com/katalvlaran/lasso/quartet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var abcd = []string{"A", "B", "C", "D"}

func mustMatrix(t testing.TB, taxa []string, rows [][]float64) *matrix.Distance {
	t.Helper()
	m, err := matrix.FromRows(taxa, rows)
	require.NoError(t, err)

	return m
}

func TestEnrich_DeducesMissingDistance(t *testing.T) {
	m := mustMatrix(t, abcd, [][]float64{
		{0, 3, 8, 0},
		{3, 0, 9, 10},
		{8, 9, 0, 9},
		{0, 10, 9, 0},
	})
	n, err := quartet.Enrich(m)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	d, err := m.Distance("A", "D")
	require.NoError(t, err)
	assert.Equal(t, 9.0, d)
	d, err = m.Distance("D", "A")
	require.NoError(t, err)
	assert.Equal(t, 9.0, d)
	assert.True(t, m.Complete())
}

func TestEnrich_Idempotent(t *testing.T) {
	m := mustMatrix(t, abcd, [][]float64{
		{0, 3, 8, 0},
		{3, 0, 9, 10},
		{8, 9, 0, 9},
		{0, 10, 9, 0},
	})
	_, err := quartet.Enrich(m)
	require.NoError(t, err)
	once := m.Clone()

	n, err := quartet.Enrich(m)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, once.Equal(m, 0))
}

func TestEnrich_UnconstrainedStaysMissing(t *testing.T) {
	// Both known sums are 2, so d(A,D) is only bounded, not determined.
	m := mustMatrix(t, abcd, [][]float64{
		{0, 1, 1, 0},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{0, 1, 1, 0},
	})
	n, err := quartet.Enrich(m)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, [][2]int{{0, 3}}, m.Missing())
}

func TestEnrich_RecoversSparsifiedTreeMetric(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := matrix.NewRand(seed)
		truth, err := matrix.RandomCaterpillar(9, rng)
		require.NoError(t, err)
		m := truth.Clone()
		removed, err := matrix.Sparsify(m, 0.15, rng)
		require.NoError(t, err)

		filled, err := quartet.Enrich(m)
		require.NoError(t, err)
		assert.Equal(t, removed, filled+len(m.Missing()), "seed %d", seed)

		want, got := truth.Rows(), m.Rows()
		for i := range got {
			for j := range got[i] {
				if got[i][j] != 0 {
					assert.Equal(t, want[i][j], got[i][j], "seed %d d(%d,%d)", seed, i, j)
				}
			}
		}
	}
}

func TestQuartets_Caterpillar(t *testing.T) {
	m, err := matrix.RandomCaterpillar(7, matrix.NewRand(42))
	require.NoError(t, err)
	sys, err := quartet.Quartets(m)
	require.NoError(t, err)
	assert.Equal(t, 35, sys.Len())

	taxa := m.Taxa()
	for a := 0; a < 7; a++ {
		for b := a + 1; b < 7; b++ {
			for c := b + 1; c < 7; c++ {
				for d := c + 1; d < 7; d++ {
					q, ok := sys.Lookup(taxa[d], taxa[b], taxa[a], taxa[c])
					require.True(t, ok)
					assert.Equal(t, quartet.Quartet{
						A: taxa[a], B: taxa[b], C: taxa[c], D: taxa[d], Weight: q.Weight,
					}, q)
					assert.Greater(t, q.Weight, 0.0)
				}
			}
		}
	}
}

func TestQuartets_StarAndMissingOmitted(t *testing.T) {
	star := mustMatrix(t, abcd, [][]float64{
		{0, 2, 2, 2},
		{2, 0, 2, 2},
		{2, 2, 0, 2},
		{2, 2, 2, 0},
	})
	sys, err := quartet.Quartets(star)
	require.NoError(t, err)
	assert.Zero(t, sys.Len())

	partial := mustMatrix(t, abcd, [][]float64{
		{0, 3, 8, 0},
		{3, 0, 9, 10},
		{8, 9, 0, 9},
		{0, 10, 9, 0},
	})
	sys, err = quartet.Quartets(partial)
	require.NoError(t, err)
	assert.Zero(t, sys.Len())
	_, ok := sys.Lookup("A", "B", "C", "D")
	assert.False(t, ok)
}

func TestQuartets_Weight(t *testing.T) {
	// Tree ((A,B),(C,D)) with pendant edges 1 and internal edge 2.
	m := mustMatrix(t, abcd, [][]float64{
		{0, 2, 4, 4},
		{2, 0, 4, 4},
		{4, 4, 0, 2},
		{4, 4, 2, 0},
	})
	sys, err := quartet.Quartets(m)
	require.NoError(t, err)
	require.Equal(t, 1, sys.Len())
	q := sys.Quartets()[0]
	assert.Equal(t, quartet.Quartet{A: "A", B: "B", C: "C", D: "D", Weight: 2}, q)
	assert.Equal(t, "A,B|C,D:2\n", sys.String())

	_, ok := sys.Lookup("A", "A", "C", "D")
	assert.False(t, ok)
	_, ok = sys.Lookup("A", "B", "C", "Z")
	assert.False(t, ok)
}

func TestLasso(t *testing.T) {
	_, err := quartet.NewLasso(nil)
	require.ErrorIs(t, err, quartet.ErrNilMatrix)
	_, err = quartet.Enrich(nil)
	require.ErrorIs(t, err, quartet.ErrNilMatrix)
	_, err = quartet.Quartets(nil)
	require.ErrorIs(t, err, quartet.ErrNilMatrix)

	m := mustMatrix(t, abcd, [][]float64{
		{0, 3, 8, 0},
		{3, 0, 9, 10},
		{8, 9, 0, 9},
		{0, 10, 9, 0},
	})
	l, err := quartet.NewLasso(m)
	require.NoError(t, err)
	n, err := l.EnrichMatrix()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	sys, err := l.GetQuartets()
	require.NoError(t, err)
	require.Equal(t, 1, sys.Len())
	// Sums: AB|CD 12, AC|BD 18, AD|BC 18.
	assert.Equal(t, quartet.Quartet{A: "A", B: "B", C: "C", D: "D", Weight: 3}, sys.Quartets()[0])
	assert.Same(t, m, l.Matrix())
}
