package chordal_test

import (
	"testing"

	"github.com/katalvlaran/lasso/chordal"
	"github.com/katalvlaran/lasso/core"
	"github.com/katalvlaran/lasso/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cycle4 is the square 0-1-2-3-0 with distinct weights.
var cycle4 = [][]float64{
	{0, 1, 0, 4},
	{1, 0, 2, 0},
	{0, 2, 0, 3},
	{4, 0, 3, 0},
}

func mustGraph(t testing.TB, rows [][]float64) *core.Graph {
	t.Helper()
	g, err := core.FromRows(rows)
	require.NoError(t, err)

	return g
}

func randomRows(n int, p float64, seed int64) [][]float64 {
	rng := matrix.NewRand(seed)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				w := float64(1 + rng.Intn(20))
				rows[i][j], rows[j][i] = w, w
			}
		}
	}

	return rows
}

func TestEliminate_SeedStrategies(t *testing.T) {
	cases := []struct {
		name  string
		seed  chordal.Seed
		order []core.ID
		fill  []core.Edge
	}{
		{"depth", chordal.SeedDepth, []core.ID{3, 2, 1, 0}, []core.Edge{{A: 0, B: 2, Weight: 7}}},
		{"breadth", chordal.SeedBreadth, []core.ID{2, 3, 1, 0}, []core.Edge{{A: 1, B: 3, Weight: 5}}},
		{"minimum", chordal.SeedMinimum, []core.ID{3, 2, 1, 0}, []core.Edge{{A: 0, B: 2, Weight: 7}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, cycle4)
			e, err := chordal.Eliminate(g, chordal.WithSeed(tc.seed))
			require.NoError(t, err)
			assert.Equal(t, tc.order, e.Order)
			assert.Equal(t, tc.fill, e.FillIn)
			assert.True(t, chordal.IsChordal(e.Graph))
			assert.Equal(t, 4, g.EdgeCount(), "input must stay untouched")
			assert.Equal(t, 5, e.Graph.EdgeCount())
		})
	}
}

func TestEliminate_NilOptionUsesDefaults(t *testing.T) {
	g := mustGraph(t, cycle4)
	e, err := chordal.Eliminate(g, nil, chordal.WithSeed(chordal.SeedBreadth), nil)
	require.NoError(t, err)
	assert.Equal(t, []core.ID{2, 3, 1, 0}, e.Order)

	c, err := chordal.Find(g, nil)
	require.NoError(t, err)
	assert.True(t, c.Adjacent(0, 2), "depth seed fills 0-2")
}

func TestFind_AlreadyChordal(t *testing.T) {
	g := mustGraph(t, [][]float64{
		{0, 2, 2, 0},
		{2, 0, 2, 0},
		{2, 2, 0, 4},
		{0, 0, 4, 0},
	})
	require.True(t, chordal.IsChordal(g))
	e, err := chordal.Eliminate(g)
	require.NoError(t, err)
	assert.Empty(t, e.FillIn)
	assert.Equal(t, g.Edges(), e.Graph.Edges())
}

func TestFind_RandomGraphsBecomeChordal(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rows := randomRows(12, 0.35, seed)
		g := mustGraph(t, rows)
		for _, s := range []chordal.Seed{chordal.SeedDepth, chordal.SeedBreadth, chordal.SeedMinimum} {
			c, err := chordal.Find(g, chordal.WithSeed(s))
			require.NoError(t, err)
			require.True(t, chordal.IsChordal(c), "seed %d strategy %s", seed, s)
			for _, e := range g.Edges() {
				assert.Equal(t, e.Weight, c.Distance(e.A, e.B), "original edge kept")
			}
		}
	}
}

func TestIsChordal(t *testing.T) {
	assert.False(t, chordal.IsChordal(mustGraph(t, cycle4)))
	assert.True(t, chordal.IsChordal(mustGraph(t, [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	})))
	assert.True(t, chordal.IsChordal(core.NewGraph()))
	assert.False(t, chordal.IsChordal(nil))
}

func TestSeedRegistry(t *testing.T) {
	for _, name := range chordal.SeedNames() {
		s, err := chordal.ParseSeed(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}
	_, err := chordal.ParseSeed("random")
	require.ErrorIs(t, err, chordal.ErrUnknownSeed)

	_, err = chordal.Eliminate(mustGraph(t, cycle4), chordal.WithSeed(chordal.Seed(9)))
	require.ErrorIs(t, err, chordal.ErrUnknownSeed)

	_, err = chordal.Find(nil)
	require.ErrorIs(t, err, chordal.ErrGraphNil)
}
