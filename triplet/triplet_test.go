package triplet_test

import (
	"testing"

	"github.com/katalvlaran/lasso/core"
	"github.com/katalvlaran/lasso/matrix"
	"github.com/katalvlaran/lasso/triplet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGraph(t testing.TB, rows [][]float64) *core.Graph {
	t.Helper()
	g, err := core.FromRows(rows)
	require.NoError(t, err)

	return g
}

// bowtie: triangles {0,1,2} and {2,3,4} share vertex 2; vertex 5 hangs off 4.
var bowtie = [][]float64{
	{0, 1, 1, 0, 0, 0},
	{1, 0, 1, 0, 0, 0},
	{1, 1, 0, 1, 1, 0},
	{0, 0, 1, 0, 1, 0},
	{0, 0, 1, 1, 0, 2},
	{0, 0, 0, 0, 2, 0},
}

func TestTriangles(t *testing.T) {
	tris, err := triplet.Triangles(mustGraph(t, bowtie))
	require.NoError(t, err)
	assert.Equal(t, []triplet.Triangle{{0, 1, 2}, {2, 3, 4}}, tris)
}

func TestFindTripletCovers_Bowtie(t *testing.T) {
	g := mustGraph(t, bowtie)
	cover, err := triplet.FindTripletCovers(g)
	require.NoError(t, err)
	require.Len(t, cover, 2)
	assert.Equal(t, []core.ID{0, 1, 2}, cover[0].Vertices())
	assert.Equal(t, []core.ID{2, 3, 4}, cover[1].Vertices())
	assert.Equal(t, 1.0, cover[0].Distance(0, 1))
	assert.Equal(t, []core.ID{0, 1, 2, 3, 4}, triplet.Covered(cover))
	assert.InDelta(t, 5.0/6.0, triplet.Coverage(g, cover), 1e-12)
}

func TestFindTripletCovers_NoTriangle(t *testing.T) {
	g := mustGraph(t, [][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	cover, err := triplet.FindTripletCovers(g)
	require.NoError(t, err)
	assert.Empty(t, cover)
	assert.Equal(t, 0.0, triplet.Coverage(g, cover))
}

// Every vertex and edge on a triangle must be covered, on random graphs.
func TestFindTripletCovers_CoversAllTriangleEdges(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		rng := matrix.NewRand(seed)
		n := 14
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.3 {
					rows[i][j], rows[j][i] = 1, 1
				}
			}
		}
		g := mustGraph(t, rows)
		cover, err := triplet.FindTripletCovers(g)
		require.NoError(t, err)

		inCover := map[[2]core.ID]bool{}
		for _, c := range cover {
			require.Equal(t, 3, c.EdgeCount())
			for _, e := range c.Edges() {
				inCover[[2]core.ID{e.A, e.B}] = true
			}
		}
		tris, err := triplet.Triangles(g)
		require.NoError(t, err)
		want := map[core.ID]bool{}
		for _, tr := range tris {
			assert.True(t, inCover[[2]core.ID{tr[0], tr[1]}], "seed %d", seed)
			assert.True(t, inCover[[2]core.ID{tr[0], tr[2]}], "seed %d", seed)
			assert.True(t, inCover[[2]core.ID{tr[1], tr[2]}], "seed %d", seed)
			for _, v := range tr {
				want[v] = true
			}
		}
		assert.Len(t, triplet.Covered(cover), len(want), "seed %d", seed)
	}
}

func TestNilGraph(t *testing.T) {
	_, err := triplet.FindTripletCovers(nil)
	require.ErrorIs(t, err, triplet.ErrGraphNil)
	_, err = triplet.Triangles(nil)
	require.ErrorIs(t, err, triplet.ErrGraphNil)
}
