package tree_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lasso/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildABC returns ((A:1,B:1):2,C:3) in a fresh arena.
func buildABC(t *testing.T) tree.Tree {
	t.Helper()
	a := tree.NewArena()
	la, err := a.Leaf("A")
	require.NoError(t, err)
	lb, _ := a.Leaf("B")
	lc, _ := a.Leaf("C")
	ab, err := a.Join([]tree.Tree{la, lb}, []float64{1, 1})
	require.NoError(t, err)
	root, err := a.Join([]tree.Tree{ab, lc}, []float64{2, 3})
	require.NoError(t, err)

	return root
}

// TestLeafAndJoin_Validation covers constructor sentinels.
func TestLeafAndJoin_Validation(t *testing.T) {
	a := tree.NewArena()
	_, err := a.Leaf("")
	require.ErrorIs(t, err, tree.ErrEmptyTaxon)

	_, err = a.Join(nil, nil)
	require.ErrorIs(t, err, tree.ErrNoChildren)

	la, _ := a.Leaf("A")
	_, err = a.Join([]tree.Tree{la}, []float64{-1})
	require.ErrorIs(t, err, tree.ErrBadLength)
	_, err = a.Join([]tree.Tree{la}, []float64{math.Inf(1)})
	require.ErrorIs(t, err, tree.ErrBadLength)
	_, err = a.Join([]tree.Tree{la}, nil)
	require.ErrorIs(t, err, tree.ErrBadLength)

	other := tree.NewArena()
	lx, _ := other.Leaf("X")
	_, err = a.Join([]tree.Tree{la, lx}, []float64{1, 1})
	require.ErrorIs(t, err, tree.ErrForeignTree)
	_, err = a.Join([]tree.Tree{{}}, []float64{1})
	require.ErrorIs(t, err, tree.ErrForeignTree)
}

// TestTree_Queries checks heights, leaves, clusters and rendering.
func TestTree_Queries(t *testing.T) {
	root := buildABC(t)

	assert.False(t, root.IsLeaf())
	assert.Equal(t, 3.0, root.Height()) // max(2+1, 3+0)
	assert.Equal(t, 3, root.LeafCount())
	assert.Equal(t, []string{"A", "B", "C"}, root.Leaves())
	assert.Equal(t, [][]string{{"A", "B"}, {"A", "B", "C"}}, root.Clusters())
	assert.Equal(t, "((A:1,B:1):2,C:3);", root.Newick())

	kids := root.Children()
	require.Len(t, kids, 2)
	assert.True(t, kids[1].IsLeaf())
	assert.Equal(t, "C", kids[1].Taxon())
	assert.Equal(t, 1.0, kids[0].Height())

	var zero tree.Tree
	assert.True(t, zero.IsZero())
	assert.Zero(t, zero.Height())
	assert.Nil(t, zero.Leaves())
	assert.Equal(t, ";", zero.Newick())
}

// TestWithBranchLength_CopyOnWrite ensures edits never leak into shared copies.
func TestWithBranchLength_CopyOnWrite(t *testing.T) {
	root := buildABC(t)
	cp := root.Copy()
	before := root.Arena().Len()

	edited, err := cp.WithBranchLength([]int{0, 1}, 4)
	require.NoError(t, err)
	assert.Equal(t, "((A:1,B:4):2,C:3);", edited.Newick())
	assert.Equal(t, 6.0, edited.Height())

	// Original and copy still render the old tree.
	assert.Equal(t, "((A:1,B:1):2,C:3);", root.Newick())
	assert.Equal(t, "((A:1,B:1):2,C:3);", cp.Newick())
	// Only the two nodes on the path were appended.
	assert.Equal(t, before+2, root.Arena().Len())

	_, err = root.WithBranchLength([]int{5}, 1)
	require.ErrorIs(t, err, tree.ErrBadPath)
	_, err = root.WithBranchLength(nil, 1)
	require.ErrorIs(t, err, tree.ErrBadPath)
	_, err = root.WithBranchLength([]int{0}, -2)
	require.ErrorIs(t, err, tree.ErrBadLength)
	_, err = tree.Tree{}.WithBranchLength([]int{0}, 1)
	require.ErrorIs(t, err, tree.ErrZeroTree)
}

// TestUnroot suppresses the degree-two root.
func TestUnroot(t *testing.T) {
	root := buildABC(t)
	un, err := root.Unroot()
	require.NoError(t, err)
	assert.Equal(t, "(A:1,B:1,C:5);", un.Newick())
	assert.Len(t, un.Branches(), 3)

	// Already unrooted: unchanged.
	again, err := un.Unroot()
	require.NoError(t, err)
	assert.Equal(t, un.Root(), again.Root())

	// Two leaves: nothing to suppress.
	a := tree.NewArena()
	la, _ := a.Leaf("A")
	lb, _ := a.Leaf("B")
	pair, _ := a.Join([]tree.Tree{la, lb}, []float64{1, 2})
	same, err := pair.Unroot()
	require.NoError(t, err)
	assert.Equal(t, pair.Root(), same.Root())
}

// TestNewick_QuotesLabels checks punctuation handling.
func TestNewick_QuotesLabels(t *testing.T) {
	a := tree.NewArena()
	l1, _ := a.Leaf("Homo sapiens")
	l2, _ := a.Leaf("it's")
	r, _ := a.Join([]tree.Tree{l1, l2}, []float64{0.5, 1.25})
	assert.Equal(t, "('Homo sapiens':0.5,'it''s':1.25);", r.Newick())
}
