// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lasso/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep fixture matrices next to the properties they exercise.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lasso/core"
	"github.com/stretchr/testify/require"
)

// Fixture matrices shared across core tests.
var (
	// rowsClique3Tail: taxa 0,1,2 pairwise at 2; taxon 3 only touches 2 (at 4).
	rowsClique3Tail = [][]float64{
		{0, 2, 2, 0},
		{2, 0, 2, 0},
		{2, 2, 0, 4},
		{0, 0, 4, 0},
	}

	// rowsMinEdges is the RetainMinEdges fixture and its expected skeleton.
	rowsMinEdges = [][]float64{
		{0, 2, 3, 0},
		{2, 0, 2, 4},
		{3, 2, 0, 0},
		{0, 4, 0, 0},
	}
	rowsMinEdgesWant = [][]float64{
		{0, 2, 0, 0},
		{2, 0, 2, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 0},
	}
)

// mustGraph builds a graph from rows or fails the test.
func mustGraph(t testing.TB, rows [][]float64, labels ...string) *core.Graph {
	t.Helper()
	g, err := core.FromRows(rows, labels...)
	require.NoError(t, err)

	return g
}

// completeRows returns the n×n matrix with every off-diagonal entry = w.
func completeRows(n int, w float64) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = w
			}
		}
	}

	return rows
}

// ids is shorthand for a literal []core.ID.
func ids(v ...int) []core.ID {
	out := make([]core.ID, len(v))
	for i, x := range v {
		out[i] = core.ID(x)
	}

	return out
}
