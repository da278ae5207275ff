package clique_test

import (
	"fmt"

	"github.com/katalvlaran/lasso/clique"
	"github.com/katalvlaran/lasso/core"
)

// ExampleHeuristic shows the greedy finder on a triangle with a tail.
func ExampleHeuristic() {
	g, _ := core.FromRows([][]float64{
		{0, 2, 2, 0},
		{2, 0, 2, 0},
		{2, 2, 0, 4},
		{0, 0, 4, 0},
	})
	ids, _ := clique.Heuristic{}.Find(g)
	fmt.Println(ids)
	// Output: [0 1 2]
}
