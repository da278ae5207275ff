package chordal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lasso/core"
)

// seedOrder returns every live vertex of g exactly once, in the discovery
// order of the chosen spanning-forest traversal.
func seedOrder(g *core.Graph, s Seed) ([]core.ID, error) {
	switch s {
	case SeedDepth:
		return depthOrder(g.Vertices(), graphNeighbours(g)), nil
	case SeedBreadth:
		return breadthOrder(g.Vertices(), graphNeighbours(g)), nil
	case SeedMinimum:
		return depthOrder(g.Vertices(), minimumForest(g)), nil
	default:
		return nil, fmt.Errorf("seed %d: %w", int(s), ErrUnknownSeed)
	}
}

// neighbourFunc yields the ascending neighbours of a vertex.
type neighbourFunc func(core.ID) []core.ID

func graphNeighbours(g *core.Graph) neighbourFunc {
	return func(id core.ID) []core.ID {
		nb, _ := g.Neighbours(id) // ids come from g.Vertices(), always registered
		return nb
	}
}

// depthOrder is an iterative preorder DFS over every component.
// Roots and neighbours are taken in ascending order.
func depthOrder(roots []core.ID, next neighbourFunc) []core.ID {
	visited := make(map[core.ID]bool, len(roots))
	order := make([]core.ID, 0, len(roots))
	var stack []core.ID
	for _, root := range roots {
		if visited[root] {
			continue
		}
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[v] {
				continue
			}
			visited[v] = true
			order = append(order, v)
			nb := next(v)
			// Push in reverse so the smallest neighbour is explored first.
			for i := len(nb) - 1; i >= 0; i-- {
				if !visited[nb[i]] {
					stack = append(stack, nb[i])
				}
			}
		}
	}

	return order
}

// breadthOrder is a BFS over every component, roots and neighbours ascending.
func breadthOrder(roots []core.ID, next neighbourFunc) []core.ID {
	visited := make(map[core.ID]bool, len(roots))
	order := make([]core.ID, 0, len(roots))
	for _, root := range roots {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue := []core.ID{root}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)
			for _, u := range next(v) {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
	}

	return order
}

// minimumForest runs Kruskal over g's edges and returns the forest adjacency.
//
// Steps:
//  1. Sort edges by weight, ties by (A, B) via a stable sort of g.Edges().
//  2. Union-find with path halving and union by rank.
//  3. Keep an edge iff it joins two components.
func minimumForest(g *core.Graph) neighbourFunc {
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	parent := make(map[core.ID]core.ID)
	rank := make(map[core.ID]int)
	for _, v := range g.Vertices() {
		parent[v] = v
	}
	find := func(u core.ID) core.ID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v core.ID) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}

		return true
	}

	forest := make(map[core.ID][]core.ID)
	for _, e := range edges {
		if union(e.A, e.B) {
			forest[e.A] = append(forest[e.A], e.B)
			forest[e.B] = append(forest[e.B], e.A)
		}
	}
	for v := range forest {
		nb := forest[v]
		sort.Slice(nb, func(i, j int) bool { return nb[i] < nb[j] })
	}

	return func(id core.ID) []core.ID { return forest[id] }
}
