package triplet

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lasso/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed.
var ErrGraphNil = errors.New("triplet: graph is nil")

// Triangle is a 3-clique with ascending IDs.
type Triangle [3]core.ID

type edgeKey struct{ lo, hi core.ID }

func keyOf(a, b core.ID) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{a, b}
}

// Triangles enumerates every triangle of g's live vertices, lexicographically.
// Complexity: O(Σ deg(v)²).
func Triangles(g *core.Graph) ([]Triangle, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out []Triangle
	for _, a := range g.Vertices() {
		nb, err := g.Neighbours(a)
		if err != nil {
			return nil, fmt.Errorf("Triangles: %w", err)
		}
		for i, b := range nb {
			if b <= a {
				continue
			}
			for _, c := range nb[i+1:] {
				if g.Adjacent(b, c) {
					out = append(out, Triangle{a, b, c})
				}
			}
		}
	}

	return out, nil
}

// FindTripletCovers returns a greedy edge-driven triplet cover of g.
//
// Steps:
//  1. Walk the edges in (A, B) order.
//  2. For an edge not yet covered, among the common neighbours c (ascending)
//     pick the one whose triangle covers the most uncovered edges; ties keep
//     the smaller c. An edge with no common neighbour is skipped.
//  3. Emit the induced triangle {A, B, c} and mark its three edges covered.
//
// Every returned graph is the induced subgraph of g on one triangle, so it
// keeps g's IDs, labels and distances.
//
// Complexity: O(E · Δ).
func FindTripletCovers(g *core.Graph) ([]*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	covered := make(map[edgeKey]bool)
	var cover []*core.Graph
	for _, e := range g.Edges() {
		if covered[keyOf(e.A, e.B)] {
			continue
		}
		na, err := g.Neighbours(e.A)
		if err != nil {
			return nil, fmt.Errorf("FindTripletCovers: %w", err)
		}

		pick, gain := core.NoID, 0
		for _, c := range na {
			if c == e.B || !g.Adjacent(e.B, c) {
				continue
			}
			n := 1 // edge {A,B} itself
			if !covered[keyOf(e.A, c)] {
				n++
			}
			if !covered[keyOf(e.B, c)] {
				n++
			}
			if n > gain {
				pick, gain = c, n
			}
		}
		if pick == core.NoID {
			continue
		}

		tri := Triangle{e.A, e.B, pick}
		sort.Slice(tri[:], func(i, j int) bool { return tri[i] < tri[j] })
		sub, err := g.Induced(tri[:])
		if err != nil {
			return nil, fmt.Errorf("FindTripletCovers: %w", err)
		}
		cover = append(cover, sub)
		covered[keyOf(tri[0], tri[1])] = true
		covered[keyOf(tri[0], tri[2])] = true
		covered[keyOf(tri[1], tri[2])] = true
	}

	return cover, nil
}

// Covered returns the ascending union of the cover's vertex sets.
func Covered(cover []*core.Graph) []core.ID {
	seen := make(map[core.ID]struct{})
	for _, t := range cover {
		for _, v := range t.Vertices() {
			seen[v] = struct{}{}
		}
	}
	out := make([]core.ID, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Coverage returns the fraction of g's live vertices reached by cover.
// An empty graph has coverage 0.
func Coverage(g *core.Graph, cover []*core.Graph) float64 {
	n := g.Order()
	if n == 0 {
		return 0
	}
	live := make(map[core.ID]struct{}, n)
	for _, v := range g.Vertices() {
		live[v] = struct{}{}
	}
	hit := 0
	for _, v := range Covered(cover) {
		if _, ok := live[v]; ok {
			hit++
		}
	}

	return float64(hit) / float64(n)
}
