package chordal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lasso/core"
)

// Eliminate computes a chordal completion of g's live vertices.
//
// Implementation:
//   - Stage 1: Seed order via the configured traversal; elimination order is
//     its reverse.
//   - Stage 2: On a clone, eliminate vertices one by one; the remaining
//     neighbours of each eliminated vertex are made pairwise adjacent with
//     fill-in weight d(a,v)+d(v,b), keeping the minimum over producers.
//
// Errors:
//   - ErrGraphNil: g == nil.
//   - ErrUnknownSeed: options carry an unknown Seed.
//
// Complexity: O(V·Δ²) where Δ is the maximum remaining degree at elimination.
func Eliminate(g *core.Graph, opts ...Option) (*Elimination, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	seed, err := seedOrder(g, o.Seed)
	if err != nil {
		return nil, fmt.Errorf("Eliminate: %w", err)
	}
	order := make([]core.ID, len(seed))
	for i, v := range seed {
		order[len(seed)-1-i] = v
	}
	position := make(map[core.ID]int, len(order))
	for i, v := range order {
		position[v] = i
	}

	c := g.Clone()
	type key struct{ lo, hi core.ID }
	mk := func(a, b core.ID) key {
		if a > b {
			a, b = b, a
		}
		return key{a, b}
	}
	fill := make(map[key]float64)

	for i, v := range order {
		nb, err := c.Neighbours(v)
		if err != nil {
			return nil, fmt.Errorf("Eliminate: %w", err)
		}
		later := nb[:0]
		for _, u := range nb {
			if position[u] > i {
				later = append(later, u)
			}
		}
		for x := 0; x < len(later); x++ {
			a := later[x]
			for y := x + 1; y < len(later); y++ {
				b := later[y]
				w := c.Distance(a, v) + c.Distance(v, b)
				k := mk(a, b)
				prev, isFill := fill[k]
				if c.Adjacent(a, b) && !(isFill && w < prev) {
					continue
				}
				if err = c.SetDistance(a, b, w); err != nil {
					return nil, fmt.Errorf("Eliminate: fill-in {%d,%d}: %w", a, b, err)
				}
				fill[k] = w
			}
		}
	}

	fillIn := make([]core.Edge, 0, len(fill))
	for k, w := range fill {
		fillIn = append(fillIn, core.Edge{A: k.lo, B: k.hi, Weight: w})
	}
	sort.Slice(fillIn, func(i, j int) bool {
		if fillIn[i].A != fillIn[j].A {
			return fillIn[i].A < fillIn[j].A
		}
		return fillIn[i].B < fillIn[j].B
	})

	return &Elimination{Graph: c, Order: order, FillIn: fillIn}, nil
}

// Find returns the chordal completion of g. g itself is untouched.
func Find(g *core.Graph, opts ...Option) (*core.Graph, error) {
	e, err := Eliminate(g, opts...)
	if err != nil {
		return nil, err
	}

	return e.Graph, nil
}

// IsChordal reports whether g's live vertices induce a chordal graph.
//
// Steps:
//  1. Maximum cardinality search: repeatedly visit the unvisited vertex with
//     the most visited neighbours (ties → smaller ID).
//  2. For each vertex v, let E(v) be its neighbours visited before v and p the
//     latest-visited of them; g is chordal iff E(v)\{p} ⊆ N(p) for every v.
//
// Complexity: O(V² + V·Δ²).
func IsChordal(g *core.Graph) bool {
	if g == nil {
		return false
	}
	vs := g.Vertices()
	nbrs := make(map[core.ID][]core.ID, len(vs))
	for _, v := range vs {
		nbrs[v], _ = g.Neighbours(v)
	}

	visitAt := make(map[core.ID]int, len(vs))
	weight := make(map[core.ID]int, len(vs))
	for step := 0; step < len(vs); step++ {
		pick, best := core.NoID, -1
		for _, v := range vs {
			if _, done := visitAt[v]; done {
				continue
			}
			if weight[v] > best {
				pick, best = v, weight[v]
			}
		}
		visitAt[pick] = step
		for _, u := range nbrs[pick] {
			if _, done := visitAt[u]; !done {
				weight[u]++
			}
		}
	}

	for _, v := range vs {
		var earlier []core.ID
		parent, parentAt := core.NoID, -1
		for _, u := range nbrs[v] {
			if visitAt[u] < visitAt[v] {
				earlier = append(earlier, u)
				if visitAt[u] > parentAt {
					parent, parentAt = u, visitAt[u]
				}
			}
		}
		for _, u := range earlier {
			if u != parent && !g.Adjacent(u, parent) {
				return false
			}
		}
	}

	return true
}
