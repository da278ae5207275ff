// File: methods_edges.go
// Role: Edge table queries and mutations: Neighbours/Degree/Distance,
//       SetDistance/RemoveDistance, Edges/EdgeCount and RetainMinEdges.
// Determinism:
//   - Neighbours() returns IDs sorted asc.
//   - Edges() returns edges sorted by (A, B) asc.
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// Neighbours returns the IDs joined to id by a non-zero edge, sorted ascending.
// A registered vertex that is currently disconnected, or that has been
// merged, has no neighbours (empty slice, nil error).
//
// Errors:
//   - ErrUnknownIdentifier: id was never registered.
//
// Complexity: O(d log d).
func (g *Graph) Neighbours(id ID) ([]ID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, err := g.lookupLocked(id); err != nil {
		return nil, err
	}

	return g.neighboursLocked(id), nil
}

func (g *Graph) neighboursLocked(id ID) []ID {
	out := make([]ID, 0, len(g.adj[id]))
	for nb := range g.adj[id] {
		out = append(out, nb)
	}
	sortIDs(out)

	return out
}

// Degree returns the number of neighbours of id.
func (g *Graph) Degree(id ID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, err := g.lookupLocked(id); err != nil {
		return 0, err
	}

	return len(g.adj[id]), nil
}

// Adjacent reports whether a and b share an edge. Unknown IDs are not adjacent.
func (g *Graph) Adjacent(a, b ID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[a][b]

	return ok
}

// Distance returns the weight of edge {a,b}, or 0 when there is no edge.
// This is the raw, unvalidated lookup: unknown identifiers also read as 0.
// Complexity: O(1).
func (g *Graph) Distance(a, b ID) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges[makePair(a, b)]
}

// SetDistance stores weight w on edge {a,b}; w == 0 removes the edge.
//
// Errors:
//   - ErrUnknownIdentifier / ErrInactiveVertex: an endpoint is not a live vertex.
//   - ErrMalformedInput: a == b.
//   - ErrBadWeight: w is negative, NaN or ±Inf.
//
// Complexity: O(1).
func (g *Graph) SetDistance(a, b ID, w float64) error {
	if a == b {
		return fmt.Errorf("SetDistance(%d,%d): self pair: %w", a, b, ErrMalformedInput)
	}
	if !validWeight(w) {
		return fmt.Errorf("SetDistance(%d,%d)=%g: %w", a, b, w, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.liveLocked(a); err != nil {
		return fmt.Errorf("SetDistance: %w", err)
	}
	if _, err := g.liveLocked(b); err != nil {
		return fmt.Errorf("SetDistance: %w", err)
	}
	if w == 0 {
		g.removeEdgeLocked(a, b)
		return nil
	}
	g.setEdgeLocked(a, b, w)

	return nil
}

// RemoveDistance deletes edge {a,b}. Removing an absent edge, or an edge on
// unknown identifiers, is a no-op.
// Complexity: O(1).
func (g *Graph) RemoveDistance(a, b ID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.removeEdgeLocked(a, b)
}

// setEdgeLocked stores a positive weight and mirrors adjacency. Caller holds mu.
func (g *Graph) setEdgeLocked(a, b ID, w float64) {
	g.edges[makePair(a, b)] = w
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
}

// removeEdgeLocked deletes the edge and both adjacency entries. Caller holds mu.
func (g *Graph) removeEdgeLocked(a, b ID) {
	delete(g.edges, makePair(a, b))
	if nb, ok := g.adj[a]; ok {
		delete(nb, b)
	}
	if nb, ok := g.adj[b]; ok {
		delete(nb, a)
	}
}

// Edges returns a snapshot of all edges sorted by (A, B).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

func (g *Graph) edgesLocked() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for p, w := range g.edges {
		out = append(out, Edge{A: p.lo, B: p.hi, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// RetainMinEdges thins the graph to its minimum-distance skeleton: an edge
// {a,b} survives iff its weight equals both the minimum incident weight of a
// and the minimum incident weight of b. Minima are taken from a snapshot of
// the weights before any edge is removed.
//
// Implementation:
//   - Stage 1: Under the write lock, compute every vertex's minimum incident weight.
//   - Stage 2: Collect the edges that are not minimal at both endpoints.
//   - Stage 3: Remove the collected edges.
//
// Complexity: O(E).
func (g *Graph) RetainMinEdges() {
	g.mu.Lock()
	defer g.mu.Unlock()

	minimum := make(map[ID]float64, len(g.adj))
	var (
		p  pair
		w  float64
		ok bool
		m  float64
	)
	for p, w = range g.edges {
		if m, ok = minimum[p.lo]; !ok || w < m {
			minimum[p.lo] = w
		}
		if m, ok = minimum[p.hi]; !ok || w < m {
			minimum[p.hi] = w
		}
	}

	var drop []pair
	for p, w = range g.edges {
		if w > minimum[p.lo] || w > minimum[p.hi] {
			drop = append(drop, p)
		}
	}
	for _, p = range drop {
		g.removeEdgeLocked(p.lo, p.hi)
	}
}

// validWeight reports whether w is finite and non-negative.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}
