// File: methods_clone.go
// Role: Cloning and induced subgraphs.
// Determinism & Identity:
//   - Clones and subgraphs keep every ID, label and subtree, share the tree
//     arena, and carry nextID so clusters minted on either side never collide
//     within one lineage.
// Concurrency:
//   - Read lock on the source for snapshotting; the source is never mutated.

package core

import "fmt"

// cloneRecordsLocked copies vertex records (all, or only keep) into a new graph.
func (g *Graph) cloneRecordsLocked(keep map[ID]struct{}) *Graph {
	c := NewGraph(WithArena(g.arena), WithClusterPrefix(g.clusterPrefix))
	c.nextID = g.nextID
	for id, v := range g.vertices {
		if keep != nil {
			if _, ok := keep[id]; !ok {
				continue
			}
		}
		cp := *v
		c.vertices[id] = &cp
		if v.taxon {
			c.labels[v.label] = id
		}
		c.adj[id] = make(map[ID]struct{})
	}

	return c
}

// Clone returns a deep copy of the graph: vertex records (live and merged),
// edges and adjacency. Subtrees are shared through the common arena, which
// is safe because arena nodes are immutable.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := g.cloneRecordsLocked(nil)
	for p, w := range g.edges {
		c.setEdgeLocked(p.lo, p.hi, w)
	}

	return c
}

// Induced returns the subgraph on ids: those vertices (live in the result)
// and every edge of g between two of them.
//
// Errors:
//   - ErrUnknownIdentifier / ErrInactiveVertex: an id is not a live vertex.
//
// Complexity: O(k²) for k ids.
func (g *Graph) Induced(ids []ID) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keep := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		if _, err := g.liveLocked(id); err != nil {
			return nil, fmt.Errorf("Induced: %w", err)
		}
		keep[id] = struct{}{}
	}

	c := g.cloneRecordsLocked(keep)
	for a := range keep {
		for b := range g.adj[a] {
			if _, ok := keep[b]; ok && a < b {
				c.setEdgeLocked(a, b, g.edges[makePair(a, b)])
			}
		}
	}

	return c, nil
}
