// File: methods_vertices.go
// Role: Vertex registration & queries.
//
// Determinism:
//   - Vertices() and AllIDs() return IDs sorted ascending.
//
// Concurrency:
//   - Queries hold the read lock; AddTaxon holds the write lock.
package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lasso/tree"
)

// AddTaxon registers a new live taxon vertex with a leaf subtree.
//
// Errors:
//   - ErrEmptyLabel: label == "".
//   - ErrDuplicateLabel: a taxon with this label exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddTaxon(label string) (ID, error) {
	if label == "" {
		return NoID, ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.labels[label]; dup {
		return NoID, fmt.Errorf("AddTaxon(%q): %w", label, ErrDuplicateLabel)
	}
	leaf, err := g.arena.Leaf(label)
	if err != nil {
		return NoID, err
	}

	id := g.nextID
	g.nextID++
	g.vertices[id] = &vertex{label: label, taxon: true, live: true, subtree: leaf}
	g.labels[label] = id
	g.adj[id] = make(map[ID]struct{})

	return id, nil
}

// lookupLocked returns the record for id. Caller holds mu.
func (g *Graph) lookupLocked(id ID) (*vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("vertex %d: %w", id, ErrUnknownIdentifier)
	}

	return v, nil
}

// liveLocked returns the record for id and requires it to be live. Caller holds mu.
func (g *Graph) liveLocked(id ID) (*vertex, error) {
	v, err := g.lookupLocked(id)
	if err != nil {
		return nil, err
	}
	if !v.live {
		return nil, fmt.Errorf("vertex %d: %w", id, ErrInactiveVertex)
	}

	return v, nil
}

// Has reports whether id was ever registered (live or merged).
func (g *Graph) Has(id ID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// IsTaxon reports whether id is part of the current (live) vertex set.
// Merged identifiers answer false; identifiers that never existed are a
// hard error rather than a false.
//
// Errors:
//   - ErrUnknownIdentifier: id was never registered.
//
// Complexity: O(1).
func (g *Graph) IsTaxon(id ID) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, err := g.lookupLocked(id)
	if err != nil {
		return false, err
	}

	return v.live, nil
}

// IsOriginal reports whether id is an input taxon (as opposed to a minted cluster).
func (g *Graph) IsOriginal(id ID) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, err := g.lookupLocked(id)
	if err != nil {
		return false, err
	}

	return v.taxon, nil
}

// Label returns the taxon label, or the minted cluster label.
func (g *Graph) Label(id ID) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, err := g.lookupLocked(id)
	if err != nil {
		return "", err
	}

	return v.label, nil
}

// Lookup resolves a taxon label to its ID.
func (g *Graph) Lookup(label string) (ID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.labels[label]
	if !ok {
		return NoID, fmt.Errorf("Lookup(%q): %w", label, ErrUnknownIdentifier)
	}

	return id, nil
}

// Subtree returns the tree accumulated under id: a leaf for taxa, the join
// node for clusters. Merged identifiers keep their subtree.
func (g *Graph) Subtree(id ID) (tree.Tree, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, err := g.lookupLocked(id)
	if err != nil {
		return tree.Tree{}, err
	}

	return v.subtree, nil
}

// Vertices returns the live vertex set sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []ID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveIDsLocked()
}

func (g *Graph) liveIDsLocked() []ID {
	out := make([]ID, 0, len(g.vertices))
	for id, v := range g.vertices {
		if v.live {
			out = append(out, id)
		}
	}
	sortIDs(out)

	return out
}

// AllIDs returns every registered identifier, live or merged, sorted ascending.
func (g *Graph) AllIDs() []ID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]ID, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sortIDs(out)

	return out
}

// Order returns the number of live vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, v := range g.vertices {
		if v.live {
			n++
		}
	}

	return n
}

// Arena returns the tree arena that subtrees are appended to.
func (g *Graph) Arena() *tree.Arena {
	return g.arena
}

// Stats produces a read-only snapshot of sizes.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s := GraphStats{Registered: len(g.vertices), Edges: len(g.edges)}
	for _, v := range g.vertices {
		if v.live {
			s.Live++
			if v.taxon {
				s.LiveTaxa++
			}
		}
		if !v.taxon {
			s.Clusters++
		}
	}

	return s
}

// sortIDs sorts ids ascending in place.
func sortIDs(ids []ID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
