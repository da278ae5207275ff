// File: tree.go
// Role: Construction, queries and copy-on-write edits of arena trees.
// Determinism:
//   - Leaves() lists taxa in depth-first child order.
//   - Clusters() is sorted.
// Concurrency:
//   - All reads take the arena read lock; appends take the write lock.

package tree

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Len returns the number of nodes stored in the arena.
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.nodes)
}

// append stores n and returns its id. Callers must hold no arena lock.
func (a *Arena) append(n node) NodeID {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nodes = append(a.nodes, n)

	return NodeID(len(a.nodes) - 1)
}

// get returns a copy of the node header. Callers must hold no arena lock.
func (a *Arena) get(id NodeID) node {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.nodes[id]
}

// Leaf appends a leaf carrying taxon and returns it as a one-node Tree.
//
// Errors:
//   - ErrEmptyTaxon: if taxon == "".
//
// Complexity: O(1) amortized.
func (a *Arena) Leaf(taxon string) (Tree, error) {
	if taxon == "" {
		return Tree{}, ErrEmptyTaxon
	}

	return Tree{arena: a, root: a.append(node{taxon: taxon, leaves: 1})}, nil
}

// Join appends an internal node whose children are the given trees with the
// matching branch lengths. All children must live in a.
//
// Errors:
//   - ErrNoChildren: len(children) == 0.
//   - ErrForeignTree: a child is zero or from another arena.
//   - ErrBadLength: len(lengths) != len(children), or a length is negative/non-finite.
//
// Complexity: O(k) for k children.
func (a *Arena) Join(children []Tree, lengths []float64) (Tree, error) {
	if len(children) == 0 {
		return Tree{}, ErrNoChildren
	}
	if len(lengths) != len(children) {
		return Tree{}, fmt.Errorf("tree: %d lengths for %d children: %w", len(lengths), len(children), ErrBadLength)
	}

	n := node{children: make([]Branch, len(children))}
	var child node
	for i, c := range children {
		if c.arena != a {
			return Tree{}, fmt.Errorf("tree: child %d: %w", i, ErrForeignTree)
		}
		if !validLength(lengths[i]) {
			return Tree{}, fmt.Errorf("tree: child %d length %g: %w", i, lengths[i], ErrBadLength)
		}
		child = a.get(c.root)
		n.children[i] = Branch{Child: c.root, Length: lengths[i]}
		n.height = math.Max(n.height, lengths[i]+child.height)
		n.leaves += child.leaves
	}

	return Tree{arena: a, root: a.append(n)}, nil
}

func validLength(l float64) bool {
	return l >= 0 && !math.IsNaN(l) && !math.IsInf(l, 0)
}

// IsZero reports whether t is the zero Tree.
func (t Tree) IsZero() bool {
	return t.arena == nil
}

// Arena returns the arena t lives in.
func (t Tree) Arena() *Arena {
	return t.arena
}

// Root returns the root node id.
func (t Tree) Root() NodeID {
	return t.root
}

// IsLeaf reports whether the root carries a taxon and has no children.
func (t Tree) IsLeaf() bool {
	if t.IsZero() {
		return false
	}
	n := t.arena.get(t.root)

	return n.taxon != "" && len(n.children) == 0
}

// Taxon returns the leaf label, or "" for internal nodes.
func (t Tree) Taxon() string {
	if t.IsZero() {
		return ""
	}

	return t.arena.get(t.root).taxon
}

// Height returns max over children of (branch length + child height); 0 for leaves.
// Complexity: O(1), heights are fixed at node creation.
func (t Tree) Height() float64 {
	if t.IsZero() {
		return 0
	}

	return t.arena.get(t.root).height
}

// LeafCount returns the number of leaves below the root.
func (t Tree) LeafCount() int {
	if t.IsZero() {
		return 0
	}

	return t.arena.get(t.root).leaves
}

// Branches returns a copy of the root's child branches.
func (t Tree) Branches() []Branch {
	if t.IsZero() {
		return nil
	}
	n := t.arena.get(t.root)
	out := make([]Branch, len(n.children))
	copy(out, n.children)

	return out
}

// Children returns the root's subtrees in branch order, sharing the arena.
func (t Tree) Children() []Tree {
	br := t.Branches()
	out := make([]Tree, len(br))
	for i, b := range br {
		out[i] = Tree{arena: t.arena, root: b.Child}
	}

	return out
}

// Copy returns a Tree sharing every node with t. Since nodes are immutable,
// the copy is independent under all editing operations.
func (t Tree) Copy() Tree {
	return t
}

// Leaves returns the leaf taxa in depth-first child order.
// Complexity: O(size of subtree).
func (t Tree) Leaves() []string {
	if t.IsZero() {
		return nil
	}
	out := make([]string, 0, t.LeafCount())
	stack := []NodeID{t.root}
	var (
		id NodeID
		n  node
	)
	for len(stack) > 0 {
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n = t.arena.get(id)
		if len(n.children) == 0 {
			out = append(out, n.taxon)
			continue
		}
		// Push in reverse so the first child is visited first.
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i].Child)
		}
	}

	return out
}

// Clusters returns, for every internal node, the sorted set of taxa below
// it. The outer slice is sorted by size, then lexicographically.
func (t Tree) Clusters() [][]string {
	if t.IsZero() {
		return nil
	}
	var out [][]string
	var walk func(id NodeID) []string
	walk = func(id NodeID) []string {
		n := t.arena.get(id)
		if len(n.children) == 0 {
			return []string{n.taxon}
		}
		var below []string
		for _, b := range n.children {
			below = append(below, walk(b.Child)...)
		}
		sort.Strings(below)
		out = append(out, below)

		return below
	}
	walk(t.root)

	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}

		return strings.Join(out[i], "\x00") < strings.Join(out[j], "\x00")
	})

	return out
}

// WithBranchLength returns a new Tree in which the branch addressed by path
// has the given length. path lists child indexes from the root; the last
// index selects the branch. Nodes along the path are copied (path copying);
// all other nodes are shared with t, and t itself is unchanged.
//
// Errors:
//   - ErrZeroTree, ErrBadPath, ErrBadLength.
//
// Complexity: O(len(path) · k) where k is the node fan-out.
func (t Tree) WithBranchLength(path []int, length float64) (Tree, error) {
	if t.IsZero() {
		return Tree{}, ErrZeroTree
	}
	if len(path) == 0 {
		return Tree{}, fmt.Errorf("tree: empty path: %w", ErrBadPath)
	}
	if !validLength(length) {
		return Tree{}, fmt.Errorf("tree: length %g: %w", length, ErrBadLength)
	}

	// Collect the nodes along the path before copying anything.
	ids := make([]NodeID, len(path))
	cur := t.root
	var n node
	for depth, idx := range path {
		n = t.arena.get(cur)
		if idx < 0 || idx >= len(n.children) {
			return Tree{}, fmt.Errorf("tree: index %d at depth %d: %w", idx, depth, ErrBadPath)
		}
		ids[depth] = cur
		cur = n.children[idx].Child
	}

	// Rebuild bottom-up.
	newChild := cur
	newLen := length
	var rebuilt Tree
	var err error
	for depth := len(path) - 1; depth >= 0; depth-- {
		n = t.arena.get(ids[depth])
		kids := make([]Tree, len(n.children))
		lens := make([]float64, len(n.children))
		for i, b := range n.children {
			kids[i] = Tree{arena: t.arena, root: b.Child}
			lens[i] = b.Length
		}
		kids[path[depth]] = Tree{arena: t.arena, root: newChild}
		if depth == len(path)-1 {
			lens[path[depth]] = newLen
		}
		if rebuilt, err = t.arena.Join(kids, lens); err != nil {
			return Tree{}, err
		}
		newChild = rebuilt.root
	}

	return rebuilt, nil
}

// Unroot suppresses a degree-two root: if the root has exactly two children
// and at least one is internal, that internal child becomes the new root and
// adopts its sibling with the two root branch lengths summed. Trees whose
// root already has a different degree are returned unchanged.
func (t Tree) Unroot() (Tree, error) {
	if t.IsZero() {
		return Tree{}, ErrZeroTree
	}
	br := t.Branches()
	if len(br) != 2 {
		return t, nil
	}
	keep, other := 0, 1
	if len(t.arena.get(br[keep].Child).children) == 0 {
		keep, other = 1, 0
	}
	inner := t.arena.get(br[keep].Child)
	if len(inner.children) == 0 {
		return t, nil // two-leaf tree
	}

	kids := make([]Tree, 0, len(inner.children)+1)
	lens := make([]float64, 0, len(inner.children)+1)
	for _, b := range inner.children {
		kids = append(kids, Tree{arena: t.arena, root: b.Child})
		lens = append(lens, b.Length)
	}
	kids = append(kids, Tree{arena: t.arena, root: br[other].Child})
	lens = append(lens, br[keep].Length+br[other].Length)

	return t.arena.Join(kids, lens)
}
