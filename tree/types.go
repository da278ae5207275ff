// Package tree defines the arena-backed LassoTree produced by cluster joins.
//
// Errors:
//
//	ErrEmptyTaxon      - leaf label is the empty string.
//	ErrNoChildren      - Join called without children.
//	ErrForeignTree     - a child belongs to another Arena.
//	ErrBadLength       - negative, NaN or ±Inf branch length.
//	ErrBadPath         - WithBranchLength path does not address a branch.
//	ErrZeroTree        - operation on the zero Tree value.
package tree

import (
	"errors"
	"sync"
)

// Sentinel errors for tree construction and editing.
var (
	// ErrEmptyTaxon indicates that a leaf was requested with an empty label.
	ErrEmptyTaxon = errors.New("tree: taxon label is empty")

	// ErrNoChildren indicates that Join was called with no children.
	ErrNoChildren = errors.New("tree: join requires at least one child")

	// ErrForeignTree indicates that a child Tree lives in a different Arena.
	ErrForeignTree = errors.New("tree: child belongs to another arena")

	// ErrBadLength indicates a negative or non-finite branch length.
	ErrBadLength = errors.New("tree: branch length must be finite and non-negative")

	// ErrBadPath indicates that a child-index path does not exist in the tree.
	ErrBadPath = errors.New("tree: invalid branch path")

	// ErrZeroTree indicates use of the zero Tree value.
	ErrZeroTree = errors.New("tree: zero tree")
)

// NodeID indexes a node inside its Arena.
type NodeID int

// Branch pairs a child node with the length of the edge leading to it.
type Branch struct {
	// Child is the node at the lower end of the branch.
	Child NodeID

	// Length is the branch length; always finite and >= 0.
	Length float64
}

// node is immutable once appended to the arena.
type node struct {
	taxon    string   // non-empty iff leaf
	children []Branch // nil for leaves
	height   float64  // max over children of Length + child height
	leaves   int      // number of leaves below (1 for a leaf)
}

// Arena is an append-only store of immutable nodes. Children are always
// appended before their parent, so every Tree in an arena is acyclic.
//
// Arena is safe for concurrent use: appends take the write lock and node
// reads take the read lock.
type Arena struct {
	mu    sync.RWMutex
	nodes []node
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Tree is a rooted view (arena, root) over shared, immutable nodes.
// Copying a Tree value is a structural-sharing copy; editing operations
// return new Trees and never touch nodes reachable from existing ones.
type Tree struct {
	arena *Arena
	root  NodeID
}
