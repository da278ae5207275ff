// Package core defines the DistanceGraph used by the lasso reduction engine:
// a symmetric, sparse, positively weighted graph over taxon and cluster
// identifiers, together with the atomic JoinCluster reduction step.
//
// All exported methods take the graph's sync.RWMutex, so a Graph may be read
// concurrently; JoinCluster and the other mutators hold the write lock for
// their whole mutation phase, so no partially merged state is observable.
//
// This file declares ID, Edge, Updater, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrUnknownIdentifier - identifier was never registered in this graph.
//	ErrInactiveVertex    - identifier was registered but has been merged away.
//	ErrMalformedInput    - non-square/mismatched input, self pairs, bad member sets.
//	ErrBadWeight         - negative, NaN or ±Inf weight.
//	ErrEmptyLabel        - taxon label is the empty string.
//	ErrDuplicateLabel    - taxon label registered twice.
//	ErrNilUpdater        - JoinCluster called without a DistanceUpdater.
package core

import (
	"errors"
	"strconv"
	"sync"

	"github.com/katalvlaran/lasso/tree"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownIdentifier indicates a validated query on an ID never registered as a vertex.
	ErrUnknownIdentifier = errors.New("core: unknown identifier")

	// ErrInactiveVertex indicates an ID that was registered but merged into a cluster.
	ErrInactiveVertex = errors.New("core: vertex is no longer live")

	// ErrMalformedInput indicates structurally invalid input (shape, member sets, self pairs).
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrBadWeight indicates a negative or non-finite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite and non-negative")

	// ErrEmptyLabel indicates that a taxon label is empty.
	ErrEmptyLabel = errors.New("core: taxon label is empty")

	// ErrDuplicateLabel indicates that a taxon label is already registered.
	ErrDuplicateLabel = errors.New("core: duplicate taxon label")

	// ErrNilUpdater indicates that JoinCluster received a nil Updater.
	ErrNilUpdater = errors.New("core: distance updater is nil")
)

// ID is an opaque, totally ordered handle for a taxon or a cluster.
// Taxa are numbered from 0 in registration order; clusters are minted from
// the same monotonic counter, so IDs never collide.
type ID int

// NoID is passed to Updater.Compute when the target is the cluster itself
// (the within-cluster distances used to place the new node).
const NoID ID = -1

// String renders the decimal value.
func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Edge is a read-only snapshot of one undirected weighted edge with A < B.
type Edge struct {
	// A is the smaller endpoint.
	A ID

	// B is the larger endpoint.
	B ID

	// Weight is strictly positive.
	Weight float64
}

// Updater computes the distance from a freshly merged cluster to target from
// the present (non-zero) distances between target and the cluster members.
// Implementations must be pure: the result may depend only on the arguments.
type Updater interface {
	Compute(target ID, distances []float64) float64
}

// UpdaterFunc adapts an ordinary function to Updater.
type UpdaterFunc func(target ID, distances []float64) float64

// Compute calls f(target, distances).
func (f UpdaterFunc) Compute(target ID, distances []float64) float64 {
	return f(target, distances)
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithArena makes the graph append subtrees to a, so trees from several
// graphs (e.g. a graph and its clones) can be joined together.
func WithArena(a *tree.Arena) GraphOption {
	return func(g *Graph) {
		if a != nil {
			g.arena = a
		}
	}
}

// WithClusterPrefix sets the label prefix of minted clusters (default "#").
func WithClusterPrefix(prefix string) GraphOption {
	return func(g *Graph) { g.clusterPrefix = prefix }
}

// pair is the normalised unordered key of the edge table.
type pair struct {
	lo, hi ID
}

// makePair normalises (a, b) so that lo < hi.
func makePair(a, b ID) pair {
	if b < a {
		a, b = b, a
	}

	return pair{lo: a, hi: b}
}

// vertex is the arena record behind an ID. Records are never deleted, so
// merged identifiers stay resolvable for reporting.
type vertex struct {
	label   string    // taxon label, or clusterPrefix+id
	taxon   bool      // true for original taxa, false for clusters
	live    bool      // part of the current vertex set
	subtree tree.Tree // leaf for taxa, join node for clusters
}

// Graph is the working DistanceGraph.
//
// vertices is the ID-indexed record arena; edges is the flat pair-keyed
// weight table (absent ≡ zero ≡ no edge); adj mirrors edges for O(deg)
// neighbour queries. mu guards all fields.
type Graph struct {
	mu sync.RWMutex

	nextID        ID
	clusterPrefix string
	arena         *tree.Arena

	vertices map[ID]*vertex
	labels   map[string]ID // taxon label → ID
	edges    map[pair]float64
	adj      map[ID]map[ID]struct{}
}

// NewGraph creates an empty Graph with its own tree arena.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		clusterPrefix: "#",
		arena:         tree.NewArena(),
		vertices:      make(map[ID]*vertex),
		labels:        make(map[string]ID),
		edges:         make(map[pair]float64),
		adj:           make(map[ID]map[ID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	Registered int // every ID ever minted
	Live       int // current vertex set
	LiveTaxa   int // live vertices that are original taxa
	Clusters   int // minted clusters, live or not
	Edges      int // current edge count
}
