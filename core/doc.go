// Package core provides the DistanceGraph of the lasso engine: a sparse,
// symmetric, positively weighted graph over taxon identifiers that is
// reduced in place by merging vertex sets into clusters.
//
// Storage (an arena instead of pointer-linked vertices):
//
//   - vertices: map ID → record {label, taxon?, live?, subtree}; records are
//     never deleted, so merged identifiers stay resolvable for reporting.
//   - edges: flat table keyed by the normalised pair {lo, hi}; a missing key
//     and a zero weight both mean "no edge".
//   - adj: neighbour sets mirroring edges for O(deg) queries.
//
// Identifiers:
//
//	Taxa get IDs 0..n-1 in input order; JoinCluster mints the next ID from the
//	same counter. Clone and Induced carry the counter, so IDs never collide.
//
// Core Methods:
//
//	// Construction
//	FromMatrix(src Source) (*Graph, error)      // O(n²)
//	FromRows(rows [][]float64, labels...) (*Graph, error)
//	AddTaxon(label string) (ID, error)          // O(1)
//
//	// Queries
//	Neighbours(id ID) ([]ID, error)             // O(d log d), ErrUnknownIdentifier
//	IsTaxon(id ID) (bool, error)                // live?, ErrUnknownIdentifier
//	Distance(a, b ID) float64                   // raw, 0 when absent
//	Vertices() []ID / Edges() []Edge / Rows()
//
//	// Mutation
//	SetDistance(a, b ID, w float64) error
//	RemoveDistance(a, b ID)                     // idempotent
//	RetainMinEdges()                            // minimum-distance skeleton
//	JoinCluster(members []ID, u Updater) (ID, tree.Tree, error)
//
// JoinCluster is the reduction step. Its new edges are produced by an
// Updater (see package updater) from the present member distances, and its
// tree node places the cluster at half the updater's within-cluster
// distance, with member branch lengths chosen so heights stay additive.
//
// Concurrency: one sync.RWMutex guards the graph. Algorithms in this module
// are single-threaded; the lock makes JoinCluster atomic to any reader.
package core
