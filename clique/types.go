package clique

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/lasso/core"
)

// Finder names accepted by New.
const (
	NameHeuristic = "heuristic"
	NameExact     = "exact"
)

var (
	// ErrUnknownFinder indicates that New received an unregistered name.
	ErrUnknownFinder = errors.New("clique: unknown clique finder")

	// ErrNilGraph indicates that Find received a nil graph.
	ErrNilGraph = errors.New("clique: graph is nil")
)

// Finder returns a clique of g's live vertices, sorted ascending.
// An empty graph yields an empty clique; an edgeless graph yields a single
// vertex.
type Finder interface {
	Find(g *core.Graph) ([]core.ID, error)
}

// Options is shared by every finder built through New.
type Options struct {
	// Ctx cancels exact search; defaults to context.Background().
	Ctx context.Context

	// MaxCalls bounds the number of exact-search recursion calls; 0 = unbounded.
	MaxCalls int

	// MaxDepth bounds exact-search recursion depth; -1 = unbounded.
	MaxDepth int

	// TimeLimit is a soft wall-clock budget for exact search; 0 = unbounded.
	TimeLimit time.Duration
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns unbounded search with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxCalls:  0,
		MaxDepth:  -1,
		TimeLimit: 0,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCalls bounds exact search to n recursion calls (n <= 0: unbounded).
func WithMaxCalls(n int) Option {
	return func(o *Options) { o.MaxCalls = n }
}

// WithMaxDepth bounds exact-search recursion depth (d < 0: unbounded).
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithTimeLimit sets a soft time budget for exact search (0: unbounded).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// New builds the finder registered under name.
func New(name string, opts ...Option) (Finder, error) {
	o := gatherOptions(opts...)
	switch name {
	case NameHeuristic:
		return Heuristic{}, nil
	case NameExact:
		return &Exact{opts: o}, nil
	default:
		return nil, fmt.Errorf("clique: %q: %w", name, ErrUnknownFinder)
	}
}

// Names lists the finder names accepted by New.
func Names() []string {
	return []string{NameExact, NameHeuristic}
}

// IsClique reports whether ids are distinct live vertices of g that are
// pairwise adjacent.
func IsClique(g *core.Graph, ids []core.ID) bool {
	seen := make(map[core.ID]struct{}, len(ids))
	for i, a := range ids {
		if live, err := g.IsTaxon(a); err != nil || !live {
			return false
		}
		if _, dup := seen[a]; dup {
			return false
		}
		seen[a] = struct{}{}
		for _, b := range ids[i+1:] {
			if !g.Adjacent(a, b) {
				return false
			}
		}
	}

	return true
}

// snapshot is a dense, index-based adjacency view of the live graph.
// Index i corresponds to ids[i]; ids ascend.
type snapshot struct {
	ids []core.ID
	adj [][]bool
	nbr [][]int // ascending neighbour indexes
}

func takeSnapshot(g *core.Graph) (*snapshot, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.Vertices()
	index := make(map[core.ID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	s := &snapshot{ids: ids, adj: make([][]bool, len(ids)), nbr: make([][]int, len(ids))}
	for i, id := range ids {
		s.adj[i] = make([]bool, len(ids))
		nb, err := g.Neighbours(id)
		if err != nil {
			return nil, err
		}
		for _, v := range nb {
			j, ok := index[v]
			if !ok {
				continue
			}
			s.adj[i][j] = true
			s.nbr[i] = append(s.nbr[i], j)
		}
		sort.Ints(s.nbr[i])
	}

	return s, nil
}

// toIDs maps indexes back to sorted IDs.
func (s *snapshot) toIDs(idx []int) []core.ID {
	out := make([]core.ID, len(idx))
	for i, x := range idx {
		out[i] = s.ids[x]
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
