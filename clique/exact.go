package clique

import (
	"context"
	"time"

	"github.com/katalvlaran/lasso/core"
)

// deadlineCheckMask: the soft deadline and ctx are polled once every 1024 calls.
const deadlineCheckMask = 1023

// Exact searches for a maximum clique with Bron–Kerbosch/Tomita.
type Exact struct {
	opts Options
	last Stats
}

// Stats describes the most recent exact search.
type Stats struct {
	// Calls is the number of recursion calls performed.
	Calls int
	// Optimal is true when the search ran to completion.
	Optimal bool
	// Seeded is the size of the heuristic incumbent the search started from.
	Seeded int
}

// NewExact builds an exact finder with the given options.
func NewExact(opts ...Option) *Exact {
	return &Exact{opts: gatherOptions(opts...)}
}

// Stats returns the statistics of the last Find call.
func (e *Exact) Stats() Stats { return e.last }

// Find implements Finder.
//
// Errors:
//   - ErrNilGraph: g == nil.
//   - ctx.Err(): the context was cancelled mid-search.
//
// A call/depth/time budget that runs out is not an error: the best clique
// found so far is returned and Stats().Optimal reports false.
func (e *Exact) Find(g *core.Graph) ([]core.ID, error) {
	s, err := takeSnapshot(g)
	if err != nil {
		return nil, err
	}
	if err = e.opts.Ctx.Err(); err != nil {
		return nil, err
	}

	eng := &bkEngine{
		s:        s,
		best:     s.greedy(),
		maxCalls: e.opts.MaxCalls,
		maxDepth: e.opts.MaxDepth,
		ctx:      e.opts.Ctx,
	}
	if e.opts.TimeLimit > 0 {
		eng.deadline = time.Now().Add(e.opts.TimeLimit)
		eng.useDeadline = true
	}
	seeded := len(eng.best)

	p := make([]int, len(s.ids))
	for i := range p {
		p[i] = i
	}
	eng.expand(nil, p, nil, 0)

	e.last = Stats{Calls: eng.calls, Optimal: !eng.stopped && !eng.truncated, Seeded: seeded}
	if eng.err != nil {
		return nil, eng.err
	}

	return s.toIDs(eng.best), nil
}

// bkEngine holds the state of one Bron–Kerbosch run.
type bkEngine struct {
	s    *snapshot
	best []int

	calls       int
	maxCalls    int
	maxDepth    int
	ctx         context.Context
	deadline    time.Time
	useDeadline bool

	stopped   bool // budget exhausted or ctx cancelled
	truncated bool // a branch was cut by maxDepth
	err       error
}

// budgetLeft counts the call and polls the limits.
func (e *bkEngine) budgetLeft() bool {
	if e.stopped {
		return false
	}
	e.calls++
	if e.maxCalls > 0 && e.calls > e.maxCalls {
		e.stopped = true
		return false
	}
	if e.calls&deadlineCheckMask == 0 {
		if err := e.ctx.Err(); err != nil {
			e.err = err
			e.stopped = true
			return false
		}
		if e.useDeadline && time.Now().After(e.deadline) {
			e.stopped = true
			return false
		}
	}

	return true
}

// expand is one Bron–Kerbosch call: r is the current clique, p the
// candidates, x the excluded vertices. All slices ascend.
func (e *bkEngine) expand(r, p, x []int, depth int) {
	if !e.budgetLeft() {
		return
	}
	if len(p) == 0 {
		if len(x) == 0 && len(r) > len(e.best) {
			e.best = append([]int(nil), r...)
		}
		return
	}
	// Size bound: even taking every candidate cannot beat the incumbent.
	if len(r)+len(p) <= len(e.best) {
		return
	}
	if e.maxDepth >= 0 && depth >= e.maxDepth {
		e.truncated = true
		e.closeGreedily(r, p)
		return
	}

	pivot := e.choosePivot(p, x)
	for i := 0; i < len(p); i++ {
		v := p[i]
		if e.s.adj[pivot][v] {
			continue
		}
		nr := append(append(make([]int, 0, len(r)+1), r...), v)
		e.expand(nr, e.intersect(p, v), e.intersect(x, v), depth+1)
		if e.stopped {
			return
		}
		// Move v from P to X, keeping both ascending.
		p = append(p[:i:i], p[i+1:]...)
		i--
		x = insertSorted(x, v)
	}
}

// choosePivot picks u ∈ P∪X maximising |P ∩ N(u)|; ties → smaller index.
func (e *bkEngine) choosePivot(p, x []int) int {
	best, bestCount := -1, -1
	consider := func(u int) {
		c := 0
		for _, v := range p {
			if e.s.adj[u][v] {
				c++
			}
		}
		if c > bestCount || (c == bestCount && u < best) {
			best, bestCount = u, c
		}
	}
	for _, u := range p {
		consider(u)
	}
	for _, u := range x {
		consider(u)
	}

	return best
}

// closeGreedily extends r with a greedy clique inside p when depth is capped.
func (e *bkEngine) closeGreedily(r, p []int) {
	clique := append([]int(nil), r...)
	cand := append([]int(nil), p...)
	for len(cand) > 0 {
		pick, pickDeg := -1, -1
		for _, c := range cand {
			d := 0
			for _, o := range cand {
				if e.s.adj[c][o] {
					d++
				}
			}
			if d > pickDeg {
				pick, pickDeg = c, d
			}
		}
		clique = append(clique, pick)
		next := cand[:0]
		for _, c := range cand {
			if e.s.adj[pick][c] {
				next = append(next, c)
			}
		}
		cand = next
	}
	if len(clique) > len(e.best) {
		e.best = clique
	}
}

// intersect returns the members of set adjacent to v, in order.
func (e *bkEngine) intersect(set []int, v int) []int {
	out := make([]int, 0, len(set))
	for _, u := range set {
		if e.s.adj[v][u] {
			out = append(out, u)
		}
	}

	return out
}

func insertSorted(xs []int, v int) []int {
	i := 0
	for i < len(xs) && xs[i] < v {
		i++
	}
	out := make([]int, 0, len(xs)+1)
	out = append(out, xs[:i]...)
	out = append(out, v)

	return append(out, xs[i:]...)
}
