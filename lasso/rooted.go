package lasso

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lasso/core"
	"github.com/katalvlaran/lasso/matrix"
)

// Rooted reconstructs a rooted tree from m.
//
// Each round:
//  1. Clone the live graph and thin the clone with RetainMinEdges.
//  2. Find a clique on the thinned clone.
//  3. Join the clique on the live graph.
//
// The globally shortest edge always survives thinning, so every round with
// at least one edge merges. The loop ends at one live vertex or no edges.
//
// Errors:
//   - ErrNilMatrix: m == nil.
//   - core.ErrMalformedInput / core.ErrBadWeight: m cannot form a graph.
//   - clique.ErrUnknownFinder, updater.ErrUnknownUpdater, chordal.ErrUnknownSeed.
//   - ctx.Err(): the context was cancelled.
func Rooted(ctx context.Context, m *matrix.Distance, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	g, err := core.FromMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("Rooted: %w", err)
	}
	r, err := newRun(ctx, "Rooted", g, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}

	for g.Order() > 1 {
		if err = ctx.Err(); err != nil {
			return nil, r.abort(err)
		}
		snap := g.Clone()
		snap.RetainMinEdges()
		members, err := r.finder.Find(snap)
		if err != nil {
			return nil, r.abort(err)
		}
		if len(members) < 2 {
			break
		}
		if err = r.join(members); err != nil {
			return nil, err
		}
	}

	return r.finish()
}
