package lasso

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lasso/chordal"
	"github.com/katalvlaran/lasso/core"
	"github.com/katalvlaran/lasso/matrix"
	"github.com/katalvlaran/lasso/triplet"
)

// Unrooted reconstructs an unrooted tree from m.
//
// Before the loop, a triplet cover of the input graph measures how many taxa
// the known distances "lasso" together (Result.Coverage).
//
// Each round:
//  1. Complete the live graph to a chordal graph with the configured seed.
//  2. Find a clique on the completion.
//  3. Pick the cherry of the clique (see cherry) and, when the two are only
//     joined by a fill-in edge, write that imputed distance to the live graph.
//  4. Join the cherry on the live graph.
//
// A finished tree has its degree-two root suppressed.
//
// Errors: as Rooted.
func Unrooted(ctx context.Context, m *matrix.Distance, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	g, err := core.FromMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("Unrooted: %w", err)
	}
	r, err := newRun(ctx, "Unrooted", g, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}

	cover, err := triplet.FindTripletCovers(g)
	if err != nil {
		return nil, r.abort(err)
	}
	coverage := triplet.Coverage(g, cover)
	r.log.Info("triplet cover", zap.Int("triplets", len(cover)), zap.Float64("coverage", coverage))

	for g.Order() > 1 && g.EdgeCount() > 0 {
		if err = ctx.Err(); err != nil {
			return nil, r.abort(err)
		}
		completion, err := chordal.Find(g, chordal.WithSeed(r.seed))
		if err != nil {
			return nil, r.abort(err)
		}
		members, err := r.finder.Find(completion)
		if err != nil {
			return nil, r.abort(err)
		}
		if len(members) < 2 {
			break
		}

		a, b := cherry(g, completion, members)
		if !g.Adjacent(a, b) {
			if err = g.SetDistance(a, b, completion.Distance(a, b)); err != nil {
				return nil, r.abort(err)
			}
		}
		if err = r.join([]core.ID{a, b}); err != nil {
			return nil, err
		}
	}

	res, err := r.finish()
	if err != nil {
		return nil, err
	}
	res.Coverage = coverage
	if res.Complete {
		if res.Tree, err = res.Tree.Unroot(); err != nil {
			return nil, r.abort(err)
		}
		res.Forest[0] = res.Tree
	}

	return res, nil
}

// cherry selects the pair of clique members to join next.
//
// Over the completed distances d and clique size k, it minimises the
// neighbour-joining criterion
//
//	Q(i,j) = (k−2)·d(i,j) − Σ_r d(i,r) − Σ_r d(j,r)
//
// among pairs joined by a real edge of live, or among all pairs when none is.
// Ties keep the lexicographically smallest pair.
func cherry(live, completion *core.Graph, members []core.ID) (core.ID, core.ID) {
	k := len(members)
	if k == 2 {
		return members[0], members[1]
	}

	rowSum := make([]float64, k)
	for i, a := range members {
		for _, b := range members {
			rowSum[i] += completion.Distance(a, b)
		}
	}

	anyReal := false
	for i := 0; i < k && !anyReal; i++ {
		for j := i + 1; j < k; j++ {
			if live.Adjacent(members[i], members[j]) {
				anyReal = true
				break
			}
		}
	}

	bi, bj := -1, -1
	var best float64
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if anyReal && !live.Adjacent(members[i], members[j]) {
				continue
			}
			q := float64(k-2)*completion.Distance(members[i], members[j]) - rowSum[i] - rowSum[j]
			if bi < 0 || q < best {
				bi, bj, best = i, j, q
			}
		}
	}

	return members[bi], members[bj]
}
