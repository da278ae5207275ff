package lasso

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lasso/chordal"
	"github.com/katalvlaran/lasso/clique"
	"github.com/katalvlaran/lasso/core"
	"github.com/katalvlaran/lasso/tree"
	"github.com/katalvlaran/lasso/updater"
)

// Result is the outcome of a Rooted or Unrooted run.
type Result struct {
	// RunID tags the run's log lines.
	RunID string
	// Tree is the reconstructed tree when the run ended at one vertex.
	Tree tree.Tree
	// Forest holds the subtree of every surviving vertex, ascending by ID.
	// It has one element exactly when Complete is true.
	Forest []tree.Tree
	// Complete reports whether all taxa ended in a single tree.
	Complete bool
	// Merges counts JoinCluster calls.
	Merges int
	// Coverage is the fraction of taxa on a triplet cover of the input graph
	// (Unrooted only).
	Coverage float64
}

// run is the state shared by one driver invocation.
type run struct {
	id     string
	mode   string
	g      *core.Graph
	finder clique.Finder
	upd    core.Updater
	seed   chordal.Seed
	log    *zap.Logger
	start  time.Time
	merges int
}

// newRun resolves every strategy name up front so a bad option fails before
// any work is done.
func newRun(ctx context.Context, mode string, g *core.Graph, o Options) (*run, error) {
	finder, err := clique.New(o.CliqueFinder,
		clique.WithContext(ctx),
		clique.WithMaxCalls(o.ExactMaxCalls),
		clique.WithMaxDepth(o.ExactMaxDepth),
		clique.WithTimeLimit(o.ExactTimeLimit),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mode, err)
	}
	upd, err := updater.New(o.DistanceUpdater)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mode, err)
	}
	seed, err := chordal.ParseSeed(o.ChordalSeed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mode, err)
	}

	id := uuid.NewString()
	r := &run{
		id:     id,
		mode:   mode,
		g:      g,
		finder: finder,
		upd:    upd,
		seed:   seed,
		log:    o.Logger.With(zap.String("run_id", id), zap.String("mode", mode)),
		start:  time.Now(),
	}
	r.log.Info("lasso run started",
		zap.Int("taxa", g.Order()),
		zap.Int("edges", g.EdgeCount()),
		zap.String("clique_finder", o.CliqueFinder),
		zap.String("updater", o.DistanceUpdater),
	)

	return r, nil
}

// join merges members on the live graph and logs the step.
func (r *run) join(members []core.ID) error {
	cluster, node, err := r.g.JoinCluster(members, r.upd)
	if err != nil {
		return fmt.Errorf("%s: merge %d: %w", r.mode, r.merges+1, err)
	}
	r.merges++
	r.log.Debug("cluster joined",
		zap.Int("cluster", int(cluster)),
		zap.Ints("members", idsToInts(members)),
		zap.Float64("height", node.Height()),
		zap.Int("live", r.g.Order()),
	)

	return nil
}

// finish collects the surviving subtrees.
func (r *run) finish() (*Result, error) {
	live := r.g.Vertices()
	res := &Result{RunID: r.id, Merges: r.merges, Forest: make([]tree.Tree, 0, len(live))}
	for _, id := range live {
		t, err := r.g.Subtree(id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.mode, err)
		}
		res.Forest = append(res.Forest, t)
	}
	if len(res.Forest) == 1 {
		res.Complete = true
		res.Tree = res.Forest[0]
	}

	r.log.Info("lasso run finished",
		zap.Int("merges", r.merges),
		zap.Int("trees", len(res.Forest)),
		zap.Bool("complete", res.Complete),
		zap.Duration("elapsed", time.Since(r.start)),
	)

	return res, nil
}

// abort logs and wraps a context error.
func (r *run) abort(err error) error {
	r.log.Warn("lasso run aborted", zap.Int("merges", r.merges), zap.Error(err))

	return fmt.Errorf("%s: %w", r.mode, err)
}

func idsToInts(ids []core.ID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}

	return out
}
