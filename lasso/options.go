package lasso

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lasso/chordal"
	"github.com/katalvlaran/lasso/clique"
	"github.com/katalvlaran/lasso/updater"
)

// ErrNilMatrix is returned when a driver receives a nil matrix.
var ErrNilMatrix = errors.New("lasso: matrix is nil")

// Options selects the strategies of a run.
type Options struct {
	// CliqueFinder is a clique.New name: "heuristic" or "exact".
	CliqueFinder string
	// DistanceUpdater is an updater.New name: "modal", "min", "max", "mean".
	DistanceUpdater string
	// ChordalSeed is a chordal.ParseSeed name (Unrooted only).
	ChordalSeed string
	// Enrich runs four-point enrichment before deriving quartets.
	Enrich bool
	// Closure fills what four-point enrichment left unknown with
	// shortest-path lengths (Complete only).
	Closure bool
	// ExactMaxCalls bounds each exact clique search; 0 = unbounded.
	ExactMaxCalls int
	// ExactMaxDepth bounds exact clique recursion depth; -1 = unbounded.
	ExactMaxDepth int
	// ExactTimeLimit is a wall-clock budget for each exact clique search;
	// 0 = unbounded.
	ExactTimeLimit time.Duration
	// Logger receives run diagnostics; nil means zap.NewNop().
	Logger *zap.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns heuristic cliques, the modal updater and depth seeds.
func DefaultOptions() Options {
	return Options{
		CliqueFinder:    clique.NameHeuristic,
		DistanceUpdater: updater.NameModal,
		ChordalSeed:     chordal.SeedDepth.String(),
		Enrich:          false,
		Closure:         false,
		ExactMaxCalls:   0,
		ExactMaxDepth:   -1,
		ExactTimeLimit:  0,
		Logger:          zap.NewNop(),
	}
}

// WithCliqueFinder selects the clique finder by name.
func WithCliqueFinder(name string) Option {
	return func(o *Options) { o.CliqueFinder = name }
}

// WithDistanceUpdater selects the distance updater by name.
func WithDistanceUpdater(name string) Option {
	return func(o *Options) { o.DistanceUpdater = name }
}

// WithChordalSeed selects the chordal seed strategy by name.
func WithChordalSeed(name string) Option {
	return func(o *Options) { o.ChordalSeed = name }
}

// WithEnrich toggles four-point enrichment for Quartets.
func WithEnrich(on bool) Option {
	return func(o *Options) { o.Enrich = on }
}

// WithClosure toggles the shortest-path closure step of Complete.
func WithClosure(on bool) Option {
	return func(o *Options) { o.Closure = on }
}

// WithExactMaxCalls bounds every exact clique search to n recursion calls.
func WithExactMaxCalls(n int) Option {
	return func(o *Options) { o.ExactMaxCalls = n }
}

// WithExactMaxDepth bounds exact clique recursion depth.
func WithExactMaxDepth(d int) Option {
	return func(o *Options) { o.ExactMaxDepth = d }
}

// WithExactTimeLimit bounds the wall-clock time of every exact clique search.
func WithExactTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.ExactTimeLimit = d }
}

// WithLogger sets the run logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
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
