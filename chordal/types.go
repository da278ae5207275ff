package chordal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lasso/core"
)

var (
	// ErrUnknownSeed indicates an unrecognised seed strategy name.
	ErrUnknownSeed = errors.New("chordal: unknown seed strategy")

	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("chordal: graph is nil")
)

// Seed selects the spanning-forest traversal that orders vertices.
type Seed int

const (
	// SeedDepth orders vertices by DFS discovery.
	SeedDepth Seed = iota
	// SeedBreadth orders vertices by BFS discovery.
	SeedBreadth
	// SeedMinimum orders vertices by DFS over the minimum spanning forest.
	SeedMinimum
)

var seedNames = map[Seed]string{
	SeedDepth:   "depth",
	SeedBreadth: "breadth",
	SeedMinimum: "minimum",
}

// String returns the registry name of s.
func (s Seed) String() string {
	if n, ok := seedNames[s]; ok {
		return n
	}

	return fmt.Sprintf("Seed(%d)", int(s))
}

// ParseSeed resolves a seed strategy name ("depth", "breadth", "minimum").
func ParseSeed(name string) (Seed, error) {
	for s, n := range seedNames {
		if n == name {
			return s, nil
		}
	}

	return SeedDepth, fmt.Errorf("ParseSeed(%q): %w", name, ErrUnknownSeed)
}

// SeedNames lists the accepted seed names in Seed order.
func SeedNames() []string {
	return []string{SeedDepth.String(), SeedBreadth.String(), SeedMinimum.String()}
}

// Options configures Eliminate and Find.
type Options struct {
	Seed Seed
}

// Option mutates Options.
type Option func(*Options)

// WithSeed selects the seed strategy.
func WithSeed(s Seed) Option {
	return func(o *Options) { o.Seed = s }
}

// DefaultOptions returns Options{Seed: SeedDepth}.
func DefaultOptions() Options {
	return Options{Seed: SeedDepth}
}

// Elimination is the result of completing a graph.
type Elimination struct {
	// Graph is the chordal completion (a clone of the input plus fill-in).
	Graph *core.Graph
	// Order is the elimination order; it is a PEO of Graph.
	Order []core.ID
	// FillIn lists the added edges sorted by (A, B) with their final weights.
	FillIn []core.Edge
}
