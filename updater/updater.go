package updater

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/lasso/core"
)

// Registered policy names.
const (
	NameModal = "modal"
	NameMin   = "min"
	NameMax   = "max"
	NameMean  = "mean"
)

var (
	// ErrUnknownUpdater indicates that no policy is registered under a name.
	ErrUnknownUpdater = errors.New("updater: unknown distance updater")

	// ErrDuplicateUpdater indicates that Register was called twice for one name.
	ErrDuplicateUpdater = errors.New("updater: name already registered")
)

// Modal returns the most frequent distance; ties resolve to the smallest value.
type Modal struct{}

// Compute implements core.Updater.
func (Modal) Compute(_ core.ID, distances []float64) float64 {
	if len(distances) == 0 {
		return 0
	}
	ds := append([]float64(nil), distances...)
	sort.Float64s(ds)

	best, bestRun := ds[0], 0
	run := 0
	for i := range ds {
		if i > 0 && ds[i] == ds[i-1] {
			run++
		} else {
			run = 1
		}
		// Strict > keeps the earlier (smaller) value on ties.
		if run > bestRun {
			best, bestRun = ds[i], run
		}
	}

	return best
}

// Min returns the smallest distance (single linkage).
type Min struct{}

// Compute implements core.Updater.
func (Min) Compute(_ core.ID, distances []float64) float64 {
	if len(distances) == 0 {
		return 0
	}
	m := distances[0]
	for _, d := range distances[1:] {
		m = math.Min(m, d)
	}

	return m
}

// Max returns the largest distance (complete linkage).
type Max struct{}

// Compute implements core.Updater.
func (Max) Compute(_ core.ID, distances []float64) float64 {
	m := 0.0
	for _, d := range distances {
		m = math.Max(m, d)
	}

	return m
}

// Mean returns the arithmetic mean (average linkage).
type Mean struct{}

// Compute implements core.Updater.
func (Mean) Compute(_ core.ID, distances []float64) float64 {
	if len(distances) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range distances {
		sum += d
	}

	return sum / float64(len(distances))
}

// Factory builds a fresh Updater.
type Factory func() core.Updater

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{
		NameModal: func() core.Updater { return Modal{} },
		NameMin:   func() core.Updater { return Min{} },
		NameMax:   func() core.Updater { return Max{} },
		NameMean:  func() core.Updater { return Mean{} },
	}
)

// New returns the policy registered under name.
func New(name string) (core.Updater, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("updater: %q: %w", name, ErrUnknownUpdater)
	}

	return f(), nil
}

// Register adds a custom policy. Names are unique.
func Register(name string, f Factory) error {
	if name == "" || f == nil {
		return fmt.Errorf("updater: Register(%q): empty name or nil factory: %w", name, ErrUnknownUpdater)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		return fmt.Errorf("updater: Register(%q): %w", name, ErrDuplicateUpdater)
	}
	registry[name] = f

	return nil
}

// Names lists registered policy names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
