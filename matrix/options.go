// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix ingestion.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by symmetry and
	// diagonal checks during ingestion.
	DefaultEpsilon = 1e-9

	// DefaultSymmetrize controls whether FromRows averages d(a,b) and d(b,a)
	// instead of rejecting asymmetric input.
	DefaultSymmetrize = false
)

// Options holds ingestion policy. Fields are unexported; use Option constructors.
type Options struct {
	eps        float64
	symmetrize bool
}

// Option mutates Options. Apply via FromRows(..., opts...).
type Option func(*Options)

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon, symmetrize: DefaultSymmetrize}
}

// WithEpsilon sets the tolerance used for symmetry and diagonal checks.
// Panics if eps is negative or not finite (programmer error).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("matrix: WithEpsilon requires a finite eps >= 0")
	}

	return func(o *Options) { o.eps = eps }
}

// WithSymmetrize makes FromRows accept asymmetric input by averaging both
// triangles. A pair where exactly one side is zero takes the non-zero side.
func WithSymmetrize() Option {
	return func(o *Options) { o.symmetrize = true }
}

// gatherOptions folds opts over the defaults left-to-right.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
