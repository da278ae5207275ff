// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. No code path panics on user-triggered input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// returned directly or wrapped with fmt.Errorf("ctx: %w", ErrX); callers match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> dimension mismatch -> taxon labels -> numeric policy -> symmetry.

var (
	// ErrBadShape is returned when a matrix would have no taxa at all.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that the row data is not an n×n square.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates the taxa list and the row data disagree in size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrEmptyTaxon indicates an empty taxon label.
	ErrEmptyTaxon = errors.New("matrix: taxon label is empty")

	// ErrDuplicateTaxon indicates the same label was listed twice.
	ErrDuplicateTaxon = errors.New("matrix: duplicate taxon label")

	// ErrUnknownTaxon indicates that a referenced taxon is not part of the matrix.
	ErrUnknownTaxon = errors.New("matrix: unknown taxon")

	// ErrBadWeight signals a negative, NaN or ±Inf distance.
	ErrBadWeight = errors.New("matrix: distance must be finite and non-negative")

	// ErrAsymmetry signals d(a,b) != d(b,a) beyond the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a non-zero self distance.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNilMatrix indicates that a nil *Distance was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNeedRandSource indicates a generator was called without an RNG.
	ErrNeedRandSource = errors.New("matrix: random source is required")
)
