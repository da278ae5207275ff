// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors from distance matrices and dense read-only views.
// Policy:
//   - Construction failures caused by the shape of the input are reported as
//     ErrMalformedInput (wrapping the matrix package's precise sentinel).
//   - Zero entries never become edges.

package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lasso/matrix"
)

// Source is the read side of the DistanceMatrix collaborator.
// *matrix.Distance satisfies it.
type Source interface {
	Taxa() []string
	Distance(a, b string) (float64, error)
}

// FromMatrix registers one taxon per src.Taxa() entry, in order (IDs 0..n-1),
// and one edge per positive distance.
//
// Errors:
//   - ErrMalformedInput: no taxa, or d(a,b) != d(b,a).
//   - ErrEmptyLabel / ErrDuplicateLabel: invalid taxa list.
//   - ErrBadWeight: negative or non-finite distance.
//
// Complexity: O(n²) Distance calls.
func FromMatrix(src Source, opts ...GraphOption) (*Graph, error) {
	if src == nil {
		return nil, fmt.Errorf("FromMatrix: nil source: %w", ErrMalformedInput)
	}
	taxa := src.Taxa()
	if len(taxa) == 0 {
		return nil, fmt.Errorf("FromMatrix: no taxa: %w", ErrMalformedInput)
	}

	g := NewGraph(opts...)
	ids := make([]ID, len(taxa))
	var err error
	for i, t := range taxa {
		if ids[i], err = g.AddTaxon(t); err != nil {
			return nil, fmt.Errorf("FromMatrix: %w", err)
		}
	}

	var ab, ba float64
	for i := 0; i < len(taxa); i++ {
		for j := i + 1; j < len(taxa); j++ {
			if ab, err = src.Distance(taxa[i], taxa[j]); err != nil {
				return nil, fmt.Errorf("FromMatrix: d(%s,%s): %w", taxa[i], taxa[j], err)
			}
			if ba, err = src.Distance(taxa[j], taxa[i]); err != nil {
				return nil, fmt.Errorf("FromMatrix: d(%s,%s): %w", taxa[j], taxa[i], err)
			}
			if ab != ba {
				return nil, fmt.Errorf("FromMatrix: d(%s,%s)=%g vs %g: %w", taxa[i], taxa[j], ab, ba, ErrMalformedInput)
			}
			if !validWeight(ab) {
				return nil, fmt.Errorf("FromMatrix: d(%s,%s)=%g: %w", taxa[i], taxa[j], ab, ErrBadWeight)
			}
			if ab > 0 {
				// g is not shared yet; no lock needed.
				g.setEdgeLocked(ids[i], ids[j], ab)
			}
		}
	}

	return g, nil
}

// FromRows builds a graph from dense rows. labels default to "0".."n-1".
// Non-square, ragged or label-mismatched rows yield ErrMalformedInput.
func FromRows(rows [][]float64, labels ...string) (*Graph, error) {
	var taxa []string
	if len(labels) > 0 {
		taxa = labels
	}
	m, err := matrix.FromRows(taxa, rows)
	if err != nil {
		if errors.Is(err, matrix.ErrBadWeight) {
			return nil, fmt.Errorf("FromRows: %w: %w", ErrBadWeight, err)
		}

		return nil, fmt.Errorf("FromRows: %w: %w", ErrMalformedInput, err)
	}

	return FromMatrix(m)
}

// Rows returns the live vertices (ascending) and the dense symmetric matrix
// of their distances, 0 meaning "no edge".
// Complexity: O(V²).
func (g *Graph) Rows() ([]ID, [][]float64) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.liveIDsLocked()
	out := make([][]float64, len(ids))
	for i := range ids {
		out[i] = make([]float64, len(ids))
	}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			w := g.edges[makePair(ids[i], ids[j])]
			out[i][j] = w
			out[j][i] = w
		}
	}

	return ids, out
}

// ToMatrix exports the live vertices as a labelled distance matrix.
func (g *Graph) ToMatrix() (*matrix.Distance, error) {
	ids, rows := g.Rows()
	labels := make([]string, len(ids))
	var err error
	for i, id := range ids {
		if labels[i], err = g.Label(id); err != nil {
			return nil, err
		}
	}

	return matrix.FromRows(labels, rows)
}
