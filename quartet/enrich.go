package quartet

import (
	"fmt"

	"github.com/katalvlaran/lasso/matrix"
)

// Enrich fills missing entries of m in place from the four-point condition
// and returns how many entries it filled.
//
// Implementation:
//   - Stage 1: Visit quartets i<j<k<l in lexicographic order. A quartet with
//     exactly one unknown distance d(x,y), partner pair (z,w), and known sums
//     S1 ≠ S2 yields d(x,y) = max(S1,S2) − d(z,w) when that is positive.
//     Deductions are written immediately and feed later quartets of the pass.
//   - Stage 2: Repeat passes until one deduces nothing.
//
// An entry, once set, is never revised: the first deduction in visiting order
// wins. A complete matrix is returned unchanged with 0.
//
// Complexity: O(P·n⁴) for P passes; P ≤ number of missing entries + 1.
func Enrich(m *matrix.Distance) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	n := m.Size()
	filled := 0
	for {
		pass, err := enrichPass(m, n)
		if err != nil {
			return filled, err
		}
		filled += pass
		if pass == 0 {
			return filled, nil
		}
	}
}

func enrichPass(m *matrix.Distance, n int) (int, error) {
	at := func(a, b int) float64 {
		d, _ := m.At(a, b) // a,b < n
		return d
	}

	filled := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					sp := splits(i, j, k, l)
					unknown, unknownSide, count := 0, 0, 0
					for x, s := range sp {
						if at(s.p[0], s.p[1]) == 0 {
							count++
							unknown, unknownSide = x, 0
						}
						if at(s.q[0], s.q[1]) == 0 {
							count++
							unknown, unknownSide = x, 1
						}
					}
					if count != 1 {
						continue
					}

					var known []float64
					for x, s := range sp {
						if x != unknown {
							known = append(known, at(s.p[0], s.p[1])+at(s.q[0], s.q[1]))
						}
					}
					if known[0] == known[1] {
						continue
					}
					target := known[0]
					if known[1] > target {
						target = known[1]
					}

					s := sp[unknown]
					miss, partner := s.p, s.q
					if unknownSide == 1 {
						miss, partner = s.q, s.p
					}
					d := target - at(partner[0], partner[1])
					if d <= 0 {
						continue
					}
					if err := m.Set(miss[0], miss[1], d); err != nil {
						return filled, fmt.Errorf("Enrich: d(%d,%d)=%g: %w", miss[0], miss[1], d, err)
					}
					filled++
				}
			}
		}
	}

	return filled, nil
}

// Lasso pairs a distance matrix with the quartet operations over it.
type Lasso struct {
	m *matrix.Distance
}

// NewLasso wraps m. The matrix is shared, not copied: EnrichMatrix edits it.
func NewLasso(m *matrix.Distance) (*Lasso, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return &Lasso{m: m}, nil
}

// Matrix returns the wrapped matrix.
func (l *Lasso) Matrix() *matrix.Distance { return l.m }

// EnrichMatrix runs Enrich on the wrapped matrix.
func (l *Lasso) EnrichMatrix() (int, error) { return Enrich(l.m) }

// GetQuartets derives the quartet system of the wrapped matrix.
func (l *Lasso) GetQuartets() (*System, error) { return Quartets(l.m) }
