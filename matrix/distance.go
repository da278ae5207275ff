// SPDX-License-Identifier: MIT
//
// File: distance.go
// Role: Taxon-labelled, symmetric, row-major distance matrix.
// Policy:
//   - Zero off-diagonal entries mean "unknown distance", never "identical taxa".
//   - Writes always keep [i,j] and [j,i] equal.
//   - Accessors return sentinel errors; nothing panics on user input.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Pair is an unordered taxon pair normalised so that A < B lexicographically.
type Pair struct {
	A, B string
}

// NewPair returns the normalised Pair for (a, b).
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// Distance is a square, symmetric matrix of non-negative float64 distances
// indexed by taxon label. data holds n*n elements in row-major order.
type Distance struct {
	taxa  []string       // taxon labels in row order
	index map[string]int // label -> row
	data  []float64      // flat backing storage, length == n*n
}

// DefaultLabel returns the label assigned to row i when no taxa are supplied.
func DefaultLabel(i int) string {
	return strconv.Itoa(i)
}

// DefaultLabels returns DefaultLabel(0..n-1).
func DefaultLabels(n int) []string {
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = DefaultLabel(i)
	}

	return labels
}

// NewDistance creates an all-unknown matrix over taxa.
// Stage 1 (Validate): at least one taxon, non-empty and unique labels.
// Stage 2 (Prepare): allocate flat backing slice and label index.
// Complexity: O(n²) time and memory.
func NewDistance(taxa []string) (*Distance, error) {
	if len(taxa) == 0 {
		return nil, fmt.Errorf("NewDistance: %w", ErrBadShape)
	}
	index := make(map[string]int, len(taxa))
	for i, t := range taxa {
		if t == "" {
			return nil, fmt.Errorf("NewDistance: row %d: %w", i, ErrEmptyTaxon)
		}
		if _, dup := index[t]; dup {
			return nil, fmt.Errorf("NewDistance: %q: %w", t, ErrDuplicateTaxon)
		}
		index[t] = i
	}
	labels := make([]string, len(taxa))
	copy(labels, taxa)

	return &Distance{
		taxa:  labels,
		index: index,
		data:  make([]float64, len(taxa)*len(taxa)),
	}, nil
}

// FromRows builds a Distance from dense rows. A nil taxa slice assigns
// DefaultLabels. Rows must form an n×n square whose diagonal is zero and
// whose entries are finite and non-negative; asymmetric input is rejected
// unless WithSymmetrize is given.
//
// Errors: ErrBadShape, ErrNonSquare, ErrDimensionMismatch, ErrEmptyTaxon,
// ErrDuplicateTaxon, ErrBadWeight, ErrNonZeroDiagonal, ErrAsymmetry.
//
// Complexity: O(n²).
func FromRows(taxa []string, rows [][]float64, opts ...Option) (*Distance, error) {
	o := gatherOptions(opts...)
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}
	if taxa == nil {
		taxa = DefaultLabels(n)
	}
	if len(taxa) != n {
		return nil, fmt.Errorf("FromRows: %d taxa for %d rows: %w", len(taxa), n, ErrDimensionMismatch)
	}

	m, err := NewDistance(taxa)
	if err != nil {
		return nil, err
	}

	var i, j int
	var a, b float64
	for i = 0; i < n; i++ {
		if !validWeight(rows[i][i]) {
			return nil, fmt.Errorf("FromRows: [%d,%d]: %w", i, i, ErrBadWeight)
		}
		if rows[i][i] > o.eps {
			return nil, fmt.Errorf("FromRows: [%d,%d]=%g: %w", i, i, rows[i][i], ErrNonZeroDiagonal)
		}
		for j = i + 1; j < n; j++ {
			a, b = rows[i][j], rows[j][i]
			if !validWeight(a) || !validWeight(b) {
				return nil, fmt.Errorf("FromRows: [%d,%d]: %w", i, j, ErrBadWeight)
			}
			if math.Abs(a-b) > o.eps {
				if !o.symmetrize {
					return nil, fmt.Errorf("FromRows: [%d,%d]=%g vs %g: %w", i, j, a, b, ErrAsymmetry)
				}
				a = symmetrizePair(a, b)
			}
			m.data[i*n+j] = a
			m.data[j*n+i] = a
		}
	}

	return m, nil
}

// symmetrizePair averages two observations of one distance; a zero side is unknown.
func symmetrizePair(a, b float64) float64 {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	default:
		return (a + b) / 2
	}
}

// validWeight reports whether w is finite and non-negative.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}

// Size returns the number of taxa.
func (m *Distance) Size() int {
	return len(m.taxa)
}

// Taxa returns a copy of the taxon labels in row order.
func (m *Distance) Taxa() []string {
	out := make([]string, len(m.taxa))
	copy(out, m.taxa)

	return out
}

// Index returns the row of taxon t.
func (m *Distance) Index(t string) (int, error) {
	i, ok := m.index[t]
	if !ok {
		return 0, fmt.Errorf("Distance.Index(%q): %w", t, ErrUnknownTaxon)
	}

	return i, nil
}

// Distance returns d(a,b); 0 means unknown. d(a,a) is always 0.
func (m *Distance) Distance(a, b string) (float64, error) {
	i, err := m.Index(a)
	if err != nil {
		return 0, err
	}
	j, err := m.Index(b)
	if err != nil {
		return 0, err
	}

	return m.data[i*len(m.taxa)+j], nil
}

// SetDistance assigns d(a,b)=d(b,a)=w. Setting 0 marks the pair unknown.
//
// Errors: ErrUnknownTaxon, ErrBadWeight, ErrNonZeroDiagonal (a==b with w!=0).
func (m *Distance) SetDistance(a, b string, w float64) error {
	i, err := m.Index(a)
	if err != nil {
		return err
	}
	j, err := m.Index(b)
	if err != nil {
		return err
	}

	return m.Set(i, j, w)
}

// At returns the entry at (i, j) or ErrOutOfRange.
// Complexity: O(1).
func (m *Distance) At(i, j int) (float64, error) {
	if err := m.checkIndex(i, j); err != nil {
		return 0, fmt.Errorf("Distance.At(%d,%d): %w", i, j, err)
	}

	return m.data[i*len(m.taxa)+j], nil
}

// Set writes w at (i, j) and (j, i).
// Complexity: O(1).
func (m *Distance) Set(i, j int, w float64) error {
	if err := m.checkIndex(i, j); err != nil {
		return fmt.Errorf("Distance.Set(%d,%d): %w", i, j, err)
	}
	if !validWeight(w) {
		return fmt.Errorf("Distance.Set(%d,%d)=%g: %w", i, j, w, ErrBadWeight)
	}
	if i == j {
		if w != 0 {
			return fmt.Errorf("Distance.Set(%d,%d)=%g: %w", i, j, w, ErrNonZeroDiagonal)
		}

		return nil
	}
	n := len(m.taxa)
	m.data[i*n+j] = w
	m.data[j*n+i] = w

	return nil
}

// get is the unchecked accessor used by package-internal loops.
func (m *Distance) get(i, j int) float64 {
	return m.data[i*len(m.taxa)+j]
}

func (m *Distance) checkIndex(i, j int) error {
	n := len(m.taxa)
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrOutOfRange
	}

	return nil
}

// Map returns the full pair -> distance view of all known (non-zero) entries.
// Complexity: O(n²).
func (m *Distance) Map() map[Pair]float64 {
	n := len(m.taxa)
	out := make(map[Pair]float64)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if w := m.data[i*n+j]; w > 0 {
				out[NewPair(m.taxa[i], m.taxa[j])] = w
			}
		}
	}

	return out
}

// Missing returns the unknown off-diagonal pairs as sorted (row, col) index
// pairs with row < col.
func (m *Distance) Missing() [][2]int {
	n := len(m.taxa)
	var out [][2]int
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.data[i*n+j] == 0 {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// Complete reports whether every off-diagonal entry is known.
func (m *Distance) Complete() bool {
	return len(m.Missing()) == 0
}

// Rows returns a fresh dense copy of the matrix.
func (m *Distance) Rows() [][]float64 {
	n := len(m.taxa)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		copy(out[i], m.data[i*n:(i+1)*n])
	}

	return out
}

// Clone returns a deep copy.
// Complexity: O(n²) time and memory.
func (m *Distance) Clone() *Distance {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	taxa := make([]string, len(m.taxa))
	copy(taxa, m.taxa)
	index := make(map[string]int, len(m.index))
	for k, v := range m.index {
		index[k] = v
	}

	return &Distance{taxa: taxa, index: index, data: data}
}

// Equal reports whether both matrices share taxa order and agree within eps.
func (m *Distance) Equal(other *Distance, eps float64) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.taxa) != len(other.taxa) {
		return false
	}
	for i := range m.taxa {
		if m.taxa[i] != other.taxa[i] {
			return false
		}
	}
	for i := range m.data {
		if math.Abs(m.data[i]-other.data[i]) > eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²) for string construction.
func (m *Distance) String() string {
	var sb strings.Builder
	n := len(m.taxa)
	var i, j int
	for i = 0; i < n; i++ {
		sb.WriteString(m.taxa[i])
		sb.WriteString(" [")
		for j = 0; j < n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*n+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
