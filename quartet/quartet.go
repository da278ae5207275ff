package quartet

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lasso/matrix"
)

// ErrNilMatrix is returned when a nil matrix is passed.
var ErrNilMatrix = errors.New("quartet: matrix is nil")

// Quartet is the split A,B | C,D with its support weight.
type Quartet struct {
	A, B, C, D string
	Weight     float64
}

// String renders "A,B|C,D:w".
func (q Quartet) String() string {
	return fmt.Sprintf("%s,%s|%s,%s:%g", q.A, q.B, q.C, q.D, q.Weight)
}

// System is a weighted quartet system over a fixed taxa list.
// Quartets appear in lexicographic order of their taxon indexes.
type System struct {
	taxa     []string
	index    map[string]int
	quartets []Quartet
	lookup   map[[4]int]int
}

func newSystem(taxa []string) *System {
	s := &System{
		taxa:   append([]string(nil), taxa...),
		index:  make(map[string]int, len(taxa)),
		lookup: make(map[[4]int]int),
	}
	for i, t := range taxa {
		s.index[t] = i
	}

	return s
}

func (s *System) add(key [4]int, q Quartet) {
	s.lookup[key] = len(s.quartets)
	s.quartets = append(s.quartets, q)
}

// Taxa returns a copy of the taxa list.
func (s *System) Taxa() []string { return append([]string(nil), s.taxa...) }

// Len returns the number of recorded (non-star) quartets.
func (s *System) Len() int { return len(s.quartets) }

// Quartets returns a copy of the recorded quartets.
func (s *System) Quartets() []Quartet { return append([]Quartet(nil), s.quartets...) }

// Lookup returns the quartet recorded for the four taxa, in any order.
// ok is false for unknown taxa, repeated taxa, star quartets and
// combinations with an unknown distance.
func (s *System) Lookup(a, b, c, d string) (Quartet, bool) {
	var key [4]int
	for i, t := range []string{a, b, c, d} {
		x, ok := s.index[t]
		if !ok {
			return Quartet{}, false
		}
		key[i] = x
	}
	sort.Ints(key[:])
	for i := 1; i < 4; i++ {
		if key[i] == key[i-1] {
			return Quartet{}, false
		}
	}
	at, ok := s.lookup[key]
	if !ok {
		return Quartet{}, false
	}

	return s.quartets[at], true
}

// String renders one quartet per line.
func (s *System) String() string {
	var b strings.Builder
	for _, q := range s.quartets {
		b.WriteString(q.String())
		b.WriteByte('\n')
	}

	return b.String()
}

// split describes one of the three pairings of a quartet i<j<k<l by the
// index pairs it puts together.
type split struct{ p, q [2]int }

func splits(i, j, k, l int) [3]split {
	return [3]split{
		{[2]int{i, j}, [2]int{k, l}},
		{[2]int{i, k}, [2]int{j, l}},
		{[2]int{i, l}, [2]int{j, k}},
	}
}

// Quartets derives the quartet system of m.
//
// Steps, for every i<j<k<l with all six distances known:
//  1. Compute the three pair sums.
//  2. The minimal sum names the topology; ties keep the earlier split.
//  3. weight = (middle − minimal)/2; zero weight (a star) is skipped.
//
// Complexity: O(n⁴).
func Quartets(m *matrix.Distance) (*System, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	taxa := m.Taxa()
	n := len(taxa)
	rows := m.Rows()
	sys := newSystem(taxa)

	var sums [3]float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
			next:
				for l := k + 1; l < n; l++ {
					sp := splits(i, j, k, l)
					for x, s := range sp {
						a, b := rows[s.p[0]][s.p[1]], rows[s.q[0]][s.q[1]]
						if a == 0 || b == 0 {
							continue next
						}
						sums[x] = a + b
					}
					best := 0
					for x := 1; x < 3; x++ {
						if sums[x] < sums[best] {
							best = x
						}
					}
					mid := -1.0
					for x := 0; x < 3; x++ {
						if x != best && (mid < 0 || sums[x] < mid) {
							mid = sums[x]
						}
					}
					w := (mid - sums[best]) / 2
					if w <= 0 {
						continue
					}
					s := sp[best]
					sys.add([4]int{i, j, k, l}, Quartet{
						A: taxa[s.p[0]], B: taxa[s.p[1]],
						C: taxa[s.q[0]], D: taxa[s.q[1]],
						Weight: w,
					})
				}
			}
		}
	}

	return sys, nil
}
