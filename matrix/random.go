// SPDX-License-Identifier: MIT
//
// File: random.go
// Role: Seeded generators of tree-derived distance matrices for tests,
// examples and benchmarks.
//
// Contract:
//   - rng must be non-nil (else ErrNeedRandSource).
//   - Taxa are labelled DefaultLabels(n).
//   - All weights are small integers (as float64) so equality checks are exact.
//
// Determinism:
//   - Fixed trial order; identical seeds yield identical matrices.

package matrix

import (
	"fmt"
	"math/rand"
)

const (
	minUltrametricTaxa = 2
	minCaterpillarTaxa = 4
	maxHeightStep      = 3
	maxBranchLength    = 5
)

// RandomUltrametric samples a rooted binary tree by random agglomeration and
// returns its ultrametric: d(i,j) = 2·height(lca(i,j)). Each merge is strictly
// higher than both merged clusters, so the maximum distance is twice the root
// height.
//
// Complexity: O(n²) time and memory.
func RandomUltrametric(n int, rng *rand.Rand) (*Distance, error) {
	if n < minUltrametricTaxa {
		return nil, fmt.Errorf("RandomUltrametric: n=%d < %d: %w", n, minUltrametricTaxa, ErrBadShape)
	}
	if rng == nil {
		return nil, fmt.Errorf("RandomUltrametric: %w", ErrNeedRandSource)
	}
	m, err := NewDistance(DefaultLabels(n))
	if err != nil {
		return nil, err
	}

	type cluster struct {
		members []int
		height  float64
	}
	clusters := make([]cluster, n)
	for i := 0; i < n; i++ {
		clusters[i] = cluster{members: []int{i}}
	}

	var (
		a, b   int
		height float64
	)
	for len(clusters) > 1 {
		a = rng.Intn(len(clusters))
		b = rng.Intn(len(clusters) - 1)
		if b >= a {
			b++
		}
		if a > b {
			a, b = b, a
		}
		height = clusters[a].height
		if clusters[b].height > height {
			height = clusters[b].height
		}
		height += float64(1 + rng.Intn(maxHeightStep))
		for _, i := range clusters[a].members {
			for _, j := range clusters[b].members {
				m.data[i*n+j] = 2 * height
				m.data[j*n+i] = 2 * height
			}
		}
		clusters[a].members = append(clusters[a].members, clusters[b].members...)
		clusters[a].height = height
		clusters = append(clusters[:b], clusters[b+1:]...)
	}

	return m, nil
}

// RandomCaterpillar returns the additive metric of a caterpillar tree whose
// leaves, read along the spine, are 0,1,…,n-1. For any a<b<c<d the induced
// quartet topology is ab|cd with a strictly positive internal edge.
//
// Complexity: O(n²).
func RandomCaterpillar(n int, rng *rand.Rand) (*Distance, error) {
	if n < minCaterpillarTaxa {
		return nil, fmt.Errorf("RandomCaterpillar: n=%d < %d: %w", n, minCaterpillarTaxa, ErrBadShape)
	}
	if rng == nil {
		return nil, fmt.Errorf("RandomCaterpillar: %w", ErrNeedRandSource)
	}
	m, err := NewDistance(DefaultLabels(n))
	if err != nil {
		return nil, err
	}

	// Spine vertices 1..n-2 with cumulative coordinates.
	spine := make([]float64, n-1)
	for k := 2; k <= n-2; k++ {
		spine[k] = spine[k-1] + float64(1+rng.Intn(maxBranchLength))
	}
	attach := func(i int) int {
		switch {
		case i < 1:
			return 1
		case i > n-2:
			return n - 2
		default:
			return i
		}
	}
	pendant := make([]float64, n)
	for i := range pendant {
		pendant[i] = float64(1 + rng.Intn(maxBranchLength))
	}

	var i, j int
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = pendant[i] + pendant[j] + spine[attach(j)] - spine[attach(i)]
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m, nil
}

// Sparsify forgets each known off-diagonal entry independently with
// probability p, visiting pairs in a shuffled but seed-determined order, and
// returns the number of forgotten entries.
func Sparsify(m *Distance, p float64, rng *rand.Rand) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if rng == nil {
		return 0, fmt.Errorf("Sparsify: %w", ErrNeedRandSource)
	}
	n := len(m.taxa)
	order := make([]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			order = append(order, i*n+j)
		}
	}
	shuffleIntsInPlace(order, rng)

	removed := 0
	var i, j int
	for _, cell := range order {
		i, j = cell/n, cell%n
		if m.get(i, j) == 0 || rng.Float64() >= p {
			continue
		}
		m.data[i*n+j] = 0
		m.data[j*n+i] = 0
		removed++
	}

	return removed, nil
}
