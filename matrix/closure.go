// SPDX-License-Identifier: MIT
//
// File: closure.go
// Role: Shortest-path (metric) closure of a partial distance matrix.
//
// Contract:
//   - Known entries are never changed, even when a shorter path exists.
//   - An unknown entry becomes the length of the shortest path through known
//     entries; pairs in different components stay unknown.
//   - Loop order is fixed (k → i → j) for deterministic accumulation.

package matrix

import "math"

// ShortestPathClosure fills every unknown entry of m that is reachable
// through known entries with its shortest-path length and returns the number
// of pairs filled. The filled values are upper bounds of any tree metric
// consistent with m.
//
// Implementation:
//   - Stage 1: Copy the flat buffer; unknown off-diagonal cells become +Inf.
//   - Stage 2: Floyd–Warshall relaxation in place on the copy.
//   - Stage 3: Write back finite results for the cells that were unknown.
//
// Complexity: O(n³) time, O(n²) extra memory.
func ShortestPathClosure(m *Distance) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	n := len(m.taxa)

	// Stage 1: distances with +Inf for "no edge".
	d := make([]float64, len(m.data))
	copy(d, m.data)
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && d[i*n+j] == 0 {
				d[i*n+j] = math.Inf(1)
			}
		}
	}

	// Stage 2: relax through every intermediate k.
	var baseK, baseI int
	var ik, cand float64
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ik = d[baseI+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				cand = ik + d[baseK+j]
				if cand < d[baseI+j] {
					d[baseI+j] = cand
				}
			}
		}
	}

	// Stage 3: fill only what was unknown.
	filled := 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.data[i*n+j] != 0 || math.IsInf(d[i*n+j], 1) {
				continue
			}
			m.data[i*n+j] = d[i*n+j]
			m.data[j*n+i] = d[i*n+j]
			filled++
		}
	}

	return filled, nil
}
