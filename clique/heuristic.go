package clique

import "github.com/katalvlaran/lasso/core"

// Heuristic grows a maximal clique greedily by remaining degree.
type Heuristic struct{}

// Find implements Finder.
//
// Steps:
//  1. candidates = all live vertices.
//  2. Pick the candidate with the most neighbours among candidates
//     (ties → smaller ID), add it to the clique.
//  3. candidates = candidates ∩ N(picked); repeat until empty.
//
// Complexity: O(k · V²) for a clique of size k on the dense snapshot.
func (Heuristic) Find(g *core.Graph) ([]core.ID, error) {
	s, err := takeSnapshot(g)
	if err != nil {
		return nil, err
	}

	return s.toIDs(s.greedy()), nil
}

// greedy returns the heuristic clique as snapshot indexes.
func (s *snapshot) greedy() []int {
	candidates := make([]int, len(s.ids))
	for i := range candidates {
		candidates[i] = i
	}

	var clique []int
	for len(candidates) > 0 {
		best, bestDeg := -1, -1
		for _, c := range candidates {
			deg := 0
			for _, o := range candidates {
				if s.adj[c][o] {
					deg++
				}
			}
			// candidates ascend, so strict > keeps the smaller index on ties.
			if deg > bestDeg {
				best, bestDeg = c, deg
			}
		}
		clique = append(clique, best)

		next := candidates[:0]
		for _, c := range candidates {
			if s.adj[best][c] {
				next = append(next, c)
			}
		}
		candidates = next
	}

	return clique
}
