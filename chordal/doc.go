// Package chordal completes a distance graph to a chordal (triangulated) graph.
//
// A graph is chordal when every cycle of length ≥ 4 has a chord. Chordal
// graphs admit a perfect elimination ordering (PEO), and their maximum cliques
// are easy to find, so the unrooted lasso reduction runs its clique search on a
// chordal completion of the live graph.
//
// Completion (Eliminate / Find):
//
//  1. A seed traversal orders the vertices along a spanning forest:
//     - SeedDepth:   DFS discovery order (roots and neighbours ascending).
//     - SeedBreadth: BFS discovery order (roots and neighbours ascending).
//     - SeedMinimum: DFS discovery order over the Kruskal minimum spanning forest.
//  2. Vertices are eliminated in reverse seed order. When v is eliminated every
//     non-adjacent pair {a,b} among its remaining neighbours receives a fill-in
//     edge of weight d(a,v)+d(v,b). A fill-in produced again by a later vertex
//     keeps the smaller path sum.
//  3. The elimination order is a PEO of the completed graph.
//
// The input graph is never modified; the completion is a Clone sharing IDs,
// labels and subtrees.
//
// IsChordal checks chordality with maximum cardinality search followed by the
// Tarjan–Yannakakis PEO test.
//
// Complexity: O(V·Δ²) fill-in work for maximum remaining degree Δ, O(E log E)
// for the Kruskal seed.
package chordal
