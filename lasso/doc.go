// Package lasso drives the reduction loops that turn a (possibly partial)
// distance matrix into a tree or a quartet system.
//
// Drivers:
//
//   - Rooted: each round thins a snapshot of the live graph to its
//     mutual-minimum edges (core.Graph.RetainMinEdges), finds a clique on the
//     snapshot and joins it on the live graph. On an ultrametric input this
//     recovers the generating rooted tree.
//   - Unrooted: each round completes the live graph to a chordal graph,
//     finds a clique on the completion, picks the neighbour-joining cherry
//     inside it (preferring pairs joined by a real edge) and joins that pair.
//     The final tree has its degree-two root suppressed.
//   - Quartets: optionally enriches a copy of the matrix by the four-point
//     condition, then derives the weighted quartet system.
//
// Rooted and Unrooted stop at a single live vertex, or earlier when no two
// live vertices share an edge; the surviving subtrees are reported as a
// forest. Reaching a forest is a result, not an error.
//
// Strategies are chosen by name (clique finder, distance updater, chordal
// seed) so Options can come straight from configuration. Every run gets a
// UUID run_id that tags its log lines; the logger defaults to zap.NewNop().
package lasso
