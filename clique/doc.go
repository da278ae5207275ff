// Package clique finds complete subgraphs of a core.Graph.
//
// What
//
//   - A clique is a set of live vertices that are pairwise joined by an edge.
//     Any positive weight counts as an edge; zero/absent does not.
//   - The lasso engine merges cliques into clusters, so the clique finder
//     decides which taxa are reduced together.
//
// Finders
//
//   - Heuristic (name "heuristic"): greedy growth. Start from all live
//     vertices as candidates; repeatedly add the candidate with the most
//     neighbours among the remaining candidates (ties → smaller ID) and keep
//     only its neighbours as candidates. O(V·(V+E)); maximal, not always maximum.
//
//   - Exact (name "exact"): Bron–Kerbosch with Tomita pivoting and a size
//     bound, seeded with the heuristic clique as the initial incumbent.
//     Exponential in the worst case. Budgets (WithMaxCalls, WithMaxDepth,
//     WithTimeLimit) turn it into an anytime search: when a budget runs out
//     the best clique found so far is returned, which is never smaller than
//     the heuristic one. Cancelling the context aborts with ctx.Err().
//
// Determinism
//
//	Vertices are indexed in ascending ID order and every branching loop runs
//	in that order, so identical graphs always yield identical cliques.
//
// Factory
//
//	New(name, opts...) builds either finder from a name, sharing one Options
//	value, so configuration can select the strategy without type switches.
package clique
