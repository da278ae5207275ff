// Package tree provides the LassoTree: a rooted tree of taxa built one
// internal node per cluster join, stored in an append-only node arena.
//
// Why an arena?
//
//   - Nodes are immutable once appended, so a Tree value (arena, root) can be
//     copied in O(1) and shared freely; edits (WithBranchLength, Unroot)
//     path-copy the affected nodes and return a new Tree.
//   - A child is always appended before its parent, so trees are acyclic by
//     construction; a node can never list itself as a child.
//
// Heights:
//
//	Height(leaf) = 0
//	Height(v)    = max over branches (v → c, ℓ) of ℓ + Height(c)
//
// Heights are fixed at node creation, which keeps Height O(1) and lets
// core.Graph compute additive branch lengths during JoinCluster.
//
// Rendering: Newick() produces a plain Newick string; richer formats (Nexus)
// belong to external writers.
package tree
