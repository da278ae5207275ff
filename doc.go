// Package lasso reconstructs phylogenetic trees and quartet systems from
// pairwise distance matrices that may be incomplete.
//
// What is in the box?
//
//	A small, deterministic engine that brings together:
//		• matrix/   : taxon-labelled partial distance matrices, YAML/JSON I/O,
//		              seeded tree-metric generators, shortest-path closure
//		• core/     : the distance graph: vertex arena, pair-keyed edge table,
//		              RetainMinEdges and the atomic JoinCluster reduction step
//		• tree/     : append-only tree arena with O(1) copies and Newick output
//		• updater/  : distance updaters (modal, min, max, mean) by name
//		• clique/   : greedy and exact (Bron–Kerbosch/Tomita) clique finders
//		• chordal/  : chordal completion with depth/breadth/minimum seeds
//		• triplet/  : triangle enumeration and greedy triplet covers
//		• quartet/  : four-point enrichment and weighted quartet systems
//		• lasso/    : Rooted, Unrooted, Quartets and Complete drivers
//		• config/   : YAML/JSON + LASSO_* environment configuration
//		• cmd/lasso : the command-line front end
//
// Data flow
//
//	matrix ──FromMatrix──▶ core.Graph ──clique / chordal / triplet──▶ members
//	   ▲                       │
//	   │                JoinCluster + updater ──▶ tree arena ──▶ Newick
//	   └──── quartet.Enrich ───┴──▶ quartet.System ──▶ text
//
// Quick example: a triangle of equidistant taxa with a tail
//
//	    A
//	   2│╲2
//	    B─C──4──D
//	      2
//
//	m, _ := matrix.FromRows([]string{"A", "B", "C", "D"}, rows)
//	res, _ := lasso.Rooted(ctx, m)
//	fmt.Println(res.Tree.Newick()) // (D:2,(A:1,B:1,C:1):1);
//
//	go install github.com/katalvlaran/lasso/cmd/lasso@latest
package lasso
