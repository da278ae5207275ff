// Package matrix offers the taxon-labelled distance matrix consumed by the
// lasso reduction engine.
//
// The matrix package provides:
//
//   - Distance: a square, symmetric, row-major matrix of non-negative
//     distances indexed by taxon label, where 0 off the diagonal means
//     "unknown" (a partial matrix).
//   - FromRows / Decode / LoadFile for ingesting dense rows, YAML or JSON
//     documents, with shape, label and numeric validation.
//   - Seeded generators (RandomUltrametric, RandomCaterpillar, Sparsify) that
//     produce tree-derived matrices for tests, examples and benchmarks.
//
// Matrices are O(n²) in memory; they are the exchange format between file
// readers and core.Graph, not a working structure for the reduction itself.
package matrix
