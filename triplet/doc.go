// Package triplet decomposes a distance graph into overlapping triangles.
//
// A triplet is a 3-clique: three live vertices pairwise joined by an edge.
// A triplet cover is a list of triplets that together touch every edge lying
// on some triangle, and therefore every vertex lying on some triangle.
// Vertices and edges on no triangle are left out; that is a valid, partial
// result and never an error.
//
// Dense enough covers of overlapping triplets are what lets a sparse "lasso"
// of distances pin down a whole tree, so the orchestrators report how much of
// the input a cover reaches.
package triplet
