// Package quartet completes partial distance matrices with the four-point
// condition and derives weighted quartet systems from them.
//
// Four-point condition: for taxa a,b,c,d of an additive tree metric, of the
// three pair sums
//
//	d(a,b)+d(c,d),  d(a,c)+d(b,d),  d(a,d)+d(b,c)
//
// the two largest are equal. Two consequences are used here:
//
//   - Enrich: when exactly one of the six distances of a quartet is unknown
//     and the two known sums differ, the unknown sum must equal the larger
//     one, which fixes the missing distance. Passes repeat until nothing new
//     can be deduced. Entries that stay unconstrained are a valid outcome.
//   - Quartets: the split with the smallest sum is the quartet topology and
//     half the gap to the middle sum is its weight (the internal edge length).
//     Star quartets (weight 0) are omitted.
//
// A missing distance is a 0 off the diagonal of a matrix.Distance.
package quartet
