// Package geom implements the integer-exact segment-intersection predicate
// used to materialize the CGSHOP'22 adjacency: two
// "vertices" (line segments) are adjacent iff they properly intersect.
//
// All arithmetic is performed in the int64 domain to avoid floating-point
// ambiguity at coordinates up to ~10^6; any floating-point fallback would be
// a correctness bug. This is the only geometry in the module.
package geom
