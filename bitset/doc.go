// Package bitset provides a fixed-size, word-packed bitset over dense
// integer vertex IDs (0..n-1).
//
// It backs per-color class membership, candidate-clique membership, and
// adjacency rows for graph.Graph implementations. Every operation below
// O(n/64) is documented as such; IntersectCount is the hot path
// for merge-cost computation (intersect-and-popcount) described in the
// coloring CWLS core.
//
// Not safe for concurrent use without external synchronization: a Set is
// always owned by exactly one local-search core or graph instance for its
// lifetime.
package bitset
