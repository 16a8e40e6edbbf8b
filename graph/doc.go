// Package graph defines the Graph interface shared by the DIMACS and
// CGSHOP instance types, and the two concrete implementations.
//
// A Graph exposes a dense vertex set 0..n-1, O(1) adjacency testing via a
// per-vertex bitset.Set, CSR-style neighbor enumeration, an optional
// "dominated vertex" flag (disabled by default), and a write-solution hook
// used by the CLI binaries.
//
//	DIMACSGraph  - loaded once from "p edge n m" / "e i j" text (ioformat/dimacs)
//	CGSHOPGraph  - loaded once from CGSHOP segment JSON (ioformat/cgshop),
//	               adjacency materialized by running geom.Intersect on every
//	               pair once, then cached as a bitset per vertex.
//
// Graphs are read-only after construction; all mutation happens in the
// local-search cores that consume a Graph.
package graph
