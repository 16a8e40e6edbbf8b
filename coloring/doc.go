// Package coloring implements the two vertex-coloring local-search cores
// of this module: Conflict-Weighting Local Search (CWLS), which
// maintains a total k-coloring with adaptive edge weights and merges color
// classes when feasible, and Partial-Weighting Local Search (PWLS), which
// maintains a partial coloring with adaptive vertex weights and deletes a
// color class when feasible.
//
// Both cores share the same incremental bookkeeping discipline:
// a per-vertex-per-color weight aggregate (nbw), a sparse set of vertices
// needing attention, bitset-backed color classes, and a reactive tabu
// tenure (tabu.Tenure) for move selection. Every move updates these
// aggregates in O(deg(v)).
package coloring
