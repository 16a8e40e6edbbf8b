// Package dogscolor is a metaheuristic solver for two NP-hard graph
// problems: Vertex Coloring and Maximum Clique, over DIMACS and CGSHOP'22
// instances.
//
// Two local-search families drive both problems:
//
//   - Conflict-Weighting Local Search (coloring.CWLS, clique.CWLS): repairs
//     an infeasible candidate under an adaptive per-edge (or per-pair)
//     weight; coloring.CWLS alternates repair with a destructive merge of
//     two color classes, clique.CWLS repairs by swaps and greedily extends
//     the candidate whenever it is a genuine clique.
//   - Partial-Weighting Local Search (coloring.PWLS, clique.PWLS): stays
//     feasible by construction, growing a per-vertex weight; coloring.PWLS
//     deletes a color class each time every vertex is placed, and
//     clique.PWLS evicts an inserted vertex's non-neighbors.
//
// Package layout:
//
//	graph/            Graph interface, DIMACS and CGSHOP instance types
//	geom/              segment-intersection predicate behind CGSHOPGraph
//	seed/              DSATUR, RLF, orientation-sorted, and greedy-clique seeds
//	tabu/              reactive tabu tenure shared by every core
//	coloring/, clique/ the four local-search cores
//	checker/           independent feasibility re-verification
//	driver/            seed check, stopping criterion, logging, run loop
//	ioformat/dimacs/, ioformat/cgshop/  instance and solution I/O
//	cmd/               one CLI binary per solver
//
// See cmd/cwlscolor, cmd/pwlscolor, cmd/cliqueswap and cmd/cliquepwls for
// runnable entry points.
package dogscolor
