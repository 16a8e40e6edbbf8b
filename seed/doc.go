// Package seed implements the starting-solution heuristics:
// DSATUR greedy coloring, RLF greedy coloring, the CGSHOP
// orientation-sorted greedy coloring, and greedy clique construction.
//
// These are well-known textbook algorithms, invoked once by the cmd/*
// binaries to produce a feasible starting point that the driver checks and
// hands to the CWLS/PWLS local-search cores.
package seed
