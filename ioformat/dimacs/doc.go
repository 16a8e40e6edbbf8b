// Package dimacs reads and writes the DIMACS graph-coloring text format:
// an optional run of "c ..." comment lines, a header "p edge <n> <m>", then
// m "e <u> <v>" edge lines with 1-based vertex indices.
//
// Parsing is hand-rolled over bufio.Scanner: the grammar is three line
// shapes with no backtracking.
package dimacs
