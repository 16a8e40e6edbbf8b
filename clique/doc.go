// Package clique implements the two maximum-clique local-search cores, the
// clique analogues of package coloring's CWLS and
// PWLS: Conflict-Weighting Local Search, which maintains a candidate
// vertex set that may contain non-adjacent ("conflicting") pairs and swaps
// vertices under an adaptive per-pair weight, and Partial-Weighting Local
// Search, which maintains a candidate set that is always a genuine clique
// and grows it one vertex at a time under an adaptive per-vertex weight.
package clique
