// Package sparse implements the sparse-set data structure the CWLS/PWLS
// local-search cores use to track conflicting or uncolored vertices without
// scanning all n vertices per repair iteration.
//
// A Set over universe [0, n) supports O(1) Insert, Remove, Contains and
// iteration via At/Len, backed by a pair of arrays (dense, sparse) rather
// than a map or bitset. Iteration follows insertion order only until the
// first Remove, which swaps the last member into the freed slot.
package sparse
