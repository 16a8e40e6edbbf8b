// Package tabu implements the reactive tabu tenure: a move
// key is forbidden for a dynamically-sized window of iterations after it
// was last taken, the window growing with the caller-supplied infeasibility
// measure.
//
// Modeled as a small struct with three operations (Insert, Contains,
// BumpIter) parameterized by a comparable key type; no polymorphism needed
// at runtime.
package tabu
