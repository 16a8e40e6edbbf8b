// Package checker independently re-verifies a coloring or clique solution
// against the instance it was computed for, both before a local-search core
// runs and after it returns, never trusting a core's own bookkeeping.
package checker
