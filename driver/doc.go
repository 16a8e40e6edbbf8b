// Package driver owns the outer run loop: it
// checks a seed solution for feasibility, builds the requested local-search
// core, wraps the caller's stopping.Criterion with periodic structured
// logging, runs the core to completion, and emits a final JSON statistics
// blob.
package driver
