// Package stopping defines the stopping criterion polled by every
// local-search core at the top of each repair iteration and after each
// merge/delete phase. A core must never hold a non-atomic invariant across
// the probe, so interrupting at a probe always leaves a consistent state.
package stopping

import "time"

// Criterion is polled cooperatively by the local-search cores; there is no
// preemption, asynchronous cancellation, or internal queue.
type Criterion interface {
	// IsFinished reports whether the search should stop now.
	IsFinished() bool
}

// TimeLimit stops once a wall-clock budget elapses.
type TimeLimit struct {
	deadline time.Time
}

// NewTimeLimit returns a Criterion that finishes once seconds have elapsed.
func NewTimeLimit(seconds float64) *TimeLimit {
	return &TimeLimit{deadline: time.Now().Add(time.Duration(seconds * float64(time.Second)))}
}

// IsFinished implements Criterion.
func (t *TimeLimit) IsFinished() bool { return time.Now().After(t.deadline) }

// Never never finishes; useful for property tests and bounded-iteration
// callers that manage their own outer loop.
type Never struct{}

// IsFinished implements Criterion.
func (Never) IsFinished() bool { return false }

// Manual is finished exactly when Stop has been called; used by tests that
// want to interrupt a core mid-repair deterministically.
type Manual struct {
	stopped bool
}

// IsFinished implements Criterion.
func (m *Manual) IsFinished() bool { return m.stopped }

// Stop marks the criterion finished.
func (m *Manual) Stop() { m.stopped = true }

// AfterIterations finishes after N calls to IsFinished, letting tests
// interrupt a core at a specific, reproducible point in its loop.
type AfterIterations struct {
	remaining int
}

// NewAfterIterations returns a Criterion that finishes once IsFinished has
// been called n times.
func NewAfterIterations(n int) *AfterIterations {
	return &AfterIterations{remaining: n}
}

// IsFinished implements Criterion.
func (a *AfterIterations) IsFinished() bool {
	if a.remaining <= 0 {
		return true
	}
	a.remaining--
	return false
}
