package tabu

import (
	"math/rand"

	"github.com/graphsolve/dogscolor/internal/rng"
)

// Tenure is a reactive tabu tenure over move keys of type K:
// Insert(key, f) records key as taken at the current iteration and
// recomputes the dynamic threshold randint(0, L) + floor(lambda*f), where f is the caller's
// current infeasibility measure; Contains(key) reports whether key is still
// tabu under that threshold.
type Tenure[K comparable] struct {
	l         int     // upper bound of the random tenure component
	lambda    float64 // reactive coefficient
	iter      int64   // monotonically increasing iteration counter
	threshold int64   // current dynamic tenure length
	lastUse   map[K]int64
	rnd       *rand.Rand
}

// New returns a Tenure with fixed size l, reactive coefficient lambda, and
// a PRNG derived from seed (seed==0 maps to internal/rng's fixed default
// stream, so runs stay reproducible even when no seed is supplied).
func New[K comparable](l int, lambda float64, seed int64) *Tenure[K] {
	return &Tenure[K]{
		l:       l,
		lambda:  lambda,
		lastUse: make(map[K]int64),
		rnd:     rng.FromSeed(seed),
	}
}

// Insert records key as taken at the current iteration and recomputes the
// dynamic threshold: threshold = randint(0, L) + floor(lambda * f).
func (t *Tenure[K]) Insert(key K, f int64) {
	t.lastUse[key] = t.iter
	random := int64(0)
	if t.l > 0 {
		random = int64(t.rnd.Intn(t.l + 1))
	}
	t.threshold = random + int64(t.lambda*float64(f))
}

// Contains reports whether key is still tabu: its last use is within the
// current dynamic threshold of the current iteration.
func (t *Tenure[K]) Contains(key K) bool {
	last, ok := t.lastUse[key]
	if !ok {
		return false
	}
	return last >= t.iter-t.threshold
}

// BumpIter advances the iteration counter by one.
func (t *Tenure[K]) BumpIter() { t.iter++ }

// Iter returns the current iteration counter, for callers that need it to
// compute an aspiration criterion alongside tabu status.
func (t *Tenure[K]) Iter() int64 { return t.iter }
