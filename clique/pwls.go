package clique

import (
	"github.com/graphsolve/dogscolor/bitset"
	"github.com/graphsolve/dogscolor/graph"
	"github.com/graphsolve/dogscolor/stopping"
	"github.com/graphsolve/dogscolor/tabu"
)

// PWLS is clique Partial-Weighting Local Search: the candidate set is
// always a genuine clique. Inserting a vertex first evicts every clique
// member it is not adjacent to, so the invariant never breaks; an adaptive
// per-vertex weight steers which vertex gets inserted next.
type PWLS struct {
	g graph.Graph
	n int

	inClique    *bitset.Set
	weights     []int64 // weights[v], grown by one each time v is (re)inserted
	totalWeight int64
	costInsert  []int64 // weight_cost_inserting[v]: cost of evicting v's non-neighbors

	// config holds the neighbors of the last inserted vertex; candidate
	// moves are restricted to it (configuration checking) until no eligible
	// candidate remains inside it. nil before the first insertion.
	config *bitset.Set

	tabu *tabu.Tenure[int]

	best       []int
	iterations int64
}

// PWLSParams configures a clique PWLS run.
type PWLSParams struct {
	TenureL      int
	TenureLambda float64
	Seed         int64
}

// NewPWLS builds a clique PWLS core from a seed that must already be a
// genuine clique (seed.GreedyClique produces one).
func NewPWLS(g graph.Graph, seed []int, params PWLSParams) *PWLS {
	n := g.NbVertices()
	p := &PWLS{
		g:          g,
		n:          n,
		inClique:   bitset.New(n),
		weights:    make([]int64, n),
		costInsert: make([]int64, n),
		tabu:       tabu.New[int](params.TenureL, params.TenureLambda, params.Seed),
	}
	for v := range p.weights {
		p.weights[v] = 1
	}
	for _, v := range seed {
		p.inClique.Insert(v)
	}
	p.totalWeight = int64(len(seed))
	for _, u := range seed {
		for _, v := range g.Vertices() {
			if v == u || g.AreAdjacent(u, v) {
				continue
			}
			p.costInsert[v] += p.weights[u]
		}
	}
	return p
}

// addVertex inserts u, first evicting every clique member not adjacent to
// it, then growing u's weight and resetting the configuration to N(u).
func (p *PWLS) addVertex(u int) {
	for _, v := range cliqueSlice(p.inClique) {
		if p.g.AreAdjacent(u, v) {
			continue
		}
		p.inClique.Remove(v)
		p.totalWeight -= p.weights[v]
		for w := 0; w < p.n; w++ {
			if w == v || p.g.AreAdjacent(v, w) {
				continue
			}
			p.costInsert[w] -= p.weights[v]
		}
	}
	p.inClique.Insert(u)
	p.weights[u]++
	uw := p.weights[u]
	p.totalWeight += uw
	for v := 0; v < p.n; v++ {
		if v == u || p.g.AreAdjacent(u, v) {
			continue
		}
		p.costInsert[v] += uw
	}
	if p.config == nil {
		p.config = bitset.New(p.n)
	}
	p.config.Clear()
	for _, v := range p.g.NeighborsOf(u) {
		p.config.Insert(v)
	}
	if cur := p.inClique.Count(); cur > len(p.best) {
		p.best = cliqueSlice(p.inClique)
	}
}

// selectInsert picks the outside vertex maximizing the resulting total
// weight. Non-tabu candidates inside the configuration come first, then
// non-tabu candidates anywhere, then the global best regardless of tabu, so
// the search never stalls.
func (p *PWLS) selectInsert() (v int, ok bool) {
	bestCfg, bestCfgW := -1, int64(0)
	best, bestW := -1, int64(0)
	fallback, fallbackW := -1, int64(0)
	for x := 0; x < p.n; x++ {
		if p.inClique.Test(x) {
			continue
		}
		projected := p.totalWeight + p.weights[x] + 1 - p.costInsert[x]
		if fallback == -1 || projected > fallbackW {
			fallback, fallbackW = x, projected
		}
		if p.tabu.Contains(x) {
			continue
		}
		if best == -1 || projected > bestW {
			best, bestW = x, projected
		}
		if p.config != nil && p.config.Test(x) {
			if bestCfg == -1 || projected > bestCfgW {
				bestCfg, bestCfgW = x, projected
			}
		}
	}
	switch {
	case bestCfg != -1:
		return bestCfg, true
	case best != -1:
		return best, true
	case fallback != -1:
		return fallback, true
	}
	return -1, false
}

// Run repeatedly inserts the best-scoring outside vertex until the
// stopping criterion fires, returning the largest clique seen.
func (p *PWLS) Run(stop stopping.Criterion) Result {
	if len(p.best) == 0 {
		p.best = cliqueSlice(p.inClique)
	}
	for !stop.IsFinished() {
		v, ok := p.selectInsert()
		if !ok {
			break
		}
		p.tabu.Insert(v, p.totalWeight)
		p.addVertex(v)
		p.tabu.BumpIter()
		p.iterations++
	}
	return Result{Clique: p.best, Size: len(p.best), Iterations: p.iterations}
}

// Iterations reports the number of insertions applied so far.
func (p *PWLS) Iterations() int64 { return p.iterations }

// BestSize reports the largest clique size seen so far.
func (p *PWLS) BestSize() int { return len(p.best) }

// Metric reports the current total vertex weight.
func (p *PWLS) Metric() int64 { return p.totalWeight }
