package clique

import (
	"github.com/graphsolve/dogscolor/bitset"
	"github.com/graphsolve/dogscolor/graph"
	"github.com/graphsolve/dogscolor/stopping"
	"github.com/graphsolve/dogscolor/tabu"
)

// CWLS is clique Conflict-Weighting Local Search: a candidate
// vertex set that may contain non-adjacent pairs, repaired by swapping the
// most-conflicting member out for the least-conflicting outside vertex
// under an adaptive per-pair weight, and greedily extended by the outside
// vertex with the most neighbors inside it whenever it becomes a genuine
// clique.
type CWLS struct {
	g graph.Graph
	n int

	inClique    *bitset.Set
	weightAdj   []int64 // weight_adj_clique[v]: weight of non-adjacent clique members
	totalWeight int64
	weights     *pairWeights

	tabu *tabu.Tenure[int]

	best       []int
	iterations int64
}

// CWLSParams configures a clique CWLS run.
type CWLSParams struct {
	TenureL      int
	TenureLambda float64
	Seed         int64
}

// NewCWLS builds a clique CWLS core from a seed clique (seed.GreedyClique,
// or any vertex set; CWLS tolerates a non-clique seed).
func NewCWLS(g graph.Graph, seed []int, params CWLSParams) *CWLS {
	n := g.NbVertices()
	c := &CWLS{
		g:         g,
		n:         n,
		inClique:  bitset.New(n),
		weightAdj: make([]int64, n),
		weights:   newPairWeights(),
		tabu:      tabu.New[int](params.TenureL, params.TenureLambda, params.Seed),
	}
	for _, v := range seed {
		c.inClique.Insert(v)
	}
	for _, u := range seed {
		for _, v := range g.Vertices() {
			if v == u || g.AreAdjacent(u, v) {
				continue
			}
			c.weightAdj[v]++
			if c.inClique.Test(v) {
				c.totalWeight++
			}
		}
	}
	c.totalWeight /= 2 // each conflicting pair counted from both endpoints
	return c
}

func (c *CWLS) addVertex(v int) {
	c.inClique.Insert(v)
	for w := 0; w < c.n; w++ {
		if w == v || c.g.AreAdjacent(v, w) {
			continue
		}
		weight := c.weights.get(v, w)
		if c.inClique.Test(w) {
			c.totalWeight += weight
		}
		c.weightAdj[w] += weight
	}
}

func (c *CWLS) removeVertex(v int) {
	c.inClique.Remove(v)
	for w := 0; w < c.n; w++ {
		if w == v || c.g.AreAdjacent(v, w) {
			continue
		}
		weight := c.weights.get(v, w)
		c.weightAdj[w] -= weight
		if c.inClique.Test(w) {
			c.totalWeight -= weight
			c.weights.increment(v, w)
			c.weightAdj[v]++
		}
	}
}

// insertNewVertex greedily extends a genuine clique by repeatedly adding
// the outside vertex with the most neighbors inside the candidate until
// doing so introduces a conflict.
// Entered whenever totalWeight reaches zero.
func (c *CWLS) insertNewVertex() {
	c.snapshotBest()
	for {
		v := maxInsideDegreeOutside(c.g, c.inClique)
		if v == -1 {
			return
		}
		c.addVertex(v)
		if c.totalWeight == 0 {
			c.snapshotBest()
		} else {
			return
		}
	}
}

func (c *CWLS) snapshotBest() {
	cur := cliqueSlice(c.inClique)
	if len(cur) > len(c.best) {
		c.best = cur
	}
}

// selectSwap picks u (clique member with largest conflicting weight) and v
// (outside vertex with smallest conflicting weight, preferring non-tabu).
func (c *CWLS) selectSwap() (u, v int, ok bool) {
	u = -1
	var bestAdjW int64 = -1
	c.inClique.ForEach(func(x int) {
		if u == -1 || c.weightAdj[x] > bestAdjW {
			u, bestAdjW = x, c.weightAdj[x]
		}
	})
	if u == -1 {
		return -1, -1, false
	}
	v = -1
	var bestOutW int64
	fallbackV, fallbackW := -1, int64(0)
	for x := 0; x < c.n; x++ {
		if c.inClique.Test(x) {
			continue
		}
		if fallbackV == -1 || c.weightAdj[x] < fallbackW {
			fallbackV, fallbackW = x, c.weightAdj[x]
		}
		if c.tabu.Contains(x) {
			continue
		}
		if v == -1 || c.weightAdj[x] < bestOutW {
			v, bestOutW = x, c.weightAdj[x]
		}
	}
	if v == -1 {
		v = fallbackV
	}
	if v == -1 {
		return -1, -1, false
	}
	return u, v, true
}

// Run alternates swap repair and greedy extension until the stopping
// criterion fires, returning the largest genuine clique seen.
func (c *CWLS) Run(stop stopping.Criterion) Result {
	if c.totalWeight == 0 {
		c.insertNewVertex()
	}
	for !stop.IsFinished() {
		u, v, ok := c.selectSwap()
		if !ok {
			break
		}
		// the evicted vertex is the one forbidden from re-entering.
		c.tabu.Insert(u, c.totalWeight)
		c.removeVertex(u)
		c.addVertex(v)
		c.tabu.BumpIter()
		c.iterations++
		if c.totalWeight == 0 {
			c.insertNewVertex()
		}
	}
	return Result{Clique: c.best, Size: len(c.best), Iterations: c.iterations}
}

// Iterations reports the number of swaps applied so far.
func (c *CWLS) Iterations() int64 { return c.iterations }

// BestSize reports the largest genuine clique size seen so far.
func (c *CWLS) BestSize() int { return len(c.best) }

// Metric reports the current total pair-conflict weight (zero exactly when
// the candidate set is a genuine clique).
func (c *CWLS) Metric() int64 { return c.totalWeight }
