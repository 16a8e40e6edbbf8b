package coloring

import (
	"github.com/graphsolve/dogscolor/graph"
	"github.com/graphsolve/dogscolor/sparse"
	"github.com/graphsolve/dogscolor/stopping"
)

// CWLS is Conflict-Weighting Local Search: a total k-coloring
// (every vertex is colored, possibly conflicting) repaired by recoloring
// conflicting vertices under an adaptive per-edge weight, alternating with
// a merge phase that removes a color class whenever the coloring is
// feasible.
type CWLS struct {
	*base

	// edgeWeight[v][i] is the weight of the edge from v to
	// g.NeighborsOf(v)[i]. base.neighborPos[v][i] gives the index of that
	// same edge within edgeWeight[u], so either endpoint updates both
	// copies in O(1) without a search.
	edgeWeight [][]int64

	conflictCount  []int32
	conflictSet    *sparse.Set
	totalConflicts int64 // number of conflicting edges, maintained incrementally

	bestPartition [][]int
	bestK         int
}

// CWLSParams configures a CWLS run.
type CWLSParams struct {
	TenureL      int
	TenureLambda float64
	Seed         int64
}

// NewCWLS builds a CWLS core from a total seed coloring (every vertex
// assigned exactly one of len(seed) colors; every seed heuristic in
// package seed produces one). Every edge starts at weight 1.
func NewCWLS(g graph.Graph, seed [][]int, params CWLSParams) *CWLS {
	k := len(seed)
	b := newBase(g, k, params.TenureL, params.TenureLambda, params.Seed)
	c := &CWLS{
		base:          b,
		edgeWeight:    make([][]int64, b.n),
		conflictCount: make([]int32, b.n),
	}
	for v := 0; v < b.n; v++ {
		c.edgeWeight[v] = make([]int64, len(g.NeighborsOf(v)))
		for i := range c.edgeWeight[v] {
			c.edgeWeight[v][i] = 1
		}
	}
	for colorIdx, class := range seed {
		for _, v := range class {
			b.color[v] = colorIdx
			b.classSize[colorIdx]++
			b.members[colorIdx].Insert(v)
		}
	}
	for v := 0; v < b.n; v++ {
		for _, u := range g.NeighborsOf(v) {
			b.nbw[b.idx(u, b.color[v])]++
			b.nbc[b.idx(u, b.color[v])]++
		}
		c.conflictCount[v] = b.nbc[b.idx(v, b.color[v])]
	}
	c.W = 0
	for v := 0; v < b.n; v++ {
		for i, u := range g.NeighborsOf(v) {
			if u > v && b.color[u] == b.color[v] {
				c.W += c.edgeWeight[v][i]
			}
		}
	}
	c.conflictSet = sparseFrom(b.n, func(v int) bool { return c.conflictCount[v] > 0 })
	c.totalConflicts = conflictingEdgeCount(b)
	return c
}

// recolor moves v from its current color to cPrime, updating every
// incrementally-maintained aggregate in one O(deg(v)) pass.
func (c *CWLS) recolor(v, cPrime int) {
	cOld := c.color[v]
	if cOld == cPrime {
		return
	}
	neighbors := c.g.NeighborsOf(v)
	positions := c.neighborPos[v]
	for i, u := range neighbors {
		w := c.edgeWeight[v][i]
		c.nbw[c.idx(u, cOld)] -= w
		c.nbw[c.idx(u, cPrime)] += w
		c.nbc[c.idx(u, cOld)]--
		c.nbc[c.idx(u, cPrime)]++

		if c.color[u] == cOld {
			c.conflictCount[u]--
			c.conflictCount[v]--
			c.W -= w
			c.totalConflicts--
		}
		if c.color[u] == cPrime {
			c.conflictCount[u]++
			c.conflictCount[v]++
			c.W += w
			c.totalConflicts++

			nw := w + 1
			c.edgeWeight[v][i] = nw
			c.edgeWeight[u][positions[i]] = nw
			c.nbw[c.idx(u, cPrime)]++
			c.nbw[c.idx(v, cPrime)]++
			c.W++

			c.conflictSet.Insert(u)
			c.conflictSet.Insert(v)
		}
	}
	c.members[cOld].Remove(v)
	c.classSize[cOld]--
	c.color[v] = cPrime
	c.members[cPrime].Insert(v)
	c.classSize[cPrime]++
	if c.conflictCount[v] == 0 {
		c.conflictSet.Remove(v)
	} else {
		c.conflictSet.Insert(v)
	}
}

// mergeCost returns the sum, over v in class c1, of nbw[v][c2]: the total
// weighted penalty that would be introduced by moving every vertex of c1
// into c2.
func (c *CWLS) mergeCost(c1, c2 int) int64 {
	var cost int64
	c.members[c1].ForEach(func(v int) {
		cost += c.nbw[c.idx(v, c2)]
	})
	return cost
}

// activeColors returns the indices of currently non-empty classes.
func (c *CWLS) activeColors() []int {
	out := make([]int, 0, c.k)
	for cl := 0; cl < c.k; cl++ {
		if c.classSize[cl] > 0 {
			out = append(out, cl)
		}
	}
	return out
}

// mergePhase merges the cheapest pair of non-empty color classes, repeating
// while the merged coloring stays feasible. The first merge that introduces
// conflicts is kept and the phase returns; it also returns when the stopping
// criterion fires or at most one class is left.
func (c *CWLS) mergePhase(stop stopping.Criterion) {
	for {
		if stop.IsFinished() {
			return
		}
		active := c.activeColors()
		if len(active) <= 1 {
			return
		}
		bestCost := int64(-1)
		bestC1, bestC2 := -1, -1
		for i := 0; i < len(active); i++ {
			for j := i + 1; j < len(active); j++ {
				cost := c.mergeCost(active[i], active[j])
				if bestCost < 0 || cost < bestCost {
					bestCost = cost
					bestC1, bestC2 = active[i], active[j]
				}
			}
		}
		cMin, cMax := bestC1, bestC2
		if cMin > cMax {
			cMin, cMax = cMax, cMin
		}
		for _, v := range c.members[cMin].Slice() {
			c.recolor(v, cMax)
		}
		if c.W == 0 {
			c.snapshotBest()
			continue
		}
		return
	}
}

// repairPhase recolors conflicting vertices until the coloring is feasible
// or the stopping criterion fires. The aspiration threshold is the smallest
// number of conflicting edges observed so far in this call.
func (c *CWLS) repairPhase(stop stopping.Criterion) {
	aspiration := c.totalConflicts
	for c.W > 0 {
		if stop.IsFinished() {
			return
		}
		bestV, bestC := -1, -1
		var bestDeltaW int64
		fallbackV, fallbackC := -1, -1
		var fallbackDeltaW int64

		c.conflictSet.ForEach(func(v int) {
			if c.conflictCount[v] == 0 {
				// stale entry: v lost its last conflict since it was
				// inserted; drop it lazily mid-scan.
				c.conflictSet.Remove(v)
				return
			}
			oldC := c.color[v]
			for cand := 0; cand < c.k; cand++ {
				if cand == oldC || c.classSize[cand] == 0 {
					continue
				}
				deltaW := c.nbw[c.idx(v, cand)] - c.nbw[c.idx(v, oldC)]
				deltaConflicts := int64(c.nbc[c.idx(v, cand)]) - int64(c.nbc[c.idx(v, oldC)])
				projected := c.totalConflicts + deltaConflicts

				if fallbackV == -1 || deltaW < fallbackDeltaW {
					fallbackV, fallbackC = v, cand
					fallbackDeltaW = deltaW
				}

				isTabu := c.rnd.Contains(MoveKey{V: v, C: cand})
				aspired := projected < aspiration
				if isTabu && !aspired {
					continue
				}
				if bestV == -1 || deltaW < bestDeltaW {
					bestV, bestC = v, cand
					bestDeltaW = deltaW
				}
			}
		})

		if bestV == -1 {
			// every candidate move is tabu and non-aspiring; fall back to the
			// globally best move so the search never stalls.
			bestV, bestC, bestDeltaW = fallbackV, fallbackC, fallbackDeltaW
			if bestV == -1 {
				return
			}
		}

		oldC := c.color[bestV]
		c.rnd.Insert(MoveKey{V: bestV, C: oldC}, c.totalConflicts)
		c.recolor(bestV, bestC)
		c.rnd.BumpIter()
		if c.totalConflicts < aspiration {
			aspiration = c.totalConflicts
		}
	}
	c.snapshotBest()
}

func (c *CWLS) snapshotBest() {
	part := partitionOf(c.members)
	if c.bestPartition == nil || len(part) < c.bestK {
		c.bestPartition = part
		c.bestK = len(part)
	}
}

// Run alternates merge and repair phases until the stopping criterion
// fires, returning the best (fewest-color, feasible) coloring seen.
func (c *CWLS) Run(stop stopping.Criterion) Result {
	if c.W == 0 {
		c.snapshotBest()
	}
	for !stop.IsFinished() {
		if c.W == 0 {
			c.mergePhase(stop)
		} else {
			c.repairPhase(stop)
		}
		if c.W == 0 && len(c.activeColors()) <= 1 {
			break
		}
	}
	if c.bestPartition == nil {
		part := partitionOf(c.members)
		return Result{Partition: part, NumColors: len(part), Feasible: c.W == 0, Iterations: c.rnd.Iter()}
	}
	return Result{Partition: c.bestPartition, NumColors: c.bestK, Feasible: true, Iterations: c.rnd.Iter()}
}

// Iterations reports the number of moves applied so far, for a caller (e.g.
// driver) that wants to log progress mid-run.
func (c *CWLS) Iterations() int64 { return c.rnd.Iter() }

// BestSize reports the fewest color count seen feasible so far.
func (c *CWLS) BestSize() int { return c.bestK }

// Metric reports the current conflicting-edge count.
func (c *CWLS) Metric() int64 { return c.totalConflicts }
