package coloring

import (
	"github.com/graphsolve/dogscolor/graph"
	"github.com/graphsolve/dogscolor/sparse"
	"github.com/graphsolve/dogscolor/stopping"
)

// PWLS is Partial-Weighting Local Search: a partial coloring that is
// always conflict-free by construction (placing a vertex into a
// color immediately evicts whichever neighbors were already using it), with
// an adaptive per-vertex weight and a delete phase that frees up a whole
// color class whenever every vertex is currently placed.
//
// Requires its seed coloring to already be conflict-free (every seed
// heuristic in package seed produces one); CWLS has no such requirement.
type PWLS struct {
	*base

	weights []int64 // weights[v], grown by one each time v is (re)colored

	uncolored     *sparse.Set
	totalWeight   int64
	phaseBest     int64 // smallest totalWeight seen since the last delete
	bestPartition [][]int
	bestK         int
	iterations    int64
}

// PWLSParams configures a PWLS run.
type PWLSParams struct {
	TenureL      int
	TenureLambda float64
	Seed         int64
}

// NewPWLS builds a PWLS core from a conflict-free seed coloring.
func NewPWLS(g graph.Graph, seed [][]int, params PWLSParams) *PWLS {
	k := len(seed)
	b := newBase(g, k, params.TenureL, params.TenureLambda, params.Seed)
	p := &PWLS{
		base:      b,
		weights:   make([]int64, b.n),
		uncolored: sparse.New(b.n),
	}
	for v := range p.weights {
		p.weights[v] = 1
		b.color[v] = -1
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
			b.nbw[b.idx(u, b.color[v])] += p.weights[v]
		}
	}
	p.totalWeight = 0
	return p
}

// uncolorVertex removes v's color, adding its weight to the total and
// marking (v, its-old-color) tabu so it cannot immediately return.
func (p *PWLS) uncolorVertex(v int) {
	prevColor := p.color[v]
	p.classSize[prevColor]--
	p.members[prevColor].Remove(v)
	p.totalWeight += p.weights[v]
	p.color[v] = -1
	p.uncolored.Insert(v)
	for _, u := range p.g.NeighborsOf(v) {
		p.nbw[p.idx(u, prevColor)] -= p.weights[v]
	}
	p.rnd.Insert(MoveKey{V: v, C: prevColor}, int64(p.uncolored.Len()))
}

// colorVertex places v into color c, grows v's weight, and evicts any
// neighbor currently using c.
func (p *PWLS) colorVertex(v, c int) {
	p.totalWeight -= p.weights[v]
	p.weights[v]++
	p.color[v] = c
	p.classSize[c]++
	p.members[c].Insert(v)
	p.uncolored.Remove(v)
	for _, u := range p.g.NeighborsOf(v) {
		p.nbw[p.idx(u, c)] += p.weights[v]
	}
	var evict []int
	p.members[c].ForEach(func(w int) {
		if w != v && p.g.AreAdjacent(v, w) {
			evict = append(evict, w)
		}
	})
	for _, w := range evict {
		p.uncolorVertex(w)
	}
}

// activeColorCount returns the number of currently non-empty classes.
func (p *PWLS) activeColorCount() int {
	n := 0
	for c := 0; c < p.k; c++ {
		if p.classSize[c] > 0 {
			n++
		}
	}
	return n
}

// deleteColor uncolors every vertex in the largest currently-used color
// class. Emptying the biggest class produces the largest weight swing,
// which helps the search escape plateaus.
func (p *PWLS) deleteColor() {
	cMax, best := -1, -1
	for c := 0; c < p.k; c++ {
		if p.classSize[c] > 0 && p.classSize[c] > best {
			best = p.classSize[c]
			cMax = c
		}
	}
	if cMax == -1 {
		return
	}
	for _, v := range p.members[cMax].Slice() {
		p.uncolorVertex(v)
	}
}

// selectMove scans every uncolored vertex and every active color for the
// placement minimizing the resulting total weight. A tabu placement is
// still eligible when it would drop the total weight below the best seen
// since the last delete (aspiration); if every candidate is tabu and
// non-aspiring, it falls back to the global best so the search never
// stalls.
func (p *PWLS) selectMove() (v, c int, ok bool) {
	bestV, bestC := -1, -1
	var bestWeight int64
	fallbackV, fallbackC := -1, -1
	var fallbackWeight int64

	p.uncolored.ForEach(func(u int) {
		for cand := 0; cand < p.k; cand++ {
			if p.classSize[cand] == 0 {
				continue
			}
			projected := p.totalWeight + p.nbw[p.idx(u, cand)] - p.weights[u]
			if fallbackV == -1 || projected < fallbackWeight {
				fallbackV, fallbackC = u, cand
				fallbackWeight = projected
			}
			if p.rnd.Contains(MoveKey{V: u, C: cand}) && projected >= p.phaseBest {
				continue
			}
			if bestV == -1 || projected < bestWeight {
				bestV, bestC = u, cand
				bestWeight = projected
			}
		}
	})
	if bestV != -1 {
		return bestV, bestC, true
	}
	if fallbackV != -1 {
		return fallbackV, fallbackC, true
	}
	return -1, -1, false
}

func (p *PWLS) snapshotBest() {
	part := partitionOf(p.members)
	if p.bestPartition == nil || len(part) < p.bestK {
		p.bestPartition = part
		p.bestK = len(part)
	}
}

// Run alternates placing uncolored vertices and deleting the largest color
// class until the stopping criterion fires, returning the best (feasible,
// fewest-color) coloring seen.
func (p *PWLS) Run(stop stopping.Criterion) Result {
	if p.totalWeight == 0 {
		p.snapshotBest()
		p.deleteColor()
	}
	p.phaseBest = p.totalWeight
	for !stop.IsFinished() {
		if p.activeColorCount() == 0 {
			break
		}
		u, c, ok := p.selectMove()
		if !ok {
			break
		}
		p.colorVertex(u, c)
		p.rnd.BumpIter()
		p.iterations++
		if p.totalWeight < p.phaseBest {
			p.phaseBest = p.totalWeight
		}
		if p.totalWeight == 0 {
			p.snapshotBest()
			p.deleteColor()
			p.phaseBest = p.totalWeight
		}
	}
	if p.bestPartition == nil {
		part := partitionOf(p.members)
		return Result{Partition: part, NumColors: len(part), Feasible: p.totalWeight == 0, Iterations: p.iterations}
	}
	return Result{Partition: p.bestPartition, NumColors: p.bestK, Feasible: true, Iterations: p.iterations}
}

// Iterations reports the number of moves applied so far.
func (p *PWLS) Iterations() int64 { return p.iterations }

// BestSize reports the fewest color count seen feasible so far.
func (p *PWLS) BestSize() int { return p.bestK }

// Metric reports the current total vertex weight (zero exactly when every
// vertex is colored).
func (p *PWLS) Metric() int64 { return p.totalWeight }
