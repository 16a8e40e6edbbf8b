package clique

import (
	"github.com/graphsolve/dogscolor/bitset"
	"github.com/graphsolve/dogscolor/graph"
)

// Result is what a core returns once it stops: the best clique seen and
// its size. A clique core's candidate set is not always a genuine clique
// mid-search (CWLS's is not; PWLS's always is), but Result.Clique always
// is.
type Result struct {
	Clique     []int
	Size       int
	Iterations int64
}

// pairKey packs an unordered vertex pair (u,v), u<v, into one map key.
func pairKey(u, v int) int64 {
	if u > v {
		u, v = v, u
	}
	return int64(u)<<32 | int64(v)
}

// pairWeights is a sparse symmetric weight table over non-adjacent vertex
// pairs. A missing entry defaults to 1, so only pairs whose weight has
// actually grown occupy memory; a dense n² table would dwarf the graph on
// large CGSHOP instances.
type pairWeights struct {
	m map[int64]int64
}

func newPairWeights() *pairWeights {
	return &pairWeights{m: make(map[int64]int64)}
}

func (p *pairWeights) get(u, v int) int64 {
	if w, ok := p.m[pairKey(u, v)]; ok {
		return w
	}
	return 1
}

func (p *pairWeights) increment(u, v int) int64 {
	w := p.get(u, v) + 1
	p.m[pairKey(u, v)] = w
	return w
}

// maxInsideDegreeOutside returns the outside vertex with the most neighbors
// inside clique, breaking ties by the smallest index. O(m) per call, paid
// only when a genuine clique is being greedily extended.
func maxInsideDegreeOutside(g graph.Graph, clique *bitset.Set) int {
	best, bestDeg := -1, -1
	for _, v := range g.Vertices() {
		if clique.Test(v) {
			continue
		}
		inside := 0
		for _, u := range g.NeighborsOf(v) {
			if clique.Test(u) {
				inside++
			}
		}
		if inside > bestDeg {
			bestDeg = inside
			best = v
		}
	}
	return best
}

// cliqueSlice materializes the current candidate set in ascending order.
func cliqueSlice(clique *bitset.Set) []int { return clique.Slice() }
