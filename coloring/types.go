package coloring

import (
	"github.com/graphsolve/dogscolor/bitset"
	"github.com/graphsolve/dogscolor/graph"
	"github.com/graphsolve/dogscolor/sparse"
	"github.com/graphsolve/dogscolor/tabu"
)

// MoveKey is the tabu move key for both cores: a vertex leaving a color.
// Inserting MoveKey{v, c} forbids v from re-entering c until the reactive
// tenure expires.
type MoveKey struct {
	V, C int
}

// Result is what a core returns once it stops, win or not: the best
// feasible (CWLS) or best-covering (PWLS) coloring seen, and whether it is
// fully feasible (zero conflicts / zero uncolored vertices).
type Result struct {
	Partition  [][]int // color classes, 1:1 with graph.Graph.WriteSolution's shape
	NumColors  int
	Feasible   bool
	Iterations int64
}

// base holds the bookkeeping shared by CWLS and PWLS: the CSR-style
// neighbor-position index needed to update a symmetric per-edge weight in
// O(1) from either endpoint, and the flat n*k weight/count aggregates.
type base struct {
	g graph.Graph
	n int
	k int // width of the nbw/nbc aggregates; never shrinks once allocated

	color     []int         // color[v], or -1 if uncolored (PWLS only)
	classSize []int         // class_size[c]
	members   []*bitset.Set // class_members[c], len k

	// neighborPos[v][i] is the index of NeighborsOf(v)[i] within
	// NeighborsOf(NeighborsOf(v)[i]), i.e. where v sits in its neighbor's
	// own adjacency list, so a per-edge weight stored in parallel with each
	// vertex's neighbor list can be updated symmetrically in O(1).
	neighborPos [][]int

	// nbw[v*k+c] = weight of v's neighbors colored c: the sum of the edge
	// weights to them (CWLS) or of their vertex weights (PWLS).
	// nbc[v*k+c] = unweighted count of v's neighbors colored c, needed to
	// compute the exact post-move conflicting-edge delta for the aspiration
	// test independently of the weighted penalty.
	nbw []int64
	nbc []int32

	rnd *tabu.Tenure[MoveKey]
	W   int64 // current total weighted penalty
}

func newBase(g graph.Graph, k int, tenureL int, tenureLambda float64, seed int64) *base {
	n := g.NbVertices()
	b := &base{
		g:         g,
		n:         n,
		k:         k,
		color:     make([]int, n),
		classSize: make([]int, k),
		members:   make([]*bitset.Set, k),
		nbw:       make([]int64, n*k),
		nbc:       make([]int32, n*k),
		rnd:       tabu.New[MoveKey](tenureL, tenureLambda, seed),
	}
	for c := 0; c < k; c++ {
		b.members[c] = bitset.New(n)
	}
	b.neighborPos = make([][]int, n)
	for v := 0; v < n; v++ {
		nb := g.NeighborsOf(v)
		pos := make([]int, len(nb))
		for i, u := range nb {
			pos[i] = indexOf(g.NeighborsOf(u), v)
		}
		b.neighborPos[v] = pos
	}
	return b
}

func indexOf(xs []int, target int) int {
	for i, x := range xs {
		if x == target {
			return i
		}
	}
	return -1
}

func (b *base) idx(v, c int) int { return v*b.k + c }

// conflictingEdgeCount returns the number of edges (u,v) with
// color[u]==color[v], computed from nbc; used once when NewCWLS starts,
// after which CWLS tracks it incrementally.
func conflictingEdgeCount(b *base) int64 {
	var total int64
	for v := 0; v < b.n; v++ {
		total += int64(b.nbc[b.idx(v, b.color[v])])
	}
	return total / 2
}

// sparseFrom builds a sparse.Set preloaded with every vertex for which pred
// holds, in ascending vertex order.
func sparseFrom(n int, pred func(v int) bool) *sparse.Set {
	s := sparse.New(n)
	for v := 0; v < n; v++ {
		if pred(v) {
			s.Insert(v)
		}
	}
	return s
}

// partitionOf materializes the current color classes into the [][]int shape
// graph.Graph.WriteSolution expects, dropping empty classes.
func partitionOf(members []*bitset.Set) [][]int {
	out := make([][]int, 0, len(members))
	for _, m := range members {
		if m.Count() == 0 {
			continue
		}
		out = append(out, m.Slice())
	}
	return out
}
