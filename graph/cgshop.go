package graph

import (
	"fmt"

	"github.com/graphsolve/dogscolor/bitset"
	"github.com/graphsolve/dogscolor/geom"
)

// CGSHOPGraph is a geometric segment-intersection graph (the CGSHOP'22
// challenge format): each vertex is a line segment, and two segments are
// adjacent iff geom.Intersect reports a proper intersection.
//
// Adjacency is materialized once, at construction time, by running the
// intersection predicate over every pair of segments (O(n^2) worst case,
// the dominant preprocessing cost); the result is cached in per-vertex
// bitsets so a second run of the same instance is cheap if the
// caller reuses a *CGSHOPGraph (see ioformat/cgshop's degree cache for the
// cross-process analogue).
type CGSHOPGraph struct {
	n          int
	instanceID string
	segments   []geom.Segment
	neighbors  [][]int
	adjacency  []*bitset.Set
	dominated  bool // enables the dominated-vertex pre-filter; off by default
}

// NewCGSHOPGraph builds a CGSHOPGraph from a segment list, materializing
// adjacency by testing every pair with geom.Intersect. Complexity: O(n^2).
func NewCGSHOPGraph(instanceID string, segments []geom.Segment) *CGSHOPGraph {
	n := len(segments)
	adjacency := make([]*bitset.Set, n)
	for v := 0; v < n; v++ {
		adjacency[v] = bitset.New(n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if geom.Intersect(segments[i], segments[j]) {
				adjacency[i].Insert(j)
				adjacency[j].Insert(i)
			}
		}
	}
	neighbors := make([][]int, n)
	for v := 0; v < n; v++ {
		neighbors[v] = adjacency[v].Slice()
	}
	return &CGSHOPGraph{
		n:          n,
		instanceID: instanceID,
		segments:   segments,
		neighbors:  neighbors,
		adjacency:  adjacency,
	}
}

// InstanceID returns the CGSHOP instance identifier, echoed into the
// "instance" field when serializing a solution.
func (g *CGSHOPGraph) InstanceID() string { return g.instanceID }

// Segment returns the segment (vertex) v.
func (g *CGSHOPGraph) Segment(v int) geom.Segment { return g.segments[v] }

// NbVertices implements Graph.
func (g *CGSHOPGraph) NbVertices() int { return g.n }

// Degree implements Graph.
func (g *CGSHOPGraph) Degree(v int) int { return len(g.neighbors[v]) }

// NeighborsOf implements Graph.
func (g *CGSHOPGraph) NeighborsOf(v int) []int { return g.neighbors[v] }

// AreAdjacent implements Graph.
func (g *CGSHOPGraph) AreAdjacent(u, v int) bool { return g.adjacency[u].Test(v) }

// Vertices implements Graph.
func (g *CGSHOPGraph) Vertices() []int {
	out := make([]int, g.n)
	for i := range out {
		out[i] = i
	}
	return out
}

// EnableDominatedFilter turns on the dominated-vertex pre-filter: vertex u
// is dominated by v iff N(u) ⊆ N(v). Off by default; a dominated vertex can
// always reuse a color of its dominator, so filtered instances color the
// same.
func (g *CGSHOPGraph) EnableDominatedFilter() { g.dominated = true }

// IsDominated reports whether v is dominated by some other vertex u, i.e.
// N(v) subseteq N(u). Always false unless EnableDominatedFilter was called.
// Complexity when enabled: O(n) scan x O(n/64) set-containment per
// candidate u, i.e. O(n^2/64); acceptable since it is opt-in only.
func (g *CGSHOPGraph) IsDominated(v int) bool {
	if !g.dominated {
		return false
	}
	for u := 0; u < g.n; u++ {
		if u == v {
			continue
		}
		if g.neighbors[v] == nil || len(g.neighbors[v]) > len(g.neighbors[u]) {
			continue
		}
		if g.adjacency[u].IntersectCount(g.adjacency[v]) == len(g.neighbors[v]) {
			return true
		}
	}
	return false
}

// WriteSolution writes the CGSHOP solution JSON (type, instance, num_colors,
// colors). See ioformat/cgshop for the concrete serialization; this method
// delegates to it to avoid an import
// cycle (ioformat/cgshop depends on graph for Segment/InstanceID access
// when parsing, so the write path is re-exposed here via a function value
// injected at package init to keep the dependency one-directional).
func (g *CGSHOPGraph) WriteSolution(path string, partition [][]int) error {
	if writeCGSHOPSolution == nil {
		return fmt.Errorf("%w: CGSHOP solution writer not registered", ErrWriteSolution)
	}
	colors := make([]int, g.n)
	for c, class := range partition {
		for _, v := range class {
			colors[v] = c
		}
	}
	return writeCGSHOPSolution(path, g.instanceID, len(partition), colors)
}

// writeCGSHOPSolution is injected by ioformat/cgshop at init time, keeping
// graph -> ioformat/cgshop a one-directional dependency at the type level
// while still letting CGSHOPGraph satisfy the Graph.WriteSolution contract
// with the CGSHOP-specific JSON shape instead of the DIMACS text shape.
var writeCGSHOPSolution func(path, instanceID string, numColors int, colors []int) error

// RegisterCGSHOPSolutionWriter installs the JSON writer. Called from
// ioformat/cgshop's package init.
func RegisterCGSHOPSolutionWriter(fn func(path, instanceID string, numColors int, colors []int) error) {
	writeCGSHOPSolution = fn
}
