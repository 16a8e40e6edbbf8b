package graph

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/graphsolve/dogscolor/bitset"
)

// DIMACSGraph is a simple undirected graph loaded from DIMACS text input.
// Adjacency is queryable in O(1) via a per-vertex bitset.Set row, and
// enumerable via a CSR-style neighbor slice.
type DIMACSGraph struct {
	n         int
	neighbors [][]int
	adjacency []*bitset.Set
}

// NewDIMACSGraph builds a DIMACSGraph from a 0-based edge list over n
// vertices. Self-loops are dropped and duplicate edges (in either direction)
// are collapsed here; ioformat/dimacs passes edge lines through as read.
func NewDIMACSGraph(n int, edges [][2]int) *DIMACSGraph {
	adjacency := make([]*bitset.Set, n)
	for v := 0; v < n; v++ {
		adjacency[v] = bitset.New(n)
	}
	neighborSets := make([]map[int]struct{}, n)
	for v := 0; v < n; v++ {
		neighborSets[v] = make(map[int]struct{})
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v {
			continue
		}
		adjacency[u].Insert(v)
		adjacency[v].Insert(u)
		neighborSets[u][v] = struct{}{}
		neighborSets[v][u] = struct{}{}
	}
	neighbors := make([][]int, n)
	for v := 0; v < n; v++ {
		lst := make([]int, 0, len(neighborSets[v]))
		for u := range neighborSets[v] {
			lst = append(lst, u)
		}
		sort.Ints(lst)
		neighbors[v] = lst
	}
	return &DIMACSGraph{n: n, neighbors: neighbors, adjacency: adjacency}
}

// NbVertices implements Graph.
func (g *DIMACSGraph) NbVertices() int { return g.n }

// Degree implements Graph.
func (g *DIMACSGraph) Degree(v int) int { return len(g.neighbors[v]) }

// NeighborsOf implements Graph.
func (g *DIMACSGraph) NeighborsOf(v int) []int { return g.neighbors[v] }

// AreAdjacent implements Graph.
func (g *DIMACSGraph) AreAdjacent(u, v int) bool { return g.adjacency[u].Test(v) }

// Vertices implements Graph.
func (g *DIMACSGraph) Vertices() []int {
	out := make([]int, g.n)
	for i := range out {
		out[i] = i
	}
	return out
}

// IsDominated always reports false: the dominated-vertex pre-filter is
// CGSHOP-specific and disabled by default.
func (g *DIMACSGraph) IsDominated(int) bool { return false }

// WriteSolution writes one line per color, space-separated 0-based vertex
// indices.
func (g *DIMACSGraph) WriteSolution(path string, partition [][]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteSolution, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, class := range partition {
		for i, v := range class {
			if i > 0 {
				if _, err := w.WriteString(" "); err != nil {
					return fmt.Errorf("%w: %v", ErrWriteSolution, err)
				}
			}
			if _, err := fmt.Fprintf(w, "%d", v); err != nil {
				return fmt.Errorf("%w: %v", ErrWriteSolution, err)
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteSolution, err)
		}
	}
	return w.Flush()
}
