package seed

import "github.com/graphsolve/dogscolor/graph"

// GreedyClique builds a starting clique: repeatedly pick the
// candidate of maximum degree within the remaining candidate set, removing
// its non-neighbors from the candidate set.
//
// Complexity: O(n^2) worst case (n rounds, each scanning the candidate set).
func GreedyClique(g graph.Graph) []int {
	n := g.NbVertices()
	candidate := make([]bool, n)
	for v := 0; v < n; v++ {
		candidate[v] = true
	}
	remaining := n

	var clique []int
	for remaining > 0 {
		best := -1
		bestDeg := -1
		for v := 0; v < n; v++ {
			if !candidate[v] {
				continue
			}
			if g.Degree(v) > bestDeg {
				best, bestDeg = v, g.Degree(v)
			}
		}
		clique = append(clique, best)
		candidate[best] = false
		remaining--

		adj := make(map[int]struct{}, g.Degree(best))
		for _, u := range g.NeighborsOf(best) {
			adj[u] = struct{}{}
		}
		for v := 0; v < n; v++ {
			if !candidate[v] {
				continue
			}
			if _, ok := adj[v]; !ok {
				candidate[v] = false
				remaining--
			}
		}
	}
	return clique
}
