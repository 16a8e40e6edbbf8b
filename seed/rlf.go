package seed

import "github.com/graphsolve/dogscolor/graph"

// RLFGreedy colors g via Recursive Largest First: build color
// classes one at a time. Within a class under construction, repeatedly pick
// the uncolored, not-yet-forbidden-in-this-class vertex with the greatest
// number of "unreachable" neighbors (neighbors already forbidden for this
// class), tie-breaking by remaining reachable degree (i.e. degree among
// vertices still eligible for this class).
//
// Complexity: O(n * k * avg-degree) where k is the number of colors used;
// acceptable for a one-shot seed heuristic.
func RLFGreedy(g graph.Graph) [][]int {
	n := g.NbVertices()
	colored := make([]bool, n)
	remaining := n

	var partition [][]int
	for remaining > 0 {
		// free: eligible for this class (uncolored and not adjacent to any
		// vertex already placed in this class).
		free := make([]bool, n)
		for v := 0; v < n; v++ {
			free[v] = !colored[v]
		}
		// unreachable[v]: number of v's neighbors already forbidden (not
		// free) for this class, used to pick the vertex that most
		// constrains the remaining free set if added.
		unreachable := make([]int, n)
		for v := 0; v < n; v++ {
			if !free[v] {
				continue
			}
			for _, u := range g.NeighborsOf(v) {
				if !free[u] {
					unreachable[v]++
				}
			}
		}

		var class []int
		for {
			best := -1
			bestUnreachable := -1
			bestReachableDeg := -1
			for v := 0; v < n; v++ {
				if !free[v] {
					continue
				}
				reachableDeg := 0
				for _, u := range g.NeighborsOf(v) {
					if free[u] {
						reachableDeg++
					}
				}
				switch {
				case unreachable[v] > bestUnreachable:
					best, bestUnreachable, bestReachableDeg = v, unreachable[v], reachableDeg
				case unreachable[v] == bestUnreachable && reachableDeg > bestReachableDeg:
					best, bestReachableDeg = v, reachableDeg
				}
			}
			if best == -1 {
				break
			}
			class = append(class, best)
			colored[best] = true
			remaining--
			free[best] = false
			for _, u := range g.NeighborsOf(best) {
				if free[u] {
					free[u] = false
					for _, w := range g.NeighborsOf(u) {
						if free[w] {
							unreachable[w]++
						}
					}
				}
			}
		}
		partition = append(partition, class)
	}
	return partition
}
