package seed

import (
	"sort"

	"github.com/graphsolve/dogscolor/geom"
	"github.com/graphsolve/dogscolor/graph"
)

// OrientationSortedGreedy implements the CGSHOP-specific seed heuristic:
// sort segments by slope angle, then first-fit color.
func OrientationSortedGreedy(g *graph.CGSHOPGraph) [][]int {
	n := g.NbVertices()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return geom.AngleLess(g.Segment(order[i]), g.Segment(order[j]))
	})

	colorOf := make([]int, n)
	for i := range colorOf {
		colorOf[i] = -1
	}
	numColors := 0
	for _, v := range order {
		forbidden := make(map[int]struct{})
		for _, u := range g.NeighborsOf(v) {
			if colorOf[u] >= 0 {
				forbidden[colorOf[u]] = struct{}{}
			}
		}
		c := 0
		for {
			if _, bad := forbidden[c]; !bad {
				break
			}
			c++
		}
		colorOf[v] = c
		if c+1 > numColors {
			numColors = c + 1
		}
	}
	return partitionFromColors(colorOf, numColors)
}
