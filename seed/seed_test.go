package seed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphsolve/dogscolor/geom"
	"github.com/graphsolve/dogscolor/graph"
	"github.com/graphsolve/dogscolor/seed"
)

func properColoring(t *testing.T, g graph.Graph, partition [][]int) {
	t.Helper()
	colorOf := make(map[int]int)
	for c, class := range partition {
		for _, v := range class {
			_, seen := colorOf[v]
			require.False(t, seen, "vertex %d colored twice", v)
			colorOf[v] = c
		}
	}
	require.Equal(t, g.NbVertices(), len(colorOf))
	for v := range colorOf {
		for _, u := range g.NeighborsOf(v) {
			require.NotEqual(t, colorOf[v], colorOf[u], "conflict between %d and %d", v, u)
		}
	}
}

func k5() graph.Graph {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return graph.NewDIMACSGraph(5, edges)
}

func fourCycle() graph.Graph {
	return graph.NewDIMACSGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
}

func TestDSATURGreedyFeasible(t *testing.T) {
	g := fourCycle()
	part := seed.DSATURGreedy(g)
	properColoring(t, g, part)
	require.LessOrEqual(t, len(part), 2)
}

func TestDSATURGreedyK5NeedsFiveColors(t *testing.T) {
	g := k5()
	part := seed.DSATURGreedy(g)
	properColoring(t, g, part)
	require.Equal(t, 5, len(part))
}

func TestRLFGreedyFeasible(t *testing.T) {
	g := fourCycle()
	part := seed.RLFGreedy(g)
	properColoring(t, g, part)
	require.LessOrEqual(t, len(part), 2)
}

func TestRLFGreedyK5(t *testing.T) {
	g := k5()
	part := seed.RLFGreedy(g)
	properColoring(t, g, part)
	require.Equal(t, 5, len(part))
}

func TestGreedyCliqueOnK5(t *testing.T) {
	g := k5()
	clique := seed.GreedyClique(g)
	require.Len(t, clique, 5)
	for i := 0; i < len(clique); i++ {
		for j := i + 1; j < len(clique); j++ {
			require.True(t, g.AreAdjacent(clique[i], clique[j]))
		}
	}
}

func TestOrientationSortedGreedyTiny(t *testing.T) {
	segs := []geom.Segment{
		{P: geom.Point{X: 10, Y: 0}, Q: geom.Point{X: 0, Y: 10}},
		{P: geom.Point{X: 0, Y: 0}, Q: geom.Point{X: 10, Y: 10}},
		{P: geom.Point{X: 1, Y: 1}, Q: geom.Point{X: 9, Y: 1}},
	}
	g := graph.NewCGSHOPGraph("tiny", segs)
	part := seed.OrientationSortedGreedy(g)
	properColoring(t, g, part)
}
