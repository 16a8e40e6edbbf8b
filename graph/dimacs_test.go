package graph_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphsolve/dogscolor/graph"
)

func TestDIMACSGraphFourCycle(t *testing.T) {
	g := graph.NewDIMACSGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.Equal(t, 4, g.NbVertices())
	require.Equal(t, 2, g.Degree(0))
	require.True(t, g.AreAdjacent(0, 1))
	require.False(t, g.AreAdjacent(0, 2))
	require.ElementsMatch(t, []int{0, 1, 2, 3}, g.Vertices())
	require.False(t, g.IsDominated(0))
}

func TestDIMACSGraphWriteSolution(t *testing.T) {
	g := graph.NewDIMACSGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	path := filepath.Join(t.TempDir(), "sol.txt")
	err := g.WriteSolution(path, [][]int{{0, 2}, {1, 3}})
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0 2\n1 3\n", string(content))
}

func TestComputeStats(t *testing.T) {
	g := graph.NewDIMACSGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	st := graph.ComputeStats(g)
	require.Equal(t, 4, st.NbVertices)
	require.Equal(t, 4, st.NbEdges)
	require.Equal(t, 2, st.MinDegree)
	require.Equal(t, 2, st.MaxDegree)
}
