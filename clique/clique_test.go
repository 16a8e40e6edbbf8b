package clique_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphsolve/dogscolor/clique"
	"github.com/graphsolve/dogscolor/graph"
	"github.com/graphsolve/dogscolor/stopping"
)

func k5() *graph.DIMACSGraph {
	edges := make([][2]int, 0, 10)
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return graph.NewDIMACSGraph(5, edges)
}

func requireClique(t *testing.T, g graph.Graph, members []int) {
	t.Helper()
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			require.True(t, g.AreAdjacent(members[i], members[j]),
				"%d and %d are not adjacent", members[i], members[j])
		}
	}
}

func TestCWLSFindsK5(t *testing.T) {
	g := k5()
	core := clique.NewCWLS(g, []int{0}, clique.CWLSParams{TenureL: 2, TenureLambda: 0.6, Seed: 5})
	res := core.Run(stopping.NewAfterIterations(200))
	requireClique(t, g, res.Clique)
	require.Equal(t, 5, res.Size)
}

func TestPWLSFindsK5(t *testing.T) {
	g := k5()
	core := clique.NewPWLS(g, []int{2}, clique.PWLSParams{TenureL: 2, TenureLambda: 0.1, Seed: 5})
	res := core.Run(stopping.NewAfterIterations(200))
	requireClique(t, g, res.Clique)
	require.Equal(t, 5, res.Size)
}

func TestCWLSSeedAlreadyMaximal(t *testing.T) {
	g := k5()
	core := clique.NewCWLS(g, []int{0, 1, 2, 3, 4}, clique.CWLSParams{TenureL: 2, TenureLambda: 0.6, Seed: 1})
	res := core.Run(stopping.NewAfterIterations(50))
	requireClique(t, g, res.Clique)
	require.Equal(t, 5, res.Size)
}
