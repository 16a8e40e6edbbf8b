package driver_test

import (
	"os"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/graphsolve/dogscolor/driver"
	"github.com/graphsolve/dogscolor/graph"
	"github.com/graphsolve/dogscolor/stopping"
)

func fourCycle() *graph.DIMACSGraph {
	return graph.NewDIMACSGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
}

func k5() *graph.DIMACSGraph {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return graph.NewDIMACSGraph(5, edges)
}

func TestRunColoringCWLSSolvesFourCycle(t *testing.T) {
	g := fourCycle()
	seed := [][]int{{0}, {1}, {2}, {3}}
	result, err := driver.RunColoring(g, seed, "cwls", stopping.NewAfterIterations(200), driver.Config{TenureL: 1, TenureLambda: 0.6, Seed: 1}, zerolog.Nop())
	require.NoError(t, err)
	require.True(t, result.Feasible)
	require.LessOrEqual(t, result.NumColors, 2)
}

func TestRunColoringRejectsInfeasibleSeed(t *testing.T) {
	g := fourCycle()
	seed := [][]int{{0, 1, 2, 3}}
	_, err := driver.RunColoring(g, seed, "cwls", stopping.Never{}, driver.Config{}, zerolog.Nop())
	require.ErrorIs(t, err, driver.ErrInfeasibleSeed)
}

func TestRunCliquePWLSFindsK5(t *testing.T) {
	g := k5()
	result, err := driver.RunClique(g, []int{0}, "pwls", stopping.NewAfterIterations(50), driver.Config{TenureL: 1, TenureLambda: 0.6, Seed: 1}, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 5, result.Size)
}

func TestWriteStatsRoundTrips(t *testing.T) {
	path := t.TempDir() + "/stats.json"
	want := driver.Stats{
		Problem: "coloring", Algorithm: "cwls", BestSize: 2,
		Iterations: 10, Feasible: true, ElapsedSeconds: 0.5,
	}
	require.NoError(t, driver.WriteStats(path, want))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	var got driver.Stats
	require.NoError(t, json.NewDecoder(f).Decode(&got))
	require.Equal(t, want, got)
}
