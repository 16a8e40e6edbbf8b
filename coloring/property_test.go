package coloring_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphsolve/dogscolor/coloring"
	"github.com/graphsolve/dogscolor/graph"
	"github.com/graphsolve/dogscolor/seed"
	"github.com/graphsolve/dogscolor/stopping"
)

// erdosRenyi builds a deterministic Erdos-Renyi random graph G(n, p).
func erdosRenyi(n int, p float64, seedVal int64) *graph.DIMACSGraph {
	rnd := rand.New(rand.NewSource(seedVal))
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rnd.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return graph.NewDIMACSGraph(n, edges)
}

func TestCWLSStaysFeasibleOverRandomGraphs(t *testing.T) {
	for trial, params := range []struct {
		n int
		p float64
	}{{20, 0.1}, {50, 0.2}, {100, 0.05}} {
		g := erdosRenyi(params.n, params.p, int64(trial+1))
		dsatur := seed.DSATURGreedy(g)
		core := coloring.NewCWLS(g, dsatur, coloring.CWLSParams{TenureL: 10, TenureLambda: 0.6, Seed: int64(trial + 1)})
		result := core.Run(stopping.NewAfterIterations(10_000))
		require.True(t, result.Feasible)
		requireProper(t, g, result.Partition)
		require.LessOrEqual(t, result.NumColors, len(dsatur))
	}
}

func TestPWLSStaysFeasibleOverRandomGraphs(t *testing.T) {
	for trial, params := range []struct {
		n int
		p float64
	}{{20, 0.1}, {50, 0.2}, {100, 0.05}} {
		g := erdosRenyi(params.n, params.p, int64(trial+100))
		dsatur := seed.DSATURGreedy(g)
		core := coloring.NewPWLS(g, dsatur, coloring.PWLSParams{TenureL: 10, TenureLambda: 0.6, Seed: int64(trial + 100)})
		result := core.Run(stopping.NewAfterIterations(10_000))
		require.True(t, result.Feasible)
		requireProper(t, g, result.Partition)
		require.LessOrEqual(t, result.NumColors, len(dsatur))
	}
}

func TestCWLSFeasibleEvenWhenInterruptedMidRepair(t *testing.T) {
	g := erdosRenyi(40, 0.3, 7)
	dsatur := seed.DSATURGreedy(g)
	for _, cutoff := range []int{1, 2, 5, 17} {
		core := coloring.NewCWLS(g, dsatur, coloring.CWLSParams{TenureL: 10, TenureLambda: 0.6, Seed: 7})
		result := core.Run(stopping.NewAfterIterations(cutoff))
		require.True(t, result.Feasible, "cutoff=%d", cutoff)
		requireProper(t, g, result.Partition)
	}
}

func TestCWLSMergeThenRepairNeverIncreasesBestColorCount(t *testing.T) {
	g := erdosRenyi(30, 0.15, 3)
	dsatur := seed.DSATURGreedy(g)
	core := coloring.NewCWLS(g, dsatur, coloring.CWLSParams{TenureL: 10, TenureLambda: 0.6, Seed: 3})

	best := len(dsatur)
	for i := 0; i < 20; i++ {
		result := core.Run(stopping.NewAfterIterations(200))
		require.True(t, result.Feasible)
		require.LessOrEqual(t, result.NumColors, best, "best color count must never increase across successive runs")
		best = result.NumColors
	}
}
