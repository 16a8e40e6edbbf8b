package clique_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphsolve/dogscolor/clique"
	"github.com/graphsolve/dogscolor/graph"
	"github.com/graphsolve/dogscolor/seed"
	"github.com/graphsolve/dogscolor/stopping"
)

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

// bruteForceOmega returns the true clique number of g, for n small enough
// that an exhaustive subset scan is cheap.
func bruteForceOmega(g graph.Graph) int {
	n := g.NbVertices()
	best := 0
	for mask := 1; mask < (1 << n); mask++ {
		var members []int
		ok := true
		for v := 0; v < n && ok; v++ {
			if mask&(1<<v) == 0 {
				continue
			}
			for _, u := range members {
				if !g.AreAdjacent(u, v) {
					ok = false
					break
				}
			}
			if ok {
				members = append(members, v)
			}
		}
		if ok && len(members) > best {
			best = len(members)
		}
	}
	return best
}

func TestCWLSNeverExceedsTrueCliqueNumber(t *testing.T) {
	for trial, params := range []struct {
		n int
		p float64
	}{{10, 0.3}, {12, 0.4}, {12, 0.5}} {
		g := erdosRenyi(params.n, params.p, int64(trial+1))
		omega := bruteForceOmega(g)
		core := clique.NewCWLS(g, []int{0}, clique.CWLSParams{TenureL: 2, TenureLambda: 0.5, Seed: int64(trial + 1)})
		result := core.Run(stopping.NewAfterIterations(2_000))
		requireClique(t, g, result.Clique)
		require.LessOrEqual(t, result.Size, omega)
	}
}

func TestPWLSStaysAGenuineCliqueOverRandomGraphs(t *testing.T) {
	for trial, params := range []struct {
		n int
		p float64
	}{{20, 0.1}, {40, 0.2}, {60, 0.05}} {
		g := erdosRenyi(params.n, params.p, int64(trial+50))
		seedClique := seed.GreedyClique(g)
		core := clique.NewPWLS(g, seedClique, clique.PWLSParams{TenureL: 5, TenureLambda: 0.5, Seed: int64(trial + 50)})
		result := core.Run(stopping.NewAfterIterations(2_000))
		requireClique(t, g, result.Clique)
		require.GreaterOrEqual(t, result.Size, len(seedClique))
	}
}
