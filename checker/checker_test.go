package checker_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphsolve/dogscolor/checker"
	"github.com/graphsolve/dogscolor/graph"
)

func fourCycle() *graph.DIMACSGraph {
	return graph.NewDIMACSGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
}

func TestCheckColoringAcceptsProperColoring(t *testing.T) {
	g := fourCycle()
	require.NoError(t, checker.CheckColoring(g, [][]int{{0, 2}, {1, 3}}))
}

func TestCheckColoringRejectsConflict(t *testing.T) {
	g := fourCycle()
	err := checker.CheckColoring(g, [][]int{{0, 1, 2}, {3}})
	require.Error(t, err)
	require.True(t, errors.Is(err, checker.ErrConflictingEdge))
}

func TestCheckColoringRejectsMissingVertex(t *testing.T) {
	g := fourCycle()
	err := checker.CheckColoring(g, [][]int{{0}, {1}, {2}})
	require.Error(t, err)
	require.True(t, errors.Is(err, checker.ErrVertexNotColored))
}

func TestCheckColoringRejectsDuplicateVertex(t *testing.T) {
	g := fourCycle()
	err := checker.CheckColoring(g, [][]int{{0, 1}, {0, 2, 3}})
	require.Error(t, err)
	require.True(t, errors.Is(err, checker.ErrVertexAddedTwice))
}

func TestCheckCliqueAcceptsTriangle(t *testing.T) {
	g := graph.NewDIMACSGraph(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, checker.CheckClique(g, []int{0, 1, 2}))
}

func TestCheckCliqueRejectsNonAdjacentPair(t *testing.T) {
	g := fourCycle()
	err := checker.CheckClique(g, []int{0, 1, 2})
	require.Error(t, err)
	require.True(t, errors.Is(err, checker.ErrNotAClique))
}
