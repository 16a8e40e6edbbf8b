package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphsolve/dogscolor/geom"
	"github.com/graphsolve/dogscolor/graph"
)

func segAt(x1, y1, x2, y2 int64) geom.Segment {
	return geom.Segment{P: geom.Point{X: x1, Y: y1}, Q: geom.Point{X: x2, Y: y2}}
}

func TestCGSHOPGraphCrossingSegments(t *testing.T) {
	segments := []geom.Segment{
		segAt(10, 0, 0, 10), // crosses segment 1
		segAt(0, 0, 10, 10),
		segAt(1, 1, 10, 1), // crosses segment 0 and touches segment 1 at (1,1)
	}
	g := graph.NewCGSHOPGraph("tiny", segments)
	require.Equal(t, 3, g.NbVertices())
	require.True(t, g.AreAdjacent(0, 1))
	require.False(t, g.IsDominated(2))
}

func TestCGSHOPGraphDominatedFilterOptIn(t *testing.T) {
	// Segments 1 and 2 are identical and both cross segment 0; identical
	// segments are not adjacent to each other, so 1 and 2 share N = {0}.
	segments := []geom.Segment{
		segAt(0, -5, 0, 5),
		segAt(-5, 0, 5, 0),
		segAt(-5, 0, 5, 0),
	}
	g := graph.NewCGSHOPGraph("dom", segments)
	require.False(t, g.IsDominated(1)) // disabled by default
	g.EnableDominatedFilter()
	// 1 and 2 have identical neighbors ({0}); each dominates the other.
	require.True(t, g.IsDominated(1))
}
