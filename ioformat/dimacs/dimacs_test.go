package dimacs_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphsolve/dogscolor/ioformat/dimacs"
)

func TestParseFourCycle(t *testing.T) {
	src := "c a comment\np edge 4 4\ne 1 2\ne 2 3\ne 3 4\ne 4 1\n"
	g, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 4, g.NbVertices())
	require.True(t, g.AreAdjacent(0, 1))
	require.False(t, g.AreAdjacent(0, 2))
}

func TestParseAcceptsColHeader(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p col 2 1\ne 1 2\n"))
	require.NoError(t, err) // "col" header form is also accepted
}

func TestParseRejectsBadHeader(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p graph 2 1\ne 1 2\n"))
	require.Error(t, err)
}

func TestParseAcceptsDoubledEdgeCount(t *testing.T) {
	// some files list both directions of every edge; the header then
	// declares m as either the directed or the undirected count.
	src := "p edge 2 2\ne 1 2\n"
	_, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)
}

func TestParseRejectsEdgeCountMismatch(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 4 4\ne 1 2\n"))
	require.Error(t, err)
}

func TestParseRejectsOutOfRangeVertex(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 2 1\ne 1 5\n"))
	require.Error(t, err)
}

func TestWriteRoundTrips(t *testing.T) {
	src := "p edge 4 4\ne 1 2\ne 2 3\ne 3 4\ne 4 1\n"
	g, err := dimacs.Parse(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dimacs.Write(&buf, g))

	g2, err := dimacs.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, g.NbVertices(), g2.NbVertices())
	for v := 0; v < g.NbVertices(); v++ {
		require.ElementsMatch(t, g.NeighborsOf(v), g2.NeighborsOf(v))
	}
}
