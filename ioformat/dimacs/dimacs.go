package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/graphsolve/dogscolor/graph"
)

// Load parses a DIMACS coloring instance from path.
func Load(path string) (*graph.DIMACSGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: %w: %w", graph.ErrMalformedInstance, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a DIMACS coloring instance from r.
func Parse(r io.Reader) (*graph.DIMACSGraph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	n, m := -1, -1
	var edges [][2]int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) != 4 || (fields[1] != "edge" && fields[1] != "col") {
				return nil, fmt.Errorf("dimacs: %w: malformed header %q", graph.ErrMalformedInstance, line)
			}
			var err error
			n, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: %w: bad vertex count: %w", graph.ErrMalformedInstance, err)
			}
			m, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("dimacs: %w: bad edge count: %w", graph.ErrMalformedInstance, err)
			}
		case "e":
			if n < 0 {
				return nil, fmt.Errorf("dimacs: %w: edge line before header", graph.ErrMalformedInstance)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("dimacs: %w: malformed edge line %q", graph.ErrMalformedInstance, line)
			}
			a, errA := strconv.Atoi(fields[1])
			b, errB := strconv.Atoi(fields[2])
			if errA != nil || errB != nil {
				return nil, fmt.Errorf("dimacs: %w: non-integer edge endpoint in %q", graph.ErrMalformedInstance, line)
			}
			if a < 1 || a > n || b < 1 || b > n {
				return nil, fmt.Errorf("dimacs: %w: edge endpoint out of range in %q", graph.ErrVertexOutOfRange, line)
			}
			edges = append(edges, [2]int{a - 1, b - 1})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: %w: %w", graph.ErrMalformedInstance, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("dimacs: %w: missing header line", graph.ErrMalformedInstance)
	}
	// tolerate files that list both directions of every edge, in either
	// direction of the header convention.
	if len(edges) != m && 2*len(edges) != m && len(edges) != 2*m {
		return nil, fmt.Errorf("dimacs: %w: header declares %d edges, found %d", graph.ErrMalformedInstance, m, len(edges))
	}
	return graph.NewDIMACSGraph(n, edges), nil
}

// Write serializes g back to DIMACS text format, for round-tripping a
// loaded instance (mainly useful in tests and tooling).
func Write(w io.Writer, g *graph.DIMACSGraph) error {
	stats := graph.ComputeStats(g)
	if _, err := fmt.Fprintf(w, "p edge %d %d\n", stats.NbVertices, stats.NbEdges); err != nil {
		return err
	}
	for _, v := range g.Vertices() {
		for _, u := range g.NeighborsOf(v) {
			if u <= v {
				continue
			}
			if _, err := fmt.Fprintf(w, "e %d %d\n", v+1, u+1); err != nil {
				return err
			}
		}
	}
	return nil
}
