package cgshop

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/graphsolve/dogscolor/geom"
	"github.com/graphsolve/dogscolor/graph"
)

func init() {
	graph.RegisterCGSHOPSolutionWriter(writeSolutionFile)
}

// instanceDoc mirrors the CGSHOP'22 instance JSON shape.
type instanceDoc struct {
	N     int       `json:"n"`
	M     int       `json:"m"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	EdgeI []int     `json:"edge_i"`
	EdgeJ []int     `json:"edge_j"`
	ID    string    `json:"id"`
}

// solutionDoc mirrors the CGSHOP'22 solution JSON shape.
type solutionDoc struct {
	Type      string `json:"type"`
	Instance  string `json:"instance"`
	NumColors int    `json:"num_colors"`
	Colors    []int  `json:"colors"`
}

const solutionType = "Solution_CGSHOP2022"

// Load reads a CGSHOP instance from path and builds its segment-intersection
// graph.
func Load(path string) (*graph.CGSHOPGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cgshop: %w: %w", graph.ErrMalformedInstance, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a CGSHOP instance document from r.
func Parse(r io.Reader) (*graph.CGSHOPGraph, error) {
	var doc instanceDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cgshop: %w: %w", graph.ErrMalformedInstance, err)
	}
	if len(doc.X) != doc.N || len(doc.Y) != doc.N {
		return nil, fmt.Errorf("cgshop: %w: coordinate arrays do not match n=%d", graph.ErrMalformedInstance, doc.N)
	}
	if len(doc.EdgeI) != doc.M || len(doc.EdgeJ) != doc.M {
		return nil, fmt.Errorf("cgshop: %w: edge arrays do not match m=%d", graph.ErrMalformedInstance, doc.M)
	}
	segments := make([]geom.Segment, doc.M)
	for i := 0; i < doc.M; i++ {
		a, b := doc.EdgeI[i], doc.EdgeJ[i]
		if a < 0 || a >= doc.N || b < 0 || b >= doc.N {
			return nil, fmt.Errorf("cgshop: %w: edge %d references out-of-range point", graph.ErrVertexOutOfRange, i)
		}
		segments[i] = geom.Segment{
			P: geom.Point{X: int64(doc.X[a]), Y: int64(doc.Y[a])},
			Q: geom.Point{X: int64(doc.X[b]), Y: int64(doc.Y[b])},
		}
	}
	return graph.NewCGSHOPGraph(doc.ID, segments), nil
}

// writeSolutionFile serializes a CGSHOP solution document to path; installed
// into the graph package at init time so CGSHOPGraph.WriteSolution can reach
// it without ioformat/cgshop depending back on graph's callers.
func writeSolutionFile(path, instanceID string, numColors int, colors []int) error {
	doc := solutionDoc{
		Type:      solutionType,
		Instance:  instanceID,
		NumColors: numColors,
		Colors:    colors,
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cgshop: writing solution: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	return enc.Encode(doc)
}

// WriteSolution writes a CGSHOP solution JSON document for the given
// partition (color class -> member segments) to path.
func WriteSolution(path, instanceID string, partition [][]int) error {
	n := 0
	for _, class := range partition {
		n += len(class)
	}
	colors := make([]int, n)
	for c, class := range partition {
		for _, v := range class {
			colors[v] = c
		}
	}
	return writeSolutionFile(path, instanceID, len(partition), colors)
}

// LoadSolution reads a CGSHOP solution document back into a
// color -> members partition.
func LoadSolution(path string) (instanceID string, partition [][]int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("cgshop: reading solution: %w", err)
	}
	defer f.Close()
	var doc solutionDoc
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return "", nil, fmt.Errorf("cgshop: %w: %w", graph.ErrMalformedInstance, err)
	}
	partition = make([][]int, doc.NumColors)
	for v, c := range doc.Colors {
		partition[c] = append(partition[c], v)
	}
	return doc.Instance, partition, nil
}

// degreeCachePath returns the cache file path for an instance id:
// tmp/<id>.degree.cache.json.
func degreeCachePath(instanceID string) string {
	return filepath.Join("tmp", instanceID+".degree.cache.json")
}

// LoadDegreeCache returns the cached per-vertex degrees for instanceID, if a
// cache file exists. The second return value is false on a cache miss.
func LoadDegreeCache(instanceID string) ([]int, bool, error) {
	f, err := os.Open(degreeCachePath(instanceID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cgshop: reading degree cache: %w", err)
	}
	defer f.Close()
	var degrees []int
	if err := json.NewDecoder(f).Decode(&degrees); err != nil {
		return nil, false, fmt.Errorf("cgshop: %w: %w", graph.ErrMalformedInstance, err)
	}
	return degrees, true, nil
}

// SaveDegreeCache writes degrees to the cache file for instanceID, creating
// the "tmp" directory if necessary.
func SaveDegreeCache(instanceID string, degrees []int) error {
	dir := filepath.Dir(degreeCachePath(instanceID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cgshop: writing degree cache: %w", err)
	}
	f, err := os.Create(degreeCachePath(instanceID))
	if err != nil {
		return fmt.Errorf("cgshop: writing degree cache: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(degrees)
}

// Degrees returns the per-vertex degree of g, reusing a cache file under
// tmp/ when one is present and writing one when it is not. Computing
// adjacency for a large CGSHOP instance is the dominant cost, so repeated
// tool invocations over the same instance should not pay it twice.
func Degrees(g *graph.CGSHOPGraph) ([]int, error) {
	if cached, ok, err := LoadDegreeCache(g.InstanceID()); err != nil {
		return nil, err
	} else if ok && len(cached) == g.NbVertices() {
		return cached, nil
	}
	degrees := make([]int, g.NbVertices())
	for v := 0; v < g.NbVertices(); v++ {
		degrees[v] = g.Degree(v)
	}
	if err := SaveDegreeCache(g.InstanceID(), degrees); err != nil {
		return nil, err
	}
	return degrees, nil
}
