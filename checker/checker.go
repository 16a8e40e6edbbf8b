package checker

import (
	"errors"
	"fmt"

	"github.com/graphsolve/dogscolor/bitset"
	"github.com/graphsolve/dogscolor/graph"
)

// Sentinel errors wrapped by CheckColoring and CheckClique; use errors.Is
// against these, and the concrete *VertexAddedTwiceError etc. via
// errors.As for the offending vertex/edge.
var (
	ErrVertexAddedTwice = errors.New("checker: vertex assigned to more than one class")
	ErrVertexNotColored = errors.New("checker: vertex left out of every class")
	ErrConflictingEdge  = errors.New("checker: adjacent vertices share a class")
	ErrNotAClique       = errors.New("checker: two members are not adjacent")
)

// VertexAddedTwiceError reports the vertex that appeared in more than one
// color class.
type VertexAddedTwiceError struct{ Vertex int }

func (e *VertexAddedTwiceError) Error() string {
	return fmt.Sprintf("vertex %d assigned to more than one class", e.Vertex)
}
func (e *VertexAddedTwiceError) Unwrap() error { return ErrVertexAddedTwice }

// VertexNotColoredError reports a vertex missing from every class.
type VertexNotColoredError struct{ Vertex int }

func (e *VertexNotColoredError) Error() string {
	return fmt.Sprintf("vertex %d left out of every class", e.Vertex)
}
func (e *VertexNotColoredError) Unwrap() error { return ErrVertexNotColored }

// ConflictingEdgeError reports an edge whose endpoints share a class.
type ConflictingEdgeError struct{ U, V int }

func (e *ConflictingEdgeError) Error() string {
	return fmt.Sprintf("vertices %d and %d are adjacent but share a class", e.U, e.V)
}
func (e *ConflictingEdgeError) Unwrap() error { return ErrConflictingEdge }

// NotACliqueError reports two claimed clique members that are not adjacent.
type NotACliqueError struct{ U, V int }

func (e *NotACliqueError) Error() string {
	return fmt.Sprintf("vertices %d and %d are claimed to be in a clique together but are not adjacent", e.U, e.V)
}
func (e *NotACliqueError) Unwrap() error { return ErrNotAClique }

// CheckColoring independently verifies that partition is a proper total
// coloring of g: every vertex colored exactly once, and no two adjacent
// vertices share a class. Returns nil on success.
func CheckColoring(g graph.Graph, partition [][]int) error {
	n := g.NbVertices()
	visited := bitset.New(n)
	for _, class := range partition {
		for _, v := range class {
			if visited.Test(v) {
				return &VertexAddedTwiceError{Vertex: v}
			}
			visited.Insert(v)
		}
	}
	if visited.Count() != n {
		for _, v := range g.Vertices() {
			if !visited.Test(v) {
				return &VertexNotColoredError{Vertex: v}
			}
		}
	}
	for _, class := range partition {
		members := bitset.New(n)
		for _, v := range class {
			members.Insert(v)
		}
		for _, v := range class {
			for _, u := range g.NeighborsOf(v) {
				if members.Test(u) {
					return &ConflictingEdgeError{U: u, V: v}
				}
			}
		}
	}
	return nil
}

// CheckClique independently verifies that members forms a genuine clique
// in g: every pair is pairwise adjacent.
func CheckClique(g graph.Graph, members []int) error {
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if !g.AreAdjacent(members[i], members[j]) {
				return &NotACliqueError{U: members[i], V: members[j]}
			}
		}
	}
	return nil
}
