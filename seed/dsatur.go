package seed

import (
	"container/heap"

	"github.com/graphsolve/dogscolor/graph"
)

// dsaturEntry is one vertex's priority-queue state: saturation (number of
// distinct colors among colored neighbors) then degree, both maximized.
type dsaturEntry struct {
	vertex     int
	saturation int
	degree     int
	index      int // heap index, maintained by container/heap
}

type dsaturQueue []*dsaturEntry

func (q dsaturQueue) Len() int { return len(q) }

// Less orders by (saturation, degree) descending, so Pop returns the
// most saturated vertex, ties broken by degree.
func (q dsaturQueue) Less(i, j int) bool {
	if q[i].saturation != q[j].saturation {
		return q[i].saturation > q[j].saturation
	}
	return q[i].degree > q[j].degree
}

func (q dsaturQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *dsaturQueue) Push(x any) {
	e := x.(*dsaturEntry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *dsaturQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// DSATURGreedy colors g via the DSATUR heuristic: repeatedly
// pick an uncolored vertex maximizing saturation, tie-break by degree, and
// assign it the smallest color index not forbidden by a colored neighbor.
//
// Complexity: O((n + m) log n) thanks to the container/heap priority queue,
// with lazy increase-key: a fresh entry is pushed whenever a vertex's
// saturation grows, and stale entries of already-colored vertices are
// skipped when popped.
func DSATURGreedy(g graph.Graph) [][]int {
	n := g.NbVertices()
	colorOf := make([]int, n)
	colored := make([]bool, n)
	for i := range colorOf {
		colorOf[i] = -1
	}

	// satColors[v] tracks the set of distinct colors seen among v's
	// colored neighbors, to recompute saturation on demand.
	satColors := make([]map[int]struct{}, n)
	for v := range satColors {
		satColors[v] = make(map[int]struct{})
	}

	pq := make(dsaturQueue, 0, n)
	for _, v := range g.Vertices() {
		e := &dsaturEntry{vertex: v, saturation: 0, degree: g.Degree(v)}
		pq = append(pq, e)
	}
	heap.Init(&pq)

	numColors := 0
	for pq.Len() > 0 {
		e := heap.Pop(&pq).(*dsaturEntry)
		v := e.vertex
		if colored[v] {
			continue // stale entry, superseded by a fresher push
		}

		forbidden := make(map[int]struct{}, len(satColors[v]))
		for c := range satColors[v] {
			forbidden[c] = struct{}{}
		}
		c := 0
		for {
			if _, bad := forbidden[c]; !bad {
				break
			}
			c++
		}
		colorOf[v] = c
		colored[v] = true
		if c+1 > numColors {
			numColors = c + 1
		}

		for _, u := range g.NeighborsOf(v) {
			if colored[u] {
				continue
			}
			if _, already := satColors[u][c]; !already {
				satColors[u][c] = struct{}{}
				heap.Push(&pq, &dsaturEntry{
					vertex:     u,
					saturation: len(satColors[u]),
					degree:     g.Degree(u),
				})
			}
		}
	}

	return partitionFromColors(colorOf, numColors)
}

// partitionFromColors groups vertices by color index into a partition.
func partitionFromColors(colorOf []int, numColors int) [][]int {
	partition := make([][]int, numColors)
	for v, c := range colorOf {
		partition[c] = append(partition[c], v)
	}
	return partition
}
