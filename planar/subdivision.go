package planar

import (
	"github.com/golang/geo/r2"
)

// Subdivision is the mutable owner of a decomposition's geometry: an
// append-only point array and a directed adjacency structure keyed by
// dense vertex ids. A vertex id is its index in the point array and
// stays stable for the lifetime of the subdivision.
//
// Subdivision is not safe for concurrent mutation; the sweep owns it
// exclusively while it runs. Concurrent reads are safe once mutation
// has stopped.
type Subdivision struct {
	points []r2.Point
	out    []map[int]EdgeKind // out[u][v] = kind of edge u→v
	in     []map[int]EdgeKind // in[v][u]  = kind of edge u→v
}

// NewSubdivision creates a subdivision over a copy of the given points
// and no edges. The input slice is deep-copied so later appends never
// alias caller memory.
// Complexity: O(n).
func NewSubdivision(points []r2.Point) *Subdivision {
	s := &Subdivision{
		points: make([]r2.Point, len(points)),
		out:    make([]map[int]EdgeKind, len(points)),
		in:     make([]map[int]EdgeKind, len(points)),
	}
	copy(s.points, points)
	for i := range s.out {
		s.out[i] = make(map[int]EdgeKind, 2)
		s.in[i] = make(map[int]EdgeKind, 2)
	}

	return s
}

// Len returns the number of vertices.
// Complexity: O(1).
func (s *Subdivision) Len() int {
	return len(s.points)
}

// Point returns the coordinates of vertex id.
// Callers must ensure 0 ≤ id < Len.
// Complexity: O(1).
func (s *Subdivision) Point(id int) r2.Point {
	return s.points[id]
}

// Points returns a copy of the point array. Mutating the copy never
// affects the subdivision.
// Complexity: O(n).
func (s *Subdivision) Points() []r2.Point {
	out := make([]r2.Point, len(s.points))
	copy(out, s.points)

	return out
}

// AddPoint appends p as a new vertex and returns its id. Existing ids
// never shift.
// Complexity: O(1) amortized.
func (s *Subdivision) AddPoint(p r2.Point) int {
	s.points = append(s.points, p)
	s.out = append(s.out, make(map[int]EdgeKind, 2))
	s.in = append(s.in, make(map[int]EdgeKind, 2))

	return len(s.points) - 1
}

// Clone returns a deep copy: points, adjacency and tags are all
// independent of the receiver.
// Complexity: O(V + E).
func (s *Subdivision) Clone() *Subdivision {
	c := &Subdivision{
		points: make([]r2.Point, len(s.points)),
		out:    make([]map[int]EdgeKind, len(s.out)),
		in:     make([]map[int]EdgeKind, len(s.in)),
	}
	copy(c.points, s.points)
	for u, m := range s.out {
		c.out[u] = make(map[int]EdgeKind, len(m))
		for v, k := range m {
			c.out[u][v] = k
		}
	}
	for v, m := range s.in {
		c.in[v] = make(map[int]EdgeKind, len(m))
		for u, k := range m {
			c.in[v][u] = k
		}
	}

	return c
}

// checkVertex validates that id is a known vertex.
func (s *Subdivision) checkVertex(id int) error {
	if id < 0 || id >= len(s.points) {
		return ErrVertexOutOfRange
	}

	return nil
}
