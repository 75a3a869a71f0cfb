package planar

import (
	"fmt"
	"sort"

	"github.com/golang/geo/r2"
)

// AddEdge inserts the directed edge u→v with the given kind.
// Returns ErrVertexOutOfRange, ErrSelfLoop or ErrDuplicateEdge on
// invalid input.
// Complexity: O(1) average.
func (s *Subdivision) AddEdge(u, v int, kind EdgeKind) error {
	if err := s.checkVertex(u); err != nil {
		return fmt.Errorf("planar: AddEdge(%d,%d): %w", u, v, err)
	}
	if err := s.checkVertex(v); err != nil {
		return fmt.Errorf("planar: AddEdge(%d,%d): %w", u, v, err)
	}
	if u == v {
		return fmt.Errorf("planar: AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if _, exists := s.out[u][v]; exists {
		return fmt.Errorf("planar: AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}
	s.out[u][v] = kind
	s.in[v][u] = kind

	return nil
}

// RemoveEdge deletes the directed edge u→v.
// Returns ErrEdgeNotFound if it does not exist.
// Complexity: O(1) average.
func (s *Subdivision) RemoveEdge(u, v int) error {
	if u < 0 || u >= len(s.points) || v < 0 || v >= len(s.points) {
		return fmt.Errorf("planar: RemoveEdge(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if _, exists := s.out[u][v]; !exists {
		return fmt.Errorf("planar: RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	delete(s.out[u], v)
	delete(s.in[v], u)

	return nil
}

// HasEdge reports whether the directed edge u→v exists.
// Complexity: O(1) average.
func (s *Subdivision) HasEdge(u, v int) bool {
	if u < 0 || u >= len(s.points) {
		return false
	}
	_, ok := s.out[u][v]

	return ok
}

// Kind returns the tag of the directed edge u→v and whether it exists.
// Complexity: O(1) average.
func (s *Subdivision) Kind(u, v int) (EdgeKind, bool) {
	if u < 0 || u >= len(s.points) {
		return 0, false
	}
	k, ok := s.out[u][v]

	return k, ok
}

// Edges returns a snapshot of all directed edges, sorted by (From, To)
// for deterministic enumeration.
// Complexity: O(V + E log E).
func (s *Subdivision) Edges() []Edge {
	var edges []Edge
	for u, m := range s.out {
		for v, k := range m {
			edges = append(edges, Edge{From: u, To: v, Kind: k})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// SplitEdge replaces the directed edge u→v by u→p and p→v, where p is a
// new vertex at the given coordinates. Both replacement edges inherit
// the split edge's kind. Returns the id of the new vertex.
// Returns ErrEdgeNotFound if u→v does not exist.
// Complexity: O(1) average.
func (s *Subdivision) SplitEdge(u, v int, p r2.Point) (int, error) {
	kind, ok := s.Kind(u, v)
	if !ok {
		return 0, fmt.Errorf("planar: SplitEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	pid := s.AddPoint(p)
	delete(s.out[u], v)
	delete(s.in[v], u)
	s.out[u][pid] = kind
	s.in[pid][u] = kind
	s.out[pid][v] = kind
	s.in[v][pid] = kind

	return pid, nil
}
