package planar

import (
	"fmt"
	"sort"
)

// Successors returns the out-neighbors of u, sorted ascending for
// deterministic traversal.
// Complexity: O(d log d).
func (s *Subdivision) Successors(u int) []int {
	if u < 0 || u >= len(s.points) {
		return nil
	}
	ids := make([]int, 0, len(s.out[u]))
	for v := range s.out[u] {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}

// Predecessors returns the in-neighbors of v, sorted ascending.
// Complexity: O(d log d).
func (s *Subdivision) Predecessors(v int) []int {
	if v < 0 || v >= len(s.points) {
		return nil
	}
	ids := make([]int, 0, len(s.in[v]))
	for u := range s.in[v] {
		ids = append(ids, u)
	}
	sort.Ints(ids)

	return ids
}

// BoundaryNeighbors returns the unique non-chord predecessor and
// successor of v — its neighbors along the original polygon boundary.
// Chord edges inserted at split/merge events are ignored. Returns
// ErrBoundaryDegree when the vertex does not have exactly one of each.
// Complexity: O(d).
func (s *Subdivision) BoundaryNeighbors(v int) (pred, succ int, err error) {
	if err = s.checkVertex(v); err != nil {
		return 0, 0, fmt.Errorf("planar: BoundaryNeighbors(%d): %w", v, err)
	}
	pred, succ = -1, -1
	for u, k := range s.in[v] {
		if k.IsChord() {
			continue
		}
		if pred != -1 {
			return 0, 0, fmt.Errorf("planar: BoundaryNeighbors(%d): %w", v, ErrBoundaryDegree)
		}
		pred = u
	}
	for w, k := range s.out[v] {
		if k.IsChord() {
			continue
		}
		if succ != -1 {
			return 0, 0, fmt.Errorf("planar: BoundaryNeighbors(%d): %w", v, ErrBoundaryDegree)
		}
		succ = w
	}
	if pred == -1 || succ == -1 {
		return 0, 0, fmt.Errorf("planar: BoundaryNeighbors(%d): %w", v, ErrBoundaryDegree)
	}

	return pred, succ, nil
}
