package planar

import "fmt"

// Validate checks the structural invariants the decomposition relies on
// at every stage:
//
//  1. every vertex has exactly one non-chord in-edge and one non-chord
//     out-edge (its polygon-boundary neighbors);
//  2. every ChordForward edge u→v is paired with a ChordReverse edge
//     v→u, and vice versa.
//
// Returns nil when all invariants hold, or the first violation wrapped
// with its vertex or edge.
// Complexity: O(V + E).
func (s *Subdivision) Validate() error {
	for v := range s.points {
		if _, _, err := s.BoundaryNeighbors(v); err != nil {
			return err
		}
	}
	for u, m := range s.out {
		for v, k := range m {
			switch k {
			case ChordForward:
				if rk, ok := s.out[v][u]; !ok || rk != ChordReverse {
					return fmt.Errorf("planar: chord %d→%d: %w", u, v, ErrChordPairing)
				}
			case ChordReverse:
				if fk, ok := s.out[v][u]; !ok || fk != ChordForward {
					return fmt.Errorf("planar: chord %d→%d: %w", u, v, ErrChordPairing)
				}
			}
		}
	}

	return nil
}
