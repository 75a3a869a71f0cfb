package polygon

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/boustro/geom"
	"github.com/katalvlaran/boustro/planar"
)

// FromRings builds a planar subdivision from an outer ring and any
// number of hole rings. Vertex ids follow ring order: the outer ring
// first, then each hole in turn.
//
// Orientation is normalized before edges are emitted: the outer ring is
// forced clockwise and every hole counter-clockwise, so the polygon
// interior lies to the right of every directed boundary edge — the
// convention the event classifier assumes. Rings already in the right
// orientation are used as given; others are reversed (which also
// reverses the vertex id order of that ring).
//
// Outer edges are tagged OuterBoundary, hole edges HoleBoundary.
// Complexity: O(n) over the total vertex count.
func FromRings(outer []r2.Point, holes ...[]r2.Point) (*planar.Subdivision, error) {
	if err := validateRing(outer); err != nil {
		return nil, fmt.Errorf("polygon: outer ring: %w", err)
	}
	rings := make([][]r2.Point, 0, 1+len(holes))
	rings = append(rings, orient(outer, false))
	for i, h := range holes {
		if err := validateRing(h); err != nil {
			return nil, fmt.Errorf("polygon: hole ring %d: %w", i, err)
		}
		rings = append(rings, orient(h, true))
	}

	var pts []r2.Point
	for _, r := range rings {
		pts = append(pts, r...)
	}
	sub := planar.NewSubdivision(pts)

	base := 0
	for ri, r := range rings {
		kind := planar.OuterBoundary
		if ri > 0 {
			kind = planar.HoleBoundary
		}
		n := len(r)
		for i := 0; i < n; i++ {
			if err := sub.AddEdge(base+i, base+(i+1)%n, kind); err != nil {
				return nil, fmt.Errorf("polygon: ring %d: %w", ri, err)
			}
		}
		base += n
	}

	return sub, nil
}

// validateRing rejects rings that cannot bound area.
func validateRing(ring []r2.Point) error {
	if len(ring) < 3 {
		return ErrRingTooShort
	}
	n := len(ring)
	for i := 0; i < n; i++ {
		if ring[i] == ring[(i+1)%n] {
			return fmt.Errorf("vertex %d: %w", i, ErrRepeatedPoint)
		}
	}
	if geom.SignedArea(ring) == 0 {
		return ErrZeroArea
	}

	return nil
}

// orient returns ring with the requested orientation: counter-clockwise
// when ccw is true, clockwise otherwise. The input is copied either way.
func orient(ring []r2.Point, ccw bool) []r2.Point {
	out := make([]r2.Point, len(ring))
	copy(out, ring)
	area := geom.SignedArea(out)
	if (ccw && area < 0) || (!ccw && area > 0) {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}
