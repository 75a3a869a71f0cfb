package bcd

import (
	"errors"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/boustro/geom"
	"github.com/katalvlaran/boustro/planar"
)

// cmpSweep orders two points along the sweep: by rotated x first, then
// by rotated y as the lexicographic tie-breaker. The y tie-break is the
// symbolic perturbation that disambiguates vertical edges and equal-x
// corners; it returns 0 only for coordinates coincident on both axes.
func cmpSweep(p, q r2.Point, eps float64) int {
	switch {
	case p.X < q.X-eps:
		return -1
	case p.X > q.X+eps:
		return 1
	case p.Y < q.Y-eps:
		return -1
	case p.Y > q.Y+eps:
		return 1
	default:
		return 0
	}
}

// classify determines the event kind of vertex v from the sweep-frame
// positions of its two boundary neighbors:
//
//	lower ahead, upper ahead, interior above  → Open
//	lower ahead, upper ahead, interior below  → Split
//	lower behind, upper behind, interior above → Close
//	lower behind, upper behind, interior below → Merge
//	mixed                                      → Inflection
//
// rot holds sweep-frame coordinates indexed by vertex id.
func classify(sub *planar.Subdivision, rot []r2.Point, v int, eps float64) (EventKind, error) {
	vA, vB, err := sub.BoundaryNeighbors(v)
	if err != nil {
		if errors.Is(err, planar.ErrBoundaryDegree) {
			return 0, &EventError{Vertex: v, Err: ErrMalformedBoundary}
		}

		return 0, err
	}

	above := geom.Above(rot[vA], rot[v], rot[vB])
	lower, upper := vA, vB
	if above {
		lower, upper = vB, vA
	}

	lc := cmpSweep(rot[lower], rot[v], eps)
	uc := cmpSweep(rot[upper], rot[v], eps)
	if lc == 0 || uc == 0 {
		return 0, &EventError{Vertex: v, Err: ErrDegenerateSweep}
	}

	switch {
	case lc > 0 && uc > 0:
		if above {
			return Open, nil
		}

		return Split, nil
	case lc < 0 && uc < 0:
		if above {
			return Close, nil
		}

		return Merge, nil
	default:
		return Inflection, nil
	}
}
