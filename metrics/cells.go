package metrics

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/boustro/bcd"
	"github.com/katalvlaran/boustro/geom"
)

// BBoxes returns each cell's bounding box in the sweep-rotated frame of
// the decomposition, in cell order. Width along the sweep is
// box.X.Length(), height across it box.Y.Length().
// Complexity: O(V).
func BBoxes(dec *bcd.Decomposition) ([]r2.Rect, error) {
	if dec == nil {
		return nil, ErrNilDecomposition
	}
	if len(dec.Cells) == 0 {
		return nil, ErrNoCells
	}
	rot := geom.Rotate(dec.Sub.Points(), dec.Theta)

	boxes := make([]r2.Rect, len(dec.Cells))
	for i, c := range dec.Cells {
		pts := make([]r2.Point, len(c.Loop))
		for j, id := range c.Loop {
			pts[j] = rot[id]
		}
		boxes[i] = r2.RectFromPoints(pts...)
	}

	return boxes, nil
}

// Areas returns the shoelace area of every cell, in cell order. The
// boundary loop supplies the vertex order, so non-convex cells measure
// correctly.
// Complexity: O(V).
func Areas(dec *bcd.Decomposition) ([]float64, error) {
	if dec == nil {
		return nil, ErrNilDecomposition
	}
	if len(dec.Cells) == 0 {
		return nil, ErrNoCells
	}

	areas := make([]float64, len(dec.Cells))
	for i, c := range dec.Cells {
		ring := make([]r2.Point, len(c.Loop))
		for j, id := range c.Loop {
			ring[j] = dec.Sub.Point(id)
		}
		areas[i] = math.Abs(geom.SignedArea(ring))
	}

	return areas, nil
}
