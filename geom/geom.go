// Package geom provides the planar primitives shared by the sweep
// engine, the cell tracer and the metrics layer.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Rotate returns a fresh slice holding every point of pts rotated
// counter-clockwise by theta radians about the origin, using the
// standard 2×2 rotation matrix. The input slice is never mutated, so
// callers can keep canonical coordinates intact while sweeping in the
// rotated frame.
// Complexity: O(n).
func Rotate(pts []r2.Point, theta float64) []r2.Point {
	sin, cos := math.Sincos(theta)
	out := make([]r2.Point, len(pts))
	for i, p := range pts {
		out[i] = r2.Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
	}

	return out
}

// RotatePoint rotates a single point counter-clockwise by theta radians
// about the origin.
// Complexity: O(1).
func RotatePoint(p r2.Point, theta float64) r2.Point {
	sin, cos := math.Sincos(theta)

	return r2.Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Cross2 returns the scalar cross product a.X·b.Y − b.X·a.Y.
// Positive when b lies counter-clockwise of a.
// Complexity: O(1).
func Cross2(a, b r2.Point) float64 {
	return a.X*b.Y - b.X*a.Y
}

// Above reports whether Cross2(v−u, v−w) ≥ 0 for the vertex v with
// boundary neighbors u (predecessor) and w (successor). The classifier
// uses it to decide on which side of the vertex the interior enters.
// Complexity: O(1).
func Above(u, v, w r2.Point) bool {
	return Cross2(v.Sub(u), v.Sub(w)) >= 0
}

// Turn scores the turn taken at v when arriving from u and leaving
// toward w. It returns the cross and dot products of the two normalized
// direction vectors (v−u) and (w−v):
//
//   - cross < 0: clockwise (right) turn, the more negative the sharper;
//   - cross > 0: counter-clockwise (left) turn;
//   - cross ≈ 0: straight ahead (dot ≈ +1) or full reversal (dot ≈ −1).
//
// The dot product is the tie-breaker when two candidates score the same
// cross: a reversal is "sharper" than going straight.
// Degenerate zero-length directions score (0, 0).
// Complexity: O(1).
func Turn(u, v, w r2.Point) (cross, dot float64) {
	a := v.Sub(u)
	b := w.Sub(v)
	an := a.Norm()
	bn := b.Norm()
	if an == 0 || bn == 0 {
		return 0, 0
	}
	a = a.Mul(1 / an)
	b = b.Mul(1 / bn)

	return Cross2(a, b), a.Dot(b)
}

// IntersectVertical returns the point where the vertical line px = x
// crosses segment ab, and true, when x lies strictly between a.X and
// b.X; otherwise the zero point and false. Strict inequalities keep
// segment endpoints from being counted twice by adjacent edges.
// Complexity: O(1).
func IntersectVertical(x float64, a, b r2.Point) (r2.Point, bool) {
	lo, hi := a, b
	if lo.X > hi.X {
		lo, hi = hi, lo
	}
	if !(lo.X < x && x < hi.X) {
		return r2.Point{}, false
	}
	t := (x - lo.X) / (hi.X - lo.X)

	return r2.Point{X: x, Y: lo.Y + t*(hi.Y-lo.Y)}, true
}

// SignedArea returns the shoelace area of the ring, positive for
// counter-clockwise orientation and negative for clockwise. The ring is
// implicitly closed (last vertex connects back to the first).
// Complexity: O(n).
func SignedArea(ring []r2.Point) float64 {
	var sum float64
	n := len(ring)
	for i := 0; i < n; i++ {
		p, q := ring[i], ring[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}

	return sum / 2
}
