package polygon

import "github.com/golang/geo/r2"

// Canned rings with decompositions known in closed form. All of them are
// returned clockwise, ready for FromRings.

// Rectangle returns the axis-aligned rectangle [0,w]×[0,h].
// It decomposes into a single cell for any sweep angle that keeps its
// corners separated.
func Rectangle(w, h float64) []r2.Point {
	return []r2.Point{{X: 0, Y: 0}, {X: 0, Y: h}, {X: w, Y: h}, {X: w, Y: 0}}
}

// Hexagon returns an irregular convex hexagon with pairwise distinct
// vertex x coordinates. Convex polygons decompose into a single cell
// regardless of sweep angle.
func Hexagon() []r2.Point {
	return []r2.Point{
		{X: 0, Y: 2}, {X: 1, Y: 4}, {X: 3, Y: 5},
		{X: 5, Y: 4}, {X: 6, Y: 1}, {X: 2, Y: 0},
	}
}

// NotchedRectangle returns a 4×4 square with a triangular notch cut
// into its left edge (apex at (2,2)). Under a horizontal sweep the apex
// is a merge event: two cells open on the left of the notch and join
// into one on its right, giving three cells whose Reeb graph is a path
// of length two.
func NotchedRectangle() []r2.Point {
	return []r2.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 2}, {X: 0, Y: 3},
		{X: 0, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 0},
	}
}

// DoubleNotchedRectangle returns an 8×4 rectangle with a triangular
// notch in each vertical edge: a merge at (2,2) and a split at (6,2).
// It decomposes into five cells (two left of the merge, one middle, two
// right of the split).
func DoubleNotchedRectangle() []r2.Point {
	return []r2.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 2}, {X: 0, Y: 3},
		{X: 0, Y: 4}, {X: 8, Y: 4}, {X: 8, Y: 3}, {X: 6, Y: 2},
		{X: 8, Y: 1}, {X: 8, Y: 0},
	}
}

// Staircase returns a descending staircase with three concave step
// corners. Each step corner is a split event whose probe only finds a
// supporting edge below; the resulting chords cut four cells forming a
// linear Reeb chain.
func Staircase() []r2.Point {
	return []r2.Point{
		{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 3},
		{X: 4, Y: 3}, {X: 4, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 1},
		{X: 8, Y: 1}, {X: 8, Y: 0},
	}
}

// SquareWithHole returns the 4×4 square and a centered 2×2 hole. The
// hole's leftmost corner splits the sweep and its rightmost corner
// merges it again, introducing four intersection vertices and four
// cells around the hole.
func SquareWithHole() (outer, hole []r2.Point) {
	outer = []r2.Point{{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 0}}
	hole = []r2.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}}

	return outer, hole
}
