package bcd_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boustro/bcd"
	"github.com/katalvlaran/boustro/geom"
	"github.com/katalvlaran/boustro/planar"
	"github.com/katalvlaran/boustro/polygon"
)

// mustSub builds a subdivision from rings or fails the test.
func mustSub(t *testing.T, outer []r2.Point, holes ...[]r2.Point) *planar.Subdivision {
	t.Helper()
	sub, err := polygon.FromRings(outer, holes...)
	require.NoError(t, err)

	return sub
}

// memberSets returns each cell's sorted vertex ids, in cell order.
func memberSets(dec *bcd.Decomposition) [][]int {
	out := make([][]int, len(dec.Cells))
	for i, c := range dec.Cells {
		out[i] = c.Members()
	}

	return out
}

// cellArea computes the shoelace area over a cell's boundary loop.
func cellArea(dec *bcd.Decomposition, c bcd.Cell) float64 {
	ring := make([]r2.Point, len(c.Loop))
	for i, id := range c.Loop {
		ring[i] = dec.Sub.Point(id)
	}

	return math.Abs(geom.SignedArea(ring))
}

func totalArea(dec *bcd.Decomposition) float64 {
	var sum float64
	for _, c := range dec.Cells {
		sum += cellArea(dec, c)
	}

	return sum
}

func TestDecompose_NilSubdivision(t *testing.T) {
	_, err := bcd.Decompose(nil, 0)
	assert.ErrorIs(t, err, bcd.ErrNilSubdivision)
}

func TestDecompose_Rectangle(t *testing.T) {
	sub := mustSub(t, polygon.Rectangle(4, 2))
	dec, err := bcd.Decompose(sub, 0)
	require.NoError(t, err)

	require.Len(t, dec.Cells, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, dec.Cells[0].Members())
	assert.InDelta(t, 8, totalArea(dec), 1e-9)

	// Leftmost corner opens, rightmost-top closes, the rest pass through.
	assert.Equal(t, bcd.Open, dec.Events[0])
	assert.Equal(t, bcd.Inflection, dec.Events[1])
	assert.Equal(t, bcd.Close, dec.Events[2])
	assert.Equal(t, bcd.Inflection, dec.Events[3])
	assert.Equal(t, []bcd.CriticalEvent{
		{Vertex: 0, Kind: bcd.Open},
		{Vertex: 2, Kind: bcd.Close},
	}, dec.Criticals)

	// No chords on a convex polygon.
	assert.Equal(t, 4, dec.Sub.Len())
	require.NoError(t, dec.Sub.Validate())
}

func TestDecompose_InputUntouched(t *testing.T) {
	sub := mustSub(t, polygon.Staircase())
	before := sub.Len()

	_, err := bcd.Decompose(sub, 0)
	require.NoError(t, err)

	assert.Equal(t, before, sub.Len(), "input subdivision must not gain vertices")
	for _, e := range sub.Edges() {
		assert.False(t, e.Kind.IsChord(), "input subdivision must not gain chords")
	}
}

func TestDecompose_Hexagon_AnyAngle(t *testing.T) {
	for _, theta := range []float64{0, 0.3, -1.1, math.Pi / 6} {
		sub := mustSub(t, polygon.Hexagon())
		dec, err := bcd.Decompose(sub, theta)
		require.NoError(t, err, "theta=%v", theta)

		assert.Len(t, dec.Cells, 1, "convex polygon is a single cell at theta=%v", theta)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, dec.Cells[0].Members())

		opens, closes := 0, 0
		for _, ev := range dec.Criticals {
			switch ev.Kind {
			case bcd.Open:
				opens++
			case bcd.Close:
				closes++
			}
		}
		assert.Equal(t, 1, opens)
		assert.Equal(t, 1, closes)
	}
}

func TestDecompose_NotchedRectangle(t *testing.T) {
	sub := mustSub(t, polygon.NotchedRectangle())
	dec, err := bcd.Decompose(sub, 0)
	require.NoError(t, err)

	// Intersection vertices 7 (top hit) and 8 (bottom hit) join the
	// seven ring vertices.
	require.Equal(t, 9, dec.Sub.Len())
	assert.Equal(t, bcd.Merge, dec.Events[2])
	assert.Equal(t, bcd.Intersect, dec.Events[7])
	assert.Equal(t, bcd.Intersect, dec.Events[8])

	want := [][]int{
		{0, 1, 2, 8},    // below the notch
		{2, 3, 4, 7},    // above the notch
		{2, 5, 6, 7, 8}, // right of the merge
	}
	assert.Equal(t, want, memberSets(dec))

	// Merge chords open into the event vertex.
	k, ok := dec.Sub.Kind(7, 2)
	require.True(t, ok)
	assert.Equal(t, planar.ChordForward, k)
	k, ok = dec.Sub.Kind(2, 7)
	require.True(t, ok)
	assert.Equal(t, planar.ChordReverse, k)
	k, ok = dec.Sub.Kind(8, 2)
	require.True(t, ok)
	assert.Equal(t, planar.ChordForward, k)

	assert.InDelta(t, 14, totalArea(dec), 1e-9, "cells must tile the polygon")
	require.NoError(t, dec.Sub.Validate())
}

func TestDecompose_SquareWithHole(t *testing.T) {
	outer, hole := polygon.SquareWithHole()
	sub := mustSub(t, outer, hole)
	dec, err := bcd.Decompose(sub, 0)
	require.NoError(t, err)

	// Four intersection vertices are introduced.
	require.Equal(t, 12, dec.Sub.Len())
	intersects := 0
	for _, kind := range dec.Events {
		if kind == bcd.Intersect {
			intersects++
		}
	}
	assert.Equal(t, 4, intersects)

	assert.Equal(t, bcd.Split, dec.Events[4], "hole's leftmost corner splits")
	assert.Equal(t, bcd.Merge, dec.Events[6], "hole's rightmost corner merges")

	want := [][]int{
		{0, 1, 4, 8, 9},   // left of the hole
		{4, 5, 6, 9, 11},  // below the hole
		{4, 6, 7, 8, 10},  // above the hole
		{2, 3, 6, 10, 11}, // right of the hole
	}
	assert.Equal(t, want, memberSets(dec))

	assert.InDelta(t, 12, totalArea(dec), 1e-9, "areas must sum to square minus hole")
	require.NoError(t, dec.Sub.Validate())
}

func TestDecompose_Staircase(t *testing.T) {
	sub := mustSub(t, polygon.Staircase())
	dec, err := bcd.Decompose(sub, 0)
	require.NoError(t, err)

	// Three one-sided splits, one intersection vertex each.
	require.Equal(t, 13, dec.Sub.Len())
	for _, v := range []int{3, 5, 7} {
		assert.Equal(t, bcd.Split, dec.Events[v], "step corner %d", v)
	}

	want := [][]int{
		{0, 1, 2, 3, 10},
		{3, 4, 5, 10, 11},
		{5, 6, 7, 11, 12},
		{7, 8, 9, 12},
	}
	assert.Equal(t, want, memberSets(dec))

	areas := make([]float64, len(dec.Cells))
	for i, c := range dec.Cells {
		areas[i] = cellArea(dec, c)
	}
	assert.InDelta(t, 8, areas[0], 1e-9)
	assert.InDelta(t, 6, areas[1], 1e-9)
	assert.InDelta(t, 4, areas[2], 1e-9)
	assert.InDelta(t, 2, areas[3], 1e-9)

	require.NoError(t, dec.Sub.Validate())
}

func TestDecompose_DoubleNotchedRectangle(t *testing.T) {
	sub := mustSub(t, polygon.DoubleNotchedRectangle())
	dec, err := bcd.Decompose(sub, 0)
	require.NoError(t, err)

	assert.Equal(t, bcd.Merge, dec.Events[2])
	assert.Equal(t, bcd.Split, dec.Events[7])
	require.Len(t, dec.Cells, 5)
	assert.InDelta(t, 28, totalArea(dec), 1e-9)
	require.NoError(t, dec.Sub.Validate())
}

func TestDecompose_RotationEquivalence(t *testing.T) {
	// Sweeping a rotated polygon at angle 0 matches sweeping the
	// original at the rotation angle: the sweep frames coincide.
	phi := math.Pi / 6

	ref, err := bcd.Decompose(mustSub(t, polygon.NotchedRectangle()), phi)
	require.NoError(t, err)

	rotRing := geom.Rotate(polygon.NotchedRectangle(), phi)
	got, err := bcd.Decompose(mustSub(t, rotRing), 0)
	require.NoError(t, err)

	assert.Equal(t, memberSets(ref), memberSets(got))
	for i := range ref.Cells {
		assert.InDelta(t, cellArea(ref, ref.Cells[i]), cellArea(got, got.Cells[i]), 1e-9)
	}
}

func TestDecompose_ParallelMatchesSequential(t *testing.T) {
	outer, hole := polygon.SquareWithHole()
	for name, build := range map[string]func(t *testing.T) *planar.Subdivision{
		"SquareWithHole": func(t *testing.T) *planar.Subdivision { return mustSub(t, outer, hole) },
		"Staircase":      func(t *testing.T) *planar.Subdivision { return mustSub(t, polygon.Staircase()) },
	} {
		t.Run(name, func(t *testing.T) {
			seq, err := bcd.Decompose(build(t), 0)
			require.NoError(t, err)
			par, err := bcd.Decompose(build(t), 0, bcd.WithParallelExtraction())
			require.NoError(t, err)

			assert.Equal(t, memberSets(seq), memberSets(par))
		})
	}
}

func TestDecompose_DegenerateSweep(t *testing.T) {
	// Two coincident vertices cannot be ordered along any sweep.
	sub := planar.NewSubdivision([]r2.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
	})
	for i := 0; i < 4; i++ {
		require.NoError(t, sub.AddEdge(i, (i+1)%4, planar.OuterBoundary))
	}

	_, err := bcd.Decompose(sub, 0)
	assert.ErrorIs(t, err, bcd.ErrDegenerateSweep)
}

func TestDecompose_NoSupportingEdge(t *testing.T) {
	// Step polygon with an extra bottom vertex exactly under the split:
	// the probe finds no strictly-straddling edge on either side.
	ring := []r2.Point{
		{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1},
		{X: 4, Y: 1}, {X: 4, Y: 0}, {X: 2, Y: 0},
	}
	_, err := bcd.Decompose(mustSub(t, ring), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, bcd.ErrNoSupportingEdge)

	var evErr *bcd.EventError
	require.ErrorAs(t, err, &evErr)
	assert.Equal(t, 3, evErr.Vertex)
	assert.Equal(t, bcd.Split, evErr.Kind)
}

func TestDecompose_MalformedBoundary(t *testing.T) {
	// A dangling vertex has no boundary neighbors at all; input
	// validation rejects it before the sweep starts.
	sub := planar.NewSubdivision([]r2.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 5, Y: 5},
	})
	for i := 0; i < 4; i++ {
		require.NoError(t, sub.AddEdge(i, (i+1)%4, planar.OuterBoundary))
	}

	_, err := bcd.Decompose(sub, 0)
	assert.ErrorIs(t, err, planar.ErrBoundaryDegree)
}

func TestEventError_Message(t *testing.T) {
	err := &bcd.EventError{Vertex: 7, Kind: bcd.Split, Err: bcd.ErrNoSupportingEdge}
	assert.Contains(t, err.Error(), "vertex 7")
	assert.Contains(t, err.Error(), "SPLIT")
	assert.True(t, errors.Is(err, bcd.ErrNoSupportingEdge))
}
