package reeb_test

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boustro/bcd"
	"github.com/katalvlaran/boustro/polygon"
	"github.com/katalvlaran/boustro/reeb"
)

func decompose(t *testing.T, outer []r2.Point, holes ...[]r2.Point) *bcd.Decomposition {
	t.Helper()
	sub, err := polygon.FromRings(outer, holes...)
	require.NoError(t, err)
	dec, err := bcd.Decompose(sub, 0)
	require.NoError(t, err)

	return dec
}

func TestBuild_Errors(t *testing.T) {
	_, err := reeb.Build(nil)
	assert.ErrorIs(t, err, reeb.ErrNilDecomposition)

	_, err = reeb.Build(&bcd.Decomposition{})
	assert.ErrorIs(t, err, reeb.ErrNoCells)
}

func TestBuild_SingleCell(t *testing.T) {
	dec := decompose(t, polygon.Rectangle(4, 2))
	g, err := reeb.Build(dec)
	require.NoError(t, err)

	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.Edges().Len(), "an isolated cell still gets its node")

	n := g.CellNode(0)
	require.NotNil(t, n)
	assert.Equal(t, "A", n.Name)
	assert.Equal(t, int64(0), n.ID())
	assert.InDelta(t, 2, n.Centroid.X, 1e-9)
	assert.InDelta(t, 1, n.Centroid.Y, 1e-9)

	assert.Equal(t, [][]int{{0}}, g.Components())
	assert.Nil(t, g.CellNode(5))
}

func TestBuild_NotchedRectangle_Path(t *testing.T) {
	// Cells: 0 below the notch, 1 above it, 2 right of the merge.
	dec := decompose(t, polygon.NotchedRectangle())
	g, err := reeb.Build(dec)
	require.NoError(t, err)

	require.Equal(t, 3, g.Len())
	assert.Equal(t, 2, g.Edges().Len())

	// The two left cells touch only at the merge vertex: no edge.
	assert.True(t, g.HasEdgeBetween(0, 2))
	assert.True(t, g.HasEdgeBetween(1, 2))
	assert.False(t, g.HasEdgeBetween(0, 1))

	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 1, g.Degree(1))
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, [][]int{{0, 1, 2}}, g.Components())
}

func TestBuild_SquareWithHole_Criteria(t *testing.T) {
	outer, hole := polygon.SquareWithHole()
	dec := decompose(t, outer, hole)
	require.Len(t, dec.Cells, 4)

	// Classic criterion: the cells above and below the hole share the
	// split and merge vertices — two isolated points — and get a
	// spurious edge.
	classic, err := reeb.Build(dec)
	require.NoError(t, err)
	assert.Equal(t, 5, classic.Edges().Len())
	assert.True(t, classic.HasEdgeBetween(1, 2), "above/below connected by isolated touch points")

	// Strict criterion: only chord-sharing neighbors remain; the ring
	// around the hole survives.
	strict, err := reeb.Build(dec, reeb.WithCriterion(reeb.SharedEdge))
	require.NoError(t, err)
	assert.Equal(t, 4, strict.Edges().Len())
	assert.False(t, strict.HasEdgeBetween(1, 2))
	assert.True(t, strict.HasEdgeBetween(0, 1))
	assert.True(t, strict.HasEdgeBetween(0, 2))
	assert.True(t, strict.HasEdgeBetween(1, 3))
	assert.True(t, strict.HasEdgeBetween(2, 3))

	assert.Equal(t, [][]int{{0, 1, 2, 3}}, strict.Components())
}

func TestBuild_Staircase_Chain(t *testing.T) {
	dec := decompose(t, polygon.Staircase())
	g, err := reeb.Build(dec, reeb.WithCriterion(reeb.SharedEdge))
	require.NoError(t, err)

	require.Equal(t, 4, g.Len())
	assert.Equal(t, 3, g.Edges().Len())
	for i := 0; i < 3; i++ {
		assert.True(t, g.HasEdgeBetween(int64(i), int64(i+1)), "cells %d and %d", i, i+1)
	}
	assert.False(t, g.HasEdgeBetween(0, 2))
	assert.False(t, g.HasEdgeBetween(0, 3))
	assert.False(t, g.HasEdgeBetween(1, 3))

	names := []string{"A", "B", "C", "D"}
	for i, want := range names {
		assert.Equal(t, want, g.CellNode(i).Name)
	}
}

func TestLabel(t *testing.T) {
	cases := map[int]string{
		1:   "A",
		2:   "B",
		26:  "Z",
		27:  "AA",
		28:  "AB",
		52:  "AZ",
		53:  "BA",
		703: "AAA",
	}
	for in, want := range cases {
		assert.Equal(t, want, reeb.Label(in), "Label(%d)", in)
	}
}
