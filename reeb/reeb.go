package reeb

import (
	"sort"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/boustro/bcd"
)

// Graph is the undirected cell-adjacency graph of a decomposition. It
// embeds a gonum simple.UndirectedGraph whose nodes are *reeb.Node, so
// any gonum graph algorithm can consume it unchanged.
type Graph struct {
	*simple.UndirectedGraph

	nodes []*Node // by cell index
}

// Build constructs the Reeb graph of dec: one node per cell, an edge
// between every pair of cells adjacent under the configured criterion.
// Isolated cells still get a node, so a single-cell decomposition
// yields one node and no edges.
// Complexity: O(C² · L) for C cells of boundary length L.
func Build(dec *bcd.Decomposition, opts ...Option) (*Graph, error) {
	// 1. Validate input
	if dec == nil {
		return nil, ErrNilDecomposition
	}
	if len(dec.Cells) == 0 {
		return nil, ErrNoCells
	}
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 2. One annotated node per cell
	g := &Graph{
		UndirectedGraph: simple.NewUndirectedGraph(),
		nodes:           make([]*Node, len(dec.Cells)),
	}
	points := dec.Sub.Points()
	for i, c := range dec.Cells {
		n := &Node{
			id:       int64(i),
			Cell:     c,
			Centroid: centroid(points, c),
			Name:     Label(i + 1),
		}
		g.nodes[i] = n
		g.AddNode(n)
	}

	// 3. Adjacency edges, each physical adjacency stored once
	for i := 0; i < len(dec.Cells); i++ {
		for j := i + 1; j < len(dec.Cells); j++ {
			if adjacent(dec.Cells[i], dec.Cells[j], o.Criterion) {
				g.SetEdge(g.NewEdge(g.nodes[i], g.nodes[j]))
			}
		}
	}

	return g, nil
}

// CellNode returns the annotated node of cell index i, or nil when out
// of range.
func (g *Graph) CellNode(i int) *Node {
	if i < 0 || i >= len(g.nodes) {
		return nil
	}

	return g.nodes[i]
}

// Len returns the number of cells (nodes).
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Degree returns the number of cells adjacent to cell index i.
func (g *Graph) Degree(i int) int {
	if i < 0 || i >= len(g.nodes) {
		return 0
	}

	return g.From(int64(i)).Len()
}

// Components returns the connected components as sorted slices of cell
// indices, ordered by their smallest member. A simply connected polygon
// produces exactly one component.
func (g *Graph) Components() [][]int {
	raw := topo.ConnectedComponents(g)
	out := make([][]int, 0, len(raw))
	for _, comp := range raw {
		ids := make([]int, 0, len(comp))
		for _, n := range comp {
			ids = append(ids, int(n.ID()))
		}
		sort.Ints(ids)
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// adjacent applies the configured adjacency criterion.
func adjacent(a, b bcd.Cell, c Criterion) bool {
	if c == SharedEdge {
		return a.SharesEdge(b)
	}

	return a.SharedVertices(b) >= 2
}

// centroid returns the arithmetic mean of the cell's boundary vertices.
func centroid(points []r2.Point, c bcd.Cell) r2.Point {
	var sum r2.Point
	for _, id := range c.Loop {
		sum = sum.Add(points[id])
	}

	return sum.Mul(1 / float64(len(c.Loop)))
}

// Label encodes a 1-based index in base-26 letters: 1→A, 26→Z, 27→AA.
func Label(x int) string {
	var buf []byte
	for x > 0 {
		x--
		buf = append([]byte{byte('A' + x%26)}, buf...)
		x /= 26
	}

	return string(buf)
}
