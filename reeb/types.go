// Package reeb defines the node type, adjacency criteria, options and
// sentinel errors for Reeb-graph construction.
package reeb

import (
	"errors"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/boustro/bcd"
)

// Sentinel errors for Reeb-graph construction.
var (
	// ErrNilDecomposition is returned when Build receives a nil
	// decomposition.
	ErrNilDecomposition = errors.New("reeb: decomposition is nil")

	// ErrNoCells is returned when the decomposition holds no cells.
	ErrNoCells = errors.New("reeb: decomposition has no cells")
)

// Criterion selects how cell adjacency is decided.
type Criterion int

const (
	// SharedVertices connects two cells when they have at least two
	// boundary vertices in common. This is the classic criterion; it can
	// spuriously connect cells that merely touch at two isolated points.
	SharedVertices Criterion = iota

	// SharedEdge connects two cells only when some vertex pair is
	// consecutive on both boundary loops — they traverse a common
	// segment.
	SharedEdge
)

// Node is one Reeb-graph node: a cell plus its planner-facing
// annotations. Node implements gonum's graph.Node.
type Node struct {
	id int64

	// Cell is the decomposition cell this node contracts.
	Cell bcd.Cell

	// Centroid is the arithmetic mean of the cell's boundary vertices in
	// the unrotated frame. It is a vertex centroid, not the polygon's
	// geometric centroid; downstream consumers depend on exactly this.
	Centroid r2.Point

	// Name is the 1-based base-26 label of the cell: A…Z, AA, AB, …
	Name string
}

// ID implements graph.Node; it equals the cell's index in the
// decomposition.
func (n *Node) ID() int64 {
	return n.id
}

// Option configures Reeb-graph construction. Use with Build.
type Option func(*Options)

// Options holds the tunable parameters of Build.
type Options struct {
	// Criterion decides cell adjacency. Defaults to SharedVertices.
	Criterion Criterion
}

// DefaultOptions returns the standard construction parameters.
func DefaultOptions() Options {
	return Options{Criterion: SharedVertices}
}

// WithCriterion selects the adjacency criterion.
func WithCriterion(c Criterion) Option {
	return func(o *Options) {
		o.Criterion = c
	}
}
