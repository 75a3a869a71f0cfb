// Package bcd defines event kinds, decomposition options, result types
// and sentinel errors for the sweep engine.
package bcd

import (
	"errors"
	"fmt"
)

// Sentinel errors for decomposition.
var (
	// ErrNilSubdivision is returned when a nil subdivision is passed to
	// Decompose.
	ErrNilSubdivision = errors.New("bcd: subdivision is nil")

	// ErrDegenerateSweep indicates two vertices coincide in the rotated
	// sweep frame, making classification ambiguous. Perturb the sweep
	// angle and retry.
	ErrDegenerateSweep = errors.New("bcd: degenerate sweep (coincident rotated vertices); perturb theta")

	// ErrNoSupportingEdge indicates a split/merge probe found no polygon
	// edge above or below the event — the polygon is open or the event
	// was misclassified.
	ErrNoSupportingEdge = errors.New("bcd: no supporting edge for chord")

	// ErrUnclosedPath indicates cell extraction dead-ended or exceeded
	// its safety bound without closing a loop.
	ErrUnclosedPath = errors.New("bcd: cell path not closed")

	// ErrMalformedBoundary indicates that the classifier met a vertex
	// without unique boundary neighbors during the sweep. Input that
	// already fails this check is rejected before the sweep with the
	// wrapped planar.ErrBoundaryDegree instead.
	ErrMalformedBoundary = errors.New("bcd: malformed polygon boundary")
)

// EventKind labels a vertex's role in the sweep.
type EventKind uint8

const (
	// Open starts a new cell at a convex vertex whose boundary neighbors
	// both lie ahead of the sweep.
	Open EventKind = 1 + iota

	// Close terminates a cell at a convex vertex whose boundary
	// neighbors both lie behind the sweep.
	Close

	// Split is a concave vertex whose boundary neighbors both lie ahead
	// of the sweep: the sweep cross-section splits in two and a chord
	// pair is inserted.
	Split

	// Merge is a concave vertex whose boundary neighbors both lie behind
	// the sweep: two cross-section intervals join and a chord pair is
	// inserted.
	Merge

	// Inflection is a pass-through vertex requiring no action.
	Inflection

	// Intersect labels the synthetic vertices inserted where a chord
	// meets the polygon boundary.
	Intersect
)

// IsCritical reports whether the kind drives cell extraction.
func (k EventKind) IsCritical() bool {
	switch k {
	case Open, Close, Split, Merge:
		return true
	default:
		return false
	}
}

// String returns the conventional upper-case event name.
func (k EventKind) String() string {
	switch k {
	case Open:
		return "OPEN"
	case Close:
		return "CLOSE"
	case Split:
		return "SPLIT"
	case Merge:
		return "MERGE"
	case Inflection:
		return "INFLECTION"
	case Intersect:
		return "INTERSECT"
	default:
		return "INVALID"
	}
}

// EventError decorates a sweep error with the offending vertex and its
// event kind (zero when classification itself failed).
type EventError struct {
	// Vertex is the id of the vertex the sweep was processing.
	Vertex int

	// Kind is the event kind at that vertex, when known.
	Kind EventKind

	// Err is the underlying sentinel.
	Err error
}

// Error implements the error interface.
func (e *EventError) Error() string {
	if e.Kind == 0 {
		return fmt.Sprintf("bcd: vertex %d: %v", e.Vertex, e.Err)
	}

	return fmt.Sprintf("bcd: vertex %d (%s): %v", e.Vertex, e.Kind, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *EventError) Unwrap() error {
	return e.Err
}

// CriticalEvent records one critical vertex in sweep order.
type CriticalEvent struct {
	// Vertex is the critical vertex id.
	Vertex int

	// Kind is Open, Close, Split or Merge.
	Kind EventKind
}

// Option configures a decomposition run. Use with Decompose.
type Option func(*Options)

// Options holds the tunable parameters of a decomposition.
type Options struct {
	// Epsilon is the tolerance for sweep-frame coordinate comparisons
	// and turn-score ties. Defaults to 1e-9.
	Epsilon float64

	// MaxPathSteps bounds a single cell-extraction loop; exceeding it
	// reports ErrUnclosedPath. Defaults to 100000.
	MaxPathSteps int

	// Parallel enables concurrent cell extraction across critical
	// vertices. The augmented subdivision is read-only during
	// extraction; deduplication stays serialized and the cell order is
	// identical to the sequential one.
	Parallel bool
}

// DefaultOptions returns the standard decomposition parameters:
// Epsilon 1e-9, MaxPathSteps 100000, sequential extraction.
func DefaultOptions() Options {
	return Options{
		Epsilon:      1e-9,
		MaxPathSteps: 100000,
		Parallel:     false,
	}
}

// WithEpsilon sets the comparison tolerance. Non-positive values are
// ignored.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithMaxPathSteps sets the loop-tracing safety bound. Values below one
// are ignored.
func WithMaxPathSteps(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxPathSteps = n
		}
	}
}

// WithParallelExtraction enables concurrent cell extraction.
func WithParallelExtraction() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}
