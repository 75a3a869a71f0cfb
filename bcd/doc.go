// Package bcd implements Boustrophedon Cellular Decomposition: a plane
// sweep over a planar subdivision that classifies polygon vertices as
// critical events, cuts chords at the concave ones, and extracts the
// sweep-monotone cells of the augmented subdivision.
//
// Key features:
//   - Decompose(sub, theta, opts...): one call from subdivision to cells
//   - Event classification: OPEN / CLOSE / SPLIT / MERGE / INFLECTION,
//     decided from each vertex's two boundary neighbors in the rotated
//     sweep frame
//   - Chord insertion: vertical probes at split/merge events, nearest
//     strict hits above and below, antiparallel forward/reverse chords
//   - Cell extraction: most-clockwise-turn loop tracing from every
//     critical vertex, deduplicated by vertex-set equality
//
// The sweep frame orders vertices by rotated x with y as the
// lexicographic tie-breaker — the symbolic perturbation that lets
// axis-aligned polygons (vertical edges, equal-x corners) decompose at
// θ = 0. Only vertices whose rotated coordinates coincide on both axes
// are rejected as degenerate.
//
// Complexity:
//
//   - Time:   O(V·E) worst case (each split/merge probes all edges),
//     plus O(C·L) for extraction (C critical vertices, L loop length).
//   - Memory: O(V + chords); the input subdivision is cloned once.
//
// Options:
//
//   - WithEpsilon(eps)            numeric tolerance for sweep comparisons.
//   - WithMaxPathSteps(n)         safety bound for loop tracing.
//   - WithParallelExtraction()    trace cells concurrently per critical
//     vertex; the traversal is read-only, only the dedup insert is
//     serialized, and the resulting cell order is unchanged.
//
// Errors:
//
//   - ErrNilSubdivision    if sub is nil.
//   - ErrDegenerateSweep   two vertices coincide in the rotated frame;
//     perturb theta and retry.
//   - ErrNoSupportingEdge  a split/merge probe found no edge on either
//     side (open or misclassified polygon).
//   - ErrUnclosedPath      loop tracing dead-ended or exceeded the step
//     bound.
//   - ErrMalformedBoundary a vertex met during the sweep lacks unique
//     boundary neighbors.
//
// The input subdivision is validated before the sweep; a failure there
// (for example a vertex without unique boundary neighbors) is returned
// as the wrapped planar error (planar.ErrBoundaryDegree,
// planar.ErrChordPairing), not as an EventError.
//
// Every sweep error is wrapped in an EventError carrying the offending
// vertex id; the event kind is set once the vertex has been classified
// and is zero for ErrDegenerateSweep and ErrMalformedBoundary.
package bcd
