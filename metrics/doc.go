// Package metrics derives per-cell and whole-decomposition quality
// measures from a finished decomposition and its Reeb graph. It is a
// read-only consumer: nothing here mutates the decomposition.
//
// What:
//
//   - BBoxes: per-cell bounding boxes in the sweep-rotated frame.
//   - Areas: shoelace area per cell, computed over the cell's boundary
//     loop (not its set storage order, which would be wrong for
//     non-convex cells).
//   - Evaluate: the aggregate quality report — cell-width and aspect
//     statistics, area variance, and the Reeb-graph indices (Estrada,
//     Wiener, degree assortativity, total degree) used to compare
//     decompositions across sweep angles.
//
// Why:
//
//   - Sweep-angle selection ranks candidate decompositions by exactly
//     these scalars; wide, low-variance cells and a path-like Reeb
//     graph make for short boustrophedon routes.
//
// Numeric conventions:
//
//   - AreaVariance is the population variance (matching numpy's
//     default), not the sample variance.
//   - Assortativity is NaN when the graph has no edges or uniform
//     degrees; Wiener is +Inf for a disconnected Reeb graph. Both
//     follow the conventions of the reference graph toolkits.
//
// Errors:
//
//   - ErrNilDecomposition — dec is nil.
//   - ErrNilGraph         — rg is nil.
//   - ErrNoCells          — the decomposition has no cells.
//   - ErrEigenFailed      — the adjacency eigendecomposition failed.
package metrics
