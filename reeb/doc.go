// Package reeb contracts a decomposition's cells to the nodes of an
// undirected adjacency graph — the Reeb graph coverage planners walk to
// order cells into a sweep route.
//
// What:
//
//   - Build(dec, opts...) creates one node per cell (isolated cells
//     included) and connects cells that are adjacent under the chosen
//     criterion. The graph is a gonum simple.UndirectedGraph, so the
//     whole gonum graph toolbox applies to it directly.
//   - Each node carries the cell, its vertex-mean centroid in the
//     unrotated frame, and a base-26 alphabetic label (A…Z, AA…).
//   - Components() reports the connected components; the Reeb graph of
//     a simply connected polygon has exactly one.
//
// Why:
//
//   - Cell adjacency, not cell geometry, is what route planning needs;
//     contracting early keeps planners independent of the sweep.
//
// Options:
//
//   - WithCriterion(SharedVertices) — cells adjacent when they share at
//     least two boundary vertices (the classic rule; may connect cells
//     that only touch at two isolated points).
//   - WithCriterion(SharedEdge)     — cells adjacent only when they
//     traverse a common boundary segment (strict).
//
// Errors:
//
//   - ErrNilDecomposition — dec is nil.
//   - ErrNoCells          — the decomposition has no cells.
package reeb
