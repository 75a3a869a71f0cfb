// Package polygon turns point rings into planar subdivisions ready for
// decomposition, and supplies a handful of canned shapes used across
// tests and examples.
//
// What:
//
//   - FromRings validates an outer ring plus optional hole rings,
//     normalizes their orientation (outer clockwise, holes
//     counter-clockwise, so the interior always lies to the right of
//     travel) and emits the tagged boundary edges.
//   - Canned constructors (Rectangle, Hexagon, NotchedRectangle,
//     DoubleNotchedRectangle, Staircase, SquareWithHole) return rings
//     whose decompositions are known in closed form.
//
// Why:
//
//   - The sweep engine's event classifier depends on a consistent
//     boundary orientation; centralizing the normalization here keeps
//     the decomposition free of orientation special cases.
//
// Errors:
//
//   - ErrRingTooShort  — a ring has fewer than three vertices.
//   - ErrRepeatedPoint — two consecutive ring vertices coincide.
//   - ErrZeroArea      — a ring encloses no area.
package polygon
