// Package geom holds the small set of planar primitives the sweep engine
// is built from: frame rotation, cross products, clockwise turn scoring
// and the vertical-probe intersection.
//
// What:
//
//   - Rotate / RotatePoint: counter-clockwise rotation about the origin,
//     always into a fresh slice (the canonical points are never mutated).
//   - Cross2 / Above: 2D scalar cross product and the "interior above"
//     test used by the event classifier.
//   - Turn: normalized cross and dot of the incoming and outgoing
//     directions at a vertex; the more negative the cross, the sharper
//     the clockwise turn.
//   - IntersectVertical: where a vertical line meets a segment, strictly
//     inside the segment's x-range.
//   - SignedArea: shoelace area of a ring, counter-clockwise positive.
//
// Why:
//
//   - Every comparison the decomposition makes reduces to one of these
//     five operations; keeping them together makes the numeric contract
//     (strict x inequalities, float64 throughout) auditable in one place.
//
// Complexity: all operations are O(1) except Rotate and SignedArea,
// which are O(n) over their input slice.
package geom
