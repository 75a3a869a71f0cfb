// Package planar models the mutable planar subdivision the sweep engine
// works on: an append-only point array plus a directed graph of tagged
// boundary and chord edges over dense integer vertex ids.
//
// What:
//
//   - Subdivision owns a []r2.Point (vertex id = array index, ids never
//     shift) and a directed adjacency structure with one EdgeKind tag
//     per edge: OuterBoundary, HoleBoundary, ChordForward, ChordReverse.
//   - Mutation is limited to what the sweep needs: AddPoint, AddEdge,
//     RemoveEdge and SplitEdge (replace (u,v) by (u,p) and (p,v) when a
//     probe hit lands on an edge).
//   - BoundaryNeighbors returns the unique non-chord predecessor and
//     successor of a vertex — the polygon-boundary neighbors every
//     classification is based on.
//   - Validate checks the structural invariants: one non-chord in-edge
//     and one non-chord out-edge per vertex, and every forward chord
//     paired with an antiparallel reverse chord.
//
// Why:
//
//   - The decomposition rewires edges while it runs; a dedicated owner
//     struct keeps that mutation local and lets the caller's input stay
//     untouched (Decompose clones before sweeping).
//
// Complexity:
//
//   - AddPoint/AddEdge/RemoveEdge/HasEdge/Kind: O(1) average.
//   - Successors/Predecessors: O(d log d) (sorted for determinism).
//   - Edges: O(V + E log E). Validate: O(V + E).
//
// Errors:
//
//   - ErrVertexOutOfRange  — vertex id outside [0, Len).
//   - ErrSelfLoop          — edge endpoints coincide.
//   - ErrDuplicateEdge     — directed edge already present.
//   - ErrEdgeNotFound      — operation referenced a missing edge.
//   - ErrBoundaryDegree    — vertex lacks a unique non-chord neighbor.
//   - ErrChordPairing      — chord without its antiparallel partner.
package planar
