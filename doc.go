// Package boustro decomposes simple planar polygons (with holes) into
// sweep-monotone cells for coverage path planning.
//
// 🚀 What is boustro?
//
//	A pure-Go implementation of Boustrophedon Cellular Decomposition:
//
//	  • Plane sweep: classify polygon vertices as OPEN / CLOSE / SPLIT /
//	    MERGE / INFLECTION events and cut chords at the concave ones
//	  • Cells: extract the monotone faces of the augmented subdivision
//	  • Reeb graph: one node per cell, edges between adjacent cells
//	  • Metrics: bounding boxes, areas and graph-quality indices over
//	    the finished decomposition
//
// ✨ Why boustro?
//
//   - Deterministic          — stable vertex ids, stable cell order
//   - Double precision       — float64 geometry end to end
//   - Inspectable            — every intermediate event is reported
//   - Pure Go                — no cgo
//
// Everything is organized under six subpackages:
//
//	geom/    — rotation, cross products, turn scoring, probe intersection
//	planar/  — the mutable planar subdivision (points + tagged edges)
//	polygon/ — ring validation and canned test polygons
//	bcd/     — the sweep engine: classifier, chord insertion, cell tracer
//	reeb/    — cell-adjacency graph with centroids and labels
//	metrics/ — per-cell and whole-decomposition quality measures
//
// Quick ASCII example:
//
//	    ┌───────┬───────┐
//	    │   A   │   B   │        two cells, one shared chord,
//	    └───────┴───────┘        Reeb graph A──B
//
// Start with polygon.FromRings to build a subdivision, bcd.Decompose to
// cut it into cells, and reeb.Build for the adjacency graph.
package boustro
