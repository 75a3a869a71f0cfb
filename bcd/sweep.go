package bcd

import (
	"fmt"
	"sort"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/boustro/geom"
	"github.com/katalvlaran/boustro/planar"
)

// Decomposition is the frozen result of one sweep: the augmented
// subdivision (input points plus inserted intersection vertices, chords
// wired in), the extracted cells, and the per-vertex event report.
type Decomposition struct {
	// Sub is the augmented subdivision. It is a clone: the caller's
	// input is never mutated.
	Sub *planar.Subdivision

	// Cells lists the extracted cells in discovery order.
	Cells []Cell

	// Events maps every vertex id to its classified kind; inserted
	// vertices report Intersect.
	Events map[int]EventKind

	// Criticals lists the Open/Close/Split/Merge events in sweep order.
	Criticals []CriticalEvent

	// Theta is the sweep angle the decomposition ran under.
	Theta float64
}

// sweeper carries the mutable state of one decomposition run.
type sweeper struct {
	sub   *planar.Subdivision
	rot   []r2.Point // sweep-frame coordinates, indexed by vertex id
	theta float64
}

// Decompose partitions the polygon held by sub into sweep-monotone
// cells under sweep angle theta (radians, counter-clockwise frame
// rotation). The input subdivision is validated, cloned and left
// untouched; the returned Decomposition owns the augmented clone.
//
// The run is a single-threaded batch: sort vertices along the sweep,
// classify each one, cut chords at split/merge events, then trace cell
// loops from every critical vertex (optionally in parallel).
func Decompose(sub *planar.Subdivision, theta float64, opts ...Option) (*Decomposition, error) {
	// 1. Validate input
	if sub == nil {
		return nil, ErrNilSubdivision
	}
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if err := sub.Validate(); err != nil {
		return nil, fmt.Errorf("bcd: input subdivision: %w", err)
	}

	// 2. Clone and enter the sweep frame; canonical points stay intact
	s := &sweeper{
		sub:   sub.Clone(),
		theta: theta,
	}
	s.rot = geom.Rotate(s.sub.Points(), theta)

	// 3. Sweep order: rotated x ascending, y as tie-breaker
	n := s.sub.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return cmpSweep(s.rot[order[i]], s.rot[order[j]], o.Epsilon) < 0
	})
	for i := 1; i < n; i++ {
		if cmpSweep(s.rot[order[i-1]], s.rot[order[i]], o.Epsilon) == 0 {
			return nil, &EventError{Vertex: order[i], Err: ErrDegenerateSweep}
		}
	}

	// 4. Classify every original vertex; augment at split/merge
	events := make(map[int]EventKind, n)
	var crits []CriticalEvent
	for _, v := range order {
		kind, err := classify(s.sub, s.rot, v, o.Epsilon)
		if err != nil {
			return nil, err
		}
		events[v] = kind
		if kind == Split || kind == Merge {
			added, err := s.insertChords(v, kind)
			if err != nil {
				return nil, err
			}
			for _, p := range added {
				events[p] = Intersect
			}
		}
		if kind.IsCritical() {
			crits = append(crits, CriticalEvent{Vertex: v, Kind: kind})
		}
	}

	// 5. Extract cells from the frozen augmented subdivision
	cells, err := extractCells(s.sub, s.rot, crits, o)
	if err != nil {
		return nil, err
	}

	return &Decomposition{
		Sub:       s.sub,
		Cells:     cells,
		Events:    events,
		Criticals: crits,
		Theta:     theta,
	}, nil
}

// probeHit records one crossing of the vertical probe with a boundary
// edge in the sweep frame.
type probeHit struct {
	at       r2.Point // intersection point, sweep frame
	from, to int      // the edge the probe crossed
	dist     float64  // |hit.Y − event.Y|
}

// probe shoots a vertical line through v and returns the nearest
// boundary-edge crossings strictly above and strictly below the vertex
// (nil when a side has none). Chord edges are vertical in the sweep
// frame and can never straddle the probe, so only boundary edges are
// tested. Edges are scanned in deterministic order; distance ties keep
// the first edge seen.
func (s *sweeper) probe(v int) (above, below *probeHit) {
	x, y := s.rot[v].X, s.rot[v].Y
	for _, e := range s.sub.Edges() {
		if e.Kind.IsChord() {
			continue
		}
		p, ok := geom.IntersectVertical(x, s.rot[e.From], s.rot[e.To])
		if !ok {
			continue
		}
		h := probeHit{at: p, from: e.From, to: e.To, dist: p.Y - y}
		switch {
		case h.dist > 0:
			if above == nil || h.dist < above.dist {
				hc := h
				above = &hc
			}
		case h.dist < 0:
			h.dist = -h.dist
			if below == nil || h.dist < below.dist {
				hc := h
				below = &hc
			}
		}
	}

	return above, below
}

// insertChords augments the subdivision at split/merge vertex v: each
// probe hit becomes a new Intersect vertex splitting its edge, wired to
// v by an antiparallel chord pair. The forward (opening) direction is:
//
//	Split, above hit:  hit → v      Split, below hit:  v → hit
//	Merge, both hits:  hit → v
//
// so that loop tracing crosses every chord exactly once per adjacent
// cell. Returns the ids of the inserted vertices, or
// ErrNoSupportingEdge when neither side has a hit.
func (s *sweeper) insertChords(v int, kind EventKind) ([]int, error) {
	above, below := s.probe(v)
	if above == nil && below == nil {
		return nil, &EventError{Vertex: v, Kind: kind, Err: ErrNoSupportingEdge}
	}

	var added []int
	if above != nil {
		p, err := s.splitAt(above)
		if err != nil {
			return nil, &EventError{Vertex: v, Kind: kind, Err: err}
		}
		if err = s.chordPair(p, v); err != nil {
			return nil, &EventError{Vertex: v, Kind: kind, Err: err}
		}
		added = append(added, p)
	}
	if below != nil {
		p, err := s.splitAt(below)
		if err != nil {
			return nil, &EventError{Vertex: v, Kind: kind, Err: err}
		}
		// A split opens downward out of v; a merge opens into v.
		from, to := v, p
		if kind == Merge {
			from, to = p, v
		}
		if err = s.chordPair(from, to); err != nil {
			return nil, &EventError{Vertex: v, Kind: kind, Err: err}
		}
		added = append(added, p)
	}

	return added, nil
}

// splitAt inserts the probe hit as a new vertex on its edge, keeping
// the sweep-frame array aligned with the point array.
func (s *sweeper) splitAt(h *probeHit) (int, error) {
	canonical := geom.RotatePoint(h.at, -s.theta)
	pid, err := s.sub.SplitEdge(h.from, h.to, canonical)
	if err != nil {
		return 0, err
	}
	s.rot = append(s.rot, h.at)

	return pid, nil
}

// chordPair wires the antiparallel chord: from→to forward, to→from
// reverse.
func (s *sweeper) chordPair(from, to int) error {
	if err := s.sub.AddEdge(from, to, planar.ChordForward); err != nil {
		return err
	}

	return s.sub.AddEdge(to, from, planar.ChordReverse)
}
