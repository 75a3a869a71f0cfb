package bcd

import (
	"math"
	"sync"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/boustro/geom"
	"github.com/katalvlaran/boustro/planar"
)

// tracer walks cell boundaries on the frozen augmented subdivision.
// All state it touches is read-only, so one tracer may be shared by
// concurrent extractions.
type tracer struct {
	sub      *planar.Subdivision
	rot      []r2.Point
	maxSteps int
	eps      float64
}

// trace follows the most-clockwise-turn rule from the directed edge
// v→start until the walk re-enters start, and returns the loop in
// traversal order (ending with start). A dead end or exceeding the
// step bound reports ErrUnclosedPath.
func (t *tracer) trace(v, start int) ([]int, error) {
	prev, node := v, start
	path := make([]int, 0, 8)
	for steps := 0; ; steps++ {
		if steps >= t.maxSteps {
			return nil, ErrUnclosedPath
		}
		next, ok := t.bestTurn(prev, node)
		if !ok {
			return nil, ErrUnclosedPath
		}
		path = append(path, next)
		prev, node = node, next
		if node == start {
			return path, nil
		}
	}
}

// bestTurn picks the successor of node that makes the sharpest
// clockwise turn relative to the arrival direction prev→node. Ties on
// the normalized cross product fall back to the dot product (a reversal
// beats going straight), then to the smallest vertex id (successors are
// scanned in ascending order). The immediate predecessor is excluded.
func (t *tracer) bestTurn(prev, node int) (int, bool) {
	var (
		best         int
		bestC, bestD float64
		found        bool
	)
	for _, c := range t.sub.Successors(node) {
		if c == prev {
			continue
		}
		cross, dot := geom.Turn(t.rot[prev], t.rot[node], t.rot[c])
		switch {
		case !found:
			best, bestC, bestD, found = c, cross, dot, true
		case cross < bestC-t.eps:
			best, bestC, bestD = c, cross, dot
		case math.Abs(cross-bestC) <= t.eps && dot < bestD-t.eps:
			best, bestC, bestD = c, cross, dot
		}
	}

	return best, found
}

// cellsFrom traces one loop per outgoing neighbor of the critical
// vertex and returns them in successor order. The same physical cell is
// reachable from several starts; deduplication happens at the merge.
func (t *tracer) cellsFrom(ev CriticalEvent) ([]Cell, error) {
	var cells []Cell
	for _, start := range t.sub.Successors(ev.Vertex) {
		loop, err := t.trace(ev.Vertex, start)
		if err != nil {
			return nil, &EventError{Vertex: ev.Vertex, Kind: ev.Kind, Err: err}
		}
		cells = append(cells, newCell(loop))
	}

	return cells, nil
}

// extractCells traces loops from every critical vertex and merges them
// into a deduplicated cell list. With opts.Parallel the per-vertex
// traces run concurrently (the subdivision is read-only here); the
// merge is serialized in sweep order either way, so the resulting list
// is identical to the sequential one.
func extractCells(sub *planar.Subdivision, rot []r2.Point, crits []CriticalEvent, opts Options) ([]Cell, error) {
	t := &tracer{sub: sub, rot: rot, maxSteps: opts.MaxPathSteps, eps: opts.Epsilon}

	traced := make([][]Cell, len(crits))
	errs := make([]error, len(crits))
	if opts.Parallel {
		var wg sync.WaitGroup
		wg.Add(len(crits))
		for i, ev := range crits {
			go func(i int, ev CriticalEvent) {
				defer wg.Done()
				traced[i], errs[i] = t.cellsFrom(ev)
			}(i, ev)
		}
		wg.Wait()
	} else {
		for i, ev := range crits {
			traced[i], errs[i] = t.cellsFrom(ev)
		}
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	// Dedup insert in sweep order: vertex-set equality, first trace wins.
	var cells []Cell
	seen := make(map[string]struct{})
	for _, group := range traced {
		for _, c := range group {
			k := c.key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			cells = append(cells, c)
		}
	}

	return cells, nil
}
