package simplify

import (
	"math"

	"github.com/katalvlaran/thetaroute/geom"
	"github.com/katalvlaran/thetaroute/grid"
)

// Simplify reduces path to a polyline in which every consecutive pair
// satisfies LineOfSight on g, via the multi_pass driver of spec §4.4.
//
// Complexity: O(passes * n^2) worst case per pass (the greedy scan is
// O(n) per emitted vertex, O(n) vertices), where n grows by at most a
// constant factor per split_long_segments call.
func Simplify(g *grid.Grid, path []geom.Cell, opts ...Option) ([]geom.Cell, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if len(path) == 1 {
		return []geom.Cell{path[0]}, nil
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	cur := append([]geom.Cell(nil), path...)
	for k := 0; k < cfg.Passes; k++ {
		before := len(cur)

		cur = forwardPass(g, splitLongSegments(cur, cfg.MaxSegmentLen))
		cur = reversePass(g, splitLongSegments(cur, cfg.MaxSegmentLen))

		// Early exit once a full forward+reverse pair makes no further
		// progress (spec §4.4: "implementations may add an early-exit
		// when a pass makes no change").
		if len(cur) == before && k > 0 {
			break
		}
	}
	return cur, nil
}

// forwardPass implements spec §4.4's forward_pass: from index 0, accept
// the farthest visible index, collapsing start/end when the whole
// remainder is visible in one hop.
func forwardPass(g *grid.Grid, path []geom.Cell) []geom.Cell {
	if len(path) <= 1 {
		return path
	}

	out := []geom.Cell{path[0]}
	i := 0
	last := len(path) - 1
	for i < last {
		accepted := -1
		for j := last; j > i; j-- {
			if g.LineOfSight(path[i], path[j]) {
				accepted = j
				break
			}
		}
		if accepted == -1 {
			i++
		} else {
			i = accepted
		}
		out = append(out, path[i])
	}

	if len(out) >= 3 && g.LineOfSight(out[0], out[len(out)-1]) {
		out = []geom.Cell{out[0], out[len(out)-1]}
	}
	return out
}

// reversePass implements spec §4.4's reverse_pass: the mirror of
// forwardPass starting from the last index and scanning upward, then
// flipped back into start-to-goal order.
func reversePass(g *grid.Grid, path []geom.Cell) []geom.Cell {
	if len(path) <= 1 {
		return path
	}

	rev := make([]geom.Cell, len(path))
	for i, c := range path {
		rev[len(path)-1-i] = c
	}

	out := forwardPass(g, rev)

	flipped := make([]geom.Cell, len(out))
	for i, c := range out {
		flipped[len(out)-1-i] = c
	}
	return flipped
}

// splitLongSegments inserts equidistant, integer-rounded waypoints so
// that no consecutive pair in the result is farther apart (Euclidean, in
// cell units) than maxLen. This seeds the next greedy pass with
// intermediate candidates a pure greedy cleanup could not discover
// (spec §4.4).
func splitLongSegments(path []geom.Cell, maxLen int) []geom.Cell {
	if len(path) < 2 {
		return path
	}

	out := make([]geom.Cell, 0, len(path))
	out = append(out, path[0])
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		dist := geom.EuclideanCells(a, b)
		segments := int(math.Ceil(dist / float64(maxLen)))
		if segments < 1 {
			segments = 1
		}
		for s := 1; s < segments; s++ {
			t := float64(s) / float64(segments)
			out = append(out, geom.Cell{
				Row: a.Row + int(math.Round(float64(b.Row-a.Row)*t)),
				Col: a.Col + int(math.Round(float64(b.Col-a.Col)*t)),
			})
		}
		out = append(out, b)
	}
	return dedupConsecutive(out)
}

// dedupConsecutive removes consecutive duplicate cells that can arise
// from integer rounding in splitLongSegments.
func dedupConsecutive(path []geom.Cell) []geom.Cell {
	out := path[:0:0]
	for i, c := range path {
		if i == 0 || c != path[i-1] {
			out = append(out, c)
		}
	}
	return out
}
