package grid

import "github.com/katalvlaran/thetaroute/geom"

// LineOfSight reports whether every cell on a symmetric supercover
// traversal from a to b is free and in bounds. Inputs outside the grid
// simply return false; there is no error return because bad input is
// defined behavior here, not a fault.
//
// The traversal is Bresenham-like but with an explicit tie-break on
// exact diagonal crossings (error == 0): rather than picking one axis
// arbitrarily, it advances both axes in a single step. This is what
// makes the predicate exactly symmetric — LineOfSight(a,b) ==
// LineOfSight(b,a) — which the planner's Theta* reparenting step and
// the simplifier's alternating forward/reverse passes both rely on to
// see the same visibility graph from either direction.
//
// Complexity: O(dx+dy) where dx,dy are the cell-axis deltas.
func (g *Grid) LineOfSight(a, b geom.Cell) bool {
	return LineOfSight(g, a, b)
}

// LineOfSight is the free-function form, taking an explicit passability
// predicate's owner. It exists so LineOfSight can be unit tested against
// a Grid without requiring a method value, and so callers outside this
// package (e.g. simplify, for golden tests) can exercise the exact same
// traversal.
func LineOfSight(g *Grid, a, b geom.Cell) bool {
	x1, y1 := a.Row, a.Col
	x2, y2 := b.Row, b.Col

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	stepX := sign(x2 - x1)
	stepY := sign(y2 - y1)

	// n is the number of cells visited, computed from the pre-doubling
	// deltas per spec: n = 1 + dx + dy.
	n := 1 + dx + dy

	errTerm := dx - dy
	dx *= 2
	dy *= 2

	x, y := x1, y1
	for ; n > 0; n-- {
		if !g.Passable(x, y) {
			return false
		}

		switch {
		case errTerm > 0:
			x += stepX
			errTerm -= dy
		case errTerm < 0:
			y += stepY
			errTerm += dx
		default:
			// Exact diagonal tie: advance both axes in one step, a
			// single corner crossing. This passes through the corner
			// regardless of which of the two adjacent cells (if either)
			// is blocked — per spec §9 Open Question (1), resolved to
			// match the reference behavior.
			x += stepX
			y += stepY
			errTerm += dx - dy
			n--
		}
	}

	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
