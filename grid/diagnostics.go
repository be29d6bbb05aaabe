package grid

import "github.com/katalvlaran/thetaroute/geom"

// Diagnostics reports structural properties of a Grid independent of any
// particular start/goal pair: the number of connected free-space
// components and, for a given start/goal, whether they fall in the same
// component. route uses this to distinguish "structurally disconnected"
// from an ordinary search-budget NoPath, and to fail fast before
// spending a search budget on an unreachable goal.
type Diagnostics struct {
	// ComponentCount is the number of 4-connected free-space components.
	ComponentCount int
	// componentOf maps a cell's row-major index to its component id.
	componentOf []int
}

// Diagnose computes connectivity diagnostics for g.
// Adapted from lvlath/gridgraph.ConnectedComponents (BFS flood-fill over
// same-class neighbors, _examples/katalvlaran-lvlath/gridgraph/components.go),
// specialized to a binary free/blocked grid instead of an arbitrary
// integer-valued land/water grid.
//
// Complexity: O(H*W) time and memory.
func Diagnose(g *Grid) *Diagnostics {
	total := g.height * g.width
	componentOf := make([]int, total)
	for i := range componentOf {
		componentOf[i] = -1
	}

	next := 0
	queue := make([]geom.Cell, 0, total)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if !g.Passable(r, c) {
				continue
			}
			idx := r*g.width + c
			if componentOf[idx] >= 0 {
				continue
			}

			queue = queue[:0]
			queue = append(queue, geom.Cell{Row: r, Col: c})
			componentOf[idx] = next

			for qi := 0; qi < len(queue); qi++ {
				cur := queue[qi]
				for _, d := range neighborOffsets {
					nr, nc := cur.Row+d[0], cur.Col+d[1]
					if !g.Passable(nr, nc) {
						continue
					}
					nIdx := nr*g.width + nc
					if componentOf[nIdx] >= 0 {
						continue
					}
					componentOf[nIdx] = next
					queue = append(queue, geom.Cell{Row: nr, Col: nc})
				}
			}
			next++
		}
	}

	return &Diagnostics{ComponentCount: next, componentOf: componentOf}
}

// SameComponent reports whether a and b are free cells in the same
// 4-connected component. Returns false if either cell is blocked or out
// of bounds (componentOf holds -1 for those indices, which never equals
// another -1 comparison because we short-circuit on validity below).
func (d *Diagnostics) SameComponent(g *Grid, a, b geom.Cell) bool {
	if !g.PassableCell(a) || !g.PassableCell(b) {
		return false
	}
	ia := a.Row*g.width + a.Col
	ib := b.Row*g.width + b.Col
	return d.componentOf[ia] == d.componentOf[ib]
}
