// Package grid provides the occupancy Grid type and the LineOfSight
// predicate that the planner and simplifier depend on.
//
// A Grid is an immutable H×W bitmap of free/blocked cells, addressed by
// (row, column). It is built once per plan request and never mutated
// (adapted from lvlath/gridgraph.GridGraph, which treats a 2D integer
// grid as a graph the same way — deep-copied on construction, neighbor
// offsets precomputed, bounds-checked access). Unlike gridgraph, Grid is
// 4-connected only: the base search in this module never considers
// diagonal grid edges (8-connectivity is an explicit non-goal; any-angle
// movement is instead supplied by LineOfSight in the planner).
//
// LineOfSight implements the symmetric supercover traversal: a line
// between two cells is visible iff every cell the traversal visits is
// free and in bounds. The traversal is built to be exactly symmetric
// (LineOfSight(a,b) == LineOfSight(b,a)), including at exact diagonal
// corner crossings, which the planner's Theta* reparenting and the
// simplifier's forward/reverse passes both depend on.
package grid
