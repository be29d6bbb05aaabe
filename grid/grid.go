package grid

import "github.com/katalvlaran/thetaroute/geom"

// neighborOffsets are the 4-connected (N,E,S,W) row/col deltas, in the
// fixed order the planner expands neighbors in. Order matters only for
// reproducibility of the deterministic tie-break in the planner; it does
// not change which cells are reachable.
var neighborOffsets = [4][2]int{
	{-1, 0}, // N
	{0, 1},  // E
	{1, 0},  // S
	{0, -1}, // W
}

// Grid is an immutable H×W occupancy bitmap. Cell (r,c) is free iff
// blocked[r][c] == 0. Grids are constructed once per plan request and
// never mutated afterward; NewFromBytes deep-copies its input so the
// caller remains free to reuse or mutate the source buffer.
type Grid struct {
	height, width int
	blocked       [][]byte
}

// NewFromBytes constructs a Grid from a rectangular H×W byte matrix,
// where 0 means free and any nonzero value means blocked. It deep-copies
// the input. Returns ErrEmptyGrid if rows or cols are empty, or
// ErrNonRectangular if row lengths differ.
//
// Complexity: O(H*W) time and memory.
func NewFromBytes(rows [][]byte) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]byte, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]byte, w)
		copy(cells[r], rows[r])
	}
	return &Grid{height: h, width: w, blocked: cells}, nil
}

// NewFreeGrid constructs an H×W grid with every cell free. Useful for
// tests and for the monotone-speed-profile scenario in spec §8.
func NewFreeGrid(h, w int) *Grid {
	cells := make([][]byte, h)
	for r := range cells {
		cells[r] = make([]byte, w)
	}
	return &Grid{height: h, width: w, blocked: cells}
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (r,c) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}

// Passable reports whether (r,c) is in bounds and free. Out-of-bounds
// cells are never passable.
// Complexity: O(1).
func (g *Grid) Passable(r, c int) bool {
	return g.InBounds(r, c) && g.blocked[r][c] == 0
}

// PassableCell is the geom.Cell-typed form of Passable.
func (g *Grid) PassableCell(c geom.Cell) bool {
	return g.Passable(c.Row, c.Col)
}

// CheckCell reports why c is not usable as a search endpoint, returning
// ErrOutOfBounds or ErrBlocked, or nil if c is passable.
func (g *Grid) CheckCell(c geom.Cell) error {
	if !g.InBounds(c.Row, c.Col) {
		return ErrOutOfBounds
	}
	if g.blocked[c.Row][c.Col] != 0 {
		return ErrBlocked
	}
	return nil
}

// NeighborOffsets returns the fixed 4-connected neighbor deltas.
func (g *Grid) NeighborOffsets() [4][2]int {
	return neighborOffsets
}

// Neighbors4 appends the in-bounds, passable 4-connected neighbors of c
// to dst and returns the extended slice. Used by the planner's
// expansion step; exported so tests and alternative search strategies
// can reuse the same neighbor rule as the planner.
func (g *Grid) Neighbors4(c geom.Cell, dst []geom.Cell) []geom.Cell {
	for _, d := range neighborOffsets {
		nr, nc := c.Row+d[0], c.Col+d[1]
		if g.Passable(nr, nc) {
			dst = append(dst, geom.Cell{Row: nr, Col: nc})
		}
	}
	return dst
}
