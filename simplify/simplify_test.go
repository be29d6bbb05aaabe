package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetaroute/geom"
	"github.com/katalvlaran/thetaroute/grid"
	"github.com/katalvlaran/thetaroute/simplify"
)

func corridorGrid(t *testing.T) *grid.Grid {
	t.Helper()
	rows := make([][]byte, 10)
	for r := range rows {
		rows[r] = make([]byte, 10)
		if r != 5 {
			rows[r][4] = 1
		}
	}
	g, err := grid.NewFromBytes(rows)
	require.NoError(t, err)
	return g
}

func corridorRawPath() []geom.Cell {
	// A plausible Theta*-like raw path through the gate: straight legs
	// from (0,0) to the gate and from the gate to (9,9), densely sampled
	// cell-by-cell, as a 4-connected search would produce before any
	// any-angle shortcutting. The first leg moves row-then-column so it
	// never touches the blocked column before the gate row; the second
	// leg moves column-then-row so it crosses the gate row (entirely
	// free) before leaving column 4.
	raw := stepLine(geom.Cell{Row: 0, Col: 0}, geom.Cell{Row: 5, Col: 4}, true)
	raw = append(raw, stepLine(geom.Cell{Row: 5, Col: 4}, geom.Cell{Row: 9, Col: 9}, false)[1:]...)
	return raw
}

func TestSimplify_CorridorNeverLongerAndEndpointsPreserved(t *testing.T) {
	g := corridorGrid(t)
	raw := corridorRawPath()
	out, err := simplify.Simplify(g, raw)
	require.NoError(t, err)
	assert.Equal(t, raw[0], out[0])
	assert.Equal(t, raw[len(raw)-1], out[len(out)-1])
	assert.LessOrEqual(t, len(out), len(raw))
	assert.LessOrEqual(t, arcLengthCells(out), arcLengthCells(raw)+1e-9)
}

func TestSimplify_EveryConsecutivePairVisible(t *testing.T) {
	g := corridorGrid(t)
	raw := corridorRawPath()

	out, err := simplify.Simplify(g, raw)
	require.NoError(t, err)
	for i := 1; i < len(out); i++ {
		assert.True(t, g.LineOfSight(out[i-1], out[i]), "segment %v -> %v must be visible", out[i-1], out[i])
	}
}

func TestSimplify_SinglePointPath(t *testing.T) {
	g := grid.NewFreeGrid(5, 5)
	out, err := simplify.Simplify(g, []geom.Cell{{Row: 2, Col: 2}})
	require.NoError(t, err)
	assert.Equal(t, []geom.Cell{{Row: 2, Col: 2}}, out)
}

func TestSimplify_EmptyPathRejected(t *testing.T) {
	g := grid.NewFreeGrid(5, 5)
	_, err := simplify.Simplify(g, nil)
	assert.ErrorIs(t, err, simplify.ErrEmptyPath)
}

func TestSimplify_NeverLongerThanInput(t *testing.T) {
	g := grid.NewFreeGrid(20, 20)
	raw := stepLine(geom.Cell{Row: 0, Col: 0}, geom.Cell{Row: 19, Col: 19}, true)
	out, err := simplify.Simplify(g, raw)
	require.NoError(t, err)
	assert.LessOrEqual(t, arcLengthCells(out), arcLengthCells(raw)+1e-9)
}

// stepLine returns a dense 4-connected staircase path from a to b. When
// rowFirst is true it exhausts the row delta before the column delta,
// and vice versa; used to build raw-path fixtures resembling plain A*
// output that avoid specific obstacle columns/rows.
func stepLine(a, b geom.Cell, rowFirst bool) []geom.Cell {
	path := []geom.Cell{a}
	cur := a
	stepRow := func() {
		for cur.Row != b.Row {
			if cur.Row < b.Row {
				cur.Row++
			} else {
				cur.Row--
			}
			path = append(path, cur)
		}
	}
	stepCol := func() {
		for cur.Col != b.Col {
			if cur.Col < b.Col {
				cur.Col++
			} else {
				cur.Col--
			}
			path = append(path, cur)
		}
	}
	if rowFirst {
		stepRow()
		stepCol()
	} else {
		stepCol()
		stepRow()
	}
	return path
}

func arcLengthCells(path []geom.Cell) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += geom.EuclideanCells(path[i-1], path[i])
	}
	return total
}
