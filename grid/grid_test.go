package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetaroute/geom"
	"github.com/katalvlaran/thetaroute/grid"
)

func TestNewFromBytes_RejectsEmpty(t *testing.T) {
	_, err := grid.NewFromBytes(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.NewFromBytes([][]byte{{}})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestNewFromBytes_RejectsNonRectangular(t *testing.T) {
	_, err := grid.NewFromBytes([][]byte{{0, 0}, {0}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestNewFromBytes_DeepCopies(t *testing.T) {
	src := [][]byte{{0, 1}, {0, 0}}
	g, err := grid.NewFromBytes(src)
	require.NoError(t, err)
	src[0][1] = 0
	assert.False(t, g.Passable(0, 1), "grid must not observe mutation of source buffer")
}

func TestPassable_OutOfBoundsIsNeverPassable(t *testing.T) {
	g := grid.NewFreeGrid(3, 3)
	assert.False(t, g.Passable(-1, 0))
	assert.False(t, g.Passable(0, -1))
	assert.False(t, g.Passable(3, 0))
	assert.False(t, g.Passable(0, 3))
	assert.True(t, g.Passable(1, 1))
}

func TestCheckCell_OutOfBoundsAndBlockedAndPassable(t *testing.T) {
	g, err := grid.NewFromBytes([][]byte{
		{0, 1},
		{0, 0},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, g.CheckCell(geom.Cell{Row: -1, Col: 0}), grid.ErrOutOfBounds)
	assert.ErrorIs(t, g.CheckCell(geom.Cell{Row: 0, Col: 1}), grid.ErrBlocked)
	assert.NoError(t, g.CheckCell(geom.Cell{Row: 0, Col: 0}))
}

func TestNeighbors4_OnlyFourConnected(t *testing.T) {
	g := grid.NewFreeGrid(3, 3)
	neighbors := g.Neighbors4(geom.Cell{Row: 1, Col: 1}, nil)
	assert.Len(t, neighbors, 4)
}

func TestNeighbors4_SkipsBlockedAndOutOfBounds(t *testing.T) {
	g, err := grid.NewFromBytes([][]byte{
		{0, 1},
		{0, 0},
	})
	require.NoError(t, err)
	neighbors := g.Neighbors4(geom.Cell{Row: 0, Col: 0}, nil)
	// North and West are out of bounds; East is blocked; South is free.
	require.Len(t, neighbors, 1)
	assert.Equal(t, geom.Cell{Row: 1, Col: 0}, neighbors[0])
}

func TestLineOfSight_Symmetric(t *testing.T) {
	g, err := grid.NewFromBytes([][]byte{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	require.NoError(t, err)

	a := geom.Cell{Row: 0, Col: 0}
	b := geom.Cell{Row: 4, Col: 4}
	assert.Equal(t, g.LineOfSight(a, b), g.LineOfSight(b, a))
}

func TestLineOfSight_BlockedBlocksVisibility(t *testing.T) {
	g, err := grid.NewFromBytes([][]byte{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	})
	require.NoError(t, err)
	assert.False(t, g.LineOfSight(geom.Cell{Row: 0, Col: 0}, geom.Cell{Row: 0, Col: 2}))
}

func TestLineOfSight_SameCellIsVisible(t *testing.T) {
	g := grid.NewFreeGrid(5, 5)
	c := geom.Cell{Row: 2, Col: 2}
	assert.True(t, g.LineOfSight(c, c))
}

func TestLineOfSight_SymmetryFuzz(t *testing.T) {
	// Grounded on spec §8 scenario 6: random grids at ~30% blocked
	// density, random cell pairs, symmetry must hold in every case.
	const (
		size    = 24
		trials  = 200
		density = 0.3
	)
	rng := newLCG(1)
	for trial := 0; trial < trials; trial++ {
		rows := make([][]byte, size)
		for r := range rows {
			rows[r] = make([]byte, size)
			for c := range rows[r] {
				if rng.float64() < density {
					rows[r][c] = 1
				}
			}
		}
		g, err := grid.NewFromBytes(rows)
		require.NoError(t, err)

		a := geom.Cell{Row: int(rng.intn(size)), Col: int(rng.intn(size))}
		b := geom.Cell{Row: int(rng.intn(size)), Col: int(rng.intn(size))}
		require.Equal(t, g.LineOfSight(a, b), g.LineOfSight(b, a),
			"trial %d: LineOfSight(%v,%v) must equal LineOfSight(%v,%v)", trial, a, b, b, a)
	}
}

func TestDiagnose_DisjointComponents(t *testing.T) {
	g, err := grid.NewFromBytes([][]byte{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	})
	require.NoError(t, err)
	d := grid.Diagnose(g)
	assert.Equal(t, 2, d.ComponentCount)
	assert.False(t, d.SameComponent(g, geom.Cell{Row: 0, Col: 0}, geom.Cell{Row: 0, Col: 2}))
}

func TestDiagnose_SingleComponent(t *testing.T) {
	g := grid.NewFreeGrid(4, 4)
	d := grid.Diagnose(g)
	assert.Equal(t, 1, d.ComponentCount)
	assert.True(t, d.SameComponent(g, geom.Cell{Row: 0, Col: 0}, geom.Cell{Row: 3, Col: 3}))
}

// lcg is a tiny deterministic linear-congruential generator so the fuzz
// test above has no dependency on math/rand's versioned algorithm.
type lcg struct{ state uint64 }

func newLCG(seed uint64) *lcg { return &lcg{state: seed + 1} }

func (g *lcg) next() uint64 {
	g.state = g.state*6364136223846793005 + 1442695040888963407
	return g.state
}

func (g *lcg) float64() float64 {
	return float64(g.next()>>11) / float64(1<<53)
}

func (g *lcg) intn(n int) uint64 {
	return g.next() % uint64(n)
}
