package gridgen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/thetaroute/grid"
)

// ErrInvalidGate indicates Corridor was asked for a gate row/blocked
// column outside the requested grid dimensions.
var ErrInvalidGate = errors.New("gridgen: gate row and blocked column must be in bounds")

// Free returns an h*w grid with every cell passable.
func Free(h, w int) *grid.Grid {
	return grid.NewFreeGrid(h, w)
}

// Corridor returns an h*w grid with blockedCol blocked at every row
// except gateRow — the spec §8 scenario 1 fixture shape, generalized
// to arbitrary dimensions and gate placement.
func Corridor(h, w, gateRow, blockedCol int) (*grid.Grid, error) {
	if gateRow < 0 || gateRow >= h || blockedCol < 0 || blockedCol >= w {
		return nil, ErrInvalidGate
	}

	rows := make([][]byte, h)
	for r := range rows {
		rows[r] = make([]byte, w)
		if r != gateRow {
			rows[r][blockedCol] = 1
		}
	}
	return grid.NewFromBytes(rows)
}

// RandomBlocked returns an h*w grid with each cell independently
// blocked with probability density, using a *rand.Rand seeded with
// seed: the same seed and dimensions always produce the same grid
// (lvlath/builder's WithSeed discipline).
func RandomBlocked(h, w int, density float64, seed int64) (*grid.Grid, error) {
	rng := rand.New(rand.NewSource(seed))

	rows := make([][]byte, h)
	for r := range rows {
		rows[r] = make([]byte, w)
		for c := range rows[r] {
			if rng.Float64() < density {
				rows[r][c] = 1
			}
		}
	}
	return grid.NewFromBytes(rows)
}
