package inflate

import (
	"errors"

	"github.com/katalvlaran/thetaroute/grid"
)

// ErrNegativeRadius indicates a negative radiusCells was requested.
var ErrNegativeRadius = errors.New("inflate: radius must be non-negative")

// Inflate returns a new Grid in which every cell within radiusCells of
// any originally-blocked cell (4-connected distance) is also blocked.
// radiusCells == 0 returns a grid equal to the input (a defensive copy,
// not the same pointer, preserving Grid's immutability contract).
//
// Complexity: O(H*W) time and memory (single multi-source BFS).
func Inflate(g *grid.Grid, radiusCells int) (*grid.Grid, error) {
	if radiusCells < 0 {
		return nil, ErrNegativeRadius
	}

	h, w := g.Height(), g.Width()
	dist := make([][]int, h)
	out := make([][]byte, h)
	queue := make([][2]int, 0, h*w)

	const unset = -1
	for r := 0; r < h; r++ {
		dist[r] = make([]int, w)
		out[r] = make([]byte, w)
		for c := 0; c < w; c++ {
			dist[r][c] = unset
			if !g.Passable(r, c) {
				dist[r][c] = 0
				out[r][c] = 1
				queue = append(queue, [2]int{r, c})
			}
		}
	}

	offsets := g.NeighborOffsets()
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		r, c := cur[0], cur[1]
		if dist[r][c] >= radiusCells {
			continue
		}
		for _, d := range offsets {
			nr, nc := r+d[0], c+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			if dist[nr][nc] != unset {
				continue
			}
			dist[nr][nc] = dist[r][c] + 1
			out[nr][nc] = 1
			queue = append(queue, [2]int{nr, nc})
		}
	}

	return grid.NewFromBytes(out)
}
