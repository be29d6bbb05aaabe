package planner

import (
	"container/heap"

	"github.com/katalvlaran/thetaroute/geom"
	"github.com/katalvlaran/thetaroute/grid"
)

// noParent marks a searchNode with no parent (the start node).
const noParent int32 = -1

// searchNode is one record in the search arena. parent is an index into
// the same arena, or noParent for the start node.
type searchNode struct {
	pos    geom.Cell
	parent int32
	g      float64
	h      float64
}

func (n *searchNode) f() float64 { return n.g + n.h }

// Plan runs A* or Theta* from start to goal on g and returns the raw
// path (spec §4.3). The only failure modes are ErrInvalidEndpoint,
// ErrNoPath, and (if an expansion budget was configured) ErrBudgetExhausted.
//
// Complexity: O(E log E) where E is the number of (re)expansions; with
// the best-known-g map in place of the teacher's linear re-open scan,
// each expansion is O(d log E) for d=4 neighbors.
func Plan(g *grid.Grid, start, goal geom.Cell, opts ...Option) ([]geom.Cell, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !g.PassableCell(start) || !g.PassableCell(goal) {
		return nil, ErrInvalidEndpoint
	}

	if start == goal {
		return []geom.Cell{start}, nil
	}

	r := &runner{
		grid:  g,
		goal:  goal,
		mode:  cfg.Mode,
		budget: cfg.ExpansionBudget,
		bestG: make(map[int]float64),
	}
	r.init(start)

	return r.run()
}

// runner holds all mutable state for one Plan call. Nothing here
// outlives the call.
type runner struct {
	grid   *grid.Grid
	goal   geom.Cell
	mode   Mode
	budget int64

	arena    []searchNode
	open     openHeap
	closed   map[int]bool
	bestG    map[int]float64 // cell index -> best known g, replaces dijkstra's linear open-set scan
	nextSeq  int64
	popCount int64
}

func (r *runner) cellIndex(c geom.Cell) int {
	return c.Row*r.grid.Width() + c.Col
}

func (r *runner) heuristic(c geom.Cell) float64 {
	if r.mode == AStar {
		return float64(geom.ManhattanCells(c, r.goal))
	}
	return geom.EuclideanCells(c, r.goal)
}

func (r *runner) init(start geom.Cell) {
	r.closed = make(map[int]bool)
	r.arena = make([]searchNode, 0, 64)
	r.open = make(openHeap, 0, 64)
	heap.Init(&r.open)

	startNode := searchNode{pos: start, parent: noParent, g: 0, h: r.heuristic(start)}
	r.arena = append(r.arena, startNode)
	idx := int32(len(r.arena) - 1)
	r.bestG[r.cellIndex(start)] = 0
	r.pushOpen(idx, startNode.f())
}

func (r *runner) pushOpen(nodeIdx int32, f float64) {
	heap.Push(&r.open, heapItem{f: f, seq: r.nextSeq, nodeIdx: nodeIdx})
	r.nextSeq++
}

func (r *runner) run() ([]geom.Cell, error) {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(heapItem)
		cur := r.arena[item.nodeIdx]
		curIdx := r.cellIndex(cur.pos)

		// Stale entry: a better path to this cell was already closed.
		if r.closed[curIdx] {
			continue
		}

		if r.budget > 0 {
			r.popCount++
			if r.popCount > r.budget {
				return nil, ErrBudgetExhausted
			}
		}

		r.closed[curIdx] = true

		if cur.pos == r.goal {
			return reconstruct(r.arena, item.nodeIdx), nil
		}

		r.expand(item.nodeIdx, cur)
	}

	return nil, ErrNoPath
}

// expand generates the 4-connected neighbors of cur (stored at
// arena[curIdx]) and applies the cost update of spec §4.3.
func (r *runner) expand(curIdx int32, cur searchNode) {
	var neighborBuf [4]geom.Cell
	neighbors := r.grid.Neighbors4(cur.pos, neighborBuf[:0])

	for _, nb := range neighbors {
		nbIdx := r.cellIndex(nb)
		if r.closed[nbIdx] {
			continue
		}

		childG, parentIdx := r.costUpdate(curIdx, cur, nb)

		if best, ok := r.bestG[nbIdx]; ok && childG >= best {
			continue // not an improvement; spec's permissive re-open gate
		}
		r.bestG[nbIdx] = childG

		child := searchNode{
			pos:    nb,
			parent: parentIdx,
			g:      childG,
			h:      r.heuristic(nb),
		}
		r.arena = append(r.arena, child)
		childIdx := int32(len(r.arena) - 1)
		r.pushOpen(childIdx, child.f())
	}
}

// costUpdate implements spec §4.3's per-mode cost update, returning the
// child's tentative g and the arena index it should parent to.
func (r *runner) costUpdate(curIdx int32, cur searchNode, child geom.Cell) (g float64, parent int32) {
	if r.mode == ThetaStar && cur.parent != noParent {
		grandparent := r.arena[cur.parent]
		if r.grid.LineOfSight(grandparent.pos, child) {
			return grandparent.g + geom.EuclideanCells(grandparent.pos, child), cur.parent
		}
	}
	return cur.g + 1, curIdx
}

// reconstruct walks parent indices from goalIdx back to the start and
// reverses, per spec §4.3's termination step.
func reconstruct(arena []searchNode, goalIdx int32) []geom.Cell {
	var rev []geom.Cell
	for idx := goalIdx; idx != noParent; idx = arena[idx].parent {
		rev = append(rev, arena[idx].pos)
	}
	path := make([]geom.Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}
