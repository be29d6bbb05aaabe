package planner

// heapItem is one entry in the open set: a reference into the search
// arena, ordered by f ascending with insertion sequence as a stable
// tie-break (spec §4.3's "Ordering guarantee" requires a deterministic
// tie-break for reproducible golden-output tests).
type heapItem struct {
	f       float64
	seq     int64
	nodeIdx int32
}

// openHeap is a min-heap of heapItem, adapted from lvlath/dijkstra's
// nodePQ (_examples/katalvlaran-lvlath/dijkstra/dijkstra.go): same
// container/heap.Interface shape, same lazy-decrease-key discipline
// (stale entries are filtered at pop time rather than mutated in
// place).
type openHeap []heapItem

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x interface{}) {
	*h = append(*h, x.(heapItem))
}

func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
