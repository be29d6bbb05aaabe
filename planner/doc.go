// Package planner implements the any-angle best-first search (A* and
// Theta*) described in spec §4.3: it consumes a grid.Grid and
// grid.LineOfSight and emits an ordered raw path of cells from start to
// goal, or reports unreachability.
//
// Architecture is adapted from lvlath/dijkstra
// (_examples/katalvlaran-lvlath/dijkstra/dijkstra.go, types.go): a
// functional-option Options struct resolved once at entry, a runner that
// holds all per-search mutable state, and a container/heap min-heap with
// a lazy-decrease-key discipline (push a new, better entry rather than
// mutating one in the heap; a visited/closed check at pop time discards
// stale entries).
//
// Two departures from dijkstra's design, both called out in spec §9:
//
//   - Search nodes live in a single contiguous arena ([]searchNode
//     indexed by int32) rather than as independently allocated,
//     pointer-linked records. Path reconstruction chases parent indices
//     through the arena instead of walking a pointer chain, which rules
//     out cycles by construction and keeps node lifetimes scoped to one
//     plan call.
//   - The permissive duplicate-open-entry scan in spec §4.3's "Re-open
//     policy" is implemented as a best-known-g map keyed by cell index,
//     exactly as spec §9's "Open-set re-checks" note sanctions: this
//     preserves the observable path while avoiding the teacher's O(n)
//     linear scan per expansion.
package planner
