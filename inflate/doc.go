// Package inflate implements the cost-map buffering collaborator from
// spec §6: an optional preprocessor that inflates obstacles by a
// configurable cell radius before a Grid is handed to the planner. It
// is not part of the core pipeline (Grid -> LineOfSight -> Planner ->
// Simplifier -> Metrizer -> SpeedSolver); it runs, if at all, before
// Grid construction.
//
// Inflate computes a multi-source BFS distance from every blocked cell
// and marks every cell within the given radius as blocked, the discrete
// analogue of a Euclidean distance transform. It is adapted from
// lvlath/gridgraph.ExpandIsland's 0-1 BFS deque
// (_examples/katalvlaran-lvlath/gridgraph/expand.go), which finds the
// minimum-cost path of water-to-land conversions between two regions
// using the same deque-based 0-1 BFS; here every blocked cell is a
// source and the "cost" is unweighted 4-connected distance, so a plain
// FIFO BFS suffices (0-1 BFS's deque degenerates to a regular queue when
// every step costs exactly 1).
package inflate
