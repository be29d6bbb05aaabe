// Package simplify reduces a planner raw path to a minimal visible-corner
// polyline via alternating forward/reverse greedy passes interleaved
// with equidistant resampling (spec §4.4).
//
// The driver is a fixed number of passes with no time-based randomness,
// deterministic tie-breaking (always accept the farthest visible index),
// and an early-exit when a pass makes no change — the same discipline
// lvlath/tsp documents for its local-search post-passes
// (_examples/katalvlaran-lvlath/tsp/doc.go: "No time-based randomness...
// Costs are rounded... to avoid FP drift", two_opt.go/three_opt.go's
// fixed first/best-improvement scans). tsp itself solves closed
// Hamiltonian tours and was not a fit to import directly here (see
// DESIGN.md); simplify borrows its determinism discipline, not its code.
package simplify
