// Package route is the full-pipeline entry point: grid + endpoints in,
// a solved trajectory out (spec §6's route(grid, start, goal, params)).
//
// Grounded on lvlath/builder's single-orchestrator contract
// (_examples/katalvlaran-lvlath/builder/builder.go: "One orchestrator:
// BuildGraph(gopts, bopts, cons...)... Single public entry-point
// ensures consistent option resolution & error wrapping") — Route is
// that same shape specialized to a fixed five-stage pipeline (plan,
// simplify, metrize, solve, assemble) instead of a variadic
// constructor list, wrapping each stage's error with its own %w
// context at the boundary.
package route
