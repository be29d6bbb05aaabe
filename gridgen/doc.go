// Package gridgen builds deterministic synthetic grids for tests and
// benchmarks: free grids, single-gate corridors, and randomly blocked
// grids from an explicit seed.
//
// Grounded on lvlath/builder's fixture philosophy
// (_examples/katalvlaran-lvlath/builder/doc.go: "Determinism: same
// inputs/options/seed and constructor order ⇒ identical graphs/series"
// and WithSeed(...) freezing stochastic constructors) — gridgen is the
// same "named constructor, explicit seed, no global RNG state" shape
// applied to occupancy grids instead of lvlath graphs.
package gridgen
