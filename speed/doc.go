// Package speed solves a per-sample speed limit for a metrized
// trajectory: Gaussian-smoothed curvature feeding a turning-rate cap,
// then forward acceleration and backward deceleration passes (spec
// §4.6).
//
// The Gaussian weighting term is computed with
// gonum.org/v1/gonum/stat/distuv.Normal rather than a hand-rolled PDF,
// since gonum is already a pack-level dependency (pthm-soup imports
// gonum.org/v1/gonum/optimize in cmd/optimize/main.go) and distuv
// carries the exact Normal.Prob the smoothing window needs.
package speed
