// Package metrize resamples a simplified cell polyline into an
// arc-length-parametrized trajectory: world-space position, heading,
// curvature, and cumulative arc length per sample (spec §4.5).
//
// The resampling walk is two cursors advancing a fixed step along the
// cumulative segment length — a lead cursor offset ahead of a trail
// cursor, emitting their midpoint — rather than a corner-by-corner
// walk of the input polyline. This is grounded on dtw's rolling
// two-row buffer discipline (_examples/katalvlaran-lvlath/dtw/dtw.go:
// prevRow/currRow rotation instead of keeping the full matrix) in the
// numbered-step commentary style dtw.go uses throughout; here the
// "rows" are the lead and trail arc-length offsets instead of DTW cost
// rows, but the walk-forward-by-fixed-increment shape is the same.
package metrize
