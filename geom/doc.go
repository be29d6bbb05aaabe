// Package geom defines the shared coordinate types used across the
// thetaroute pipeline: integer grid cells and real-valued world points.
//
// Cell is the currency of grid, planner, and simplify. WorldPoint is the
// currency of metrize, speed, and artifact. Scale converts between them
// at a configurable cell size; nothing upstream of Scale should need to
// know the cell size in centimeters.
package geom
