package metrize

import (
	"math"

	"github.com/katalvlaran/thetaroute/geom"
)

// segment is one scaled edge of the input polyline, with its arc-length
// offset from the path origin.
type segment struct {
	start, end geom.WorldPoint
	length     float64
	cumStart   float64
}

// Metrize resamples path into an arc-length-parametrized trajectory
// (spec §4.5). A single-cell path is the DegeneratePath case: one
// sample with zero curvature and zero arc length.
//
// Complexity: O(n + L/StepCM) where n = len(path) and L is the total
// arc length in centimeters.
func Metrize(path []geom.Cell, opts ...Option) ([]Sample, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.CellSizeCM <= 0 {
		return nil, ErrInvalidParameters
	}

	if len(path) == 1 {
		p := geom.Scale(path[0], cfg.CellSizeCM)
		return []Sample{{X: p.X, Y: p.Y}}, nil
	}

	// 1) Scale the cell path to world-space points.
	pts := make([]geom.WorldPoint, len(path))
	for i, c := range path {
		pts[i] = geom.Scale(c, cfg.CellSizeCM)
	}

	// 2) Build per-segment cumulative-length records; total is L.
	segs := make([]segment, len(pts)-1)
	var cum float64
	for i := 0; i < len(pts)-1; i++ {
		length := pts[i].Dist(pts[i+1])
		segs[i] = segment{start: pts[i], end: pts[i+1], length: length, cumStart: cum}
		cum += length
	}
	total := cum

	posAt := func(s float64) geom.WorldPoint {
		if s <= 0 {
			return pts[0]
		}
		if s >= total {
			return pts[len(pts)-1]
		}
		for _, sg := range segs {
			if s <= sg.cumStart+sg.length {
				if sg.length == 0 {
					return sg.start
				}
				t := (s - sg.cumStart) / sg.length
				return sg.start.Lerp(sg.end, t)
			}
		}
		return pts[len(pts)-1]
	}

	// 3) Walk the lead/trail cursors, emitting the midpoint at each step.
	// The lead cursor starts LeadOffsetCM ahead of the trail cursor, which
	// starts at the path origin; both advance StepCM per iteration until
	// the lead cursor reaches L (dtw.go's prevRow/currRow rotation, here
	// over a rolling pair of arc-length offsets instead of DP rows).
	trail, lead := 0.0, cfg.LeadOffsetCM
	var positions []geom.WorldPoint
	var arcLens []float64
	for {
		t, l := trail, lead
		if t > total {
			t = total
		}
		if l > total {
			l = total
		}
		positions = append(positions, posAt(t).Lerp(posAt(l), 0.5))
		arcLens = append(arcLens, (t+l)/2)
		if l >= total {
			break
		}
		trail += cfg.StepCM
		lead += cfg.StepCM
	}

	// 4) Heading via atan2 of consecutive resampled points; the last
	// sample inherits the previous heading (spec §4.5 step 4).
	n := len(positions)
	headings := make([]float64, n)
	for i := 0; i < n-1; i++ {
		d := positions[i+1].Sub(positions[i])
		headings[i] = geom.NormalizeDegrees360(math.Atan2(d.Y, d.X) * 180 / math.Pi)
	}
	if n > 1 {
		headings[n-1] = headings[n-2]
	}

	// 5) Curvature from the normalized heading delta between i-1 and
	// i+1, divided by the mean of the two adjacent segment lengths.
	// Endpoints keep the zero value.
	curvature := make([]float64, n)
	for i := 1; i < n-1; i++ {
		dh := geom.NormalizeDegreesSigned(headings[i+1] - headings[i-1])
		l1 := positions[i].Dist(positions[i-1])
		l2 := positions[i+1].Dist(positions[i])
		if mean := (l1 + l2) / 2; mean > 0 {
			curvature[i] = dh / mean
		}
	}

	samples := make([]Sample, n)
	for i := 0; i < n; i++ {
		samples[i] = Sample{
			X:         positions[i].X,
			Y:         positions[i].Y,
			Heading:   headings[i],
			Curvature: curvature[i],
			ArcLength: arcLens[i],
		}
	}
	return samples, nil
}
