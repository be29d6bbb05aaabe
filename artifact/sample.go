package artifact

// Sample is one row of the persisted trajectory table: position,
// curvature, heading, arc length, and the solved speed limit (spec
// §6's n×6 float32 table, columns in this exact order).
type Sample struct {
	X         float32 `csv:"x"`
	Y         float32 `csv:"y"`
	Curvature float32 `csv:"curvature"`
	Heading   float32 `csv:"heading"`
	ArcLength float32 `csv:"arc_length"`
	SpeedLimit float32 `csv:"speed_limit"`
}
