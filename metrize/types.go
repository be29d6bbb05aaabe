package metrize

import "errors"

// ErrEmptyPath indicates Metrize was called with a zero-length path.
var ErrEmptyPath = errors.New("metrize: path must be non-empty")

// ErrInvalidParameters indicates a resampling parameter fails a
// required precondition (spec §7): a nonpositive CellSizeCM.
var ErrInvalidParameters = errors.New("metrize: cell size must be positive")

// Sample is one trajectory record before a speed limit has been solved
// for it (spec §3's trajectory sample, minus speed_limit).
type Sample struct {
	X, Y      float64 // world-space position in centimeters
	Heading   float64 // degrees, in [0, 360)
	Curvature float64 // signed, degrees per centimeter
	ArcLength float64 // cumulative, nondecreasing from sample 0
}

// Options configures the resampling walk.
type Options struct {
	// CellSizeCM scales Cell coordinates into world centimeters.
	CellSizeCM float64
	// StepCM is the per-iteration advance of both cursors (spec default 1cm).
	StepCM float64
	// LeadOffsetCM is the lead cursor's head start over the trail cursor
	// (spec default 50cm).
	LeadOffsetCM float64
}

// Option is a functional option.
type Option func(*Options)

// DefaultOptions returns the spec defaults: 1cm cell-to-cell resolution
// is left to the caller via WithCellSizeCM; step=1cm, lead offset=50cm.
func DefaultOptions() Options {
	return Options{CellSizeCM: 1, StepCM: 1, LeadOffsetCM: 50}
}

// WithCellSizeCM overrides the cell-to-world scale factor.
func WithCellSizeCM(cm float64) Option {
	return func(o *Options) { o.CellSizeCM = cm }
}

// WithStepCM overrides the cursor advance step. Values <= 0 are clamped
// to the spec default of 1cm: a zero or negative step would never
// terminate the resampling walk.
func WithStepCM(cm float64) Option {
	return func(o *Options) {
		if cm <= 0 {
			cm = 1
		}
		o.StepCM = cm
	}
}

// WithLeadOffsetCM overrides the lead cursor's head start. Values < 0
// are clamped to 0.
func WithLeadOffsetCM(cm float64) Option {
	return func(o *Options) {
		if cm < 0 {
			cm = 0
		}
		o.LeadOffsetCM = cm
	}
}
