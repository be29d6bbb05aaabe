package speed

import "errors"

// ErrEmptyTrajectory indicates Solve was called with a zero-length sample set.
var ErrEmptyTrajectory = errors.New("speed: trajectory must be non-empty")

// ErrInvalidParameters indicates a kinematic parameter fails a required
// precondition (spec §7): v_min > v_max, a nonpositive AMax or DMax, or
// a nonpositive WindowCM.
var ErrInvalidParameters = errors.New("speed: invalid kinematic parameters")

// epsilon guards the turning-rate cap's division against near-zero
// curvature on straight segments (spec §4.6 step 2).
const epsilon = 1e-6

// Options bundles the kinematic limits spec §4.6 takes as input.
type Options struct {
	VMin, VMax float64 // cm/s
	OmegaMax   float64 // rad/s
	AMax       float64 // forward acceleration, cm/s^2
	DMax       float64 // deceleration magnitude, cm/s^2
	WindowCM   float64 // Gaussian smoothing window, cm
}

// Option is a functional option.
type Option func(*Options)

// DefaultOptions returns spec-reasonable defaults for a ground vehicle;
// callers are expected to override VMax/OmegaMax/AMax/DMax for their
// own platform.
func DefaultOptions() Options {
	return Options{
		VMin:     5,
		VMax:     150,
		OmegaMax: 1.5,
		AMax:     80,
		DMax:     120,
		WindowCM: 50,
	}
}

// WithVMin overrides the floor speed.
func WithVMin(v float64) Option { return func(o *Options) { o.VMin = v } }

// WithVMax overrides the ceiling speed.
func WithVMax(v float64) Option { return func(o *Options) { o.VMax = v } }

// WithOmegaMax overrides the maximum turning rate.
func WithOmegaMax(v float64) Option { return func(o *Options) { o.OmegaMax = v } }

// WithAMax overrides the forward acceleration bound.
func WithAMax(v float64) Option { return func(o *Options) { o.AMax = v } }

// WithDMax overrides the deceleration bound.
func WithDMax(v float64) Option { return func(o *Options) { o.DMax = v } }

// WithWindowCM overrides the curvature-smoothing window. Solve rejects
// a nonpositive value with ErrInvalidParameters.
func WithWindowCM(v float64) Option { return func(o *Options) { o.WindowCM = v } }
