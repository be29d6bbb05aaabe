package simplify

import "errors"

// ErrEmptyPath indicates Simplify was called with a zero-length path,
// which can never happen from a well-formed planner.Plan result but is
// guarded against defensively at this package's boundary.
var ErrEmptyPath = errors.New("simplify: path must be non-empty")

// Options configures the simplifier driver.
type Options struct {
	// Passes is the number of forward+reverse pass pairs (spec default 5).
	Passes int
	// MaxSegmentLen is split_long_segments' L_max in cells (spec default 10).
	MaxSegmentLen int
}

// Option is a functional option, in the style of lvlath/dijkstra.Option.
type Option func(*Options)

// DefaultOptions returns the spec defaults: 5 passes, L_max=10 cells.
func DefaultOptions() Options {
	return Options{Passes: 5, MaxSegmentLen: 10}
}

// WithPasses overrides the number of forward+reverse pass pairs. Values
// less than 1 are clamped to 1: zero passes would skip simplification
// outright, which is never the caller's intent when they call Simplify
// at all.
func WithPasses(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Passes = n
	}
}

// WithMaxSegmentLen overrides split_long_segments' L_max. Values less
// than 1 are clamped to 1.
func WithMaxSegmentLen(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.MaxSegmentLen = n
	}
}
