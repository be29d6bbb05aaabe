package route

import "github.com/katalvlaran/thetaroute/planner"

// Params bundles every knob the pipeline's stages take, per spec §6's
// route() params: cell_size_cm, simplifier passes, max segment length,
// smoothing window, v_min, v_max, omega_max, a_max, d_max.
type Params struct {
	Mode            planner.Mode
	ExpansionBudget int64

	CellSizeCM    float64
	SimplifyPasses int
	MaxSegmentLen int

	LeadOffsetCM float64
	StepCM       float64

	SmoothingWindowCM float64
	VMin, VMax        float64
	OmegaMax          float64
	AMax, DMax        float64
}

// Option is a functional option over Params.
type Option func(*Params)

// DefaultParams mirrors spec §6's stated defaults: 5cm cells, 5
// simplifier passes, 10-cell max segment, 50cm smoothing window.
// Kinematic limits have no spec-given default and must be supplied by
// the caller; DefaultParams seeds them with the same ground-vehicle
// placeholders speed.DefaultOptions uses, so Route is callable with zero
// options for quick exploration.
func DefaultParams() Params {
	return Params{
		Mode:            planner.ThetaStar,
		ExpansionBudget: 0,

		CellSizeCM:     5,
		SimplifyPasses: 5,
		MaxSegmentLen:  10,

		LeadOffsetCM: 50,
		StepCM:       1,

		SmoothingWindowCM: 50,
		VMin:              5,
		VMax:              150,
		OmegaMax:          1.5,
		AMax:              80,
		DMax:              120,
	}
}

func WithMode(m planner.Mode) Option { return func(p *Params) { p.Mode = m } }

func WithExpansionBudget(n int64) Option { return func(p *Params) { p.ExpansionBudget = n } }

func WithCellSizeCM(cm float64) Option { return func(p *Params) { p.CellSizeCM = cm } }

func WithSimplifyPasses(n int) Option { return func(p *Params) { p.SimplifyPasses = n } }

func WithMaxSegmentLen(n int) Option { return func(p *Params) { p.MaxSegmentLen = n } }

func WithLeadOffsetCM(cm float64) Option { return func(p *Params) { p.LeadOffsetCM = cm } }

func WithStepCM(cm float64) Option { return func(p *Params) { p.StepCM = cm } }

func WithSmoothingWindowCM(cm float64) Option { return func(p *Params) { p.SmoothingWindowCM = cm } }

func WithVMin(v float64) Option { return func(p *Params) { p.VMin = v } }

func WithVMax(v float64) Option { return func(p *Params) { p.VMax = v } }

func WithOmegaMax(v float64) Option { return func(p *Params) { p.OmegaMax = v } }

func WithAMax(v float64) Option { return func(p *Params) { p.AMax = v } }

func WithDMax(v float64) Option { return func(p *Params) { p.DMax = v } }
