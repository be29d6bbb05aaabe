package route

import (
	"fmt"

	"github.com/katalvlaran/thetaroute/artifact"
	"github.com/katalvlaran/thetaroute/geom"
	"github.com/katalvlaran/thetaroute/grid"
	"github.com/katalvlaran/thetaroute/metrize"
	"github.com/katalvlaran/thetaroute/planner"
	"github.com/katalvlaran/thetaroute/simplify"
	"github.com/katalvlaran/thetaroute/speed"
)

// Route runs the full pipeline — validate, plan, simplify, metrize,
// solve, assemble — from start to goal on g and returns the solved
// trajectory ready for artifact.EncodeBinary/EncodeCSV.
//
// Any stage's error propagates wrapped with that stage's name; callers
// that need to distinguish failure kinds should errors.Is against the
// sentinels of planner, simplify, metrize, or speed directly.
func Route(g *grid.Grid, start, goal geom.Cell, opts ...Option) ([]artifact.Sample, error) {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	// Reject invalid kinematic/resampling parameters up front (spec §7),
	// before spending any work on search or simplification.
	if p.CellSizeCM <= 0 {
		return nil, fmt.Errorf("route: validate: %w", metrize.ErrInvalidParameters)
	}
	if p.VMin > p.VMax || p.AMax <= 0 || p.DMax <= 0 || p.SmoothingWindowCM <= 0 {
		return nil, fmt.Errorf("route: validate: %w", speed.ErrInvalidParameters)
	}

	if err := g.CheckCell(start); err != nil {
		return nil, fmt.Errorf("route: plan: start: %w: %w", err, planner.ErrInvalidEndpoint)
	}
	if err := g.CheckCell(goal); err != nil {
		return nil, fmt.Errorf("route: plan: goal: %w: %w", err, planner.ErrInvalidEndpoint)
	}
	// Fail fast on structural disconnection before spending an
	// expansion budget on a search that can never reach the goal.
	if diag := grid.Diagnose(g); !diag.SameComponent(g, start, goal) {
		return nil, fmt.Errorf("route: plan: %w", planner.ErrNoPath)
	}

	rawPath, err := planner.Plan(g, start, goal, planner.WithMode(p.Mode), planner.WithExpansionBudget(p.ExpansionBudget))
	if err != nil {
		return nil, fmt.Errorf("route: plan: %w", err)
	}

	simplified, err := simplify.Simplify(g, rawPath, simplify.WithPasses(p.SimplifyPasses), simplify.WithMaxSegmentLen(p.MaxSegmentLen))
	if err != nil {
		return nil, fmt.Errorf("route: simplify: %w", err)
	}

	samples, err := metrize.Metrize(simplified,
		metrize.WithCellSizeCM(p.CellSizeCM),
		metrize.WithLeadOffsetCM(p.LeadOffsetCM),
		metrize.WithStepCM(p.StepCM),
	)
	if err != nil {
		return nil, fmt.Errorf("route: metrize: %w", err)
	}

	speeds, err := speed.Solve(samples,
		speed.WithVMin(p.VMin),
		speed.WithVMax(p.VMax),
		speed.WithOmegaMax(p.OmegaMax),
		speed.WithAMax(p.AMax),
		speed.WithDMax(p.DMax),
		speed.WithWindowCM(p.SmoothingWindowCM),
	)
	if err != nil {
		return nil, fmt.Errorf("route: speed: %w", err)
	}

	out := make([]artifact.Sample, len(samples))
	for i, s := range samples {
		out[i] = artifact.Sample{
			X:          float32(s.X),
			Y:          float32(s.Y),
			Curvature:  float32(s.Curvature),
			Heading:    float32(s.Heading),
			ArcLength:  float32(s.ArcLength),
			SpeedLimit: float32(speeds[i]),
		}
	}
	return out, nil
}
