package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thetaroute/planner"
	"github.com/katalvlaran/thetaroute/route"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrUnknownMode indicates a config file's mode field was neither
// "astar" nor "thetastar".
var ErrUnknownMode = errors.New("config: mode must be \"astar\" or \"thetastar\"")

// Config mirrors route.Params in YAML-tagged, plain-scalar form.
type Config struct {
	Mode            string `yaml:"mode"`
	ExpansionBudget int64  `yaml:"expansion_budget"`

	CellSizeCM     float64 `yaml:"cell_size_cm"`
	SimplifyPasses int     `yaml:"simplify_passes"`
	MaxSegmentLen  int     `yaml:"max_segment_len"`

	LeadOffsetCM float64 `yaml:"lead_offset_cm"`
	StepCM       float64 `yaml:"step_cm"`

	SmoothingWindowCM float64 `yaml:"smoothing_window_cm"`
	VMin              float64 `yaml:"v_min"`
	VMax              float64 `yaml:"v_max"`
	OmegaMax          float64 `yaml:"omega_max"`
	AMax              float64 `yaml:"a_max"`
	DMax              float64 `yaml:"d_max"`
}

// Load loads configuration from a YAML file, merged over embedded
// defaults. If path is empty, only the embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	return cfg, nil
}

// RouteOptions converts the loaded config into route.Option values
// ready to pass to route.Route.
func (c *Config) RouteOptions() ([]route.Option, error) {
	mode, err := parseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	return []route.Option{
		route.WithMode(mode),
		route.WithExpansionBudget(c.ExpansionBudget),
		route.WithCellSizeCM(c.CellSizeCM),
		route.WithSimplifyPasses(c.SimplifyPasses),
		route.WithMaxSegmentLen(c.MaxSegmentLen),
		route.WithLeadOffsetCM(c.LeadOffsetCM),
		route.WithStepCM(c.StepCM),
		route.WithSmoothingWindowCM(c.SmoothingWindowCM),
		route.WithVMin(c.VMin),
		route.WithVMax(c.VMax),
		route.WithOmegaMax(c.OmegaMax),
		route.WithAMax(c.AMax),
		route.WithDMax(c.DMax),
	}, nil
}

func parseMode(s string) (planner.Mode, error) {
	switch s {
	case "astar":
		return planner.AStar, nil
	case "thetastar", "":
		return planner.ThetaStar, nil
	default:
		return planner.ThetaStar, ErrUnknownMode
	}
}
