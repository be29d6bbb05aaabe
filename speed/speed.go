package speed

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/thetaroute/metrize"
)

// Solve computes a per-sample speed limit for samples (spec §4.6). A
// single-sample trajectory is the DegeneratePath case: its only speed
// limit is VMin.
//
// Complexity: O(n^2) for the Gaussian smoothing pass (each sample
// scans the half-window neighborhood; real trajectories keep W small
// relative to n), O(n) for the two acceleration passes.
func Solve(samples []metrize.Sample, opts ...Option) ([]float64, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyTrajectory
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.VMin > cfg.VMax || cfg.AMax <= 0 || cfg.DMax <= 0 || cfg.WindowCM <= 0 {
		return nil, ErrInvalidParameters
	}

	if len(samples) == 1 {
		return []float64{cfg.VMin}, nil
	}

	n := len(samples)
	smoothed := smoothCurvatureRad(samples, cfg.WindowCM)

	v := make([]float64, n)
	for i, kappa := range smoothed {
		vTurn := cfg.OmegaMax / (math.Abs(kappa) + epsilon)
		v[i] = clip(vTurn, cfg.VMin, cfg.VMax)
	}

	// Forward acceleration pass.
	v[0] = cfg.VMin
	for i := 1; i < n; i++ {
		ds := samples[i].ArcLength - samples[i-1].ArcLength
		bound := math.Sqrt(v[i-1]*v[i-1] + 2*cfg.AMax*ds)
		if bound < v[i] {
			v[i] = bound
		}
	}

	// Backward deceleration pass.
	v[n-1] = cfg.VMin
	for i := n - 2; i >= 0; i-- {
		ds := samples[i+1].ArcLength - samples[i].ArcLength
		bound := math.Sqrt(v[i+1]*v[i+1] + 2*cfg.DMax*ds)
		if bound < v[i] {
			v[i] = bound
		}
	}

	return v, nil
}

// smoothCurvatureRad converts each sample's curvature from degrees/cm
// to radians/cm and replaces it with a Gaussian-weighted average of
// every sample within windowCM/2 arc-length distance, standard
// deviation windowCM/4 (spec §4.6 step 1). Callers must have already
// rejected a nonpositive windowCM.
func smoothCurvatureRad(samples []metrize.Sample, windowCM float64) []float64 {
	raw := make([]float64, len(samples))
	for i, s := range samples {
		raw[i] = s.Curvature * math.Pi / 180
	}

	half := windowCM / 2
	gauss := distuv.Normal{Mu: 0, Sigma: windowCM / 4}

	out := make([]float64, len(samples))
	for i := range samples {
		var weightSum, valueSum float64
		for j := range samples {
			ds := samples[j].ArcLength - samples[i].ArcLength
			if math.Abs(ds) >= half {
				continue
			}
			w := gauss.Prob(ds)
			weightSum += w
			valueSum += w * raw[j]
		}
		if weightSum > 0 {
			out[i] = valueSum / weightSum
		}
	}
	return out
}

func clip(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
