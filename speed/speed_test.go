package speed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetaroute/metrize"
	"github.com/katalvlaran/thetaroute/speed"
)

func straightSamples(n int) []metrize.Sample {
	out := make([]metrize.Sample, n)
	for i := range out {
		out[i] = metrize.Sample{X: float64(i), Y: 0, Heading: 0, Curvature: 0, ArcLength: float64(i)}
	}
	return out
}

func TestSolve_EmptyTrajectoryRejected(t *testing.T) {
	_, err := speed.Solve(nil)
	assert.ErrorIs(t, err, speed.ErrEmptyTrajectory)
}

func TestSolve_VMinAboveVMaxRejected(t *testing.T) {
	samples := straightSamples(10)
	_, err := speed.Solve(samples, speed.WithVMin(200), speed.WithVMax(150))
	assert.ErrorIs(t, err, speed.ErrInvalidParameters)
}

func TestSolve_NonpositiveAccelerationsRejected(t *testing.T) {
	samples := straightSamples(10)
	_, err := speed.Solve(samples, speed.WithAMax(0))
	assert.ErrorIs(t, err, speed.ErrInvalidParameters)

	_, err = speed.Solve(samples, speed.WithDMax(-5))
	assert.ErrorIs(t, err, speed.ErrInvalidParameters)
}

func TestSolve_NonpositiveWindowRejected(t *testing.T) {
	samples := straightSamples(10)
	_, err := speed.Solve(samples, speed.WithWindowCM(0))
	assert.ErrorIs(t, err, speed.ErrInvalidParameters)
}

func TestSolve_DegenerateSingleSample(t *testing.T) {
	out, err := speed.Solve([]metrize.Sample{{ArcLength: 0}}, speed.WithVMin(7))
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, out)
}

func TestSolve_EndpointsEqualVMin(t *testing.T) {
	samples := straightSamples(300)
	out, err := speed.Solve(samples, speed.WithVMin(5), speed.WithVMax(150))
	require.NoError(t, err)
	assert.Equal(t, 5.0, out[0])
	assert.Equal(t, 5.0, out[len(out)-1])
}

func TestSolve_WithinBounds(t *testing.T) {
	samples := straightSamples(300)
	out, err := speed.Solve(samples, speed.WithVMin(5), speed.WithVMax(150))
	require.NoError(t, err)
	for i, v := range out {
		assert.GreaterOrEqual(t, v, 5.0, "sample %d below v_min", i)
		assert.LessOrEqual(t, v, 150.0, "sample %d above v_max", i)
	}
}

func TestSolve_ZeroCurvatureReachesVMaxAwayFromEndpoints(t *testing.T) {
	samples := straightSamples(300)
	out, err := speed.Solve(samples, speed.WithVMin(5), speed.WithVMax(150), speed.WithAMax(80), speed.WithDMax(120))
	require.NoError(t, err)
	assert.InDelta(t, 150.0, out[150], 1e-6)
}

func TestSolve_KinematicInequalitiesHold(t *testing.T) {
	samples := straightSamples(100)
	out, err := speed.Solve(samples, speed.WithVMin(5), speed.WithVMax(150), speed.WithAMax(80), speed.WithDMax(120))
	require.NoError(t, err)
	for i := 0; i < len(out)-1; i++ {
		ds := samples[i+1].ArcLength - samples[i].ArcLength
		assert.LessOrEqual(t, out[i+1]*out[i+1], out[i]*out[i]+2*80*ds+1e-6)
		assert.LessOrEqual(t, out[i]*out[i], out[i+1]*out[i+1]+2*120*ds+1e-6)
	}
}

func TestSolve_HighCurvatureLowersSpeedCap(t *testing.T) {
	samples := straightSamples(200)
	samples[100].Curvature = 40 // degrees/cm, a sharp turn
	out, err := speed.Solve(samples, speed.WithVMin(5), speed.WithVMax(150), speed.WithOmegaMax(1.5), speed.WithWindowCM(10))
	require.NoError(t, err)
	assert.Less(t, out[100], 150.0)
}
