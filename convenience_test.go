package easing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-easing/internal/testutil"
)

func TestSample(t *testing.T) {
	fn := NewPreset(EaseIn)
	samples, err := Sample(fn, 11)
	require.NoError(t, err)
	require.Len(t, samples, 11)

	assert.Equal(t, 0.0, samples[0])
	assert.Equal(t, 1.0, samples[10])
	assert.InDelta(t, Evaluate(fn, 0.5), samples[5], testutil.DefaultTolerance)
	testutil.AssertMonotonic(t, samples)
}

func TestSample_Errors(t *testing.T) {
	_, err := Sample(nil, 10)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Sample(NewPreset(Ease), 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSampleFloat32(t *testing.T) {
	fn := NewPreset(Ease)
	s64, err := Sample(fn, 33)
	require.NoError(t, err)
	s32, err := SampleFloat32(fn, 33)
	require.NoError(t, err)

	require.Len(t, s32, len(s64))
	for i := range s64 {
		assert.InDelta(t, s64[i], float64(s32[i]), testutil.Float32Tolerance)
	}
}

func TestPath(t *testing.T) {
	c := GetPresetCurve(EaseInOut)
	points, err := Path(c, 5)
	require.NoError(t, err)
	require.Len(t, points, 10)

	// End points of the curve
	assert.InDelta(t, 0.0, points[0], testutil.DefaultTolerance)
	assert.InDelta(t, 0.0, points[1], testutil.DefaultTolerance)
	assert.InDelta(t, 1.0, points[8], testutil.DefaultTolerance)
	assert.InDelta(t, 1.0, points[9], testutil.DefaultTolerance)

	// Symmetric curve passes through the centre at t = 0.5
	assert.InDelta(t, 0.5, points[4], testutil.DefaultTolerance)
	assert.InDelta(t, 0.5, points[5], testutil.DefaultTolerance)

	// Each point lies on the timing function
	fn := NewPreset(EaseInOut)
	for i := 0; i < len(points); i += 2 {
		assert.InDelta(t, points[i+1], Evaluate(fn, points[i]), 1e-6)
	}
}

func TestPath_Errors(t *testing.T) {
	_, err := Path(Curve{X1: -1, X2: 1, Y2: 1}, 10)
	assert.ErrorIs(t, err, ErrInvalidControlPoint)

	_, err = Path(GetPresetCurve(Ease), 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestAnalyze(t *testing.T) {
	t.Run("linear", func(t *testing.T) {
		a, err := Analyze(GetPresetCurve(Linear))
		require.NoError(t, err)
		assert.InDelta(t, 0.5, a.MeanProgress, 1e-9)
		assert.InDelta(t, 1.0, a.MaxSlope, 1e-9)
		assert.Zero(t, a.Overshoot)
		assert.Zero(t, a.Undershoot)
		assert.Equal(t, 0.0, a.MinY)
		assert.Equal(t, 1.0, a.MaxY)
	})

	t.Run("ease-in-out peak slope", func(t *testing.T) {
		// dy/dx at t = 0.5 is 1.5 / 0.87
		a, err := Analyze(GetPresetCurve(EaseInOut))
		require.NoError(t, err)
		assert.InDelta(t, 1/0.58, a.MaxSlope, 1e-9)
	})

	t.Run("ease-in is below linear", func(t *testing.T) {
		a, err := Analyze(GetPresetCurve(EaseIn))
		require.NoError(t, err)
		testutil.AssertInRange(t, a.MeanProgress, 0, 0.5)
	})

	t.Run("ease-out is above linear", func(t *testing.T) {
		a, err := Analyze(GetPresetCurve(EaseOut))
		require.NoError(t, err)
		testutil.AssertInRange(t, a.MeanProgress, 0.5, 1)
	})

	t.Run("overshoot", func(t *testing.T) {
		a, err := Analyze(Curve{X1: 0.68, Y1: -0.55, X2: 0.265, Y2: 1.55})
		require.NoError(t, err)
		assert.Greater(t, a.Overshoot, 0.05)
		assert.Greater(t, a.Undershoot, 0.05)
		assert.Greater(t, a.MaxSlope, 1.0)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Analyze(Curve{X1: 2})
		assert.ErrorIs(t, err, ErrInvalidControlPoint)
	})
}
