package easing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-easing/internal/testutil"
)

func TestNewAnimation_Validation(t *testing.T) {
	fn := NewPreset(Ease)

	tests := []struct {
		name     string
		duration time.Duration
		fn       TimingFunction
		to       float64
	}{
		{"zero duration", 0, fn, 100},
		{"negative duration", -time.Second, fn, 100},
		{"nil easing", time.Second, nil, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnimation(0, tt.to, tt.duration, tt.fn)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAnimation)
		})
	}
}

func TestAnimation_EndPoints(t *testing.T) {
	a, err := NewAnimation(200, -300, 400*time.Millisecond, NewPreset(EaseInOut))
	require.NoError(t, err)

	assert.Equal(t, -500.0, a.Distance)
	assert.Equal(t, 200.0, a.Position(0))
	assert.Equal(t, 200.0, a.Position(-time.Second))
	assert.Equal(t, -300.0, a.Position(400*time.Millisecond))
	assert.Equal(t, -300.0, a.Position(time.Hour))
	assert.False(t, a.Done(399*time.Millisecond))
	assert.True(t, a.Done(400*time.Millisecond))
}

func TestAnimation_ProgressFollowsEasing(t *testing.T) {
	fn := NewPreset(Ease)
	a, err := NewAnimation(0, 1000, time.Second, fn)
	require.NoError(t, err)

	assert.InDelta(t, 802.4, a.Position(500*time.Millisecond), 1)
	assert.InDelta(t, Evaluate(fn, 0.25), a.Progress(250*time.Millisecond), testutil.DefaultTolerance)
}

func TestAnimation_RelativeDuration(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     time.Duration
	}{
		{"one unit of distance", 1000, 500 * time.Millisecond},
		{"double distance", 2000, time.Second},
		{"negative distance", -500, 250 * time.Millisecond},
		{"zero distance", 0, 0},
		{"tiny distance", 1e-12, 1},
		{"saturates on overflow", 1e15, time.Duration(math.MaxInt64)},
		{"saturates on negative overflow", -1e300, time.Duration(math.MaxInt64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Animation{
				Distance: tt.distance,
				Duration: 500 * time.Millisecond,
				Relative: true,
				Easing:   NewPreset(Linear),
			}
			assert.Equal(t, tt.want, a.TotalDuration())
		})
	}
}

func TestAnimation_LongRelativeScrollNotDone(t *testing.T) {
	a := &Animation{
		Distance: 1e15,
		Duration: time.Second,
		Relative: true,
		Easing:   NewPreset(Linear),
	}
	require.NoError(t, a.Validate())

	assert.False(t, a.Done(time.Millisecond))
	assert.False(t, a.Done(24*time.Hour))
	assert.Less(t, a.Position(time.Nanosecond), 1.0)
	assert.Less(t, a.Position(time.Hour), 1e-3*a.To())
}

func TestAnimation_ValidateEndOverflow(t *testing.T) {
	tests := []struct {
		name     string
		from     float64
		distance float64
	}{
		{"positive overflow", 1e308, 1e308},
		{"negative overflow", -1e308, -1e308},
		{"infinite distance", 0, math.Inf(1)},
		{"NaN start", math.NaN(), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Animation{From: tt.from, Distance: tt.distance, Duration: time.Second, Easing: NewPreset(Ease)}
			assert.ErrorIs(t, a.Validate(), ErrInvalidAnimation)
		})
	}

	_, err := NewAnimation(-1e308, 1e308, time.Second, NewPreset(Ease))
	assert.ErrorIs(t, err, ErrInvalidAnimation)
}

func TestAnimation_ZeroDistanceRelativeIsDone(t *testing.T) {
	a := &Animation{From: 42, Duration: time.Second, Relative: true, Easing: NewPreset(Ease)}
	require.NoError(t, a.Validate())
	assert.True(t, a.Done(0))
	assert.Equal(t, 42.0, a.Position(0))
	assert.Equal(t, 1.0, a.Progress(0))
}

func TestAnimation_Frames(t *testing.T) {
	a, err := NewAnimation(10, 110, 100*time.Millisecond, NewPreset(Linear))
	require.NoError(t, err)

	frames, err := a.Frames(30 * time.Millisecond)
	require.NoError(t, err)

	// 0, 30, 60, 90 ms plus the end frame
	require.Len(t, frames, 5)
	assert.InDeltaSlice(t, []float64{10, 40, 70, 100, 110}, frames, 1e-9)
	assert.Equal(t, 110.0, frames[len(frames)-1])
}

func TestAnimation_FramesExactMultiple(t *testing.T) {
	a, err := NewAnimation(0, 1, 100*time.Millisecond, NewPreset(EaseOut))
	require.NoError(t, err)

	frames, err := a.Frames(25 * time.Millisecond)
	require.NoError(t, err)
	require.Len(t, frames, 5)
	assert.Equal(t, 0.0, frames[0])
	assert.Equal(t, 1.0, frames[4])
	testutil.AssertMonotonic(t, frames)
}

func TestAnimation_FramesErrors(t *testing.T) {
	a, err := NewAnimation(0, 1, time.Second, NewPreset(Ease))
	require.NoError(t, err)

	_, err = a.Frames(0)
	assert.ErrorIs(t, err, ErrInvalidAnimation)

	_, err = a.Frames(time.Nanosecond)
	assert.ErrorIs(t, err, ErrInvalidAnimation)

	bad := &Animation{Duration: time.Second}
	_, err = bad.Frames(time.Millisecond)
	assert.ErrorIs(t, err, ErrInvalidAnimation)

	longest := &Animation{Distance: 1, Duration: time.Duration(math.MaxInt64), Easing: NewPreset(Ease)}
	_, err = longest.Frames(time.Nanosecond)
	assert.ErrorIs(t, err, ErrInvalidAnimation)
}

func TestAnimation_FramesFloat32(t *testing.T) {
	a, err := NewAnimation(-50, 950, 250*time.Millisecond, NewPreset(EaseInOut))
	require.NoError(t, err)

	f64, err := a.Frames(16 * time.Millisecond)
	require.NoError(t, err)
	f32, err := a.FramesFloat32(16 * time.Millisecond)
	require.NoError(t, err)

	require.Len(t, f32, len(f64))
	for i := range f64 {
		assert.InDelta(t, f64[i], float64(f32[i]), 1e-3, "frame %d", i)
	}
	assert.Equal(t, float32(-50), f32[0])
	assert.Equal(t, float32(950), f32[len(f32)-1])
}

func TestAnimation_FramesFloat32OutOfRange(t *testing.T) {
	a := &Animation{From: 0, Distance: 1e39, Duration: time.Second, Easing: NewPreset(Linear)}
	require.NoError(t, a.Validate())

	_, err := a.FramesFloat32(time.Millisecond)
	assert.ErrorIs(t, err, ErrInvalidAnimation)
}
