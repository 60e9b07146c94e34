package easing

import (
	"fmt"
	"math"
	"time"

	"github.com/tphakala/go-easing/internal/simdops"
)

// maxFrames bounds the table produced by Animation.Frames.
const maxFrames = 1 << 20

// Animation moves a scalar (a scroll offset, a gain, a coordinate) from
// From by Distance over a duration, shaped by a timing function.
//
// An Animation is a plain value: it does not track time itself. Callers
// pass the elapsed time from their own clock or frame loop.
type Animation struct {
	// From is the start position.
	From float64

	// Distance is the signed amount to travel.
	Distance float64

	// Duration is the total animation time. When Relative is set it is the
	// time taken per 1000 units of distance instead.
	Duration time.Duration

	// Relative scales Duration by the travelled distance.
	Relative bool

	// Easing shapes progress over time.
	Easing TimingFunction
}

// NewAnimation creates a validated animation from from to to.
func NewAnimation(from, to float64, duration time.Duration, fn TimingFunction) (*Animation, error) {
	a := &Animation{
		From:     from,
		Distance: to - from,
		Duration: duration,
		Easing:   fn,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks if the animation parameters are valid.
func (a *Animation) Validate() error {
	if a.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidAnimation)
	}

	if a.Easing == nil {
		return fmt.Errorf("%w: easing is nil", ErrInvalidAnimation)
	}

	if !isFinite(a.From) || !isFinite(a.Distance) {
		return fmt.Errorf("%w: positions must be finite", ErrInvalidAnimation)
	}

	if !isFinite(a.To()) {
		return fmt.Errorf("%w: end position overflows", ErrInvalidAnimation)
	}

	return nil
}

// To returns the end position.
func (a *Animation) To() float64 {
	return a.From + a.Distance
}

// TotalDuration returns the time the animation takes. A relative animation
// over zero distance takes no time; one too long to represent saturates at
// the largest Duration.
func (a *Animation) TotalDuration() time.Duration {
	if !a.Relative {
		return a.Duration
	}

	if a.Distance == 0 {
		return 0
	}

	total := float64(a.Duration) * math.Abs(a.Distance) / relativeDistanceUnit
	switch {
	case total >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case total < 1:
		return 1
	}
	return time.Duration(total)
}

// Progress returns the eased progress at elapsed time.
func (a *Animation) Progress(elapsed time.Duration) float64 {
	total := a.TotalDuration()
	if elapsed >= total {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return Evaluate(a.Easing, float64(elapsed)/float64(total))
}

// Position returns the position at elapsed time. Once the animation is
// done the result is exactly To().
func (a *Animation) Position(elapsed time.Duration) float64 {
	if a.Done(elapsed) {
		return a.To()
	}
	return a.From + a.Distance*a.Progress(elapsed)
}

// Done reports whether the animation has finished at elapsed time.
func (a *Animation) Done(elapsed time.Duration) bool {
	return elapsed >= a.TotalDuration()
}

// Frames returns the positions at 0, interval, 2*interval, ... up to and
// including the end. The last frame is always exactly To().
func (a *Animation) Frames(interval time.Duration) ([]float64, error) {
	return frames[float64](a, interval)
}

// FramesFloat32 is like Frames but returns float32 positions, e.g. for
// vertex buffers or float32 audio gain tables.
func (a *Animation) FramesFloat32(interval time.Duration) ([]float32, error) {
	if math.Abs(a.From) > math.MaxFloat32 || math.Abs(a.Distance) > math.MaxFloat32 ||
		math.Abs(a.To()) > math.MaxFloat32 {
		return nil, fmt.Errorf("%w: positions exceed float32 range", ErrInvalidAnimation)
	}
	return frames[float32](a, interval)
}

func frames[F simdops.Float](a *Animation, interval time.Duration) ([]F, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if interval <= 0 {
		return nil, fmt.Errorf("%w: frame interval must be positive", ErrInvalidAnimation)
	}

	total := a.TotalDuration()
	steps := int64(total / interval)
	if total%interval != 0 {
		steps++
	}
	if steps >= maxFrames {
		return nil, fmt.Errorf("%w: %d intervals exceed limit of %d frames", ErrInvalidAnimation, steps, maxFrames)
	}

	n := int(steps) + 1
	progress := make([]F, n)
	for i := range n - 1 {
		progress[i] = F(a.Progress(time.Duration(i) * interval))
	}
	progress[n-1] = 1

	out := make([]F, n)
	simdops.For[F]().Scale(out, progress, F(a.Distance))
	from := F(a.From)
	for i := range out {
		out[i] += from
	}
	out[n-1] = F(a.To())

	return out, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
