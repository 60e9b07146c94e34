package easing

import (
	"fmt"

	"github.com/tphakala/go-easing/internal/bezier"
	"github.com/tphakala/go-easing/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// analysisSamples is the grid size used by Analyze.
const analysisSamples = 1001

// Sample evaluates fn at n evenly spaced inputs covering [0, 1], both end
// points included.
func Sample(fn TimingFunction, n int) ([]float64, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: timing function is nil", ErrInvalidConfig)
	}
	if n < minSamples {
		return nil, fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidConfig, minSamples, n)
	}

	out := floats.Span(make([]float64, n), 0, 1)
	out[n-1] = 1
	for i, x := range out {
		out[i] = fn(x)
	}
	return out, nil
}

// SampleFloat32 is like Sample but returns float32 values, e.g. for gain
// envelopes applied to float32 audio.
func SampleFloat32(fn TimingFunction, n int) ([]float32, error) {
	samples, err := Sample(fn, n)
	if err != nil {
		return nil, err
	}

	out := make([]float32, len(samples))
	for i, v := range samples {
		out[i] = float32(v)
	}
	return out, nil
}

// Path returns n points of the curve itself, taken at evenly spaced curve
// parameters, as interleaved x, y pairs: [x0, y0, x1, y1, ...].
func Path(c Curve, n int) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if n < minSamples {
		return nil, fmt.Errorf("%w: need at least %d points, got %d", ErrInvalidConfig, minSamples, n)
	}

	s := bezier.NewSolver[float64](c.X1, c.Y1, c.X2, c.Y2)
	ts := floats.Span(make([]float64, n), 0, 1)
	ts[n-1] = 1
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, t := range ts {
		xs[i] = s.X(t)
		ys[i] = s.Y(t)
	}

	out := make([]float64, pointDimension*n)
	simdops.Float64Ops().Interleave2(out, xs, ys)
	return out, nil
}

// Analysis summarizes the shape of a timing curve.
type Analysis struct {
	// MinY and MaxY are the extrema of the curve's y axis.
	MinY, MaxY float64

	// Overshoot is how far the output exceeds 1, or 0.
	Overshoot float64

	// Undershoot is how far the output drops below 0, or 0.
	Undershoot float64

	// MaxSlope is the steepest output change per unit of input, taken from
	// the curve's derivative.
	MaxSlope float64

	// MeanProgress is the average output over the input range, i.e. the
	// area under the timing function. Linear is 0.5.
	MeanProgress float64
}

// Analyze computes shape statistics for a curve.
func Analyze(c Curve) (Analysis, error) {
	fn, err := New(&Config{Curve: c})
	if err != nil {
		return Analysis{}, err
	}

	ys, err := Sample(fn, analysisSamples)
	if err != nil {
		return Analysis{}, err
	}

	last := len(ys) - 1
	step := 1.0 / float64(last)

	// Trapezoidal rule
	mean := (simdops.Float64Ops().Sum(ys) - (ys[0]+ys[last])/2) * step

	// dy/dx = By'(t) / Bx'(t); points where Bx' vanishes are skipped
	s := bezier.NewSolver[float64](c.X1, c.Y1, c.X2, c.Y2)
	maxSlope := 0.0
	for _, t := range floats.Span(make([]float64, analysisSamples), 0, 1) {
		if dx := s.SlopeX(t); dx > 0 {
			maxSlope = max(maxSlope, s.SlopeY(t)/dx)
		}
	}

	a := Analysis{
		MinY:         floats.Min(ys),
		MaxY:         floats.Max(ys),
		MaxSlope:     maxSlope,
		MeanProgress: mean,
	}
	if a.MaxY > 1 {
		a.Overshoot = a.MaxY - 1
	}
	if a.MinY < 0 {
		a.Undershoot = -a.MinY
	}
	return a, nil
}
