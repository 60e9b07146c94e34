package bezier

import "math"

// Float is the type constraint for sample table storage.
type Float interface {
	float32 | float64
}

// Solver evaluates a cubic-bezier timing curve. The sample table may be
// stored as float32 to halve its footprint; all arithmetic is float64.
//
// A Solver is immutable after construction and safe for concurrent use.
type Solver[F Float] struct {
	x, y    Coefficients
	samples [sampleTableSize]F
}

// Stats reports how a single inversion was resolved.
type Stats struct {
	// Newton is the number of Newton-Raphson steps taken.
	Newton int

	// Subdivision is the number of binary subdivision steps taken.
	Subdivision int
}

// NewSolver precomputes the polynomial coefficients and seed table for the
// curve through (0,0), (x1,y1), (x2,y2), (1,1). Control points are not
// validated here.
func NewSolver[F Float](x1, y1, x2, y2 float64) *Solver[F] {
	s := &Solver[F]{
		x: NewCoefficients(x1, x2),
		y: NewCoefficients(y1, y2),
	}
	for i := range sampleTableSize {
		s.samples[i] = F(s.x.Eval(float64(i) * sampleStepSize))
	}
	return s
}

// Evaluate returns the curve's y value at input progress x.
// The end points 0 and 1 are returned exactly.
func (s *Solver[F]) Evaluate(x float64) float64 {
	if x == 0 || x == 1 {
		return x
	}
	t, _ := s.solve(x)
	return s.y.Eval(t)
}

// TForX returns the curve parameter t for which Bx(t) == x.
func (s *Solver[F]) TForX(x float64) float64 {
	t, _ := s.solve(x)
	return t
}

// Iterations reports the iteration counts used to invert x.
func (s *Solver[F]) Iterations(x float64) Stats {
	_, st := s.solve(x)
	return st
}

// X returns Bx(t).
func (s *Solver[F]) X(t float64) float64 { return s.x.Eval(t) }

// Y returns By(t).
func (s *Solver[F]) Y(t float64) float64 { return s.y.Eval(t) }

// SlopeX returns dBx/dt.
func (s *Solver[F]) SlopeX(t float64) float64 { return s.x.Slope(t) }

// SlopeY returns dBy/dt.
func (s *Solver[F]) SlopeY(t float64) float64 { return s.y.Slope(t) }

// Samples returns a copy of the seed table.
func (s *Solver[F]) Samples() []F {
	out := make([]F, sampleTableSize)
	copy(out, s.samples[:])
	return out
}

// solve inverts the x polynomial:
//  1. locate the table interval containing x and interpolate a guess
//  2. refine with Newton-Raphson when the slope is usable
//  3. otherwise accept the guess (zero slope) or bisect the interval
func (s *Solver[F]) solve(x float64) (float64, Stats) {
	var st Stats

	intervalStart := 0.0
	current := 1
	last := sampleTableSize - 1
	for ; current != last && float64(s.samples[current]) <= x; current++ {
		intervalStart += sampleStepSize
	}
	current--

	lo := float64(s.samples[current])
	hi := float64(s.samples[current+1])
	dist := 0.0
	if hi != lo {
		dist = (x - lo) / (hi - lo)
	}
	guess := intervalStart + dist*sampleStepSize

	slope := s.x.Slope(guess)
	switch {
	case slope >= newtonMinSlope:
		return s.newtonRaphson(x, guess, &st), st
	case slope == 0:
		return guess, st
	default:
		return s.binarySubdivide(x, intervalStart, intervalStart+sampleStepSize, &st), st
	}
}

func (s *Solver[F]) newtonRaphson(x, t float64, st *Stats) float64 {
	for range newtonIterations {
		slope := s.x.Slope(t)
		if slope == 0 {
			return t
		}
		st.Newton++
		t -= (s.x.Eval(t) - x) / slope
	}
	return t
}

func (s *Solver[F]) binarySubdivide(x, a, b float64, st *Stats) float64 {
	var t float64
	for {
		t = a + (b-a)/halfDivisor
		residual := s.x.Eval(t) - x
		if residual > 0 {
			b = t
		} else {
			a = t
		}
		st.Subdivision++
		if math.Abs(residual) <= subdivisionEpsilon || st.Subdivision >= subdivisionMaxIter {
			return t
		}
	}
}
