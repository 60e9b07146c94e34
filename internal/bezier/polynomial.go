// Package bezier implements the numerical core of cubic-bezier timing
// functions: evaluating one axis of a curve anchored at (0,0) and (1,1),
// and inverting the x axis to find the curve parameter for a given input.
package bezier

// Coefficients holds the expanded cubic polynomial for one axis of a
// timing curve whose end points are fixed at 0 and 1.
//
//	B(t) = ((a*t + b)*t + c)*t
type Coefficients struct {
	a, b, c float64
}

// NewCoefficients expands the two inner control coordinates p1 and p2 of an
// axis into polynomial form.
func NewCoefficients(p1, p2 float64) Coefficients {
	return Coefficients{
		a: 1.0 - cubicFactor*p2 + cubicFactor*p1,
		b: cubicFactor*p2 - bFactor*p1,
		c: cubicFactor * p1,
	}
}

// Eval returns B(t) using Horner's scheme.
func (p Coefficients) Eval(t float64) float64 {
	return ((p.a*t+p.b)*t + p.c) * t
}

// Slope returns dB/dt.
func (p Coefficients) Slope(t float64) float64 {
	return cubicFactor*p.a*t*t + squareFactor*p.b*t + p.c
}
