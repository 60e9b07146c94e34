package easing

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-easing/internal/bezier"
)

// TimingFunction maps a normalized input progress in [0, 1] to an output
// progress. It holds no mutable state and is safe for concurrent use.
type TimingFunction func(x float64) float64

// Curve holds the two inner control points of a cubic-bezier timing curve,
// as in CSS cubic-bezier(x1, y1, x2, y2). The outer points are fixed at
// (0,0) and (1,1).
type Curve struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Precision selects the storage type of the solver's sample table.
type Precision int

const (
	// PrecisionFloat64 stores the sample table in double precision.
	PrecisionFloat64 Precision = iota

	// PrecisionFloat32 stores the sample table as float32. Output differs
	// from PrecisionFloat64 only by rounding.
	PrecisionFloat32
)

// Config holds timing function configuration.
type Config struct {
	// Curve defines the control points.
	Curve Curve

	// Precision selects the sample table storage type.
	Precision Precision
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid easing configuration")

	// ErrInvalidControlPoint indicates an x control coordinate outside [0, 1]
	// or a non-finite coordinate.
	ErrInvalidControlPoint = errors.New("invalid control point")

	// ErrUnknownPreset indicates an unrecognized preset name.
	ErrUnknownPreset = errors.New("unknown easing preset")

	// ErrInvalidAnimation indicates invalid animation parameters.
	ErrInvalidAnimation = errors.New("invalid animation")
)

// Validate checks that the curve is a valid timing function: both x
// coordinates must lie in [0, 1]. Y coordinates may leave that range to
// produce overshoot.
func (c Curve) Validate() error {
	for _, v := range []float64{c.X1, c.Y1, c.X2, c.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: coordinates must be finite", ErrInvalidControlPoint)
		}
	}

	if c.X1 < 0 || c.X1 > 1 {
		return fmt.Errorf("%w: x1=%v must be in [0, 1]", ErrInvalidControlPoint, c.X1)
	}

	if c.X2 < 0 || c.X2 > 1 {
		return fmt.Errorf("%w: x2=%v must be in [0, 1]", ErrInvalidControlPoint, c.X2)
	}

	return nil
}

// IsLinear reports whether the curve is the identity line.
func (c Curve) IsLinear() bool {
	return c.X1 == c.Y1 && c.X2 == c.Y2
}

// String formats the curve in CSS notation.
func (c Curve) String() string {
	return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", c.X1, c.Y1, c.X2, c.Y2)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Precision != PrecisionFloat64 && c.Precision != PrecisionFloat32 {
		return fmt.Errorf("%w: unknown precision %d", ErrInvalidConfig, c.Precision)
	}
	return c.Curve.Validate()
}

// New creates a timing function for the configured curve.
//
// Linear curves (x1 == y1 and x2 == y2) return the identity function
// without building a solver.
func New(config *Config) (TimingFunction, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := config.Curve
	if c.IsLinear() {
		return identity, nil
	}

	if config.Precision == PrecisionFloat32 {
		return bezier.NewSolver[float32](c.X1, c.Y1, c.X2, c.Y2).Evaluate, nil
	}
	return bezier.NewSolver[float64](c.X1, c.Y1, c.X2, c.Y2).Evaluate, nil
}

// CubicBezier creates a double precision timing function from control
// points, equivalent to CSS cubic-bezier(x1, y1, x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) (TimingFunction, error) {
	return New(&Config{Curve: Curve{X1: x1, Y1: y1, X2: x2, Y2: y2}})
}

// MustCubicBezier is like CubicBezier but panics on invalid control points.
func MustCubicBezier(x1, y1, x2, y2 float64) TimingFunction {
	fn, err := CubicBezier(x1, y1, x2, y2)
	if err != nil {
		panic(err)
	}
	return fn
}

// Evaluate applies fn to x. Inputs outside [0, 1] are clamped, so the
// result for x < 0 is fn(0) == 0 and for x > 1 is fn(1) == 1.
// NaN propagates.
func Evaluate(fn TimingFunction, x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	return fn(clamp01(x))
}

func identity(x float64) float64 {
	return x
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
