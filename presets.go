package easing

import (
	"fmt"
	"strconv"
	"strings"
)

// Preset enumerates the CSS keyword easings.
type Preset int

const (
	// Linear progresses at a constant rate: cubic-bezier(0, 0, 1, 1).
	Linear Preset = iota

	// Ease starts quickly and slows towards the end: cubic-bezier(0.25, 0.1, 0.25, 1).
	// This is the CSS default.
	Ease

	// EaseIn starts slowly: cubic-bezier(0.42, 0, 1, 1).
	EaseIn

	// EaseInOut starts and ends slowly: cubic-bezier(0.42, 0, 0.58, 1).
	EaseInOut

	// EaseOut ends slowly: cubic-bezier(0, 0, 0.58, 1).
	EaseOut
)

var presetNames = [...]string{
	Linear:    "linear",
	Ease:      "ease",
	EaseIn:    "ease-in",
	EaseInOut: "ease-in-out",
	EaseOut:   "ease-out",
}

// Presets returns all presets in declaration order.
func Presets() []Preset {
	return []Preset{Linear, Ease, EaseIn, EaseInOut, EaseOut}
}

// String returns the CSS keyword for the preset.
func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return "Preset(" + strconv.Itoa(int(p)) + ")"
	}
	return presetNames[p]
}

// GetPresetCurve returns the control points for a preset.
// Unknown presets fall back to Ease.
func GetPresetCurve(preset Preset) Curve {
	switch preset {
	case Linear:
		return Curve{X1: 0, Y1: 0, X2: 1, Y2: 1}
	case EaseIn:
		return Curve{X1: easeInX1, Y1: 0, X2: 1, Y2: 1}
	case EaseInOut:
		return Curve{X1: easeInX1, Y1: 0, X2: easeOutX2, Y2: 1}
	case EaseOut:
		return Curve{X1: 0, Y1: 0, X2: easeOutX2, Y2: 1}
	default:
		return Curve{X1: easeX1, Y1: easeY1, X2: easeX2, Y2: 1}
	}
}

// NewPreset returns the timing function for a preset.
// Preset curves are always valid.
func NewPreset(preset Preset) TimingFunction {
	fn, err := New(&Config{Curve: GetPresetCurve(preset)})
	if err != nil {
		panic(fmt.Sprintf("easing: preset %v: %v", preset, err))
	}
	return fn
}

// ParsePreset parses a preset name. Matching ignores case, and the
// separators "-" and "_" are optional ("easeInOut", "ease_in_out" and
// "ease-in-out" are equivalent).
func ParsePreset(s string) (Preset, error) {
	switch normalizeName(s) {
	case "linear":
		return Linear, nil
	case "ease":
		return Ease, nil
	case "easein":
		return EaseIn, nil
	case "easeinout":
		return EaseInOut, nil
	case "easeout":
		return EaseOut, nil
	default:
		return Ease, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
}

// ParseCurve parses a curve from a preset name, a comma separated list
// "x1,y1,x2,y2", or CSS notation "cubic-bezier(x1, y1, x2, y2)".
// The returned curve is validated.
func ParseCurve(s string) (Curve, error) {
	trimmed := strings.TrimSpace(s)

	if preset, err := ParsePreset(trimmed); err == nil {
		return GetPresetCurve(preset), nil
	}

	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, cssFunctionPrefix) {
		if !strings.HasSuffix(lower, ")") {
			return Curve{}, fmt.Errorf("%w: unterminated %q", ErrInvalidControlPoint, s)
		}
		trimmed = trimmed[len(cssFunctionPrefix) : len(trimmed)-1]
	}

	fields := strings.Split(trimmed, ",")
	if len(fields) != controlCoordinates {
		return Curve{}, fmt.Errorf("%w: expected a preset or %d coordinates, got %q",
			ErrInvalidControlPoint, controlCoordinates, s)
	}

	var v [controlCoordinates]float64
	for i, f := range fields {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Curve{}, fmt.Errorf("%w: coordinate %d: %w", ErrInvalidControlPoint, i+1, err)
		}
		v[i] = parsed
	}

	c := Curve{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}
	if err := c.Validate(); err != nil {
		return Curve{}, err
	}
	return c, nil
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}
