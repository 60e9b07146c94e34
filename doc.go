// Package easing provides cubic-bezier timing functions in pure Go.
//
// A timing function maps linear elapsed progress in [0, 1] to eased
// progress, exactly as CSS cubic-bezier(x1, y1, x2, y2) does for
// transitions and animations. Typical consumers are animation loops,
// smooth scrolling and audio fades.
//
// # Quick Start
//
// Use a named preset:
//
//	fn := easing.NewPreset(easing.EaseInOut)
//	y := easing.Evaluate(fn, 0.25)
//
// Or custom control points:
//
//	fn, err := easing.CubicBezier(0.68, -0.55, 0.265, 1.55)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Presets
//
//   - [Linear]: cubic-bezier(0, 0, 1, 1)
//   - [Ease]: cubic-bezier(0.25, 0.1, 0.25, 1)
//   - [EaseIn]: cubic-bezier(0.42, 0, 1, 1)
//   - [EaseInOut]: cubic-bezier(0.42, 0, 0.58, 1)
//   - [EaseOut]: cubic-bezier(0, 0, 0.58, 1)
//
// # Control Points
//
// Both x coordinates must lie in [0, 1] so the curve is a function of x;
// construction fails with [ErrInvalidControlPoint] otherwise. The y
// coordinates are unconstrained, which allows overshooting ("back" or
// "bounce") easings whose output leaves [0, 1].
//
// # Evaluation
//
// Evaluation inverts the curve's x polynomial: an 11-entry table sampled at
// t = 0, 0.1, ..., 1 seeds the search, Newton-Raphson refines the guess in
// at most 4 steps, and binary subdivision (at most 10 steps) takes over
// where the curve is too flat for Newton. Every evaluation terminates in a
// bounded number of steps. Inputs 0 and 1 map exactly to 0 and 1, and
// [Evaluate] clamps inputs outside [0, 1].
//
// The sample table may be stored as float32 via [Config.Precision].
//
// # Animations
//
// [Animation] drives a scalar from a start position over a distance and
// duration. With Relative set, the duration is the time per 1000 units of
// distance, so long scrolls take proportionally longer.
//
//	anim, _ := easing.NewAnimation(0, 1200, 500*time.Millisecond, easing.NewPreset(easing.Ease))
//	frames, _ := anim.Frames(16 * time.Millisecond)
//
// # Thread Safety
//
// Timing functions are immutable and safe for concurrent use by multiple
// goroutines without synchronization.
package easing
