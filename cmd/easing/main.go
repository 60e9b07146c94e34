// Command easing prints and analyzes cubic-bezier timing curves.
//
// Usage:
//
//	easing -curve ease-in-out -steps 20
//	easing -curve "cubic-bezier(0.68, -0.55, 0.265, 1.55)" -analyze
//	easing -demo
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	easing "github.com/tphakala/go-easing"
	"github.com/tphakala/simd/cpu"
)

func main() {
	var (
		curveSpec = flag.String("curve", defaultCurve, "Preset (linear, ease, ease-in, ease-in-out, ease-out), x1,y1,x2,y2 or cubic-bezier(...)")
		steps     = flag.Int("steps", defaultSteps, "Number of intervals to print over [0, 1]")
		analyze   = flag.Bool("analyze", false, "Print shape statistics")
		float32T  = flag.Bool("float32", false, "Use a float32 sample table")
		demo      = flag.Bool("demo", false, "Run a demonstration")
	)
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	if *steps < minSteps || *steps > maxSteps {
		log.Fatalf("steps must be in [%d, %d], got %d", minSteps, maxSteps, *steps)
	}

	curve, err := easing.ParseCurve(*curveSpec)
	if err != nil {
		log.Fatalf("Invalid curve: %v", err)
	}

	config := easing.Config{Curve: curve}
	if *float32T {
		config.Precision = easing.PrecisionFloat32
	}

	fn, err := easing.New(&config)
	if err != nil {
		log.Fatalf("Failed to create timing function: %v", err)
	}

	fmt.Printf("Timing function created:\n")
	fmt.Printf("  Curve: %s\n", curve)
	fmt.Printf("  Linear: %v\n", curve.IsLinear())
	fmt.Printf("  Sample table: %s\n", precisionName(config.Precision))
	fmt.Printf("  SIMD: %s\n", cpu.Info())

	samples, err := easing.Sample(fn, *steps+1)
	if err != nil {
		log.Fatalf("Sampling failed: %v", err)
	}

	fmt.Println()
	printTable(samples)

	if *analyze {
		a, err := easing.Analyze(curve)
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}
		fmt.Println()
		printAnalysis(a)
	}
}

func precisionName(p easing.Precision) string {
	if p == easing.PrecisionFloat32 {
		return "float32"
	}
	return "float64"
}

// printTable prints x, y and a bar plot for each sample.
func printTable(samples []float64) {
	fmt.Printf("  %-6s  %-9s\n", "x", "y")
	last := len(samples) - 1
	for i, y := range samples {
		x := float64(i) / float64(last)
		fmt.Printf("  %-6.3f  %-9.5f %s\n", x, y, plotRow(y))
	}
}

// plotRow renders y as a marker on a fixed-width axis. Values outside
// [-plotMargin, 1+plotMargin] are pinned to the edges.
func plotRow(y float64) string {
	span := 1 + 2*plotMargin
	cells := int(math.Round(plotWidth * span))
	pos := int(math.Round((y + plotMargin) / span * float64(cells)))
	pos = min(max(pos, 0), cells)

	zero := int(math.Round(plotMargin / span * float64(cells)))
	one := int(math.Round((1 + plotMargin) / span * float64(cells)))

	row := []rune(strings.Repeat(" ", cells+1))
	row[zero] = plotAxisChar
	row[one] = plotAxisChar
	row[pos] = plotMarker
	return string(row)
}

func printAnalysis(a easing.Analysis) {
	fmt.Printf("Analysis:\n")
	fmt.Printf("  Output range: [%.5f, %.5f]\n", a.MinY, a.MaxY)
	fmt.Printf("  Overshoot: %.5f\n", a.Overshoot)
	fmt.Printf("  Undershoot: %.5f\n", a.Undershoot)
	fmt.Printf("  Max slope: %.4f\n", a.MaxSlope)
	fmt.Printf("  Mean progress: %.5f (linear = 0.5)\n", a.MeanProgress)
}

func runDemo() {
	fmt.Println("=== Go Easing Library Demo ===")

	// Demo 1: Presets at fixed inputs
	fmt.Println("1. Presets")
	fmt.Println("----------")

	inputs := []float64{0.1, 0.25, 0.5, 0.75, 0.9}
	fmt.Printf("  %-12s", "")
	for _, x := range inputs {
		fmt.Printf(" x=%-6.2f", x)
	}
	fmt.Println()

	for _, p := range easing.Presets() {
		fn := easing.NewPreset(p)
		fmt.Printf("  %-12s", p)
		for _, x := range inputs {
			fmt.Printf(" %-8.4f", easing.Evaluate(fn, x))
		}
		fmt.Println()
	}

	// Demo 2: Shape comparison
	fmt.Println("\n2. Shape Statistics")
	fmt.Println("-------------------")

	curves := []struct {
		name  string
		curve easing.Curve
	}{
		{"ease", easing.GetPresetCurve(easing.Ease)},
		{"ease-in-out", easing.GetPresetCurve(easing.EaseInOut)},
		{"back", easing.Curve{X1: 0.68, Y1: -0.55, X2: 0.265, Y2: 1.55}},
	}

	for _, c := range curves {
		a, err := easing.Analyze(c.curve)
		if err != nil {
			fmt.Printf("  %s: Error - %v\n", c.name, err)
			continue
		}
		fmt.Printf("  %s: mean %.3f, max slope %.2f, overshoot %.3f\n",
			c.name, a.MeanProgress, a.MaxSlope, a.Overshoot)
	}

	// Demo 3: Smooth scroll frames
	fmt.Println("\n3. Scroll Animation")
	fmt.Println("-------------------")

	anim, err := easing.NewAnimation(0, demoDistance, demoDurationMs*time.Millisecond, easing.NewPreset(easing.Ease))
	if err != nil {
		fmt.Printf("  Error - %v\n", err)
		return
	}
	frames, err := anim.Frames(demoFrameMs * time.Millisecond)
	if err != nil {
		fmt.Printf("  Error - %v\n", err)
		return
	}
	for i, pos := range frames {
		fmt.Printf("  %4d ms: %7.1f px\n", min(i*demoFrameMs, demoDurationMs), pos)
	}

	relative := easing.Animation{
		Distance: demoRelativeDist,
		Duration: demoRelativeMs * time.Millisecond,
		Relative: true,
		Easing:   easing.NewPreset(easing.EaseInOut),
	}
	fmt.Printf("  Relative: %.0f px at %d ms per 1000 px takes %v\n",
		relative.Distance, demoRelativeMs, relative.TotalDuration())

	fmt.Println("\n=== Demo Complete ===")
}
