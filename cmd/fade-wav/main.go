// Command fade-wav applies an eased fade-in and fade-out to a WAV file.
//
// Usage:
//
//	fade-wav -in 2 -out 3 input.wav output.wav
//	fade-wav -in 0.5 -curve ease-out input.wav output.wav
//	fade-wav -out 4 -curve "cubic-bezier(0.4, 0, 0.2, 1)" input.wav output.wav
//
// The fade-out is the mirror of the fade-in: the same curve is evaluated
// on the time remaining until the end of the file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	easing "github.com/tphakala/go-easing"
)

const (
	// Buffer size for processing (number of frames per chunk)
	bufferSize = 16384

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// WAV audio format tag for integer PCM
	wavFormatPCM = 1

	// CLI defaults
	defaultFadeIn   = 1.0
	defaultFadeOut  = 1.0
	defaultCurve    = "ease-in-out"
	minRequiredArgs = 2

	// Progress reporting
	percentScale     = 100
	progressInterval = 10 // Print progress every N%
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	fadeIn := flag.Float64("in", defaultFadeIn, "Fade-in length in seconds (0 disables)")
	fadeOut := flag.Float64("out", defaultFadeOut, "Fade-out length in seconds (0 disables)")
	curve := flag.String("curve", defaultCurve, "Preset name, x1,y1,x2,y2 or cubic-bezier(...)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -in 2 -out 3 song.wav faded.wav\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -in 0 -out 5 -curve ease-in song.wav outro.wav\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	if *fadeIn < 0 || *fadeOut < 0 {
		return fmt.Errorf("fade lengths must not be negative")
	}

	c, err := easing.ParseCurve(*curve)
	if err != nil {
		return fmt.Errorf("invalid -curve: %w", err)
	}
	fn, err := easing.New(&easing.Config{Curve: c})
	if err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := args[1]

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Curve: %s", c)
		log.Printf("Fade in: %.3fs, fade out: %.3fs", *fadeIn, *fadeOut)
	}

	opts := fadeOptions{
		fadeIn:  secondsToDuration(*fadeIn),
		fadeOut: secondsToDuration(*fadeOut),
		easing:  fn,
		verbose: *verbose,
	}

	start := time.Now()
	stats, err := fadeWAV(inputPath, outputPath, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Faded %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit\n", stats.rate, stats.channels, stats.bitDepth)
	fmt.Printf("  %d frames (fade in %d, fade out %d)\n", stats.frames, stats.fadeInFrames, stats.fadeOutFrames)
	fmt.Printf("  Duration: %.2fs\n", elapsed.Seconds())

	return nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
