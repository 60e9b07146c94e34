package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	easing "github.com/tphakala/go-easing"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file        *os.File
	decoder     *wav.Decoder
	rate        int
	channels    int
	bitDepth    int
	totalFrames int64
	format      *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	if format.NumChannels < 1 {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s reports %d channels", path, format.NumChannels)
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	// The fade-out position depends on the total length
	duration, err := decoder.Duration()
	if err != nil {
		_ = inputFile.Close()
		return nil, fmt.Errorf("failed to read WAV duration: %w", err)
	}
	totalFrames := int64(math.Round(duration.Seconds() * float64(format.SampleRate)))

	return &wavInputInfo{
		file:        inputFile,
		decoder:     decoder,
		rate:        format.SampleRate,
		channels:    format.NumChannels,
		bitDepth:    bitDepth,
		totalFrames: totalFrames,
		format:      format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// wavOutputWriter wraps the output file and encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
}

// createWAVOutput creates output file and encoder.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return nil, fmt.Errorf("unsupported bit depth: %d (signed PCM 16, 24 or 32 required)", bitDepth)
	}

	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
	}, nil
}

// Write encodes a buffer of interleaved samples.
func (w *wavOutputWriter) Write(buf *audio.IntBuffer) error {
	return w.encoder.Write(buf)
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// fadeEnvelope computes per-frame gain for a fade-in over the first
// inFrames and a mirrored fade-out over the last outFrames.
type fadeEnvelope struct {
	fn          easing.TimingFunction
	inFrames    int64
	outFrames   int64
	totalFrames int64
}

// newFadeEnvelope converts fade lengths to frames. Fades longer than the
// file are shortened to the file length.
func newFadeEnvelope(fn easing.TimingFunction, rate int, totalFrames int64, fadeIn, fadeOut time.Duration) *fadeEnvelope {
	toFrames := func(d time.Duration) int64 {
		frames := int64(math.Round(d.Seconds() * float64(rate)))
		return min(max(frames, 0), totalFrames)
	}
	return &fadeEnvelope{
		fn:          fn,
		inFrames:    toFrames(fadeIn),
		outFrames:   toFrames(fadeOut),
		totalFrames: totalFrames,
	}
}

// gain returns the amplitude factor for a frame index.
func (e *fadeEnvelope) gain(frame int64) float64 {
	g := 1.0
	if frame < e.inFrames {
		g *= easing.Evaluate(e.fn, float64(frame)/float64(e.inFrames))
	}
	if e.outFrames > 0 {
		remaining := e.totalFrames - 1 - frame
		if remaining < e.outFrames {
			g *= easing.Evaluate(e.fn, float64(remaining)/float64(e.outFrames))
		}
	}
	return g
}

// apply scales interleaved samples in place. startFrame is the index of
// the first frame in data.
func (e *fadeEnvelope) apply(data []int, channels int, startFrame int64, maxVal float64) {
	frames := len(data) / channels
	for i := range frames {
		g := e.gain(startFrame + int64(i))
		if g == 1 {
			continue
		}
		base := i * channels
		for ch := range channels {
			data[base+ch] = clampSample(math.Round(float64(data[base+ch])*g), maxVal)
		}
	}
}

// clampSample keeps overshooting curves within the sample range.
func clampSample(v, maxVal float64) int {
	if v > maxVal {
		return int(maxVal)
	}
	if v < -maxVal-1 {
		return int(-maxVal - 1)
	}
	return int(v)
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	return math.Exp2(float64(bitDepth-1)) - 1
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalFrames  int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalFrames int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalFrames: totalFrames,
		verbose:     verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentFrames int64) {
	if !p.verbose || p.totalFrames == 0 {
		return
	}

	progress := int(float64(currentFrames) / float64(p.totalFrames) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}

type fadeOptions struct {
	fadeIn  time.Duration
	fadeOut time.Duration
	easing  easing.TimingFunction
	verbose bool
}

type fadeStats struct {
	rate          int
	channels      int
	bitDepth      int
	frames        int64
	fadeInFrames  int64
	fadeOutFrames int64
}

// fadeWAV streams inputPath to outputPath applying the fade envelope.
func fadeWAV(inputPath, outputPath string, opts fadeOptions) (stats *fadeStats, err error) {
	input, err := openWAVInput(inputPath, opts.verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	// Close output, capturing close errors on success path (the encoder writes the header on close)
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	env := newFadeEnvelope(opts.easing, input.rate, input.totalFrames, opts.fadeIn, opts.fadeOut)
	maxVal := getMaxValue(input.bitDepth)

	buf := &audio.IntBuffer{
		Data:           make([]int, bufferSize*input.channels),
		Format:         input.format,
		SourceBitDepth: input.bitDepth,
	}

	stats = &fadeStats{
		rate:          input.rate,
		channels:      input.channels,
		bitDepth:      input.bitDepth,
		fadeInFrames:  env.inFrames,
		fadeOutFrames: env.outFrames,
	}
	progress := newProgressTracker(input.totalFrames, opts.verbose)

	for {
		n, err := input.decoder.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		// PCMBuffer reports samples, not frames
		buf.Data = buf.Data[:n]
		env.apply(buf.Data, input.channels, stats.frames, maxVal)

		if err := output.Write(buf); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		stats.frames += int64(n / input.channels)
		progress.reportIfNeeded(stats.frames)

		buf.Data = buf.Data[:cap(buf.Data)]
	}

	return stats, nil
}
