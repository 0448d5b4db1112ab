// Command filter-wav applies a digital filter to every channel of a WAV file.
//
// Usage:
//
//	filter-wav -type butter-lp -fc 4000 input.wav output.wav
//	filter-wav -type bandpass -fc 300 -fc2 3400 -order 128 speech.wav band.wav
//	filter-wav -type notch -fc 50 -q 30 hum.wav clean.wav
//	filter-wav -type lowpass -window kaiser -beta 10 -fast in.wav out.wav   # float32 precision
//
// Parallel processing is enabled by default for stereo and multichannel files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	numkit "github.com/tphakala/go-numkit"
	"github.com/tphakala/go-numkit/filter"
)

const (
	// Buffer size for processing (frames per chunk)
	bufferSize = 65536

	// Channel count constants for fast paths
	monoChannels   = 1
	stereoChannels = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16         = 32767.0
	maxInt24         = 8388607.0
	maxInt32         = 2147483647.0
	progressInterval = 10 // Print progress every N%

	// CLI defaults
	defaultKind     = "butter-lp"
	defaultCutoffHz = 1000.0
	minRequiredArgs = 2
	percentScale    = 100

	// WAV audio format tags
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// options collects the parsed command line.
type options struct {
	config   numkit.Config
	fast     bool
	verbose  bool
	parallel bool
}

func run() error {
	kind := flag.String("type", defaultKind, "Filter type: "+strings.Join(numkit.FilterKinds(), ", "))
	cutoff := flag.Float64("fc", defaultCutoffHz, "Cutoff or center frequency in Hz")
	cutoff2 := flag.Float64("fc2", 0, "Upper band edge in Hz (bandpass, bandstop)")
	order := flag.Int("order", 0, "Filter order (0 selects the default for the type)")
	q := flag.Float64("q", 0, "Biquad quality factor (0 selects 1/sqrt(2))")
	ripple := flag.Float64("ripple", 0, "Chebyshev passband ripple in dB (0 selects 1 dB)")
	window := flag.String("window", "hamming", "FIR window: rectangular, hamming, hann, blackman, kaiser")
	beta := flag.Float64("beta", 0, "Kaiser window beta (0 selects 8.6)")
	fast := flag.Bool("fast", false, "Use float32 precision (sufficient for 16-bit audio)")
	parallel := flag.Bool("parallel", true, "Enable parallel channel processing (faster for stereo/multichannel)")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -type butter-lp -fc 4000 in.wav out.wav         # 4th-order Butterworth\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -type notch -fc 50 -q 30 hum.wav clean.wav       # Remove mains hum\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -type bandpass -fc 300 -fc2 3400 in.wav out.wav  # Telephone band\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	filterKind, err := numkit.ParseFilterKind(*kind)
	if err != nil {
		return err
	}
	win, err := filter.ParseWindow(*window)
	if err != nil {
		return err
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	inputPath := args[0]
	outputPath := args[1]

	opts := options{
		config: numkit.Config{
			Kind:     filterKind,
			Cutoff:   *cutoff,
			Cutoff2:  *cutoff2,
			Order:    *order,
			Q:        *q,
			RippleDB: *ripple,
			Window:   win,
			Beta:     *beta,
		},
		fast:     *fast,
		verbose:  *verbose,
		parallel: *parallel,
	}

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Filter: %s at %g Hz", filterKind, *cutoff)
		if *fast {
			log.Printf("Precision: float32 (fast mode)")
		} else {
			log.Printf("Precision: float64 (high precision)")
		}
		if *parallel {
			log.Printf("Parallel: enabled (concurrent channel processing)")
		} else {
			log.Printf("Parallel: disabled (sequential processing)")
		}
	}

	start := time.Now()
	var stats *filterStats
	if *fast {
		stats, err = filterWAVGeneric[float32](inputPath, outputPath, opts)
	} else {
		stats, err = filterWAVGeneric[float64](inputPath, outputPath, opts)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Filtered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %s, %d Hz (%d channels, %d-bit)\n",
		stats.kind, stats.sampleRate, stats.channels, stats.bitDepth)
	fmt.Printf("  %s order %d, %d section(s), %s\n",
		stats.info.Structure, stats.info.Order, stats.info.Sections, stats.info.Stability)
	fmt.Printf("  %d samples\n", stats.samples)
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
			secs, float64(stats.samples)/float64(stats.sampleRate)/secs)
	}

	return nil
}

type filterStats struct {
	kind       numkit.FilterKind
	sampleRate int
	channels   int
	bitDepth   int
	samples    int64
	info       numkit.Info
}

func filterWAVGeneric[F filter.Float](inputPath, outputPath string, opts options) (stats *filterStats, err error) {
	// 1. Open and validate input
	input, err := openWAVInput(inputPath, opts.verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	// 2. Build one filter per channel
	mc, err := createChannelFilters[F](opts.config, input.rate, input.channels, opts.parallel)
	if err != nil {
		return nil, err
	}
	info := numkit.GetInfo(mc.Channel(0))
	if info.Stability == filter.StabilityUnstable {
		return nil, fmt.Errorf("refusing to run unstable %s filter", opts.config.Kind)
	}
	if opts.verbose {
		log.Printf("Design: %s order %d, %s", info.Structure, info.Order, info.Stability)
		log.Printf("SIMD: %s", info.SIMD)
	}

	// 3. Create output writer
	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	// The encoder patches the header on close; a failed run leaves no file behind.
	defer func() {
		if err = output.Finish(err); err != nil {
			stats = nil
		}
	}()

	// 4. Initialize processing buffers
	buffers := newFilterBuffers[F](input.channels, input.bitDepth, input.format)

	// 5. Initialize tracking
	stats = &filterStats{
		kind:       opts.config.Kind,
		sampleRate: input.rate,
		channels:   input.channels,
		bitDepth:   input.bitDepth,
		info:       info,
	}
	progress := newProgressTracker(input.totalSamples, opts.verbose)

	// 6. Main processing loop
	for {
		n, err := input.decoder.PCMBuffer(buffers.inBuf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		frames := n / input.channels
		if frames == 0 {
			break
		}
		stats.samples += int64(frames)

		deinterleaveInto(buffers.inBuf.Data, buffers.channelBufs, input.channels, frames, buffers.invMaxVal)

		in, out := buffers.views(frames)
		if err := mc.ProcessMultiTo(out, in); err != nil {
			return nil, fmt.Errorf("filtering failed: %w", err)
		}

		outputLen := interleaveInto(out, buffers.outBuf.Data, buffers.maxVal)
		if err := output.WriteSamples(buffers.outBuf, outputLen); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		progress.reportIfNeeded(stats.samples)
	}

	return stats, nil
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// clampUnit limits a sample to [-1, 1].
func clampUnit(s float64) float64 {
	return max(-1.0, min(1.0, s))
}

// deinterleaveInto converts interleaved int samples into preallocated per-channel buffers.
func deinterleaveInto[F filter.Float](data []int, channelBufs [][]F, numChannels, samplesPerChannel int, invMaxVal float64) {
	// Fast path for mono
	if numChannels == monoChannels {
		buf := channelBufs[0]
		for i := range samplesPerChannel {
			buf[i] = F(float64(data[i]) * invMaxVal)
		}
		return
	}

	// Fast path for stereo
	if numChannels == stereoChannels {
		buf0, buf1 := channelBufs[0], channelBufs[1]
		for i := range samplesPerChannel {
			idx := i * stereoChannels
			buf0[i] = F(float64(data[idx]) * invMaxVal)
			buf1[i] = F(float64(data[idx+1]) * invMaxVal)
		}
		return
	}

	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			channelBufs[ch][i] = F(float64(data[base+ch]) * invMaxVal)
		}
	}
}

// interleaveInto converts per-channel float slices into a preallocated int buffer.
// Returns the number of elements written, or 0 if dst is too short.
func interleaveInto[F filter.Float](channels [][]F, dst []int, maxVal float64) int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return 0
	}

	numChannels := len(channels)
	samplesPerChannel := len(channels[0])
	totalLen := samplesPerChannel * numChannels
	if len(dst) < totalLen {
		return 0
	}

	// Fast path for mono
	if numChannels == monoChannels {
		ch := channels[0]
		for i := range samplesPerChannel {
			dst[i] = int(clampUnit(float64(ch[i])) * maxVal)
		}
		return totalLen
	}

	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			dst[base+ch] = int(clampUnit(float64(channels[ch][i])) * maxVal)
		}
	}
	return totalLen
}
