package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	numkit "github.com/tphakala/go-numkit"
	"github.com/tphakala/go-numkit/filter"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file         *os.File
	decoder      *wav.Decoder
	rate         int
	channels     int
	bitDepth     int
	totalSamples int64
	format       *audio.Format
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
	if decoder.WavAudioFormat == wavFormatFloat {
		_ = inputFile.Close()
		return nil, fmt.Errorf("unsupported WAV format (integer PCM only): %s", path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	// Duration is only used for progress reporting
	duration, err := decoder.Duration()
	if err != nil {
		duration = 0
	}
	totalSamples := int64(duration.Seconds() * float64(format.SampleRate))

	return &wavInputInfo{
		file:         inputFile,
		decoder:      decoder,
		rate:         format.SampleRate,
		channels:     format.NumChannels,
		bitDepth:     bitDepth,
		totalSamples: totalSamples,
		format:       format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// Finish closes the writer and reports the first of runErr and the close
// error. On any error the partially written file is removed.
func (w *wavOutputWriter) Finish(runErr error) error {
	closeErr := w.Close()
	if runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		if rmErr := os.Remove(w.path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			log.Printf("Warning: could not remove partial output %s: %v", w.path, rmErr)
		}
	}
	return runErr
}

// createChannelFilters builds one filter per channel at the file's sample rate.
func createChannelFilters[F filter.Float](
	base numkit.Config,
	sampleRate, channels int,
	parallel bool,
) (*numkit.MultiChannel[F], error) {
	config := base
	config.SampleRate = float64(sampleRate)
	config.Channels = channels
	config.EnableParallel = parallel

	mc, err := numkit.NewMultiChannel[F](&config)
	if err != nil {
		return nil, fmt.Errorf("failed to create filters: %w", err)
	}
	return mc, nil
}

// wavOutputWriter wraps the output file and its encoder.
type wavOutputWriter struct {
	path    string
	file    *os.File
	encoder *wav.Encoder
}

// createWAVOutput creates the output file and encoder.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return nil, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}

	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		path:    path,
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
	}, nil
}

// WriteSamples writes the first n interleaved samples of buf.
func (w *wavOutputWriter) WriteSamples(buf *audio.IntBuffer, n int) error {
	full := buf.Data
	buf.Data = full[:n]
	err := w.encoder.Write(buf)
	buf.Data = full
	return err
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// filterBuffers holds all preallocated buffers for filtering.
type filterBuffers[F filter.Float] struct {
	inBuf       *audio.IntBuffer
	outBuf      *audio.IntBuffer
	channelBufs [][]F
	outputBufs  [][]F
	inViews     [][]F
	outViews    [][]F
	invMaxVal   float64
	maxVal      float64
}

// newFilterBuffers creates and preallocates all processing buffers.
func newFilterBuffers[F filter.Float](channels, bitDepth int, format *audio.Format) *filterBuffers[F] {
	inBuf := &audio.IntBuffer{
		Data:           make([]int, bufferSize*channels),
		Format:         format,
		SourceBitDepth: bitDepth,
	}
	outBuf := &audio.IntBuffer{
		Data:           make([]int, bufferSize*channels),
		Format:         format,
		SourceBitDepth: bitDepth,
	}

	channelBufs := make([][]F, channels)
	outputBufs := make([][]F, channels)
	for ch := range channels {
		channelBufs[ch] = make([]F, bufferSize)
		outputBufs[ch] = make([]F, bufferSize)
	}

	maxVal := getMaxValue(bitDepth)

	return &filterBuffers[F]{
		inBuf:       inBuf,
		outBuf:      outBuf,
		channelBufs: channelBufs,
		outputBufs:  outputBufs,
		inViews:     make([][]F, channels),
		outViews:    make([][]F, channels),
		invMaxVal:   1.0 / maxVal,
		maxVal:      maxVal,
	}
}

// views returns per-channel input and output slices trimmed to frames.
func (b *filterBuffers[F]) views(frames int) (in, out [][]F) {
	for ch := range b.channelBufs {
		b.inViews[ch] = b.channelBufs[ch][:frames]
		b.outViews[ch] = b.outputBufs[ch][:frames]
	}
	return b.inViews, b.outViews
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalSamples int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalSamples int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalSamples: totalSamples,
		verbose:      verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentSamples int64) {
	if !p.verbose || p.totalSamples == 0 {
		return
	}

	progress := int(float64(currentSamples) / float64(p.totalSamples) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}
