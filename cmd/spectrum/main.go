// Command spectrum prints the strongest frequency components of a WAV file.
//
// Usage:
//
//	spectrum input.wav
//	spectrum -n 16384 -top 10 -window blackman input.wav
//	spectrum -demo
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"slices"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	numkit "github.com/tphakala/go-numkit"
	"github.com/tphakala/go-numkit/fft"
	"github.com/tphakala/go-numkit/filter"
)

func main() {
	var (
		size    = flag.Int("n", defaultFFTSize, "FFT size (rounded up to a power of two)")
		top     = flag.Int("top", defaultTopBins, "Number of peaks to list")
		window  = flag.String("window", defaultWindow, "Analysis window: rectangular, hamming, hann, blackman, kaiser")
		channel = flag.Int("channel", defaultChannel, "Channel to analyze")
		demo    = flag.Bool("demo", false, "Run a demonstration on a synthetic signal")
	)
	flag.Parse()

	win, err := filter.ParseWindow(*window)
	if err != nil {
		log.Fatal(err)
	}

	if *demo {
		if err := runDemo(*size, *top, win); err != nil {
			log.Fatal(err)
		}
		return
	}

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	samples, rate, err := readChannel(args[0], *channel, fft.NextPowerOfTwo(*size))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: channel %d, %d samples at %d Hz\n", args[0], *channel, len(samples), rate)
	if err := printPeaks(samples, float64(rate), *top, win); err != nil {
		log.Fatal(err)
	}
}

// readChannel returns up to n samples of one channel, normalized to [-1, 1].
func readChannel(path string, channel, n int) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}
	format := dec.Format()
	if channel < 0 || channel >= format.NumChannels {
		return nil, 0, fmt.Errorf("channel %d out of range (file has %d)", channel, format.NumChannels)
	}

	scale := 1 / maxValue(int(dec.BitDepth))
	buf := &audio.IntBuffer{Data: make([]int, n*format.NumChannels), Format: format}
	out := make([]float64, 0, n)
	for len(out) < n {
		read, err := dec.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("failed to read audio data: %w", err)
		}
		frames := read / format.NumChannels
		if frames == 0 {
			break
		}
		for i := 0; i < frames && len(out) < n; i++ {
			out = append(out, float64(buf.Data[i*format.NumChannels+channel])*scale)
		}
	}
	if len(out) == 0 {
		return nil, 0, fmt.Errorf("no audio data in %s", path)
	}
	return out, format.SampleRate, nil
}

// maxValue returns the full-scale sample value for the bit depth.
func maxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// printPeaks windows x, transforms it and prints the top strongest bins.
func printPeaks(x []float64, fs float64, top int, win filter.Window) error {
	tapered := filter.ApplyWindow(x, win, 0)
	spectrum, err := fft.FFTReal(fft.ZeroPad(tapered))
	if err != nil {
		return err
	}
	n := len(spectrum)
	mag := fft.Magnitude(spectrum)
	bins := fft.FrequencyBins(n, fs)

	peak := fft.PeakBin(mag, true)
	fmt.Printf("FFT size: %d (%.2f Hz per bin, %.1f KB spectrum)\n",
		n, fs/float64(n), float64(n*16)/bytesPerKilobyte)
	if peak >= 0 {
		fmt.Printf("Peak: %.1f Hz\n", bins[peak])
	}

	ref := mag[max(peak, 0)]
	fmt.Printf("\n%10s %12s %10s\n", "Bin", "Freq (Hz)", "Level (dB)")
	for _, k := range topBins(mag, top) {
		fmt.Printf("%10d %12.1f %10.1f\n", k, bins[k], relativeDB(mag[k], ref))
	}
	return nil
}

// topBins returns the indices of the k largest local maxima among bins
// 1..n/2, strongest first.
func topBins(mag []float64, k int) []int {
	hi := len(mag) / 2
	var peaks []int
	for i := 1; i <= hi && i < len(mag); i++ {
		left := mag[i-1]
		right := 0.0
		if i+1 < len(mag) {
			right = mag[i+1]
		}
		if mag[i] > left && mag[i] >= right {
			peaks = append(peaks, i)
		}
	}
	slices.SortStableFunc(peaks, func(a, b int) int {
		switch {
		case mag[a] > mag[b]:
			return -1
		case mag[a] < mag[b]:
			return 1
		default:
			return 0
		}
	})
	if len(peaks) > k {
		peaks = peaks[:max(k, 0)]
	}
	return peaks
}

// relativeDB returns 20·log10(m/ref), floored at -120 dB.
func relativeDB(m, ref float64) float64 {
	if ref <= 0 {
		return minMagnitudeDB
	}
	return max(filter.MagnitudeDB(m/ref), minMagnitudeDB)
}

// generateTestSignal mixes a strong low tone and a weaker high tone.
func generateTestSignal(samples int, sampleRate float64) []float64 {
	signal := make([]float64, samples)
	wLow := 2 * math.Pi * demoToneLow / sampleRate
	wHigh := 2 * math.Pi * demoToneHigh / sampleRate
	for i := range signal {
		signal[i] = math.Sin(wLow*float64(i)) + demoAmpHigh*math.Sin(wHigh*float64(i))
	}
	return signal
}

func runDemo(size, top int, win filter.Window) error {
	fmt.Println("=== Spectrum Demo ===")
	n := fft.NextPowerOfTwo(size)
	x := generateTestSignal(n, demoSampleRate)

	fmt.Printf("\n1. Two tones: %.0f Hz and %.0f Hz at %.0f Hz\n", demoToneLow, demoToneHigh, demoSampleRate)
	fmt.Println("--------------------------------------------")
	if err := printPeaks(x, demoSampleRate, top, win); err != nil {
		return err
	}

	fmt.Printf("\n2. After a 4th-order Butterworth low-pass at %.0f Hz\n", demoCutoff)
	fmt.Println("--------------------------------------------")
	y, err := numkit.LowPassSignal(x, demoCutoff, demoSampleRate)
	if err != nil {
		return err
	}
	if err := printPeaks(y, demoSampleRate, top, win); err != nil {
		return err
	}

	fmt.Println("\n=== Demo Complete ===")
	return nil
}
