// Command analyze-filter prints the frequency response and stability of a
// filter design.
//
// Usage:
//
//	analyze-filter -type butter-lp -fc 1000 -fs 48000 -order 6
//	analyze-filter -type cheby-lp -fc 2000 -ripple 0.5 -rows 32
//	analyze-filter -type notch -fc 60 -q 20 -points 4096
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	numkit "github.com/tphakala/go-numkit"
	"github.com/tphakala/go-numkit/filter"
)

const (
	// Design defaults
	defaultKind       = "butter-lp"
	defaultCutoff     = 1000.0
	defaultSampleRate = 48000.0

	// Display defaults
	defaultPoints = 1024 // Response evaluation points in [0, fs/2)
	defaultRows   = 24   // Table rows printed

	// Reference levels in dB
	cornerLevelDB = -3.0103 // Half-power level
	stopLevelDB   = -40.0
)

func main() {
	kind := flag.String("type", defaultKind, "Filter type: "+strings.Join(numkit.FilterKinds(), ", "))
	fc := flag.Float64("fc", defaultCutoff, "Cutoff or center frequency in Hz")
	fc2 := flag.Float64("fc2", 0, "Upper band edge in Hz (bandpass, bandstop)")
	fs := flag.Float64("fs", defaultSampleRate, "Sample rate in Hz")
	order := flag.Int("order", 0, "Filter order (0 selects the default for the type)")
	q := flag.Float64("q", 0, "Biquad quality factor")
	ripple := flag.Float64("ripple", 0, "Chebyshev passband ripple in dB")
	window := flag.String("window", "hamming", "FIR window")
	points := flag.Int("points", defaultPoints, "Number of response points")
	rows := flag.Int("rows", defaultRows, "Number of table rows to print")
	flag.Parse()

	filterKind, err := numkit.ParseFilterKind(*kind)
	if err != nil {
		log.Fatal(err)
	}
	win, err := filter.ParseWindow(*window)
	if err != nil {
		log.Fatal(err)
	}

	config := numkit.Config{
		Kind:       filterKind,
		SampleRate: *fs,
		Cutoff:     *fc,
		Cutoff2:    *fc2,
		Order:      *order,
		Q:          *q,
		RippleDB:   *ripple,
		Window:     win,
	}
	f, err := numkit.NewFilter[float64](&config)
	if err != nil {
		log.Fatalf("Failed to create filter: %v", err)
	}

	info := numkit.GetInfo(f)
	fmt.Printf("=== %s at %g Hz (fs = %g Hz) ===\n", filterKind, *fc, *fs)
	fmt.Printf("Structure: %s\n", info.Structure)
	fmt.Printf("Order: %d\n", info.Order)
	if info.Sections > 0 {
		fmt.Printf("Sections: %d\n", info.Sections)
	}
	if info.GroupDelay > 0 {
		fmt.Printf("Group delay: %.1f samples (%.3f ms)\n", info.GroupDelay, info.GroupDelay/(*fs)*1000)
	}
	fmt.Printf("Stability: %s\n", info.Stability)
	fmt.Printf("SIMD: %s\n\n", info.SIMD)

	resp := filter.ComputeResponse(f, *fs, *points)
	db := make([]float64, len(resp.Magnitude))
	for i, m := range resp.Magnitude {
		db[i] = filter.MagnitudeDB(m)
	}

	fmt.Printf("DC gain: %.6f (%.2f dB)\n", resp.Magnitude[0], db[0])
	if f3, ok := firstCrossing(resp.Frequencies, db, db[0]+cornerLevelDB); ok {
		fmt.Printf("-3 dB point: %.1f Hz\n", f3)
	}
	if f40, ok := firstCrossing(resp.Frequencies, db, db[0]+stopLevelDB); ok {
		fmt.Printf("-40 dB point: %.1f Hz\n", f40)
	}

	fmt.Printf("\n%12s %12s %12s\n", "Freq (Hz)", "Mag (dB)", "Phase (deg)")
	for _, i := range tableRows(len(db), *rows) {
		fmt.Printf("%12.1f %12.2f %12.1f\n", resp.Frequencies[i], db[i], resp.Phase[i]*180/math.Pi)
	}
}

// firstCrossing returns the frequency where db first moves from one side of
// level to the other, interpolated linearly between grid points.
func firstCrossing(freqs, db []float64, level float64) (float64, bool) {
	for i := 1; i < len(db); i++ {
		a, b := db[i-1]-level, db[i]-level
		if a == 0 {
			return freqs[i-1], true
		}
		if (a > 0) != (b > 0) {
			t := a / (a - b)
			return freqs[i-1] + t*(freqs[i]-freqs[i-1]), true
		}
	}
	return 0, false
}

// tableRows picks up to rows evenly spaced indices in [0, n).
func tableRows(n, rows int) []int {
	if rows <= 0 || n == 0 {
		return nil
	}
	rows = min(rows, n)
	out := make([]int, rows)
	for r := range rows {
		out[r] = r * n / rows
	}
	return out
}
