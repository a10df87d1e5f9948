// Command siginfo prints level and spectrum measurements of generated
// test signals.
//
// Usage:
//
//	siginfo [flags] [signal-name ...]
//
// Without arguments it prints info for all known signal types.
//
// Examples:
//
//	siginfo sine
//	siginfo -rate 44100 -freq 997 sine noise
//	siginfo -samples 4096 -peaks 3 quadrature
//	siginfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-sigmath/dsp/core"
	"github.com/cwbudde/algo-sigmath/dsp/signal"
	"github.com/cwbudde/algo-sigmath/dsp/spectrum"
	"github.com/cwbudde/algo-sigmath/dsp/view"
)

var registry = []string{"sine", "noise", "impulse", "quadrature"}

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	freq := flag.Float64("freq", 1000, "tone frequency in Hz (sine, quadrature)")
	amp := flag.Float64("amp", 1, "signal amplitude")
	samples := flag.Int("samples", 1024, "signal length in samples")
	seed := flag.Int64("seed", 1, "random seed for noise")
	peaks := flag.Int("peaks", 1, "number of spectrum peaks to report")
	list := flag.Bool("list", false, "list available signal names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: siginfo [flags] [signal-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints level and spectrum measurements of generated test signals.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all signal types.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  siginfo sine noise\n")
		fmt.Fprintf(os.Stderr, "  siginfo -rate 44100 -freq 997 sine\n")
		fmt.Fprintf(os.Stderr, "  siginfo -samples 4096 -peaks 3 quadrature\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = registry
	}

	gen := signal.NewGenerator(
		signal.WithSampleRate(*rate),
		signal.WithSeed(*seed),
	)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Signal\tSamples\tRMS\tRMS [dB]\tPeak\tCrest [dB]\tPeak Bin\tPeak Freq [Hz]\n")
	fmt.Fprintf(tw, "------\t-------\t---\t--------\t----\t----------\t--------\t--------------\n")

	ok := true
	for _, name := range names {
		if err := printRow(tw, gen, strings.ToLower(strings.TrimSpace(name)), *freq, *amp, *samples, *peaks); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", name, err)
			ok = false
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		ok = false
	}
	if !ok {
		os.Exit(1)
	}
}

func printList() {
	names := append([]string(nil), registry...)
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func printRow(tw *tabwriter.Writer, gen *signal.Generator, name string, freq, amp float64, samples, peaks int) error {
	var (
		data []float64
		bins []complex128
		err  error
	)

	switch name {
	case "sine":
		data, err = gen.Sine(freq, amp, samples)
		if err == nil {
			bins, err = analyzeReal(data)
		}
	case "noise":
		data, err = gen.WhiteNoise(amp, samples)
		if err == nil {
			bins, err = analyzeReal(data)
		}
	case "impulse":
		data, err = gen.Impulse(samples)
		if err == nil {
			bins, err = analyzeReal(data)
		}
	case "quadrature":
		var interleaved []float64
		interleaved, err = gen.Quadrature(freq, amp, samples)
		if err == nil {
			data = interleaved
			bins, err = analyzeInterleaved(interleaved)
		}
	default:
		return fmt.Errorf("unknown signal (use -list to see available)")
	}
	if err != nil {
		return err
	}

	rms := core.RMS(data)
	peak := core.Peak(data)
	crest := 0.0
	if rms > 0 {
		crest = core.LinearToDB(peak / rms)
	}

	peakBin := spectrum.PeakBin(bins)
	binHz := gen.SampleRate() / float64(len(bins))

	fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.2f\t%.6f\t%.2f\t%d\t%.1f\n",
		name,
		len(data),
		rms,
		core.LinearToDB(rms),
		peak,
		crest,
		peakBin,
		float64(peakBin)*binHz,
	)

	if peaks > 1 {
		printTopPeaks(tw, bins, binHz, peaks)
	}
	return nil
}

// analyzeReal packs a real signal into complex bins and transforms it.
func analyzeReal(data []float64) ([]complex128, error) {
	n := algofft.NextPowerOfTwo(len(data))
	in := make([]complex128, n)
	for i, v := range data {
		in[i] = complex(v, 0)
	}
	return transform(in)
}

// analyzeInterleaved transforms packed I/Q data through a complex view,
// copying only if zero padding is needed.
func analyzeInterleaved(interleaved []float64) ([]complex128, error) {
	src := view.AsComplex[complex128](interleaved)
	n := algofft.NextPowerOfTwo(len(src))
	if n != len(src) {
		padded := make([]complex128, n)
		copy(padded, src)
		src = padded
	}
	return transform(src)
}

func transform(in []complex128) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(in))
	if err != nil {
		return nil, fmt.Errorf("create FFT plan: %w", err)
	}
	out := make([]complex128, len(in))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("forward FFT: %w", err)
	}
	return out, nil
}

func printTopPeaks(tw *tabwriter.Writer, bins []complex128, binHz float64, count int) {
	mags := spectrum.Magnitude(bins)

	type binMag struct {
		bin int
		mag float64
	}
	ranked := make([]binMag, len(mags))
	for i, m := range mags {
		ranked[i] = binMag{bin: i, mag: m}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].mag > ranked[j].mag })

	if count > len(ranked) {
		count = len(ranked)
	}
	for i := 0; i < count; i++ {
		r := ranked[i]
		db := math.Inf(-1)
		if r.mag > 0 {
			db = core.LinearToDB(r.mag)
		}
		fmt.Fprintf(tw, "  peak %d\t\t\t\t\t%.2f\t%d\t%.1f\n", i+1, db, r.bin, float64(r.bin)*binHz)
	}
}
