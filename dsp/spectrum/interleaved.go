package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-sigmath/dsp/view"
)

// MagnitudeInterleaved returns |X[k]| for packed [re, im, re, im, ...] bins.
//
// The buffer is reinterpreted as complex values in place; nothing is
// unpacked or copied before the magnitude kernel runs. Panics if
// len(interleaved) is odd.
func MagnitudeInterleaved(interleaved []float64) []float64 {
	return Magnitude(view.AsComplex[complex128](interleaved))
}

// PowerInterleaved returns |X[k]|^2 for packed [re, im, re, im, ...] bins.
// Panics if len(interleaved) is odd.
func PowerInterleaved(interleaved []float64) []float64 {
	return Power(view.AsComplex[complex128](interleaved))
}

// ForwardInterleaved computes the forward FFT of packed interleaved samples
// directly through a complex view, avoiding the usual unpack-and-widen copy.
// dst must have len(interleaved)/2 elements and the plan must match that
// size. Panics if len(interleaved) is odd.
func ForwardInterleaved(plan *algofft.Plan[complex128], dst []complex128, interleaved []float64) error {
	src := view.AsComplex[complex128](interleaved)
	if len(dst) != len(src) {
		return fmt.Errorf("spectrum: dst length %d does not match %d interleaved pairs", len(dst), len(src))
	}
	return plan.Forward(dst, src)
}

// InverseInterleaved computes the inverse FFT of src into a packed
// interleaved destination buffer. interleaved must have 2*len(src)
// elements. Panics if len(interleaved) is odd.
func InverseInterleaved(plan *algofft.Plan[complex128], interleaved []float64, src []complex128) error {
	dst := view.AsComplex[complex128](interleaved)
	if len(dst) != len(src) {
		return fmt.Errorf("spectrum: interleaved length %d does not match %d source bins", 2*len(dst), len(src))
	}
	return plan.Inverse(dst, src)
}
