package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-sigmath/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{complex(3, 4), complex(0, -2)}

	fmt.Println(spectrum.Magnitude(bins))

	// Output:
	// [5 2]
}

func ExampleMagnitudeInterleaved() {
	// Packed [re, im, re, im] data straight off a wire or file; no
	// unpacking copy is made.
	interleaved := []float64{3, 4, 5, 12}

	fmt.Println(spectrum.MagnitudeInterleaved(interleaved))

	// Output:
	// [5 13]
}
