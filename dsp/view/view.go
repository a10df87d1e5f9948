package view

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-sigmath/dsp/core"
)

// Complex constrains the complex types an interleaved buffer can be viewed
// as.
type Complex interface {
	~complex64 | ~complex128
}

// A complex value must occupy exactly two adjacent reals of the matching
// width, or every conversion below is meaningless.
var (
	_ [unsafe.Sizeof(complex64(0))]byte  = [2 * unsafe.Sizeof(float32(0))]byte{}
	_ [unsafe.Sizeof(complex128(0))]byte = [2 * unsafe.Sizeof(float64(0))]byte{}
)

// AsComplex views a buffer of N interleaved reals [re0, im0, re1, im1, ...]
// as a buffer of N/2 complex values aliasing the same memory. Element i of
// the result packs data[2i] as its real part and data[2i+1] as its
// imaginary part.
//
// The complex type parameter must be stated at the call site:
//
//	bins := view.AsComplex[complex128](interleaved)
//
// Panics if len(data) is odd, or if C does not pack exactly two values of
// type F (e.g. AsComplex[complex64] over []float64).
func AsComplex[C Complex, F core.Float](data []F) []C {
	checkPairing[C, F]()
	if len(data)%2 != 0 {
		panic(fmt.Sprintf("view: interleaved length must be even: %d", len(data)))
	}
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*C)(unsafe.Pointer(unsafe.SliceData(data))), len(data)/2)
}

// AsInterleaved views a buffer of M complex values as a buffer of 2M
// interleaved reals [re0, im0, re1, im1, ...] aliasing the same memory. It
// is the exact inverse of [AsComplex]; there is no length precondition.
//
// Panics if C does not pack exactly two values of type F.
func AsInterleaved[F core.Float, C Complex](data []C) []F {
	checkPairing[C, F]()
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*F)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*2)
}

// checkPairing rejects mismatched instantiations such as complex64 over
// float64. The width check subsumes the layout invariant asserted above for
// the two canonical pairings.
func checkPairing[C Complex, F core.Float]() {
	var c C
	var f F
	if unsafe.Sizeof(c) != 2*unsafe.Sizeof(f) {
		panic(fmt.Sprintf("view: %T does not pack two %T values", c, f))
	}
}
