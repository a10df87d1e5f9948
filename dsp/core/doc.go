// Package core provides scalar and aggregate numeric primitives shared by
// the rest of the module: interpolation, range remapping, RMS measurement,
// the normalized sinc function, and small buffer helpers.
//
// All functions are generic over [Float] (float32 or float64), stateless,
// and allocation-free. There are no recoverable errors: degenerate inputs
// (such as a zero-width source range in [Remap]) propagate IEEE-754
// infinities and NaNs instead of being intercepted. This is deliberate;
// precondition satisfaction is the caller's responsibility.
package core
