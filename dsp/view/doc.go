// Package view provides zero-copy reinterpretation between flat interleaved
// real sample buffers and complex sample buffers.
//
// An interleaved buffer [re0, im0, re1, im1, ...] of N reals and a complex
// buffer of N/2 values describe the same bytes; [AsComplex] and
// [AsInterleaved] convert between the two representations by constructing a
// new slice header over the caller's memory. No element is touched, copied,
// or converted, and no allocation takes place. Both views alias the same
// storage: a write through one is visible through the other, and concurrent
// mutation through two views is a data race exactly as it would be for any
// two slices over the same array.
//
// The conversions rely on the complex types packing their real and imaginary
// parts as two adjacent same-width floats, real part first. The size half of
// that invariant is pinned at compile time in this package; the field order
// is pinned by the package tests. This is the module's only unsafe code;
// keep it that way.
//
// Views borrow. The caller owns the backing storage and must keep it alive
// for as long as any derived view is in use.
package view
