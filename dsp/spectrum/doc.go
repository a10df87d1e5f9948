// Package spectrum provides spectrum-domain helpers over complex bins.
//
// Magnitude and power extraction run on SIMD-optimized vector kernels where
// available. The Interleaved variants accept packed [re, im, re, im, ...]
// buffers and reinterpret them through [dsp/view] without copying, and the
// Forward/Inverse helpers bridge such buffers directly into algo-fft plans.
package spectrum
