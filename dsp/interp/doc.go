// Package interp provides fractional interpolation between samples.
//
// Available methods, from cheapest to highest quality:
//
//   - [Linear2]:   2-point linear interpolation
//   - [Hermite4]:  4-point cubic Hermite
//   - [Lanczos4]:  4-point Lanczos windowed-sinc (a = 2)
//
// All functions are generic over float32 and float64 samples.
package interp
