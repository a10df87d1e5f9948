package core

import "math"

// sincEpsilon guards the 0/0 singularity in Sinc.
const sincEpsilon = 1e-6

// Lerp returns a point ratio of the way between start and end.
// Ratios outside [0, 1] extrapolate.
func Lerp[F Float](start, end, ratio F) F {
	return start + (end-start)*ratio
}

// Rescale takes a value normalized to [0, 1] and rescales it to the range
// [newMin, newMax]. The input is not clamped; values outside [0, 1]
// extrapolate beyond the new range.
func Rescale[F Float](x, newMin, newMax F) F {
	return x*(newMax-newMin) + newMin
}

// Remap normalizes x from [srcMin, srcMax] and rescales it to
// [newMin, newMax]. A degenerate source range (srcMin == srcMax) is not
// guarded; the division produces an infinity or NaN per IEEE-754 semantics.
func Remap[F Float](x, srcMin, srcMax, newMin, newMax F) F {
	normalized := (x - srcMin) / (srcMax - srcMin)
	return Rescale(normalized, newMin, newMax)
}

// RescaleRange is the [Range] form of [Rescale].
func RescaleRange[F Float](x F, newRange Range[F]) F {
	return Rescale(x, newRange.Min, newRange.Max)
}

// RemapRange is the [Range] form of [Remap].
func RemapRange[F Float](x F, srcRange, newRange Range[F]) F {
	return Remap(x, srcRange.Min, srcRange.Max, newRange.Min, newRange.Max)
}

// Sinc computes the normalized sinc function sin(pi*x) / (pi*x).
// Returns exactly 1 for |x| below a small epsilon to avoid the 0/0
// singularity and its floating-point noise.
func Sinc[F Float](x F) F {
	if x < sincEpsilon && x > -sincEpsilon {
		return 1
	}
	xPi := float64(x) * math.Pi
	return F(math.Sin(xPi) / xPi)
}
