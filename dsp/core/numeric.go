package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp[F Float](value, min, max F) F {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual[F Float](a, b, eps F) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	if diff <= eps {
		return true
	}

	absA, absB := a, b
	if absA < 0 {
		absA = -absA
	}
	if absB < 0 {
		absB = -absB
	}

	largest := absA
	if absB > largest {
		largest = absB
	}
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// This can reduce denormal-related CPU slowdowns in hot DSP loops.
func FlushDenormals[F Float](x F) F {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear[F Float](db F) F {
	return F(math.Pow(10, float64(db)/20))
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB[F Float](linear F) F {
	if linear < 0 {
		return F(math.NaN())
	}

	if linear == 0 {
		return F(math.Inf(-1))
	}

	return F(20 * math.Log10(float64(linear)))
}

// DBPowerToLinear converts dB to linear power (10*log10 convention).
func DBPowerToLinear[F Float](db F) F {
	return F(math.Pow(10, float64(db)/10))
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB[F Float](power F) F {
	if power < 0 {
		return F(math.NaN())
	}

	if power == 0 {
		return F(math.Inf(-1))
	}

	return F(10 * math.Log10(float64(power)))
}
