package interp

import "github.com/cwbudde/algo-sigmath/dsp/core"

// Linear2 interpolates between y0 and y1 at fractional position frac.
// frac outside [0, 1] extrapolates.
func Linear2[F core.Float](y0, y1, frac F) F {
	return core.Lerp(y0, y1, frac)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 at position t using neighbor points xm1 and x2.
func Hermite4[F core.Float](t, xm1, x0, x1, x2 F) F {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Lanczos4 computes 4-point Lanczos (a = 2) windowed-sinc interpolation.
// It interpolates from x0 to x1 at position t using neighbor points xm1 and x2.
func Lanczos4[F core.Float](t, xm1, x0, x1, x2 F) F {
	var sum, norm F
	for i, x := range [4]F{xm1, x0, x1, x2} {
		d := t - F(i-1)
		w := core.Sinc(d) * core.Sinc(d/2)
		sum += x * w
		norm += w
	}
	if norm == 0 {
		return x0
	}
	return sum / norm
}
