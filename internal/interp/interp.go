// Package interp resamples uniformly spaced curves.
//
// Interior points use 4-point cubic Hermite (Catmull-Rom) interpolation,
// which reproduces quadratics exactly. The end samples are repeated to supply
// the missing neighbours of the first and last segment.
package interp

// edgeTolerance is the fraction of a step by which a position may fall
// outside the sampled range and still be clamped onto it.
const edgeTolerance = 1e-9

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbour points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Uniform evaluates the curve y, sampled at start + i*step, at position x.
// Positions outside the sampled range return 0.
func Uniform(y []float64, start, step, x float64) float64 {
	n := len(y)
	if n == 0 || step <= 0 {
		return 0
	}

	pos := (x - start) / step
	last := float64(n - 1)
	if pos < -edgeTolerance || pos > last+edgeTolerance {
		return 0
	}
	pos = min(max(pos, 0), last)

	i := int(pos)
	if i >= n-1 {
		return y[n-1]
	}

	at := func(k int) float64 {
		return y[min(max(k, 0), n-1)]
	}

	return Hermite4(pos-float64(i), at(i-1), y[i], y[i+1], at(i+2))
}

// Resample evaluates y, sampled at start + i*step, at every position in x.
func Resample(y []float64, start, step float64, x []float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = Uniform(y, start, step, xi)
	}
	return out
}
