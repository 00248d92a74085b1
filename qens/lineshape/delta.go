package lineshape

import "math"

// Delta returns a sampled delta function of weight scale at center.
//
// The grid point closest to center (the first one on ties) receives
// scale/dx, where dx is the mean step of x; all other points are zero.
// A one-point grid, or a grid whose endpoints coincide, receives scale.
// If center lies outside [min(x), max(x)] the result is all zeros; a NaN
// center gives all NaN.
func Delta(x []float64, scale, center float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}

	if math.IsNaN(center) {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	if center < lo || center > hi {
		return out
	}

	idx := nearestIndex(x, center)
	out[idx] = scale / meanStep(x)

	return out
}

// DeltaAt evaluates the delta function at a single energy value, which is a
// one-point grid: it returns scale when x equals center and zero otherwise.
// A NaN center gives NaN.
func DeltaAt(x, scale, center float64) float64 {
	if math.IsNaN(center) {
		return math.NaN()
	}
	if x == center {
		return scale
	}

	return 0
}

// meanStep returns |x[n-1]-x[0]|/(n-1), or 1 when that is undefined or zero.
func meanStep(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return 1
	}

	dx := math.Abs(x[n-1]-x[0]) / float64(n-1)
	if dx == 0 {
		return 1
	}

	return dx
}

func nearestIndex(x []float64, center float64) int {
	best := 0
	bestDist := math.Abs(x[0] - center)

	for i := 1; i < len(x); i++ {
		if d := math.Abs(x[i] - center); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}
