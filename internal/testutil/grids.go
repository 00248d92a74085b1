package testutil

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 returns []float64{start}; n <= 0 returns nil.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop

	return out
}

// SymmetricGrid returns 2*half+1 points spaced by step and centred on zero,
// so that index half holds exactly 0.
func SymmetricGrid(half int, step float64) []float64 {
	if half < 0 {
		return nil
	}

	out := make([]float64, 2*half+1)
	for i := range out {
		out[i] = float64(i-half) * step
	}

	return out
}

// RiemannSum returns sum(f) * dx, the integral estimate that matches the
// sampled delta convention.
func RiemannSum(f []float64, dx float64) float64 {
	sum := 0.0
	for _, v := range f {
		sum += v
	}
	return sum * dx
}
