// Package conv implements linear convolution for sampled spectra.
//
// Short kernels use a direct O(N*M) sum built on vecmath block kernels;
// longer kernels use FFT overlap-add. [Convolve] picks between the two.
package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptyInput is returned when the signal has no samples.
	ErrEmptyInput = errors.New("conv: empty input")
	// ErrEmptyKernel is returned when the kernel has no samples.
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// directThreshold is the kernel length up to which Convolve stays in the
// time domain.
const directThreshold = 64

// Direct returns the full linear convolution of a and b, of length
// len(a)+len(b)-1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	out := make([]float64, len(a)+len(b)-1)
	directTo(out, a, b)

	return out, nil
}

// directTo accumulates a[i]*b into dst[i:i+len(b)] for every i.
// dst must be zeroed and of length len(a)+len(b)-1.
func directTo(dst, a, b []float64) {
	m := len(b)
	scratch := make([]float64, m)

	for i, v := range a {
		if v == 0 {
			continue
		}
		vecmath.ScaleBlock(scratch, b, v)
		vecmath.AddBlockInPlace(dst[i:i+m], scratch)
	}
}

// Convolve returns the full linear convolution of a and b, choosing the
// direct method for short operands and overlap-add otherwise.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	return OverlapAddConvolve(a, b)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
