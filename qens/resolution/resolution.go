// Package resolution handles instrument resolution curves: normalising them
// to unit area and convolving model spectra with them.
//
// Resolution curves are sampled on the same energy grid as the model. The
// grid must be uniform and contain zero energy transfer, which is where the
// resolution is centred:
//
//	res, err := resolution.Normalize(vanadium, w)
//	s, err := sqw.JumpTranslationalDiffusion(w, q, p)
//	measured, err := resolution.ConvolveSpectrum(s, w, res)
package resolution

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-qens/internal/conv"
	"github.com/cwbudde/algo-qens/internal/interp"
	"github.com/cwbudde/algo-qens/qens/lineshape"
	"github.com/cwbudde/algo-qens/qens/param"
	"github.com/cwbudde/algo-qens/qens/sqw"
)

var (
	// ErrShortGrid is returned for grids with fewer than two points.
	ErrShortGrid = errors.New("resolution: grid needs at least 2 points")
	// ErrUnsortedGrid is returned when w is not strictly increasing.
	ErrUnsortedGrid = errors.New("resolution: grid must be strictly increasing")
	// ErrNonUniformGrid is returned by Convolve and Resample for uneven steps.
	ErrNonUniformGrid = errors.New("resolution: grid must be uniformly spaced")
	// ErrZeroOutsideGrid is returned by Convolve when w does not span zero.
	ErrZeroOutsideGrid = errors.New("resolution: grid must contain zero energy transfer")
	// ErrLengthMismatch is returned when a curve and its grid differ in length.
	ErrLengthMismatch = errors.New("resolution: curve and grid lengths differ")
	// ErrZeroArea is returned by Normalize for curves that integrate to 0 or NaN.
	ErrZeroArea = errors.New("resolution: curve has zero area")
)

// uniformTolerance is the relative step deviation accepted as uniform.
const uniformTolerance = 1e-6

// Area integrates curve over w with the trapezoid rule. Interior points are
// weighted by their step, so a sampled delta from lineshape.Delta on a
// uniform grid has area equal to its scale.
func Area(curve, w []float64) (float64, error) {
	if len(curve) != len(w) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(curve), len(w))
	}
	if err := checkIncreasing(w); err != nil {
		return 0, err
	}

	return integrate.Trapezoidal(w, curve), nil
}

// Normalize returns a copy of curve scaled to unit area over w.
func Normalize(curve, w []float64) ([]float64, error) {
	area, err := Area(curve, w)
	if err != nil {
		return nil, err
	}
	if area == 0 || math.IsNaN(area) {
		return nil, ErrZeroArea
	}

	out := make([]float64, len(curve))
	for i, v := range curve {
		out[i] = v / area
	}

	return out, nil
}

// Gaussian returns a unit-area Gaussian resolution of width sigma centred at
// zero energy transfer. sigma == 0 gives the sampled delta.
func Gaussian(w []float64, sigma float64) ([]float64, error) {
	return lineshape.Gaussian(w, 1, 0, sigma)
}

// Resample interpolates a resolution curve measured on the uniform grid from
// onto the points to. Points outside the measured range are 0. The result is
// not renormalised.
func Resample(curve, from, to []float64) ([]float64, error) {
	if len(curve) != len(from) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(curve), len(from))
	}

	dw, err := uniformStep(from)
	if err != nil {
		return nil, err
	}

	return interp.Resample(curve, from[0], dw, to), nil
}

// Convolve returns model convolved with res on the uniform grid w:
//
//	out[i] = sum_k model[k] * res[c+i-k] * dw
//
// where c is the index of w closest to zero.
func Convolve(model, res, w []float64) ([]float64, error) {
	if len(model) != len(w) || len(res) != len(w) {
		return nil, fmt.Errorf("%w: model %d, resolution %d, grid %d",
			ErrLengthMismatch, len(model), len(res), len(w))
	}

	dw, c, err := gridStep(w)
	if err != nil {
		return nil, err
	}

	full, err := conv.Convolve(model, res)
	if err != nil {
		return nil, fmt.Errorf("resolution: %w", err)
	}

	out := make([]float64, len(w))
	for i := range out {
		out[i] = full[c+i] * dw
	}

	return out, nil
}

// ConvolveSpectrum convolves every row of s with a resolution curve. res
// holds either one curve shared by all rows or one curve per row.
func ConvolveSpectrum(s *sqw.Spectrum, w []float64, res ...[]float64) (*sqw.Spectrum, error) {
	if len(res) != 1 && len(res) != s.NQ() {
		return nil, fmt.Errorf("resolution: %w", &param.ShapeError{Name: "resolution", Got: len(res), Want: s.NQ()})
	}
	if s.NW() != len(w) {
		return nil, fmt.Errorf("%w: spectrum %d, grid %d", ErrLengthMismatch, s.NW(), len(w))
	}

	out := sqw.NewSpectrum(s.NQ(), s.NW())
	for i := 0; i < s.NQ(); i++ {
		r := res[0]
		if len(res) > 1 {
			r = res[i]
		}

		row, err := Convolve(s.Row(i), r, w)
		if err != nil {
			return nil, fmt.Errorf("resolution: row %d: %w", i, err)
		}
		copy(out.Row(i), row)
	}

	return out, nil
}

func checkIncreasing(w []float64) error {
	if len(w) < 2 {
		return ErrShortGrid
	}
	for i := 1; i < len(w); i++ {
		if !(w[i] > w[i-1]) {
			return fmt.Errorf("%w: w[%d] = %g after %g", ErrUnsortedGrid, i, w[i], w[i-1])
		}
	}
	return nil
}

func uniformStep(w []float64) (float64, error) {
	if err := checkIncreasing(w); err != nil {
		return 0, err
	}

	n := len(w)
	dw := (w[n-1] - w[0]) / float64(n-1)
	for i := 1; i < n; i++ {
		if math.Abs(w[i]-w[i-1]-dw) > uniformTolerance*dw {
			return 0, fmt.Errorf("%w: step %d is %g, mean %g", ErrNonUniformGrid, i, w[i]-w[i-1], dw)
		}
	}

	return dw, nil
}

// gridStep returns the step of a uniform increasing grid and the index
// closest to zero.
func gridStep(w []float64) (float64, int, error) {
	dw, err := uniformStep(w)
	if err != nil {
		return 0, 0, err
	}

	n := len(w)
	if w[0] > 0 || w[n-1] < 0 {
		return 0, 0, ErrZeroOutsideGrid
	}

	c := 0
	for i := 1; i < n; i++ {
		if math.Abs(w[i]) < math.Abs(w[c]) {
			c = i
		}
	}

	return dw, c, nil
}
