package sqw

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-qens/qens/lineshape"
	"github.com/cwbudde/algo-qens/qens/param"
	"github.com/cwbudde/algo-qens/qens/width"
)

var (
	// ErrEmptyGrid is returned when w or q has no values.
	ErrEmptyGrid = errors.New("sqw: energy and momentum grids must not be empty")
	// ErrNegativeQ is returned for a negative or NaN q value.
	ErrNegativeQ = errors.New("sqw: q must be >= 0")
)

func validateGrids(w, q []float64) error {
	if len(w) == 0 || len(q) == 0 {
		return ErrEmptyGrid
	}
	for i, v := range q {
		if !(v >= 0) {
			return fmt.Errorf("%w: q[%d] = %g", ErrNegativeQ, i, v)
		}
	}
	return nil
}

// broadcaster expands parameters to n values and keeps the first error.
type broadcaster struct {
	n   int
	err error
}

func (b *broadcaster) get(p param.Param, name string) []float64 {
	if b.err != nil {
		return nil
	}
	vals, err := p.Broadcast(name, b.n)
	if err != nil {
		b.err = fmt.Errorf("sqw: %w", err)
	}
	return vals
}

// accumulate adds weight*src to dst. src is overwritten.
func accumulate(dst, src []float64, weight float64) {
	vecmath.ScaleBlockInPlace(src, weight)
	vecmath.AddBlockInPlace(dst, src)
}

func lorentzianRow(w []float64, scale, center, hwhm float64, name string, i int) ([]float64, error) {
	l, err := lineshape.Lorentzian(w, scale, center, hwhm)
	if err != nil {
		return nil, fmt.Errorf("sqw: %s at q[%d] = %g: %w", name, i, hwhm, err)
	}
	return l, nil
}

// quasiElastic fills s with EISF*delta + QISF*Lorentzian(HWHM) per q.
func quasiElastic(s *Spectrum, w []float64, scale, center []float64, widths width.Widths) error {
	for i := 0; i < s.NQ(); i++ {
		row := s.Row(i)

		if widths.EISF[i] != 0 {
			accumulate(row, lineshape.Delta(w, scale[i], center[i]), widths.EISF[i])
		}

		l, err := lorentzianRow(w, scale[i], center[i], widths.HWHM[i], "hwhm", i)
		if err != nil {
			return err
		}
		accumulate(row, l, widths.QISF[i])
	}
	return nil
}
