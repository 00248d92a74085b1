package sqw

import "errors"

// ErrNotCollapsed is returned by Curve for spectra with more than one q.
var ErrNotCollapsed = errors.New("sqw: spectrum has more than one q row")

// Spectrum holds S(q, w) sampled on a q x w grid in row-major order.
type Spectrum struct {
	nq, nw int
	data   []float64
}

// NewSpectrum returns a zeroed spectrum with nq rows of nw samples.
// Non-positive sizes are treated as zero.
func NewSpectrum(nq, nw int) *Spectrum {
	nq = max(nq, 0)
	nw = max(nw, 0)
	return &Spectrum{
		nq:   nq,
		nw:   nw,
		data: make([]float64, nq*nw),
	}
}

// NQ returns the number of q rows.
func (s *Spectrum) NQ() int { return s.nq }

// NW returns the number of energy samples per row.
func (s *Spectrum) NW() int { return s.nw }

// Collapsed reports whether the spectrum describes a single q.
func (s *Spectrum) Collapsed() bool { return s.nq == 1 }

// Dims returns [nw] for a collapsed spectrum and [nq, nw] otherwise.
func (s *Spectrum) Dims() []int {
	if s.Collapsed() {
		return []int{s.nw}
	}
	return []int{s.nq, s.nw}
}

// Row returns row i. The slice aliases the spectrum's storage.
func (s *Spectrum) Row(i int) []float64 {
	return s.data[i*s.nw : (i+1)*s.nw : (i+1)*s.nw]
}

// At returns S(q[i], w[j]).
func (s *Spectrum) At(i, j int) float64 {
	return s.data[i*s.nw+j]
}

// Curve returns a copy of the single row of a collapsed spectrum.
func (s *Spectrum) Curve() ([]float64, error) {
	if !s.Collapsed() {
		return nil, ErrNotCollapsed
	}
	return append([]float64(nil), s.data...), nil
}

// Matrix returns a copy of the spectrum as one slice per q.
func (s *Spectrum) Matrix() [][]float64 {
	out := make([][]float64, s.nq)
	for i := range out {
		out[i] = append([]float64(nil), s.Row(i)...)
	}
	return out
}

// Data returns the row-major backing slice. It aliases the spectrum's storage.
func (s *Spectrum) Data() []float64 {
	return s.data
}
