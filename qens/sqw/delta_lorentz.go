package sqw

import (
	"github.com/cwbudde/algo-qens/qens/lineshape"
	"github.com/cwbudde/algo-qens/qens/param"
)

// DeltaLorentzParams configures DeltaLorentz.
type DeltaLorentzParams struct {
	Scale  param.Param
	Center param.Param
	// A0 is the fraction of immobile scatterers (delta amplitude).
	A0 param.Param
	// HWHM is the half width of the Lorentzian.
	HWHM param.Param
}

// DefaultDeltaLorentzParams returns scale 1, center 0, A0 0 and hwhm 1.
func DefaultDeltaLorentzParams() DeltaLorentzParams {
	return DeltaLorentzParams{
		Scale:  param.Scalar(1),
		Center: param.Scalar(0),
		A0:     param.Scalar(0),
		HWHM:   param.Scalar(1),
	}
}

// DeltaLorentz evaluates a fixed fraction A0 of immobile scatterers plus a
// Lorentzian for the diffusing remainder:
//
//	S(q, w) = A0*delta(w) + (1-A0)*Lorentzian(w, hwhm)
func DeltaLorentz(w, q []float64, p DeltaLorentzParams) (*Spectrum, error) {
	if err := validateGrids(w, q); err != nil {
		return nil, err
	}

	b := broadcaster{n: len(q)}
	scale := b.get(p.Scale, "scale")
	center := b.get(p.Center, "center")
	a0 := b.get(p.A0, "A0")
	hwhm := b.get(p.HWHM, "hwhm")
	if b.err != nil {
		return nil, b.err
	}

	s := NewSpectrum(len(q), len(w))
	for i := range q {
		l, err := lorentzianRow(w, scale[i], center[i], hwhm[i], "hwhm", i)
		if err != nil {
			return nil, err
		}

		row := s.Row(i)
		accumulate(row, lineshape.Delta(w, scale[i], center[i]), a0[i])
		accumulate(row, l, 1-a0[i])
	}

	return s, nil
}
