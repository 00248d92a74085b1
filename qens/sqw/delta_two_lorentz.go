package sqw

import (
	"github.com/cwbudde/algo-qens/qens/lineshape"
	"github.com/cwbudde/algo-qens/qens/param"
)

// DeltaTwoLorentzParams configures DeltaTwoLorentz.
type DeltaTwoLorentzParams struct {
	Scale  param.Param
	Center param.Param
	// A0 is the delta amplitude.
	A0 param.Param
	// A1 is the amplitude of the first Lorentzian.
	A1    param.Param
	HWHM1 param.Param
	HWHM2 param.Param
}

// DefaultDeltaTwoLorentzParams returns scale 1, center 0 and 1 for A0, A1,
// hwhm1 and hwhm2.
func DefaultDeltaTwoLorentzParams() DeltaTwoLorentzParams {
	return DeltaTwoLorentzParams{
		Scale:  param.Scalar(1),
		Center: param.Scalar(0),
		A0:     param.Scalar(1),
		A1:     param.Scalar(1),
		HWHM1:  param.Scalar(1),
		HWHM2:  param.Scalar(1),
	}
}

// DeltaTwoLorentz evaluates
//
//	S(q, w) = A0*delta(w) + A1*Lorentzian(w, hwhm1) + (1-A0-A1)*Lorentzian(w, hwhm2)
func DeltaTwoLorentz(w, q []float64, p DeltaTwoLorentzParams) (*Spectrum, error) {
	if err := validateGrids(w, q); err != nil {
		return nil, err
	}

	b := broadcaster{n: len(q)}
	scale := b.get(p.Scale, "scale")
	center := b.get(p.Center, "center")
	a0 := b.get(p.A0, "A0")
	a1 := b.get(p.A1, "A1")
	hwhm1 := b.get(p.HWHM1, "hwhm1")
	hwhm2 := b.get(p.HWHM2, "hwhm2")
	if b.err != nil {
		return nil, b.err
	}

	s := NewSpectrum(len(q), len(w))
	for i := range q {
		l1, err := lorentzianRow(w, scale[i], center[i], hwhm1[i], "hwhm1", i)
		if err != nil {
			return nil, err
		}
		l2, err := lorentzianRow(w, scale[i], center[i], hwhm2[i], "hwhm2", i)
		if err != nil {
			return nil, err
		}

		row := s.Row(i)
		accumulate(row, lineshape.Delta(w, scale[i], center[i]), a0[i])
		accumulate(row, l1, a1[i])
		accumulate(row, l2, 1-a0[i]-a1[i])
	}

	return s, nil
}
