package sqw

import (
	"fmt"

	"github.com/cwbudde/algo-qens/qens/param"
	"github.com/cwbudde/algo-qens/qens/width"
)

// JumpTranslationalDiffusionParams configures JumpTranslationalDiffusion.
type JumpTranslationalDiffusionParams struct {
	Scale  param.Param
	Center param.Param
	// D is the diffusion coefficient in 10^-5 cm^2/s.
	D param.Param
	// ResTime is the residence time in ps.
	ResTime param.Param
}

// DefaultJumpTranslationalDiffusionParams returns scale 1, center 0 and the
// water values width.DefaultD and width.DefaultResTime.
func DefaultJumpTranslationalDiffusionParams() JumpTranslationalDiffusionParams {
	return JumpTranslationalDiffusionParams{
		Scale:   param.Scalar(1),
		Center:  param.Scalar(0),
		D:       param.Scalar(width.DefaultD),
		ResTime: param.Scalar(width.DefaultResTime),
	}
}

// JumpTranslationalDiffusion evaluates a Lorentzian whose half width follows
// the jump-diffusion law D*q^2/(1+resTime*D*q^2).
//
// q = 0 gives a zero width and is rejected as a Lorentzian domain error.
func JumpTranslationalDiffusion(w, q []float64, p JumpTranslationalDiffusionParams) (*Spectrum, error) {
	if err := validateGrids(w, q); err != nil {
		return nil, err
	}

	b := broadcaster{n: len(q)}
	scale := b.get(p.Scale, "scale")
	center := b.get(p.Center, "center")
	if b.err != nil {
		return nil, b.err
	}

	widths, err := width.JumpTranslationalDiffusion(q, p.D, p.ResTime)
	if err != nil {
		return nil, fmt.Errorf("sqw: %w", err)
	}

	s := NewSpectrum(len(q), len(w))
	if err := quasiElastic(s, w, scale, center, widths); err != nil {
		return nil, err
	}

	return s, nil
}

// BrownianTranslationalDiffusionParams configures BrownianTranslationalDiffusion.
type BrownianTranslationalDiffusionParams struct {
	Scale  param.Param
	Center param.Param
	// D is the diffusion coefficient in 10^-5 cm^2/s.
	D param.Param
}

// DefaultBrownianTranslationalDiffusionParams returns scale 1, center 0 and
// width.DefaultD.
func DefaultBrownianTranslationalDiffusionParams() BrownianTranslationalDiffusionParams {
	return BrownianTranslationalDiffusionParams{
		Scale:  param.Scalar(1),
		Center: param.Scalar(0),
		D:      param.Scalar(width.DefaultD),
	}
}

// BrownianTranslationalDiffusion evaluates a Lorentzian of half width D*q^2.
func BrownianTranslationalDiffusion(w, q []float64, p BrownianTranslationalDiffusionParams) (*Spectrum, error) {
	if err := validateGrids(w, q); err != nil {
		return nil, err
	}

	b := broadcaster{n: len(q)}
	scale := b.get(p.Scale, "scale")
	center := b.get(p.Center, "center")
	if b.err != nil {
		return nil, b.err
	}

	widths, err := width.BrownianTranslationalDiffusion(q, p.D)
	if err != nil {
		return nil, fmt.Errorf("sqw: %w", err)
	}

	s := NewSpectrum(len(q), len(w))
	if err := quasiElastic(s, w, scale, center, widths); err != nil {
		return nil, err
	}

	return s, nil
}
