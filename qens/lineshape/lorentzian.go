package lineshape

import "math"

// Lorentzian returns scale/pi * hwhm / ((x-center)^2 + hwhm^2) evaluated on x.
//
// hwhm is the half width at half maximum and must be positive.
func Lorentzian(x []float64, scale, center, hwhm float64) ([]float64, error) {
	if err := validateHWHM(hwhm); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = lorentzian(v, scale, center, hwhm)
	}

	return out, nil
}

// LorentzianAt evaluates the Lorentzian at a single energy value.
func LorentzianAt(x, scale, center, hwhm float64) (float64, error) {
	if err := validateHWHM(hwhm); err != nil {
		return 0, err
	}

	return lorentzian(x, scale, center, hwhm), nil
}

// LorentzianFWHM returns the full width at half maximum, 2*hwhm.
func LorentzianFWHM(hwhm float64) float64 {
	return 2 * hwhm
}

func lorentzian(x, scale, center, hwhm float64) float64 {
	d := x - center
	return scale / math.Pi * hwhm / (d*d + hwhm*hwhm)
}
