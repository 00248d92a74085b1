package lineshape

import "math"

var invSqrt2Pi = 1 / math.Sqrt(2*math.Pi)

// Gaussian returns scale/(sigma*sqrt(2*pi)) * exp(-(x-center)^2/(2*sigma^2))
// evaluated on x.
//
// sigma == 0 is the zero-width limit and returns Delta(x, scale, center).
func Gaussian(x []float64, scale, center, sigma float64) ([]float64, error) {
	if err := validateSigma(sigma); err != nil {
		return nil, err
	}

	if sigma == 0 {
		return Delta(x, scale, center), nil
	}

	out := make([]float64, len(x))
	gaussianTo(out, x, scale, center, sigma)

	return out, nil
}

// GaussianAt evaluates the Gaussian at a single energy value.
func GaussianAt(x, scale, center, sigma float64) (float64, error) {
	if err := validateSigma(sigma); err != nil {
		return 0, err
	}

	if sigma == 0 {
		return DeltaAt(x, scale, center), nil
	}

	return gaussian(x, scale, center, sigma), nil
}

// GaussianFWHM returns the full width at half maximum for sigma: 2*sqrt(2 ln 2)*sigma.
func GaussianFWHM(sigma float64) float64 {
	return 2 * math.Sqrt(2*math.Ln2) * sigma
}

func gaussianTo(dst, x []float64, scale, center, sigma float64) {
	for i, v := range x {
		dst[i] = gaussian(v, scale, center, sigma)
	}
}

func gaussian(x, scale, center, sigma float64) float64 {
	d := (x - center) / sigma
	return scale * invSqrt2Pi / sigma * math.Exp(-0.5*d*d)
}
