package lineshape

import "errors"

var (
	// ErrNonPositiveHWHM is returned by Lorentzian for hwhm <= 0 or NaN.
	ErrNonPositiveHWHM = errors.New("lineshape: lorentzian hwhm must be > 0")
	// ErrNegativeSigma is returned by Gaussian for sigma < 0 or NaN.
	ErrNegativeSigma = errors.New("lineshape: gaussian sigma must be >= 0")
)

func validateHWHM(hwhm float64) error {
	if !(hwhm > 0) {
		return ErrNonPositiveHWHM
	}
	return nil
}

func validateSigma(sigma float64) error {
	if !(sigma >= 0) {
		return ErrNegativeSigma
	}
	return nil
}
