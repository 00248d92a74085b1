// Package width computes q-dependent line widths and structure factors for
// diffusion models.
//
// Each model maps a momentum-transfer grid and its physical constants to a
// [Widths] value whose slices are parallel to q, so composite models can
// index them by q position.
package width

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-qens/qens/param"
)

// Defaults for water at 298 K and 1 atm.
const (
	// DefaultD is the self-diffusion coefficient in 10^-5 cm^2/s.
	DefaultD = 2.3
	// DefaultResTime is the residence time between jumps in ps.
	DefaultResTime = 1.25
)

var (
	// ErrEmptyQ is returned when q has no values.
	ErrEmptyQ = errors.New("width: q must not be empty")
	// ErrNegativeQ is returned for a negative or NaN q value.
	ErrNegativeQ = errors.New("width: q must be >= 0")
	// ErrNegativeD is returned for a negative or NaN diffusion coefficient.
	ErrNegativeD = errors.New("width: diffusion coefficient must be >= 0")
	// ErrNegativeResTime is returned for a negative or NaN residence time.
	ErrNegativeResTime = errors.New("width: residence time must be >= 0")
)

// Widths holds per-q model characteristics.
type Widths struct {
	// HWHM is the half width at half maximum of the quasi-elastic line.
	HWHM []float64
	// EISF is the elastic incoherent structure factor.
	EISF []float64
	// QISF is the quasi-elastic incoherent structure factor.
	QISF []float64
}

// Len returns the number of q values described.
func (w Widths) Len() int {
	return len(w.HWHM)
}

// JumpTranslationalDiffusion returns the widths of the jump-diffusion model
// (Teixeira et al., Phys. Rev. A 31, 1913 (1985)):
//
//	hwhm = D*q^2 / (1 + resTime*D*q^2)
//
// The model has no elastic part, so EISF is 0 and QISF is 1 everywhere.
func JumpTranslationalDiffusion(q []float64, d, resTime param.Param) (Widths, error) {
	if err := validateQ(q); err != nil {
		return Widths{}, err
	}

	ds, err := broadcastNonNegative(d, "D", len(q), ErrNegativeD)
	if err != nil {
		return Widths{}, err
	}

	taus, err := broadcastNonNegative(resTime, "resTime", len(q), ErrNegativeResTime)
	if err != nil {
		return Widths{}, err
	}

	w := quasiElastic(len(q))
	for i, qi := range q {
		dq2 := ds[i] * qi * qi
		w.HWHM[i] = dq2 / (1 + taus[i]*dq2)
	}

	return w, nil
}

// BrownianTranslationalDiffusion returns the widths of Fickian diffusion,
// hwhm = D*q^2, with EISF 0 and QISF 1.
func BrownianTranslationalDiffusion(q []float64, d param.Param) (Widths, error) {
	if err := validateQ(q); err != nil {
		return Widths{}, err
	}

	ds, err := broadcastNonNegative(d, "D", len(q), ErrNegativeD)
	if err != nil {
		return Widths{}, err
	}

	w := quasiElastic(len(q))
	for i, qi := range q {
		w.HWHM[i] = ds[i] * qi * qi
	}

	return w, nil
}

func quasiElastic(n int) Widths {
	w := Widths{
		HWHM: make([]float64, n),
		EISF: make([]float64, n),
		QISF: make([]float64, n),
	}
	for i := range w.QISF {
		w.QISF[i] = 1
	}
	return w
}

func validateQ(q []float64) error {
	if len(q) == 0 {
		return ErrEmptyQ
	}
	for i, v := range q {
		if !(v >= 0) {
			return fmt.Errorf("%w: q[%d] = %g", ErrNegativeQ, i, v)
		}
	}
	return nil
}

func broadcastNonNegative(p param.Param, name string, n int, sentinel error) ([]float64, error) {
	vals, err := p.Broadcast(name, n)
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if !(v >= 0) {
			return nil, fmt.Errorf("%w: %s[%d] = %g", sentinel, name, i, v)
		}
	}
	return vals, nil
}
