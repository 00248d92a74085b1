// Package param holds model parameters that are either a single value shared
// by every momentum transfer or one value per momentum transfer.
//
// Composite models accept every shape parameter as a [Param] and broadcast it
// to the length of the q grid once, before their main loop:
//
//	a0 := param.PerQ(0.1, 0.2, 0.3)
//	hwhm := param.Scalar(0.5)
//	vals, err := a0.Broadcast("A0", len(q))
//
// The zero value is the scalar 0.
package param

import (
	"errors"
	"fmt"
	"math"
)

// ErrShapeMismatch is wrapped by every [ShapeError].
var ErrShapeMismatch = errors.New("param: per-q length does not match q")

// ShapeError reports a per-q parameter whose length disagrees with q.
type ShapeError struct {
	Name string
	Got  int
	Want int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("param: %s has %d values, q has %d", e.Name, e.Got, e.Want)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// Param is a scalar or a per-q sequence.
type Param struct {
	scalar float64
	values []float64
	perQ   bool
}

// Scalar returns a parameter applied uniformly across all q.
func Scalar(v float64) Param {
	return Param{scalar: v}
}

// PerQ returns a parameter with one value per q. The values are copied.
func PerQ(values ...float64) Param {
	return Param{
		values: append([]float64(nil), values...),
		perQ:   true,
	}
}

// IsPerQ reports whether p carries one value per q.
func (p Param) IsPerQ() bool {
	return p.perQ
}

// Len returns the number of per-q values, or 1 for a scalar.
func (p Param) Len() int {
	if !p.perQ {
		return 1
	}

	return len(p.values)
}

// Value returns the scalar value. For a per-q parameter it returns the first
// value, or 0 when there is none.
func (p Param) Value() float64 {
	if !p.perQ {
		return p.scalar
	}

	if len(p.values) == 0 {
		return 0
	}

	return p.values[0]
}

// Values returns a copy of the per-q values, or a single-element slice for a
// scalar.
func (p Param) Values() []float64 {
	if !p.perQ {
		return []float64{p.scalar}
	}

	return append([]float64(nil), p.values...)
}

// At returns the value that applies at q-index i. Scalars ignore i.
// It panics if p is per-q and i is out of range; call [Param.Check] or
// [Param.Broadcast] first.
func (p Param) At(i int) float64 {
	if !p.perQ {
		return p.scalar
	}

	return p.values[i]
}

// Check verifies that p can be indexed for n q-values.
func (p Param) Check(name string, n int) error {
	if p.perQ && len(p.values) != n {
		return &ShapeError{Name: name, Got: len(p.values), Want: n}
	}

	return nil
}

// Broadcast returns a fresh slice of length n holding the value of p at every
// q-index.
func (p Param) Broadcast(name string, n int) ([]float64, error) {
	if err := p.Check(name, n); err != nil {
		return nil, err
	}

	if p.perQ {
		return append([]float64(nil), p.values...), nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = p.scalar
	}

	return out, nil
}

// IsFinite reports whether every value of p is finite.
func (p Param) IsFinite() bool {
	if !p.perQ {
		return !math.IsNaN(p.scalar) && !math.IsInf(p.scalar, 0)
	}

	for _, v := range p.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// String formats p as a number or a bracketed list.
func (p Param) String() string {
	if !p.perQ {
		return fmt.Sprintf("%g", p.scalar)
	}

	return fmt.Sprintf("%g", p.values)
}
