// Package lineshape provides the elementary peak shapes used by QENS models:
// a sampled delta function, a Gaussian and a Lorentzian.
//
// Every shape is evaluated on an energy grid and scaled so that it integrates
// to scale over the grid:
//
//	delta := lineshape.Delta(w, 1, 0)
//	g, err := lineshape.Gaussian(w, 1, 0, 0.1)
//	l, err := lineshape.Lorentzian(w, 1, 0, 0.5)
//
// The ...At variants evaluate a single energy value and agree element-wise
// with the slice versions.
//
// # Delta approximation
//
// A Dirac impulse cannot be sampled, so [Delta] places all of its weight on
// the grid point nearest to center, with height scale/dx where dx is the mean
// grid step. On a uniform grid the Riemann sum of the result is exactly scale.
// A center outside the grid produces all zeros.
package lineshape
