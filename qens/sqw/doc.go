// Package sqw evaluates composite scattering functions S(q, w) built from
// the elementary shapes in package lineshape and the width models in
// package width.
//
// Every model takes an energy grid w, a momentum grid q and a params struct
// whose fields are [param.Param] values, so each parameter may be a single
// value or one value per q:
//
//	p := sqw.DefaultDeltaLorentzParams()
//	p.A0 = param.PerQ(0.1, 0.2)
//	p.HWHM = param.Scalar(0.5)
//	s, err := sqw.DeltaLorentz(w, []float64{0.5, 1.0}, p)
//
// The result is a [Spectrum] of shape len(q) x len(w). When q holds a single
// value the spectrum is collapsed: [Spectrum.Dims] reports [len(w)] and
// [Spectrum.Curve] returns the single curve, which is what fitting code that
// binds one model per q expects.
//
// Mixing fractions such as A0 and 1-A0 sum to one by construction; they are
// not checked at run time.
package sqw
