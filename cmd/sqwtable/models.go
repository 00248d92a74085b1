package main

import (
	"fmt"
	"slices"
	"sort"

	"github.com/cwbudde/algo-qens/qens/param"
	"github.com/cwbudde/algo-qens/qens/sqw"
)

type evalFunc func(w, q []float64, p map[string]param.Param) (*sqw.Spectrum, error)

type modelEntry struct {
	name   string
	params []string
	eval   evalFunc
}

var registry = []modelEntry{
	{"delta-lorentz", []string{"scale", "center", "A0", "hwhm"}, evalDeltaLorentz},
	{"delta-two-lorentz", []string{"scale", "center", "A0", "A1", "hwhm1", "hwhm2"}, evalDeltaTwoLorentz},
	{"jump-diffusion", []string{"scale", "center", "D", "resTime"}, evalJumpDiffusion},
	{"brownian-diffusion", []string{"scale", "center", "D"}, evalBrownianDiffusion},
}

func lookupModel(name string) (modelEntry, bool) {
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return modelEntry{}, false
}

func modelNames() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	return names
}

// checkParams rejects parameter names the model does not take.
func (e modelEntry) checkParams(p map[string]param.Param) error {
	for name := range p {
		if !slices.Contains(e.params, name) {
			return fmt.Errorf("model %s has no parameter %q (takes %v)", e.name, name, e.params)
		}
	}
	return nil
}

// set overwrites dst when p carries name.
func set(dst *param.Param, p map[string]param.Param, name string) {
	if v, ok := p[name]; ok {
		*dst = v
	}
}

func evalDeltaLorentz(w, q []float64, p map[string]param.Param) (*sqw.Spectrum, error) {
	mp := sqw.DefaultDeltaLorentzParams()
	set(&mp.Scale, p, "scale")
	set(&mp.Center, p, "center")
	set(&mp.A0, p, "A0")
	set(&mp.HWHM, p, "hwhm")
	return sqw.DeltaLorentz(w, q, mp)
}

func evalDeltaTwoLorentz(w, q []float64, p map[string]param.Param) (*sqw.Spectrum, error) {
	mp := sqw.DefaultDeltaTwoLorentzParams()
	set(&mp.Scale, p, "scale")
	set(&mp.Center, p, "center")
	set(&mp.A0, p, "A0")
	set(&mp.A1, p, "A1")
	set(&mp.HWHM1, p, "hwhm1")
	set(&mp.HWHM2, p, "hwhm2")
	return sqw.DeltaTwoLorentz(w, q, mp)
}

func evalJumpDiffusion(w, q []float64, p map[string]param.Param) (*sqw.Spectrum, error) {
	mp := sqw.DefaultJumpTranslationalDiffusionParams()
	set(&mp.Scale, p, "scale")
	set(&mp.Center, p, "center")
	set(&mp.D, p, "D")
	set(&mp.ResTime, p, "resTime")
	return sqw.JumpTranslationalDiffusion(w, q, mp)
}

func evalBrownianDiffusion(w, q []float64, p map[string]param.Param) (*sqw.Spectrum, error) {
	mp := sqw.DefaultBrownianTranslationalDiffusionParams()
	set(&mp.Scale, p, "scale")
	set(&mp.Center, p, "center")
	set(&mp.D, p, "D")
	return sqw.BrownianTranslationalDiffusion(w, q, mp)
}
