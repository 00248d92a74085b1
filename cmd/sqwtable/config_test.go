package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-qens/qens/param"
)

const jumpConfig = `
model: jump-diffusion
w: {start: -1, stop: 1, points: 5}
q: [0.5, 1.0]
params:
  D: 0.5
  resTime: [1.5, 2.0]
resolution: 0.1
format: csv
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(jumpConfig))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "jump-diffusion", cfg.Model)
	assert.Equal(t, Grid{Start: -1, Stop: 1, Points: 5}, cfg.W)
	assert.Equal(t, []float64{0.5, 1.0}, cfg.Q)
	assert.Equal(t, 0.1, cfg.Resolution)
	assert.Equal(t, "csv", cfg.Format)

	require.Contains(t, cfg.Params, "D")
	assert.False(t, cfg.Params["D"].IsPerQ())
	assert.Equal(t, 0.5, cfg.Params["D"].Value())
	assert.True(t, cfg.Params["resTime"].IsPerQ())
	assert.Equal(t, []float64{1.5, 2.0}, cfg.Params["resTime"].Values())
}

func TestLoadConfigEmptyIsDefault(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("model: brownian-diffusion\n"))
	require.NoError(t, err)
	assert.Equal(t, "brownian-diffusion", cfg.Model)
	assert.Equal(t, DefaultConfig().W, cfg.W)
	assert.Equal(t, "table", cfg.Format)
}

func TestLoadConfigDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "modle: delta-lorentz\n"},
		{"param mapping", "params:\n  A0: {value: 1}\n"},
		{"param text", "params:\n  A0: lots\n"},
		{"param list text", "params:\n  A0: [0.1, x]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "sqwtable: decode config")
		})
	}
}

func TestValidateTags(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
		tag   string
	}{
		{"missing model", func(c *Config) { c.Model = "" }, "model", "required"},
		{"unknown model", func(c *Config) { c.Model = "water" }, "model", "qensmodel"},
		{"no q", func(c *Config) { c.Q = nil }, "q", "min"},
		{"negative q", func(c *Config) { c.Q = []float64{1, -0.5} }, "q[1]", "gte"},
		{"one point", func(c *Config) { c.W.Points = 1 }, "points", "min"},
		{"reversed grid", func(c *Config) { c.W.Start, c.W.Stop = 2, -2 }, "stop", "gtfield"},
		{"bad format", func(c *Config) { c.Format = "xml" }, "format", "oneof"},
		{"negative resolution", func(c *Config) { c.Resolution = -1 }, "resolution", "gte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var ve validator.ValidationErrors
			require.True(t, errors.As(err, &ve), "got %v", err)
			require.Len(t, ve, 1)
			assert.Equal(t, tt.field, ve[0].Field())
			assert.Equal(t, tt.tag, ve[0].Tag())
		})
	}
}

func TestValidateParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params = map[string]Value{"resTime": {param.Scalar(1)}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no parameter "resTime"`)

	cfg.Params = map[string]Value{"A0": {param.PerQ(0.1, 0.2)}}
	err = cfg.Validate()
	assert.True(t, errors.Is(err, param.ErrShapeMismatch), "got %v", err)

	cfg, err = LoadConfig(strings.NewReader("params:\n  hwhm: .nan\n"))
	require.NoError(t, err)
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not finite")
}

func TestGridValues(t *testing.T) {
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, Grid{Start: -1, Stop: 1, Points: 5}.Values())
	assert.Equal(t, []float64{3}, Grid{Start: 3, Stop: 4, Points: 1}.Values())
}

func TestParseGrid(t *testing.T) {
	g, err := parseGrid("-2:2:41")
	require.NoError(t, err)
	assert.Equal(t, Grid{Start: -2, Stop: 2, Points: 41}, g)

	for _, s := range []string{"-2:2", "a:2:3", "-2:b:3", "-2:2:3.5"} {
		_, err := parseGrid(s)
		assert.Error(t, err, s)
	}
}

func TestParseList(t *testing.T) {
	q, err := parseList("0.5, 1,1.5,")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 1.5}, q)

	_, err = parseList("0.5,x")
	assert.Error(t, err)
	_, err = parseList("NaN")
	assert.Error(t, err)
}
