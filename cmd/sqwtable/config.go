package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-qens/qens/param"
)

// Config describes one table: a model, its parameters and the grids it is
// evaluated on.
type Config struct {
	Model  string           `yaml:"model" validate:"required,qensmodel"`
	W      Grid             `yaml:"w"`
	Q      []float64        `yaml:"q" validate:"min=1,dive,gte=0"`
	Params map[string]Value `yaml:"params"`
	// Resolution is the sigma of a Gaussian resolution; 0 disables it.
	Resolution float64 `yaml:"resolution" validate:"gte=0"`
	Format     string  `yaml:"format" validate:"oneof=table csv"`
}

// Grid is an inclusive, evenly spaced energy transfer grid in meV.
type Grid struct {
	Start  float64 `yaml:"start"`
	Stop   float64 `yaml:"stop" validate:"gtfield=Start"`
	Points int     `yaml:"points" validate:"min=2"`
}

// Values returns the grid points. The last point is exactly Stop.
func (g Grid) Values() []float64 {
	if g.Points < 2 {
		return []float64{g.Start}
	}

	out := make([]float64, g.Points)
	step := (g.Stop - g.Start) / float64(g.Points-1)
	for i := range out {
		out[i] = g.Start + float64(i)*step
	}
	out[g.Points-1] = g.Stop

	return out
}

// Value is a model parameter read from YAML: a number applies to every q, a
// list gives one value per q.
type Value struct {
	param.Param
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := n.Decode(&f); err != nil {
			return err
		}
		v.Param = param.Scalar(f)
	case yaml.SequenceNode:
		var fs []float64
		if err := n.Decode(&fs); err != nil {
			return err
		}
		v.Param = param.PerQ(fs...)
	default:
		return fmt.Errorf("line %d: parameter must be a number or a list of numbers", n.Line)
	}
	return nil
}

// DefaultConfig returns the delta-lorentz model on [-2, 2] meV at q = 1.
func DefaultConfig() Config {
	return Config{
		Model:  "delta-lorentz",
		W:      Grid{Start: -2, Stop: 2, Points: 9},
		Q:      []float64{1},
		Format: "table",
	}
}

// LoadConfig decodes YAML from r over DefaultConfig. An empty document
// yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("sqwtable: decode config: %w", err)
	}

	return cfg, nil
}

// LoadConfigFile reads a YAML config file. An empty path yields the defaults.
func LoadConfigFile(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("sqwtable: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their YAML key.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("qensmodel", func(fl validator.FieldLevel) bool {
		_, ok := lookupModel(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}

	return v
}

// Validate checks the struct tags, then the parameters against the model.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("sqwtable: invalid config: %w", err)
	}

	m, _ := lookupModel(c.Model)
	if err := m.checkParams(c.params()); err != nil {
		return fmt.Errorf("sqwtable: %w", err)
	}

	for name, v := range c.Params {
		if !v.IsFinite() {
			return fmt.Errorf("sqwtable: parameter %s is not finite: %v", name, v.Param)
		}
		if err := v.Check(name, len(c.Q)); err != nil {
			return fmt.Errorf("sqwtable: %w", err)
		}
	}

	return nil
}

func (c Config) params() map[string]param.Param {
	out := make(map[string]param.Param, len(c.Params))
	for name, v := range c.Params {
		out[name] = v.Param
	}
	return out
}

// parseGrid parses "start:stop:points".
func parseGrid(s string) (Grid, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Grid{}, fmt.Errorf("grid %q: want start:stop:points", s)
	}

	start, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Grid{}, fmt.Errorf("grid start: %w", err)
	}
	stop, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Grid{}, fmt.Errorf("grid stop: %w", err)
	}
	points, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return Grid{}, fmt.Errorf("grid points: %w", err)
	}

	return Grid{Start: start, Stop: stop, Points: points}, nil
}

// parseList parses a comma separated list of numbers.
func parseList(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("q list: %w", err)
		}
		if math.IsNaN(v) {
			return nil, errors.New("q list: NaN")
		}
		out = append(out, v)
	}
	return out, nil
}
