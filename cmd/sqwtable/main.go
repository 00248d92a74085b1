// Command sqwtable evaluates a QENS model S(q, w) on an energy grid and
// prints it as a table or CSV.
//
// Usage:
//
//	sqwtable [flags]
//
// Settings come from built-in defaults, then the optional YAML file given
// with -config, then the flags.
//
// Examples:
//
//	sqwtable -model jump-diffusion -w -2:2:41 -q 0.5,1,1.5
//	sqwtable -config water.yaml -format csv
//	sqwtable -model delta-lorentz -resolution 0.05
//	sqwtable -list
//
// A config file looks like:
//
//	model: jump-diffusion
//	w: {start: -2, stop: 2, points: 41}
//	q: [0.5, 1.0]
//	params:
//	  D: 0.5
//	  resTime: [1.5, 2.0]
//	resolution: 0.05
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-qens/qens/resolution"
	"github.com/cwbudde/algo-qens/qens/sqw"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	model := flag.String("model", "", "model name (see -list)")
	grid := flag.String("w", "", "energy grid in meV as start:stop:points")
	qList := flag.String("q", "", "comma separated momentum transfers in 1/Angstrom")
	format := flag.String("format", "", "output format: table or csv")
	sigma := flag.Float64("resolution", -1, "sigma of a Gaussian resolution in meV, 0 disables (negative keeps the config value)")
	list := flag.Bool("list", false, "list available models and their parameters")
	verbose := flag.Bool("v", false, "verbose development logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sqwtable [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Evaluates a QENS model on an energy grid.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sqwtable -model jump-diffusion -w -2:2:41 -q 0.5,1,1.5\n")
		fmt.Fprintf(os.Stderr, "  sqwtable -config water.yaml -format csv\n")
		fmt.Fprintf(os.Stderr, "  sqwtable -list\n")
	}
	flag.Parse()

	if *list {
		if err := printList(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	o := overrides{model: *model, grid: *grid, q: *qList, format: *format, resolution: *sigma}
	if err := execute(*configPath, o, os.Stdout, logger); err != nil {
		logger.Error("sqwtable failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

// overrides holds flag values; zero values leave the config untouched.
type overrides struct {
	model, grid, q, format string
	resolution             float64
}

func (o overrides) apply(cfg *Config) error {
	if o.model != "" {
		cfg.Model = strings.ToLower(strings.TrimSpace(o.model))
	}
	if o.grid != "" {
		g, err := parseGrid(o.grid)
		if err != nil {
			return err
		}
		cfg.W = g
	}
	if o.q != "" {
		q, err := parseList(o.q)
		if err != nil {
			return err
		}
		cfg.Q = q
	}
	if o.format != "" {
		cfg.Format = o.format
	}
	if o.resolution >= 0 {
		cfg.Resolution = o.resolution
	}
	return nil
}

func execute(configPath string, o overrides, out io.Writer, log *zap.Logger) error {
	cfg, err := LoadConfigFile(configPath)
	if err != nil {
		return err
	}
	if err := o.apply(&cfg); err != nil {
		return fmt.Errorf("sqwtable: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Info("evaluating model",
		zap.String("model", cfg.Model),
		zap.Int("nq", len(cfg.Q)),
		zap.Int("nw", cfg.W.Points),
		zap.Float64("resolution", cfg.Resolution),
	)

	return run(cfg, out, log)
}

func run(cfg Config, out io.Writer, log *zap.Logger) error {
	m, ok := lookupModel(cfg.Model)
	if !ok {
		return fmt.Errorf("sqwtable: unknown model %q (use -list to see available)", cfg.Model)
	}

	w := cfg.W.Values()
	s, err := m.eval(w, cfg.Q, cfg.params())
	if err != nil {
		return fmt.Errorf("sqwtable: %s: %w", m.name, err)
	}
	log.Debug("evaluated model", zap.String("model", m.name), zap.Ints("dims", s.Dims()))

	if cfg.Resolution > 0 {
		res, err := resolution.Gaussian(w, cfg.Resolution)
		if err != nil {
			return fmt.Errorf("sqwtable: %w", err)
		}
		if s, err = resolution.ConvolveSpectrum(s, w, res); err != nil {
			return fmt.Errorf("sqwtable: %w", err)
		}
		log.Debug("applied gaussian resolution", zap.Float64("sigma", cfg.Resolution))
	}

	if cfg.Format == "csv" {
		return writeCSV(out, w, cfg.Q, s)
	}
	return writeTable(out, w, cfg.Q, s)
}

func printList(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Model\tParameters\n-----\t----------\n"); err != nil {
		return err
	}
	for _, name := range modelNames() {
		e, _ := lookupModel(name)
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", e.name, strings.Join(e.params, ", ")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func header(q []float64) []string {
	cols := make([]string, 0, len(q)+1)
	cols = append(cols, "w [meV]")
	for _, qi := range q {
		cols = append(cols, fmt.Sprintf("q=%g", qi))
	}
	return cols
}

func writeTable(out io.Writer, w, q []float64, s *sqw.Spectrum) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	cols := header(q)
	if _, err := fmt.Fprintln(tw, strings.Join(cols, "\t")+"\t"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for j, wj := range w {
		row := make([]string, 0, len(cols))
		row = append(row, strconv.FormatFloat(wj, 'f', 4, 64))
		for i := range q {
			row = append(row, strconv.FormatFloat(s.At(i, j), 'g', 6, 64))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")+"\t"); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func writeCSV(out io.Writer, w, q []float64, s *sqw.Spectrum) error {
	cw := csv.NewWriter(out)
	cols := header(q)
	cols[0] = "w"
	if err := cw.Write(cols); err != nil {
		return err
	}

	for j, wj := range w {
		row := make([]string, 0, len(cols))
		row = append(row, strconv.FormatFloat(wj, 'g', -1, 64))
		for i := range q {
			row = append(row, strconv.FormatFloat(s.At(i, j), 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
