// SPDX-License-Identifier: MIT

// Package config describes a grid-generation run as data: grid size, domain
// length, wall distribution, inlet contour and output paths. A Config is
// loaded from TOML or YAML, validated, and converted into mesher arguments.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/structgrid/contour"
	"github.com/katalvlaran/structgrid/export"
	"github.com/katalvlaran/structgrid/mesher"
)

// DefaultContour is the reference nozzle inlet, h(x) = 1 − x²/10.
const DefaultContour = "1 - x**2/10"

var (
	// ErrUnsupportedFormat indicates a config file extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	// ErrInvalidConfig indicates a decoded config that cannot drive a run.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config is one grid-generation run.
type Config struct {
	NX           int      `toml:"nx" yaml:"nx"`
	NY           int      `toml:"ny" yaml:"ny"`
	LenX         float64  `toml:"lenx" yaml:"lenx"`
	Distribution string   `toml:"distribution" yaml:"distribution"`
	Beta         *float64 `toml:"beta,omitempty" yaml:"beta,omitempty"`
	Contour      string   `toml:"contour" yaml:"contour"`
	Dump         string   `toml:"dump" yaml:"dump"`
	Plot         string   `toml:"plot" yaml:"plot"`
}

// Default returns the reference run: a 200×100 uniform grid over [0, 2]
// under DefaultContour, dumped to vertex-dump.txt and plotted to mesh.png.
func Default() Config {
	return Config{
		NX:           200,
		NY:           100,
		LenX:         2.0,
		Distribution: mesher.Uniform.String(),
		Contour:      DefaultContour,
		Dump:         export.DefaultDumpPath,
		Plot:         export.DefaultPlotPath,
	}
}

// Kind resolves the Distribution name.
func (c Config) Kind() (mesher.DistributionKind, error) {
	return mesher.ParseDistribution(c.Distribution)
}

// ContourFunc compiles the Contour expression.
func (c Config) ContourFunc() (contour.Func, error) {
	return contour.Expression(c.Contour)
}

// Validate checks c without generating anything. Every failure wraps
// ErrInvalidConfig; the cause stays matchable too.
func (c Config) Validate() error {
	var errs []error
	if c.NX < 2 || c.NY < 2 {
		errs = append(errs, fmt.Errorf("nx=%d, ny=%d: %w", c.NX, c.NY, mesher.ErrTooFewPoints))
	}
	if !(c.LenX > 0) || math.IsInf(c.LenX, 1) {
		errs = append(errs, fmt.Errorf("lenx=%g: %w", c.LenX, mesher.ErrInvalidLength))
	}
	kind, err := c.Kind()
	if err != nil {
		errs = append(errs, err)
	}
	if c.Beta != nil && kind.UsesBeta() && (math.IsInf(*c.Beta, 0) || !(*c.Beta > 0)) {
		errs = append(errs, fmt.Errorf("beta=%g: %w", *c.Beta, mesher.ErrInvalidBeta))
	}
	if _, err := c.ContourFunc(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Options converts c into mesher options. logger may be nil.
func (c Config) Options(logger *log.Logger) []mesher.Option {
	var opts []mesher.Option
	if c.Beta != nil {
		opts = append(opts, mesher.WithBeta(*c.Beta))
	}
	if logger != nil {
		opts = append(opts, mesher.WithLogger(logger))
	}
	return opts
}

// expandPaths substitutes environment variables in the output paths.
func (c *Config) expandPaths() {
	c.Dump = strings.TrimSpace(os.ExpandEnv(c.Dump))
	c.Plot = strings.TrimSpace(os.ExpandEnv(c.Plot))
}
