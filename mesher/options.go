// SPDX-License-Identifier: MIT

package mesher

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/structgrid/grid"
)

// DefaultBeta is the clustering factor used when WithBeta is not given.
const DefaultBeta = 2.0

// Option customizes a BuildGrid call.
type Option func(*config)

// config aggregates the knobs of one generation run; passed by value.
type config struct {
	beta   float64
	order  grid.IndexOrder
	logger *log.Logger
}

// newConfig applies opts over the defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		beta:   DefaultBeta,
		order:  grid.IJK,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBeta sets the clustering factor for the tangent distributions.
// The value is validated by BuildGrid (ErrInvalidBeta); Uniform ignores it.
func WithBeta(beta float64) Option {
	return func(c *config) { c.beta = beta }
}

// WithOrder sets the index order of the returned collection (default IJK).
// Vertices are always emitted column by column, so only JIK makes
// North/East steps and cells follow the generated rows and columns when
// nx ≠ ny; under IJK they do so only for square grids.
func WithOrder(order grid.IndexOrder) Option {
	return func(c *config) { c.order = order }
}

// WithLogger routes progress and validation messages to l.
// Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("mesher: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
