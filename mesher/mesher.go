// SPDX-License-Identifier: MIT

package mesher

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/structgrid/contour"
	"github.com/katalvlaran/structgrid/geometry"
	"github.com/katalvlaran/structgrid/grid"
)

// Columns returns the nx column positions 0, dx, …, lenx with dx = lenx/(nx−1).
// Positions are computed from the column index, not accumulated, and the
// last one is exactly lenx.
//
// Errors: ErrTooFewPoints, ErrInvalidLength.
func Columns(nx int, lenx float64) ([]float64, error) {
	if nx < minPoints {
		return nil, mesherErrorf(methodColumns, "nx=%d", ErrTooFewPoints, nx)
	}
	if err := validateLength(lenx); err != nil {
		return nil, mesherErrorf(methodColumns, "lenx=%g", err, lenx)
	}
	xs := floats.Span(make([]float64, nx), 0, lenx)
	xs[nx-1] = lenx
	return xs, nil
}

// BuildGrid generates an nx×ny grid over [0, lenx] whose column heights come
// from h, returning a collection of nx·ny planar vertices in IJK order
// unless WithOrder says otherwise.
//
// Stages:
//  1. Validate nx, ny, lenx, h, kind and (for tangent kinds) β before any
//     vertex is created; failures return a nil collection.
//  2. For each column x_i: leny = h(x_i), rows from Distribute, then
//     AddVertex(x_i, y_j, 1) for j = 0…ny−1.
//
// A failure in stage 2 (a bad contour height) stops generation at once and
// returns the partially populated collection, holding ids 1..k for the k
// vertices accepted so far, together with the error.
func BuildGrid(nx, ny int, lenx float64, kind DistributionKind, h contour.Func, opts ...Option) (*grid.VertexCollection, error) {
	cfg := newConfig(opts...)
	logger := cfg.logger

	if err := validatePoints(nx, ny); err != nil {
		logger.Warn("rejected grid size", "nx", nx, "ny", ny)
		return nil, mesherErrorf(methodBuildGrid, "nx=%d, ny=%d", err, nx, ny)
	}
	if err := validateLength(lenx); err != nil {
		logger.Warn("rejected domain length", "lenx", lenx)
		return nil, mesherErrorf(methodBuildGrid, "lenx=%g", err, lenx)
	}
	if h == nil {
		return nil, mesherErrorf(methodBuildGrid, "contour", ErrNilContour)
	}
	if err := validateKind(kind); err != nil {
		return nil, mesherErrorf(methodBuildGrid, "kind=%s", err, kind)
	}
	if kind.UsesBeta() {
		if err := validateBeta(cfg.beta); err != nil {
			logger.Warn("rejected clustering factor", "beta", cfg.beta)
			return nil, mesherErrorf(methodBuildGrid, "beta=%g", err, cfg.beta)
		}
	}

	xs, err := Columns(nx, lenx)
	if err != nil {
		return nil, mesherErrorf(methodBuildGrid, "columns", err)
	}
	c, err := grid.New(grid.TwoD(nx, ny), cfg.order)
	if err != nil {
		return nil, mesherErrorf(methodBuildGrid, "order=%s", err, cfg.order)
	}

	logger.Debug("generating grid", "nx", nx, "ny", ny, "lenx", lenx, "distribution", kind, "beta", cfg.beta, "order", cfg.order)

	for i, x := range xs {
		leny := h(x)
		if err := validateHeight(leny); err != nil {
			logger.Warn("contour returned an unusable height", "column", i, "x", x, "height", leny)
			return c, mesherErrorf(methodBuildGrid, "column %d at x=%g: height %g", err, i, x, leny)
		}
		ys, err := Distribute(kind, ny, leny, cfg.beta)
		if err != nil {
			return c, mesherErrorf(methodBuildGrid, "column %d", err, i)
		}
		for _, y := range ys {
			if err := c.AddVertex(x, y, geometry.PlanarZ); err != nil {
				return c, mesherErrorf(methodBuildGrid, "column %d", err, i)
			}
		}
	}

	logger.Debug("grid generated", "vertices", c.Len())
	return c, nil
}
