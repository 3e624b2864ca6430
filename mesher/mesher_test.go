// SPDX-License-Identifier: MIT
package mesher_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structgrid/contour"
	"github.com/katalvlaran/structgrid/geometry"
	"github.com/katalvlaran/structgrid/grid"
	"github.com/katalvlaran/structgrid/mesher"
)

// TestBuildGrid_Uniform2x2 is the smallest end-to-end run.
func TestBuildGrid_Uniform2x2(t *testing.T) {
	t.Parallel()

	c, err := mesher.BuildGrid(2, 2, 1.0, mesher.Uniform, contour.Constant(1.0))
	require.NoError(t, err)
	require.True(t, c.Complete())
	assert.Equal(t, grid.IJK, c.Order())

	want := []geometry.Vertex{
		geometry.NewVertex(1, 0, 0, 1),
		geometry.NewVertex(2, 0, 1, 1),
		geometry.NewVertex(3, 1, 0, 1),
		geometry.NewVertex(4, 1, 1, 1),
	}
	assert.Equal(t, want, c.Vertices())
}

// TestBuildGrid_Queries3x3 runs the topology checks on a generated grid.
func TestBuildGrid_Queries3x3(t *testing.T) {
	t.Parallel()

	c, err := mesher.BuildGrid(3, 3, 2.0, mesher.Uniform, contour.Default())
	require.NoError(t, err)

	for id := 1; id <= 9; id++ {
		_, err := c.FindVertex(id)
		require.NoError(t, err)
	}
	_, err = c.FindVertex(0)
	assert.True(t, errors.Is(err, grid.ErrVertexNotFound))
	_, err = c.FindVertex(10)
	assert.True(t, errors.Is(err, grid.ErrVertexNotFound))

	for d, id := range map[geometry.Direction]int{
		geometry.North: 8, geometry.South: 2, geometry.East: 6, geometry.West: 4,
	} {
		v, err := c.FindAdjacentVertex(5, d)
		require.NoError(t, err)
		assert.Equal(t, id, v.ID, d.String())
	}

	err = c.AddVertex(0, 0, geometry.PlanarZ)
	var le *grid.VertexLimitExceededError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, grid.VertexLimitExceededError{Limit: 9, Attempted: 10}, *le)
}

// TestBuildGrid_ColumnMajorOrder: id ny+1 starts the second column.
func TestBuildGrid_ColumnMajorOrder(t *testing.T) {
	t.Parallel()

	const nx, ny = 4, 3
	c, err := mesher.BuildGrid(nx, ny, 3.0, mesher.Uniform, contour.Constant(2.0))
	require.NoError(t, err)

	for col := 0; col < nx; col++ {
		for row := 0; row < ny; row++ {
			v, err := c.FindVertex(col*ny + row + 1)
			require.NoError(t, err)
			assert.Equal(t, float64(col), v.Coords.X)
			assert.Equal(t, float64(row), v.Coords.Y)
			assert.Equal(t, geometry.PlanarZ, v.Coords.Z)
		}
	}
}

// TestBuildGrid_JIKCells: with JIK ids every cell is the quad spanned by two
// adjacent generated columns and rows, also when nx ≠ ny.
func TestBuildGrid_JIKCells(t *testing.T) {
	t.Parallel()

	c, err := mesher.BuildGrid(3, 2, 2.0, mesher.Uniform, contour.Constant(1), mesher.WithOrder(grid.JIK))
	require.NoError(t, err)
	assert.Equal(t, grid.JIK, c.Order())

	cell, err := c.CellAt(1)
	require.NoError(t, err)
	want := []geometry.Point{
		geometry.NewPoint(0, 0, 1),
		geometry.NewPoint(1, 0, 1),
		geometry.NewPoint(1, 1, 1),
		geometry.NewPoint(0, 1, 1),
	}
	for i, v := range cell.Corners() {
		assert.Equal(t, want[i], v.Coords, "corner %d", i)
	}
	assert.Len(t, c.Cells(), 2)

	east, err := c.FindAdjacentVertex(1, geometry.East)
	require.NoError(t, err)
	assert.Equal(t, geometry.NewPoint(1, 0, 1), east.Coords)
	north, err := c.FindAdjacentVertex(1, geometry.North)
	require.NoError(t, err)
	assert.Equal(t, geometry.NewPoint(0, 1, 1), north.Coords)
}

func TestBuildGrid_JIKCellsAreQuads(t *testing.T) {
	t.Parallel()

	const nx, ny = 5, 3
	c, err := mesher.BuildGrid(nx, ny, 2.0, mesher.TopClusteredTangent, contour.Constant(1.5), mesher.WithOrder(grid.JIK))
	require.NoError(t, err)

	cells := c.Cells()
	require.Len(t, cells, (nx-1)*(ny-1))
	for _, cell := range cells {
		k := cell.Corners()
		sw, se, ne, nw := k[0].Coords, k[1].Coords, k[2].Coords, k[3].Coords
		assert.Equal(t, sw.X, nw.X, "cell %d west face", cell.ID)
		assert.Equal(t, se.X, ne.X, "cell %d east face", cell.ID)
		assert.Equal(t, sw.Y, se.Y, "cell %d south face", cell.ID)
		assert.Equal(t, nw.Y, ne.Y, "cell %d north face", cell.ID)
		assert.Greater(t, se.X, sw.X, "cell %d", cell.ID)
		assert.Greater(t, nw.Y, sw.Y, "cell %d", cell.ID)
	}
}

func TestBuildGrid_UnknownOrder(t *testing.T) {
	t.Parallel()

	c, err := mesher.BuildGrid(2, 2, 1, mesher.Uniform, contour.Constant(1), mesher.WithOrder(grid.IndexOrder(7)))
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, grid.ErrUnknownOrder))
}

// TestBuildGrid_LastColumnExact: x is computed from the index, so the last
// column equals lenx even for awkward spacings.
func TestBuildGrid_LastColumnExact(t *testing.T) {
	t.Parallel()

	const nx, ny, lenx = 200, 3, 2.0
	c, err := mesher.BuildGrid(nx, ny, lenx, mesher.Uniform, contour.Default())
	require.NoError(t, err)

	last, err := c.FindVertex(nx * ny)
	require.NoError(t, err)
	assert.Equal(t, lenx, last.Coords.X)

	first, err := c.FindVertex(1)
	require.NoError(t, err)
	assert.Zero(t, first.Coords.X)
}

// TestBuildGrid_FollowsContour: the top row of each column sits at h(x).
func TestBuildGrid_FollowsContour(t *testing.T) {
	t.Parallel()

	const nx, ny = 11, 5
	h := contour.Default()
	c, err := mesher.BuildGrid(nx, ny, 2.0, mesher.Uniform, h)
	require.NoError(t, err)

	for col := 0; col < nx; col++ {
		top, err := c.FindVertex((col + 1) * ny)
		require.NoError(t, err)
		assert.InDelta(t, h(top.Coords.X), top.Coords.Y, 1e-12)
	}
}

func TestBuildGrid_Preconditions(t *testing.T) {
	t.Parallel()

	one := contour.Constant(1)
	cases := []struct {
		name string
		nx   int
		ny   int
		lenx float64
		kind mesher.DistributionKind
		h    contour.Func
		opts []mesher.Option
		err  error
	}{
		{"SingleColumn", 1, 3, 1, mesher.Uniform, one, nil, mesher.ErrTooFewPoints},
		{"SingleRow", 3, 1, 1, mesher.Uniform, one, nil, mesher.ErrTooFewPoints},
		{"ZeroLength", 3, 3, 0, mesher.Uniform, one, nil, mesher.ErrInvalidLength},
		{"NegativeLength", 3, 3, -1, mesher.Uniform, one, nil, mesher.ErrInvalidLength},
		{"NaNLength", 3, 3, math.NaN(), mesher.Uniform, one, nil, mesher.ErrInvalidLength},
		{"NilContour", 3, 3, 1, mesher.Uniform, nil, nil, mesher.ErrNilContour},
		{"UnknownKind", 3, 3, 1, mesher.DistributionKind(7), one, nil, mesher.ErrUnknownDistribution},
		{"ZeroBeta", 3, 3, 1, mesher.HyperbolicTangent, one, []mesher.Option{mesher.WithBeta(0)}, mesher.ErrInvalidBeta},
		{"InfBeta", 3, 3, 1, mesher.TopClusteredTangent, one, []mesher.Option{mesher.WithBeta(math.Inf(1))}, mesher.ErrInvalidBeta},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := mesher.BuildGrid(tc.nx, tc.ny, tc.lenx, tc.kind, tc.h, tc.opts...)
			require.Truef(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
			assert.Nil(t, c, "precondition failures must not start generation")
		})
	}
}

// TestBuildGrid_UniformIgnoresBeta: a bad β is irrelevant to Uniform.
func TestBuildGrid_UniformIgnoresBeta(t *testing.T) {
	t.Parallel()

	_, err := mesher.BuildGrid(3, 3, 1, mesher.Uniform, contour.Constant(1), mesher.WithBeta(-1))
	require.NoError(t, err)
}

// TestBuildGrid_BadHeightLeavesPartialGrid: generation stops at the first bad
// column and the accepted vertices stay densely numbered.
func TestBuildGrid_BadHeightLeavesPartialGrid(t *testing.T) {
	t.Parallel()

	// Heights at x = 0, 0.5, 1, 1.5 are positive; x = 2 gives -0.25.
	h := contour.StraightLine{M: -1, C: 1.75}.Func()
	c, err := mesher.BuildGrid(5, 3, 2.0, mesher.Uniform, h)

	require.True(t, errors.Is(err, mesher.ErrInvalidHeight), "%v", err)
	require.NotNil(t, c)
	assert.Equal(t, 12, c.Len())
	assert.False(t, c.Complete())
	for i, v := range c.Vertices() {
		assert.Equal(t, i+1, v.ID)
	}

	nan := func(x float64) float64 {
		if x > 0 {
			return math.NaN()
		}
		return 1
	}
	c, err = mesher.BuildGrid(3, 2, 1.0, mesher.Uniform, nan)
	require.True(t, errors.Is(err, mesher.ErrInvalidHeight))
	assert.Equal(t, 2, c.Len())
}

// TestBuildGrid_Logging checks warn and debug output reaches the logger.
func TestBuildGrid_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := mesher.BuildGrid(2, 2, 1, mesher.Uniform, contour.Constant(1), mesher.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "grid generated")

	buf.Reset()
	_, err = mesher.BuildGrid(1, 2, 1, mesher.Uniform, contour.Constant(1), mesher.WithLogger(logger))
	require.Error(t, err)
	assert.True(t, strings.Contains(buf.String(), "rejected grid size"))
}

func TestWithLogger_NilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { mesher.WithLogger(nil) })
}

func TestColumns(t *testing.T) {
	t.Parallel()

	xs, err := mesher.Columns(5, 2.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, xs)

	_, err = mesher.Columns(1, 2.0)
	assert.True(t, errors.Is(err, mesher.ErrTooFewPoints))
	_, err = mesher.Columns(3, math.Inf(1))
	assert.True(t, errors.Is(err, mesher.ErrInvalidLength))
}
