package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structgrid/geometry"
)

// mustFill builds a complete collection whose physical coordinates equal the
// logical ones: x = i, y = j, z = k (z pinned for 2-D shapes).
func mustFill(t testing.TB, shape Shape, order IndexOrder) *VertexCollection {
	t.Helper()
	c, err := New(shape, order)
	require.NoError(t, err)
	for id := 1; id <= shape.TotalVertices(); id++ {
		at := order.coordinate(shape, id)
		z := geometry.PlanarZ
		if !shape.Is2D() {
			z = float64(at.K)
		}
		require.NoError(t, c.AddVertex(float64(at.I), float64(at.J), z))
	}
	require.True(t, c.Complete())
	return c
}
