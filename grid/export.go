package grid

import (
	"iter"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/structgrid/geometry"
)

// All iterates the vertices in ascending id order.
func (c *VertexCollection) All() iter.Seq[geometry.Vertex] {
	return func(yield func(geometry.Vertex) bool) {
		for _, v := range c.vertices {
			if !yield(v) {
				return
			}
		}
	}
}

// Vertices returns a copy of the vertices in ascending id order.
func (c *VertexCollection) Vertices() []geometry.Vertex {
	out := make([]geometry.Vertex, len(c.vertices))
	copy(out, c.vertices)
	return out
}

// XY returns the x and y coordinates as two equal-length sequences in id order,
// the form plotting collaborators consume.
func (c *VertexCollection) XY() (xs, ys []float64) {
	xs = make([]float64, len(c.vertices))
	ys = make([]float64, len(c.vertices))
	for i, v := range c.vertices {
		xs[i], ys[i] = v.Coords.X, v.Coords.Y
	}
	return xs, ys
}

// Extents returns the bounding box (minX, maxX, minY, maxY) of all vertices.
// Returns ErrEmptyCollection when no vertex has been inserted.
func (c *VertexCollection) Extents() (minX, maxX, minY, maxY float64, err error) {
	if len(c.vertices) == 0 {
		return 0, 0, 0, 0, ErrEmptyCollection
	}
	xs, ys := c.XY()
	return floats.Min(xs), floats.Max(xs), floats.Min(ys), floats.Max(ys), nil
}
