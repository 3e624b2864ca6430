package grid

import (
	"github.com/katalvlaran/structgrid/geometry"
)

// VertexCollection owns every vertex of one grid. Vertices are appended in
// id order and never updated or removed; vertices[id-1] holds vertex id.
type VertexCollection struct {
	shape    Shape
	order    IndexOrder
	vertices []geometry.Vertex
}

// New returns an empty collection for shape under order.
// Returns ErrInvalidShape or ErrUnknownOrder for unusable arguments.
// Complexity: O(1); capacity is reserved for TotalVertices.
func New(shape Shape, order IndexOrder) (*VertexCollection, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if err := order.validate(); err != nil {
		return nil, err
	}
	return &VertexCollection{
		shape:    shape,
		order:    order,
		vertices: make([]geometry.Vertex, 0, shape.TotalVertices()),
	}, nil
}

// Shape returns the declared logical extents.
func (c *VertexCollection) Shape() Shape { return c.shape }

// Order returns the index-flattening convention.
func (c *VertexCollection) Order() IndexOrder { return c.order }

// Len returns the number of vertices inserted so far.
func (c *VertexCollection) Len() int { return len(c.vertices) }

// Complete reports whether every slot of the shape has been filled.
func (c *VertexCollection) Complete() bool {
	return len(c.vertices) == c.shape.TotalVertices()
}

// AddVertex appends a vertex at (x, y, z) under the next id, Len()+1.
//
// Validation order:
//  1. 2-D shapes require z == geometry.PlanarZ (*InvalidVertexCoordinateError).
//  2. The next id must not exceed TotalVertices (*VertexLimitExceededError).
//  3. The next id must be non-zero (*InvalidVertexIDError); unreachable while
//     ids start at 1.
//
// A rejected insertion leaves the collection unchanged.
func (c *VertexCollection) AddVertex(x, y, z float64) error {
	next := len(c.vertices) + 1

	if c.shape.Is2D() && z != geometry.PlanarZ {
		return &InvalidVertexCoordinateError{Coordinate: "z", Expected: geometry.PlanarZ, Received: z}
	}
	if limit := c.shape.TotalVertices(); next > limit {
		return &VertexLimitExceededError{Limit: limit, Attempted: next}
	}
	if next == 0 {
		return &InvalidVertexIDError{VertexID: next}
	}

	c.vertices = append(c.vertices, geometry.NewVertex(next, x, y, z))
	return nil
}

// FindVertex returns the vertex with the given id.
// Returns *VertexNotFoundError when id is outside [1, Len()].
func (c *VertexCollection) FindVertex(id int) (geometry.Vertex, error) {
	if !c.VertexExists(id) {
		return geometry.Vertex{}, &VertexNotFoundError{VertexID: id}
	}
	return c.vertices[id-1], nil
}

// VertexExists reports whether id has been assigned.
func (c *VertexCollection) VertexExists(id int) bool {
	return id >= 1 && id <= len(c.vertices)
}
