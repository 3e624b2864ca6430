package grid

import (
	"fmt"

	"github.com/katalvlaran/structgrid/geometry"
)

// Coordinate returns the logical coordinate of an existing vertex.
// Returns *VertexNotFoundError for unknown ids.
func (c *VertexCollection) Coordinate(id int) (Coord, error) {
	if !c.VertexExists(id) {
		return Coord{}, &VertexNotFoundError{VertexID: id}
	}
	return c.order.coordinate(c.shape, id), nil
}

// ID returns the linear id that the collection's order assigns to (i, j, k),
// whether or not that vertex has been inserted yet.
// Returns ErrVertexNotFound when the coordinate lies outside the shape.
func (c *VertexCollection) ID(at Coord) (int, error) {
	if !c.InBounds(at) {
		return 0, fmt.Errorf("coordinate %+v outside %s: %w", at, c.shape, ErrVertexNotFound)
	}
	return c.order.linear(c.shape, at), nil
}

// InBounds reports whether at lies within the shape.
func (c *VertexCollection) InBounds(at Coord) bool {
	return at.I >= 0 && at.I < c.shape.NX() &&
		at.J >= 0 && at.J < c.shape.NY() &&
		at.K >= 0 && at.K < c.shape.NZ()
}

// checkDirection rejects depth directions on planar shapes and unknown values.
func (c *VertexCollection) checkDirection(d geometry.Direction) error {
	switch d {
	case geometry.North, geometry.South, geometry.East, geometry.West:
		return nil
	case geometry.Up, geometry.Down:
		if c.shape.Is2D() {
			return &InvalidDirectionError{Direction: d}
		}
		return nil
	default:
		return &InvalidDirectionError{Direction: d}
	}
}

// IsBoundaryVertex reports whether id lies on the logical face towards d.
//
// Faces per order (nx, ny, nz from the shape; identical to the id tests
// id ≤ nx, id mod nx == 0, ... on every 2-D grid with nx, ny ≥ 2):
//
//	South j == 0      North j == ny−1
//	West  i == 0      East  i == nx−1
//	Down  k == 0      Up    k == nz−1
//
// Returns *InvalidDirectionError for Up/Down on a 2-D shape and
// *VertexNotFoundError for unknown ids.
func (c *VertexCollection) IsBoundaryVertex(id int, d geometry.Direction) (bool, error) {
	if err := c.checkDirection(d); err != nil {
		return false, err
	}
	at, err := c.Coordinate(id)
	if err != nil {
		return false, err
	}
	return c.onFace(at, d), nil
}

func (c *VertexCollection) onFace(at Coord, d geometry.Direction) bool {
	switch d {
	case geometry.South:
		return at.J == 0
	case geometry.North:
		return at.J == c.shape.NY()-1
	case geometry.West:
		return at.I == 0
	case geometry.East:
		return at.I == c.shape.NX()-1
	case geometry.Down:
		return at.K == 0
	case geometry.Up:
		return at.K == c.shape.NZ()-1
	default:
		return true
	}
}

// FindAdjacentVertex returns the neighbor of id towards d.
//
// Errors, in evaluation order:
//   - *VertexNotFoundError if id does not exist;
//   - *InvalidDirectionError for Up/Down on a 2-D shape;
//   - *BoundaryVertexError if id lies on the face towards d;
//   - *VertexNotFoundError if the neighbor id has not been inserted yet
//     (only possible on an incomplete collection).
func (c *VertexCollection) FindAdjacentVertex(id int, d geometry.Direction) (geometry.Vertex, error) {
	if !c.VertexExists(id) {
		return geometry.Vertex{}, &VertexNotFoundError{VertexID: id}
	}
	boundary, err := c.IsBoundaryVertex(id, d)
	if err != nil {
		return geometry.Vertex{}, err
	}
	if boundary {
		return geometry.Vertex{}, &BoundaryVertexError{VertexID: id, Direction: d}
	}
	return c.FindVertex(id + c.step(d))
}

// step returns the signed id delta for one move towards d.
func (c *VertexCollection) step(d geometry.Direction) int {
	dx, dy, dz := c.order.strides(c.shape)
	switch d {
	case geometry.East:
		return dx
	case geometry.West:
		return -dx
	case geometry.North:
		return dy
	case geometry.South:
		return -dy
	case geometry.Up:
		return dz
	case geometry.Down:
		return -dz
	default:
		return 0
	}
}

// Neighbors returns the existing neighbors of id keyed by direction.
// Boundary faces are skipped; Up/Down are only probed on 3-D shapes.
func (c *VertexCollection) Neighbors(id int) (map[geometry.Direction]geometry.Vertex, error) {
	if !c.VertexExists(id) {
		return nil, &VertexNotFoundError{VertexID: id}
	}
	dirs := geometry.PlanarDirections()
	if !c.shape.Is2D() {
		dirs = geometry.AllDirections()
	}
	out := make(map[geometry.Direction]geometry.Vertex, len(dirs))
	for _, d := range dirs {
		v, err := c.FindAdjacentVertex(id, d)
		if err != nil {
			continue
		}
		out[d] = v
	}
	return out, nil
}
