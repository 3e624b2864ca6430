package grid

import (
	"github.com/katalvlaran/structgrid/geometry"
)

// Cell is the logical quadrilateral whose south-west corner is a vertex.
// Faces run South: SW→SE, East: SE→NE, North: NW→NE, West: SW→NW.
type Cell struct {
	// ID equals the id of the south-west corner vertex.
	ID    int
	North geometry.Line
	East  geometry.Line
	South geometry.Line
	West  geometry.Line
}

// Corners returns the corner vertices in SW, SE, NE, NW order.
func (c Cell) Corners() [4]geometry.Vertex {
	return [4]geometry.Vertex{c.South.Start, c.South.End, c.North.End, c.North.Start}
}

// Centre returns the mean of the four corner points.
func (c Cell) Centre() geometry.Point {
	k := c.Corners()
	return geometry.Mean(k[0].Coords, k[1].Coords, k[2].Coords, k[3].Coords)
}

// CellAt returns the cell anchored at vertex id. Corners are found by id
// arithmetic, so the collection must have been filled in its own order.
// Vertices on the East or North face anchor no cell and yield a
// *BoundaryVertexError for that face; unknown ids yield *VertexNotFoundError.
func (c *VertexCollection) CellAt(id int) (Cell, error) {
	sw, err := c.FindVertex(id)
	if err != nil {
		return Cell{}, err
	}
	se, err := c.FindAdjacentVertex(id, geometry.East)
	if err != nil {
		return Cell{}, err
	}
	nw, err := c.FindAdjacentVertex(id, geometry.North)
	if err != nil {
		return Cell{}, err
	}
	ne, err := c.FindAdjacentVertex(se.ID, geometry.North)
	if err != nil {
		return Cell{}, err
	}
	return Cell{
		ID:    id,
		North: geometry.NewLine(nw, ne),
		East:  geometry.NewLine(se, ne),
		South: geometry.NewLine(sw, se),
		West:  geometry.NewLine(sw, nw),
	}, nil
}

// Cells returns every cell of the collection in ascending anchor id order.
// Complexity: O(Len()).
func (c *VertexCollection) Cells() []Cell {
	out := make([]Cell, 0, len(c.vertices))
	for id := 1; id <= len(c.vertices); id++ {
		cell, err := c.CellAt(id)
		if err != nil {
			continue
		}
		out = append(out, cell)
	}
	return out
}
