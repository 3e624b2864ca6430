// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Vertex is an identified grid point. IDs are dense and 1-based within the
// collection that assigned them; a Vertex is never modified after creation.
type Vertex struct {
	// ID is the linear identifier assigned at insertion time.
	ID int
	// Coords is the physical location of the vertex.
	Coords Point
}

// NewVertex returns a vertex with the given id at (x, y, z).
func NewVertex(id int, x, y, z float64) Vertex {
	return Vertex{ID: id, Coords: NewPoint(x, y, z)}
}

// IsPlanar reports whether v sits on the 2-D plane z == PlanarZ.
func (v Vertex) IsPlanar() bool {
	return v.Coords.Z == PlanarZ
}

// String implements fmt.Stringer.
func (v Vertex) String() string {
	return fmt.Sprintf("vertex %d at (%g, %g, %g)", v.ID, v.Coords.X, v.Coords.Y, v.Coords.Z)
}
