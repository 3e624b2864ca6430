// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// PlanarZ is the z-coordinate every vertex of a 2-D grid carries.
const PlanarZ = 1.0

// Point is a location in three-dimensional space.
type Point struct {
	X, Y, Z float64
}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin returns (0, 0, 0).
func Origin() Point {
	return Point{}
}

// Vec converts p to a gonum r3 vector.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// FromVec converts a gonum r3 vector back to a Point.
func FromVec(v r3.Vec) Point {
	return Point{X: v.X, Y: v.Y, Z: v.Z}
}

// DistanceTo returns the Euclidean distance between p and q.
// Complexity: O(1).
func (p Point) DistanceTo(q Point) float64 {
	return r3.Norm(r3.Sub(p.Vec(), q.Vec()))
}

// Mean returns the arithmetic mean of pts, or the origin when pts is empty.
func Mean(pts ...Point) Point {
	if len(pts) == 0 {
		return Origin()
	}
	var sum r3.Vec
	for _, p := range pts {
		sum = r3.Add(sum, p.Vec())
	}
	return FromVec(r3.Scale(1/float64(len(pts)), sum))
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g, %g)", p.X, p.Y, p.Z)
}
