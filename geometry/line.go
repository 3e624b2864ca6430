// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Line is a straight segment between two vertices.
type Line struct {
	Start, End Vertex
}

// NewLine returns the segment start→end.
func NewLine(start, end Vertex) Line {
	return Line{Start: start, End: end}
}

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 {
	return l.Start.Coords.DistanceTo(l.End.Coords)
}

// Midpoint returns the point halfway between Start and End.
func (l Line) Midpoint() Point {
	return Mean(l.Start.Coords, l.End.Coords)
}

// String implements fmt.Stringer.
func (l Line) String() string {
	return fmt.Sprintf("line %d→%d", l.Start.ID, l.End.ID)
}
