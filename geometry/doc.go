// SPDX-License-Identifier: MIT

// Package geometry provides the point primitives shared by the structured
// grid: Point, Vertex, Line and the Direction compass used for adjacency.
//
// What:
//
//   - Point is an (x, y, z) location; vector math is delegated to gonum's r3.
//   - Vertex is an immutable identified point. Planar (2-D) vertices keep
//     z pinned to PlanarZ.
//   - Line joins two vertices and is used as the bounding face of a logical cell.
//   - Direction names the six logical neighbors: North/South (±y),
//     East/West (±x) and Up/Down (±z, 3-D only).
//
// Values in this package are small and passed by value; nothing here
// allocates on the heap beyond what fmt needs for String methods.
package geometry
