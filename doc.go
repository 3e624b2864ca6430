// Package structgrid generates structured (logically rectangular) grids for
// numerical-simulation preprocessing and answers topology queries on them.
//
// What is structgrid?
//
//	A small library plus CLI that brings together:
//		• Geometry primitives: points, vertices, lines, directions
//		• Vertex storage: dense 1-based ids validated against a declared shape
//		• Topology: id ↔ (i, j, k), boundary tests, neighbour lookup, cells
//		• Generation: uniform and tanh-clustered wall spacing under an inlet contour
//		• Export: text vertex dumps (plain, gzip, zstd) and PNG plots
//
// Under the hood, everything is organized under these subpackages:
//
//	geometry/  Point, Vertex, Line and the six Directions
//	grid/      Shape, IndexOrder (IJK, JIK), VertexCollection, Cell
//	contour/   inlet height functions: straight lines, polynomials, expressions
//	mesher/    column spacing, wall distributions, BuildGrid
//	export/    vertex dumps and plots
//	config/    TOML/YAML run descriptions
//
// Quick ASCII example, a 3×3 grid in IJK order:
//
//	7───8───9
//	│   │   │
//	4───5───6
//	│   │   │
//	1───2───3
//
// North of 5 is 8, East of 5 is 6; 3 is on the East and South boundaries.
//
//	go install github.com/katalvlaran/structgrid/cmd/structgrid@latest
package structgrid
