// Package grid is the topology layer of a structured (logically rectangular)
// grid: it stores vertices under dense 1-based ids and answers boundary and
// adjacency queries by arithmetic on those ids.
//
// What:
//
//   - Shape describes the logical extents, TwoD(nx, ny) or ThreeD(nx, ny, nz).
//   - IndexOrder flattens a logical coordinate (i, j, k) into a linear id:
//     IJK advances x fastest, JIK advances y fastest; z is always slowest.
//   - VertexCollection owns the vertices (append-only arena indexed by id−1),
//     validates insertions and resolves neighbors.
//   - Cell exposes the four bounding faces of a logical 2-D cell.
//
// Strides:
//
//	           x-step   y-step   z-step
//	IJK          1        nx      nx·ny
//	JIK          ny       1       nx·ny
//
// Boundary faces are decided from the logical coordinate before any stepping,
// so a neighbor id is only ever computed when it exists.
//
// Errors:
//
//   - ErrInvalidVertexID, ErrInvalidVertexCoordinate, ErrVertexLimitExceeded,
//     ErrVertexNotFound, ErrInvalidDirection, ErrBoundaryVertex: the query and
//     insertion taxonomy. Each is also returned as a typed *XxxError carrying
//     its payload; use errors.Is for the class and errors.As for the fields.
//   - ErrInvalidShape, ErrUnknownOrder, ErrEmptyCollection: construction/export.
//
// Concurrency:
//
//	A collection has a single writer during construction. Once AddVertex calls
//	stop, every method is read-only and safe for concurrent readers.
//
// Complexity: all queries are O(1); AddVertex is amortized O(1).
package grid
