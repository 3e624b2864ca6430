// SPDX-License-Identifier: MIT

// Package mesher generates the vertices of a structured 2-D grid over a domain
// whose height varies with x (the inlet contour), spacing the rows of each
// column with a wall distribution.
//
// What:
//
//   - Columns: nx positions x_i = i·lenx/(nx−1), computed from the integer
//     index so the last column lands exactly on lenx.
//   - Rows: for each column the contour gives leny = h(x_i); Distribute places
//     ny rows with η_j = j/(ny−1):
//
//     Uniform              y_j = η_j · leny
//     HyperbolicTangent    y_j = leny · (1 + tanh(β(η_j − ½)) / tanh(β/2))   range [0, 2·leny]
//     TopClusteredTangent  y_j = leny · tanh(β·η_j) / tanh(β)               range [0, leny]
//
//   - BuildGrid feeds every (x_i, y_j, 1) into a grid.VertexCollection, column
//     by column, so id 1 is column 0/row 0 and id ny+1 is column 1/row 0.
//     The collection is created with grid.IJK unless WithOrder says otherwise.
//
// Options:
//
//   - WithBeta(β):      clustering factor of the tangent distributions (default 2.0).
//   - WithOrder(o):     index order of the collection (default grid.IJK); grid.JIK
//                       matches the column-by-column emission for any nx, ny.
//   - WithLogger(l):    charmbracelet logger for progress and validation warnings.
//
// Errors:
//
//   - ErrTooFewPoints:        nx < 2 or ny < 2.
//   - ErrInvalidLength:       lenx ≤ 0 or non-finite.
//   - ErrInvalidBeta:         β ≤ 0 or non-finite.
//   - ErrNilContour:          no contour supplied.
//   - ErrUnknownDistribution: kind outside the three supported distributions.
//   - ErrInvalidHeight:       the contour returned a negative or non-finite height.
//   - grid errors from insertion are passed through wrapped.
//
// Complexity: O(nx·ny) time, O(nx·ny) memory for the collection.
package mesher
