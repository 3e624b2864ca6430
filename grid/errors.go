package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/structgrid/geometry"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidVertexID indicates a vertex would have been assigned id 0.
	ErrInvalidVertexID = errors.New("grid: invalid vertex id")
	// ErrInvalidVertexCoordinate indicates a 2-D vertex whose z is not geometry.PlanarZ.
	ErrInvalidVertexCoordinate = errors.New("grid: invalid vertex coordinate")
	// ErrVertexLimitExceeded indicates an insertion beyond Shape.TotalVertices.
	ErrVertexLimitExceeded = errors.New("grid: vertex limit exceeded")
	// ErrVertexNotFound indicates a query referenced an id outside [1, Len()].
	ErrVertexNotFound = errors.New("grid: vertex not found")
	// ErrInvalidDirection indicates Up/Down was requested on a 2-D shape.
	ErrInvalidDirection = errors.New("grid: invalid direction")
	// ErrBoundaryVertex indicates there is no neighbor in the requested direction.
	ErrBoundaryVertex = errors.New("grid: boundary vertex")
	// ErrInvalidShape indicates a shape extent below 1.
	ErrInvalidShape = errors.New("grid: invalid shape")
	// ErrUnknownOrder indicates an IndexOrder outside {IJK, JIK}.
	ErrUnknownOrder = errors.New("grid: unknown index order")
	// ErrEmptyCollection indicates an aggregate was requested from an empty collection.
	ErrEmptyCollection = errors.New("grid: empty collection")
)

// InvalidVertexIDError reports an attempt to assign id 0.
type InvalidVertexIDError struct {
	VertexID int
}

func (e *InvalidVertexIDError) Error() string {
	return fmt.Sprintf("grid: invalid vertex id %d", e.VertexID)
}

func (e *InvalidVertexIDError) Unwrap() error { return ErrInvalidVertexID }

// InvalidVertexCoordinateError reports a coordinate that violates the shape's
// pinning rule (z on 2-D grids).
type InvalidVertexCoordinateError struct {
	Coordinate string
	Expected   float64
	Received   float64
}

func (e *InvalidVertexCoordinateError) Error() string {
	return fmt.Sprintf("grid: invalid %s coordinate: expected %g, received %g",
		e.Coordinate, e.Expected, e.Received)
}

func (e *InvalidVertexCoordinateError) Unwrap() error { return ErrInvalidVertexCoordinate }

// VertexLimitExceededError reports an insertion past the shape's capacity.
type VertexLimitExceededError struct {
	Limit     int
	Attempted int
}

func (e *VertexLimitExceededError) Error() string {
	return fmt.Sprintf("grid: vertex limit %d exceeded by id %d", e.Limit, e.Attempted)
}

func (e *VertexLimitExceededError) Unwrap() error { return ErrVertexLimitExceeded }

// VertexNotFoundError reports a lookup miss.
type VertexNotFoundError struct {
	VertexID int
}

func (e *VertexNotFoundError) Error() string {
	return fmt.Sprintf("grid: vertex %d not found", e.VertexID)
}

func (e *VertexNotFoundError) Unwrap() error { return ErrVertexNotFound }

// InvalidDirectionError reports a direction the shape cannot honour.
type InvalidDirectionError struct {
	Direction geometry.Direction
}

func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("grid: invalid direction %s for a 2-D grid", e.Direction)
}

func (e *InvalidDirectionError) Unwrap() error { return ErrInvalidDirection }

// BoundaryVertexError reports that VertexID has no neighbor towards Direction.
type BoundaryVertexError struct {
	VertexID  int
	Direction geometry.Direction
}

func (e *BoundaryVertexError) Error() string {
	return fmt.Sprintf("grid: vertex %d is on the %s boundary", e.VertexID, e.Direction)
}

func (e *BoundaryVertexError) Unwrap() error { return ErrBoundaryVertex }
