package grid

import "fmt"

// ShapeKind tags the variant held by a Shape.
type ShapeKind int

const (
	// KindTwoD marks a planar nx×ny shape.
	KindTwoD ShapeKind = iota
	// KindThreeD marks an nx×ny×nz shape.
	KindThreeD
)

// Shape is the logical extent of a grid: TwoD{nx, ny} or ThreeD{nx, ny, nz}.
// Build values with TwoD or ThreeD; the zero value is an invalid 0×0 TwoD.
type Shape struct {
	kind       ShapeKind
	nx, ny, nz int
}

// TwoD returns a planar nx×ny shape.
func TwoD(nx, ny int) Shape {
	return Shape{kind: KindTwoD, nx: nx, ny: ny, nz: 1}
}

// ThreeD returns an nx×ny×nz shape.
func ThreeD(nx, ny, nz int) Shape {
	return Shape{kind: KindThreeD, nx: nx, ny: ny, nz: nz}
}

// Kind returns the variant tag.
func (s Shape) Kind() ShapeKind { return s.kind }

// Is2D reports whether s is the TwoD variant.
func (s Shape) Is2D() bool { return s.kind == KindTwoD }

// NX returns the number of points along x.
func (s Shape) NX() int { return s.nx }

// NY returns the number of points along y.
func (s Shape) NY() int { return s.ny }

// NZ returns the number of points along z; always 1 for TwoD.
func (s Shape) NZ() int {
	switch s.kind {
	case KindThreeD:
		return s.nz
	default:
		return 1
	}
}

// PlaneSize returns nx·ny, the stride of a depth step.
func (s Shape) PlaneSize() int { return s.nx * s.ny }

// TotalVertices returns nx·ny·nz.
func (s Shape) TotalVertices() int { return s.PlaneSize() * s.NZ() }

// Validate checks every extent is at least 1.
func (s Shape) Validate() error {
	if s.nx < 1 || s.ny < 1 || s.NZ() < 1 {
		return fmt.Errorf("%s: %w", s, ErrInvalidShape)
	}
	switch s.kind {
	case KindTwoD, KindThreeD:
		return nil
	default:
		return fmt.Errorf("kind %d: %w", int(s.kind), ErrInvalidShape)
	}
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s.kind {
	case KindThreeD:
		return fmt.Sprintf("ThreeD{nx:%d, ny:%d, nz:%d}", s.nx, s.ny, s.nz)
	default:
		return fmt.Sprintf("TwoD{nx:%d, ny:%d}", s.nx, s.ny)
	}
}
