package grid

import "fmt"

// IndexOrder is the convention that flattens (i, j, k) into a linear id.
type IndexOrder int

const (
	// IJK advances the id fastest along x, then y, then z.
	IJK IndexOrder = iota
	// JIK advances the id fastest along y, then x, then z.
	JIK
)

// String implements fmt.Stringer.
func (o IndexOrder) String() string {
	switch o {
	case IJK:
		return "IJK"
	case JIK:
		return "JIK"
	default:
		return fmt.Sprintf("IndexOrder(%d)", int(o))
	}
}

func (o IndexOrder) validate() error {
	switch o {
	case IJK, JIK:
		return nil
	default:
		return fmt.Errorf("%s: %w", o, ErrUnknownOrder)
	}
}

// Coord is a zero-based logical coordinate: I along x, J along y, K along z.
type Coord struct {
	I, J, K int
}

// coordinate maps id (1-based) to its logical coordinate under o.
// It does not range-check id.
func (o IndexOrder) coordinate(s Shape, id int) Coord {
	v := id - 1
	plane := s.PlaneSize()
	k, r := v/plane, v%plane
	switch o {
	case JIK:
		return Coord{I: r / s.ny, J: r % s.ny, K: k}
	default:
		return Coord{I: r % s.nx, J: r / s.nx, K: k}
	}
}

// linear maps a logical coordinate back to its 1-based id under o.
func (o IndexOrder) linear(s Shape, c Coord) int {
	base := c.K * s.PlaneSize()
	switch o {
	case JIK:
		return base + c.I*s.ny + c.J + 1
	default:
		return base + c.J*s.nx + c.I + 1
	}
}

// strides returns the id deltas for one step along +x, +y and +z.
func (o IndexOrder) strides(s Shape) (dx, dy, dz int) {
	switch o {
	case JIK:
		return s.ny, 1, s.PlaneSize()
	default:
		return 1, s.nx, s.PlaneSize()
	}
}
