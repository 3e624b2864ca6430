// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognised names.
var ErrUnknownDirection = errors.New("geometry: unknown direction")

// Direction selects a logical neighbor of a grid vertex.
//
//	North = +y, South = −y, East = +x, West = −x   (plane axes)
//	Up    = +z, Down  = −z                         (depth axis, 3-D only)
type Direction int

const (
	// North steps towards +y.
	North Direction = iota
	// South steps towards −y.
	South
	// East steps towards +x.
	East
	// West steps towards −x.
	West
	// Up steps towards +z.
	Up
	// Down steps towards −z.
	Down
)

var directionNames = [...]string{
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
	Up:    "Up",
	Down:  "Down",
}

// PlanarDirections lists the four in-plane directions in N, S, E, W order.
func PlanarDirections() []Direction {
	return []Direction{North, South, East, West}
}

// AllDirections lists all six directions.
func AllDirections() []Direction {
	return []Direction{North, South, East, West, Up, Down}
}

// IsPlanar reports whether d lies in the xy-plane.
func (d Direction) IsPlanar() bool {
	switch d {
	case North, South, East, West:
		return true
	default:
		return false
	}
}

// Opposite returns the direction pointing the other way.
// Unknown values are returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps a case-insensitive name ("north", "n", ...) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	case "west", "w":
		return West, nil
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownDirection)
}
