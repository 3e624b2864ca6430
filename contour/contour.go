// SPDX-License-Identifier: MIT

// Package contour supplies inlet contours: functions giving the local domain
// height as a function of x. A contour must be pure and deterministic; the
// mesher evaluates it once per grid column.
//
// Sources:
//
//   - Constant(h)           flat channel.
//   - StraightLine{M, C}    linear taper y = M·x + C.
//   - Polynomial            arbitrary order, evaluated with Horner's rule.
//   - Expression("...")     user formula in x, compiled with govaluate.
//   - Default()             1 − x²/10, the reference nozzle.
package contour

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for contour construction.
var (
	// ErrVerticalLine indicates two points with equal x were given to FromPoints.
	ErrVerticalLine = errors.New("contour: line through points is vertical")
	// ErrEmptyPolynomial indicates a polynomial without coefficients.
	ErrEmptyPolynomial = errors.New("contour: polynomial has no coefficients")
	// ErrBadExpression indicates an expression failed to compile or uses
	// variables other than x.
	ErrBadExpression = errors.New("contour: invalid expression")
)

// Func maps an x position to the local domain height.
type Func func(x float64) float64

// Constant returns a contour of fixed height h.
func Constant(h float64) Func {
	return func(float64) float64 { return h }
}

// Default returns the reference nozzle contour 1 − x²/10.
func Default() Func {
	p, _ := NewPolynomial(-0.1, 0, 1)
	return p.Func()
}

// StraightLine is y = M·x + C.
type StraightLine struct {
	M float64 // gradient
	C float64 // y-intercept
}

// FromPoints returns the line through (x1, y1) and (x2, y2).
func FromPoints(x1, y1, x2, y2 float64) (StraightLine, error) {
	if x1 == x2 {
		return StraightLine{}, fmt.Errorf("x1 = x2 = %g: %w", x1, ErrVerticalLine)
	}
	m := (y2 - y1) / (x2 - x1)
	return StraightLine{M: m, C: y1 - m*x1}, nil
}

// Eval returns M·x + C.
func (l StraightLine) Eval(x float64) float64 { return l.M*x + l.C }

// Func adapts l to a contour.
func (l StraightLine) Func() Func { return l.Eval }

// String renders the line, e.g. "y = 2.00x + 3.00".
func (l StraightLine) String() string {
	switch {
	case l.M != 0 && l.C != 0:
		return fmt.Sprintf("y = %.2fx %s %.2f", l.M, sign(l.C), math.Abs(l.C))
	case l.M != 0:
		return fmt.Sprintf("y = %.2fx", l.M)
	case l.C != 0:
		return fmt.Sprintf("y = %.2f", l.C)
	default:
		return "y = 0"
	}
}

// Polynomial holds coefficients from the highest power down to the constant.
type Polynomial struct {
	coefs []float64
}

// NewPolynomial returns the polynomial with the given coefficients, highest
// power first: NewPolynomial(1, 2, -3) is x² + 2x − 3.
func NewPolynomial(coefs ...float64) (Polynomial, error) {
	if len(coefs) == 0 {
		return Polynomial{}, ErrEmptyPolynomial
	}
	c := make([]float64, len(coefs))
	copy(c, coefs)
	return Polynomial{coefs: c}, nil
}

// Order returns the highest power.
func (p Polynomial) Order() int { return len(p.coefs) - 1 }

// Eval evaluates p at x with Horner's rule. Complexity: O(Order()).
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for _, c := range p.coefs {
		y = y*x + c
	}
	return y
}

// Func adapts p to a contour.
func (p Polynomial) Func() Func { return p.Eval }

// String renders p, e.g. "y = 1.00x^3 + 2.00x^2 - 3.00x + 4.00".
func (p Polynomial) String() string {
	var b strings.Builder
	order := p.Order()
	first := true
	for i, c := range p.coefs {
		if c == 0 {
			continue
		}
		if first {
			b.WriteString("y = ")
			if c < 0 {
				b.WriteString("-")
			}
			first = false
		} else {
			fmt.Fprintf(&b, " %s ", sign(c))
		}
		switch power := order - i; power {
		case 0:
			fmt.Fprintf(&b, "%.2f", math.Abs(c))
		case 1:
			fmt.Fprintf(&b, "%.2fx", math.Abs(c))
		default:
			fmt.Fprintf(&b, "%.2fx^%d", math.Abs(c), power)
		}
	}
	if first {
		return "y = 0"
	}
	return b.String()
}

func sign(v float64) string {
	if v < 0 {
		return "-"
	}
	return "+"
}
