// SPDX-License-Identifier: MIT

package export

import "errors"

var (
	// ErrNilSource indicates a dump or plot was requested without vertices to read.
	ErrNilSource = errors.New("export: nil vertex source")
	// ErrMalformedDump indicates a dump line that does not match the vertex format.
	ErrMalformedDump = errors.New("export: malformed vertex dump line")
	// ErrLengthMismatch indicates x and y series of different lengths.
	ErrLengthMismatch = errors.New("export: x and y must have the same length")
	// ErrNoPoints indicates an empty plot series.
	ErrNoPoints = errors.New("export: nothing to plot")
)
