// SPDX-License-Identifier: MIT

package mesher

import (
	"errors"
	"fmt"
)

// Method tags used as error prefixes.
const (
	methodBuildGrid  = "BuildGrid"
	methodDistribute = "Distribute"
	methodColumns    = "Columns"
)

// ErrTooFewPoints indicates nx or ny below 2; spacing divides by n−1.
var ErrTooFewPoints = errors.New("mesher: at least two points per axis are required")

// ErrInvalidLength indicates a domain length that is not a positive finite number.
var ErrInvalidLength = errors.New("mesher: domain length must be positive and finite")

// ErrInvalidHeight indicates the contour produced a negative or non-finite height.
var ErrInvalidHeight = errors.New("mesher: contour height must be non-negative and finite")

// ErrInvalidBeta indicates a clustering factor that is not a positive finite number.
var ErrInvalidBeta = errors.New("mesher: clustering factor must be positive and finite")

// ErrNilContour indicates BuildGrid was called without a contour.
var ErrNilContour = errors.New("mesher: contour is nil")

// ErrUnknownDistribution indicates an unsupported DistributionKind.
var ErrUnknownDistribution = errors.New("mesher: unknown wall distribution")

// mesherErrorf prefixes err with the method tag, keeping err matchable with errors.Is.
func mesherErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
