// SPDX-License-Identifier: MIT

package mesher

import "math"

// minPoints is the smallest usable point count along an axis.
const minPoints = 2

func validatePoints(nx, ny int) error {
	if nx < minPoints || ny < minPoints {
		return ErrTooFewPoints
	}
	return nil
}

func validateLength(lenx float64) error {
	if math.IsNaN(lenx) || math.IsInf(lenx, 0) || lenx <= 0 {
		return ErrInvalidLength
	}
	return nil
}

func validateHeight(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return ErrInvalidHeight
	}
	return nil
}

func validateBeta(beta float64) error {
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta <= 0 {
		return ErrInvalidBeta
	}
	return nil
}

func validateKind(kind DistributionKind) error {
	if _, ok := distributionNames[kind]; !ok {
		return ErrUnknownDistribution
	}
	return nil
}
