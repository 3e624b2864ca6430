// SPDX-License-Identifier: MIT

package mesher

import (
	"fmt"
	"math"
	"strings"
)

// DistributionKind selects how the rows of a column are spaced between y = 0
// and the local domain height.
type DistributionKind int

const (
	// Uniform spaces rows evenly.
	Uniform DistributionKind = iota
	// HyperbolicTangent clusters rows towards both walls with a tanh
	// stretch; the widest gap is at mid-height.
	// Its range is [0, 2·leny], not [0, leny].
	HyperbolicTangent
	// TopClusteredTangent stretches rows with tanh(β·η)/tanh(β). y rises
	// fastest at η = 0, so spacing is coarsest at the South wall and finest
	// at the contour.
	TopClusteredTangent
)

var distributionNames = map[DistributionKind]string{
	Uniform:             "uniform",
	HyperbolicTangent:   "hyperbolic-tangent",
	TopClusteredTangent: "top-clustered-tangent",
}

// String implements fmt.Stringer.
func (k DistributionKind) String() string {
	if s, ok := distributionNames[k]; ok {
		return s
	}
	return fmt.Sprintf("DistributionKind(%d)", int(k))
}

// UsesBeta reports whether k reads the clustering factor.
func (k DistributionKind) UsesBeta() bool {
	return k == HyperbolicTangent || k == TopClusteredTangent
}

// ParseDistribution maps a case-insensitive name to a DistributionKind.
// Accepted: uniform, hyperbolic-tangent (tanh), top-clustered-tangent (top-tanh).
func ParseDistribution(s string) (DistributionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform":
		return Uniform, nil
	case "hyperbolic-tangent", "hyperbolictangent", "tanh":
		return HyperbolicTangent, nil
	case "top-clustered-tangent", "topclusteredtangent", "top-tanh":
		return TopClusteredTangent, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownDistribution)
}

// Distribute returns the ny row positions of a column of height leny.
// beta is read only by the tangent kinds.
//
// Errors: ErrTooFewPoints, ErrInvalidHeight, ErrInvalidBeta, ErrUnknownDistribution.
// Complexity: O(ny).
func Distribute(kind DistributionKind, ny int, leny, beta float64) ([]float64, error) {
	if ny < minPoints {
		return nil, mesherErrorf(methodDistribute, "ny=%d", ErrTooFewPoints, ny)
	}
	if err := validateHeight(leny); err != nil {
		return nil, mesherErrorf(methodDistribute, "leny=%g", err, leny)
	}
	if err := validateKind(kind); err != nil {
		return nil, mesherErrorf(methodDistribute, "kind=%s", err, kind)
	}
	if kind.UsesBeta() {
		if err := validateBeta(beta); err != nil {
			return nil, mesherErrorf(methodDistribute, "beta=%g", err, beta)
		}
	}

	ys := make([]float64, ny)
	last := float64(ny - 1)
	switch kind {
	case Uniform:
		dy := leny / last
		for j := range ys {
			ys[j] = float64(j) * dy
		}
		ys[ny-1] = leny
	case HyperbolicTangent:
		norm := math.Tanh(beta / 2)
		for j := range ys {
			eta := float64(j) / last
			ys[j] = leny * (1 + math.Tanh(beta*(eta-0.5))/norm)
		}
	case TopClusteredTangent:
		norm := math.Tanh(beta)
		for j := range ys {
			eta := float64(j) / last
			ys[j] = leny * math.Tanh(beta*eta) / norm
		}
	}
	return ys, nil
}
