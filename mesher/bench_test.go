// SPDX-License-Identifier: MIT
package mesher_test

import (
	"testing"

	"github.com/katalvlaran/structgrid/contour"
	"github.com/katalvlaran/structgrid/mesher"
)

// BenchmarkBuildGrid measures the reference 200×100 nozzle grid.
// Complexity: O(nx·ny).
func BenchmarkBuildGrid(b *testing.B) {
	h := contour.Default()
	for i := 0; i < b.N; i++ {
		if _, err := mesher.BuildGrid(200, 100, 2.0, mesher.HyperbolicTangent, h); err != nil {
			b.Fatal(err)
		}
	}
}
