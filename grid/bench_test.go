package grid

import (
	"testing"

	"github.com/katalvlaran/structgrid/geometry"
)

// BenchmarkFindAdjacentVertex measures one neighbor lookup per direction on a
// 500×500 grid. Complexity: O(1) per call.
func BenchmarkFindAdjacentVertex(b *testing.B) {
	c := mustFill(b, TwoD(500, 500), IJK)
	dirs := geometry.PlanarDirections()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := i%c.Len() + 1
		_, _ = c.FindAdjacentVertex(id, dirs[i%len(dirs)])
	}
}
