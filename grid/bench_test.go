package grid_test

import (
	"testing"

	"github.com/katalvlaran/wavepath/grid"
)

// BenchmarkResetPath measures clearing a fully explored 256×256 grid.
// Complexity: O(n²)
func BenchmarkResetPath(b *testing.B) {
	const n = 256
	g, err := grid.New(n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				g.MarkFrontier(grid.Cell{X: x, Y: y}, x+y+1)
			}
		}
		b.StartTimer()
		g.ResetPath()
	}
}

// BenchmarkSnapshot measures copying a 256×256 grid for a renderer.
func BenchmarkSnapshot(b *testing.B) {
	g, _ := grid.New(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Snapshot()
	}
}
