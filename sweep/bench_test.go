package sweep_test

import (
	"testing"

	"github.com/katalvlaran/viewshed/sweep"
	"github.com/katalvlaran/viewshed/terrain"
	"github.com/katalvlaran/viewshed/tiles"
)

// BenchmarkViewshed measures one exact sweep on a 128×128 terrain.
// Complexity: O(n log n).
func BenchmarkViewshed(b *testing.B) {
	g, err := terrain.Hills(128, 128, terrain.DefaultHillsOptions(), 42)
	if err != nil {
		b.Fatalf("setup Hills failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sweep.VisibleCount(g, 64, 64); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkApproxViewshed measures one square sweep on the same terrain
// decomposed with a 5-unit tolerance.
func BenchmarkApproxViewshed(b *testing.B) {
	g, err := terrain.Hills(128, 128, terrain.DefaultHillsOptions(), 42)
	if err != nil {
		b.Fatalf("setup Hills failed: %v", err)
	}
	set, err := tiles.Decompose(g, 5)
	if err != nil {
		b.Fatalf("setup Decompose failed: %v", err)
	}
	vp, _ := set.Locate(64, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sweep.ApproxVisibleCount(set, vp); err != nil {
			b.Fatal(err)
		}
	}
}
