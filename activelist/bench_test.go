package activelist_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/viewshed/activelist"
)

// BenchmarkList_InsertQueryDelete measures one sweep-shaped cycle on a list
// already holding 10k entries.
// Complexity: O(log n) per operation.
func BenchmarkList_InsertQueryDelete(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(7))
	l := activelist.New()
	for i := 0; i < n; i++ {
		if err := l.Insert(rng.Float64()*1000, i, rng.Float64()); err != nil {
			b.Fatalf("setup Insert failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := float64(i%1000) + 0.5
		_ = l.Insert(d, n+i, 0.3)
		_ = l.MaxGradientAtOrBelow(d)
		_ = l.Delete(d, n+i)
	}
}
