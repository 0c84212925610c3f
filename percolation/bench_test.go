package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/percolation"
)

// BenchmarkOpenUntilPercolates measures one full random fill of a 1000×1000
// grid, stopping at the first percolating state.
func BenchmarkOpenUntilPercolates(b *testing.B) {
	const n = 1000
	r := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := percolation.New(n)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for !g.Percolates() {
			_ = g.Open(r.Intn(n)+1, r.Intn(n)+1)
		}
	}
}
