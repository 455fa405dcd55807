package dfs_test

import (
	"testing"

	"github.com/katalvlaran/toposort/dfs"
	"github.com/katalvlaran/toposort/matrix"
)

// buildChain constructs a linear chain 0 → 1 → ... → n-1 as a bool matrix.
// Construction is O(n²) and excluded from timing via b.ResetTimer.
func buildChain(n int) matrix.Adjacency[bool] {
	g := make(matrix.Adjacency[bool], n)
	for i := range g {
		g[i] = make([]bool, n)
	}
	for i := 0; i < n-1; i++ {
		g[i][i+1] = true
	}

	return g
}

// BenchmarkSort_Chain2048 measures the worst stack depth: every vertex sits
// on the frame stack at once, so this also exercises the iterative hardening.
func BenchmarkSort_Chain2048(b *testing.B) {
	g := buildChain(2048)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Sort(g)
	}
}

// BenchmarkSortWithTimes_Dense512 measures the dense extreme: an edge i→j
// for every i < j, where each row scan finds mostly black neighbors.
func BenchmarkSortWithTimes_Dense512(b *testing.B) {
	const n = 512
	g := make(matrix.Adjacency[bool], n)
	for i := range g {
		g[i] = make([]bool, n)
		for j := i + 1; j < n; j++ {
			g[i][j] = true
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.SortWithTimes(g)
	}
}
