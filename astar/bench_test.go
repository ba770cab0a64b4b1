package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// benchGrid builds an n×n grid with ~20% random obstacles, corners kept open.
func benchGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	g, err := gridgraph.New(n, n, gridgraph.Coordinate{}, gridgraph.Coordinate{X: n - 1, Y: n - 1})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	for i := 1; i < n*n-1; i++ {
		if rng.Intn(5) == 0 {
			_ = g.ToggleBlocked(g.Coordinate(i))
		}
	}

	return g
}

// BenchmarkFindPath_Reference measures the 32×32 reference setup.
func BenchmarkFindPath_Reference(b *testing.B) {
	g := benchGrid(b, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g)
	}
}

// BenchmarkFindPath_Large measures corner-to-corner search on 1000×1000.
// Complexity: O(V log V)
func BenchmarkFindPath_Large(b *testing.B) {
	g := benchGrid(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g)
	}
}

// BenchmarkFindPath_Dijkstra is the same search with the zero heuristic.
func BenchmarkFindPath_Dijkstra(b *testing.B) {
	g := benchGrid(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, astar.WithHeuristic(astar.Zero))
	}
}
