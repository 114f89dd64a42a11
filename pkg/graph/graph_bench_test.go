package graph

import (
	"fmt"
	"testing"
)

// Benchmark the topology cache rebuild under different graph shapes. This
// runs on every AddNode/AddEdge call, so its cost bounds how large a graph
// an integrator can build before a control-thread topology edit becomes
// noticeable.

func BenchmarkRebuild_Linear(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%d_nodes", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				g := buildLinearChain(size)
				_ = g.ReverseTopologicalOrder()
			}
		})
	}
}

func BenchmarkRebuild_Wide(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%d_nodes", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				g := buildWideGraph(size)
				_ = g.ReverseTopologicalOrder()
			}
		})
	}
}

func BenchmarkRebuild_Dense(b *testing.B) {
	sizes := []int{10, 50, 100, 500}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%d_nodes", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				g := buildDenseDAG(size)
				_ = g.ReverseTopologicalOrder()
			}
		})
	}
}

func BenchmarkReverseTopologicalOrder_Cached(b *testing.B) {
	g := buildLinearChain(1000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.ReverseTopologicalOrder()
	}
}

// Helpers to generate test topologies.

func buildLinearChain(size int) *DirectedGraph[int] {
	g := New[int]()
	for i := 0; i < size; i++ {
		g.AddNode(i)
	}
	for i := 0; i < size-1; i++ {
		g.AddEdge(i, i+1)
	}
	return g
}

func buildWideGraph(size int) *DirectedGraph[int] {
	g := New[int]()
	root, sink := -1, -2
	g.AddNode(root)
	g.AddNode(sink)
	for i := 0; i < size; i++ {
		g.AddNode(i)
		g.AddEdge(root, i)
		g.AddEdge(i, sink)
	}
	return g
}

func buildDenseDAG(size int) *DirectedGraph[int] {
	g := New[int]()
	for i := 0; i < size; i++ {
		g.AddNode(i)
	}
	for i := 0; i < size; i++ {
		for j := 1; j <= 3 && i+j < size; j++ {
			g.AddEdge(i, i+j)
		}
	}
	return g
}
