package graph

import (
	"fmt"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New[int]()

	if !g.AddNode(1) {
		t.Fatal("AddNode(1) = false, want true")
	}
	if g.AddNode(1) {
		t.Fatal("AddNode(1) second time = true, want false")
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
	}
	if !g.Contains(1) {
		t.Error("Contains(1) = false, want true")
	}
}

func TestAddEdge_LinearChain(t *testing.T) {
	g := New[int]()
	g.AddNode(1)
	g.AddNode(2)
	g.AddNode(3)

	if err := g.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge(1,2) error = %v", err)
	}
	if err := g.AddEdge(2, 3); err != nil {
		t.Fatalf("AddEdge(2,3) error = %v", err)
	}

	topo := g.TopologicalOrder()
	if !equalSlices(topo, []int{3, 2, 1}) {
		t.Errorf("TopologicalOrder() = %v, want [3 2 1]", topo)
	}

	order := g.ReverseTopologicalOrder()
	if !equalSlices(order, []int{1, 2, 3}) {
		t.Errorf("ReverseTopologicalOrder() = %v, want [1 2 3]", order)
	}
}

func TestAddEdge_NodeNotFound(t *testing.T) {
	g := New[int]()
	g.AddNode(1)

	if err := g.AddEdge(1, 2); err != ErrNodeNotFound {
		t.Errorf("AddEdge(1,2) error = %v, want ErrNodeNotFound", err)
	}
	if err := g.AddEdge(2, 1); err != ErrNodeNotFound {
		t.Errorf("AddEdge(2,1) error = %v, want ErrNodeNotFound", err)
	}
}

func TestAddEdge_Duplicate(t *testing.T) {
	g := New[int]()
	g.AddNode(1)
	g.AddNode(2)

	if err := g.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge(1,2) error = %v", err)
	}
	if err := g.AddEdge(1, 2); err != nil {
		t.Errorf("AddEdge(1,2) second time error = %v, want nil", err)
	}
	if got := len(g.adjacency[1]); got != 1 {
		t.Errorf("adjacency[1] has %d entries, want 1", got)
	}
}

func TestAddEdge_RejectsCycle(t *testing.T) {
	tests := []struct {
		name  string
		build func(g *DirectedGraph[int])
		from  int
		to    int
	}{
		{
			name: "direct back edge",
			build: func(g *DirectedGraph[int]) {
				g.AddNode(1)
				g.AddNode(2)
				g.AddEdge(1, 2)
			},
			from: 2, to: 1,
		},
		{
			name: "self loop",
			build: func(g *DirectedGraph[int]) {
				g.AddNode(1)
			},
			from: 1, to: 1,
		},
		{
			name: "three node cycle",
			build: func(g *DirectedGraph[int]) {
				g.AddNode(1)
				g.AddNode(2)
				g.AddNode(3)
				g.AddEdge(1, 2)
				g.AddEdge(2, 3)
			},
			from: 3, to: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New[int]()
			tt.build(g)
			if err := g.AddEdge(tt.from, tt.to); err != ErrCycleWouldForm {
				t.Errorf("AddEdge(%d,%d) error = %v, want ErrCycleWouldForm", tt.from, tt.to, err)
			}
		})
	}
}

func TestRemoveEdge(t *testing.T) {
	g := New[int]()
	g.AddNode(1)
	g.AddNode(2)
	g.AddEdge(1, 2)

	if err := g.RemoveEdge(1, 2); err != nil {
		t.Fatalf("RemoveEdge(1,2) error = %v", err)
	}
	if len(g.PredecessorsOf(2)) != 0 {
		t.Errorf("PredecessorsOf(2) = %v, want empty", g.PredecessorsOf(2))
	}
	if err := g.RemoveEdge(1, 2); err != ErrEdgeNotFound {
		t.Errorf("RemoveEdge(1,2) second time error = %v, want ErrEdgeNotFound", err)
	}
}

func TestRemoveNode(t *testing.T) {
	g := New[int]()
	g.AddNode(1)
	g.AddNode(2)
	g.AddNode(3)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	if !g.RemoveNode(2) {
		t.Fatal("RemoveNode(2) = false, want true")
	}
	if g.Contains(2) {
		t.Error("Contains(2) = true after removal")
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if len(g.PredecessorsOf(3)) != 0 {
		t.Errorf("PredecessorsOf(3) = %v, want empty after removing 2", g.PredecessorsOf(3))
	}
	if g.RemoveNode(2) {
		t.Error("RemoveNode(2) second time = true, want false")
	}
}

func TestPredecessorsOf_FanIn(t *testing.T) {
	g := New[int]()
	g.AddNode(1)
	g.AddNode(2)
	g.AddNode(3)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)

	preds := g.PredecessorsOf(3)
	if !equalUnorderedSlices(preds, []int{1, 2}) {
		t.Errorf("PredecessorsOf(3) = %v, want [1 2] in some order", preds)
	}
}

func TestTopologicalOrder_Deterministic(t *testing.T) {
	build := func() *DirectedGraph[int] {
		g := New[int]()
		g.AddNode(1)
		g.AddNode(2)
		g.AddNode(3)
		g.AddNode(4)
		g.AddEdge(1, 3)
		g.AddEdge(2, 3)
		g.AddEdge(3, 4)
		return g
	}

	first := build().ReverseTopologicalOrder()
	for i := 0; i < 10; i++ {
		again := build().ReverseTopologicalOrder()
		if !equalSlices(first, again) {
			t.Fatalf("ReverseTopologicalOrder() not stable across rebuilds: %v vs %v", first, again)
		}
	}
}

func TestEmptyGraph(t *testing.T) {
	g := New[int]()
	if g.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", g.NodeCount())
	}
	if len(g.TopologicalOrder()) != 0 {
		t.Errorf("TopologicalOrder() = %v, want empty", g.TopologicalOrder())
	}
	if len(g.ReverseTopologicalOrder()) != 0 {
		t.Errorf("ReverseTopologicalOrder() = %v, want empty", g.ReverseTopologicalOrder())
	}
}

func TestDiamondShape(t *testing.T) {
	g := New[int]()
	for i := 1; i <= 4; i++ {
		g.AddNode(i)
	}
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)
	g.AddEdge(3, 4)

	order := g.ReverseTopologicalOrder()
	if !isValidProcessingOrder(order, map[int][]int{1: {2, 3}, 2: {4}, 3: {4}}) {
		t.Errorf("ReverseTopologicalOrder() = %v is not a valid processing order", order)
	}
}

// Helpers

func equalSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalUnorderedSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int)
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

func isValidProcessingOrder(order []int, successors map[int][]int) bool {
	pos := make(map[int]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	for from, tos := range successors {
		for _, to := range tos {
			if pos[from] >= pos[to] {
				return false
			}
		}
	}
	return true
}

func ExampleDirectedGraph() {
	g := New[int]()
	g.AddNode(1)
	g.AddNode(2)
	g.AddEdge(1, 2)
	fmt.Println(g.ReverseTopologicalOrder())
	// Output: [1 2]
}
