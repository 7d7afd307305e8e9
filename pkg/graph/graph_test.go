package graph

import (
	"errors"
	"testing"
)

// path builds the 5-node linear graph used across tests.
func path(t *testing.T) *Graph {
	t.Helper()
	g := New()
	for i := 0; i < 5; i++ {
		if err := g.AddNode(i); err != nil {
			t.Fatalf("AddNode(%d): %v", i, err)
		}
	}
	for i := 0; i < 4; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", i, i+1, err)
		}
	}
	return g
}

func TestAddNode(t *testing.T) {
	g := New()
	if err := g.AddNode(0); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(0); !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("duplicate AddNode error = %v, want ErrDuplicateNode", err)
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount = %d, want 1", g.NodeCount())
	}
}

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name    string
		u, v    int
		wantErr error
	}{
		{"valid", 0, 1, nil},
		{"self loop", 2, 2, ErrSelfLoop},
		{"unknown source", 9, 1, ErrUnknownEndpoint},
		{"unknown target", 1, 9, ErrUnknownEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			for i := 0; i < 3; i++ {
				g.AddNode(i)
			}
			err := g.AddEdge(tt.u, tt.v)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddEdge(%d, %d) error = %v, want %v", tt.u, tt.v, err, tt.wantErr)
			}
		})
	}
}

func TestAddEdgeDuplicate(t *testing.T) {
	g := New()
	g.AddNode(0)
	g.AddNode(1)
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(0, 1); !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("duplicate error = %v, want ErrDuplicateEdge", err)
	}
	// Undirected: the reverse direction is the same edge.
	if err := g.AddEdge(1, 0); !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("reverse duplicate error = %v, want ErrDuplicateEdge", err)
	}
}

func TestEdgesNormalized(t *testing.T) {
	g := New()
	g.AddNode(3)
	g.AddNode(1)
	g.AddEdge(3, 1)

	edges := g.Edges()
	if len(edges) != 1 {
		t.Fatalf("EdgeCount = %d, want 1", len(edges))
	}
	if edges[0].U != 1 || edges[0].V != 3 {
		t.Errorf("edge = %+v, want {U:1 V:3}", edges[0])
	}
}

func TestNodesSorted(t *testing.T) {
	g := New()
	for _, n := range []int{4, 0, 3, 1, 2} {
		g.AddNode(n)
	}
	want := []int{0, 1, 2, 3, 4}
	got := g.Nodes()
	if len(got) != len(want) {
		t.Fatalf("Nodes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Nodes = %v, want %v", got, want)
		}
	}
}

func TestDegree(t *testing.T) {
	g := path(t)
	wantDegrees := map[int]int{0: 1, 1: 2, 2: 2, 3: 2, 4: 1}
	for n, want := range wantDegrees {
		if got := g.Degree(n); got != want {
			t.Errorf("Degree(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestNeighbors(t *testing.T) {
	g := path(t)
	got := g.Neighbors(2)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Neighbors(2) = %v, want [1 3]", got)
	}
	if n := g.Neighbors(42); len(n) != 0 {
		t.Errorf("Neighbors(42) = %v, want empty", n)
	}
}

func TestHasCycle(t *testing.T) {
	t.Run("path is acyclic", func(t *testing.T) {
		if path(t).HasCycle() {
			t.Error("path graph reported cyclic")
		}
	})

	t.Run("closing the path makes a cycle", func(t *testing.T) {
		g := path(t)
		g.AddEdge(4, 0)
		if !g.HasCycle() {
			t.Error("cycle graph reported acyclic")
		}
	})

	t.Run("star is acyclic", func(t *testing.T) {
		g := New()
		for i := 0; i < 5; i++ {
			g.AddNode(i)
		}
		for i := 1; i < 5; i++ {
			g.AddEdge(0, i)
		}
		if g.HasCycle() {
			t.Error("star graph reported cyclic")
		}
	})

	t.Run("empty graph", func(t *testing.T) {
		if New().HasCycle() {
			t.Error("empty graph reported cyclic")
		}
	})
}
