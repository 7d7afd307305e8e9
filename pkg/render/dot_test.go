package render

import (
	"strings"
	"testing"

	"github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/graph"
	"github.com/topoviz/topoviz/pkg/layout"
)

func triangle(t *testing.T) (*graph.Graph, layout.Layout) {
	t.Helper()
	g := graph.New()
	for i := 0; i < 3; i++ {
		g.AddNode(i)
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	pos := layout.Layout{
		0: {X: 0, Y: 0},
		1: {X: 1, Y: 0},
		2: {X: 0.5, Y: 1},
	}
	return g, pos
}

func TestToDOT(t *testing.T) {
	g, pos := triangle(t)

	dot, err := ToDOT(g, pos, Options{Title: "Ring Topology"})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	wantFragments := []string{
		"graph G {",            // undirected graph
		`layout="neato"`,       // pinned positions need neato
		`label="Ring Topology"`,
		`labelloc="t"`,
		`pos="0,0!"`,
		`pos="1,0!"`,
		`pos="0.5,1!"`,
		"0 -- 1;",
		"1 -- 2;",
		"0 -- 2;", // normalized to smaller label first
		`fillcolor="lightblue"`,
		`color="gray"`,
		"penwidth=2",
	}
	for _, want := range wantFragments {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	if strings.Contains(dot, "->") {
		t.Error("DOT contains directed edges, want undirected")
	}
}

func TestToDOTNoTitle(t *testing.T) {
	g, pos := triangle(t)

	dot, err := ToDOT(g, pos, Options{})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}
	if strings.Contains(dot, "label=") && strings.Contains(dot, "labelloc") {
		t.Errorf("DOT has a title without one being set:\n%s", dot)
	}
}

func TestToDOTMissingPosition(t *testing.T) {
	g, pos := triangle(t)
	delete(pos, 2)

	_, err := ToDOT(g, pos, Options{})
	if err == nil {
		t.Fatal("expected error for node without position")
	}
	if !errors.Is(err, errors.ErrCodeInvalidGraph) {
		t.Errorf("error code = %q, want INVALID_GRAPH", errors.GetCode(err))
	}
}

func TestToDOTCustomStyle(t *testing.T) {
	g, pos := triangle(t)

	style := DefaultStyle()
	style.NodeColor = "#ffcc00"
	style.EdgeColor = "black"
	style.EdgeWidth = 3.5

	dot, err := ToDOT(g, pos, Options{Style: style})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}
	for _, want := range []string{`fillcolor="#ffcc00"`, `color="black"`, "penwidth=3.5"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}
