package render

import (
	"bytes"
	"fmt"

	"github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/graph"
	"github.com/topoviz/topoviz/pkg/layout"
)

// Options configures diagram generation.
type Options struct {
	// Title is drawn above the diagram.
	Title string
	// Style controls colors, sizes, and fonts. The zero value means
	// DefaultStyle.
	Style Style
}

// ToDOT converts an undirected graph and its layout to Graphviz DOT for
// rendering with [RenderPNG] or [RenderSVG].
//
// Node positions are pinned ("pos=x,y!") and laid out with the neato
// engine, so the diagram reproduces the layout exactly instead of letting
// Graphviz place nodes. Every node must have a position; a missing
// position is an error rather than a silently misplaced node.
func ToDOT(g *graph.Graph, pos layout.Layout, opts Options) (string, error) {
	style := opts.Style
	if style == (Style{}) {
		style = DefaultStyle()
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=\"neato\";\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
		buf.WriteString("  labelloc=\"t\";\n")
	}
	fmt.Fprintf(&buf, "  fontname=%q;\n", style.FontName)
	fmt.Fprintf(&buf, "  fontsize=%g;\n", style.TitleSize)
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%q, penwidth=0, fontname=%q, fontsize=%g, width=%g, fixedsize=true];\n",
		style.NodeColor, style.FontName, style.FontSize, style.NodeWidth)
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=%g];\n", style.EdgeColor, style.EdgeWidth)
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		p, ok := pos[n]
		if !ok {
			return "", errors.New(errors.ErrCodeInvalidGraph, "node %d has no position", n)
		}
		fmt.Fprintf(&buf, "  %d [pos=\"%g,%g!\"];\n", n, p.X, p.Y)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.U, e.V)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}
