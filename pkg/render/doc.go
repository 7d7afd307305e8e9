// Package render turns topology graphs into diagram files.
//
// # Pipeline
//
// Rendering has two steps: [ToDOT] serializes a graph plus its layout into
// Graphviz DOT with pinned node positions, and [RenderPNG] / [RenderSVG]
// rasterize the DOT via goccy/go-graphviz (no system Graphviz install is
// required).
//
//	dot, err := render.ToDOT(g, pos, render.Options{Title: "Ring Topology"})
//	png, err := render.RenderPNG(dot)
//
// # Styling
//
// [Style] covers the visual knobs: node fill, edge color and width, fonts.
// [DefaultStyle] reproduces the classic figures (light blue nodes, gray
// edges); [LoadStyle] merges overrides from a TOML file.
package render
