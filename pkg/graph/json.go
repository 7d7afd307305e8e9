package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/topoviz/topoviz/pkg/layout"
)

// =============================================================================
// Document - Topology Serialization Format
// =============================================================================

// Document is the canonical serialization format for a topology: the graph
// structure plus the node positions used for drawing. The format is
// human-readable and round-trips: export → re-import produces an identical
// graph and layout.
type Document struct {
	Topology string `json:"topology,omitempty"`
	Title    string `json:"title,omitempty"`
	Nodes    []Node `json:"nodes"`
	Edges    []Link `json:"edges"`
}

// Node is a serialized node with its drawing position.
type Node struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Link is a serialized undirected edge.
type Link struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// NewDocument builds a Document from a graph and its layout.
// Nodes are emitted in ascending label order. Every node must have a
// position in pos.
func NewDocument(topology, title string, g *Graph, pos layout.Layout) (Document, error) {
	doc := Document{
		Topology: topology,
		Title:    title,
		Nodes:    make([]Node, 0, g.NodeCount()),
		Edges:    make([]Link, 0, g.EdgeCount()),
	}

	for _, n := range g.Nodes() {
		p, ok := pos[n]
		if !ok {
			return Document{}, fmt.Errorf("node %d has no position", n)
		}
		doc.Nodes = append(doc.Nodes, Node{ID: n, X: p.X, Y: p.Y})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Link{From: e.U, To: e.V})
	}
	return doc, nil
}

// Graph rebuilds the undirected graph from the document.
// Structural violations (duplicate nodes, unknown endpoints, self-loops,
// duplicate edges) are returned as errors.
func (d Document) Graph() (*Graph, error) {
	g := New()
	for _, n := range d.Nodes {
		if err := g.AddNode(n.ID); err != nil {
			return nil, fmt.Errorf("add node %d: %w", n.ID, err)
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("add edge %d-%d: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// Positions returns the layout stored in the document.
func (d Document) Positions() layout.Layout {
	pos := make(layout.Layout, len(d.Nodes))
	for _, n := range d.Nodes {
		pos[n.ID] = layout.Point{X: n.X, Y: n.Y}
	}
	return pos
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal serializes a Document to pretty-printed JSON bytes.
func Marshal(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Document and validates the
// structure by rebuilding the graph.
func Unmarshal(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("unmarshal topology: %w", err)
	}
	if _, err := d.Graph(); err != nil {
		return Document{}, err
	}
	return d, nil
}

// Write encodes a Document as JSON to an io.Writer.
func Write(d Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a Document to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(d Document, path string) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ReadFile reads a JSON file and returns the decoded Document.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
