package graph

import (
	"errors"
	"slices"
)

var (
	// ErrDuplicateNode is returned by [Graph.AddNode] when a node with the
	// same label already exists. Node labels must be unique.
	ErrDuplicateNode = errors.New("duplicate node")

	// ErrUnknownEndpoint is returned by [Graph.AddEdge] when either endpoint
	// does not exist in the graph. Nodes must be added before edges.
	ErrUnknownEndpoint = errors.New("unknown edge endpoint")

	// ErrSelfLoop is returned by [Graph.AddEdge] for edges connecting a node
	// to itself. Topology diagrams have no self-loops.
	ErrSelfLoop = errors.New("self-loop not allowed")

	// ErrDuplicateEdge is returned by [Graph.AddEdge] when the edge already
	// exists. The graph is undirected, so (u,v) and (v,u) are the same edge.
	ErrDuplicateEdge = errors.New("duplicate edge")
)

// Edge represents an undirected connection between two nodes.
// Edges are normalized so that U < V.
type Edge struct {
	U int // Smaller endpoint label
	V int // Larger endpoint label
}

// Graph is a small undirected graph with integer-labeled nodes.
// It is built once per render and never mutated afterwards.
//
// The zero value is not usable - use New to create a valid instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes map[int]struct{}
	adj   map[int][]int
	edges []Edge
}

// New creates an empty undirected graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[int]struct{}),
		adj:   make(map[int][]int),
	}
}

// AddNode adds a node with the given label.
// It returns ErrDuplicateNode if the label is already present.
func (g *Graph) AddNode(label int) error {
	if _, ok := g.nodes[label]; ok {
		return ErrDuplicateNode
	}
	g.nodes[label] = struct{}{}
	return nil
}

// AddEdge adds an undirected edge between u and v.
// Both endpoints must already exist; self-loops and duplicate edges are rejected.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrSelfLoop
	}
	if _, ok := g.nodes[u]; !ok {
		return ErrUnknownEndpoint
	}
	if _, ok := g.nodes[v]; !ok {
		return ErrUnknownEndpoint
	}
	if g.HasEdge(u, v) {
		return ErrDuplicateEdge
	}
	if u > v {
		u, v = v, u
	}
	g.edges = append(g.edges, Edge{U: u, V: v})
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	return nil
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(label int) bool {
	_, ok := g.nodes[label]
	return ok
}

// HasEdge reports whether an edge between u and v exists, in either order.
func (g *Graph) HasEdge(u, v int) bool {
	return slices.Contains(g.adj[u], v)
}

// Nodes returns all node labels in ascending order.
func (g *Graph) Nodes() []int {
	out := make([]int, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Edges returns all edges in insertion order, each normalized so U < V.
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// Neighbors returns the labels adjacent to the given node in ascending order.
func (g *Graph) Neighbors(label int) []int {
	out := slices.Clone(g.adj[label])
	slices.Sort(out)
	return out
}

// Degree returns the number of edges incident to the node.
func (g *Graph) Degree(label int) int {
	return len(g.adj[label])
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasCycle reports whether the graph contains a cycle.
// Detection uses depth-first search tracking the parent of each visit;
// any edge back to a visited non-parent node closes a cycle.
func (g *Graph) HasCycle() bool {
	visited := make(map[int]bool, len(g.nodes))

	var visit func(node, parent int) bool
	visit = func(node, parent int) bool {
		visited[node] = true
		for _, next := range g.adj[node] {
			if next == parent {
				continue
			}
			if visited[next] {
				return true
			}
			if visit(next, node) {
				return true
			}
		}
		return false
	}

	for n := range g.nodes {
		if !visited[n] && visit(n, -1) {
			return true
		}
	}
	return false
}
