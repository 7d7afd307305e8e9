// Package graph provides the undirected graph model for topology diagrams
// and its JSON serialization format.
//
// # Graph
//
// [Graph] is a small integer-labeled undirected graph. It is constructed
// once per render (see pkg/topology) and discarded afterwards:
//
//	g := graph.New()
//	g.AddNode(0)
//	g.AddNode(1)
//	g.AddEdge(0, 1)
//
// # Serialization
//
// [Document] is the node-link JSON format with embedded positions:
//
//	{
//	  "topology": "linear",
//	  "title": "Linear Topology",
//	  "nodes": [{"id": 0, "x": 4, "y": 0}, ...],
//	  "edges": [{"from": 0, "to": 1}, ...]
//	}
//
// Common operations:
//
//	doc, _ := graph.NewDocument("linear", title, g, pos)
//	graph.WriteFile(doc, "linear_topology.json")
//	doc, _ = graph.ReadFile("linear_topology.json")
//
// # Concurrency
//
// Graph is safe for concurrent reads but not concurrent writes.
package graph
