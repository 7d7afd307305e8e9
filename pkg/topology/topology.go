// Package topology defines the closed set of network topologies topoviz can
// draw and builds their graphs and node placements.
//
// Each [Variant] carries fixed data: a 5-node edge set and a placement rule.
// Linear and star use literal coordinates; ring places its nodes evenly on
// a circle. The enumeration is closed - [Parse], [Build], and [Positions]
// reject anything outside {linear, ring, star} with an INVALID_TOPOLOGY
// error instead of producing an empty layout.
package topology

import (
	"fmt"

	"github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/graph"
	"github.com/topoviz/topoviz/pkg/layout"
)

// Variant identifies one of the fixed topology patterns.
type Variant string

// The closed set of topology variants.
const (
	Linear Variant = "linear" // path: 0-1-2-3-4
	Ring   Variant = "ring"   // cycle: 0-1-2-3-4-0
	Star   Variant = "star"   // center 0 connected to 1..4
)

// NodeCount is the number of nodes in every topology.
const NodeCount = 5

// Variants returns all variants in canonical render order.
func Variants() []Variant {
	return []Variant{Linear, Ring, Star}
}

// Parse converts a string to a Variant.
// Unrecognized values return an INVALID_TOPOLOGY error.
func Parse(s string) (Variant, error) {
	switch Variant(s) {
	case Linear, Ring, Star:
		return Variant(s), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidTopology,
			"unknown topology: %q (must be 'linear', 'ring', or 'star')", s)
	}
}

// Title returns the display title, e.g. "Ring Topology".
func (v Variant) Title() string {
	switch v {
	case Linear:
		return "Linear Topology"
	case Ring:
		return "Ring Topology"
	case Star:
		return "Star Topology"
	default:
		return string(v)
	}
}

// Filename returns the output file name for the given format extension,
// e.g. "ring_topology.png".
func (v Variant) Filename(format string) string {
	return fmt.Sprintf("%s_topology.%s", v, format)
}

// edgeSets holds the fixed edge list per variant.
var edgeSets = map[Variant][][2]int{
	Linear: {{0, 1}, {1, 2}, {2, 3}, {3, 4}},
	Ring:   {{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}},
	Star:   {{0, 1}, {0, 2}, {0, 3}, {0, 4}},
}

// Build constructs the graph for the variant: exactly 5 nodes labeled 0-4
// and the variant's fixed edge set.
func Build(v Variant) (*graph.Graph, error) {
	edges, ok := edgeSets[v]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidTopology, "unknown topology: %q", string(v))
	}

	g := graph.New()
	for i := 0; i < NodeCount; i++ {
		if err := g.AddNode(i); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "build %s graph", v)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "build %s graph", v)
		}
	}
	return g, nil
}

// Positions returns the node placement for the variant.
// Linear and star use fixed literal coordinates matching the classic
// textbook figures; ring nodes are evenly spaced on the unit circle.
func Positions(v Variant) (layout.Layout, error) {
	switch v {
	case Linear:
		return layout.Layout{
			0: {X: 4, Y: 0},
			1: {X: 3, Y: 1},
			2: {X: 2, Y: 2},
			3: {X: 1, Y: 1},
			4: {X: 0, Y: 0},
		}, nil
	case Ring:
		return layout.Circular(NodeCount), nil
	case Star:
		return layout.Layout{
			0: {X: 0, Y: 0},
			1: {X: 1, Y: 1},
			2: {X: 1, Y: -1},
			3: {X: -1, Y: -1},
			4: {X: -1, Y: 1},
		}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidTopology, "unknown topology: %q", string(v))
	}
}
