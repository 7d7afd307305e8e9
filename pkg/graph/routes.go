package graph

import "errors"

// ErrUnknownNode is returned by [Graph.RoutingTable] when the source node
// does not exist in the graph.
var ErrUnknownNode = errors.New("unknown node")

// Route is one routing table entry: to reach Dest, forward to the adjacent
// node NextHop; Cost is the hop count of the shortest path.
type Route struct {
	Dest    int `json:"dest"`
	NextHop int `json:"next_hop"`
	Cost    int `json:"cost"`
}

// RoutingTable computes shortest-path routes from src over unit-cost edges
// using breadth-first search. Neighbors are expanded in ascending label
// order, so equal-cost ties resolve to the lowest-labeled next hop and the
// result is deterministic. Routes are returned in ascending destination
// order; src itself and unreachable nodes have no entry.
func (g *Graph) RoutingTable(src int) ([]Route, error) {
	if !g.HasNode(src) {
		return nil, ErrUnknownNode
	}

	dist := map[int]int{src: 0}
	next := make(map[int]int)
	queue := []int{src}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range g.Neighbors(u) {
			if _, seen := dist[w]; seen {
				continue
			}
			dist[w] = dist[u] + 1
			if u == src {
				next[w] = w
			} else {
				next[w] = next[u]
			}
			queue = append(queue, w)
		}
	}

	routes := make([]Route, 0, len(next))
	for _, n := range g.Nodes() {
		if n == src {
			continue
		}
		if d, ok := dist[n]; ok {
			routes = append(routes, Route{Dest: n, NextHop: next[n], Cost: d})
		}
	}
	return routes, nil
}
