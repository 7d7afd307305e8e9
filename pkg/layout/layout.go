// Package layout provides 2D node placement for topology diagrams.
//
// A layout is purely visual: it assigns each node a coordinate but carries
// no structural information about the graph. Fixed per-topology coordinates
// live with the topology definitions; this package holds the shared types
// and the circular placement used by ring topologies.
package layout

import "math"

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Layout maps node labels to coordinates.
type Layout map[int]Point

// Circular places n nodes evenly spaced on the unit circle, starting at
// (1, 0) and proceeding counterclockwise. It returns an empty layout for
// n <= 0.
func Circular(n int) Layout {
	l := make(Layout, max(n, 0))
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		l[i] = Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return l
}
