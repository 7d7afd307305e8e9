package layout

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestCircularCount(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		l := Circular(n)
		if len(l) != n {
			t.Errorf("Circular(%d) has %d points, want %d", n, len(l), n)
		}
	}
}

func TestCircularEmpty(t *testing.T) {
	if l := Circular(0); len(l) != 0 {
		t.Errorf("Circular(0) = %v, want empty", l)
	}
	if l := Circular(-3); len(l) != 0 {
		t.Errorf("Circular(-3) = %v, want empty", l)
	}
}

func TestCircularOnUnitCircle(t *testing.T) {
	l := Circular(5)
	for i, p := range l {
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-1) > epsilon {
			t.Errorf("node %d at (%v, %v): radius = %v, want 1", i, p.X, p.Y, r)
		}
	}
}

func TestCircularEvenlySpaced(t *testing.T) {
	const n = 5
	l := Circular(n)
	want := 2 * math.Pi / n

	for i := 0; i < n; i++ {
		p := l[i]
		q := l[(i+1)%n]
		delta := math.Atan2(q.Y, q.X) - math.Atan2(p.Y, p.X)
		for delta < 0 {
			delta += 2 * math.Pi
		}
		if math.Abs(delta-want) > epsilon {
			t.Errorf("angle from node %d to %d = %v, want %v", i, (i+1)%n, delta, want)
		}
	}
}

func TestCircularStartsAtUnitX(t *testing.T) {
	l := Circular(5)
	p := l[0]
	if math.Abs(p.X-1) > epsilon || math.Abs(p.Y) > epsilon {
		t.Errorf("node 0 at (%v, %v), want (1, 0)", p.X, p.Y)
	}
}
