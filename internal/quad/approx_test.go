package quad

import (
	"testing"

	"github.com/pagefold/docscan-mcp/internal/geom"
)

// squareRing returns the closed pixel outline of a size×size square with
// its top-left corner at (x0, y0), clockwise from that corner, one point
// per pixel step.
func squareRing(x0, y0, size float64) []geom.Point {
	var pts []geom.Point
	for x := x0; x < x0+size; x++ {
		pts = append(pts, geom.Point{X: x, Y: y0})
	}
	for y := y0; y < y0+size; y++ {
		pts = append(pts, geom.Point{X: x0 + size, Y: y})
	}
	for x := x0 + size; x > x0; x-- {
		pts = append(pts, geom.Point{X: x, Y: y0 + size})
	}
	for y := y0 + size; y > y0; y-- {
		pts = append(pts, geom.Point{X: x0, Y: y})
	}
	return pts
}

func TestApproxPolyDP_OpenChain(t *testing.T) {
	tests := []struct {
		name    string
		in      []geom.Point
		epsilon float64
		want    []geom.Point
	}{
		{
			name:    "small bump collapses",
			in:      []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0.5}, {X: 10, Y: 0}},
			epsilon: 1,
			want:    []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
		},
		{
			name:    "large bump survives",
			in:      []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 3}, {X: 10, Y: 0}},
			epsilon: 1,
			want:    []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 3}, {X: 10, Y: 0}},
		},
		{
			name:    "two points pass through",
			in:      []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}},
			epsilon: 1,
			want:    []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApproxPolyDP(tt.in, tt.epsilon, false)
			if !pointsEqual(got, tt.want) {
				t.Errorf("ApproxPolyDP() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApproxPolyDP_ClosedSquare(t *testing.T) {
	ring := squareRing(0, 0, 10)

	got := ApproxPolyDP(ring, 2, true)
	want := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	if !pointsEqual(got, want) {
		t.Errorf("ApproxPolyDP() = %v, want %v", got, want)
	}
}

func TestApproxPolyDP_DoesNotMutateInput(t *testing.T) {
	ring := squareRing(0, 0, 10)
	orig := make([]geom.Point, len(ring))
	copy(orig, ring)

	ApproxPolyDP(ring, 2, true)
	if !pointsEqual(ring, orig) {
		t.Error("input slice was mutated")
	}
}

func TestApproxPolyDP_AllCoincident(t *testing.T) {
	p := geom.Point{X: 3, Y: 4}
	in := []geom.Point{p, p, p, p, p}

	got := ApproxPolyDP(in, 1, true)
	if len(got) != 1 || got[0] != p {
		t.Errorf("ApproxPolyDP() = %v, want [%v]", got, p)
	}
}

func pointsEqual(a, b []geom.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
