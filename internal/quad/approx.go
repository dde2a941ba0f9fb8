package quad

import (
	"math"

	"github.com/pagefold/docscan-mcp/internal/geom"
)

// ApproxPolyDP simplifies a polyline with the Ramer-Douglas-Peucker
// algorithm: points farther than epsilon from the line through the current
// segment's endpoints are kept, everything closer is dropped. Traversal
// order is preserved.
//
// With closed set, the chain is treated as a ring: it is split at the point
// most distant from points[0], both halves are simplified as open chains,
// and the halves are rejoined without duplicating the split points.
func ApproxPolyDP(points []geom.Point, epsilon float64, closed bool) []geom.Point {
	if len(points) < 3 {
		out := make([]geom.Point, len(points))
		copy(out, points)
		return out
	}
	if !closed {
		return rdp(points, epsilon)
	}

	split := 0
	for i, p := range points {
		if geom.Dist(points[0], p) > geom.Dist(points[0], points[split]) {
			split = i
		}
	}
	if split == 0 {
		// Every point coincides with the first one.
		return []geom.Point{points[0]}
	}

	first := rdp(points[:split+1], epsilon)

	second := make([]geom.Point, 0, len(points)-split+1)
	second = append(second, points[split:]...)
	second = append(second, points[0])
	second = rdp(second, epsilon)

	// first ends where second starts, and second ends where first starts.
	out := make([]geom.Point, 0, len(first)+len(second)-2)
	out = append(out, first...)
	out = append(out, second[1:len(second)-1]...)
	return out
}

func rdp(points []geom.Point, epsilon float64) []geom.Point {
	if len(points) < 3 {
		// Copy so the merge below never appends into the caller's array.
		out := make([]geom.Point, len(points))
		copy(out, points)
		return out
	}

	a := points[0]
	b := points[len(points)-1]
	maxDist := -1.0
	maxIdx := 0
	for i := 1; i < len(points)-1; i++ {
		if d := lineDist(points[i], a, b); d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist <= epsilon {
		return []geom.Point{a, b}
	}

	left := rdp(points[:maxIdx+1], epsilon)
	right := rdp(points[maxIdx:], epsilon)
	// points[maxIdx] closes left and opens right.
	return append(left[:len(left)-1], right...)
}

// lineDist returns the perpendicular distance from p to the infinite line
// through a and b, or the plain distance to a when the line degenerates to
// a point.
func lineDist(p, a, b geom.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return geom.Dist(p, a)
	}
	return math.Abs(dx*(p.Y-a.Y)-dy*(p.X-a.X)) / length
}
