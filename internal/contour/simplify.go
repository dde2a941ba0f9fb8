package contour

import "github.com/pagefold/docscan-mcp/internal/geom"

// Simplify drops every point that is collinear with its immediate neighbors
// in the closed chain (the predecessor of the first point is the last point
// and vice versa). Collinearity uses the exact cross product of the two
// deltas, which is reliable here because traced coordinates are integers.
//
// A fully collinear chain (a straight one-pixel run) would otherwise vanish;
// it reduces to its two most distant points instead.
func Simplify(points []geom.Point) []geom.Point {
	n := len(points)
	if n < 3 {
		return reduceDegenerate(points)
	}

	out := make([]geom.Point, 0, n)
	for i, cur := range points {
		prev := points[(i+n-1)%n]
		next := points[(i+1)%n]
		dx1 := cur.X - prev.X
		dy1 := cur.Y - prev.Y
		dx2 := next.X - cur.X
		dy2 := next.Y - cur.Y
		if dx1*dy2 == dy1*dx2 {
			continue
		}
		out = append(out, cur)
	}

	if len(out) == 0 {
		return reduceDegenerate(points)
	}
	return out
}

// reduceDegenerate returns the two most distant points of a collinear set.
// For collinear points the farthest point from the farthest point of any
// anchor is the true diameter, so two passes suffice.
func reduceDegenerate(points []geom.Point) []geom.Point {
	if len(points) <= 2 {
		return points
	}

	a := farthestFrom(points, points[0])
	b := farthestFrom(points, a)
	return []geom.Point{a, b}
}

func farthestFrom(points []geom.Point, from geom.Point) geom.Point {
	best := from
	bestDist := -1.0
	for _, p := range points {
		if d := geom.Dist(from, p); d > bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}
