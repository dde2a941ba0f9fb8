// Package quad reduces traced contours to document corner sets.
//
// The primary path approximates the contour with Ramer-Douglas-Peucker and
// accepts the result when exactly four points survive. Anything else falls
// back to coordinate extremes, which always produce a corner set for a
// contour of at least four points. Both paths return corners ordered
// clockwise starting at the corner with the smallest x+y.
package quad

import (
	"math"
	"sort"

	"github.com/pagefold/docscan-mcp/internal/geom"
)

// FindCorners extracts the four corners of the quadrilateral a closed
// contour most plausibly describes. epsilon scales the approximation
// tolerance relative to the contour's closed perimeter; 0.02 suits traced
// document outlines.
//
// Contours with fewer than four points cannot bound a quadrilateral and
// yield nil.
func FindCorners(points []geom.Point, epsilon float64) *geom.Corners {
	if len(points) < 4 {
		return nil
	}

	approx := ApproxPolyDP(points, epsilon*geom.Perimeter(points), true)
	if len(approx) == 4 {
		c := orderClockwise([4]geom.Point{approx[0], approx[1], approx[2], approx[3]})
		return &c
	}

	c := extremeCorners(points)
	return &c
}

// orderClockwise sorts four points by angle around their centroid
// (ascending atan2 walks clockwise with y growing downward) and rotates the
// cycle to start at the corner minimizing x+y.
func orderClockwise(pts [4]geom.Point) geom.Corners {
	c := geom.Centroid(pts[:])
	sort.Slice(pts[:], func(i, j int) bool {
		return math.Atan2(pts[i].Y-c.Y, pts[i].X-c.X) < math.Atan2(pts[j].Y-c.Y, pts[j].X-c.X)
	})

	first := 0
	for i := 1; i < 4; i++ {
		if pts[i].X+pts[i].Y < pts[first].X+pts[first].Y {
			first = i
		}
	}
	return geom.Corners{
		TopLeft:     pts[first],
		TopRight:    pts[(first+1)%4],
		BottomRight: pts[(first+2)%4],
		BottomLeft:  pts[(first+3)%4],
	}
}

// extremeCorners picks corners by coordinate extremes: top-left minimizes
// x+y, bottom-right maximizes x+y, top-right maximizes x-y and bottom-left
// minimizes x-y.
func extremeCorners(points []geom.Point) geom.Corners {
	c := geom.Corners{
		TopLeft:     points[0],
		TopRight:    points[0],
		BottomRight: points[0],
		BottomLeft:  points[0],
	}
	for _, p := range points[1:] {
		sum, diff := p.X+p.Y, p.X-p.Y
		if sum < c.TopLeft.X+c.TopLeft.Y {
			c.TopLeft = p
		}
		if sum > c.BottomRight.X+c.BottomRight.Y {
			c.BottomRight = p
		}
		if diff > c.TopRight.X-c.TopRight.Y {
			c.TopRight = p
		}
		if diff < c.BottomLeft.X-c.BottomLeft.Y {
			c.BottomLeft = p
		}
	}
	return c
}
