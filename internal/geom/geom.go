// Package geom holds the small geometry value types shared by the detection
// and warping packages: points, corner sets, and bounding rectangles.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Coordinates are float64 because detection may run on a downscaled working
// image; mapping results back to the original image produces sub-pixel values.
package geom

import "math"

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X float64 `json:"x"` // Horizontal position (0 = leftmost)
	Y float64 `json:"y"` // Vertical position (0 = topmost)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Corners is the four corners of a detected quadrilateral, ordered clockwise
// starting from the top-left corner.
//
// The ordering convention matches how pages are extracted: TopLeft maps to the
// output origin, TopRight to the top-right of the output, and so on. TopLeft
// is the corner minimizing x+y.
type Corners struct {
	TopLeft     Point `json:"top_left"`
	TopRight    Point `json:"top_right"`
	BottomRight Point `json:"bottom_right"`
	BottomLeft  Point `json:"bottom_left"`
}

// Slice returns the corners as a 4-element array in clockwise order starting
// from the top-left corner.
func (c Corners) Slice() [4]Point {
	return [4]Point{c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft}
}

// Scale returns the corners with both coordinates of every corner multiplied
// by f. Used to map detections on a downscaled working image back to the
// original image.
func (c Corners) Scale(f float64) Corners {
	return Corners{
		TopLeft:     Point{c.TopLeft.X * f, c.TopLeft.Y * f},
		TopRight:    Point{c.TopRight.X * f, c.TopRight.Y * f},
		BottomRight: Point{c.BottomRight.X * f, c.BottomRight.Y * f},
		BottomLeft:  Point{c.BottomLeft.X * f, c.BottomLeft.Y * f},
	}
}

// Rect is an axis-aligned bounding rectangle in pixel coordinates.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// BoundingRect returns the smallest Rect containing every point. An empty
// point slice yields the zero Rect.
func BoundingRect(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{points[0].X, points[0].Y, points[0].X, points[0].Y}
	for _, p := range points[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}
	return r
}

// Centroid returns the arithmetic mean of the points. An empty slice yields
// the zero Point.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point{sx / n, sy / n}
}

// PolygonArea returns the absolute shoelace area of the polygon described by
// points in traversal order (the closing edge back to points[0] is implied).
// Fewer than 3 points yield 0.
func PolygonArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	var sum float64
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}

// Perimeter returns the length of the closed polyline through points,
// including the closing edge from the last point back to the first.
func Perimeter(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}
	var sum float64
	for i := range points {
		sum += Dist(points[i], points[(i+1)%len(points)])
	}
	return sum
}
