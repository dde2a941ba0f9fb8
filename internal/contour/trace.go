package contour

import (
	"log"
	"sort"

	"github.com/pagefold/docscan-mcp/internal/geom"
	"github.com/pagefold/docscan-mcp/internal/raster"
)

// Label arena values besides contour ids.
const (
	labelBackground = 0
	labelForeground = 1
	labelSkip       = -1
)

// The 8 neighborhood directions, indexed clockwise from north. Index 2 is
// east, 6 is west; opposite directions differ by 4.
var (
	dirDX = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	dirDY = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}
)

// Trace finds borders in a binary map (non-zero pixels are foreground) and
// returns them sorted by descending area.
//
// The raster scan starts an outer border wherever an unlabeled foreground
// pixel has a background pixel to its left, and a hole border wherever a
// background pixel has an unlabeled foreground pixel to its left (the hole
// walk starts on that left neighbor). Border following walks the
// 8-neighborhood clockwise: the first step scans from east (outer) or west
// (hole), later steps from the backtrack direction rotated two steps
// clockwise. The walk ends when it steps back onto its start pixel.
//
// Walks that run out of continuation pixels or exceed a width*height step
// budget are tracing anomalies: the contour is discarded with a logged
// warning and scanning continues.
//
// After tracing, contours are simplified per opts.Approx, then dropped if
// they retain fewer than MinContourPoints points or cover less than
// opts.MinArea.
func Trace(bin *raster.Gray, opts TraceOptions) []Contour {
	w, h := bin.Width, bin.Height
	if w <= 0 || h <= 0 {
		return nil
	}

	// Padded arena: one background pixel on every side.
	pw := w + 2
	labels := make([]int32, pw*(h+2))
	for y := 0; y < h; y++ {
		row := bin.Pix[y*w : (y+1)*w]
		for x, v := range row {
			if v != 0 {
				labels[(y+1)*pw+(x+1)] = labelForeground
			}
		}
	}

	var contours []Contour
	nextID := int32(2)
	budget := w * h

	for py := 1; py <= h; py++ {
		for px := 1; px <= w; px++ {
			idx := py*pw + px
			cur := labels[idx]
			left := labels[idx-1]

			var start, initialDir int
			var outer bool
			switch {
			case cur == labelForeground && left == labelBackground:
				start, initialDir, outer = idx, 2, true
			case cur == labelBackground && left == labelForeground:
				if opts.Mode == ModeExternal {
					labels[idx] = labelSkip
					continue
				}
				start, initialDir, outer = idx-1, 6, false
			default:
				continue
			}

			id := nextID
			nextID++
			points := follow(labels, pw, start, initialDir, id, budget)
			if points == nil {
				log.Printf("contour: tracing anomaly near (%d,%d), contour %d discarded", px-1, py-1, id)
				continue
			}

			c := Contour{
				ID:     int(id),
				Outer:  outer,
				Points: points,
				Area:   geom.PolygonArea(points),
				BBox:   geom.BoundingRect(points),
			}
			if opts.Approx == ApproxSimple {
				c.Points = Simplify(c.Points)
			}
			if len(c.Points) < MinContourPoints || c.Area < opts.MinArea {
				continue
			}
			contours = append(contours, c)
		}
	}

	sort.Slice(contours, func(i, j int) bool {
		return contours[i].Area > contours[j].Area
	})
	return contours
}

// follow walks one border starting at start (an arena index) and returns
// the boundary in image coordinates, labeling visited pixels with id.
// It returns nil when the walk dead-ends or exceeds the step budget.
func follow(labels []int32, pw, start, initialDir int, id int32, budget int) []geom.Point {
	visited := map[int]struct{}{start: {}}
	points := make([]geom.Point, 0, 64)

	cur := start
	dir := initialDir
	for steps := 0; ; steps++ {
		if steps > budget {
			return nil
		}

		labels[cur] = id
		points = append(points, geom.Point{
			X: float64(cur%pw - 1),
			Y: float64(cur/pw - 1),
		})

		advanced := false
		for i := 0; i < 8; i++ {
			d := (dir + i) % 8
			n := cur + dirDY[d]*pw + dirDX[d]
			v := labels[n]
			if v == labelBackground || v == labelSkip {
				continue
			}
			if n == start {
				return points
			}
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			cur = n
			// Resume scanning from the backtrack direction rotated two
			// steps clockwise.
			dir = (d + 6) % 8
			advanced = true
			break
		}
		if !advanced {
			// Isolated pixel or a one-pixel-wide dead end.
			return nil
		}
	}
}
