package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pagefold/docscan-mcp/internal/geom"
)

// DefaultOutlineColor is the outline color Highlight uses when the caller
// passes an empty string.
const DefaultOutlineColor = "#00ff00"

// Highlight draws a detected document outline onto a copy of img and renders
// the result: the four edges in the given color, plus a contrasting marker
// square on each corner so individual corners stay visible even where the
// outline hugs the image border.
//
// hexColor accepts "#rrggbb" or "#rrggbbaa"; empty means DefaultOutlineColor.
// thickness is the line width in pixels, minimum 1; values below 1 fall back
// to 3. The source image is not modified.
func Highlight(img image.Image, corners geom.Corners, hexColor string, thickness int) (*RenderResult, error) {
	if hexColor == "" {
		hexColor = DefaultOutlineColor
	}
	line, err := parseHexColor(hexColor)
	if err != nil {
		return nil, err
	}
	if thickness < 1 {
		thickness = 3
	}

	canvas := imaging.Clone(img)
	pts := corners.Slice()
	for i := range pts {
		drawLine(canvas, pts[i], pts[(i+1)%len(pts)], line, thickness)
	}

	marker := markerColor(line)
	for _, p := range pts {
		stamp(canvas, int(math.Round(p.X)), int(math.Round(p.Y)), marker, thickness+2)
	}

	return Render(canvas)
}

// parseHexColor converts "#rrggbb" or "#rrggbbaa" to an NRGBA color.
func parseHexColor(s string) (color.NRGBA, error) {
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// markerColor picks a corner-marker color that contrasts with the outline:
// the complementary hue at equal saturation and value. Near-gray outlines
// have no usable hue, so their markers flip value instead.
func markerColor(line color.NRGBA) color.NRGBA {
	c := colorful.Color{
		R: float64(line.R) / 255,
		G: float64(line.G) / 255,
		B: float64(line.B) / 255,
	}
	h, s, v := c.Hsv()
	if s < 0.1 {
		v = 1 - v
	}
	m := colorful.Hsv(math.Mod(h+180, 360), s, v)
	r, g, b := m.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: line.A}
}

// drawLine stamps a thick Bresenham line between two points. Endpoints are
// rounded to the pixel grid; segments leaving the canvas are clipped by the
// per-pixel bounds check in stamp.
func drawLine(dst *image.NRGBA, a, b geom.Point, c color.NRGBA, thickness int) {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		stamp(dst, x0, y0, c, thickness)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// stamp fills a size x size square centered on (cx, cy), skipping pixels
// outside the canvas.
func stamp(dst *image.NRGBA, cx, cy int, c color.NRGBA, size int) {
	r := size / 2
	bounds := dst.Bounds()
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if (image.Point{X: x, Y: y}).In(bounds) {
				dst.SetNRGBA(x, y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
