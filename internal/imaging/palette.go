package imaging

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pagefold/docscan-mcp/internal/geom"
)

// ContourPalette returns n visually distinct colors for rendering traced
// contours, stepping the hue around the HSV wheel at full saturation.
// n <= 0 returns nil.
func ContourPalette(n int) []color.NRGBA {
	if n <= 0 {
		return nil
	}
	palette := make([]color.NRGBA, n)
	for i := range palette {
		h := float64(i) * 360 / float64(n)
		r, g, b := colorful.Hsv(h, 1, 1).RGB255()
		palette[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}

// DrawContours renders each point chain as a closed polyline in its own
// palette color on a black canvas, for inspecting what the tracer found.
// thickness below 1 is drawn at 1.
func DrawContours(width, height int, chains [][]geom.Point, thickness int) (*RenderResult, error) {
	if thickness < 1 {
		thickness = 1
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(canvas.Pix); i += 4 {
		canvas.Pix[i] = 255
	}

	palette := ContourPalette(len(chains))
	for i, chain := range chains {
		for j := range chain {
			drawLine(canvas, chain[j], chain[(j+1)%len(chain)], palette[i], thickness)
		}
	}
	return Render(canvas)
}
