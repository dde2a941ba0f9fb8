package scan

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/pagefold/docscan-mcp/internal/contour"
	"github.com/pagefold/docscan-mcp/internal/edge"
	"github.com/pagefold/docscan-mcp/internal/geom"
	"github.com/pagefold/docscan-mcp/internal/quad"
	"github.com/pagefold/docscan-mcp/internal/raster"
	"github.com/pagefold/docscan-mcp/internal/warp"
)

var (
	// ErrInvalidInput reports an image or pixel buffer the pipeline cannot
	// process: nil, empty, or with a length that contradicts its dimensions.
	ErrInvalidInput = errors.New("scan: invalid input")

	// ErrNoDocument reports an extraction attempt on an image where
	// detection found no document outline.
	ErrNoDocument = errors.New("scan: no document found")

	// ErrDegenerateGeometry reports a corner set that does not span a
	// quadrilateral, so no perspective transform exists for it.
	ErrDegenerateGeometry = errors.New("scan: degenerate corner geometry")
)

// Result is the outcome of one detection pass. All coordinates are in the
// original image space regardless of any internal downscaling.
type Result struct {
	// Success reports whether a document outline was found. A false value
	// is a normal outcome, not an error; Message says what was missing.
	Success bool `json:"success"`

	// Corners is the detected quadrilateral, clockwise from top-left.
	// Nil when Success is false.
	Corners *geom.Corners `json:"corners,omitempty"`

	// Contour is the simplified outline the corners were derived from.
	Contour []geom.Point `json:"contour,omitempty"`

	// Message explains a false Success in human terms.
	Message string `json:"message,omitempty"`
}

// Detect locates the dominant document outline in img.
//
// The image is converted to grayscale, capped at
// Options.MaxProcessingDimension, edge-detected, and traced; the largest
// external contour above Options.MinArea is reduced to four corners. When no
// contour qualifies, or the largest one is not quadrilateral, the Result
// carries Success == false and a Message; errors are reserved for unusable
// input.
func Detect(img image.Image, opts Options) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrInvalidInput, b.Dx(), b.Dy())
	}
	return DetectGray(raster.FromImage(img), opts)
}

// DetectRGBA runs detection on a packed RGBA byte buffer (4 bytes per pixel,
// row-major), the layout camera feeds hand over. The buffer length must be
// exactly width*height*4.
func DetectRGBA(pix []byte, width, height int, opts Options) (*Result, error) {
	g, err := raster.FromRGBA(pix, width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return DetectGray(g, opts)
}

// DetectGray runs detection directly on an 8-bit grayscale buffer. Detect
// and DetectRGBA reduce to this after conversion.
func DetectGray(g *raster.Gray, opts Options) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidInput)
	}
	if g.Width < 1 || g.Height < 1 {
		return nil, fmt.Errorf("%w: empty buffer %dx%d", ErrInvalidInput, g.Width, g.Height)
	}
	if len(g.Pix) != g.Width*g.Height {
		return nil, fmt.Errorf("%w: buffer length %d does not match %dx%d",
			ErrInvalidInput, len(g.Pix), g.Width, g.Height)
	}

	working, scale := downscaleGray(g, opts.MaxProcessingDimension)
	workers := opts.workers()

	edges := edge.Detect(working, opts.edgeOptions(workers))
	contours := contour.Trace(edges, contour.TraceOptions{
		Mode:    contour.ModeExternal,
		Approx:  contour.ApproxSimple,
		MinArea: opts.MinArea,
	})
	if len(contours) == 0 {
		return &Result{Message: "no document detected: no contour above the area threshold"}, nil
	}

	largest := contours[0]
	corners := quad.FindCorners(largest.Points, opts.Epsilon)
	if corners == nil {
		return &Result{Message: "no document detected: largest contour has no quadrilateral corners"}, nil
	}

	if scale != 1 {
		scaled := corners.Scale(scale)
		return &Result{
			Success: true,
			Corners: &scaled,
			Contour: scalePoints(largest.Points, scale),
		}, nil
	}
	return &Result{Success: true, Corners: corners, Contour: largest.Points}, nil
}

// EdgeMap runs only the edge-detection stages and returns the binary edge
// map (255 edge, 0 background) of the working image. The working image is
// the input after grayscale conversion and the MaxProcessingDimension cap,
// so the map can be smaller than the input.
func EdgeMap(img image.Image, opts Options) (*raster.Gray, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrInvalidInput, b.Dx(), b.Dy())
	}
	working, _ := downscaleGray(raster.FromImage(img), opts.MaxProcessingDimension)
	return edge.Detect(working, opts.edgeOptions(opts.workers())), nil
}

// Extract warps the quadrilateral under corners out of src into a flat
// rectangle sized from the quadrilateral's edge lengths.
//
// With corners == nil the document is located first; a detection miss comes
// back as ErrNoDocument. Corner sets that do not span a quadrilateral
// produce ErrDegenerateGeometry. The returned corners are the ones actually
// used, which callers want when detection chose them.
func Extract(src image.Image, corners *geom.Corners, opts Options) (*image.NRGBA, geom.Corners, error) {
	if src == nil {
		return nil, geom.Corners{}, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	b := src.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, geom.Corners{}, fmt.Errorf("%w: empty image %dx%d", ErrInvalidInput, b.Dx(), b.Dy())
	}

	var c geom.Corners
	if corners != nil {
		c = *corners
	} else {
		res, err := Detect(src, opts)
		if err != nil {
			return nil, geom.Corners{}, err
		}
		if !res.Success {
			return nil, geom.Corners{}, fmt.Errorf("%w: %s", ErrNoDocument, res.Message)
		}
		c = *res.Corners
	}

	out, err := warp.Extract(src, c, opts.workers())
	if err != nil {
		if errors.Is(err, warp.ErrSingularMatrix) {
			return nil, geom.Corners{}, fmt.Errorf("%w: %v", ErrDegenerateGeometry, err)
		}
		return nil, geom.Corners{}, err
	}
	return out, c, nil
}

// downscaleGray caps the longest side of g at maxDim and reports the uniform
// factor mapping working coordinates back to the original image
// (original = working * scale). Inputs already within the cap come back
// unchanged with scale 1.
func downscaleGray(g *raster.Gray, maxDim int) (*raster.Gray, float64) {
	if maxDim <= 0 {
		return g, 1
	}
	longest := g.Width
	if g.Height > longest {
		longest = g.Height
	}
	if longest <= maxDim {
		return g, 1
	}

	var resized *image.NRGBA
	if g.Width >= g.Height {
		resized = imaging.Resize(g.ToImage(), maxDim, 0, imaging.Lanczos)
	} else {
		resized = imaging.Resize(g.ToImage(), 0, maxDim, imaging.Lanczos)
	}
	return raster.FromImage(resized), float64(longest) / float64(maxDim)
}

func scalePoints(points []geom.Point, f float64) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = geom.Point{X: p.X * f, Y: p.Y * f}
	}
	return out
}
