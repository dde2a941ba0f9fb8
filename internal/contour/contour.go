// Package contour extracts object outlines from binary edge maps using
// border following, in the style of Suzuki and Abe's algorithm.
//
// # Label Map
//
// Tracing works on an int32 label arena one pixel larger than the image on
// every side, so border following never needs bounds checks. Values:
//
//	 0  background
//	 1  unlabeled foreground
//	>=2 contour id (assigned while tracing)
//	-1  skipped hole start (external mode)
//
// The arena is allocated per call; nothing is retained between calls.
//
// # Modes
//
// ModeExternal traces only outermost borders, which is what document
// detection wants: interior texture and hole borders are skipped. ModeAll
// additionally follows hole borders.
package contour

import (
	"github.com/pagefold/docscan-mcp/internal/geom"
)

// Mode selects which borders Trace follows.
type Mode int

const (
	// ModeExternal traces outer borders only; hole borders are skipped.
	ModeExternal Mode = iota

	// ModeAll traces outer and hole borders.
	ModeAll
)

// Approx selects how traced point chains are stored.
type Approx int

const (
	// ApproxNone keeps every traced boundary pixel.
	ApproxNone Approx = iota

	// ApproxSimple drops points collinear with both neighbors, keeping
	// segment endpoints only.
	ApproxSimple
)

// MinContourPoints is the minimum point count a contour must retain after
// simplification; anything smaller cannot describe a quadrilateral and is
// dropped.
const MinContourPoints = 4

// TraceOptions configures Trace.
type TraceOptions struct {
	Mode    Mode
	Approx  Approx
	MinArea float64 // drop contours with smaller shoelace area, px²
}

// Contour is one traced border.
type Contour struct {
	// ID is the label-map id, starting at 2 for the first border found.
	ID int `json:"id"`

	// Outer is true for outer borders, false for hole borders.
	Outer bool `json:"outer"`

	// Points is the boundary in traversal order (clockwise for outer
	// borders), after any simplification.
	Points []geom.Point `json:"points"`

	// Area is the absolute shoelace area of the full traced boundary.
	Area float64 `json:"area"`

	// BBox is the axis-aligned bounding box of the boundary.
	BBox geom.Rect `json:"bbox"`
}
