package warp

import (
	"log"
	"math"

	"github.com/pagefold/docscan-mcp/internal/geom"
)

// pivotEpsilon is the magnitude below which an elimination pivot counts as
// zero.
const pivotEpsilon = 1e-12

// SolveHomography computes the projective transform mapping each src corner
// onto the corresponding dst corner (both in clockwise top-left order).
//
// The eight unknown coefficients come from Gaussian elimination with
// partial pivoting over the stacked correspondence equations; the ninth is
// fixed at 1. Degenerate corner sets never error here: a vanishing pivot is
// logged and zeroed, which drives non-finite coefficients into the result
// so that Invert rejects it.
func SolveHomography(src, dst [4]geom.Point) Matrix3 {
	// Two equations per correspondence, one for x' and one for y', with the
	// right-hand side in column 8.
	var a [8][9]float64
	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y
		a[2*i] = [9]float64{x, y, 1, 0, 0, 0, -x * u, -y * u, u}
		a[2*i+1] = [9]float64{0, 0, 0, x, y, 1, -x * v, -y * v, v}
	}

	warned := false
	for col := 0; col < 8; col++ {
		pivot := col
		for r := col + 1; r < 8; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		a[col], a[pivot] = a[pivot], a[col]

		if math.Abs(a[col][col]) < pivotEpsilon {
			if !warned {
				warned = true
				log.Printf("warp: near-singular homography system (pivot %.3g at column %d)", a[col][col], col)
			}
			a[col][col] = 0
		}

		for r := col + 1; r < 8; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c < 9; c++ {
				a[r][c] -= f * a[col][c]
			}
		}
	}

	var h [8]float64
	for r := 7; r >= 0; r-- {
		v := a[r][8]
		for c := r + 1; c < 8; c++ {
			v -= a[r][c] * h[c]
		}
		h[r] = v / a[r][r]
	}

	return Matrix3{h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7], 1}
}

// OutputSize returns the pixel dimensions of the axis-aligned image a
// corner set unwarps onto: the longer of the two horizontal edges by the
// longer of the two vertical edges, rounded, at least 1x1.
func OutputSize(c geom.Corners) (width, height int) {
	w := math.Max(geom.Dist(c.BottomRight, c.BottomLeft), geom.Dist(c.TopRight, c.TopLeft))
	h := math.Max(geom.Dist(c.BottomLeft, c.TopLeft), geom.Dist(c.BottomRight, c.TopRight))

	width = int(math.Round(w))
	height = int(math.Round(h))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
