// Package warp maps detected document quadrilaterals onto axis-aligned
// images: it fits a 3x3 projective transform to four corner
// correspondences, inverts it, and resamples the source through the
// inverse, either exactly per pixel or tile-approximated for the parallel
// path.
package warp

import (
	"errors"
	"math"

	"github.com/pagefold/docscan-mcp/internal/geom"
)

// ErrSingularMatrix reports a transform that cannot be inverted. Collinear
// or coincident corner sets produce it.
var ErrSingularMatrix = errors.New("warp: singular matrix")

// Matrix3 is a 3x3 projective transform in row-major order: element (r, c)
// lives at index r*3+c.
type Matrix3 [9]float64

// Identity returns the identity transform.
func Identity() Matrix3 {
	return Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Apply maps p through the transform, including the perspective divide.
func (m Matrix3) Apply(p geom.Point) geom.Point {
	w := m[6]*p.X + m[7]*p.Y + m[8]
	return geom.Point{
		X: (m[0]*p.X + m[1]*p.Y + m[2]) / w,
		Y: (m[3]*p.X + m[4]*p.Y + m[5]) / w,
	}
}

// Invert returns the inverse transform, computed from the adjugate. A zero
// or non-finite determinant yields ErrSingularMatrix.
func (m Matrix3) Invert() (Matrix3, error) {
	c0 := m[4]*m[8] - m[5]*m[7]
	c1 := m[5]*m[6] - m[3]*m[8]
	c2 := m[3]*m[7] - m[4]*m[6]
	det := m[0]*c0 + m[1]*c1 + m[2]*c2
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix3{}, ErrSingularMatrix
	}

	inv := Matrix3{
		c0, m[2]*m[7] - m[1]*m[8], m[1]*m[5] - m[2]*m[4],
		c1, m[0]*m[8] - m[2]*m[6], m[2]*m[3] - m[0]*m[5],
		c2, m[1]*m[6] - m[0]*m[7], m[0]*m[4] - m[1]*m[3],
	}
	for i := range inv {
		inv[i] /= det
	}
	return inv, nil
}
