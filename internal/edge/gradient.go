package edge

import (
	"math"

	"github.com/pagefold/docscan-mcp/internal/raster"
)

// Sobel computes horizontal and vertical gradients with the 3x3 Sobel
// kernels:
//
//	gx = [-1 0 1; -2 0 2; -1 0 1]    gy = [-1 -2 -1; 0 0 0; 1 2 1]
//
// Positive gx points right, positive gy points down. Only interior pixels
// are computed; the one-pixel border keeps zero gradients, which keeps every
// later stage off the border as well.
func Sobel(src *raster.Gray) (gx, gy []int16) {
	w, h := src.Width, src.Height
	gx = make([]int16, w*h)
	gy = make([]int16, w*h)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			tl := int(src.Pix[i-w-1])
			tc := int(src.Pix[i-w])
			tr := int(src.Pix[i-w+1])
			ml := int(src.Pix[i-1])
			mr := int(src.Pix[i+1])
			bl := int(src.Pix[i+w-1])
			bc := int(src.Pix[i+w])
			br := int(src.Pix[i+w+1])

			gx[i] = int16(tr + 2*mr + br - tl - 2*ml - bl)
			gy[i] = int16(bl + 2*bc + br - tl - 2*tc - tr)
		}
	}
	return gx, gy
}

// Magnitude computes per-pixel gradient magnitude.
//
// The default is the L1 norm |gx|+|gy|. With l2 set it is the Euclidean
// sqrt(gx^2+gy^2); note that Detect squares the hysteresis thresholds in
// that mode (see the package documentation).
func Magnitude(gx, gy []int16, width, height int, l2 bool, workers int) []float32 {
	mag := make([]float32, width*height)
	raster.ParallelRows(height, workers, func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			fx := float64(gx[i])
			fy := float64(gy[i])
			if l2 {
				mag[i] = float32(math.Sqrt(fx*fx + fy*fy))
			} else {
				mag[i] = float32(math.Abs(fx) + math.Abs(fy))
			}
		}
	})
	return mag
}
