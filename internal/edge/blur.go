package edge

import (
	"github.com/pagefold/docscan-mcp/internal/raster"
)

// GaussianBlur applies a separable Gaussian blur to a grayscale buffer.
//
// The kernel runs horizontally first, then vertically over the intermediate
// result. Sampling past the image border is clamped to the nearest edge
// pixel, so border pixels are blurred against themselves rather than against
// zero. Accumulation is float64 end to end; only the final result is rounded
// back to 8 bits.
//
// Parameters:
//   - src: Source buffer, unmodified.
//   - size: Kernel diameter in pixels (odd, typically 3 or 5).
//   - sigma: Gaussian sigma; <= 0 derives it from size (see GaussianKernel).
//   - workers: Row-band parallelism; <= 1 stays on the calling goroutine.
func GaussianBlur(src *raster.Gray, size int, sigma float64, workers int) *raster.Gray {
	kernel := GaussianKernel(size, sigma)
	half := len(kernel) / 2
	w, h := src.Width, src.Height

	tmp := make([]float64, w*h)
	raster.ParallelRows(h, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := src.Pix[y*w : (y+1)*w]
			out := tmp[y*w : (y+1)*w]
			for x := 0; x < w; x++ {
				var sum float64
				for k, kv := range kernel {
					sum += float64(row[clamp(x+k-half, 0, w-1)]) * kv
				}
				out[x] = sum
			}
		}
	})

	dst := raster.NewGray(w, h)
	raster.ParallelRows(h, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				var sum float64
				for k, kv := range kernel {
					sum += tmp[clamp(y+k-half, 0, h-1)*w+x] * kv
				}
				v := sum + 0.5
				if v > 255 {
					v = 255
				}
				dst.Pix[y*w+x] = uint8(v)
			}
		}
	})
	return dst
}
