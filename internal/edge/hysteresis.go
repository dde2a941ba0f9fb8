package edge

import (
	"github.com/pagefold/docscan-mcp/internal/raster"
)

// Pixel classes used during hysteresis tracking.
const (
	edgeNone   = 0
	edgeWeak   = 1
	edgeStrong = 2
)

// Hysteresis applies double thresholding and edge tracking to a suppressed
// magnitude buffer, producing a binary edge map (255 edge, 0 background).
//
// Interior pixels at or above high become strong edges immediately; pixels
// at or above low become weak candidates. A stack-based flood then promotes
// every weak pixel 8-connected to a strong one. Weak pixels that never
// connect are dropped. The one-pixel border is never classified, matching
// the zero-gradient border upstream.
//
// Thresholds arrive fully resolved: Detect swaps misordered values and
// squares them in L2 mode before calling here.
func Hysteresis(mag []float32, width, height int, low, high float32) *raster.Gray {
	edgeMap := make([]uint8, width*height)
	stack := make([]int, 0, width)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			idx := y*width + x
			m := mag[idx]
			if m >= high {
				edgeMap[idx] = edgeStrong
				stack = append(stack, idx)
			} else if m >= low {
				edgeMap[idx] = edgeWeak
			}
		}
	}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x := idx % width
		y := idx / width

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx := x + dx
				ny := y + dy
				if nx <= 0 || nx >= width-1 || ny <= 0 || ny >= height-1 {
					continue
				}
				nIdx := ny*width + nx
				if edgeMap[nIdx] == edgeWeak {
					edgeMap[nIdx] = edgeStrong
					stack = append(stack, nIdx)
				}
			}
		}
	}

	out := raster.NewGray(width, height)
	for i, v := range edgeMap {
		if v == edgeStrong {
			out.Pix[i] = 255
		}
	}
	return out
}
