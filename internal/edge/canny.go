package edge

import (
	"log"

	"github.com/pagefold/docscan-mcp/internal/raster"
)

// Options configures Detect.
//
// The zero value is not useful; start from DefaultOptions and override.
type Options struct {
	// LowThreshold is the weak-edge cutoff for hysteresis.
	LowThreshold int

	// HighThreshold is the strong-edge cutoff. If LowThreshold >= HighThreshold
	// the two are swapped with a logged warning.
	HighThreshold int

	// KernelSize is the Gaussian blur diameter (odd). Even values are bumped
	// up by one with a logged warning.
	KernelSize int

	// Sigma is the Gaussian sigma; <= 0 derives it from KernelSize.
	Sigma float64

	// L2Gradient selects Euclidean gradient magnitude. Both thresholds are
	// squared before comparison in this mode.
	L2Gradient bool

	// DilationKernelSize is the max-filter diameter applied to the binary
	// edge map; <= 1 disables dilation.
	DilationKernelSize int

	// DilationIterations repeats the dilation pass.
	DilationIterations int

	// Workers bounds row-band parallelism for the separable passes;
	// <= 1 keeps everything on the calling goroutine.
	Workers int
}

// DefaultOptions returns the thresholds and kernel sizes detection is tuned
// against: hysteresis 75/200 on L1 magnitudes, 5-tap blur with derived
// sigma, one pass of 3-wide dilation.
func DefaultOptions() Options {
	return Options{
		LowThreshold:       75,
		HighThreshold:      200,
		KernelSize:         5,
		DilationKernelSize: 3,
		DilationIterations: 1,
	}
}

// Detect runs the full edge pipeline on a grayscale buffer and returns a
// binary edge map (255 edge, 0 background) of the same dimensions.
//
// Stages: Gaussian blur, Sobel gradients, magnitude, non-maximum
// suppression, hysteresis, optional dilation. Invalid option combinations
// are repaired rather than rejected: misordered thresholds swap, an even
// blur kernel widens by one. Images too small for a 3x3 interior come back
// all background.
func Detect(src *raster.Gray, opts Options) *raster.Gray {
	low, high := opts.LowThreshold, opts.HighThreshold
	if low >= high {
		log.Printf("edge: low threshold %d >= high threshold %d, swapping", low, high)
		low, high = high, low
	}

	kernelSize := opts.KernelSize
	if kernelSize < 1 {
		kernelSize = 5
	} else if kernelSize%2 == 0 {
		log.Printf("edge: even blur kernel size %d, using %d", kernelSize, kernelSize+1)
		kernelSize++
	}

	blurred := GaussianBlur(src, kernelSize, opts.Sigma, opts.Workers)
	gx, gy := Sobel(blurred)
	mag := Magnitude(gx, gy, src.Width, src.Height, opts.L2Gradient, opts.Workers)
	suppressed := Suppress(mag, gx, gy, src.Width, src.Height)

	lowF, highF := float32(low), float32(high)
	if opts.L2Gradient {
		lowF *= lowF
		highF *= highF
	}
	edges := Hysteresis(suppressed, src.Width, src.Height, lowF, highF)

	if opts.DilationKernelSize > 1 && opts.DilationIterations > 0 {
		edges = Dilate(edges, opts.DilationKernelSize, opts.DilationIterations, opts.Workers)
	}
	return edges
}
