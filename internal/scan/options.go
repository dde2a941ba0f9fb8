package scan

import "github.com/pagefold/docscan-mcp/internal/edge"

// Options configures Detect, EdgeMap and Extract.
//
// The zero value is not useful; start from DefaultOptions and override
// individual fields.
type Options struct {
	// LowThreshold is the weak-edge hysteresis cutoff.
	LowThreshold int

	// HighThreshold is the strong-edge hysteresis cutoff.
	HighThreshold int

	// GaussianKernelSize is the blur diameter ahead of the gradient pass.
	GaussianKernelSize int

	// Sigma is the blur sigma; <= 0 derives it from the kernel size.
	Sigma float64

	// L2Gradient selects Euclidean gradient magnitude over the faster
	// |gx|+|gy| approximation.
	L2Gradient bool

	// DilationKernelSize thickens the edge map before tracing so hairline
	// gaps close; <= 1 disables dilation.
	DilationKernelSize int

	// DilationIterations repeats the dilation pass.
	DilationIterations int

	// MinArea drops traced contours below this pixel area, measured in
	// working-image coordinates.
	MinArea float64

	// Epsilon is the polygon simplification tolerance as a fraction of the
	// contour perimeter.
	Epsilon float64

	// MaxProcessingDimension caps the longest side of the working image.
	// Larger inputs are downscaled for detection; results are reported in
	// original coordinates regardless. <= 0 disables the cap.
	MaxProcessingDimension int

	// Strategy picks how the pixel passes execute. StrategyAuto uses the
	// Accelerator's worker pool when one is configured.
	Strategy Strategy

	// Accelerator supplies the worker count for parallel strategies. Nil or
	// uninitialized falls back to single-threaded execution.
	Accelerator *Accelerator
}

// DefaultOptions returns the tuning detection ships with: hysteresis 75/200,
// 5-tap blur, one pass of 3-wide dilation, contours under 1000 px dropped,
// corner simplification at 2% of perimeter, working images capped at 800 px.
func DefaultOptions() Options {
	return Options{
		LowThreshold:           75,
		HighThreshold:          200,
		GaussianKernelSize:     5,
		DilationKernelSize:     3,
		DilationIterations:     1,
		MinArea:                1000,
		Epsilon:                0.02,
		MaxProcessingDimension: 800,
	}
}

// edgeOptions lowers the scan configuration onto the edge detector.
func (o Options) edgeOptions(workers int) edge.Options {
	return edge.Options{
		LowThreshold:       o.LowThreshold,
		HighThreshold:      o.HighThreshold,
		KernelSize:         o.GaussianKernelSize,
		Sigma:              o.Sigma,
		L2Gradient:         o.L2Gradient,
		DilationKernelSize: o.DilationKernelSize,
		DilationIterations: o.DilationIterations,
		Workers:            workers,
	}
}

// workers resolves the effective worker count for this call.
func (o Options) workers() int {
	if o.Strategy == StrategyScalar || o.Accelerator == nil {
		return 1
	}
	if n := o.Accelerator.Workers(); n > 1 {
		return n
	}
	return 1
}
