package edge

import "math"

// GaussianKernel builds a normalized 1-D Gaussian kernel of the given size.
//
// Sizes are expected to be odd; an even size produces an asymmetric kernel
// (the extra tap lands on the left) and is only reachable through direct
// calls, never through Detect. If sigma <= 0 it is derived from the size:
//
//	sigma = 0.3*((size-1)*0.5 - 1) + 0.8
//
// The returned weights sum to 1.
func GaussianKernel(size int, sigma float64) []float64 {
	if size < 1 {
		size = 1
	}
	if sigma <= 0 {
		sigma = autoSigma(size)
	}

	kernel := make([]float64, size)
	half := size / 2
	negInv2SigmaSq := -1.0 / (2 * sigma * sigma)

	var sum float64
	for i := range kernel {
		x := float64(i - half)
		kernel[i] = math.Exp(x * x * negInv2SigmaSq)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

func autoSigma(size int) float64 {
	return 0.3*(float64(size-1)*0.5-1) + 0.8
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
