// Package edge implements the Canny edge-detection pipeline that feeds
// document boundary detection.
//
// # Pipeline
//
// Detect runs the stages in order; each stage is also exported on its own:
//
//  1. Gaussian blur: separable 1-D kernel (auto sigma), border-clamped
//  2. Sobel gradients: 3x3 kernels on interior pixels, zero at the border
//  3. Gradient magnitude: L1 (|gx|+|gy|) or L2 (sqrt(gx^2+gy^2))
//  4. Non-maximum suppression: thin ridges to local maxima along the
//     gradient direction
//  5. Hysteresis: double threshold plus stack-based 8-connected promotion
//     of weak edges touching strong ones
//  6. Dilation: separable maximum filter, optional, closes small gaps so
//     contour tracing sees connected outlines
//
// # Buffers
//
// Stages exchange dense row-major slices (see the raster package). Gradients
// are int16 (Sobel peaks at ±1020), magnitudes float32. The binary output
// uses 255 for edge pixels and 0 elsewhere.
//
// # Thresholds
//
// With L2Gradient the magnitude buffer holds true Euclidean magnitudes while
// both hysteresis thresholds are squared before comparison. Existing threshold
// tunings depend on that pairing, so Detect keeps it; callers picking L2 use
// accordingly small threshold values.
//
// # Concurrency
//
// Stage functions take a worker count; 0 or 1 runs on the calling goroutine,
// larger values split work into row bands. Output is identical for any worker
// count.
package edge
