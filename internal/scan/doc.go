// Package scan orchestrates document detection and extraction: it wires the
// edge detector, contour tracer, corner extractor and perspective warp into
// the two entry points callers actually use, Detect and Extract.
//
// # Pipeline
//
// Detect converts the input to grayscale, caps the working size at
// Options.MaxProcessingDimension (detection quality does not need full
// resolution), runs the Canny-style edge detector, traces external contours
// above Options.MinArea, and reduces the largest one to four corners. All
// returned coordinates live in the original image space; the working-image
// scale factor is applied before results leave this package.
//
// # Negative Results vs Errors
//
// "No document in this image" is a normal outcome: Detect reports it as
// Result.Success == false with a message, never as an error. Errors are
// reserved for inputs the pipeline cannot process (ErrInvalidInput) and for
// corner sets that cannot be warped (ErrDegenerateGeometry).
//
// # Execution Strategies
//
// The heavy stages run either on the calling goroutine or on row bands
// across a worker pool. The choice is resolved once per call from
// Options.Strategy and the caller-owned Accelerator handle; both strategies
// produce identical detection results.
//
// # Streams
//
// The pipeline holds no state between calls. Callers scanning a live
// camera feed run Detect per frame and smooth the jitter with a Stabilizer,
// which keeps a sliding window of corner sets and reports per-coordinate
// medians.
package scan
