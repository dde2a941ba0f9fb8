package scan

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pagefold/docscan-mcp/internal/geom"
)

// DefaultStabilizerWindow is the sliding-window length NewStabilizer falls
// back to for non-positive sizes. Five frames absorbs single-frame jitter
// without making the overlay feel laggy on a live feed.
const DefaultStabilizerWindow = 5

// Stabilizer smooths corner detections across consecutive frames of a live
// feed. Each frame's Detect result is pushed into a sliding window; Corners
// reports the per-coordinate median over the window, so a single bad frame
// cannot yank the overlay around.
//
// A Stabilizer is not safe for concurrent use; drive it from the goroutine
// that owns the frame loop.
type Stabilizer struct {
	window  int
	samples []geom.Corners
}

// NewStabilizer returns a stabilizer holding up to window samples.
func NewStabilizer(window int) *Stabilizer {
	if window <= 0 {
		window = DefaultStabilizerWindow
	}
	return &Stabilizer{window: window}
}

// Push records one frame's corners, evicting the oldest sample once the
// window is full.
func (s *Stabilizer) Push(c geom.Corners) {
	if len(s.samples) == s.window {
		copy(s.samples, s.samples[1:])
		s.samples[len(s.samples)-1] = c
		return
	}
	s.samples = append(s.samples, c)
}

// Corners returns the stabilized corner set: the window median of each
// coordinate, computed independently per corner with linear interpolation
// between the middle samples. Returns nil before the first Push.
func (s *Stabilizer) Corners() *geom.Corners {
	if len(s.samples) == 0 {
		return nil
	}

	xs := make([]float64, len(s.samples))
	ys := make([]float64, len(s.samples))
	var pts [4]geom.Point
	for i := range pts {
		for j, sample := range s.samples {
			p := sample.Slice()[i]
			xs[j] = p.X
			ys[j] = p.Y
		}
		sort.Float64s(xs)
		sort.Float64s(ys)
		pts[i] = geom.Point{
			X: stat.Quantile(0.5, stat.LinInterp, xs, nil),
			Y: stat.Quantile(0.5, stat.LinInterp, ys, nil),
		}
	}
	return &geom.Corners{
		TopLeft:     pts[0],
		TopRight:    pts[1],
		BottomRight: pts[2],
		BottomLeft:  pts[3],
	}
}

// Reset drops every buffered sample.
func (s *Stabilizer) Reset() {
	s.samples = s.samples[:0]
}

// Len reports how many samples the window currently holds.
func (s *Stabilizer) Len() int {
	return len(s.samples)
}
