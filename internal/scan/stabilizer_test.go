package scan

import (
	"testing"

	"github.com/pagefold/docscan-mcp/internal/geom"
)

// cornersAt builds a square corner set whose position tracks v, so every
// coordinate carries the same per-frame jitter.
func cornersAt(v float64) geom.Corners {
	return geom.Corners{
		TopLeft:     geom.Point{X: v, Y: v},
		TopRight:    geom.Point{X: v + 100, Y: v},
		BottomRight: geom.Point{X: v + 100, Y: v + 100},
		BottomLeft:  geom.Point{X: v, Y: v + 100},
	}
}

func TestStabilizer_MedianRejectsOutlier(t *testing.T) {
	s := NewStabilizer(5)
	for _, v := range []float64{10, 11, 12, 13, 100} {
		s.Push(cornersAt(v))
	}

	got := s.Corners()
	if got == nil {
		t.Fatal("Corners() = nil after five pushes")
	}
	// The interpolated median of {10, 11, 12, 13, 100} is 11.5; the outlier
	// frame moves it by half a pixel instead of the mean's 17.
	if want := cornersAt(11.5); *got != want {
		t.Errorf("stabilized corners = %+v, want %+v", *got, want)
	}
}

func TestStabilizer_EvictsOldest(t *testing.T) {
	s := NewStabilizer(3)
	for _, v := range []float64{1, 2, 3} {
		s.Push(cornersAt(v))
	}
	if got := s.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if want := cornersAt(1.5); *s.Corners() != want {
		t.Fatalf("corners = %+v, want %+v before eviction", *s.Corners(), want)
	}

	// Pushing a fourth frame drops the oldest; the window is now {2, 3, 10}.
	s.Push(cornersAt(10))
	if got := s.Len(); got != 3 {
		t.Fatalf("Len() = %d after eviction, want 3", got)
	}
	if want := cornersAt(2.5); *s.Corners() != want {
		t.Errorf("corners = %+v, want %+v after eviction", *s.Corners(), want)
	}
}

func TestStabilizer_EmptyAndReset(t *testing.T) {
	s := NewStabilizer(4)
	if got := s.Corners(); got != nil {
		t.Fatalf("Corners() = %+v before any push, want nil", got)
	}

	sample := cornersAt(7)
	s.Push(sample)
	if got := s.Corners(); got == nil || *got != sample {
		t.Fatalf("Corners() = %+v after one push, want %+v", got, sample)
	}

	s.Reset()
	if got := s.Corners(); got != nil {
		t.Errorf("Corners() = %+v after Reset, want nil", got)
	}
	if got := s.Len(); got != 0 {
		t.Errorf("Len() = %d after Reset, want 0", got)
	}
}

func TestNewStabilizer_DefaultWindow(t *testing.T) {
	s := NewStabilizer(0)
	for v := 0; v < 9; v++ {
		s.Push(cornersAt(float64(v)))
	}
	if got := s.Len(); got != DefaultStabilizerWindow {
		t.Errorf("Len() = %d, want the default window of %d", got, DefaultStabilizerWindow)
	}
}
