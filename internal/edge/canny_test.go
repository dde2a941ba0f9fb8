package edge

import (
	"math"
	"testing"

	"github.com/pagefold/docscan-mcp/internal/raster"
)

// fillGray creates a buffer with every pixel set to v.
func fillGray(t *testing.T, w, h int, v uint8) *raster.Gray {
	t.Helper()
	g := raster.NewGray(w, h)
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

// drawRect fills the half-open rectangle [x1,x2) x [y1,y2) with v.
func drawRect(t *testing.T, g *raster.Gray, x1, y1, x2, y2 int, v uint8) {
	t.Helper()
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			g.Set(x, y, v)
		}
	}
}

func TestGaussianKernel_Normalized(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		sigma float64
	}{
		{"size 3 auto", 3, 0},
		{"size 5 auto", 5, 0},
		{"size 7 auto", 7, 0},
		{"size 9 auto", 9, 0},
		{"size 5 explicit", 5, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := GaussianKernel(tt.size, tt.sigma)
			if len(k) != tt.size {
				t.Fatalf("len = %d, want %d", len(k), tt.size)
			}
			var sum float64
			for _, v := range k {
				if v <= 0 {
					t.Errorf("non-positive weight %v", v)
				}
				sum += v
			}
			if math.Abs(sum-1) > 1e-6 {
				t.Errorf("kernel sum = %v, want 1", sum)
			}
			// Symmetric around the center tap.
			for i := 0; i < tt.size/2; i++ {
				if math.Abs(k[i]-k[tt.size-1-i]) > 1e-12 {
					t.Errorf("kernel not symmetric: k[%d]=%v k[%d]=%v", i, k[i], tt.size-1-i, k[tt.size-1-i])
				}
			}
		})
	}
}

func TestGaussianKernel_AutoSigma(t *testing.T) {
	// sigma <= 0 must behave exactly like passing the derived value.
	derived := 0.3*((5-1)*0.5-1) + 0.8
	auto := GaussianKernel(5, 0)
	explicit := GaussianKernel(5, derived)
	for i := range auto {
		if math.Abs(auto[i]-explicit[i]) > 1e-12 {
			t.Fatalf("auto sigma differs at %d: %v vs %v", i, auto[i], explicit[i])
		}
	}
}

func TestGaussianBlur_UniformInvariant(t *testing.T) {
	g := fillGray(t, 16, 12, 128)
	out := GaussianBlur(g, 5, 0, 1)
	for i, v := range out.Pix {
		if v != 128 {
			t.Fatalf("uniform image changed at %d: %d", i, v)
		}
	}
}

func TestGaussianBlur_SpreadsSpot(t *testing.T) {
	g := raster.NewGray(11, 11)
	g.Set(5, 5, 255)

	out := GaussianBlur(g, 5, 0, 1)
	if out.At(5, 5) >= 255 {
		t.Errorf("center should lose energy, got %d", out.At(5, 5))
	}
	if out.At(6, 5) == 0 || out.At(5, 6) == 0 {
		t.Errorf("neighbors should gain energy, got %d/%d", out.At(6, 5), out.At(5, 6))
	}
	if out.At(0, 0) != 0 {
		t.Errorf("far corner should stay 0, got %d", out.At(0, 0))
	}
}

func TestGaussianBlur_WorkersAgree(t *testing.T) {
	g := raster.NewGray(64, 48)
	for i := range g.Pix {
		g.Pix[i] = uint8((i*31 + i/7) % 256)
	}

	scalar := GaussianBlur(g, 5, 0, 1)
	parallel := GaussianBlur(g, 5, 0, 4)
	for i := range scalar.Pix {
		if scalar.Pix[i] != parallel.Pix[i] {
			t.Fatalf("worker mismatch at %d: %d vs %d", i, scalar.Pix[i], parallel.Pix[i])
		}
	}
}

func TestSobel_VerticalStep(t *testing.T) {
	g := raster.NewGray(12, 8)
	drawRect(t, g, 6, 0, 12, 8, 255) // white right half

	gx, gy := Sobel(g)

	// At the step the horizontal gradient dominates.
	i := 3*12 + 5
	if gx[i] <= 0 {
		t.Errorf("gx at step = %d, want > 0", gx[i])
	}
	if gy[i] != 0 {
		t.Errorf("gy at step = %d, want 0", gy[i])
	}

	// Border stays zero.
	for x := 0; x < 12; x++ {
		if gx[x] != 0 || gy[x] != 0 {
			t.Fatalf("border gradient at x=%d: %d/%d", x, gx[x], gy[x])
		}
	}
}

func TestMagnitude_Norms(t *testing.T) {
	gx := []int16{3, -3, 0, 0}
	gy := []int16{4, -4, 0, 0}

	l1 := Magnitude(gx, gy, 4, 1, false, 1)
	if l1[0] != 7 || l1[1] != 7 {
		t.Errorf("L1 = %v/%v, want 7/7", l1[0], l1[1])
	}

	l2 := Magnitude(gx, gy, 4, 1, true, 1)
	if l2[0] != 5 || l2[1] != 5 {
		t.Errorf("L2 = %v/%v, want 5/5", l2[0], l2[1])
	}
}

func TestSuppress_NeverAmplifies(t *testing.T) {
	g := raster.NewGray(24, 24)
	drawRect(t, g, 6, 6, 18, 18, 255)

	blurred := GaussianBlur(g, 5, 0, 1)
	gx, gy := Sobel(blurred)
	mag := Magnitude(gx, gy, 24, 24, false, 1)
	sup := Suppress(mag, gx, gy, 24, 24)

	kept := 0
	for i := range sup {
		if sup[i] != 0 && sup[i] != mag[i] {
			t.Fatalf("pixel %d amplified: %v from %v", i, sup[i], mag[i])
		}
		if sup[i] != 0 {
			kept++
		}
	}
	if kept == 0 {
		t.Fatal("suppression removed every pixel")
	}
}

func TestHysteresis_Tracking(t *testing.T) {
	const w, h = 9, 5
	mag := make([]float32, w*h)
	idx := func(x, y int) int { return y*w + x }

	mag[idx(2, 2)] = 250 // strong seed
	mag[idx(3, 2)] = 100 // weak, chained to the seed
	mag[idx(4, 2)] = 100
	mag[idx(7, 2)] = 100 // weak, isolated

	out := Hysteresis(mag, w, h, 75, 200)

	for _, p := range [][2]int{{2, 2}, {3, 2}, {4, 2}} {
		if out.At(p[0], p[1]) != 255 {
			t.Errorf("connected pixel (%d,%d) dropped", p[0], p[1])
		}
	}
	if out.At(7, 2) != 0 {
		t.Error("isolated weak pixel survived")
	}
}

func TestHysteresis_BelowLowDies(t *testing.T) {
	const w, h = 5, 5
	mag := make([]float32, w*h)
	mag[2*w+2] = 74.9

	out := Hysteresis(mag, w, h, 75, 200)
	for i, v := range out.Pix {
		if v != 0 {
			t.Fatalf("sub-threshold pixel survived at %d", i)
		}
	}
}

func TestDilate_SinglePixel(t *testing.T) {
	tests := []struct {
		name       string
		kernel     int
		iterations int
		wantHalf   int
	}{
		{"3x3 once", 3, 1, 1},
		{"3x3 twice", 3, 2, 2},
		{"5x5 once", 5, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := raster.NewGray(11, 11)
			g.Set(5, 5, 255)

			out := Dilate(g, tt.kernel, tt.iterations, 1)
			for y := 0; y < 11; y++ {
				for x := 0; x < 11; x++ {
					inside := abs(x-5) <= tt.wantHalf && abs(y-5) <= tt.wantHalf
					want := uint8(0)
					if inside {
						want = 255
					}
					if out.At(x, y) != want {
						t.Fatalf("(%d,%d) = %d, want %d", x, y, out.At(x, y), want)
					}
				}
			}
		})
	}
}

func TestDilate_NoOp(t *testing.T) {
	g := raster.NewGray(5, 5)
	g.Set(2, 2, 255)

	out := Dilate(g, 1, 1, 1)
	if &out.Pix[0] == &g.Pix[0] {
		t.Error("no-op dilation must still copy")
	}
	for i := range g.Pix {
		if out.Pix[i] != g.Pix[i] {
			t.Fatalf("no-op dilation changed pixel %d", i)
		}
	}
}

func TestDetect_RectangleOutline(t *testing.T) {
	g := fillGray(t, 40, 40, 255)
	drawRect(t, g, 10, 10, 30, 30, 0)

	edges := Detect(g, DefaultOptions())

	onBoundary, offBoundary := 0, 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if edges.At(x, y) != 0 && edges.At(x, y) != 255 {
				t.Fatalf("non-binary output %d at (%d,%d)", edges.At(x, y), x, y)
			}
			if edges.At(x, y) == 255 {
				// Distance from the rectangle outline.
				dx := math.Min(math.Abs(float64(x)-10), math.Abs(float64(x)-29))
				dy := math.Min(math.Abs(float64(y)-10), math.Abs(float64(y)-29))
				if math.Min(dx, dy) <= 3 {
					onBoundary++
				} else {
					offBoundary++
				}
			}
		}
	}
	if onBoundary == 0 {
		t.Fatal("no edge pixels near the rectangle outline")
	}
	if offBoundary > onBoundary/4 {
		t.Errorf("too many stray edge pixels: %d stray vs %d on boundary", offBoundary, onBoundary)
	}
}

func TestDetect_ThresholdSwap(t *testing.T) {
	g := fillGray(t, 30, 30, 255)
	drawRect(t, g, 8, 8, 22, 22, 0)

	opts := DefaultOptions()
	swapped := opts
	swapped.LowThreshold, swapped.HighThreshold = opts.HighThreshold, opts.LowThreshold

	a := Detect(g, opts)
	b := Detect(g, swapped)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("swapped thresholds changed output at %d", i)
		}
	}
}

func TestDetect_L2SquaresThresholds(t *testing.T) {
	g := fillGray(t, 30, 30, 255)
	drawRect(t, g, 8, 8, 22, 22, 0)

	l1 := DefaultOptions()
	l1.DilationKernelSize = 1

	l2 := l1
	l2.L2Gradient = true

	if countEdges(Detect(g, l1)) == 0 {
		t.Fatal("L1 defaults found no edges")
	}
	// Same thresholds under L2 compare against squared values (200 -> 40000),
	// far above any Sobel magnitude, so nothing passes.
	if n := countEdges(Detect(g, l2)); n != 0 {
		t.Errorf("L2 with default thresholds found %d edges, want 0", n)
	}

	// Scaled-down thresholds make L2 usable again.
	l2.LowThreshold, l2.HighThreshold = 10, 20
	if countEdges(Detect(g, l2)) == 0 {
		t.Error("L2 with small thresholds found no edges")
	}
}

func TestDetect_TinyImage(t *testing.T) {
	g := fillGray(t, 2, 2, 255)
	edges := Detect(g, DefaultOptions())
	for i, v := range edges.Pix {
		if v != 0 {
			t.Fatalf("tiny image produced edge at %d", i)
		}
	}
}

func countEdges(g *raster.Gray) int {
	n := 0
	for _, v := range g.Pix {
		if v == 255 {
			n++
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
