package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writeTestPNG encodes a solid-color image into dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
	return path
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	path := writeTestPNG(t, t.TempDir(), "red.png", 100, 80, color.NRGBA{R: 255, A: 255})

	img1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img1.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("dimensions = %dx%d, want 100x80", b.Dx(), b.Dy())
	}

	// The second load must come from the cache, not a fresh decode.
	img2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load returned a different image instance")
	}
}

func TestImageCache_LoadErrors(t *testing.T) {
	cache := NewImageCache()

	if _, err := cache.Load("/nonexistent/image.png"); err == nil {
		t.Error("Load succeeded on a missing file")
	}

	dir := t.TempDir()
	garbage := filepath.Join(dir, "not-an-image.png")
	if err := os.WriteFile(garbage, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := cache.Load(garbage); err == nil {
		t.Error("Load succeeded on a non-image file")
	}
}

func TestImageCache_EvictAndClear(t *testing.T) {
	cache := NewImageCache()
	dir := t.TempDir()
	a := writeTestPNG(t, dir, "a.png", 10, 10, color.White)
	b := writeTestPNG(t, dir, "b.png", 10, 10, color.Black)

	imgA, _ := cache.Load(a)
	imgB, _ := cache.Load(b)

	cache.Evict(a)
	reA, err := cache.Load(a)
	if err != nil {
		t.Fatalf("reload after Evict: %v", err)
	}
	if reA == imgA {
		t.Error("Evict left the entry cached")
	}
	if again, _ := cache.Load(b); again != imgB {
		t.Error("Evict dropped an unrelated entry")
	}

	cache.Clear()
	if again, _ := cache.Load(b); again == imgB {
		t.Error("Clear left an entry cached")
	}

	// Evicting an unknown path is a no-op.
	cache.Evict("/never/loaded.png")
}

func TestImageCache_ConcurrentLoad(t *testing.T) {
	cache := NewImageCache()
	path := writeTestPNG(t, t.TempDir(), "shared.png", 20, 20, color.White)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				t.Errorf("concurrent Load: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewImageCache()
	path := writeTestPNG(t, t.TempDir(), "info.png", 64, 48, color.NRGBA{G: 200, A: 255})

	info, err := LoadImageInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadImageInfo: %v", err)
	}
	if info.Width != 64 || info.Height != 48 {
		t.Errorf("dimensions = %dx%d, want 64x48", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format = %q, want png", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("ColorDepth = %q, want 8-bit", info.ColorDepth)
	}
	if !info.HasAlpha {
		t.Error("HasAlpha = false, want true")
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes = %d, want positive", info.FileSizeBytes)
	}
}

func TestLoadImageInfo_FormatFromExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"doc.png", "png"},
		{"doc.JPG", "jpeg"},
		{"doc.jpeg", "jpeg"},
		{"doc.gif", "gif"},
		{"doc.bmp", "bmp"},
		{"doc.tif", "tiff"},
		{"doc.webp", "webp"},
		{"doc.xyz", "unknown"},
	}

	cache := NewImageCache()
	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// PNG bytes regardless of extension; format is extension-based.
			path := writeTestPNG(t, dir, tt.name, 8, 8, color.White)
			info, err := LoadImageInfo(cache, path)
			if err != nil {
				t.Fatalf("LoadImageInfo: %v", err)
			}
			if info.Format != tt.want {
				t.Errorf("Format = %q, want %q", info.Format, tt.want)
			}
		})
	}
}
