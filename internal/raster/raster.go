// Package raster provides the dense 8-bit pixel buffers the detection
// pipeline operates on, and the conversions between them and image.Image.
//
// # Buffer Layout
//
// All buffers are dense row-major slices: the pixel at (x, y) lives at index
// y*Width + x. There is no stride padding. Binary maps (edge bitmaps) reuse
// the same Gray type with values restricted to {0, 255}.
//
// # Grayscale Conversion
//
// RGB is reduced to luma with integer weights:
//
//	luma = (r*54 + g*183 + b*19) >> 8
//
// The weights sum to 256, so inputs that are already gray (r == g == b) pass
// through unchanged. The conversion is deterministic and bit-exact across
// platforms; downstream thresholds are tuned against it.
package raster

import (
	"fmt"
	"image"
	"sync"
)

// Gray is a dense row-major 8-bit grayscale buffer.
type Gray struct {
	Pix    []uint8 // Pixel values, length Width*Height
	Width  int     // Columns
	Height int     // Rows
}

// NewGray allocates a zeroed Width×Height buffer.
func NewGray(width, height int) *Gray {
	return &Gray{
		Pix:    make([]uint8, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the pixel value at (x, y). No bounds checking beyond the
// slice's own.
func (g *Gray) At(x, y int) uint8 { return g.Pix[y*g.Width+x] }

// Set stores v at (x, y).
func (g *Gray) Set(x, y int, v uint8) { g.Pix[y*g.Width+x] = v }

// Clone returns a deep copy of the buffer.
func (g *Gray) Clone() *Gray {
	out := NewGray(g.Width, g.Height)
	copy(out.Pix, g.Pix)
	return out
}

// ToImage wraps the buffer in a stdlib *image.Gray. The pixel data is copied
// so later mutation of either side is safe.
func (g *Gray) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	if img.Stride == g.Width {
		copy(img.Pix, g.Pix)
		return img
	}
	for y := 0; y < g.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+g.Width], g.Pix[y*g.Width:(y+1)*g.Width])
	}
	return img
}

// Luma converts one 8-bit RGB triple to grayscale using the package's
// integer weights.
func Luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*54 + uint32(g)*183 + uint32(b)*19) >> 8)
}

// FromImage converts any image.Image to a Gray buffer using integer luma.
//
// Fast paths exist for *image.Gray, *image.RGBA and *image.NRGBA; other
// implementations go through the generic At interface. Alpha is ignored
// (colors are taken as stored, unmultiplied where the source is NRGBA).
func FromImage(img image.Image) *Gray {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := NewGray(w, h)

	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			row := src.Pix[(y+bounds.Min.Y-src.Rect.Min.Y)*src.Stride:]
			copy(out.Pix[y*w:(y+1)*w], row[bounds.Min.X-src.Rect.Min.X:bounds.Min.X-src.Rect.Min.X+w])
		}
	case *image.RGBA:
		for y := 0; y < h; y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < w; x++ {
				out.Pix[y*w+x] = Luma(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
				i += 4
			}
		}
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < w; x++ {
				out.Pix[y*w+x] = Luma(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
				i += 4
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				out.Pix[y*w+x] = Luma(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			}
		}
	}
	return out
}

// FromRGBA converts a packed RGBA byte buffer (4 bytes per pixel, row-major)
// to a Gray buffer. The buffer length must be exactly width*height*4.
func FromRGBA(pix []byte, width, height int) (*Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("buffer length %d does not match %dx%d RGBA (want %d)",
			len(pix), width, height, width*height*4)
	}

	out := NewGray(width, height)
	for i, j := 0, 0; j < len(out.Pix); i, j = i+4, j+1 {
		out.Pix[j] = Luma(pix[i], pix[i+1], pix[i+2])
	}
	return out, nil
}

// ParallelRows splits [0, height) into bands and runs fn on each band
// concurrently. With workers <= 1, or when the image has fewer rows than
// workers, fn runs once on the caller's goroutine covering everything.
// fn receives half-open row ranges [y0, y1).
func ParallelRows(height, workers int, fn func(y0, y1 int)) {
	if workers <= 1 || height < workers {
		fn(0, height)
		return
	}

	band := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += band {
		y1 := y0 + band
		if y1 > height {
			y1 = height
		}
		wg.Add(1)
		go func(a, b int) {
			defer wg.Done()
			fn(a, b)
		}(y0, y1)
	}
	wg.Wait()
}
