package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
)

// Enhancement modes for extracted pages.
const (
	// EnhanceNone returns the page untouched.
	EnhanceNone = "none"

	// EnhanceGray converts the page to grayscale.
	EnhanceGray = "gray"

	// EnhanceMono thresholds the page to pure black and white, the classic
	// document-scanner look. Suits text pages; destroys photographs.
	EnhanceMono = "mono"

	// EnhanceCrisp boosts contrast and sharpens, keeping color. A good
	// default for photographed pages with mixed text and figures.
	EnhanceCrisp = "crisp"
)

// monoLevel is the luminance threshold for EnhanceMono. Paper shot under
// indoor light blurs toward gray, so the cut sits above the midpoint.
const monoLevel = 160

// Enhance post-processes an extracted page for readability. Unknown modes
// are an error; the empty string means EnhanceNone.
func Enhance(img image.Image, mode string) (image.Image, error) {
	switch mode {
	case "", EnhanceNone:
		return img, nil
	case EnhanceGray:
		return effect.Grayscale(img), nil
	case EnhanceMono:
		return segment.Threshold(img, monoLevel), nil
	case EnhanceCrisp:
		return effect.UnsharpMask(adjust.Contrast(img, 0.12), 1.5, 0.35), nil
	default:
		return nil, fmt.Errorf("unknown enhancement mode %q", mode)
	}
}
