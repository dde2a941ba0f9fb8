package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// RenderResult contains an image prepared for tool output.
type RenderResult struct {
	// Width of the rendered image in pixels.
	Width int `json:"width"`

	// Height of the rendered image in pixels.
	Height int `json:"height"`

	// ImageBase64 is the rendered image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// Render encodes img as base64 PNG for inclusion in a tool response.
func Render(img image.Image) (*RenderResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &RenderResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// LoadImage loads an image through the cache and renders it for tool output.
//
// With maxWidth or maxHeight positive, the image is scaled down to fit
// inside those bounds with the aspect ratio preserved; it is never scaled
// up. Zero or negative values leave that axis unconstrained.
func LoadImage(cache *ImageCache, path string, maxWidth, maxHeight int) (*RenderResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	if maxWidth > 0 || maxHeight > 0 {
		bounds := img.Bounds()
		w, h := maxWidth, maxHeight
		if w <= 0 {
			w = bounds.Dx()
		}
		if h <= 0 {
			h = bounds.Dy()
		}
		img = imaging.Fit(img, w, h, imaging.Lanczos)
	}
	return Render(img)
}
