package render

import (
	"image"

	"golang.org/x/image/draw"
)

// DefaultScale is the upscale factor applied before OCR. A mild enlarge
// with a cubic kernel noticeably improves digit recognition on 300 DPI
// scans without the memory cost of a full 2x.
const DefaultScale = 1.2

// ScaleForDPI converts a requested recognition DPI into an upscale
// factor relative to the scan resolution.
func ScaleForDPI(dpi int) float64 {
	if dpi <= 0 {
		return DefaultScale
	}
	return float64(dpi) / DefaultDPI
}

// Preprocess prepares a page scan for OCR: grayscale conversion followed
// by a Catmull-Rom upscale. A scale of 0 uses DefaultScale; a scale of 1
// skips resampling.
func Preprocess(img image.Image, scale float64) *image.Gray {
	if scale == 0 {
		scale = DefaultScale
	}

	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)

	if scale == 1 {
		return gray
	}

	w := int(float64(bounds.Dx())*scale + 0.5)
	h := int(float64(bounds.Dy())*scale + 0.5)
	scaled := image.NewGray(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), gray, bounds, draw.Src, nil)
	return scaled
}
