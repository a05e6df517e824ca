package services

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Resizer produces a bitmap of exactly width x height from src
type Resizer interface {
	Resize(src image.Image, width, height int) (image.Image, error)
	Name() string
}

// DrawResizer scales in pure Go with bilinear interpolation
type DrawResizer struct{}

func (DrawResizer) Name() string {
	return "draw"
}

func (DrawResizer) Resize(src image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}

	srcBounds := src.Bounds()
	if srcBounds.Dx() == width && srcBounds.Dy() == height {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, srcBounds, draw.Over, nil)
	return dst, nil
}
