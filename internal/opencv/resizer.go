// Package opencv scales images with OpenCV through gocv.
package opencv

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Resizer scales with area interpolation when shrinking and linear
// interpolation when enlarging
type Resizer struct{}

func (Resizer) Name() string {
	return "opencv"
}

func (Resizer) Resize(src image.Image, width, height int) (image.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("input image is nil")
	}
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return src, nil
	}

	srcMat, err := gocv.ImageToMatRGBA(src)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to Mat: %w", err)
	}
	defer srcMat.Close()

	if err := validateMat(srcMat, "Resize"); err != nil {
		return nil, err
	}

	dstMat := gocv.NewMat()
	defer dstMat.Close()

	gocv.Resize(srcMat, &dstMat, image.Pt(width, height), 0, 0, interpolationFor(bounds, width, height))
	if err := validateMat(dstMat, "ToImage"); err != nil {
		return nil, err
	}

	resized, err := dstMat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert resized Mat to image: %w", err)
	}

	return resized, nil
}

func interpolationFor(src image.Rectangle, width, height int) gocv.InterpolationFlags {
	if width < src.Dx() || height < src.Dy() {
		return gocv.InterpolationArea
	}
	return gocv.InterpolationLinear
}
