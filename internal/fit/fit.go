// Package fit computes display sizes that fit an image into a bounding box
// while preserving its aspect ratio.
package fit

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidImage  = errors.New("image has a non-positive dimension")
	ErrInvalidBounds = errors.New("bounding box has a non-positive dimension")
)

// Scale returns the factor that maps the natural size onto the largest size
// satisfying the box. Factors below 1 shrink, above 1 enlarge.
func Scale(naturalWidth, naturalHeight, maxWidth, maxHeight int) (float64, error) {
	if naturalWidth <= 0 || naturalHeight <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidImage, naturalWidth, naturalHeight)
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidBounds, maxWidth, maxHeight)
	}

	w, h := float64(naturalWidth), float64(naturalHeight)
	mw, mh := float64(maxWidth), float64(maxHeight)

	if naturalWidth > maxWidth {
		scale := mw / w
		if h*scale > mh {
			scale = mh / h
		}
		return scale, nil
	}

	if naturalHeight > maxHeight {
		return mh / h, nil
	}

	// Both axes fit: enlarge by the smaller factor so neither overflows.
	return math.Min(mw/w, mh/h), nil
}

// Fit returns the scaled dimensions of a naturalWidth x naturalHeight image
// inside a maxWidth x maxHeight box. The result never exceeds the box and is
// at least one pixel on each axis.
func Fit(naturalWidth, naturalHeight, maxWidth, maxHeight int) (width, height int, err error) {
	scale, err := Scale(naturalWidth, naturalHeight, maxWidth, maxHeight)
	if err != nil {
		return 0, 0, err
	}
	if scale == 1 {
		return naturalWidth, naturalHeight, nil
	}

	width = clamp(int(math.Round(float64(naturalWidth)*scale)), maxWidth)
	height = clamp(int(math.Round(float64(naturalHeight)*scale)), maxHeight)
	return width, height, nil
}

func clamp(v, max int) int {
	if v < 1 {
		return 1
	}
	if v > max {
		return max
	}
	return v
}
