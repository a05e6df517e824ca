package opencv

import (
	"fmt"

	"gocv.io/x/gocv"
)

// maxDimension is the largest side OpenCV is asked to produce
const maxDimension = 32768

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return fmt.Errorf("dimensions %dx%d exceed maximum size %d", width, height, maxDimension)
	}
	return nil
}

func validateMat(mat gocv.Mat, operation string) error {
	if mat.Empty() {
		return fmt.Errorf("Mat is empty for operation: %s", operation)
	}
	if mat.Rows() <= 0 || mat.Cols() <= 0 {
		return fmt.Errorf("Mat has invalid dimensions %dx%d for operation: %s", mat.Cols(), mat.Rows(), operation)
	}
	return nil
}
