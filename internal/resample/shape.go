package resample

import (
	"fmt"

	"github.com/gogpu/camfx/internal/image"
)

// TargetShape is the output size of a long-side resize.
type TargetShape struct {
	Height int
	Width  int
}

// String implements fmt.Stringer.
func (s TargetShape) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ComputeTargetShape maps the larger of srcHeight and srcWidth to longSide
// and scales the other dimension by the same ratio, rounded half up and
// never below 1. Square sources map to longSide on both axes.
func ComputeTargetShape(longSide, srcHeight, srcWidth int) (TargetShape, error) {
	if srcHeight <= 0 || srcWidth <= 0 {
		return TargetShape{}, fmt.Errorf("%w: source %dx%d", image.ErrInvalidDimensions, srcWidth, srcHeight)
	}
	if longSide <= 0 {
		return TargetShape{}, fmt.Errorf("%w: long side %d", image.ErrInvalidDimensions, longSide)
	}

	if srcWidth >= srcHeight {
		return TargetShape{Height: scaleSide(longSide, srcHeight, srcWidth), Width: longSide}, nil
	}
	return TargetShape{Height: longSide, Width: scaleSide(longSide, srcWidth, srcHeight)}, nil
}

// scaleSide returns round(longSide * shorter / longer), at least 1.
func scaleSide(longSide, shorter, longer int) int {
	n := (2*longSide*shorter + longer) / (2 * longer)
	return max(n, 1)
}
