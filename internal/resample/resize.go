package resample

import (
	"fmt"
	"strings"

	"github.com/gogpu/camfx/internal/image"
)

// Method selects a resampling filter.
type Method uint8

const (
	// MethodBilinear interpolates between the four nearest source pixels.
	MethodBilinear Method = iota

	// MethodArea averages every source pixel under the destination footprint.
	MethodArea
)

// String returns a string representation of the method.
func (m Method) String() string {
	switch m {
	case MethodBilinear:
		return "Bilinear"
	case MethodArea:
		return "Area"
	default:
		return "Unknown"
	}
}

// ParseMethod parses a case-insensitive method name.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "bilinear":
		return MethodBilinear, nil
	case "area":
		return MethodArea, nil
	default:
		return 0, fmt.Errorf("resample: unknown method %q", s)
	}
}

// Resize resamples src into dst with the given method.
func Resize(src, dst *image.FrameBuffer, m Method) error {
	switch m {
	case MethodBilinear:
		return Bilinear(src, dst)
	case MethodArea:
		return Area(src, dst)
	default:
		return fmt.Errorf("resample: unknown method %d", m)
	}
}

// checkResizeArgs validates a resize request.
func checkResizeArgs(src, dst *image.FrameBuffer) error {
	if err := image.CheckDistinct(src, dst); err != nil {
		return err
	}
	if src.IsEmpty() {
		return fmt.Errorf("%w: empty source", image.ErrInvalidDimensions)
	}
	if dst.IsEmpty() {
		return fmt.Errorf("%w: empty destination", image.ErrInvalidDimensions)
	}
	return nil
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// roundByte rounds half up and clamps to [0, 255].
func roundByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
