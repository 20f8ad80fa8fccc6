package camfx

import (
	"github.com/gogpu/camfx/internal/filter"
	"github.com/gogpu/camfx/internal/resample"
)

// DefaultKernelSize is the blur kernel size used when none is configured.
const DefaultKernelSize = 5

// DefaultLongSide is the long side of the resampling target shape.
const DefaultLongSide = 256

// Grayscale replaces each pixel's color with its luma
// round(0.299R + 0.587G + 0.114B), in place. Alpha is preserved.
func Grayscale(frame *FrameBuffer) error {
	return filter.Grayscale(frame)
}

// Sepia applies the classic sepia matrix in place, clamping each channel.
func Sepia(frame *FrameBuffer) error {
	return filter.Sepia(frame)
}

// BoxBlur writes the (2k+1)² window mean of src into dst, k = kernelSize.
func BoxBlur(src, dst *FrameBuffer, kernelSize int) error {
	return filter.BoxBlur(src, dst, kernelSize)
}

// GaussianBlur convolves src with a normalized Gaussian of sigma
// max(kernelSize/3, 0.5) and writes the result into dst.
func GaussianBlur(src, dst *FrameBuffer, kernelSize int) error {
	return filter.GaussianBlur(src, dst, kernelSize)
}

// ComputeTargetShape maps the larger source dimension to longSide and
// scales the other to preserve the aspect ratio.
func ComputeTargetShape(longSide, srcHeight, srcWidth int) (TargetShape, error) {
	return resample.ComputeTargetShape(longSide, srcHeight, srcWidth)
}

// ResizeBilinear resamples src into dst by bilinear interpolation.
func ResizeBilinear(src, dst *FrameBuffer) error {
	return resample.Bilinear(src, dst)
}

// ResizeArea resamples src into dst by area averaging.
func ResizeArea(src, dst *FrameBuffer) error {
	return resample.Area(src, dst)
}
