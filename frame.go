package camfx

import (
	"github.com/gogpu/camfx/internal/image"
	"github.com/gogpu/camfx/internal/resample"
)

// FrameBuffer is a strided RGBA8888 pixel buffer. See NewFrameBuffer.
type FrameBuffer = image.FrameBuffer

// TargetShape is the output size of a long-side resize.
type TargetShape = resample.TargetShape

// BytesPerPixel is the size of one RGBA8888 pixel.
const BytesPerPixel = image.BytesPerPixel

// NewFrameBuffer allocates a packed, zeroed width×height frame.
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	return image.NewFrameBuffer(width, height)
}

// NewFrameBufferWithStride allocates a zeroed frame whose rows are stride
// bytes apart.
func NewFrameBufferWithStride(width, height, stride int) (*FrameBuffer, error) {
	return image.NewFrameBufferWithStride(width, height, stride)
}

// FromRaw wraps platform pixel memory without copying. len(data) must equal
// stride*height.
func FromRaw(data []byte, width, height, stride int) (*FrameBuffer, error) {
	return image.FromRaw(data, width, height, stride)
}
