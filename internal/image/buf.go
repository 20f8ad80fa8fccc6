// Package image provides the frame buffer every camfx stage reads and writes.
//
// A FrameBuffer is a strided RGBA8888 pixel buffer. It is exclusively owned
// by whichever stage currently holds it; operations always take an explicit
// source/destination pair and reject pairs that share pixel memory.
package image

import (
	"fmt"
	"unsafe"
)

// FrameBuffer is a contiguous RGBA8888 pixel buffer with optional row padding.
//
// Invariant: stride >= width*4 and len(data) == stride*height.
//
// Thread safety: FrameBuffer performs no locking. A buffer must never be
// written by two goroutines at once.
type FrameBuffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewFrameBuffer allocates a tightly packed frame buffer.
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := FormatRGBA8888.RowBytes(width)
	return &FrameBuffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: FormatRGBA8888,
	}, nil
}

// NewFrameBufferWithStride allocates a frame buffer whose rows are padded to
// stride bytes. Stride must be at least width*4.
func NewFrameBufferWithStride(width, height, stride int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if minStride := FormatRGBA8888.RowBytes(width); stride < minStride {
		return nil, fmt.Errorf("%w: stride %d < %d", ErrInvalidBuffer, stride, minStride)
	}
	return &FrameBuffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: FormatRGBA8888,
	}, nil
}

// FromRaw wraps existing pixel memory without copying, as delivered by a
// platform frame. len(data) must equal stride*height exactly.
// The caller must ensure data remains valid for the lifetime of the buffer.
func FromRaw(data []byte, width, height, stride int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if minStride := FormatRGBA8888.RowBytes(width); stride < minStride {
		return nil, fmt.Errorf("%w: stride %d < %d", ErrInvalidBuffer, stride, minStride)
	}
	if len(data) != stride*height {
		return nil, fmt.Errorf("%w: %d bytes for stride %d x height %d",
			ErrInvalidBuffer, len(data), stride, height)
	}
	return &FrameBuffer{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
		format: FormatRGBA8888,
	}, nil
}

// Validate checks the stride/size invariant. It is called at the entry of
// every filter and resampler so a malformed platform buffer is reported
// instead of silently corrupting output.
func (b *FrameBuffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if !b.format.IsValid() {
		return ErrInvalidFormat
	}
	if b.width < 0 || b.height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidBuffer, b.width, b.height)
	}
	if minStride := b.format.RowBytes(b.width); b.stride < minStride {
		return fmt.Errorf("%w: stride %d < %d", ErrInvalidBuffer, b.stride, minStride)
	}
	if len(b.data) != b.stride*b.height {
		return fmt.Errorf("%w: %d bytes, want %d", ErrInvalidBuffer, len(b.data), b.stride*b.height)
	}
	return nil
}

// Clone creates a deep copy of the buffer, preserving its stride.
func (b *FrameBuffer) Clone() *FrameBuffer {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &FrameBuffer{
		data:   newData,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
}

// CopyFrom copies the visible pixels of src into b row by row. Strides may
// differ; dimensions must match.
func (b *FrameBuffer) CopyFrom(src *FrameBuffer) error {
	if !b.SameShape(src) {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrDimensionMismatch,
			src.width, src.height, b.width, b.height)
	}
	if b.stride == src.stride {
		copy(b.data, src.data)
		return nil
	}
	for y := range b.height {
		copy(b.RowBytes(y), src.RowBytes(y))
	}
	return nil
}

// Width returns the image width in pixels.
func (b *FrameBuffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *FrameBuffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *FrameBuffer) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *FrameBuffer) Format() Format {
	return b.format
}

// Bounds returns the image dimensions as (width, height).
func (b *FrameBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice, padding included.
func (b *FrameBuffer) Data() []byte {
	return b.data
}

// RowBytes returns the visible pixels of row y, without padding.
// Returns nil if y is out of bounds.
func (b *FrameBuffer) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *FrameBuffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*BytesPerPixel
}

// GetRGBA returns the channels of pixel (x, y).
// Returns (0,0,0,0) if coordinates are out of bounds.
func (b *FrameBuffer) GetRGBA(x, y int) (r, g, bl, a uint8) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	p := b.data[off : off+BytesPerPixel : off+BytesPerPixel]
	return p[0], p[1], p[2], p[3]
}

// SetRGBA sets the channels of pixel (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *FrameBuffer) SetRGBA(x, y int, r, g, bl, a uint8) error {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	p := b.data[off : off+BytesPerPixel : off+BytesPerPixel]
	p[0], p[1], p[2], p[3] = r, g, bl, a
	return nil
}

// Fill sets all pixels to the given color.
func (b *FrameBuffer) Fill(r, g, bl, a uint8) {
	for y := range b.height {
		row := b.RowBytes(y)
		for i := 0; i < len(row); i += BytesPerPixel {
			row[i], row[i+1], row[i+2], row[i+3] = r, g, bl, a
		}
	}
}

// SameShape reports whether b and o have identical width and height.
func (b *FrameBuffer) SameShape(o *FrameBuffer) bool {
	return b != nil && o != nil && b.width == o.width && b.height == o.height
}

// Overlaps reports whether b and o are the same buffer or share any byte of
// pixel memory, which happens when two buffers wrap one platform frame.
func (b *FrameBuffer) Overlaps(o *FrameBuffer) bool {
	if b == nil || o == nil {
		return false
	}
	if b == o {
		return true
	}
	if len(b.data) == 0 || len(o.data) == 0 {
		return false
	}
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
	o0 := uintptr(unsafe.Pointer(unsafe.SliceData(o.data)))
	return b0 < o0+uintptr(len(o.data)) && o0 < b0+uintptr(len(b.data))
}

// IsEmpty returns true if the image has zero area.
func (b *FrameBuffer) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}

// String implements fmt.Stringer for log output.
func (b *FrameBuffer) String() string {
	return fmt.Sprintf("%dx%d/%d %s", b.width, b.height, b.stride, b.format)
}

// CheckDistinct validates src and dst and rejects pairs that share pixel
// memory. Every out-of-place operation calls it before touching pixels.
func CheckDistinct(src, dst *FrameBuffer) error {
	if err := src.Validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if src.Overlaps(dst) {
		return ErrAliasedBuffers
	}
	return nil
}
