package image

import "errors"

// Errors reported by buffer construction and by every operation that reads
// or writes a FrameBuffer.
var (
	// ErrInvalidBuffer is returned when a buffer violates the stride/size
	// invariant: stride >= width*4 and len(pixels) == stride*height.
	ErrInvalidBuffer = errors.New("image: invalid buffer")

	// ErrInvalidDimensions is returned when width or height is non-positive
	// where a non-empty image is required.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDimensionMismatch is returned when source and destination shapes are
	// incompatible for the requested operation.
	ErrDimensionMismatch = errors.New("image: dimension mismatch")

	// ErrAliasedBuffers is returned when source and destination share pixel
	// memory where distinct buffers are required.
	ErrAliasedBuffers = errors.New("image: aliased source and destination")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)
