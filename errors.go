package camfx

import (
	"errors"

	"github.com/gogpu/camfx/internal/filter"
	"github.com/gogpu/camfx/internal/image"
)

// Frame and operation errors, shared with the internal packages so that
// errors.Is matches regardless of which layer wrapped them.
var (
	// ErrInvalidBuffer is returned when a frame violates its stride/size invariant.
	ErrInvalidBuffer = image.ErrInvalidBuffer

	// ErrDimensionMismatch is returned when source and destination shapes differ.
	ErrDimensionMismatch = image.ErrDimensionMismatch

	// ErrAliasedBuffers is returned when source and destination share memory.
	ErrAliasedBuffers = image.ErrAliasedBuffers

	// ErrInvalidDimensions is returned for zero-area resampling input or output.
	ErrInvalidDimensions = image.ErrInvalidDimensions

	// ErrInvalidKernelSize is returned for a kernel size below 1.
	ErrInvalidKernelSize = filter.ErrInvalidKernelSize
)

// Pipeline errors.
var (
	// ErrPipelineBusy is returned when a frame is delivered while another is
	// still being processed.
	ErrPipelineBusy = errors.New("camfx: pipeline busy")

	// ErrPipelineClosed is returned by Process after Close.
	ErrPipelineClosed = errors.New("camfx: pipeline closed")

	// ErrUnknownSelection is returned for a selection outside the known set.
	ErrUnknownSelection = errors.New("camfx: unknown selection")

	// ErrWorkerClosed is returned by Deliver after the worker is closed.
	ErrWorkerClosed = errors.New("camfx: worker closed")

	// ErrFrameDropped is returned by Deliver when the queue is full.
	ErrFrameDropped = errors.New("camfx: frame dropped")
)
