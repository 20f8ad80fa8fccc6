// Package camfx is a real-time filter and resampling engine for camera
// frames.
//
// # Overview
//
// Every captured frame is pushed through a Pipeline which applies the
// currently selected operation and hands the result to a display callback.
// The operations are:
//   - Color transforms (in place): Grayscale, Sepia
//   - Convolution filters: BoxBlur, GaussianBlur (separable, clamp-to-edge)
//   - Resamplers: Bilinear, Area (long-side target shape)
//
// # Quick Start
//
//	p, err := camfx.NewPipeline(func(frame *camfx.FrameBuffer) {
//	    // frame is valid only during this call
//	    show(frame)
//	}, camfx.WithSelection(camfx.SelectionGaussianBlur))
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	for frame := range frames {
//	    if err := p.Process(frame); err != nil {
//	        log.Print(err)
//	    }
//	}
//
// # Frames
//
// A FrameBuffer is a strided RGBA8888 buffer. Operations always take an
// explicit source and destination and fail with ErrAliasedBuffers when the
// two share memory. Alpha is passed through by filters and resampled by
// resamplers.
//
// # Concurrency
//
// A Pipeline processes one frame at a time and is not reentrant: a Process
// call made while another is in flight fails fast with ErrPipelineBusy.
// Worker serializes delivery on a single goroutine with a bounded queue and
// drops frames instead of blocking the capture side. SetSelection and
// SetKernelSize may be called from any goroutine; the change applies from
// the next frame.
//
// # Allocation
//
// The pipeline owns one scratch frame, sized on first use and reallocated
// only when the required output shape changes. Frames of a steady shape are
// processed without heap allocation.
package camfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
