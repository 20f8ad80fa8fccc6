package camfx

import (
	"fmt"
	"math"
	"time"
)

// DefaultFrameBudget is the per-frame processing budget, one frame at 30 fps.
const DefaultFrameBudget = 33 * time.Millisecond

// Option configures a Pipeline during creation.
//
// Example:
//
//	p, err := camfx.NewPipeline(show,
//	    camfx.WithSelection(camfx.SelectionArea),
//	    camfx.WithLongSide(320),
//	)
type Option func(*options)

// options holds optional configuration for Pipeline creation.
type options struct {
	selection   Selection
	kernelSize  int
	longSide    int
	frameBudget time.Duration
}

// defaultOptions returns the default pipeline options.
func defaultOptions() options {
	return options{
		selection:   SelectionGrayscale,
		kernelSize:  DefaultKernelSize,
		longSide:    DefaultLongSide,
		frameBudget: DefaultFrameBudget,
	}
}

// validate checks option values that NewPipeline cannot correct.
func (o *options) validate() error {
	if !o.selection.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownSelection, uint32(o.selection))
	}
	if err := checkKernelSize(o.kernelSize); err != nil {
		return err
	}
	if o.longSide < 1 {
		return fmt.Errorf("%w: long side %d", ErrInvalidDimensions, o.longSide)
	}
	return nil
}

// checkKernelSize rejects sizes below 1 and sizes the pipeline cannot
// store in its int32 slot.
func checkKernelSize(k int) error {
	if k < 1 || k > math.MaxInt32 {
		return fmt.Errorf("%w: got %d", ErrInvalidKernelSize, k)
	}
	return nil
}

// WithSelection sets the initial operation. Default: SelectionGrayscale.
func WithSelection(s Selection) Option {
	return func(o *options) {
		o.selection = s
	}
}

// WithKernelSize sets the initial blur kernel size. Default: 5.
func WithKernelSize(k int) Option {
	return func(o *options) {
		o.kernelSize = k
	}
}

// WithLongSide sets the long side of the resampling target. Default: 256.
func WithLongSide(n int) Option {
	return func(o *options) {
		o.longSide = n
	}
}

// WithFrameBudget sets the per-frame processing budget. Frames that take
// longer are still displayed but counted and logged as overruns.
// A budget of zero or less disables the check.
func WithFrameBudget(d time.Duration) Option {
	return func(o *options) {
		o.frameBudget = d
	}
}
