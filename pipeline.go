package camfx

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/camfx/internal/filter"
	"github.com/gogpu/camfx/internal/image"
	"github.com/gogpu/camfx/internal/resample"
)

// DisplayFunc receives each processed frame. The frame is only valid for
// the duration of the call: it is either the incoming frame or the
// pipeline's scratch frame, both of which are overwritten by the next
// frame. Retain it with Clone or hand it to a DisplayQueue.
type DisplayFunc func(frame *FrameBuffer)

// State is the pipeline's processing state.
type State int32

const (
	// StateIdle means no frame is in flight.
	StateIdle State = iota

	// StateProcessing means a frame is being processed or displayed.
	StateProcessing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateProcessing:
		return "Processing"
	default:
		return "Unknown"
	}
}

// Stats is a snapshot of pipeline counters.
type Stats struct {
	// Frames is the number of frames processed successfully.
	Frames uint64

	// Failures is the number of frames rejected by an operation.
	Failures uint64

	// BusyRejections counts reentrant Process calls.
	BusyRejections uint64

	// ScratchAllocs counts scratch frame allocations.
	ScratchAllocs int

	// BudgetOverruns counts frames that took longer than the frame budget.
	BudgetOverruns uint64

	// LastDuration and MaxDuration measure processing, excluding display.
	LastDuration time.Duration
	MaxDuration  time.Duration
}

// Pipeline applies the selected operation to one frame at a time and hands
// the result to a DisplayFunc.
//
// Process must not be called concurrently; the pipeline fails fast with
// ErrPipelineBusy instead of sharing its scratch frame. SetSelection and
// SetKernelSize are safe from any goroutine and take effect on the next
// frame.
type Pipeline struct {
	id       uuid.UUID
	display  DisplayFunc
	longSide int
	budget   time.Duration

	state      atomic.Int32
	closed     atomic.Bool
	selection  atomic.Uint32
	kernelSize atomic.Int32

	// Owned by whichever call holds StateProcessing.
	scratch image.Scratch
	blurrer *filter.Blurrer

	frames       atomic.Uint64
	failures     atomic.Uint64
	busy         atomic.Uint64
	overruns     atomic.Uint64
	scratchAlloc atomic.Int64
	lastNanos    atomic.Int64
	maxNanos     atomic.Int64
}

// NewPipeline creates a pipeline that passes each processed frame to
// display. A nil display discards results.
func NewPipeline(display DisplayFunc, opts ...Option) (*Pipeline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		id:       uuid.New(),
		display:  display,
		longSide: o.longSide,
		budget:   o.frameBudget,
		blurrer:  filter.NewBlurrer(),
	}
	p.selection.Store(uint32(o.selection))
	p.kernelSize.Store(int32(o.kernelSize))

	p.logger().Info("pipeline created",
		slog.String("selection", o.selection.String()),
		slog.Int("kernel_size", o.kernelSize),
		slog.Int("long_side", o.longSide),
		slog.Duration("frame_budget", o.frameBudget))
	return p, nil
}

// ID returns the pipeline's session id, attached to its log records.
func (p *Pipeline) ID() uuid.UUID {
	return p.id
}

// logger returns the package logger tagged with the pipeline id.
func (p *Pipeline) logger() *slog.Logger {
	return Logger().With(slog.String("pipeline", p.id.String()))
}

// Selection returns the current operation.
func (p *Pipeline) Selection() Selection {
	return Selection(p.selection.Load())
}

// SetSelection changes the operation applied from the next frame on.
func (p *Pipeline) SetSelection(s Selection) error {
	if !s.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownSelection, uint32(s))
	}
	if old := Selection(p.selection.Swap(uint32(s))); old != s {
		p.logger().Debug("selection changed",
			slog.String("from", old.String()), slog.String("to", s.String()))
	}
	return nil
}

// KernelSize returns the current blur kernel size.
func (p *Pipeline) KernelSize() int {
	return int(p.kernelSize.Load())
}

// SetKernelSize changes the blur kernel size used from the next frame on.
func (p *Pipeline) SetKernelSize(k int) error {
	if err := checkKernelSize(k); err != nil {
		return err
	}
	p.kernelSize.Store(int32(k))
	return nil
}

// LongSide returns the long side of the resampling target shape.
func (p *Pipeline) LongSide() int {
	return p.longSide
}

// State returns the current processing state.
func (p *Pipeline) State() State {
	return State(p.state.Load())
}

// Process runs the selected operation on frame and displays the result.
//
// Color transforms modify frame in place and display it. Blurs and
// resamplers leave frame untouched and display the scratch frame.
// Operation errors are returned wrapped with the selection name; the frame
// is not displayed and no retry is attempted.
func (p *Pipeline) Process(frame *FrameBuffer) error {
	if !p.state.CompareAndSwap(int32(StateIdle), int32(StateProcessing)) {
		p.busy.Add(1)
		return ErrPipelineBusy
	}
	defer p.state.Store(int32(StateIdle))

	if p.closed.Load() {
		return ErrPipelineClosed
	}

	sel := p.Selection()
	start := time.Now()
	out, err := p.apply(sel, frame)
	elapsed := time.Since(start)

	if err != nil {
		p.failures.Add(1)
		p.logger().Debug("frame failed",
			slog.String("selection", sel.String()), slog.Any("error", err))
		return fmt.Errorf("camfx: %s: %w", sel, err)
	}

	p.frames.Add(1)
	p.recordDuration(sel, frame, elapsed)

	if p.display != nil {
		p.display(out)
	}
	return nil
}

// apply dispatches one frame and returns the buffer to display.
func (p *Pipeline) apply(sel Selection, frame *FrameBuffer) (*FrameBuffer, error) {
	if err := frame.Validate(); err != nil {
		return nil, err
	}
	w, h := frame.Bounds()

	switch {
	case !sel.IsValid():
		return nil, fmt.Errorf("%w: %d", ErrUnknownSelection, uint32(sel))

	case sel.IsInPlace():
		if sel == SelectionSepia {
			return frame, filter.Sepia(frame)
		}
		return frame, filter.Grayscale(frame)

	case sel.IsResample():
		shape, err := resample.ComputeTargetShape(p.longSide, h, w)
		if err != nil {
			return nil, err
		}
		dst, err := p.ensureScratch(shape.Width, shape.Height)
		if err != nil {
			return nil, err
		}
		return dst, resample.Resize(frame, dst, sel.resampleMethod())

	default:
		dst, err := p.ensureScratch(w, h)
		if err != nil {
			return nil, err
		}
		k := p.KernelSize()
		if sel == SelectionBoxBlur {
			err = p.blurrer.BoxBlur(frame, dst, k)
		} else {
			err = p.blurrer.GaussianBlur(frame, dst, k)
		}
		return dst, err
	}
}

// ensureScratch sizes the scratch frame, allocating only on shape change.
func (p *Pipeline) ensureScratch(w, h int) (*FrameBuffer, error) {
	before := p.scratch.Allocs()
	buf, changed, err := p.scratch.Ensure(w, h)
	if err != nil {
		return nil, err
	}
	if changed {
		allocated := p.scratch.Allocs() > before
		p.scratchAlloc.Store(int64(p.scratch.Allocs()))
		p.logger().Debug("scratch resized",
			slog.Int("width", w), slog.Int("height", h),
			slog.Bool("allocated", allocated))
	}
	return buf, nil
}

// recordDuration updates timing counters and reports budget overruns.
func (p *Pipeline) recordDuration(sel Selection, frame *FrameBuffer, d time.Duration) {
	n := int64(d)
	p.lastNanos.Store(n)
	for {
		cur := p.maxNanos.Load()
		if n <= cur || p.maxNanos.CompareAndSwap(cur, n) {
			break
		}
	}

	if p.budget > 0 && d > p.budget {
		p.overruns.Add(1)
		p.logger().Warn("frame over budget",
			slog.String("selection", sel.String()),
			slog.String("frame", frame.String()),
			slog.Duration("elapsed", d),
			slog.Duration("budget", p.budget))
	}
}

// Stats returns a snapshot of the pipeline counters.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Frames:         p.frames.Load(),
		Failures:       p.failures.Load(),
		BusyRejections: p.busy.Load(),
		ScratchAllocs:  int(p.scratchAlloc.Load()),
		BudgetOverruns: p.overruns.Load(),
		LastDuration:   time.Duration(p.lastNanos.Load()),
		MaxDuration:    time.Duration(p.maxNanos.Load()),
	}
}

// Close releases the scratch frame. Further Process calls return
// ErrPipelineClosed. Close fails with ErrPipelineBusy while a frame is in
// flight, including from inside the display callback.
// Close is safe to call multiple times.
func (p *Pipeline) Close() error {
	if !p.state.CompareAndSwap(int32(StateIdle), int32(StateProcessing)) {
		return ErrPipelineBusy
	}
	defer p.state.Store(int32(StateIdle))

	if p.closed.Swap(true) {
		return nil
	}
	p.scratch.Release()
	p.blurrer = nil

	st := p.Stats()
	p.logger().Info("pipeline closed",
		slog.Uint64("frames", st.Frames),
		slog.Uint64("failures", st.Failures),
		slog.Int("scratch_allocs", st.ScratchAllocs))
	return nil
}
