package camfx

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/camfx/internal/worker"
)

// DefaultQueueDepth is the number of frames a Worker holds while busy.
const DefaultQueueDepth = 2

// DoneFunc is called on the worker goroutine after each frame, with the
// result of Pipeline.Process. Use it to recycle the frame.
type DoneFunc func(frame *FrameBuffer, err error)

// WorkerStats is a snapshot of Worker counters.
type WorkerStats struct {
	// Delivered counts frames accepted into the queue.
	Delivered uint64

	// Dropped counts frames rejected because the queue was full.
	Dropped uint64

	// Failed counts accepted frames whose processing returned an error.
	Failed uint64

	// Pending is the number of frames waiting behind the one in flight.
	Pending int

	// QueueDepth is the number of frames the worker holds while busy.
	QueueDepth int
}

// Worker feeds a Pipeline from a single dedicated goroutine. Capture code
// calls Deliver from any goroutine; frames run one at a time in arrival
// order, and when the pipeline falls behind new frames are dropped instead
// of blocking the caller.
type Worker struct {
	pipeline *Pipeline
	exec     *worker.Executor
	onDone   DoneFunc

	delivered atomic.Uint64
	dropped   atomic.Uint64
	failed    atomic.Uint64
}

// NewWorker starts a worker for p with room for queueDepth pending frames.
// onDone may be nil.
func NewWorker(p *Pipeline, queueDepth int, onDone DoneFunc) *Worker {
	if queueDepth < 1 {
		queueDepth = DefaultQueueDepth
	}
	return &Worker{
		pipeline: p,
		exec:     worker.NewExecutor(queueDepth),
		onDone:   onDone,
	}
}

// Deliver queues frame for processing without blocking. Ownership of frame
// passes to the worker until onDone is called for it. When the queue is
// full the frame is dropped and ErrFrameDropped is returned; ownership
// stays with the caller.
func (w *Worker) Deliver(frame *FrameBuffer) error {
	err := w.exec.TrySubmit(func() { w.run(frame) })
	switch {
	case err == nil:
		w.delivered.Add(1)
		return nil
	case errors.Is(err, worker.ErrQueueFull):
		if n := w.dropped.Add(1); n == 1 || n%100 == 0 {
			w.pipeline.logger().Warn("frame dropped", slog.Uint64("dropped", n))
		}
		return ErrFrameDropped
	default:
		return ErrWorkerClosed
	}
}

// run processes one frame on the executor goroutine.
func (w *Worker) run(frame *FrameBuffer) {
	err := w.pipeline.Process(frame)
	if err != nil {
		w.failed.Add(1)
	}
	if w.onDone != nil {
		w.onDone(frame, err)
	}
}

// Sync waits until every frame delivered before the call has been
// processed.
func (w *Worker) Sync(ctx context.Context) error {
	err := w.exec.Do(ctx, func() {})
	if errors.Is(err, worker.ErrClosed) {
		return ErrWorkerClosed
	}
	return err
}

// Stats returns a snapshot of the worker counters.
func (w *Worker) Stats() WorkerStats {
	return WorkerStats{
		Delivered:  w.delivered.Load(),
		Dropped:    w.dropped.Load(),
		Failed:     w.failed.Load(),
		Pending:    w.exec.Queued(),
		QueueDepth: w.exec.Capacity(),
	}
}

// Close stops accepting frames, processes the ones already queued, and
// waits for the worker goroutine to exit. It does not close the pipeline.
// Close is safe to call multiple times.
func (w *Worker) Close() {
	if !w.exec.IsRunning() {
		return
	}
	w.exec.Close()

	st := w.Stats()
	w.pipeline.logger().Info("worker closed",
		slog.Uint64("delivered", st.Delivered),
		slog.Uint64("dropped", st.Dropped),
		slog.Uint64("failed", st.Failed))
}
