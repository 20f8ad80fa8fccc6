package camfx

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/camfx/internal/image"
)

// DisplayQueue hands processed frames from the processing goroutine to a
// UI or output goroutine without blocking the former.
//
// Post copies the frame into a recycled buffer and sends it on a bounded
// channel; when the consumer is behind, the frame is dropped. The consumer
// ranges over Frames and returns every buffer with Release.
type DisplayQueue struct {
	frames chan *FrameBuffer
	pool   *image.Pool

	mu     sync.RWMutex
	closed bool

	posted  atomic.Uint64
	dropped atomic.Uint64
}

// NewDisplayQueue creates a queue holding up to depth undisplayed frames.
func NewDisplayQueue(depth int) *DisplayQueue {
	if depth < 1 {
		depth = 1
	}
	return &DisplayQueue{
		frames: make(chan *FrameBuffer, depth),
		// One buffer per queue slot, one held by the consumer, one being filled.
		pool: image.NewPool(depth + 2),
	}
}

// Post copies frame and queues the copy. It never blocks and is a valid
// DisplayFunc.
func (q *DisplayQueue) Post(frame *FrameBuffer) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed || frame.Validate() != nil || frame.IsEmpty() {
		q.dropped.Add(1)
		return
	}

	w, h := frame.Bounds()
	buf := q.pool.Get(w, h)
	if err := buf.CopyFrom(frame); err != nil {
		q.pool.Put(buf)
		q.dropped.Add(1)
		Logger().Debug("display copy failed", slog.Any("error", err))
		return
	}

	select {
	case q.frames <- buf:
		q.posted.Add(1)
	default:
		q.pool.Put(buf)
		q.dropped.Add(1)
	}
}

// Frames returns the channel of displayable frames. It is closed by Close.
func (q *DisplayQueue) Frames() <-chan *FrameBuffer {
	return q.frames
}

// Release returns a frame received from Frames for reuse.
func (q *DisplayQueue) Release(buf *FrameBuffer) {
	q.pool.Put(buf)
}

// Posted returns the number of frames queued for display.
func (q *DisplayQueue) Posted() uint64 {
	return q.posted.Load()
}

// Dropped returns the number of frames discarded because the consumer was
// behind or the queue was closed.
func (q *DisplayQueue) Dropped() uint64 {
	return q.dropped.Load()
}

// Allocs returns how many display buffers have been allocated.
func (q *DisplayQueue) Allocs() uint64 {
	return q.pool.Allocs()
}

// Close closes the Frames channel. Frames already queued can still be
// received. Later Posts are dropped.
// Close is safe to call multiple times.
func (q *DisplayQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.frames)
}
