// Package worker provides the single-goroutine executor that serializes
// frame processing.
package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrClosed is returned when work is submitted after Close.
	ErrClosed = errors.New("worker: executor closed")

	// ErrQueueFull is returned by TrySubmit when the queue has no free slot.
	ErrQueueFull = errors.New("worker: queue full")
)

// Executor runs submitted functions one at a time, in submission order, on
// a single dedicated goroutine. Work waits in a bounded queue.
//
// Thread safety: Executor is safe for concurrent use.
type Executor struct {
	// queue holds pending work.
	queue chan func()

	// done signals the worker to drain and stop.
	done chan struct{}

	// wg waits for the worker goroutine.
	wg sync.WaitGroup

	// mu orders submissions against Close so no work is accepted after
	// the final drain.
	mu sync.RWMutex

	// running indicates whether the executor is accepting work.
	running atomic.Bool
}

// NewExecutor starts an executor whose queue holds queueSize pending items.
// A queueSize below 1 is raised to 1.
func NewExecutor(queueSize int) *Executor {
	if queueSize < 1 {
		queueSize = 1
	}

	e := &Executor{
		queue: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
	e.running.Store(true)

	e.wg.Add(1)
	go e.worker()

	return e
}

// worker is the main loop of the executor goroutine.
func (e *Executor) worker() {
	defer e.wg.Done()

	for {
		select {
		case <-e.done:
			e.drainQueue()
			return
		case work := <-e.queue:
			e.run(work)
		}
	}
}

// drainQueue executes all remaining queued work.
func (e *Executor) drainQueue() {
	for {
		select {
		case work := <-e.queue:
			e.run(work)
		default:
			return
		}
	}
}

func (e *Executor) run(work func()) {
	if work != nil {
		work()
	}
}

// TrySubmit queues fn without blocking. It returns ErrQueueFull when the
// queue is full and ErrClosed after Close.
func (e *Executor) TrySubmit(fn func()) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.running.Load() {
		return ErrClosed
	}
	select {
	case e.queue <- fn:
		return nil
	default:
		return ErrQueueFull
	}
}

// Submit queues fn, waiting for a free slot until ctx is done.
func (e *Executor) Submit(ctx context.Context, fn func()) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.running.Load() {
		return ErrClosed
	}
	select {
	case e.queue <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs fn on the executor goroutine and waits for it to return.
func (e *Executor) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if err := e.Submit(ctx, func() {
		defer close(finished)
		fn()
	}); err != nil {
		return err
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work, runs everything already queued, and waits
// for the executor goroutine to exit.
// Close is safe to call multiple times.
func (e *Executor) Close() {
	e.mu.Lock()
	if !e.running.CompareAndSwap(true, false) {
		e.mu.Unlock()
		return
	}
	close(e.done)
	e.mu.Unlock()

	e.wg.Wait()
}

// IsRunning returns true if the executor is still accepting work.
func (e *Executor) IsRunning() bool {
	return e.running.Load()
}

// Queued returns the number of items waiting in the queue.
func (e *Executor) Queued() int {
	return len(e.queue)
}

// Capacity returns the queue size.
func (e *Executor) Capacity() int {
	return cap(e.queue)
}
