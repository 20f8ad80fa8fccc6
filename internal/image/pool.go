package image

import (
	"sync"
	"sync/atomic"
)

// Pool is a thread-safe pool for reusing FrameBuffer instances.
//
// Pool groups buffers by their dimensions so identically-sized frames can be
// recycled without touching the allocator. Buffers handed out by Get have
// unspecified contents; callers overwrite every pixel.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*FrameBuffer
	maxSize int // max buffers per bucket

	allocs atomic.Uint64
}

// poolKey identifies a bucket of identically shaped buffers.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a new frame buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*FrameBuffer),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a buffer of the given shape from the pool or allocates a new
// one. Returns nil for non-positive dimensions.
func (p *Pool) Get(width, height int) *FrameBuffer {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	buf, err := NewFrameBuffer(width, height)
	if err != nil {
		return nil
	}
	p.allocs.Add(1)
	return buf
}

// Put returns a buffer to the pool for reuse.
// If buf is nil or the bucket is at capacity, the buffer is discarded.
func (p *Pool) Put(buf *FrameBuffer) {
	if buf == nil || buf.IsEmpty() {
		return
	}

	key := poolKey{width: buf.width, height: buf.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Allocs returns how many buffers the pool has allocated over its lifetime.
func (p *Pool) Allocs() uint64 {
	return p.allocs.Load()
}

// Drain discards all pooled buffers.
func (p *Pool) Drain() {
	p.mu.Lock()
	clear(p.buckets)
	p.mu.Unlock()
}
