package image

// Scratch is a lazily sized destination buffer reused across frames.
//
// Ensure reallocates only when the requested shape differs from the current
// one, and even then reuses the existing backing array when it is large
// enough. Scratch is not safe for concurrent use; it belongs to exactly one
// processing goroutine.
type Scratch struct {
	buf    *FrameBuffer
	allocs int
}

// Ensure returns a tightly packed buffer of the requested shape. The second
// result reports whether the shape changed since the previous call, in which
// case the contents are unspecified.
func (s *Scratch) Ensure(width, height int) (*FrameBuffer, bool, error) {
	if width <= 0 || height <= 0 {
		return nil, false, ErrInvalidDimensions
	}
	if s.buf != nil && s.buf.width == width && s.buf.height == height {
		return s.buf, false, nil
	}

	stride := FormatRGBA8888.RowBytes(width)
	size := stride * height

	var data []byte
	if s.buf != nil && cap(s.buf.data) >= size {
		data = s.buf.data[:size]
	} else {
		data = make([]byte, size)
		s.allocs++
	}

	s.buf = &FrameBuffer{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
		format: FormatRGBA8888,
	}
	return s.buf, true, nil
}

// Buffer returns the current buffer, or nil before the first Ensure.
func (s *Scratch) Buffer() *FrameBuffer {
	return s.buf
}

// Allocs returns how many backing arrays Ensure has allocated.
func (s *Scratch) Allocs() int {
	return s.allocs
}

// Release drops the buffer so its memory can be collected.
func (s *Scratch) Release() {
	s.buf = nil
}
