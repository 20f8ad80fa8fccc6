package camfx

import (
	"testing"
)

// newTestFrame creates a w×h frame with a position-dependent pattern.
func newTestFrame(t testing.TB, w, h int) *FrameBuffer {
	t.Helper()
	f, err := NewFrameBuffer(w, h)
	if err != nil {
		t.Fatalf("NewFrameBuffer(%d, %d): %v", w, h, err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if err := f.SetRGBA(x, y, uint8(x*7+y), uint8(y*13), uint8(x^y), uint8(200+x%50)); err != nil {
				t.Fatalf("SetRGBA(%d, %d): %v", x, y, err)
			}
		}
	}
	return f
}

// newUniformFrame creates a w×h frame of one color.
func newUniformFrame(t testing.TB, w, h int, r, g, b, a uint8) *FrameBuffer {
	t.Helper()
	f, err := NewFrameBuffer(w, h)
	if err != nil {
		t.Fatalf("NewFrameBuffer(%d, %d): %v", w, h, err)
	}
	f.Fill(r, g, b, a)
	return f
}

// pixel returns the RGBA value at (x, y) as an array for comparisons.
func pixel(f *FrameBuffer, x, y int) [4]uint8 {
	r, g, b, a := f.GetRGBA(x, y)
	return [4]uint8{r, g, b, a}
}

// recorder is a DisplayFunc that keeps a copy and the identity of every
// displayed frame.
type recorder struct {
	frames []*FrameBuffer
	ptrs   []*FrameBuffer
}

func (r *recorder) display(f *FrameBuffer) {
	r.ptrs = append(r.ptrs, f)
	r.frames = append(r.frames, f.Clone())
}

func (r *recorder) last() *FrameBuffer {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}
