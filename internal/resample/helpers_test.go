package resample

import (
	"testing"

	"github.com/gogpu/camfx/internal/image"
)

// newFrame creates a zeroed frame or fails the test.
func newFrame(t testing.TB, w, h int) *image.FrameBuffer {
	t.Helper()
	buf, err := image.NewFrameBuffer(w, h)
	if err != nil {
		t.Fatalf("NewFrameBuffer(%d, %d): %v", w, h, err)
	}
	return buf
}

// newGradient creates an opaque frame with R = sx*x, G = sy*y, B = x+y.
func newGradient(t testing.TB, w, h, sx, sy int) *image.FrameBuffer {
	t.Helper()
	buf := newFrame(t, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_ = buf.SetRGBA(x, y, uint8(sx*x), uint8(sy*y), uint8(x+y), 255)
		}
	}
	return buf
}

// newStripes creates one-pixel vertical black/white stripes.
func newStripes(t testing.TB, w, h int) *image.FrameBuffer {
	t.Helper()
	buf := newFrame(t, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0)
			if x%2 == 1 {
				v = 255
			}
			_ = buf.SetRGBA(x, y, v, v, v, 255)
		}
	}
	return buf
}

// pointSample resizes by picking the source pixel at the top-left of each
// destination footprint, the naive filter area averaging replaces.
func pointSample(src, dst *image.FrameBuffer) {
	sw, sh := src.Bounds()
	dw, dh := dst.Bounds()
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			r, g, b, a := src.GetRGBA(x*sw/dw, y*sh/dh)
			_ = dst.SetRGBA(x, y, r, g, b, a)
		}
	}
}

// maxChannelDiff returns the largest per-channel difference of two
// same-shape frames.
func maxChannelDiff(a, b *image.FrameBuffer) int {
	w, h := a.Bounds()
	worst := 0
	for y := 0; y < h; y++ {
		ra, rb := a.RowBytes(y), b.RowBytes(y)
		for i := 0; i < w*4; i++ {
			d := int(ra[i]) - int(rb[i])
			if d < 0 {
				d = -d
			}
			worst = max(worst, d)
		}
	}
	return worst
}
