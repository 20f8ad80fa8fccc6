package filter

import (
	"testing"

	"github.com/gogpu/camfx/internal/image"
)

// Test helper functions shared across filter tests.

// newFilled creates a frame filled with the given color.
func newFilled(t testing.TB, w, h int, r, g, b, a uint8) *image.FrameBuffer {
	t.Helper()
	buf, err := image.NewFrameBuffer(w, h)
	if err != nil {
		t.Fatalf("NewFrameBuffer(%d, %d): %v", w, h, err)
	}
	buf.Fill(r, g, b, a)
	return buf
}

// newPattern creates a frame whose pixels vary with position so every
// channel, including alpha, is distinguishable.
func newPattern(t testing.TB, w, h int) *image.FrameBuffer {
	t.Helper()
	buf, err := image.NewFrameBuffer(w, h)
	if err != nil {
		t.Fatalf("NewFrameBuffer(%d, %d): %v", w, h, err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_ = buf.SetRGBA(x, y, uint8(x*37+y*11), uint8(x*5+y*53), uint8(x*x+y), uint8(100+x+y))
		}
	}
	return buf
}

// newEmpty creates a zeroed frame of the given size.
func newEmpty(t testing.TB, w, h int) *image.FrameBuffer {
	t.Helper()
	buf, err := image.NewFrameBuffer(w, h)
	if err != nil {
		t.Fatalf("NewFrameBuffer(%d, %d): %v", w, h, err)
	}
	return buf
}

// absDiff returns |a-b| for bytes.
func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// naiveBox computes the clamped (2k+1)² mean at (x, y) directly.
func naiveBox(buf *image.FrameBuffer, x, y, k int) (r, g, b uint8) {
	w, h := buf.Bounds()
	var sr, sg, sb int
	for dy := -k; dy <= k; dy++ {
		for dx := -k; dx <= k; dx++ {
			pr, pg, pb, _ := buf.GetRGBA(clampInt(x+dx, 0, w-1), clampInt(y+dy, 0, h-1))
			sr += int(pr)
			sg += int(pg)
			sb += int(pb)
		}
	}
	n := (2*k + 1) * (2*k + 1)
	return uint8((2*sr + n) / (2 * n)), uint8((2*sg + n) / (2 * n)), uint8((2*sb + n) / (2 * n))
}
