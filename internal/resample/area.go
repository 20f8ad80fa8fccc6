package resample

import (
	"math"

	"github.com/gogpu/camfx/internal/image"
)

// Area resamples src into dst by area averaging.
//
// Destination pixel (x, y) covers the source rectangle
// [x*sw/dw, (x+1)*sw/dw) × [y*sh/dh, (y+1)*sh/dh). Every source pixel is
// weighted by the exact area it shares with that rectangle, so partially
// covered border pixels of a fractional footprint contribute their
// fraction. When shrinking by an integer factor this is the plain mean of
// each block.
func Area(src, dst *image.FrameBuffer) error {
	if err := checkResizeArgs(src, dst); err != nil {
		return err
	}

	sw, sh := src.Bounds()
	dw, dh := dst.Bounds()
	scaleX := float64(sw) / float64(dw)
	scaleY := float64(sh) / float64(dh)

	srcData, dstData := src.Data(), dst.Data()
	srcStride, dstStride := src.Stride(), dst.Stride()

	for y := 0; y < dh; y++ {
		ys, ye := footprint(y, scaleY, sh)
		out := dstData[y*dstStride:]

		for x := 0; x < dw; x++ {
			xs, xe := footprint(x, scaleX, sw)
			var acc [4]float64
			var wsum float64

			for sy := int(ys); sy < sh && float64(sy) < ye; sy++ {
				wy := overlap(ys, ye, sy)
				row := srcData[sy*srcStride:]
				for sx := int(xs); sx < sw && float64(sx) < xe; sx++ {
					w := wy * overlap(xs, xe, sx)
					wsum += w
					i := sx * 4
					acc[0] += float64(row[i+0]) * w
					acc[1] += float64(row[i+1]) * w
					acc[2] += float64(row[i+2]) * w
					acc[3] += float64(row[i+3]) * w
				}
			}

			o := x * 4
			for c := 0; c < 4; c++ {
				out[o+c] = roundByte(acc[c] / wsum)
			}
		}
	}
	return nil
}

// footprint returns the source span [start, end) covered by destination
// index i. The last span ends exactly at n.
func footprint(i int, scale float64, n int) (start, end float64) {
	start = float64(i) * scale
	end = math.Min(float64(i+1)*scale, float64(n))
	return start, end
}

// overlap returns the length of [s, e) ∩ [p, p+1).
func overlap(s, e float64, p int) float64 {
	lo := math.Max(s, float64(p))
	hi := math.Min(e, float64(p+1))
	if hi <= lo {
		return 0
	}
	return hi - lo
}
