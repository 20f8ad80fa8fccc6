package resample

import (
	"math"

	"github.com/gogpu/camfx/internal/image"
)

// Bilinear resamples src into dst by bilinear interpolation.
//
// Coordinates are corner aligned: destination pixel i maps to source
// coordinate i*(in-1)/(out-1), so the first and last rows and columns of
// dst sample the first and last of src exactly. A destination axis of one
// pixel samples source index 0. Neighbors past the border clamp to it.
func Bilinear(src, dst *image.FrameBuffer) error {
	if err := checkResizeArgs(src, dst); err != nil {
		return err
	}

	sw, sh := src.Bounds()
	dw, dh := dst.Bounds()
	ratioX := axisRatio(sw, dw)
	ratioY := axisRatio(sh, dh)

	srcData, dstData := src.Data(), dst.Data()
	srcStride, dstStride := src.Stride(), dst.Stride()

	for y := 0; y < dh; y++ {
		fy := float64(y) * ratioY
		y0 := int(math.Floor(fy))
		ty := fy - float64(y0)
		y0 = clamp(y0, 0, sh-1)
		y1 := clamp(y0+1, 0, sh-1)
		row0 := srcData[y0*srcStride:]
		row1 := srcData[y1*srcStride:]
		out := dstData[y*dstStride:]

		for x := 0; x < dw; x++ {
			fx := float64(x) * ratioX
			x0 := int(math.Floor(fx))
			tx := fx - float64(x0)
			x0 = clamp(x0, 0, sw-1)
			x1 := clamp(x0+1, 0, sw-1)

			i00, i10 := x0*4, x1*4
			o := x * 4
			for c := 0; c < 4; c++ {
				v0 := lerp(float64(row0[i00+c]), float64(row0[i10+c]), tx)
				v1 := lerp(float64(row1[i00+c]), float64(row1[i10+c]), tx)
				out[o+c] = roundByte(lerp(v0, v1, ty))
			}
		}
	}
	return nil
}

// axisRatio returns the corner-aligned source step per destination pixel.
func axisRatio(in, out int) float64 {
	if out <= 1 {
		return 0
	}
	return float64(in-1) / float64(out-1)
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
