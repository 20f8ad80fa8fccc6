package filter

import (
	"fmt"

	"github.com/gogpu/camfx/internal/image"
)

// ColorMatrix is a 3x4 row-major affine transform on straight RGB in
// [0, 255]: each output channel is m[row*4+0]*R + m[row*4+1]*G +
// m[row*4+2]*B + m[row*4+3]. Alpha is never touched.
type ColorMatrix [12]float32

// SepiaMatrix is the classic sepia tone matrix.
var SepiaMatrix = ColorMatrix{
	0.393, 0.769, 0.189, 0,
	0.349, 0.686, 0.168, 0,
	0.272, 0.534, 0.131, 0,
}

// Apply transforms buf in place. Results are clamped to [0, 255] and
// rounded half up.
func (m *ColorMatrix) Apply(buf *image.FrameBuffer) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	m.apply(buf)
	return nil
}

func (m *ColorMatrix) apply(buf *image.FrameBuffer) {
	w, h := buf.Bounds()
	data := buf.Data()
	stride := buf.Stride()

	for y := 0; y < h; y++ {
		row := data[y*stride : y*stride+w*4]
		for i := 0; i < len(row); i += 4 {
			r := float32(row[i+0])
			g := float32(row[i+1])
			b := float32(row[i+2])
			row[i+0] = clampUint8(m[0]*r + m[1]*g + m[2]*b + m[3])
			row[i+1] = clampUint8(m[4]*r + m[5]*g + m[6]*b + m[7])
			row[i+2] = clampUint8(m[8]*r + m[9]*g + m[10]*b + m[11])
		}
	}
}

// Luma weights for Grayscale, in thousandths.
const (
	lumaR = 299
	lumaG = 587
	lumaB = 114
)

// Luma returns round(0.299*r + 0.587*g + 0.114*b) using exact integer
// arithmetic.
func Luma(r, g, b uint8) uint8 {
	return uint8((lumaR*uint32(r) + lumaG*uint32(g) + lumaB*uint32(b) + 500) / 1000)
}

// Grayscale replaces R, G and B of every pixel with its luma, in place.
// Alpha is preserved.
func Grayscale(buf *image.FrameBuffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("grayscale: %w", err)
	}

	w, h := buf.Bounds()
	data := buf.Data()
	stride := buf.Stride()
	for y := 0; y < h; y++ {
		row := data[y*stride : y*stride+w*4]
		for i := 0; i < len(row); i += 4 {
			l := Luma(row[i], row[i+1], row[i+2])
			row[i+0], row[i+1], row[i+2] = l, l, l
		}
	}
	return nil
}

// Sepia applies SepiaMatrix to buf in place.
func Sepia(buf *image.FrameBuffer) error {
	if err := SepiaMatrix.Apply(buf); err != nil {
		return fmt.Errorf("sepia: %w", err)
	}
	return nil
}
