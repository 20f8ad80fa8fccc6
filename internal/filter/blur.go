package filter

import (
	"fmt"
	"sync"

	"github.com/gogpu/camfx/internal/image"
)

// Blurrer applies separable box and Gaussian blurs. It owns the float32
// intermediate buffer between the horizontal and vertical passes, so a
// Blurrer reused across frames of one shape allocates only once.
//
// A Blurrer is not safe for concurrent use.
type Blurrer struct {
	temp   []float32
	allocs int
}

// NewBlurrer creates a Blurrer with no intermediate storage yet.
func NewBlurrer() *Blurrer {
	return &Blurrer{}
}

// Allocs returns how many times the intermediate buffer had to grow.
func (b *Blurrer) Allocs() int {
	return b.allocs
}

// BoxBlur writes the (2k+1)x(2k+1) mean of every src pixel's clamped
// neighborhood into dst, where k is kernelSize. Alpha is copied unchanged.
//
// Box sums are exact: both passes accumulate integer-valued float32 sums
// and the final division rounds half up, so a uniform image is returned
// bit-exact.
func (b *Blurrer) BoxBlur(src, dst *image.FrameBuffer, kernelSize int) error {
	if err := checkBlurArgs(src, dst, kernelSize); err != nil {
		return err
	}
	if src.IsEmpty() {
		return nil
	}

	w, h := src.Bounds()
	temp := b.grow(w*h*3 + w*3)
	boxHorizontal(src, temp, kernelSize)
	boxVertical(temp, src, dst, kernelSize)
	return nil
}

// GaussianBlur convolves src with a normalized Gaussian kernel of
// 2k+1 taps (sigma = max(k/3, 0.5)) in both directions and writes the
// result into dst. Alpha is copied unchanged.
func (b *Blurrer) GaussianBlur(src, dst *image.FrameBuffer, kernelSize int) error {
	if err := checkBlurArgs(src, dst, kernelSize); err != nil {
		return err
	}
	kernel, err := CachedGaussianKernel(kernelSize)
	if err != nil {
		return err
	}
	if src.IsEmpty() {
		return nil
	}

	w, h := src.Bounds()
	temp := b.grow(w * h * 3)
	convolveHorizontal(src, temp, kernel)
	convolveVertical(temp, src, dst, kernel)
	return nil
}

// grow returns an intermediate slice of length n, reusing prior storage
// when its capacity allows.
func (b *Blurrer) grow(n int) []float32 {
	if cap(b.temp) < n {
		b.temp = make([]float32, n)
		b.allocs++
	}
	return b.temp[:n]
}

// checkBlurArgs validates a blur request.
func checkBlurArgs(src, dst *image.FrameBuffer, kernelSize int) error {
	if kernelSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidKernelSize, kernelSize)
	}
	if err := image.CheckDistinct(src, dst); err != nil {
		return err
	}
	if !src.SameShape(dst) {
		sw, sh := src.Bounds()
		dw, dh := dst.Bounds()
		return fmt.Errorf("%w: %dx%d into %dx%d", image.ErrDimensionMismatch, sw, sh, dw, dh)
	}
	return nil
}

// boxHorizontal writes, for every pixel, the sum of the 2r+1 clamped
// horizontal neighbors of each color channel into temp (3 floats per pixel).
func boxHorizontal(src *image.FrameBuffer, temp []float32, r int) {
	w, h := src.Bounds()
	data := src.Data()
	stride := src.Stride()

	for y := 0; y < h; y++ {
		row := y * stride
		out := temp[y*w*3 : (y+1)*w*3]

		var sr, sg, sb float32
		for k := -r; k <= r; k++ {
			i := row + clampInt(k, 0, w-1)*4
			sr += float32(data[i+0])
			sg += float32(data[i+1])
			sb += float32(data[i+2])
		}
		out[0], out[1], out[2] = sr, sg, sb

		for x := 1; x < w; x++ {
			in := row + clampInt(x+r, 0, w-1)*4
			drop := row + clampInt(x-r-1, 0, w-1)*4
			sr += float32(data[in+0]) - float32(data[drop+0])
			sg += float32(data[in+1]) - float32(data[drop+1])
			sb += float32(data[in+2]) - float32(data[drop+2])
			o := x * 3
			out[o+0], out[o+1], out[o+2] = sr, sg, sb
		}
	}
}

// boxVertical keeps a running column sum of temp rows in the trailing w*3
// floats of temp and writes the rounded window mean into dst.
func boxVertical(temp []float32, src, dst *image.FrameBuffer, r int) {
	w, h := src.Bounds()
	rowLen := w * 3
	acc := temp[h*rowLen : h*rowLen+rowLen]
	n := float64((2*r + 1) * (2*r + 1))

	clear(acc)
	for k := -r; k <= r; k++ {
		row := temp[clampInt(k, 0, h-1)*rowLen:]
		for i := range acc {
			acc[i] += row[i]
		}
	}

	srcData, dstData := src.Data(), dst.Data()
	srcStride, dstStride := src.Stride(), dst.Stride()

	for y := 0; y < h; y++ {
		if y > 0 {
			in := temp[clampInt(y+r, 0, h-1)*rowLen:]
			drop := temp[clampInt(y-r-1, 0, h-1)*rowLen:]
			for i := range acc {
				acc[i] += in[i] - drop[i]
			}
		}

		so := y * srcStride
		do := y * dstStride
		for x := 0; x < w; x++ {
			a := acc[x*3:]
			di := do + x*4
			dstData[di+0] = roundMean(a[0], n)
			dstData[di+1] = roundMean(a[1], n)
			dstData[di+2] = roundMean(a[2], n)
			dstData[di+3] = srcData[so+x*4+3]
		}
	}
}

// convolveHorizontal applies the kernel along rows of src into temp.
func convolveHorizontal(src *image.FrameBuffer, temp []float32, kernel Kernel) {
	w, h := src.Bounds()
	data := src.Data()
	stride := src.Stride()
	r := kernel.Radius
	weights := kernel.Weights

	for y := 0; y < h; y++ {
		row := y * stride
		out := temp[y*w*3:]
		for x := 0; x < w; x++ {
			var sr, sg, sb float32
			for k, wt := range weights {
				i := row + clampInt(x+k-r, 0, w-1)*4
				sr += float32(data[i+0]) * wt
				sg += float32(data[i+1]) * wt
				sb += float32(data[i+2]) * wt
			}
			o := x * 3
			out[o+0], out[o+1], out[o+2] = sr, sg, sb
		}
	}
}

// convolveVertical applies the kernel along columns of temp into dst,
// copying alpha from src.
func convolveVertical(temp []float32, src, dst *image.FrameBuffer, kernel Kernel) {
	w, h := src.Bounds()
	rowLen := w * 3
	r := kernel.Radius
	weights := kernel.Weights
	srcData, dstData := src.Data(), dst.Data()
	srcStride, dstStride := src.Stride(), dst.Stride()

	for y := 0; y < h; y++ {
		so := y * srcStride
		do := y * dstStride
		for x := 0; x < w; x++ {
			var sr, sg, sb float32
			col := x * 3
			for k, wt := range weights {
				i := clampInt(y+k-r, 0, h-1)*rowLen + col
				sr += temp[i+0] * wt
				sg += temp[i+1] * wt
				sb += temp[i+2] * wt
			}
			di := do + x*4
			dstData[di+0] = clampUint8(sr)
			dstData[di+1] = clampUint8(sg)
			dstData[di+2] = clampUint8(sb)
			dstData[di+3] = srcData[so+x*4+3]
		}
	}
}

// blurrerPool backs the package-level blur functions.
var blurrerPool = sync.Pool{
	New: func() any { return NewBlurrer() },
}

// BoxBlur is Blurrer.BoxBlur on a pooled Blurrer.
func BoxBlur(src, dst *image.FrameBuffer, kernelSize int) error {
	b := blurrerPool.Get().(*Blurrer)
	defer blurrerPool.Put(b)
	return b.BoxBlur(src, dst, kernelSize)
}

// GaussianBlur is Blurrer.GaussianBlur on a pooled Blurrer.
func GaussianBlur(src, dst *image.FrameBuffer, kernelSize int) error {
	b := blurrerPool.Get().(*Blurrer)
	defer blurrerPool.Put(b)
	return b.GaussianBlur(src, dst, kernelSize)
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and rounds half up.
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// roundMean divides an exact integer sum by n and rounds half up.
func roundMean(sum float32, n float64) uint8 {
	return uint8(float64(sum)/n + 0.5)
}
