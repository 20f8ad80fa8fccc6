// Package capture provides frame sources that stand in for a platform
// camera: synthetic test patterns, decoded image files, and (with the gocv
// build tag) a webcam.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/gogpu/camfx/internal/image"
)

// ErrCameraUnsupported is returned by OpenCamera when the binary was built
// without the gocv tag.
var ErrCameraUnsupported = errors.New("capture: camera support not compiled in (build with -tags gocv)")

// Source produces frames one at a time. Next returns io.EOF when the
// source is exhausted. Each returned frame is owned by the caller.
type Source interface {
	Next(ctx context.Context) (*image.FrameBuffer, error)
	Close() error
}

// Synthetic generates n frames of a moving RGB gradient. n <= 0 means
// unlimited.
type Synthetic struct {
	width, height int
	n, i          int
	pool          *image.Pool
}

// NewSynthetic creates a synthetic source. When pool is non-nil frames are
// taken from it so the consumer can recycle them.
func NewSynthetic(width, height, n int, pool *image.Pool) (*Synthetic, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", image.ErrInvalidDimensions, width, height)
	}
	return &Synthetic{width: width, height: height, n: n, pool: pool}, nil
}

// Next renders the next frame.
func (s *Synthetic) Next(ctx context.Context) (*image.FrameBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.n > 0 && s.i >= s.n {
		return nil, io.EOF
	}

	var buf *image.FrameBuffer
	if s.pool != nil {
		buf = s.pool.Get(s.width, s.height)
	} else {
		var err error
		if buf, err = image.NewFrameBuffer(s.width, s.height); err != nil {
			return nil, err
		}
	}

	RenderGradient(buf, s.i)
	s.i++
	return buf, nil
}

// Close is a no-op.
func (s *Synthetic) Close() error {
	return nil
}

// RenderGradient fills buf with a diagonal gradient shifted by phase, with
// a checkerboard in the top-left quarter to give blurs and resamplers some
// high-frequency detail.
func RenderGradient(buf *image.FrameBuffer, phase int) {
	w, h := buf.Bounds()
	for y := 0; y < h; y++ {
		row := buf.RowBytes(y)
		for x := 0; x < w; x++ {
			i := x * image.BytesPerPixel
			r := uint8((x*255/max(w-1, 1) + phase) & 0xff)
			g := uint8(y * 255 / max(h-1, 1))
			b := uint8(((x + y) / 2) & 0xff)
			if x < w/4 && y < h/4 && (x^y)&1 == 1 {
				r, g, b = 255, 255, 255
			}
			row[i+0], row[i+1], row[i+2], row[i+3] = r, g, b, 255
		}
	}
}

// Files decodes a list of image files in order.
type Files struct {
	paths []string
	i     int
}

// NewFiles creates a source over path, which is either an image file or a
// directory whose supported images are read in name order.
func NewFiles(path string) (*Files, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	if !info.IsDir() {
		return &Files{paths: []string{path}}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !image.IsDecodableExt(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(path, e.Name()))
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("capture: no supported images in %s", path)
	}
	return &Files{paths: paths}, nil
}

// Len returns the number of files.
func (f *Files) Len() int {
	return len(f.paths)
}

// Next decodes the next file.
func (f *Files) Next(ctx context.Context) (*image.FrameBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.i >= len(f.paths) {
		return nil, io.EOF
	}
	path := f.paths[f.i]
	f.i++

	buf, err := image.Load(path)
	if err != nil {
		return nil, fmt.Errorf("capture: %s: %w", path, err)
	}
	return buf, nil
}

// Close is a no-op.
func (f *Files) Close() error {
	return nil
}
