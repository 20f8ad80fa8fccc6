//go:build gocv

package capture

import (
	"context"
	"fmt"
	"io"

	"gocv.io/x/gocv"

	"github.com/gogpu/camfx/internal/image"
)

// Camera reads frames from a webcam through OpenCV.
type Camera struct {
	vc   *gocv.VideoCapture
	bgr  gocv.Mat
	rgba gocv.Mat
	pool *image.Pool
}

// OpenCamera opens the webcam with the given device id. Frames are taken
// from pool when it is non-nil.
func OpenCamera(id int, pool *image.Pool) (Source, error) {
	vc, err := gocv.VideoCaptureDevice(id)
	if err != nil {
		return nil, fmt.Errorf("capture: open camera %d: %w", id, err)
	}
	return &Camera{
		vc:   vc,
		bgr:  gocv.NewMat(),
		rgba: gocv.NewMat(),
		pool: pool,
	}, nil
}

// Next grabs one frame and converts it from BGR to RGBA8888.
func (c *Camera) Next(ctx context.Context) (*image.FrameBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ok := c.vc.Read(&c.bgr); !ok || c.bgr.Empty() {
		return nil, io.EOF
	}
	if err := gocv.CvtColor(c.bgr, &c.rgba, gocv.ColorBGRToRGBA); err != nil {
		return nil, fmt.Errorf("capture: convert frame: %w", err)
	}

	w, h := c.rgba.Cols(), c.rgba.Rows()
	data, err := c.rgba.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("capture: frame data: %w", err)
	}
	// The Mat is reused by the next Read, so copy out of it.
	view, err := image.FromRaw(data, w, h, w*image.BytesPerPixel)
	if err != nil {
		return nil, err
	}

	if c.pool == nil {
		return view.Clone(), nil
	}
	buf := c.pool.Get(w, h)
	if err := buf.CopyFrom(view); err != nil {
		return nil, err
	}
	return buf, nil
}

// Close releases the capture device and OpenCV buffers.
func (c *Camera) Close() error {
	c.bgr.Close()
	c.rgba.Close()
	return c.vc.Close()
}
