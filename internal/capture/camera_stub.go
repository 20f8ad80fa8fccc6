//go:build !gocv

package capture

import "github.com/gogpu/camfx/internal/image"

// OpenCamera reports that camera capture is unavailable in this build.
func OpenCamera(id int, pool *image.Pool) (Source, error) {
	return nil, ErrCameraUnsupported
}
