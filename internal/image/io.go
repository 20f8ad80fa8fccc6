package image

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	// Registered for Decode: WebP stills from phone galleries.
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when the file format is not supported.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// Load decodes an image file into a tightly packed RGBA8888 frame.
// PNG, JPEG, BMP, TIFF and WebP are recognised by content.
func Load(path string) (*FrameBuffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*FrameBuffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// IsSupportedExt reports whether Save can encode to the extension of path.
func IsSupportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
		return true
	default:
		return false
	}
}

// IsDecodableExt reports whether Load recognises files with the extension
// of path. WebP is decode-only.
func IsDecodableExt(path string) bool {
	return IsSupportedExt(path) || strings.EqualFold(filepath.Ext(path), ".webp")
}

// Save encodes the frame to path, choosing the codec from the extension.
func (b *FrameBuffer) Save(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupportedExt(path) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.Encode(f, ext); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes the frame with the codec named by ext (".png", ".jpg",
// ".bmp", ".tiff").
func (b *FrameBuffer) Encode(w io.Writer, ext string) error {
	img := b.ToStdImage()

	var err error
	switch strings.ToLower(ext) {
	case ".png":
		err = png.Encode(w, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case ".bmp":
		err = bmp.Encode(w, img)
	case ".tif", ".tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", ext, err)
	}
	return nil
}

// FromStdImage converts a standard library image into an RGBA8888 frame.
// Straight-alpha sources are copied row by row; anything else is converted
// through x/image/draw.
func FromStdImage(img image.Image) (*FrameBuffer, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf, err := NewFrameBuffer(width, height)
	if err != nil {
		return nil, err
	}

	// Fast path: NRGBA has the same memory layout.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*BytesPerPixel])
		}
		return buf, nil
	}

	dst := &image.NRGBA{
		Pix:    buf.data,
		Stride: buf.stride,
		Rect:   image.Rect(0, 0, width, height),
	}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return buf, nil
}

// ToStdImage views the frame as an *image.NRGBA sharing the same memory.
func (b *FrameBuffer) ToStdImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.stride,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}
