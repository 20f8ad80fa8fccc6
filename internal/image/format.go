package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatRGBA8888 is 32-bit straight-alpha RGBA, one byte per channel,
	// stored R, G, B, A in memory order. It is the only format frames are
	// delivered and processed in.
	FormatRGBA8888 Format = iota

	// formatCount is the number of formats (for internal use).
	formatCount
)

// BytesPerPixel is the size of one RGBA8888 pixel.
const BytesPerPixel = 4

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA8888:
		return "RGBA8888"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return BytesPerPixel
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for a tightly
// packed image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}
