// Package filter provides per-frame color transforms and separable
// convolution filters over RGBA8888 frame buffers.
//
// This package contains:
//   - Grayscale and sepia color transforms (in place)
//   - Box blur (separable, running sums, O(1) per pixel per pass)
//   - Gaussian blur (separable, normalized float32 kernel)
//
// All convolutions sample outside the image by clamping to the nearest
// edge pixel. Alpha is copied from the source unchanged; only R, G and B
// are filtered.
//
// Hot paths reuse their intermediate storage: a Blurrer owns a float32
// scratch area that grows once and is kept for the following frames.
//
// Performance targets (1080p, kernel size 5):
//   - Box blur: <5ms
//   - Gaussian blur: <10ms
//   - Grayscale / Sepia: <2ms
package filter
