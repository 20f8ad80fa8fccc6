// Package resample provides geometric resizing of RGBA8888 frame buffers.
//
// Two filters are available:
//   - Bilinear: four-tap interpolation with corner-aligned coordinate mapping
//   - Area: exact box-footprint averaging, the anti-aliased choice for
//     large shrink factors
//
// Neither filter chooses the output size. Callers compute it with
// ComputeTargetShape and size the destination buffer beforehand. All four
// channels, alpha included, are resampled.
package resample
