// Package dither converts raster images into stylized monochrome or color
// output using one of eight pixel-quantization algorithms.
//
// The package supports two algorithm families:
//   - Error diffusion (Floyd-Steinberg, Atkinson, Sierra, Stucki, Burkes):
//     sequential scan, each block's quantization residual is propagated to
//     not-yet-processed neighbor blocks through a named weight kernel.
//   - Ordered dithering (Bayer, Halftone, Clustered Dot): stateless per
//     block, thresholding against a tiled 4x4 matrix.
//
// All algorithms operate at block granularity: the source is stretched to a
// square buffer at a selectable output dimension (512-4096), then scanned in
// raster order with a square block step (the pixelization level, 1-16).
//
// Basic usage:
//
//	img, err := dither.Process(reader, &dither.Options{
//		Algorithm: dither.Atkinson,
//		Dimension: 1024,
//		Level:     4,
//		Mode:      dither.Color,
//	})
//
// The returned *image.NRGBA can be serialized with any standard encoder, or
// re-sampled into uniform rectangles by the vector subpackage.
package dither
