// Package raster provides the pixel buffer the dithering engine operates on,
// together with the block-granular sampling, writing, and residual-addition
// primitives shared by every algorithm.
//
// A block is a square region of side level anchored at (x, y), where x and y
// are multiples of level. All block operations clip to the buffer bounds, so
// truncated blocks at the right and bottom edges are handled uniformly.
package raster

import "image"

// Buffer is a mutable interleaved 8-bit RGBA grid, row-major. It aliases the
// Pix slice of the *image.NRGBA it was built from; writes through the buffer
// are visible in the image and vice versa.
type Buffer struct {
	Pix    []uint8
	Stride int
	W, H   int
}

// New returns a zeroed w x h buffer.
func New(w, h int) *Buffer {
	return &Buffer{
		Pix:    make([]uint8, w*h*4),
		Stride: w * 4,
		W:      w,
		H:      h,
	}
}

// FromNRGBA wraps img's pixel storage without copying. Sub-images are
// re-based so that buffer coordinate (0,0) is img.Rect.Min.
func FromNRGBA(img *image.NRGBA) *Buffer {
	b := img.Bounds()
	return &Buffer{
		Pix:    img.Pix[img.PixOffset(b.Min.X, b.Min.Y):],
		Stride: img.Stride,
		W:      b.Dx(),
		H:      b.Dy(),
	}
}

// NRGBA returns an *image.NRGBA view sharing the buffer's pixels.
func (b *Buffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Stride,
		Rect:   image.Rect(0, 0, b.W, b.H),
	}
}

// Contains reports whether (x, y) is a valid pixel coordinate. The error
// distributor uses it to silently skip taps that fall outside the buffer.
func (b *Buffer) Contains(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// clip bounds the block at (x, y) to the buffer, returning the half-open
// pixel range [x0,x1) x [y0,y1). A fully out-of-range block clips to an
// empty range.
func (b *Buffer) clip(x, y, level int) (x0, y0, x1, y1 int) {
	x0, y0 = max(x, 0), max(y, 0)
	x1, y1 = min(x+level, b.W), min(y+level, b.H)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return
}

// AverageLuminance returns the mean luminance of the clipped block. Each
// pixel's luminance is the integer Rec.601 weighting
// (299R + 587G + 114B + 500) / 1000, rounded per pixel before averaging.
// A zero-area block yields 0.
func (b *Buffer) AverageLuminance(x, y, level int) float64 {
	x0, y0, x1, y1 := b.clip(x, y, level)
	n := (x1 - x0) * (y1 - y0)
	if n == 0 {
		return 0
	}
	var sum int
	for py := y0; py < y1; py++ {
		off := py*b.Stride + x0*4
		for px := x0; px < x1; px++ {
			r := int(b.Pix[off])
			g := int(b.Pix[off+1])
			bl := int(b.Pix[off+2])
			sum += (299*r + 587*g + 114*bl + 500) / 1000
			off += 4
		}
	}
	return float64(sum) / float64(n)
}

// AverageColor returns the unrounded per-channel means of the clipped block.
// A zero-area block yields (0, 0, 0).
func (b *Buffer) AverageColor(x, y, level int) (r, g, bl float64) {
	x0, y0, x1, y1 := b.clip(x, y, level)
	n := (x1 - x0) * (y1 - y0)
	if n == 0 {
		return 0, 0, 0
	}
	var sr, sg, sb int
	for py := y0; py < y1; py++ {
		off := py*b.Stride + x0*4
		for px := x0; px < x1; px++ {
			sr += int(b.Pix[off])
			sg += int(b.Pix[off+1])
			sb += int(b.Pix[off+2])
			off += 4
		}
	}
	fn := float64(n)
	return float64(sr) / fn, float64(sg) / fn, float64(sb) / fn
}

// FillGray sets R=G=B=v for every pixel of the clipped block. Alpha is
// never modified.
func (b *Buffer) FillGray(x, y, level int, v uint8) {
	b.FillRGB(x, y, level, v, v, v)
}

// FillRGB sets the three color channels independently for every pixel of
// the clipped block. Alpha is never modified.
func (b *Buffer) FillRGB(x, y, level int, r, g, bl uint8) {
	x0, y0, x1, y1 := b.clip(x, y, level)
	for py := y0; py < y1; py++ {
		off := py*b.Stride + x0*4
		for px := x0; px < x1; px++ {
			b.Pix[off] = r
			b.Pix[off+1] = g
			b.Pix[off+2] = bl
			off += 4
		}
	}
}

// AddGray adds delta to every pixel's R, G, and B in the clipped block,
// clamping each resulting channel to [0,255].
func (b *Buffer) AddGray(x, y, level int, delta float64) {
	b.AddRGB(x, y, level, delta, delta, delta)
}

// AddRGB adds per-channel deltas to every pixel of the clipped block,
// clamping each resulting channel to [0,255].
func (b *Buffer) AddRGB(x, y, level int, dr, dg, db float64) {
	x0, y0, x1, y1 := b.clip(x, y, level)
	for py := y0; py < y1; py++ {
		off := py*b.Stride + x0*4
		for px := x0; px < x1; px++ {
			b.Pix[off] = clamp8(float64(b.Pix[off]) + dr)
			b.Pix[off+1] = clamp8(float64(b.Pix[off+1]) + dg)
			b.Pix[off+2] = clamp8(float64(b.Pix[off+2]) + db)
			off += 4
		}
	}
}

// clamp8 clamps v to [0,255] and rounds half up.
func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
