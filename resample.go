package dither

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/numb3rth30ry/Caffeine-Dither-Art-Generator/internal/pool"
)

// resample stretches src to an exactly dim x dim NRGBA buffer. Horizontal
// and vertical scale factors are independent; aspect ratio is not preserved.
// The destination comes from the buffer pool; every pixel is overwritten by
// the scale, so the pooled contents never leak through.
func resample(src image.Image, dim int, filter Filter) *image.NRGBA {
	dst := pool.Get(dim)

	var scaler xdraw.Scaler
	switch filter {
	case NearestNeighbor:
		scaler = xdraw.NearestNeighbor
	case CatmullRom:
		scaler = xdraw.CatmullRom
	default:
		scaler = xdraw.BiLinear
	}

	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
