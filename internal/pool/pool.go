// Package pool recycles square NRGBA buffers for the supported output
// dimensions. Dither output buffers are large (up to 64 MiB at 4096) and
// short-lived in batch use, so reuse avoids repeated large allocations.
package pool

import (
	"image"
	"sync"
)

// Supported square buffer dimensions, one pool per dimension.
const (
	Dim512  = 512
	Dim1024 = 1024
	Dim2048 = 2048
	Dim4096 = 4096
)

var dims = [4]int{Dim512, Dim1024, Dim2048, Dim4096}

var pools [4]sync.Pool

func init() {
	for i := range pools {
		d := dims[i]
		pools[i] = sync.Pool{
			New: func() any {
				return image.NewNRGBA(image.Rect(0, 0, d, d))
			},
		}
	}
}

// bucketIndex returns the pool index for a dimension, or -1 if the
// dimension is not pooled.
func bucketIndex(d int) int {
	for i, v := range dims {
		if v == d {
			return i
		}
	}
	return -1
}

// Get returns a d x d NRGBA buffer with every byte zeroed. Dimensions
// outside the supported set are allocated directly and will not be pooled
// on Put.
func Get(d int) *image.NRGBA {
	idx := bucketIndex(d)
	if idx < 0 {
		return image.NewNRGBA(image.Rect(0, 0, d, d))
	}
	img := pools[idx].Get().(*image.NRGBA)
	clear(img.Pix)
	return img
}

// Put returns a buffer obtained from Get to its pool. The caller must not
// use img afterwards. Buffers of unsupported dimensions are dropped.
func Put(img *image.NRGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return
	}
	idx := bucketIndex(b.Dx())
	if idx < 0 {
		return
	}
	pools[idx].Put(img)
}
