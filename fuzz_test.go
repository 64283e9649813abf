package dither

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// addSeedCorpus adds a few valid encoded images and some malformed inputs.
func addSeedCorpus(f *testing.F) {
	f.Helper()
	for _, img := range []*image.NRGBA{
		solidImage(1, 1, color.NRGBA{R: 255, A: 255}),
		solidImage(8, 8, color.NRGBA{128, 128, 128, 255}),
		gradientImage(16, 16),
	} {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err == nil {
			f.Add(buf.Bytes())
		}
	}
	f.Add([]byte(nil))
	f.Add([]byte("not an image"))
	f.Add([]byte{0x89, 0x50, 0x4e, 0x47}) // truncated PNG header
}

// FuzzProcess ensures no input bytes can panic the decode + dither path.
// Malformed inputs must fail with an error, never crash.
func FuzzProcess(f *testing.F) {
	addSeedCorpus(f)

	f.Fuzz(func(t *testing.T, data []byte) {
		out, err := Process(bytes.NewReader(data), &Options{
			Algorithm: FloydSteinberg,
			Dimension: 512,
			Level:     8,
		})
		if err == nil {
			Release(out)
		}
	})
}
