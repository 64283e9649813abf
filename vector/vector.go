// Package vector re-samples a dithered pixel buffer into an SVG built from
// uniform colored cells: one rectangle per block at the pixelization-level
// stride. Blocks that are fully transparent at their origin are omitted.
package vector

import (
	"fmt"
	"image"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/klauspost/compress/gzip"
)

var levels = [...]int{1, 2, 4, 8, 16}

// Encode writes img as an SVG document to w, emitting one <rect> per block
// at level stride. Dithered blocks are uniform, so the color is read at the
// block origin; cells with origin alpha 0 are skipped. The level must be
// one of 1, 2, 4, 8 or 16 and should match the level the buffer was
// processed with.
func Encode(w io.Writer, img *image.NRGBA, level int) error {
	if !validLevel(level) {
		return fmt.Errorf("vector: invalid level %d (must be 1, 2, 4, 8 or 16)", level)
	}

	ew := &errWriter{w: w}
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	canvas := svg.New(ew)
	canvas.Start(width, height)
	for y := 0; y < height; y += level {
		for x := 0; x < width; x += level {
			c := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			if c.A == 0 {
				continue
			}
			// Clip trailing cells so the document never paints outside
			// the canvas.
			cw, ch := min(level, width-x), min(level, height-y)
			canvas.Rect(x, y, cw, ch, fmt.Sprintf("fill:#%02x%02x%02x", c.R, c.G, c.B))
		}
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("vector: encode: %w", ew.err)
	}
	return nil
}

// EncodeCompressed is Encode with gzip output (SVGZ).
func EncodeCompressed(w io.Writer, img *image.NRGBA, level int) error {
	zw := gzip.NewWriter(w)
	if err := Encode(zw, img, level); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("vector: compress: %w", err)
	}
	return nil
}

func validLevel(level int) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}

// errWriter captures the first write error. The svgo canvas reports nothing
// itself, so this is the only way a broken writer surfaces.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
