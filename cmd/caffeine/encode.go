package main

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/tiff"

	"github.com/numb3rth30ry/Caffeine-Dither-Art-Generator/vector"
)

var formats = map[string]bool{
	"png": true, "gif": true, "webp": true, "tiff": true, "svg": true, "svgz": true,
}

func validFormat(format string) bool {
	return formats[format]
}

// encodeImage serializes the dithered buffer to w in the given format. The
// level is only consulted by the vector formats, which emit one cell per
// block at that stride.
func encodeImage(w io.Writer, img *image.NRGBA, format string, level int) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "gif":
		return encodeGIF(w, img)
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case "svg":
		return vector.Encode(w, img, level)
	case "svgz":
		return vector.EncodeCompressed(w, img, level)
	}
	return fmt.Errorf("unknown format %q (use png/gif/webp/tiff/svg/svgz)", format)
}

// encodeGIF writes img with an exact palette: a dithered buffer holds at
// most eight distinct opaque colors, so no re-quantization is needed. If
// the buffer somehow exceeds 256 colors (e.g. alpha variation from the
// source), it falls back to Plan9 with Floyd-Steinberg.
func encodeGIF(w io.Writer, img *image.NRGBA) error {
	b := img.Bounds()
	if pal := exactPalette(img); pal != nil {
		pm := image.NewPaletted(b, pal)
		draw.Draw(pm, b, img, b.Min, draw.Src)
		return gif.Encode(w, pm, nil)
	}
	pm := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pm, b, img, b.Min)
	return gif.Encode(w, pm, nil)
}

// exactPalette collects the distinct colors of img, or nil if there are
// more than 256.
func exactPalette(img *image.NRGBA) color.Palette {
	seen := make(map[color.NRGBA]bool)
	var pal color.Palette
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if seen[c] {
				continue
			}
			seen[c] = true
			pal = append(pal, c)
			if len(pal) > 256 {
				return nil
			}
		}
	}
	return pal
}
