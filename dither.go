package dither

import (
	"errors"
	"fmt"
	"image"
	"io"

	// Registered so Process can decode the standard raster formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/numb3rth30ry/Caffeine-Dither-Art-Generator/internal/pool"
	"github.com/numb3rth30ry/Caffeine-Dither-Art-Generator/internal/raster"
)

// ErrDecode is returned (wrapped) by Process when the source bytes cannot
// be decoded as an image.
var ErrDecode = errors.New("dither: cannot decode source image")

// Supported output dimensions and pixelization levels.
var (
	dimensions = [...]int{512, 1024, 2048, 4096}
	levels     = [...]int{1, 2, 4, 8, 16}
)

// Options controls a single processing run.
type Options struct {
	// Algorithm selects the dithering algorithm (default FloydSteinberg).
	Algorithm Algorithm

	// Dimension is the square output side in pixels: 512, 1024, 2048 or
	// 4096. Zero is a sentinel for 512.
	Dimension int

	// Level is the pixelization level, the square block side treated as
	// one dithering unit: 1, 2, 4, 8 or 16. Zero is a sentinel for 1.
	Level int

	// Mode selects monochrome or per-channel color processing
	// (default Monochrome).
	Mode Mode

	// Filter selects the resampling filter used to stretch the source to
	// the output square (default Bilinear).
	Filter Filter

	// OnProgress, if non-nil, is called synchronously during the scan with
	// non-decreasing percentages from 0 to 100. 100 is delivered exactly
	// once, at completion.
	OnProgress func(percent int)
}

// DefaultOptions returns options for a 512x512 monochrome Floyd-Steinberg
// run at level 1.
func DefaultOptions() *Options {
	return &Options{
		Algorithm: FloydSteinberg,
		Dimension: 512,
		Level:     1,
		Mode:      Monochrome,
		Filter:    Bilinear,
	}
}

// validateOptions checks every option against its member set. Zero values
// for Dimension and Level are accepted as sentinels and resolved later.
func validateOptions(opts *Options) error {
	if !opts.Algorithm.valid() {
		return fmt.Errorf("dither: invalid Algorithm %d", int(opts.Algorithm))
	}
	if opts.Dimension != 0 && !memberOf(opts.Dimension, dimensions[:]) {
		return fmt.Errorf("dither: invalid Dimension %d (must be 512, 1024, 2048 or 4096)", opts.Dimension)
	}
	if opts.Level != 0 && !memberOf(opts.Level, levels[:]) {
		return fmt.Errorf("dither: invalid Level %d (must be 1, 2, 4, 8 or 16)", opts.Level)
	}
	if opts.Mode != Monochrome && opts.Mode != Color {
		return fmt.Errorf("dither: invalid Mode %d", int(opts.Mode))
	}
	if opts.Filter < Bilinear || opts.Filter > CatmullRom {
		return fmt.Errorf("dither: invalid Filter %d", int(opts.Filter))
	}
	return nil
}

func memberOf(v int, set []int) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// resolveDimension returns the effective output dimension.
// Zero (the sentinel) maps to 512.
func resolveDimension(v int) int {
	if v == 0 {
		return 512
	}
	return v
}

// resolveLevel returns the effective pixelization level.
// Zero (the sentinel) maps to 1.
func resolveLevel(v int) int {
	if v == 0 {
		return 1
	}
	return v
}

// Process decodes the source image from r, stretches it to the configured
// square dimension, and runs the selected dithering algorithm over it.
// If opts is nil, DefaultOptions() is used. On failure no buffer is
// returned; decode failures satisfy errors.Is(err, ErrDecode).
//
// The returned buffer may come from an internal pool; callers that process
// many images can hand it back with Release once done.
func Process(r io.Reader, opts *Options) (*image.NRGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return ProcessImage(src, opts)
}

// ProcessImage is Process for an already-decoded source image.
func ProcessImage(src image.Image, opts *Options) (*image.NRGBA, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	dim := resolveDimension(opts.Dimension)
	level := resolveLevel(opts.Level)

	dst := resample(src, dim, opts.Filter)
	run(raster.FromNRGBA(dst), opts.Algorithm, level, opts.Mode, opts.OnProgress)
	return dst, nil
}

// Release returns a buffer obtained from Process or ProcessImage to the
// internal pool. The caller must not use img afterwards. Calling Release
// is optional; unreleased buffers are garbage collected normally.
func Release(img *image.NRGBA) {
	pool.Put(img)
}
