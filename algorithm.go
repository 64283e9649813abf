package dither

import (
	"fmt"

	"github.com/numb3rth30ry/Caffeine-Dither-Art-Generator/internal/kernel"
)

// Algorithm identifies one of the eight dithering algorithms.
type Algorithm int

const (
	FloydSteinberg Algorithm = iota
	Atkinson
	Sierra
	Stucki
	Burkes
	Bayer
	Halftone
	ClusteredDot
)

// Mode selects between luminance and per-channel color processing.
type Mode int

const (
	// Monochrome samples block luminance and writes gray values.
	Monochrome Mode = iota
	// Color samples and quantizes R, G, B independently. Each channel is
	// thresholded on its own, so hues near the threshold may shift; this
	// is the defined behavior of the binary color model.
	Color
)

// Filter selects the resampling filter used to stretch the source image to
// the square output buffer.
type Filter int

const (
	Bilinear Filter = iota
	NearestNeighbor
	CatmullRom
)

// algorithmNames maps Algorithm values to their canonical hyphenated names,
// in catalog order.
var algorithmNames = [...]string{
	FloydSteinberg: "floyd-steinberg",
	Atkinson:       "atkinson",
	Sierra:         "sierra",
	Stucki:         "stucki",
	Burkes:         "burkes",
	Bayer:          "bayer",
	Halftone:       "halftone",
	ClusteredDot:   "clustered-dot",
}

// String returns the canonical hyphenated name, e.g. "floyd-steinberg".
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Ordered reports whether a belongs to the ordered-dithering family.
// The remaining algorithms are error diffusers.
func (a Algorithm) Ordered() bool {
	return a == Bayer || a == Halftone || a == ClusteredDot
}

// valid reports whether a names a cataloged algorithm.
func (a Algorithm) valid() bool {
	return a >= FloydSteinberg && a <= ClusteredDot
}

// ParseAlgorithm maps a canonical name such as "floyd-steinberg" or
// "bayer" to its Algorithm value.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("dither: unknown algorithm %q", name)
}

// Algorithms returns the full catalog in stable order: the five error
// diffusers first, then the three ordered algorithms.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// String returns "bw" or "color".
func (m Mode) String() string {
	switch m {
	case Monochrome:
		return "bw"
	case Color:
		return "color"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps "bw" or "color" to its Mode value.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "bw":
		return Monochrome, nil
	case "color":
		return Color, nil
	}
	return 0, fmt.Errorf("dither: unknown mode %q (use bw or color)", name)
}

// String returns "bilinear", "nearest" or "catmull-rom".
func (f Filter) String() string {
	switch f {
	case Bilinear:
		return "bilinear"
	case NearestNeighbor:
		return "nearest"
	case CatmullRom:
		return "catmull-rom"
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// ParseFilter maps a resampling filter name to its Filter value.
func ParseFilter(name string) (Filter, error) {
	switch name {
	case "bilinear":
		return Bilinear, nil
	case "nearest":
		return NearestNeighbor, nil
	case "catmull-rom":
		return CatmullRom, nil
	}
	return 0, fmt.Errorf("dither: unknown filter %q (use bilinear, nearest or catmull-rom)", name)
}

// diffusionKernel returns the weight kernel for an error-diffusion
// algorithm. Callers must not pass an ordered algorithm.
func diffusionKernel(a Algorithm) kernel.Kernel {
	switch a {
	case FloydSteinberg:
		return kernel.FloydSteinberg
	case Atkinson:
		return kernel.Atkinson
	case Sierra:
		return kernel.Sierra
	case Stucki:
		return kernel.Stucki
	case Burkes:
		return kernel.Burkes
	}
	panic("dither: no diffusion kernel for " + a.String())
}

// orderedMatrix returns the threshold matrix for an ordered algorithm.
// Callers must not pass a diffusion algorithm.
func orderedMatrix(a Algorithm) *kernel.Matrix {
	switch a {
	case Bayer:
		return &kernel.Bayer
	case Halftone:
		return &kernel.Halftone
	case ClusteredDot:
		return &kernel.ClusteredDot
	}
	panic("dither: no threshold matrix for " + a.String())
}
