// Package kernel holds the immutable constants of the dithering algorithms:
// the error-diffusion kernels (weighted block-offset taps) and the ordered
// 4x4 threshold matrices. Offsets are in block units, not pixels; the engine
// multiplies them by the pixelization level.
package kernel

// Tap is a single error-diffusion target: a block offset and the share of
// the quantization residual it receives.
type Tap struct {
	DX, DY int
	Weight float64
}

// Kernel is an ordered list of diffusion taps. Taps only ever point at
// blocks the raster scan has not visited yet (right of, or below, the
// current block).
type Kernel []Tap

// Sum returns the total weight of the kernel. Every kernel sums to 1.0
// except Atkinson, which sums to 0.75 (the historical algorithm discards a
// quarter of the residual).
func (k Kernel) Sum() float64 {
	var s float64
	for _, t := range k {
		s += t.Weight
	}
	return s
}

// Diffusion kernels, in the standard published form.
var (
	FloydSteinberg = Kernel{
		{1, 0, 7.0 / 16},
		{-1, 1, 3.0 / 16},
		{0, 1, 5.0 / 16},
		{1, 1, 1.0 / 16},
	}

	// Atkinson spreads six equal eighths and drops the remaining 2/8.
	Atkinson = Kernel{
		{1, 0, 1.0 / 8},
		{2, 0, 1.0 / 8},
		{-1, 1, 1.0 / 8},
		{0, 1, 1.0 / 8},
		{1, 1, 1.0 / 8},
		{0, 2, 1.0 / 8},
	}

	// Sierra is the three-row Sierra-3 kernel.
	Sierra = Kernel{
		{1, 0, 5.0 / 32},
		{2, 0, 3.0 / 32},
		{-2, 1, 2.0 / 32},
		{-1, 1, 4.0 / 32},
		{0, 1, 5.0 / 32},
		{1, 1, 4.0 / 32},
		{2, 1, 2.0 / 32},
		{-1, 2, 2.0 / 32},
		{0, 2, 3.0 / 32},
		{1, 2, 2.0 / 32},
	}

	Stucki = Kernel{
		{1, 0, 8.0 / 42},
		{2, 0, 4.0 / 42},
		{-2, 1, 2.0 / 42},
		{-1, 1, 4.0 / 42},
		{0, 1, 8.0 / 42},
		{1, 1, 4.0 / 42},
		{2, 1, 2.0 / 42},
		{-2, 2, 1.0 / 42},
		{-1, 2, 2.0 / 42},
		{0, 2, 4.0 / 42},
		{1, 2, 2.0 / 42},
		{2, 2, 1.0 / 42},
	}

	Burkes = Kernel{
		{1, 0, 8.0 / 32},
		{2, 0, 4.0 / 32},
		{-2, 1, 2.0 / 32},
		{-1, 1, 4.0 / 32},
		{0, 1, 8.0 / 32},
		{1, 1, 4.0 / 32},
		{2, 1, 2.0 / 32},
	}
)

// Matrix is a 4x4 ordered-dither threshold matrix. Each matrix is a
// permutation of 0-15, tiled over the block grid by modulo indexing.
type Matrix [4][4]uint8

// Threshold returns the threshold in [0,255) for the block at grid
// coordinate (col, row), i.e. (x/level, y/level).
func (m *Matrix) Threshold(col, row int) float64 {
	return float64(m[row&3][col&3]) / 16 * 255
}

// Ordered threshold matrices. All three share the engine shell; only the
// dot-clustering pattern differs.
var (
	Bayer = Matrix{
		{0, 8, 2, 10},
		{12, 4, 14, 6},
		{3, 11, 1, 9},
		{15, 7, 13, 5},
	}

	Halftone = Matrix{
		{10, 4, 6, 8},
		{12, 0, 2, 14},
		{7, 9, 11, 5},
		{3, 15, 13, 1},
	}

	ClusteredDot = Matrix{
		{12, 5, 6, 13},
		{4, 0, 1, 7},
		{11, 3, 2, 8},
		{15, 10, 9, 14},
	}
)
