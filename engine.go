package dither

import (
	"github.com/numb3rth30ry/Caffeine-Dither-Art-Generator/internal/kernel"
	"github.com/numb3rth30ry/Caffeine-Dither-Art-Generator/internal/raster"
)

// run executes one dithering pass over buf. Both families share the same
// raster-order block scan; they differ only in the per-block step, so the
// dispatch happens once, outside the loop.
func run(buf *raster.Buffer, alg Algorithm, level int, mode Mode, onProgress func(int)) {
	p := newProgress(buf.H, level, onProgress)
	p.start()

	if alg.Ordered() {
		scanOrdered(buf, orderedMatrix(alg), level, mode, p)
	} else {
		scanDiffusion(buf, diffusionKernel(alg), level, mode, p)
	}

	p.finish()
}

// scanOrdered thresholds each block against the tiled 4x4 matrix. Output
// is a pure function of the block's sampled value and its grid coordinate
// mod 4; no state crosses block boundaries.
func scanOrdered(buf *raster.Buffer, m *kernel.Matrix, level int, mode Mode, p *progress) {
	for y := 0; y < buf.H; y += level {
		row := y / level
		for x := 0; x < buf.W; x += level {
			threshold := m.Threshold(x/level, row)
			if mode == Color {
				r, g, b := buf.AverageColor(x, y, level)
				buf.FillRGB(x, y, level,
					thresholdQuantize(r, threshold),
					thresholdQuantize(g, threshold),
					thresholdQuantize(b, threshold))
			} else {
				v := buf.AverageLuminance(x, y, level)
				buf.FillGray(x, y, level, thresholdQuantize(v, threshold))
			}
		}
		p.rowDone()
	}
}

// scanDiffusion binary-quantizes each block and spreads the residual to
// not-yet-visited neighbor blocks through the kernel. The residual lives in
// the buffer itself (clamped on write), so later samples pick it up without
// a side accumulator.
func scanDiffusion(buf *raster.Buffer, k kernel.Kernel, level int, mode Mode, p *progress) {
	for y := 0; y < buf.H; y += level {
		for x := 0; x < buf.W; x += level {
			if mode == Color {
				r, g, b := buf.AverageColor(x, y, level)
				qr, qg, qb := binaryQuantize(r), binaryQuantize(g), binaryQuantize(b)
				buf.FillRGB(x, y, level, qr, qg, qb)
				distributeRGB(buf, x, y, level, r-float64(qr), g-float64(qg), b-float64(qb), k)
			} else {
				v := buf.AverageLuminance(x, y, level)
				q := binaryQuantize(v)
				buf.FillGray(x, y, level, q)
				distributeGray(buf, x, y, level, v-float64(q), k)
			}
		}
		p.rowDone()
	}
}

// binaryQuantize is the shared diffusion quantizer: 0 below 128, else 255.
func binaryQuantize(v float64) uint8 {
	if v < 128 {
		return 0
	}
	return 255
}

// thresholdQuantize is the ordered quantizer: 255 strictly above the
// matrix-derived threshold, else 0.
func thresholdQuantize(v, threshold float64) uint8 {
	if v > threshold {
		return 255
	}
	return 0
}

// distributeGray adds residual shares to the kernel's target blocks.
// Targets whose origin falls outside the buffer are silently skipped; there
// is no wraparound.
func distributeGray(buf *raster.Buffer, x, y, level int, residual float64, k kernel.Kernel) {
	if residual == 0 {
		return
	}
	for _, t := range k {
		tx, ty := x+t.DX*level, y+t.DY*level
		if !buf.Contains(tx, ty) {
			continue
		}
		buf.AddGray(tx, ty, level, residual*t.Weight)
	}
}

// distributeRGB is distributeGray with an independent residual per channel.
func distributeRGB(buf *raster.Buffer, x, y, level int, er, eg, eb float64, k kernel.Kernel) {
	if er == 0 && eg == 0 && eb == 0 {
		return
	}
	for _, t := range k {
		tx, ty := x+t.DX*level, y+t.DY*level
		if !buf.Contains(tx, ty) {
			continue
		}
		buf.AddRGB(tx, ty, level, er*t.Weight, eg*t.Weight, eb*t.Weight)
	}
}

// progress drives the optional observer callback. Percentages are emitted
// after each block row when the integer value advances; 0 opens the scan
// and 100 closes it, delivered exactly once each.
type progress struct {
	fn       func(int)
	rows     int
	rowsDone int
	last     int
}

func newProgress(height, level int, fn func(int)) *progress {
	rows := (height + level - 1) / level
	return &progress{fn: fn, rows: rows, last: -1}
}

func (p *progress) start() {
	if p.fn == nil {
		return
	}
	p.fn(0)
	p.last = 0
}

func (p *progress) rowDone() {
	p.rowsDone++
	if p.fn == nil || p.rows == 0 {
		return
	}
	pct := p.rowsDone * 100 / p.rows
	if pct > p.last && pct < 100 {
		p.fn(pct)
		p.last = pct
	}
}

func (p *progress) finish() {
	if p.fn == nil {
		return
	}
	p.fn(100)
	p.last = 100
}
