package dither

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/numb3rth30ry/Caffeine-Dither-Art-Generator/internal/raster"
)

func TestProcess_InvalidSource(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("not an image"),
		{0x89, 0x50}, // truncated PNG signature
	}
	for _, data := range inputs {
		_, err := Process(bytes.NewReader(data), nil)
		if err == nil {
			t.Errorf("Process(%q): expected error", data)
			continue
		}
		if !errors.Is(err, ErrDecode) {
			t.Errorf("Process(%q): error %v does not wrap ErrDecode", data, err)
		}
	}
}

func TestProcessImage_NilOptions(t *testing.T) {
	out, err := ProcessImage(solidImage(10, 10, color.NRGBA{255, 255, 255, 255}), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer Release(out)
	if b := out.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
		t.Errorf("bounds = %v, want 512x512", b)
	}
}

func TestProcessImage_InvalidOptions(t *testing.T) {
	src := solidImage(4, 4, color.NRGBA{A: 255})
	if _, err := ProcessImage(src, &Options{Dimension: 100}); err == nil {
		t.Error("expected error for dimension 100")
	}
	if _, err := ProcessImage(src, &Options{Level: 7}); err == nil {
		t.Error("expected error for level 7")
	}
}

func TestProcessImage_StretchesAspectRatio(t *testing.T) {
	// A wide source fills the square; aspect ratio is not preserved. Left
	// half white, right half black stays left/right split after stretch.
	src := image.NewNRGBA(image.Rect(0, 0, 100, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 50; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
		for x := 50; x < 100; x++ {
			src.SetNRGBA(x, y, color.NRGBA{0, 0, 0, 255})
		}
	}
	out, err := ProcessImage(src, &Options{Algorithm: Bayer, Dimension: 512, Filter: NearestNeighbor})
	if err != nil {
		t.Fatal(err)
	}
	defer Release(out)
	if got := out.NRGBAAt(10, 256).R; got != 255 {
		t.Errorf("left side = %d, want 255", got)
	}
	if got := out.NRGBAAt(500, 256).R; got != 0 {
		t.Errorf("right side = %d, want 0", got)
	}
}

func TestRun_TruncatedEdgeBlocks(t *testing.T) {
	// 100 is not a multiple of 16; the scan must clip the trailing blocks
	// instead of reading or writing out of bounds.
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	for _, alg := range []Algorithm{FloydSteinberg, Bayer} {
		buf := raster.FromNRGBA(img)
		run(buf, alg, 16, Monochrome, nil)
		for i := 0; i < len(img.Pix); i += 4 {
			if v := img.Pix[i]; v != 0 && v != 255 {
				t.Fatalf("%v: Pix[%d] = %d, want 0 or 255", alg, i, v)
			}
		}
	}
}

func TestDistribute_SkipsOutOfRangeTargets(t *testing.T) {
	// The last block's kernel taps all point outside the buffer; the
	// distribution must skip them silently.
	img := solidImage(4, 4, color.NRGBA{128, 128, 128, 255})
	buf := raster.FromNRGBA(img)
	run(buf, Stucki, 4, Monochrome, nil) // single block, all taps out of range
	if got := img.NRGBAAt(0, 0).R; got != 255 {
		t.Errorf("single block = %d, want 255", got)
	}
}

func TestAlphaPreserved(t *testing.T) {
	// Dithering only rewrites color channels; source alpha survives the
	// resample and the scan.
	src := solidImage(16, 16, color.NRGBA{200, 200, 200, 255})
	out, err := ProcessImage(src, &Options{Algorithm: ClusteredDot, Dimension: 512, Level: 4})
	if err != nil {
		t.Fatal(err)
	}
	defer Release(out)
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 255 {
			t.Fatalf("alpha at Pix[%d] = %d, want 255", i, out.Pix[i])
		}
	}
}

func TestRelease_Nil(t *testing.T) {
	Release(nil) // must not panic
}

func TestMode_String(t *testing.T) {
	if Monochrome.String() != "bw" || Color.String() != "color" {
		t.Errorf("Mode strings = %q, %q", Monochrome, Color)
	}
}

func TestAlgorithm_StringUnknown(t *testing.T) {
	if got := Algorithm(42).String(); got != "Algorithm(42)" {
		t.Errorf("String = %q", got)
	}
}
