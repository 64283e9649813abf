package dither_test

import (
	"fmt"
	"image"
	"image/color"

	dither "github.com/numb3rth30ry/Caffeine-Dither-Art-Generator"
)

func ExampleProcessImage() {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	out, err := dither.ProcessImage(src, &dither.Options{
		Algorithm: dither.Bayer,
		Dimension: 512,
		Level:     1,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer dither.Release(out)

	fmt.Printf("bounds: %v\n", out.Bounds())
	fmt.Printf("first pixel: %v\n", out.NRGBAAt(0, 0))
	// Output:
	// bounds: (0,0)-(512,512)
	// first pixel: {255 255 255 255}
}

func ExampleParseAlgorithm() {
	a, err := dither.ParseAlgorithm("clustered-dot")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%v ordered=%v\n", a, a.Ordered())
	// Output:
	// clustered-dot ordered=true
}

func ExampleAlgorithms() {
	for _, a := range dither.Algorithms() {
		fmt.Println(a)
	}
	// Output:
	// floyd-steinberg
	// atkinson
	// sierra
	// stucki
	// burkes
	// bayer
	// halftone
	// clustered-dot
}
