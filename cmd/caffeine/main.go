// Command caffeine renders dither art from raster images.
//
// Usage:
//
//	caffeine render [options] <input>...   Dither images (use "-" for stdin)
//	caffeine algorithms                    List the algorithm catalog
//	caffeine gallery list|show|rm          Manage saved renders
package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/urfave/cli/v2"

	// Decode support for inputs beyond the stdlib formats (the dither
	// package registers png/jpeg/gif).
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	dither "github.com/numb3rth30ry/Caffeine-Dither-Art-Generator"
	"github.com/numb3rth30ry/Caffeine-Dither-Art-Generator/store"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "caffeine: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "caffeine",
		Usage: "dither art generator",
		Commands: []*cli.Command{
			renderCommand(),
			algorithmsCommand(),
			galleryCommand(),
		},
	}
}

// --- render ---

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "dither one or more images",
		ArgsUsage: "<input>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   "floyd-steinberg",
				Usage:   "dithering algorithm (see `caffeine algorithms`)",
			},
			&cli.IntFlag{
				Name:    "dimension",
				Aliases: []string{"d"},
				Value:   512,
				Usage:   "square output dimension: 512, 1024, 2048 or 4096",
			},
			&cli.IntFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Value:   1,
				Usage:   "pixelization level: 1, 2, 4, 8 or 16",
			},
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Value:   "bw",
				Usage:   "bw or color",
			},
			&cli.StringFlag{
				Name:  "filter",
				Value: "bilinear",
				Usage: "resampling filter: bilinear, nearest or catmull-rom",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "png",
				Usage:   "output format: png, gif, webp, tiff, svg or svgz",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   `output path (single input only; default <input>.<format>, "-" for stdout)`,
			},
			&cli.Float64Flag{
				Name:  "gamma",
				Value: 1.0,
				Usage: "gamma adjustment applied before dithering (1.0 = off)",
			},
			&cli.BoolFlag{
				Name:  "save",
				Usage: "also persist the render into the gallery",
			},
			&cli.StringFlag{
				Name:  "gallery",
				Usage: "gallery root directory",
				Value: defaultGalleryRoot(),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress progress and summary output",
			},
		},
		Action: runRender,
	}
}

func runRender(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("render: missing input file")
	}
	if c.String("output") != "" && c.NArg() > 1 {
		return fmt.Errorf("render: -o is only valid with a single input")
	}

	opts, err := renderOptions(c)
	if err != nil {
		return err
	}
	format := strings.ToLower(c.String("format"))
	if !validFormat(format) {
		return fmt.Errorf("render: unknown format %q (use png/gif/webp/tiff/svg/svgz)", format)
	}

	var gallery *store.Store
	if c.Bool("save") {
		gallery = store.New(c.String("gallery"))
	}

	for _, input := range c.Args().Slice() {
		if err := renderOne(c, input, opts, format, gallery); err != nil {
			return err
		}
	}
	return nil
}

// renderOptions builds the processing options from CLI flags.
func renderOptions(c *cli.Context) (*dither.Options, error) {
	alg, err := dither.ParseAlgorithm(c.String("algorithm"))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	mode, err := dither.ParseMode(c.String("mode"))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	filter, err := dither.ParseFilter(c.String("filter"))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &dither.Options{
		Algorithm: alg,
		Dimension: c.Int("dimension"),
		Level:     c.Int("level"),
		Mode:      mode,
		Filter:    filter,
	}, nil
}

func renderOne(c *cli.Context, input string, opts *dither.Options, format string, gallery *store.Store) error {
	in, err := openInput(input)
	if err != nil {
		return err
	}

	src, _, err := image.Decode(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("render: decoding %s: %w", inputName(input), err)
	}

	if gamma := c.Float64("gamma"); gamma != 1.0 {
		src = imaging.AdjustGamma(src, gamma)
	}

	quiet := c.Bool("quiet")
	bar := newProgressBar(os.Stderr, quiet)
	if bar != nil {
		opts.OnProgress = bar.update
	} else {
		opts.OnProgress = nil
	}

	out, err := dither.ProcessImage(src, opts)
	bar.close()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer dither.Release(out)

	level := opts.Level
	if level == 0 {
		level = 1
	}

	outputPath := c.String("output")
	if outputPath == "-" {
		return encodeImage(os.Stdout, out, format, level)
	}
	if outputPath == "" {
		outputPath = derivedOutputPath(input, format)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := encodeImage(f, out, format, level); err != nil {
		f.Close()
		os.Remove(outputPath)
		return fmt.Errorf("render: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(outputPath)
		return err
	}

	if gallery != nil {
		data, err := os.ReadFile(outputPath)
		if err != nil {
			return fmt.Errorf("render: saving to gallery: %w", err)
		}
		if _, err := gallery.Save(filepath.Base(outputPath), data); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}

	if !quiet {
		fi, _ := os.Stat(outputPath)
		fmt.Fprintf(os.Stderr, "Rendered %s → %s (%s, %d bytes)\n",
			inputName(input), outputPath, opts.Algorithm, fi.Size())
	}
	return nil
}

// openInput returns an io.ReadCloser for the given path.
// If path is "-", stdin is returned (caller should not close).
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func inputName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}

// derivedOutputPath maps an input path to the default output path for the
// selected format, e.g. photo.jpg + svgz -> photo.svgz.
func derivedOutputPath(input, format string) string {
	if input == "-" {
		return "output." + format
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return base + "." + format
}

// --- algorithms ---

func algorithmsCommand() *cli.Command {
	return &cli.Command{
		Name:  "algorithms",
		Usage: "list the algorithm catalog",
		Action: func(c *cli.Context) error {
			for _, a := range dither.Algorithms() {
				family := "error-diffusion"
				if a.Ordered() {
					family = "ordered"
				}
				fmt.Printf("%-16s %s\n", a, family)
			}
			return nil
		},
	}
}

// --- gallery ---

func galleryCommand() *cli.Command {
	rootFlag := &cli.StringFlag{
		Name:  "root",
		Usage: "gallery root directory",
		Value: defaultGalleryRoot(),
	}
	return &cli.Command{
		Name:  "gallery",
		Usage: "manage saved renders",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list saved renders",
				Flags: []cli.Flag{rootFlag},
				Action: func(c *cli.Context) error {
					refs, err := store.New(c.String("root")).List(c.Args().First())
					if err != nil {
						return err
					}
					for _, r := range refs {
						fmt.Printf("%-40s %8d  %s\n", r.Path, r.Size, r.ModTime.Format("2006-01-02 15:04:05"))
					}
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "write a saved render to stdout",
				ArgsUsage: "<path>",
				Flags:     []cli.Flag{rootFlag},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("gallery show: missing path")
					}
					data, err := store.New(c.String("root")).Get(c.Args().First())
					if err != nil {
						return err
					}
					_, err = os.Stdout.Write(data)
					return err
				},
			},
			{
				Name:      "rm",
				Usage:     "remove a saved render",
				ArgsUsage: "<path>",
				Flags:     []cli.Flag{rootFlag},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("gallery rm: missing path")
					}
					return store.New(c.String("root")).Remove(c.Args().First())
				},
			},
		},
	}
}

// defaultGalleryRoot is ~/.caffeine/gallery, falling back to a relative
// directory when the home directory is unknown.
func defaultGalleryRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "caffeine-gallery"
	}
	return filepath.Join(home, ".caffeine", "gallery")
}
