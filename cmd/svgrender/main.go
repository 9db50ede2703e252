// Command svgrender rasterizes an SVG document to a PNG image.
//
// Usage:
//
//	svgrender [options] input.svg
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/pitdicker/librsvg"
	"github.com/pitdicker/librsvg/svgdraw"
	"github.com/pitdicker/librsvg/svgraster"
	"github.com/pitdicker/librsvg/svgshaper"
	"github.com/pitdicker/librsvg/svgtree"
)

func main() {
	var (
		output  = flag.String("o", "out.png", "output png file")
		width   = flag.Int("w", 0, "output width in pixels (0: from the document)")
		height  = flag.Int("h", 0, "output height in pixels (0: from the document)")
		langs   = flag.String("lang", "en", "accepted languages for systemLanguage, comma separated")
		strict  = flag.Bool("strict", false, "fail on unhandled svg elements")
		verbose = flag.Bool("v", false, "log parse and render diagnostics")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: svgrender [options] input.svg")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), *output, *width, *height, *langs, *strict, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "svgrender:", err)
		os.Exit(1)
	}
}

func run(input, output string, width, height int, langs string, strict, verbose bool) error {
	if verbose {
		librsvg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}
	locale, err := svgtree.ParseLocale(langs)
	if err != nil {
		return fmt.Errorf("invalid -lang value: %w", err)
	}
	mode := librsvg.WarnErrorMode
	if strict {
		mode = librsvg.StrictErrorMode
	}

	doc, err := librsvg.ReadDocument(input, mode, locale)
	if err != nil {
		return err
	}

	w, h := doc.Size()
	if width > 0 {
		w = float64(width)
	}
	if height > 0 {
		h = float64(height)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("document has no usable size, pass -w and -h")
	}
	doc.SetTarget(0, 0, w, h)

	var shaper svgdraw.Shaper
	if s, err := svgshaper.New(""); err == nil {
		shaper = s
	} else if verbose {
		fmt.Fprintln(os.Stderr, "svgrender: text disabled:", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	if _, err := doc.Render(svgraster.NewImageRenderer(img), shaper); err != nil {
		return err
	}

	fout, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(fout, img); err != nil {
		fout.Close()
		return err
	}
	return fout.Close()
}
