// Command ocrset renders OCR training images and datasets.
//
// Usage:
//
//	ocrset [-v] render -text "مرحبا" -font Amiri.ttf -rtl -anchor center -out hello.png
//	ocrset [-v] count  -alphabet 0123456789 -max-length 3
//	ocrset [-v] export -recipe sets.recipe -out data/ -format png
//	ocrset [-v] sheet  -recipe sets.recipe -out preview.pdf -limit 64
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gogpu/ocrset"
	"github.com/gogpu/ocrset/dataset"
	"github.com/gogpu/ocrset/export"
	"github.com/gogpu/ocrset/recipe"
	"github.com/gogpu/ocrset/render"
	"github.com/gogpu/ocrset/sheet"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	ocrset.SetLogger(ocrset.NewTextLogger(os.Stderr, *verbose))

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	args := flag.Args()[1:]
	switch flag.Arg(0) {
	case "render":
		err = runRender(args)
	case "count":
		err = runCount(args)
	case "export":
		err = runExport(ctx, args)
	case "sheet":
		err = runSheet(args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("ocrset %s: %v", flag.Arg(0), err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: ocrset [-v] <render|count|export|sheet> [flags]\n")
	flag.PrintDefaults()
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var (
		txt     = fs.String("text", "", "text to render")
		width   = fs.Int("width", 128, "image width")
		height  = fs.Int("height", 32, "image height")
		font    = fs.String("font", "", "font file (TTF/OTF)")
		size    = fs.Float64("size", 24, "font size in pixels per em")
		anchor  = fs.String("anchor", "top-left", "one of the nine anchors, e.g. center or bottom-right")
		rtl     = fs.Bool("rtl", false, "shape right-to-left (Arabic) text")
		output  = fs.String("out", "text.png", "output PNG file")
		explain = fs.Bool("explain", false, "log the measured box and draw origin (with -v)")
	)
	_ = fs.Parse(args)

	if _, ok := render.LookupAnchor(*anchor); !ok {
		ocrset.Component("render").Warn("unknown anchor, using top-left", "anchor", *anchor)
	}

	img, err := render.RenderFile(*txt, *width, *height, *font, *size, *anchor, *rtl)
	if err != nil {
		return err
	}
	if *explain {
		// Re-run the layout for the log line only; RenderFile already drew it.
		explainLayout(*txt, *width, *height, *font, *size, *anchor, *rtl)
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Rendered %q to %s (%dx%d)", *txt, *output, *width, *height)
	return nil
}

func runCount(args []string) error {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	alphabet := fs.String("alphabet", "", "alphabet characters")
	maxLength := fs.Int("max-length", 1, "maximum string length")
	_ = fs.Parse(args)

	n, err := dataset.Count(len([]rune(*alphabet)), *maxLength)
	if err != nil {
		return err
	}
	fmt.Println(n)
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	var (
		recipePath = fs.String("recipe", "", "recipe file")
		name       = fs.String("dataset", "", "export only this dataset")
		output     = fs.String("out", "out", "output directory")
		format     = fs.String("format", "png", "image format: png or tiff")
		limit      = fs.Int("limit", 0, "maximum samples per dataset (0 = all)")
	)
	_ = fs.Parse(args)

	recipes, err := selectRecipes(*recipePath, *name)
	if err != nil {
		return err
	}
	f, err := export.ParseFormat(*format)
	if err != nil {
		return err
	}

	for _, r := range recipes {
		ds, err := r.Dataset()
		if err != nil {
			return err
		}
		dir := *output
		if len(recipes) > 1 {
			dir = filepath.Join(*output, r.Name)
		}
		stats, err := export.Export(ctx, ds, export.Options{Dir: dir, Format: f, Limit: *limit})
		_ = ds.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", r.Name, err)
		}
		log.Printf("Exported %d samples of %s to %s in %v", stats.Samples, r.Name, dir, stats.Duration)
	}
	return nil
}

func runSheet(args []string) error {
	fs := flag.NewFlagSet("sheet", flag.ExitOnError)
	var (
		recipePath = fs.String("recipe", "", "recipe file")
		name       = fs.String("dataset", "", "dataset name (default: first in file)")
		output     = fs.String("out", "sheet.pdf", "output PDF file")
		limit      = fs.Int("limit", 64, "maximum samples (0 = all)")
		columns    = fs.Int("columns", 4, "images per row")
	)
	_ = fs.Parse(args)

	recipes, err := selectRecipes(*recipePath, *name)
	if err != nil {
		return err
	}
	r := recipes[0]

	ds, err := r.Dataset()
	if err != nil {
		return err
	}
	defer func() {
		_ = ds.Close()
	}()

	opts := sheet.Options{Columns: *columns, Limit: *limit, Title: r.Name}
	if r.Font != "" && !ds.FontFallback() {
		if data, err := os.ReadFile(r.FontPath()); err == nil {
			opts.LabelFont = data
		}
	}
	data, err := sheet.Render(ds, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		return err
	}
	log.Printf("Wrote %s preview to %s", r.Name, *output)
	return nil
}

func selectRecipes(path, name string) ([]recipe.Recipe, error) {
	if path == "" {
		return nil, fmt.Errorf("-recipe is required")
	}
	recipes, err := recipe.Load(path)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("%s: no datasets", path)
	}
	if name == "" {
		return recipes, nil
	}
	r, ok := recipe.Find(recipes, name)
	if !ok {
		return nil, fmt.Errorf("%s: no dataset named %q", path, name)
	}
	return []recipe.Recipe{r}, nil
}
