// Package sheet renders dataset samples into a PDF contact sheet: a grid
// of sample images on A4 pages, each labelled with its index and text.
package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"golang.org/x/image/font/gofont/goregular"
)

// Page geometry in millimetres.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 10.0
	gutter     = 4.0
	labelGap   = 1.5
	labelSize  = 7.0 // pt
)

// ErrEmpty is returned when there is nothing to render.
var ErrEmpty = errors.New("sheet: no samples")

// Source is the part of a dataset a sheet reads.
type Source interface {
	Len() int
	Text(i int) (string, error)
	Image(i int) (*image.RGBA, error)
}

// Options configures a contact sheet.
type Options struct {
	// Columns is the number of images per row. Default 4.
	Columns int

	// Limit caps the number of samples. Zero means all.
	Limit int

	// Title is stored in the PDF metadata.
	Title string

	// LabelFont is the TTF/OTF data used for labels. Default Go Regular,
	// which has no Arabic glyphs; pass the dataset font for RTL labels.
	LabelFont []byte
}

func (o Options) withDefaults() Options {
	if o.Columns <= 0 {
		o.Columns = 4
	}
	if len(o.LabelFont) == 0 {
		o.LabelFont = goregular.TTF
	}
	return o
}

// Layout describes how samples are arranged on the pages.
type Layout struct {
	Columns     int
	RowsPerPage int
	Pages       int
	CellWidth   float64 // mm
	ImageHeight float64 // mm
	RowHeight   float64 // mm
}

// Plan computes the grid for count samples of size img pixels.
func Plan(count int, img image.Point, opts Options) Layout {
	opts = opts.withDefaults()
	cols := opts.Columns
	cell := (pageWidth - 2*margin - float64(cols-1)*gutter) / float64(cols)
	imgH := cell * float64(img.Y) / float64(img.X)
	labelH := labelSize * 25.4 / 72 * 1.4
	row := imgH + labelGap + labelH + gutter

	rows := max(1, int(math.Floor((pageHeight-2*margin+gutter)/row)))
	perPage := rows * cols
	return Layout{
		Columns:     cols,
		RowsPerPage: rows,
		Pages:       (count + perPage - 1) / perPage,
		CellWidth:   cell,
		ImageHeight: imgH,
		RowHeight:   row,
	}
}

// Render draws the first samples of src and returns the PDF document.
func Render(src Source, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	n := src.Len()
	if opts.Limit > 0 && opts.Limit < n {
		n = opts.Limit
	}
	if n == 0 {
		return nil, ErrEmpty
	}

	family := canvas.NewFontFamily("labels")
	if err := family.LoadFont(opts.LabelFont, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("sheet: label font: %w", err)
	}
	face := family.Face(labelSize, canvas.Black, canvas.FontRegular, canvas.FontNormal)

	first, err := src.Image(0)
	if err != nil {
		return nil, err
	}
	lay := Plan(n, first.Bounds().Size(), opts)
	dpmm := float64(first.Bounds().Dx()) / lay.CellWidth

	var buf bytes.Buffer
	writer := pdf.New(&buf, pageWidth, pageHeight, nil)
	writer.SetInfo(opts.Title, "", "", "", "ocrset")

	perPage := lay.RowsPerPage * lay.Columns
	for page := 0; page < lay.Pages; page++ {
		if page > 0 {
			writer.NewPage(pageWidth, pageHeight)
		}
		c := canvas.New(pageWidth, pageHeight)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV)

		for k := 0; k < perPage; k++ {
			i := page*perPage + k
			if i >= n {
				break
			}
			x := margin + float64(k%lay.Columns)*(lay.CellWidth+gutter)
			y := margin + float64(k/lay.Columns)*lay.RowHeight

			img, err := src.Image(i)
			if err != nil {
				return nil, err
			}
			label, err := src.Text(i)
			if err != nil {
				return nil, err
			}

			ctx.SetFillColor(canvas.Transparent)
			ctx.SetStrokeColor(canvas.Gray)
			ctx.SetStrokeWidth(0.2)
			ctx.DrawPath(x, y, canvas.Rectangle(lay.CellWidth, lay.ImageHeight))
			ctx.DrawImage(x, y, img, canvas.DPMM(dpmm))

			baseline := y + lay.ImageHeight + labelGap + face.Metrics().Ascent
			ctx.DrawText(x, baseline, canvas.NewTextLine(face, fmt.Sprintf("%d  %s", i, label), canvas.Left))
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("sheet: write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
