// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/ocrset/text"
)

// Request describes a single rendering.
type Request struct {
	// Text is the string to draw, in logical order. Right-to-left faces
	// reshape and reorder it before measuring.
	Text string

	// Width and Height are the canvas size in pixels.
	Width, Height int

	// Face selects the font, size and script direction.
	Face text.Face

	// Anchor places the text box on the canvas.
	Anchor Anchor
}

// Validate reports whether the request can be rendered.
func (r Request) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, r.Width, r.Height)
	}
	if r.Face == nil {
		return ErrNilFace
	}
	if err := CheckFontSize(r.Face.Size()); err != nil {
		return err
	}
	if src := r.Face.Source(); src != nil {
		if err := src.Err(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return nil
}

// Placement is the result of laying out a request without drawing it.
type Placement struct {
	// Run is the shaped text in visual order.
	Run text.ShapedRun

	// Box is the tight pixel ink box relative to the baseline origin.
	Box image.Rectangle

	// Origin is the canvas position of the top-left pixel of Box.
	Origin image.Point

	// Dot is the canvas position of the baseline origin of Run.
	Dot image.Point

	// Descent is the font descent in whole pixels, rounded up.
	Descent int
}

// Bounds returns the ink box in canvas coordinates.
func (p Placement) Bounds() image.Rectangle {
	return p.Box.Add(p.Dot)
}

// Renderer rasterizes text requests.
// A Renderer holds no mutable state and may be shared between goroutines
// when its shaper is safe for concurrent use.
type Renderer struct {
	opts options
}

// NewRenderer creates a Renderer. Without options it draws black text on
// an opaque white canvas.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Render draws req.Text at the position selected by req.Anchor.
func (r *Renderer) Render(req Request) (*image.RGBA, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return r.RenderAt(req.Text, req.Width, req.Height, req.Face, req.Anchor.Placer())
}

// Layout shapes and measures req and computes where it would be drawn.
func (r *Renderer) Layout(req Request) (Placement, error) {
	if err := req.Validate(); err != nil {
		return Placement{}, err
	}
	return r.layout(req.Text, image.Pt(req.Width, req.Height), req.Face, req.Anchor.Placer()), nil
}

// RenderAt draws s on a width x height canvas, placing the text box where
// place says. It is the shared core of Render and of callers that use
// their own placement, such as the dataset's hardcoded centering.
func (r *Renderer) RenderAt(s string, width, height int, face text.Face, place Placer) (*image.RGBA, error) {
	if err := (Request{Width: width, Height: height, Face: face}).Validate(); err != nil {
		return nil, err
	}

	p := r.layout(s, image.Pt(width, height), face, place)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(r.opts.background), image.Point{}, draw.Src)
	if p.Run.Empty() {
		return dst, nil
	}

	z := vector.NewRasterizer(width, height)
	if err := text.AppendOutline(z, p.Run, float64(p.Dot.X), float64(p.Dot.Y)); err != nil {
		return nil, fmt.Errorf("render: %q: %w", s, err)
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(r.opts.foreground), image.Point{})
	return dst, nil
}

func (r *Renderer) layout(s string, canvas image.Point, face text.Face, place Placer) Placement {
	var run text.ShapedRun
	if r.opts.shaper != nil {
		run = r.opts.shaper.Shape(s, face)
	} else {
		run = text.Shape(s, face)
	}

	box := pixelBox(text.Measure(run))
	descent := int(math.Ceil(face.Metrics().Descent))
	origin := place(canvas, box, descent)

	return Placement{
		Run:     run,
		Box:     box,
		Origin:  origin,
		Dot:     origin.Sub(box.Min),
		Descent: descent,
	}
}

// pixelBox converts an ink box to the smallest pixel rectangle covering it.
func pixelBox(r text.Rect) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.MinX)), int(math.Floor(r.MinY)),
		int(math.Ceil(r.MaxX)), int(math.Ceil(r.MaxY)),
	)
}
