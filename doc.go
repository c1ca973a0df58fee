// Package ocrset renders short strings into fixed-size raster images and
// enumerates them as (image, text) training pairs for OCR-style models.
//
// # Overview
//
// The module is split into small packages that mirror the rendering
// pipeline:
//
//   - text: font sources, faces, HarfBuzz shaping and bidi segmentation
//   - render: anchor table, text placement and rasterization
//   - tensor: CHW float32 tensors with ToTensor/Normalize semantics
//   - dataset: enumeration of every string up to a maximum length over an
//     alphabet, rendered lazily and normalized to [-1, 1]
//   - recipe: declarative dataset descriptions
//   - export, sheet: writing datasets to image files and PDF previews
//
// # Quick Start
//
//	face := text.DefaultFontSource().Face(24)
//	img, err := render.NewRenderer().Render(render.Request{
//	    Text:   "Hello",
//	    Width:  128,
//	    Height: 32,
//	    Face:   face,
//	    Anchor: render.Center,
//	})
//
//	ds, err := dataset.New("abc", 2, "fonts/Amiri.ttf", 24, 64, 32)
//	sample, err := ds.Item(4) // text "aa"
//
// # Logging
//
// The package-level logger returned by [Logger] is silent by default.
// Use [SetLogger] to route diagnostics into an application's slog setup;
// sub-packages tag their records through [Component].
package ocrset
