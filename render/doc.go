// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws short strings onto fixed-size canvases.
//
// Rendering is a pure function of its inputs: shape the text, measure its
// tight ink box, pick a draw origin from the anchor table and rasterize the
// glyph outlines in black on an opaque white background.
//
// # Anchors
//
// Nine named anchors place the text box on the canvas:
//
//	top-left      top-center      top-right
//	center-left   center          center-right
//	bottom-left   bottom-center   bottom-right
//
// Centering uses floor division, so odd leftovers go to the right and
// bottom. Bottom anchors are shifted up by the font descent so descenders
// are never clipped. Unknown anchor names fall back to top-left without an
// error.
//
// # Example
//
//	face := text.DefaultFontSource().Face(24)
//	img, err := render.NewRenderer().Render(render.Request{
//	    Text:   "Hello",
//	    Width:  128,
//	    Height: 32,
//	    Face:   face,
//	    Anchor: render.ParseAnchor("bottom-right"),
//	})
package render
