// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"

	"github.com/gogpu/ocrset/text"
)

// Option configures a Renderer.
type Option func(*options)

// options holds optional configuration for a Renderer.
type options struct {
	shaper     text.Shaper
	foreground color.Color
	background color.Color
}

// defaultOptions returns black text on white with the global shaper.
func defaultOptions() options {
	return options{
		shaper:     nil, // text.GetShaper() at render time
		foreground: color.Black,
		background: color.White,
	}
}

// WithShaper sets the shaper used to convert strings into glyph runs.
// By default the package-level text.Shape is used.
func WithShaper(s text.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithForeground sets the text color.
func WithForeground(c color.Color) Option {
	return func(o *options) {
		o.foreground = c
	}
}

// WithBackground sets the canvas fill color.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}
