// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dataset

import (
	"github.com/gogpu/ocrset/render"
	"github.com/gogpu/ocrset/text"
)

// Option configures a Dataset.
type Option func(*options)

type options struct {
	rtl      bool
	source   *text.FontSource
	renderer *render.Renderer
	mean     []float32
	std      []float32
	cache    int
}

func defaultOptions() options {
	return options{
		mean: []float32{0.5},
		std:  []float32{0.5},
	}
}

// WithRTL enables right-to-left shaping (Arabic joining and bidi
// reordering) for every sample.
func WithRTL(rtl bool) Option {
	return func(o *options) {
		o.rtl = rtl
	}
}

// WithFontSource uses an already loaded font instead of reading the font
// path. The dataset does not close a source passed this way.
func WithFontSource(s *text.FontSource) Option {
	return func(o *options) {
		o.source = s
	}
}

// WithRenderer sets the renderer used to draw samples.
func WithRenderer(r *render.Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithNormalization overrides the per-channel mean and standard deviation
// applied to sample tensors. The default is 0.5 and 0.5, mapping [0, 1]
// to [-1, 1]. Single values are broadcast over the RGB channels.
func WithNormalization(mean, std []float32) Option {
	return func(o *options) {
		o.mean = append([]float32(nil), mean...)
		o.std = append([]float32(nil), std...)
	}
}

// WithCache keeps up to n rendered images in memory so repeated epochs
// skip shaping and rasterization. Zero or negative n disables caching.
func WithCache(n int) Option {
	return func(o *options) {
		o.cache = n
	}
}
