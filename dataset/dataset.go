// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dataset

import (
	"fmt"
	"image"
	"iter"

	"github.com/gogpu/ocrset"
	"github.com/gogpu/ocrset/internal/cache"
	"github.com/gogpu/ocrset/render"
	"github.com/gogpu/ocrset/tensor"
	"github.com/gogpu/ocrset/text"
)

// Sample is one (image, text) training pair.
type Sample struct {
	// Image is the normalized [3, H, W] tensor of the rendered text.
	Image tensor.Tensor

	// Text is the label in logical order.
	Text string
}

// Dataset is an indexed collection of rendered samples.
// Index-to-text mapping is fixed at construction; images are rendered on
// every access and are pixel-identical across calls.
type Dataset struct {
	combos   *Combinations
	source   *text.FontSource
	owned    bool // source was loaded by New and is closed by Close
	fallback bool
	face     text.Face
	renderer *render.Renderer
	width    int
	height   int
	mean     []float32
	std      []float32
	images   *cache.Cache[int, *image.RGBA] // nil unless WithCache
}

// New creates a dataset of every string up to maxLength over alphabet,
// rendered with the font at fontPath and fontSize pixels per em on a
// width x height canvas.
//
// If the font cannot be loaded, New logs a warning and falls back to
// text.DefaultFontSource.
func New(alphabet string, maxLength int, fontPath string, fontSize float64, width, height int, opts ...Option) (*Dataset, error) {
	if maxLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxLength, maxLength)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("dataset: %w: got %dx%d", render.ErrInvalidSize, width, height)
	}
	if err := render.CheckFontSize(fontSize); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	probe := tensor.New(3, 1, 1)
	if err := probe.Normalize(o.mean, o.std); err != nil {
		return nil, fmt.Errorf("dataset: normalization: %w", err)
	}

	combos, err := NewCombinations([]rune(alphabet), maxLength)
	if err != nil {
		return nil, err
	}

	d := &Dataset{
		combos:   combos,
		source:   o.source,
		renderer: o.renderer,
		width:    width,
		height:   height,
		mean:     o.mean,
		std:      o.std,
	}
	if o.cache > 0 {
		d.images = cache.New[int, *image.RGBA](o.cache)
	}
	if d.renderer == nil {
		d.renderer = render.NewRenderer()
	}
	if d.source == nil {
		d.source, d.owned, d.fallback = loadFont(fontPath)
	}

	faceOpts := []text.FaceOption{}
	if o.rtl {
		faceOpts = append(faceOpts, text.WithDirection(text.DirectionRTL), text.WithLanguage("ar"))
	}
	d.face = d.source.Face(fontSize, faceOpts...)

	ocrset.Component("dataset").Info("ready",
		"samples", combos.Len(),
		"font", d.source.Name(),
		"fallback", d.fallback,
		"size", fmt.Sprintf("%dx%d", width, height),
		"rtl", o.rtl,
		"cache", o.cache)
	return d, nil
}

// loadFont reads the font file, substituting the default font on failure.
func loadFont(path string) (source *text.FontSource, owned, fallback bool) {
	s, err := text.NewFontSourceFromFile(path)
	if err != nil {
		ocrset.Component("dataset").Warn("font unavailable, using default font",
			"path", path, "err", err)
		return text.DefaultFontSource(), false, true
	}
	return s, true, false
}

// Len returns the number of samples, including the empty string.
func (d *Dataset) Len() int {
	return d.combos.Len()
}

// Combinations returns the text enumeration backing the dataset.
func (d *Dataset) Combinations() *Combinations {
	return d.combos
}

// Face returns the face samples are rendered with.
func (d *Dataset) Face() text.Face {
	return d.face
}

// Size returns the canvas size of every sample.
func (d *Dataset) Size() image.Point {
	return image.Pt(d.width, d.height)
}

// FontFallback reports whether the default font replaced the requested one.
func (d *Dataset) FontFallback() bool {
	return d.fallback
}

// Text returns the label of sample i.
func (d *Dataset) Text(i int) (string, error) {
	if err := d.check(i); err != nil {
		return "", err
	}
	return d.combos.At(i), nil
}

// Image renders sample i centered on the canvas. The caller owns the
// returned image, even when it was served from the cache.
func (d *Dataset) Image(i int) (*image.RGBA, error) {
	s, err := d.Text(i)
	if err != nil {
		return nil, err
	}
	if err := d.source.Err(); err != nil {
		return nil, fmt.Errorf("dataset: sample %d: %w", i, err)
	}
	if d.images != nil {
		if img, ok := d.images.Get(i); ok {
			return cloneRGBA(img), nil
		}
	}
	img, err := d.renderer.RenderAt(s, d.width, d.height, d.face, render.CenterPlacer)
	if err != nil {
		return nil, err
	}
	if d.images != nil {
		d.images.Set(i, cloneRGBA(img))
	}
	return img, nil
}

// CacheStats reports image cache counters. ok is false when caching is off.
func (d *Dataset) CacheStats() (stats cache.Stats, ok bool) {
	if d.images == nil {
		return cache.Stats{}, false
	}
	return d.images.Stats(), true
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := &image.RGBA{
		Pix:    make([]uint8, len(src.Pix)),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
	copy(dst.Pix, src.Pix)
	return dst
}

// Item returns sample i with its normalized image tensor.
func (d *Dataset) Item(i int) (Sample, error) {
	img, err := d.Image(i)
	if err != nil {
		return Sample{}, err
	}
	t := tensor.FromImage(img)
	if err := t.Normalize(d.mean, d.std); err != nil {
		return Sample{}, fmt.Errorf("dataset: sample %d: %w", i, err)
	}
	return Sample{Image: t, Text: d.combos.At(i)}, nil
}

// All yields every sample in index order, rendering each one as it is
// reached. Iteration stops after the first error.
func (d *Dataset) All() iter.Seq2[Sample, error] {
	return func(yield func(Sample, error) bool) {
		for i := range d.Len() {
			s, err := d.Item(i)
			if !yield(s, err) || err != nil {
				return
			}
		}
	}
}

// Close releases the font loaded by New. Fonts passed with
// WithFontSource and the default font are left open.
func (d *Dataset) Close() error {
	if !d.owned {
		return nil
	}
	d.owned = false
	return d.source.Close()
}

func (d *Dataset) check(i int) error {
	if i < 0 || i >= d.Len() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, d.Len())
	}
	return nil
}
