// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tensor holds images as CHW float32 tensors.
//
// FromImage and Normalize mirror the ToTensor and Normalize transforms of
// common machine-learning toolkits: 8-bit channels are scaled to [0, 1]
// and then shifted per channel by (x - mean) / std.
package tensor

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors for tensor package.
var (
	// ErrShape is returned when mean/std do not match the channel count.
	ErrShape = errors.New("tensor: shape mismatch")

	// ErrZeroStd is returned when a standard deviation is zero.
	ErrZeroStd = errors.New("tensor: zero standard deviation")
)

// Tensor is a dense float32 tensor in row-major order.
// Image tensors have shape [C, H, W].
type Tensor struct {
	Shape []int
	Data  []float32
}

// New allocates a zero tensor of the given shape.
func New(shape ...int) Tensor {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return Tensor{Shape: append([]int(nil), shape...), Data: make([]float32, n)}
}

// FromImage converts img to a [3, H, W] tensor with values in [0, 1].
// The alpha channel is dropped; colors are taken un-premultiplied against
// an opaque background, which is exact for the opaque images produced by
// package render.
func FromImage(img image.Image) Tensor {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	t := New(3, h, w)
	plane := w * h

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < h; y++ {
			row := rgba.Pix[(b.Min.Y+y-rgba.Rect.Min.Y)*rgba.Stride:]
			for x := 0; x < w; x++ {
				px := row[(b.Min.X+x-rgba.Rect.Min.X)*4:]
				i := y*w + x
				t.Data[i] = float32(px[0]) / 255
				t.Data[plane+i] = float32(px[1]) / 255
				t.Data[2*plane+i] = float32(px[2]) / 255
			}
		}
		return t
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := y*w + x
			t.Data[i] = float32(r>>8) / 255
			t.Data[plane+i] = float32(g>>8) / 255
			t.Data[2*plane+i] = float32(bl>>8) / 255
		}
	}
	return t
}

// Normalize applies (x - mean[c]) / std[c] to every channel c in place.
// A single mean or std value is broadcast over all channels.
func (t *Tensor) Normalize(mean, std []float32) error {
	if len(t.Shape) == 0 {
		return fmt.Errorf("%w: scalar tensor", ErrShape)
	}
	channels := t.Shape[0]
	m, err := broadcast("mean", mean, channels)
	if err != nil {
		return err
	}
	s, err := broadcast("std", std, channels)
	if err != nil {
		return err
	}
	for c, v := range s {
		if v == 0 {
			return fmt.Errorf("%w: channel %d", ErrZeroStd, c)
		}
	}

	plane := len(t.Data) / channels
	for c := 0; c < channels; c++ {
		seg := t.Data[c*plane : (c+1)*plane]
		for i, v := range seg {
			seg[i] = (v - m[c]) / s[c]
		}
	}
	return nil
}

func broadcast(name string, v []float32, channels int) ([]float32, error) {
	switch len(v) {
	case channels:
		return v, nil
	case 1:
		out := make([]float32, channels)
		for i := range out {
			out[i] = v[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s has %d values for %d channels", ErrShape, name, len(v), channels)
	}
}

// At returns the element at channel c, row y, column x of a CHW tensor.
func (t Tensor) At(c, y, x int) float32 {
	h, w := t.Shape[1], t.Shape[2]
	return t.Data[(c*h+y)*w+x]
}

// Len returns the number of elements.
func (t Tensor) Len() int {
	return len(t.Data)
}

// Min returns the smallest element, or 0 for an empty tensor.
func (t Tensor) Min() float32 {
	if len(t.Data) == 0 {
		return 0
	}
	m := t.Data[0]
	for _, v := range t.Data[1:] {
		m = min(m, v)
	}
	return m
}

// Max returns the largest element, or 0 for an empty tensor.
func (t Tensor) Max() float32 {
	if len(t.Data) == 0 {
		return 0
	}
	m := t.Data[0]
	for _, v := range t.Data[1:] {
		m = max(m, v)
	}
	return m
}
