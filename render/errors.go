// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for render package.
var (
	// ErrInvalidSize is returned when a canvas dimension is not positive.
	ErrInvalidSize = errors.New("render: canvas width and height must be positive")

	// ErrNilFace is returned when a request has no font face.
	ErrNilFace = errors.New("render: nil font face")

	// ErrInvalidFontSize is returned when a face size is not a finite
	// value in (0, MaxFontSize].
	ErrInvalidFontSize = errors.New("render: invalid font size")
)

// MaxFontSize is the largest accepted face size in pixels per em.
const MaxFontSize = 1 << 16

// CheckFontSize reports whether size can be rendered. Zero draws nothing
// and negative sizes mirror the outlines, so both are rejected.
func CheckFontSize(size float64) error {
	if math.IsNaN(size) || size <= 0 || size > MaxFontSize {
		return fmt.Errorf("%w: %v", ErrInvalidFontSize, size)
	}
	return nil
}
