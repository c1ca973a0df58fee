// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dataset exposes every string up to a maximum length over an
// alphabet as an indexed collection of (image, text) training samples.
//
// Strings are enumerated shortest first, starting with the empty string at
// index 0; strings of equal length follow the lexicographic order of the
// Cartesian product over the alphabet (the last position varies fastest).
// A dataset over A characters with maximum length L therefore has
//
//	A^0 + A^1 + ... + A^L
//
// samples. Images are rendered lazily on access, always centered on the
// canvas, and normalized from [0, 1] to [-1, 1].
//
// Unlike render.RenderFile, New never fails because of a bad font: when the
// font file cannot be loaded a warning is logged and the built-in Go
// Regular font is used instead.
package dataset
