// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dataset

import "errors"

// Sentinel errors for dataset package.
var (
	// ErrInvalidMaxLength is returned for a negative maximum length.
	ErrInvalidMaxLength = errors.New("dataset: max length must not be negative")

	// ErrTooLarge is returned when the number of strings overflows int.
	ErrTooLarge = errors.New("dataset: too many combinations")

	// ErrIndexOutOfRange is returned by accessors for indices outside [0, Len()).
	ErrIndexOutOfRange = errors.New("dataset: index out of range")
)
