// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dataset

import (
	"fmt"
	"iter"
	"math"
)

// Count returns the number of strings of length 0 through maxLength over
// an alphabet of alphabetSize characters.
func Count(alphabetSize, maxLength int) (int, error) {
	if maxLength < 0 {
		return 0, ErrInvalidMaxLength
	}
	if alphabetSize < 0 {
		return 0, fmt.Errorf("dataset: negative alphabet size %d", alphabetSize)
	}

	total, term := 1, 1
	for k := 1; k <= maxLength; k++ {
		if alphabetSize != 0 && term > math.MaxInt/alphabetSize {
			return 0, fmt.Errorf("%w: %d^%d", ErrTooLarge, alphabetSize, k)
		}
		term *= alphabetSize
		if total > math.MaxInt-term {
			return 0, fmt.Errorf("%w: %d strings up to length %d", ErrTooLarge, alphabetSize, maxLength)
		}
		total += term
	}
	return total, nil
}

// Combinations enumerates every string of length 0 through MaxLength over
// an alphabet, with repetition. Strings are decoded on demand from their
// index; nothing is materialized.
//
// Combinations is immutable and safe for concurrent use.
type Combinations struct {
	alphabet  []rune
	maxLength int
	// starts[k] is the index of the first string of length k;
	// starts[maxLength+1] is the total count.
	starts []int
}

// NewCombinations creates the enumeration of all strings over alphabet up
// to maxLength runes. Repeated runes in alphabet are kept, so they yield
// repeated strings.
func NewCombinations(alphabet []rune, maxLength int) (*Combinations, error) {
	if _, err := Count(len(alphabet), maxLength); err != nil {
		return nil, err
	}

	starts := make([]int, maxLength+2)
	term := 1
	for k := 0; k <= maxLength; k++ {
		starts[k+1] = starts[k] + term
		term *= len(alphabet)
	}

	return &Combinations{
		alphabet:  append([]rune(nil), alphabet...),
		maxLength: maxLength,
		starts:    starts,
	}, nil
}

// Len returns the number of strings, including the empty string.
func (c *Combinations) Len() int {
	return c.starts[len(c.starts)-1]
}

// MaxLength returns the length of the longest strings.
func (c *Combinations) MaxLength() int {
	return c.maxLength
}

// Alphabet returns a copy of the alphabet.
func (c *Combinations) Alphabet() []rune {
	return append([]rune(nil), c.alphabet...)
}

// At returns the string at index i. It panics if i is out of range.
func (c *Combinations) At(i int) string {
	if i < 0 || i >= c.Len() {
		panic(fmt.Sprintf("dataset: combination index %d out of range [0, %d)", i, c.Len()))
	}

	k := c.lengthOf(i)
	j := i - c.starts[k]
	base := len(c.alphabet)

	out := make([]rune, k)
	for p := k - 1; p >= 0; p-- {
		out[p] = c.alphabet[j%base]
		j /= base
	}
	return string(out)
}

// All yields every (index, string) pair in order.
func (c *Combinations) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := range c.Len() {
			if !yield(i, c.At(i)) {
				return
			}
		}
	}
}

// lengthOf returns the length of the string at index i.
func (c *Combinations) lengthOf(i int) int {
	for k := 0; k <= c.maxLength; k++ {
		if i < c.starts[k+1] {
			return k
		}
	}
	return c.maxLength
}
