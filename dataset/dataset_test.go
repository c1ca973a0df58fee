// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dataset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ocrset"
	"github.com/gogpu/ocrset/render"
	"github.com/gogpu/ocrset/text"
)

func testFontFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestDataset(t *testing.T, alphabet string, maxLength int, opts ...Option) *Dataset {
	t.Helper()

	d, err := New(alphabet, maxLength, testFontFile(t), 20, 64, 32, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() {
		_ = d.Close()
	})
	return d
}

func TestDatasetLen(t *testing.T) {
	tests := []struct {
		alphabet string
		maxLen   int
		want     int
	}{
		{"abc", 0, 1},
		{"abc", 1, 4},
		{"abc", 2, 13},
		{"0123456789", 2, 111},
		{"", 3, 1},
	}
	for _, tt := range tests {
		d := newTestDataset(t, tt.alphabet, tt.maxLen)
		if d.Len() != tt.want {
			t.Errorf("New(%q, %d).Len() = %d, want %d", tt.alphabet, tt.maxLen, d.Len(), tt.want)
		}
	}
}

func TestDatasetText(t *testing.T) {
	d := newTestDataset(t, "abc", 2)

	tests := map[int]string{0: "", 1: "a", 3: "c", 4: "aa", 5: "ab", 12: "cc"}
	for i, want := range tests {
		got, err := d.Text(i)
		if err != nil {
			t.Fatalf("Text(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("Text(%d) = %q, want %q", i, got, want)
		}
	}

	// The mapping is stable across calls and across datasets.
	other := newTestDataset(t, "abc", 2)
	for i := range d.Len() {
		a, _ := d.Text(i)
		b, _ := other.Text(i)
		if a != b {
			t.Errorf("index %d: %q vs %q", i, a, b)
		}
	}
}

func TestDatasetIndexOutOfRange(t *testing.T) {
	d := newTestDataset(t, "ab", 1)

	for _, i := range []int{-1, d.Len(), d.Len() + 10} {
		if _, err := d.Item(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Item(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
		if _, err := d.Text(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Text(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestDatasetItemNormalized(t *testing.T) {
	d := newTestDataset(t, "HI", 2)

	blank, err := d.Item(0)
	if err != nil {
		t.Fatal(err)
	}
	if blank.Text != "" {
		t.Errorf("Item(0).Text = %q, want empty", blank.Text)
	}
	if blank.Image.Min() != 1 || blank.Image.Max() != 1 {
		t.Errorf("empty string image range [%v, %v], want all 1 (white)", blank.Image.Min(), blank.Image.Max())
	}
	if want := []int{3, 32, 64}; len(blank.Image.Shape) != 3 ||
		blank.Image.Shape[0] != want[0] || blank.Image.Shape[1] != want[1] || blank.Image.Shape[2] != want[2] {
		t.Errorf("Shape = %v, want %v", blank.Image.Shape, want)
	}

	s, err := d.Item(4) // "HI"
	if err != nil {
		t.Fatal(err)
	}
	if s.Text != "HI" {
		t.Errorf("Item(4).Text = %q, want HI", s.Text)
	}
	if s.Image.Min() < -1 || s.Image.Max() > 1 {
		t.Errorf("range [%v, %v] outside [-1, 1]", s.Image.Min(), s.Image.Max())
	}
	if s.Image.Min() > -0.9 {
		t.Errorf("Min() = %v, want near -1 for black ink", s.Image.Min())
	}
}

func TestDatasetCentered(t *testing.T) {
	d := newTestDataset(t, "gW", 3)

	for _, i := range []int{1, 2, 6, d.Len() - 1} {
		img, err := d.Image(i)
		if err != nil {
			t.Fatal(err)
		}
		ink := inkBounds(img)
		if ink.Empty() {
			t.Fatalf("sample %d has no ink", i)
		}
		left, right := ink.Min.X, 64-ink.Max.X
		top, bottom := ink.Min.Y, 32-ink.Max.Y
		if diff := left - right; diff < -2 || diff > 2 {
			t.Errorf("sample %d: horizontal margins %d/%d", i, left, right)
		}
		if diff := top - bottom; diff < -2 || diff > 2 {
			t.Errorf("sample %d: vertical margins %d/%d", i, top, bottom)
		}
	}
}

func TestDatasetDeterministic(t *testing.T) {
	d := newTestDataset(t, "xy", 2)

	a, err := d.Image(6)
	if err != nil {
		t.Fatal(err)
	}
	b, err := d.Image(6)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same index rendered different pixels")
	}
}

func TestDatasetFontFallback(t *testing.T) {
	var logs bytes.Buffer
	ocrset.SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { ocrset.SetLogger(nil) })

	missing := filepath.Join(t.TempDir(), "missing.ttf")
	d, err := New("ab", 1, missing, 20, 64, 32)
	if err != nil {
		t.Fatalf("New with missing font should fall back, got %v", err)
	}
	defer func() { _ = d.Close() }()

	if !d.FontFallback() {
		t.Error("FontFallback() = false, want true")
	}
	if d.Face().Source() != text.DefaultFontSource() {
		t.Error("expected the default font source")
	}
	if !strings.Contains(logs.String(), "font unavailable") || !strings.Contains(logs.String(), "component=dataset") {
		t.Errorf("expected a fallback warning, log was %q", logs.String())
	}

	// Rendering still works with the substitute font.
	img, err := d.Image(1)
	if err != nil {
		t.Fatal(err)
	}
	if inkBounds(img).Empty() {
		t.Error("fallback font rendered nothing")
	}
}

func TestDatasetInvalidFontFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o600); err != nil {
		t.Fatal(err)
	}
	d, err := New("a", 1, path, 20, 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	if !d.FontFallback() {
		t.Error("invalid font file should trigger the fallback")
	}
}

func TestDatasetNewErrors(t *testing.T) {
	path := testFontFile(t)

	if _, err := New("ab", -1, path, 20, 32, 32); !errors.Is(err, ErrInvalidMaxLength) {
		t.Errorf("negative max length: err = %v", err)
	}
	if _, err := New("ab", 1, path, 20, 0, 32); !errors.Is(err, render.ErrInvalidSize) {
		t.Errorf("zero width: err = %v", err)
	}
	_, err := New("ab", 1, path, 20, 32, 32, WithNormalization([]float32{0.5}, []float32{0}))
	if err == nil {
		t.Error("zero std should be rejected")
	}
	for _, size := range []float64{0, -12, 1e9} {
		if _, err := New("ab", 1, path, size, 32, 32); !errors.Is(err, render.ErrInvalidFontSize) {
			t.Errorf("font size %v: err = %v, want ErrInvalidFontSize", size, err)
		}
	}
}

func TestDatasetClosed(t *testing.T) {
	d, err := New("ab", 1, testFontFile(t), 20, 32, 32, WithCache(4))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Image(1); err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}

	// Cached and uncached indices both fail.
	for _, i := range []int{1, 2} {
		if _, err := d.Item(i); !errors.Is(err, text.ErrFontClosed) {
			t.Errorf("Item(%d) after Close: err = %v, want ErrFontClosed", i, err)
		}
	}
}

func TestDatasetWithFontSource(t *testing.T) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	d, err := New("a", 1, "ignored.ttf", 20, 32, 32, WithFontSource(source))
	if err != nil {
		t.Fatal(err)
	}
	if d.FontFallback() {
		t.Error("FontFallback() = true with an explicit source")
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	// The caller still owns the source.
	if source.Face(12).Metrics() == (text.Metrics{}) {
		t.Error("dataset closed a caller-owned font source")
	}
	_ = source.Close()
}

func TestDatasetRTL(t *testing.T) {
	d := newTestDataset(t, "ab", 1, WithRTL(true))
	if !d.Face().Direction().IsRTL() {
		t.Error("WithRTL(true) should create an RTL face")
	}
	if _, err := d.Item(2); err != nil {
		t.Fatal(err)
	}
}

func TestDatasetCustomNormalization(t *testing.T) {
	d := newTestDataset(t, "a", 0, WithNormalization([]float32{0, 0, 0}, []float32{1, 1, 1}))
	s, err := d.Item(0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Image.Min() != 1 || s.Image.Max() != 1 {
		t.Errorf("identity normalization of white = [%v, %v], want 1", s.Image.Min(), s.Image.Max())
	}
}

func TestDatasetAll(t *testing.T) {
	d := newTestDataset(t, "ab", 2)

	var texts []string
	for s, err := range d.All() {
		if err != nil {
			t.Fatal(err)
		}
		texts = append(texts, s.Text)
	}
	if len(texts) != d.Len() {
		t.Fatalf("All() yielded %d samples, want %d", len(texts), d.Len())
	}
	for i, s := range texts {
		want, _ := d.Text(i)
		if s != want {
			t.Errorf("sample %d: %q, want %q", i, s, want)
		}
	}
}

func TestDatasetWithRenderer(t *testing.T) {
	bg := color.RGBA{0, 0, 0, 255}
	d := newTestDataset(t, "a", 0, WithRenderer(render.NewRenderer(render.WithBackground(bg))))
	s, err := d.Item(0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Image.Max() != -1 {
		t.Errorf("black background normalized to %v, want -1", s.Image.Max())
	}
}

func inkBounds(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func BenchmarkDatasetItem(b *testing.B) {
	d, err := New("abcdefghij", 3, "", 20, 128, 32, WithFontSource(text.DefaultFontSource()))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		if _, err := d.Item(i % d.Len()); err != nil {
			b.Fatal(err)
		}
		i++
	}
}

func TestDatasetCache(t *testing.T) {
	plain := newTestDataset(t, "ab", 2)
	cached := newTestDataset(t, "ab", 2, WithCache(2))

	if _, ok := plain.CacheStats(); ok {
		t.Error("CacheStats ok without WithCache")
	}

	want, err := plain.Image(3)
	if err != nil {
		t.Fatal(err)
	}
	first, err := cached.Image(3)
	if err != nil {
		t.Fatal(err)
	}
	// Mutating a returned image must not leak into later calls.
	for i := range first.Pix {
		first.Pix[i] = 0
	}
	second, err := cached.Image(3)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(want.Pix, second.Pix) {
		t.Error("cached image differs from a fresh render")
	}

	for i := range cached.Len() {
		if _, err := cached.Image(i); err != nil {
			t.Fatal(err)
		}
	}
	stats, ok := cached.CacheStats()
	if !ok {
		t.Fatal("CacheStats not ok with WithCache")
	}
	if stats.Len != 2 {
		t.Errorf("cache Len = %d, want 2", stats.Len)
	}
	if stats.Hits < 1 {
		t.Errorf("cache Hits = %d, want >= 1", stats.Hits)
	}
	if stats.Evictions == 0 {
		t.Error("expected evictions with 7 samples and capacity 2")
	}
}
