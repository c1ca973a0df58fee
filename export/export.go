// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package export writes datasets to disk as numbered image files plus a
// labels.txt file with one "<file> <text>" line per sample.
package export

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/tiff"

	"github.com/gogpu/ocrset"
	"github.com/gogpu/ocrset/dataset"
)

// LabelsFile is the name of the labels file written next to the images.
const LabelsFile = "labels.txt"

// Format selects the image encoding.
type Format string

// Supported formats.
const (
	PNG  Format = "png"
	TIFF Format = "tiff"
)

// ErrUnknownFormat is returned for formats other than PNG and TIFF.
var ErrUnknownFormat = errors.New("export: unknown image format")

// ErrMultilineLabel is returned for a label containing a line break, which
// labels.txt cannot represent.
var ErrMultilineLabel = errors.New("export: label contains a line break")

// ParseFormat returns the format named s ("png", "tiff" or "tif").
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png", "":
		return PNG, nil
	case "tiff", "tif":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options configures an export.
type Options struct {
	// Dir is the output directory. It is created if missing.
	Dir string

	// Format is the image encoding; empty means PNG.
	Format Format

	// Limit caps the number of samples written. Zero means all.
	Limit int
}

// Stats summarizes a finished export.
type Stats struct {
	Samples  int
	Bytes    int64
	Duration time.Duration
}

// Source is the part of a dataset an export reads.
type Source interface {
	Len() int
	Text(i int) (string, error)
	Image(i int) (*image.RGBA, error)
}

var _ Source = (*dataset.Dataset)(nil)

// Export writes the samples of src to opts.Dir as img_<n>.<ext>, counting
// n from 1, and appends one line per sample to labels.txt. The context is
// checked between samples; on cancellation the files written so far are
// kept and ctx.Err() is returned. Labels with line breaks stop the export
// before their image is written.
func Export(ctx context.Context, src Source, opts Options) (stats Stats, err error) {
	start := time.Now()
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return Stats{}, err
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return Stats{}, fmt.Errorf("export: %w", err)
	}

	labels, err := os.Create(filepath.Join(opts.Dir, LabelsFile))
	if err != nil {
		return Stats{}, fmt.Errorf("export: %w", err)
	}
	lw := bufio.NewWriter(labels)
	// Every image on disk keeps its label line, whatever the exit path.
	defer func() {
		ferr := lw.Flush()
		if cerr := labels.Close(); ferr == nil {
			ferr = cerr
		}
		if err == nil && ferr != nil {
			err = fmt.Errorf("export: %w", ferr)
		}
	}()

	n := src.Len()
	if opts.Limit > 0 && opts.Limit < n {
		n = opts.Limit
	}

	log := ocrset.Component("export")
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		label, err := src.Text(i)
		if err != nil {
			return stats, err
		}
		if strings.ContainsAny(label, "\r\n") {
			return stats, fmt.Errorf("%w: sample %d: %q", ErrMultilineLabel, i, label)
		}
		img, err := src.Image(i)
		if err != nil {
			return stats, err
		}

		name := fmt.Sprintf("img_%d.%s", i+1, format)
		size, err := writeImage(filepath.Join(opts.Dir, name), img, format)
		if err != nil {
			return stats, err
		}
		if _, err := fmt.Fprintf(lw, "%s %s\n", name, label); err != nil {
			return stats, fmt.Errorf("export: %w", err)
		}

		stats.Samples++
		stats.Bytes += size
		log.Debug("sample exported", "file", name, "text", label, "bytes", size)
	}

	stats.Duration = time.Since(start)
	log.Info("export finished", "dir", opts.Dir, "samples", stats.Samples, "bytes", stats.Bytes, "elapsed", stats.Duration)
	return stats, nil
}

func writeImage(path string, img image.Image, format Format) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	cw := &countingWriter{w: f}

	switch format {
	case TIFF:
		err = tiff.Encode(cw, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(cw, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("export: %s: %w", filepath.Base(path), err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
