package text

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// PathSink receives glyph outlines in pixel space, Y axis down.
// *vector.Rasterizer from golang.org/x/image/vector satisfies it.
type PathSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(x1, y1, x, y float32)
	CubeTo(x1, y1, x2, y2, x, y float32)
	ClosePath()
}

// GlyphError reports a glyph whose outline could not be loaded.
type GlyphError struct {
	GID GlyphID
	Err error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("text: glyph %d: %v", e.GID, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}

// OutlineExtractor loads glyph outlines from a face and feeds them to a
// PathSink. It reuses an sfnt.Buffer between glyphs and is therefore not
// safe for concurrent use.
type OutlineExtractor struct {
	buffer sfnt.Buffer
}

// NewOutlineExtractor creates a new outline extractor.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// AppendRun appends the outlines of every glyph in run to dst, with the
// run origin (baseline start) placed at (x, y).
func (e *OutlineExtractor) AppendRun(dst PathSink, run ShapedRun, x, y float64) error {
	if run.Empty() || run.Face == nil {
		return nil
	}
	source := run.Face.Source()
	if source == nil {
		return nil
	}
	sf, err := source.outlineFont()
	if err != nil {
		return err
	}

	ppem := floatToFixed(run.Face.Size())
	for _, g := range run.Glyphs {
		segments, err := sf.LoadGlyph(&e.buffer, sfnt.GlyphIndex(g.GID), ppem, nil)
		if err != nil {
			return &GlyphError{GID: g.GID, Err: err}
		}
		appendSegments(dst, segments, float32(x+g.X), float32(y+g.Y))
	}
	return nil
}

// AppendOutline is a convenience wrapper around OutlineExtractor.AppendRun.
func AppendOutline(dst PathSink, run ShapedRun, x, y float64) error {
	return NewOutlineExtractor().AppendRun(dst, run, x, y)
}

func appendSegments(dst PathSink, segments sfnt.Segments, dx, dy float32) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 + dx, float32(p.Y)/64 + dy
	}

	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				dst.ClosePath()
			}
			x, y := pt(seg.Args[0])
			dst.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			dst.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			dst.QuadTo(x1, y1, x, y)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			dst.CubeTo(x1, y1, x2, y2, x, y)
		}
	}
	if open {
		dst.ClosePath()
	}
}
