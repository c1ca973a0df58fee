package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Measure returns the tight ink bounding box of a shaped run, relative to
// the run origin on the baseline (Y axis down).
//
// The box is the union of the unhinted outline bounds of every glyph,
// translated by the glyph's pen position. Runs without ink (empty text,
// spaces only) measure as the zero Rect.
func Measure(run ShapedRun) Rect {
	if run.Empty() || run.Face == nil || run.Face.Source() == nil {
		return Rect{}
	}
	sf, err := run.Face.Source().outlineFont()
	if err != nil {
		return Rect{}
	}

	var (
		buf  sfnt.Buffer
		box  Rect
		ppem = floatToFixed(run.Face.Size())
	)
	for _, g := range run.Glyphs {
		b, _, err := sf.GlyphBounds(&buf, sfnt.GlyphIndex(g.GID), ppem, font.HintingNone)
		if err != nil {
			continue
		}
		if gb := rectFromFixed(b); !gb.Empty() {
			box = box.Union(gb.Translate(g.X, g.Y))
		}
	}
	return box
}

// MeasureString shapes s with the global shaper and measures the result.
func MeasureString(s string, face Face) Rect {
	return Measure(Shape(s, face))
}

func rectFromFixed(r fixed.Rectangle26_6) Rect {
	return Rect{
		MinX: fixedToFloat(r.Min.X),
		MinY: fixedToFloat(r.Min.Y),
		MaxX: fixedToFloat(r.Max.X),
		MaxY: fixedToFloat(r.Max.Y),
	}
}
