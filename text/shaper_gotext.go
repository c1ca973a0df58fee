package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports the OpenType features the renderer relies on:
//   - Kerning and ligature substitution
//   - Arabic contextual joining (initial, medial, final and isolated forms)
//   - Right-to-left glyph ordering
//
// Faces with DirectionRTL are split into bidi runs first. Every run is
// shaped with its own direction and script and the runs are laid out in
// visual order, so a mixed string such as "عدد 42" comes out the way it is
// read on screen.
//
// GoTextShaper is safe for concurrent use. The parsed font.Font objects are
// read-only, a lightweight font.Face is created per Shape() call, and
// HarfbuzzShaper instances are pooled via sync.Pool since they are not
// concurrent-safe.
type GoTextShaper struct {
	shaperPool sync.Pool
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape implements the Shaper interface.
// Glyph positions are relative to the run origin on the baseline.
// A closed font source yields an empty run.
func (s *GoTextShaper) Shape(text string, face Face) ShapedRun {
	run := ShapedRun{Face: face}
	if text == "" || face == nil {
		return run
	}
	run.Direction = face.Direction()

	source := face.Source()
	if source == nil {
		return run
	}
	goTextFont, err := source.shapingFont()
	if err != nil {
		return run
	}

	// font.Face is NOT safe for concurrent use, so each Shape() call
	// gets its own instance.
	goTextFace := font.NewFace(goTextFont)
	runes := []rune(text)
	lang := language.NewLanguage(face.Language())

	var segments []Segment
	if face.Direction().IsRTL() {
		segments = VisualOrder(NewBidiSegmenter(DirectionRTL).Segment(text))
	} else {
		segments = []Segment{{
			Text:      text,
			End:       len(text),
			Direction: DirectionLTR,
			Script:    detectScript(runes),
		}}
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer s.shaperPool.Put(hbShaper)

	for _, seg := range segments {
		script := seg.Script
		if script == language.Common || script == language.Inherited {
			script = detectScript(runes[seg.RuneStart : seg.RuneStart+seg.RuneCount()])
		}
		input := shaping.Input{
			Text:      runes,
			RunStart:  seg.RuneStart,
			RunEnd:    seg.RuneStart + seg.RuneCount(),
			Direction: mapDirection(seg.Direction),
			Face:      goTextFace,
			Size:      floatToFixed(face.Size()),
			Script:    script,
			Language:  lang,
		}
		output := hbShaper.Shape(input)
		run.Glyphs, run.Advance = appendGlyphs(run.Glyphs, output.Glyphs, run.Advance)
	}

	return run
}

// mapDirection converts our text.Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first rune that has a concrete
// script, or Latin when there is none (digits, spaces, punctuation).
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		sc := language.LookupScript(r)
		if sc != language.Common && sc != language.Inherited {
			return sc
		}
	}
	return language.Latin
}

// appendGlyphs converts HarfBuzz output glyphs and appends them to dst,
// starting the pen at x, and returns the pen position after the last glyph.
// HarfBuzz reports RTL runs in visual order already.
func appendGlyphs(dst []ShapedGlyph, glyphs []shaping.Glyph, x float64) ([]ShapedGlyph, float64) {
	for _, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		dst = append(dst, ShapedGlyph{
			GID:     GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph indices are 16-bit
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			// HarfBuzz offsets are Y-up.
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: adv,
		})
		x += adv
	}
	return dst, x
}
