package text

// GlyphID is a glyph index in a font. Indices are shared by the sfnt and
// go-text views of a FontSource.
type GlyphID uint16

// ShapedGlyph represents a positioned glyph.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source character index in the original text.
	Cluster int

	// X is the horizontal pen position relative to the run origin.
	X float64

	// Y is the vertical offset relative to the baseline, Y axis down.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}

// ShapedRun is a sequence of glyphs in visual (left to right) order,
// ready to be measured and drawn from a single origin on the baseline.
type ShapedRun struct {
	Glyphs []ShapedGlyph

	// Advance is the total horizontal advance of the run.
	Advance float64

	// Direction is the paragraph direction the run was shaped with.
	Direction Direction

	// Face is the face the glyphs belong to.
	Face Face
}

// Empty reports whether the run has no glyphs.
func (r ShapedRun) Empty() bool {
	return len(r.Glyphs) == 0
}

// Clusters returns the cluster index of every glyph, in visual order.
func (r ShapedRun) Clusters() []int {
	out := make([]int, len(r.Glyphs))
	for i, g := range r.Glyphs {
		out[i] = g.Cluster
	}
	return out
}
