package text

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face represents a font face at a specific size and direction.
// This is a lightweight object created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	// A closed source yields zero metrics.
	Metrics() Metrics

	// Size returns the size of this face in pixels per em.
	Size() float64

	// Direction returns the base text direction for this face.
	Direction() Direction

	// Language returns the language tag used for shaping.
	Language() string

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	sf, err := f.source.outlineFont()
	if err != nil {
		return Metrics{}
	}

	var buf sfnt.Buffer
	m, err := sf.Metrics(&buf, f.ppem(), font.HintingNone)
	if err != nil {
		return Metrics{}
	}

	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	ascent := fixedToFloat(m.Ascent)

	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   fixedToFloat(m.Height) - ascent - descent,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 { return f.size }

// Direction implements Face.Direction.
func (f *sourceFace) Direction() Direction { return f.config.direction }

// Language implements Face.Language.
func (f *sourceFace) Language() string { return f.config.language }

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource { return f.source }

func (*sourceFace) private() {}

// ppem returns the face size as 26.6 fixed point pixels per em.
func (f *sourceFace) ppem() fixed.Int26_6 {
	return floatToFixed(f.size)
}

// floatToFixed converts a float64 to fixed.Int26_6, saturating at the
// int32 range. The fixed-point representation uses 6 fractional bits.
func floatToFixed(v float64) fixed.Int26_6 {
	switch x := v * 64; {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt32:
		return math.MaxInt32
	case x <= math.MinInt32:
		return math.MinInt32
	default:
		return fixed.Int26_6(x)
	}
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
