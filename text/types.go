package text

import "math"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies the base text direction of a face.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew).
	// Faces with this direction are shaped with contextual joining and
	// reordered for display.
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// IsRTL reports whether d is right-to-left.
func (d Direction) IsRTL() bool {
	return d == DirectionRTL
}

// ParseDirection parses "ltr" or "rtl" (case-sensitive, as written in
// recipes and CLI flags). Anything else yields DirectionLTR and false.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "ltr", "LTR":
		return DirectionLTR, true
	case "rtl", "RTL":
		return DirectionRTL, true
	default:
		return DirectionLTR, false
	}
}

// Rect is an axis-aligned rectangle in pixel space.
// The Y axis increases downwards; glyph rectangles are relative to the
// baseline origin, so ascenders have negative MinY.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Union returns the smallest rectangle containing r and o.
// Empty rectangles do not contribute.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}
