// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image"

// Anchor selects where the text box is placed on the canvas.
type Anchor int

// The nine anchors, in table order (rows top to bottom, columns left to
// right). The zero value is TopLeft.
const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

var anchorNames = [...]string{
	TopLeft:      "top-left",
	TopCenter:    "top-center",
	TopRight:     "top-right",
	CenterLeft:   "center-left",
	Center:       "center",
	CenterRight:  "center-right",
	BottomLeft:   "bottom-left",
	BottomCenter: "bottom-center",
	BottomRight:  "bottom-right",
}

// Anchors returns all nine anchors in table order.
func Anchors() []Anchor {
	out := make([]Anchor, len(anchorNames))
	for i := range out {
		out[i] = Anchor(i)
	}
	return out
}

// ParseAnchor returns the anchor with the given name.
// Unknown names yield TopLeft; no error is reported.
func ParseAnchor(name string) Anchor {
	a, _ := LookupAnchor(name)
	return a
}

// LookupAnchor is like ParseAnchor but also reports whether name is one of
// the nine anchor names.
func LookupAnchor(name string) (Anchor, bool) {
	for i, n := range anchorNames {
		if n == name {
			return Anchor(i), true
		}
	}
	return TopLeft, false
}

// String returns the anchor name, or "top-left" for out-of-range values.
func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return anchorNames[TopLeft]
	}
	return anchorNames[a]
}

// IsBottom reports whether a is one of the bottom row anchors.
func (a Anchor) IsBottom() bool {
	return a == BottomLeft || a == BottomCenter || a == BottomRight
}

// Placer computes the canvas position of the top-left pixel of the text
// box. canvas is the canvas size, box the text ink box relative to the
// baseline origin and descent the font descent in whole pixels.
type Placer func(canvas image.Point, box image.Rectangle, descent int) image.Point

// Placer returns the anchor's entry of the anchor table as a Placer.
func (a Anchor) Placer() Placer {
	return func(canvas image.Point, box image.Rectangle, descent int) image.Point {
		return Origin(a, canvas, box, descent)
	}
}

// CenterPlacer centers the text box and ignores the descent.
var CenterPlacer Placer = func(canvas image.Point, box image.Rectangle, _ int) image.Point {
	return Centered(canvas, box)
}

// Origin looks up the draw origin of the text box for anchor a.
//
// Horizontal and vertical centering use floor division of the leftover
// space. For bottom anchors the origin is moved up by descent pixels so
// the lowest glyph pixels stay on the canvas. Out-of-range anchors behave
// like TopLeft.
func Origin(a Anchor, canvas image.Point, box image.Rectangle, descent int) image.Point {
	w, h := box.Dx(), box.Dy()
	left, hmid, right := 0, floorDiv(canvas.X-w, 2), canvas.X-w
	top, vmid, bottom := 0, floorDiv(canvas.Y-h, 2), canvas.Y-h

	var p image.Point
	switch a {
	case TopCenter:
		p = image.Pt(hmid, top)
	case TopRight:
		p = image.Pt(right, top)
	case CenterLeft:
		p = image.Pt(left, vmid)
	case Center:
		p = image.Pt(hmid, vmid)
	case CenterRight:
		p = image.Pt(right, vmid)
	case BottomLeft:
		p = image.Pt(left, bottom)
	case BottomCenter:
		p = image.Pt(hmid, bottom)
	case BottomRight:
		p = image.Pt(right, bottom)
	default:
		p = image.Pt(left, top)
	}

	if a.IsBottom() {
		p.Y -= descent
	}
	return p
}

// Centered returns the origin that centers box on the canvas. It does not
// go through the anchor table and never applies a descent shift.
func Centered(canvas image.Point, box image.Rectangle) image.Point {
	return image.Pt(floorDiv(canvas.X-box.Dx(), 2), floorDiv(canvas.Y-box.Dy(), 2))
}

// floorDiv divides rounding toward negative infinity, so text wider than
// the canvas is shifted consistently to the left.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
