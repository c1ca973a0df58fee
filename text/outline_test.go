package text

import (
	"image"
	"testing"

	"golang.org/x/image/vector"
)

// recordingSink counts path operations and tracks the bounds of on-curve points.
type recordingSink struct {
	moves, closes, draws int
	minX, minY           float32
	maxX, maxY           float32
}

func (s *recordingSink) point(x, y float32) {
	if s.moves+s.draws == 0 {
		s.minX, s.maxX, s.minY, s.maxY = x, x, y, y
	}
	s.minX = min(s.minX, x)
	s.maxX = max(s.maxX, x)
	s.minY = min(s.minY, y)
	s.maxY = max(s.maxY, y)
}

func (s *recordingSink) MoveTo(x, y float32) { s.point(x, y); s.moves++ }
func (s *recordingSink) LineTo(x, y float32) { s.point(x, y); s.draws++ }

// Control points are not tracked: they may lie outside the ink box.
func (s *recordingSink) QuadTo(_, _, x, y float32)       { s.point(x, y); s.draws++ }
func (s *recordingSink) CubeTo(_, _, _, _, x, y float32) { s.point(x, y); s.draws++ }
func (s *recordingSink) ClosePath()                      { s.closes++ }

func TestAppendOutline(t *testing.T) {
	face := testFace(t, 40)
	run := Shape("o", face)

	var sink recordingSink
	if err := AppendOutline(&sink, run, 10, 50); err != nil {
		t.Fatalf("AppendOutline failed: %v", err)
	}

	// An "o" has an outer and an inner contour.
	if sink.moves != 2 || sink.closes != 2 {
		t.Errorf("moves=%d closes=%d, want 2 and 2", sink.moves, sink.closes)
	}
	if sink.draws == 0 {
		t.Error("expected drawing segments")
	}

	// Outline points stay within the measured box, shifted to the origin.
	box := Measure(run).Translate(10, 50)
	const tol = 1
	if float64(sink.minX) < box.MinX-tol || float64(sink.maxX) > box.MaxX+tol ||
		float64(sink.minY) < box.MinY-tol || float64(sink.maxY) > box.MaxY+tol {
		t.Errorf("outline bounds (%v,%v)-(%v,%v) outside box %+v",
			sink.minX, sink.minY, sink.maxX, sink.maxY, box)
	}
}

func TestAppendOutlineRasterizer(t *testing.T) {
	face := testFace(t, 24)
	run := Shape("A", face)

	z := vector.NewRasterizer(32, 32)
	if err := AppendOutline(z, run, 4, 26); err != nil {
		t.Fatalf("AppendOutline failed: %v", err)
	}

	mask := image.NewAlpha(image.Rect(0, 0, 32, 32))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	covered := 0
	for _, a := range mask.Pix {
		if a > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("rasterized glyph has no coverage")
	}
}

func TestAppendOutlineClosedSource(t *testing.T) {
	face := testFace(t, 24)
	run := Shape("A", face)
	_ = face.Source().Close()

	var sink recordingSink
	if err := AppendOutline(&sink, run, 0, 0); err == nil {
		t.Error("expected error for closed font source")
	}
}
