package text

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// testFace creates a Go Regular face at the given size.
func testFace(t *testing.T, size float64, opts ...FaceOption) Face {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to create font source: %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})

	return source.Face(size, opts...)
}

func TestFaceDefaults(t *testing.T) {
	face := testFace(t, 24)

	if face.Size() != 24 {
		t.Errorf("Size() = %v, want 24", face.Size())
	}
	if face.Direction() != DirectionLTR {
		t.Errorf("Direction() = %v, want LTR", face.Direction())
	}
	if face.Language() != "en" {
		t.Errorf("Language() = %q, want en", face.Language())
	}
	if face.Source() == nil {
		t.Error("Source() returned nil")
	}
}

func TestFaceOptions(t *testing.T) {
	face := testFace(t, 16, WithDirection(DirectionRTL), WithLanguage("ar"))

	if !face.Direction().IsRTL() {
		t.Errorf("Direction() = %v, want RTL", face.Direction())
	}
	if face.Language() != "ar" {
		t.Errorf("Language() = %q, want ar", face.Language())
	}
}

func TestFaceMetrics(t *testing.T) {
	small := testFace(t, 12).Metrics()
	large := testFace(t, 48).Metrics()

	if small.Ascent <= 0 || small.Descent <= 0 {
		t.Fatalf("expected positive ascent and descent, got %+v", small)
	}
	if large.Ascent <= small.Ascent {
		t.Errorf("ascent should grow with size: 12px=%v 48px=%v", small.Ascent, large.Ascent)
	}

	// Metrics scale linearly with the em size.
	ratio := large.Ascent / small.Ascent
	if math.Abs(ratio-4) > 0.1 {
		t.Errorf("ascent ratio = %v, want about 4", ratio)
	}

	if lh := large.LineHeight(); lh < large.Ascent+large.Descent {
		t.Errorf("LineHeight() = %v, want >= ascent+descent", lh)
	}
}

func TestFloatToFixedSaturates(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{1.5, 96},
		{-2, -128},
		{1e12, math.MaxInt32},
		{-1e12, math.MinInt32},
		{math.Inf(1), math.MaxInt32},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := int32(floatToFixed(tt.in)); got != tt.want {
			t.Errorf("floatToFixed(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
