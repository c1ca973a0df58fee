package text

import "testing"

func TestDirection(t *testing.T) {
	tests := []struct {
		dir   Direction
		str   string
		isRTL bool
	}{
		{DirectionLTR, "LTR", false},
		{DirectionRTL, "RTL", true},
		{Direction(9), unknownStr, false},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.dir.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.dir.IsRTL(); got != tt.isRTL {
				t.Errorf("IsRTL() = %v, want %v", got, tt.isRTL)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
		ok   bool
	}{
		{"ltr", DirectionLTR, true},
		{"RTL", DirectionRTL, true},
		{"rtl", DirectionRTL, true},
		{"sideways", DirectionLTR, false},
		{"", DirectionLTR, false},
	}
	for _, tt := range tests {
		got, ok := ParseDirection(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{MinX: 0, MinY: -10, MaxX: 5, MaxY: 0}
	b := Rect{MinX: 4, MinY: -8, MaxX: 12, MaxY: 3}

	got := a.Union(b)
	want := Rect{MinX: 0, MinY: -10, MaxX: 12, MaxY: 3}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty.Union(b) = %+v, want %+v", got, b)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("a.Union(empty) = %+v, want %+v", got, a)
	}
}

func TestRectGeometry(t *testing.T) {
	r := Rect{MinX: 1, MinY: -7, MaxX: 9, MaxY: 2}
	if r.Width() != 8 || r.Height() != 9 {
		t.Errorf("Width/Height = %v/%v, want 8/9", r.Width(), r.Height())
	}
	if r.Empty() {
		t.Error("non-degenerate rect reported empty")
	}

	moved := r.Translate(10, 7)
	want := Rect{MinX: 11, MinY: 0, MaxX: 19, MaxY: 9}
	if moved != want {
		t.Errorf("Translate = %+v, want %+v", moved, want)
	}
}
