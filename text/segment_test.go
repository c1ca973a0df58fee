package text

import (
	"testing"

	"github.com/go-text/typesetting/language"
)

func TestSegmentTextLatin(t *testing.T) {
	segs := SegmentText("hello world")
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1: %+v", len(segs), segs)
	}
	s := segs[0]
	if s.Direction != DirectionLTR || s.Script != language.Latin {
		t.Errorf("segment = %+v, want LTR Latin", s)
	}
	if s.Start != 0 || s.End != len("hello world") {
		t.Errorf("byte range = [%d,%d), want [0,%d)", s.Start, s.End, len("hello world"))
	}
}

func TestSegmentTextRTLHebrew(t *testing.T) {
	const word = "שלום"
	segs := SegmentTextRTL(word)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1: %+v", len(segs), segs)
	}
	s := segs[0]
	if s.Direction != DirectionRTL {
		t.Errorf("Direction = %v, want RTL", s.Direction)
	}
	if s.Level%2 != 1 {
		t.Errorf("Level = %d, want odd", s.Level)
	}
	if s.Script != language.Hebrew {
		t.Errorf("Script = %v, want Hebrew", s.Script)
	}
	if s.RuneCount() != 4 {
		t.Errorf("RuneCount() = %d, want 4", s.RuneCount())
	}
	if s.Text != word {
		t.Errorf("Text = %q, want %q", s.Text, word)
	}
}

func TestSegmentTextEmpty(t *testing.T) {
	if segs := SegmentText(""); segs != nil {
		t.Errorf("SegmentText(\"\") = %+v, want nil", segs)
	}
}

func TestResolveScripts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want language.Script
	}{
		{"digits after latin", "ab 12", language.Latin},
		{"leading digits", "12ab", language.Latin},
		{"arabic with space", "ب ت", language.Arabic},
		{"only digits", "123", language.Common},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, sc := range resolveScripts([]rune(tt.text)) {
				if sc != tt.want {
					t.Errorf("rune %d: script %v, want %v", i, sc, tt.want)
				}
			}
		})
	}
}

func TestBuildSegmentsOffsets(t *testing.T) {
	text := "aé中"
	runes := []rune(text)
	levels := []int{0, 0, 1}
	scripts := []language.Script{language.Latin, language.Latin, language.Han}

	segs := buildSegments(text, runes, levels, scripts)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0].Text != "aé" || segs[0].Start != 0 || segs[0].End != 3 {
		t.Errorf("first segment = %+v", segs[0])
	}
	if segs[1].Text != "中" || segs[1].RuneStart != 2 || segs[1].Direction != DirectionRTL {
		t.Errorf("second segment = %+v", segs[1])
	}
}

func TestVisualOrder(t *testing.T) {
	tests := []struct {
		name   string
		levels []int
		want   []int // indices of input segments in display order
	}{
		{"single", []int{1}, []int{0}},
		{"all ltr", []int{0, 0, 0}, []int{0, 1, 2}},
		{"all rtl", []int{1, 1, 1}, []int{2, 1, 0}},
		{"rtl paragraph with number", []int{1, 2, 1}, []int{2, 1, 0}},
		{"ltr paragraph with rtl run", []int{0, 1, 1, 0}, []int{0, 2, 1, 3}},
		{"nested", []int{1, 2, 2, 1}, []int{3, 1, 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := make([]Segment, len(tt.levels))
			for i, l := range tt.levels {
				segs[i] = Segment{RuneStart: i, Level: l}
			}

			got := VisualOrder(segs)
			for i, want := range tt.want {
				if got[i].RuneStart != want {
					t.Fatalf("position %d: segment %d, want %d", i, got[i].RuneStart, want)
				}
			}
			for i := range segs {
				if segs[i].RuneStart != i {
					t.Fatal("VisualOrder modified its input")
				}
			}
		})
	}
}
