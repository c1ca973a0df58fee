package text

import (
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Segment represents a contiguous run of text with the same direction and script.
type Segment struct {
	Text      string
	Start     int // byte offset into the source text
	End       int
	RuneStart int // rune offset into the source text
	Direction Direction
	Script    language.Script
	Level     int // bidi embedding level (odd = RTL)
}

// RuneCount returns the number of runes in the segment.
func (s Segment) RuneCount() int {
	count := 0
	for range s.Text {
		count++
	}
	return count
}

// Segmenter splits text into uniformly shaped runs.
type Segmenter interface {
	Segment(text string) []Segment
}

// BidiSegmenter segments text by bidi level and script using the
// Unicode Bidirectional Algorithm from golang.org/x/text/unicode/bidi.
// Segments are returned in logical order; use VisualOrder to reorder
// them for display.
type BidiSegmenter struct {
	BaseDirection Direction
}

// NewBidiSegmenter returns a segmenter with the given paragraph base direction.
func NewBidiSegmenter(dir Direction) *BidiSegmenter {
	return &BidiSegmenter{BaseDirection: dir}
}

// Segment implements Segmenter.
func (s *BidiSegmenter) Segment(text string) []Segment {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	levels := s.computeBidiLevels(text, len(runes))
	scripts := resolveScripts(runes)
	return buildSegments(text, runes, levels, scripts)
}

func (s *BidiSegmenter) baseLevel() int {
	if s.BaseDirection.IsRTL() {
		return 1
	}
	return 0
}

// computeBidiLevels assigns an embedding level to every rune.
// RTL runs get the lowest odd level at or above the paragraph level and
// LTR runs the lowest even level, which is all the reordering step needs
// for the single-paragraph strings handled here.
func (s *BidiSegmenter) computeBidiLevels(text string, n int) []int {
	base := s.baseLevel()
	levels := make([]int, n)
	for i := range levels {
		levels[i] = base
	}

	defaultDir := bidi.LeftToRight
	if s.BaseDirection.IsRTL() {
		defaultDir = bidi.RightToLeft
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns RUNE indices (start, end inclusive)
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		level := base
		switch {
		case run.Direction() == bidi.RightToLeft && base%2 == 0:
			level = base + 1
		case run.Direction() == bidi.LeftToRight && base%2 == 1:
			level = base + 1
		}
		for j := startRune; j <= endRune && j < n; j++ {
			levels[j] = level
		}
	}

	return levels
}

// resolveScripts looks up the script of every rune and resolves Common and
// Inherited characters (digits, spaces, marks) from their neighbours.
func resolveScripts(runes []rune) []language.Script {
	scripts := make([]language.Script, len(runes))
	for i, r := range runes {
		scripts[i] = language.LookupScript(r)
	}

	last := language.Common
	for i := range scripts {
		if scripts[i] == language.Inherited {
			scripts[i] = last
		} else if scripts[i] != language.Common {
			last = scripts[i]
		}
	}

	last = language.Common
	for i := range scripts {
		if scripts[i] != language.Common {
			last = scripts[i]
			continue
		}
		scripts[i] = resolveCommonScript(last, findNextConcreteScript(scripts, i+1))
	}

	return scripts
}

// findNextConcreteScript finds the next non-Common, non-Inherited script starting at index start.
func findNextConcreteScript(scripts []language.Script, start int) language.Script {
	for j := start; j < len(scripts); j++ {
		if scripts[j] != language.Common && scripts[j] != language.Inherited {
			return scripts[j]
		}
	}
	return language.Common
}

// resolveCommonScript determines what script a Common character should inherit.
func resolveCommonScript(prev, next language.Script) language.Script {
	switch {
	case prev != language.Common:
		return prev
	case next != language.Common:
		return next
	default:
		return language.Common
	}
}

func buildSegments(text string, runes []rune, levels []int, scripts []language.Script) []Segment {
	segments := make([]Segment, 0, 4)
	byteOffsets := computeByteOffsets(text, runes)

	currentLevel := levels[0]
	currentScript := scripts[0]
	start := 0

	for i := 1; i < len(runes); i++ {
		if levels[i] == currentLevel && scripts[i] == currentScript {
			continue
		}
		segments = append(segments, makeSegment(text, byteOffsets, start, i, currentLevel, currentScript))
		start = i
		currentLevel = levels[i]
		currentScript = scripts[i]
	}

	return append(segments, makeSegment(text, byteOffsets, start, len(runes), currentLevel, currentScript))
}

func computeByteOffsets(text string, runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		offsets[i] = offset
		offset += len(string(r))
	}
	offsets[len(runes)] = len(text)
	return offsets
}

func makeSegment(text string, byteOffsets []int, startRune, endRune, level int, script language.Script) Segment {
	dir := DirectionLTR
	if level%2 == 1 {
		dir = DirectionRTL
	}

	return Segment{
		Text:      text[byteOffsets[startRune]:byteOffsets[endRune]],
		Start:     byteOffsets[startRune],
		End:       byteOffsets[endRune],
		RuneStart: startRune,
		Direction: dir,
		Script:    script,
		Level:     level,
	}
}

// VisualOrder returns the segments reordered for display (rule L2 of the
// bidi algorithm): from the highest level down to the lowest odd level,
// every maximal sequence of segments at that level or above is reversed.
// The input slice is not modified.
func VisualOrder(segments []Segment) []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments)
	if len(out) < 2 {
		return out
	}

	highest, lowestOdd := 0, -1
	for _, s := range out {
		if s.Level > highest {
			highest = s.Level
		}
		if s.Level%2 == 1 && (lowestOdd < 0 || s.Level < lowestOdd) {
			lowestOdd = s.Level
		}
	}
	if lowestOdd < 0 {
		return out
	}

	for level := highest; level >= lowestOdd; level-- {
		for i := 0; i < len(out); {
			if out[i].Level < level {
				i++
				continue
			}
			j := i
			for j < len(out) && out[j].Level >= level {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				out[a], out[b] = out[b], out[a]
			}
			i = j
		}
	}

	return out
}

// SegmentText segments text with a left-to-right paragraph direction.
func SegmentText(text string) []Segment {
	return NewBidiSegmenter(DirectionLTR).Segment(text)
}

// SegmentTextRTL segments text with a right-to-left paragraph direction.
func SegmentTextRTL(text string) []Segment {
	return NewBidiSegmenter(DirectionRTL).Segment(text)
}
