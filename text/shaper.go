package text

import "sync"

// Shaper converts text to positioned glyphs.
type Shaper interface {
	// Shape converts text into a run of positioned glyphs using the given
	// face. The font size is obtained from face.Size() and the paragraph
	// direction from face.Direction().
	Shape(text string, face Face) ShapedRun
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = NewGoTextShaper()
)

// SetShaper sets the global shaper used by Shape().
// Pass nil to reset to the default GoTextShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = NewGoTextShaper()
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
func Shape(text string, face Face) ShapedRun {
	return GetShaper().Shape(text, face)
}
