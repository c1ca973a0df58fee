package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
//
// The font is parsed twice: by golang.org/x/image/font/sfnt for metrics,
// bounds and outlines, and by go-text/typesetting for shaping. Both views
// share glyph indices, so shaped glyph IDs can be drawn from sfnt outlines.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	mu      sync.RWMutex
	data    []byte
	outline *sfnt.Font
	shaping *font.Font
	closed  bool
	builtin bool

	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	outline, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	s := &FontSource{
		data:    dataCopy,
		outline: outline,
		shaping: face.Font,
	}
	s.addr = s

	s.name = config.name
	if s.name == "" {
		s.name = extractFontName(outline)
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
// Read errors wrap the underlying *fs.PathError.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

var defaultSource = sync.OnceValue(func() *FontSource {
	s, err := NewFontSource(goregular.TTF, WithName("Go Regular"))
	if err != nil {
		panic("text: embedded Go Regular font failed to parse: " + err.Error())
	}
	s.builtin = true
	return s
})

// DefaultFontSource returns the shared built-in font (Go Regular).
// It is used when a requested font cannot be loaded. Close is a no-op on it.
func DefaultFontSource() *FontSource {
	return defaultSource()
}

// Face creates a Face at the specified size in pixels per em.
// Multiple faces can be created from the same FontSource.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &sourceFace{
		source: s,
		size:   size,
		config: config,
	}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Close releases the parsed font data.
// All faces created from this source fail with ErrFontClosed afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()
	if s.builtin {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.data = nil
	s.outline = nil
	s.shaping = nil
	return nil
}

// Err returns ErrFontClosed once Close has been called, nil otherwise.
func (s *FontSource) Err() error {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrFontClosed
	}
	return nil
}

// outlineFont returns the sfnt view of the font.
func (s *FontSource) outlineFont() (*sfnt.Font, error) {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrFontClosed
	}
	return s.outline, nil
}

// shapingFont returns the go-text view of the font.
func (s *FontSource) shapingFont() (*font.Font, error) {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrFontClosed
	}
	return s.shaping, nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the name table,
// falling back to the full name.
func extractFontName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
