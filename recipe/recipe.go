package recipe

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gogpu/ocrset"
	"github.com/gogpu/ocrset/dataset"
	"github.com/gogpu/ocrset/text"
)

// Defaults applied to fields a block leaves out.
const (
	DefaultFontSize = 24
	DefaultWidth    = 128
	DefaultHeight   = 32
)

// Recipe is a decoded dataset block.
type Recipe struct {
	Name      string
	Alphabet  string
	MaxLength int

	// Font is the font file path as written. Empty means the default font.
	Font      string
	FontSize  float64
	Width     int
	Height    int
	Direction text.Direction

	// Dir is the directory relative font paths are resolved against.
	Dir string

	Pos lexer.Position
}

// FontPath returns Font resolved against Dir.
func (r Recipe) FontPath() string {
	if r.Font == "" || filepath.IsAbs(r.Font) || r.Dir == "" {
		return r.Font
	}
	return filepath.Join(r.Dir, r.Font)
}

// Count returns the number of samples the recipe describes.
func (r Recipe) Count() (int, error) {
	return dataset.Count(len([]rune(r.Alphabet)), r.MaxLength)
}

// Dataset builds the dataset described by r. Extra options are applied
// after the recipe's own.
func (r Recipe) Dataset(opts ...dataset.Option) (*dataset.Dataset, error) {
	all := []dataset.Option{dataset.WithRTL(r.Direction.IsRTL())}
	if r.Font == "" {
		all = append(all, dataset.WithFontSource(text.DefaultFontSource()))
	}
	all = append(all, opts...)

	d, err := dataset.New(r.Alphabet, r.MaxLength, r.FontPath(), r.FontSize, r.Width, r.Height, all...)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", r.Name, err)
	}
	return d, nil
}

// Error reports a semantic problem at a position in a recipe file.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("recipe: %s: %s", e.Pos, e.Msg)
}

func errorf(pos lexer.Position, format string, args ...any) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Decode converts a parsed file into recipes, applying defaults and
// validating every field.
func Decode(f *File) ([]Recipe, error) {
	out := make([]Recipe, 0, len(f.Datasets))
	names := make(map[string]lexer.Position, len(f.Datasets))
	for _, b := range f.Datasets {
		if prev, dup := names[b.Name]; dup {
			return nil, errorf(b.Pos, "dataset %q already defined at %s", b.Name, prev)
		}
		names[b.Name] = b.Pos

		r, err := decodeBlock(b)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func decodeBlock(b *Block) (Recipe, error) {
	r := Recipe{
		Name:     b.Name,
		FontSize: DefaultFontSize,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Pos:      b.Pos,
	}

	seen := make(map[string]bool, len(b.Fields))
	for _, f := range b.Fields {
		if seen[f.Key] {
			return Recipe{}, errorf(f.Pos, "duplicate key %q", f.Key)
		}
		seen[f.Key] = true

		if err := r.set(f); err != nil {
			return Recipe{}, err
		}
	}

	if !seen["alphabet"] {
		return Recipe{}, errorf(b.Pos, "dataset %q: missing alphabet", b.Name)
	}
	if !seen["max-length"] {
		return Recipe{}, errorf(b.Pos, "dataset %q: missing max-length", b.Name)
	}
	if _, err := r.Count(); err != nil {
		return Recipe{}, errorf(b.Pos, "dataset %q: %v", b.Name, err)
	}
	return r, nil
}

func (r *Recipe) set(f *Field) error {
	v := f.Value
	switch f.Key {
	case "alphabet":
		s, err := str(f)
		if err != nil {
			return err
		}
		r.Alphabet = s
	case "font":
		s, err := str(f)
		if err != nil {
			return err
		}
		r.Font = s
	case "max-length":
		n, err := integer(f)
		if err != nil {
			return err
		}
		r.MaxLength = n
	case "font-size":
		if v.Number == nil || *v.Number <= 0 {
			return errorf(v.Pos, "font-size: want a positive number, got %s", v.Kind())
		}
		r.FontSize = *v.Number
	case "size":
		if v.Size == nil {
			return errorf(v.Pos, "size: want WIDTHxHEIGHT, got %s", v.Kind())
		}
		w, h, err := parseSize(*v.Size)
		if err != nil {
			return errorf(v.Pos, "size: %v", err)
		}
		r.Width, r.Height = w, h
	case "direction":
		if v.Ident == nil {
			return errorf(v.Pos, "direction: want ltr or rtl, got %s", v.Kind())
		}
		d, ok := text.ParseDirection(*v.Ident)
		if !ok {
			return errorf(v.Pos, "direction: want ltr or rtl, got %q", *v.Ident)
		}
		r.Direction = d
	default:
		return errorf(f.Pos, "unknown key %q", f.Key)
	}
	return nil
}

func str(f *Field) (string, error) {
	if f.Value.String == nil {
		return "", errorf(f.Value.Pos, "%s: want a string, got %s", f.Key, f.Value.Kind())
	}
	return *f.Value.String, nil
}

func integer(f *Field) (int, error) {
	v := f.Value
	if v.Number == nil || *v.Number != math.Trunc(*v.Number) || *v.Number > math.MaxInt32 {
		return 0, errorf(v.Pos, "%s: want a whole number, got %s", f.Key, v.Kind())
	}
	return int(*v.Number), nil
}

func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("malformed size %q", s)
	}
	if w, err = strconv.Atoi(ws); err != nil {
		return 0, 0, err
	}
	if h, err = strconv.Atoi(hs); err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q must be positive", s)
	}
	return w, h, nil
}

// Load parses and decodes the recipe file at path. Relative font paths in
// the file are resolved against its directory.
func Load(path string) ([]Recipe, error) {
	// #nosec G304 -- recipe path is provided by the user
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}
	defer func() {
		_ = fh.Close()
	}()

	f, err := Parse(filepath.Base(path), fh)
	if err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}
	recipes, err := Decode(f)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for i := range recipes {
		recipes[i].Dir = dir
	}
	ocrset.Component("recipe").Debug("loaded", "path", path, "datasets", len(recipes))
	return recipes, nil
}

// Find returns the recipe with the given name.
func Find(recipes []Recipe, name string) (Recipe, bool) {
	for _, r := range recipes {
		if r.Name == name {
			return r, true
		}
	}
	return Recipe{}, false
}
