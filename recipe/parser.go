// Package recipe parses declarative dataset descriptions.
//
// A recipe file holds one or more dataset blocks:
//
//	// Arabic digits, right to left.
//	dataset digits {
//	  alphabet:   "٠١٢٣٤٥٦٧٨٩"
//	  max-length: 2
//	  font:       "fonts/NotoNaskhArabic-Regular.ttf"
//	  font-size:  24
//	  size:       128x32
//	  direction:  rtl
//	}
//
// Comments start with // or #. Relative font paths are resolved against
// the directory of the recipe file.
package recipe

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	recipeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Size", Pattern: `\d+x\d+`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[{}:;]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(recipeLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
		participle.Unquote("String"),
	)
)

// File is the root AST node of a recipe file.
type File struct {
	Datasets []*Block `parser:"@@*"`
}

// Block is a `dataset <name> { ... }` declaration.
type Block struct {
	Pos    lexer.Position `parser:""`
	Name   string         `parser:"'dataset' @Ident"`
	Fields []*Field       `parser:"'{' ( @@ ';'? )* '}'"`
}

// Field is a `key: value` assignment inside a block.
type Field struct {
	Pos   lexer.Position `parser:""`
	Key   string         `parser:"@Ident ':'"`
	Value *Value         `parser:"@@"`
}

// Value is a field value. Exactly one member is set.
type Value struct {
	Pos    lexer.Position `parser:""`
	String *string        `parser:"  @String"`
	Size   *string        `parser:"| @Size"`
	Number *float64       `parser:"| @Number"`
	Ident  *string        `parser:"| @Ident"`
}

// Kind returns a human-readable name of the value type.
func (v *Value) Kind() string {
	switch {
	case v == nil:
		return "nothing"
	case v.String != nil:
		return "string"
	case v.Size != nil:
		return "size"
	case v.Number != nil:
		return "number"
	case v.Ident != nil:
		return "identifier"
	default:
		return "nothing"
	}
}

// Parse parses recipe source from r. name is used in error positions.
func Parse(name string, r io.Reader) (*File, error) {
	return fileParser.Parse(name, r)
}

// ParseString parses recipe source from a string.
func ParseString(name, src string) (*File, error) {
	return fileParser.ParseString(name, src)
}
