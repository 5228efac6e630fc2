package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[:;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node for a .poster file.
//
//	poster "9:16" Cyber seed 42 {
//	  title: "Hello"
//	}
type Document struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Header []*HeaderArg    `parser:"Newline* 'poster' @@*"`
	Block  *Block          `parser:"@@ Newline*"`
}

// HeaderArg is one token after the `poster` keyword: a quoted aspect, a
// `seed N` pair, or a bare theme name.
type HeaderArg struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Aspect *StringLiteral `parser:"  @String"`
	Seed   *string        `parser:"| 'seed' @Number"`
	Theme  *string        `parser:"| @Ident"`
}

// Block is the `{ ... }` body; statements end at a newline or ';'.
type Block struct {
	Statements []*Assignment `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Assignment sets one poster field, e.g. `title: "Hello"`.
type Assignment struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"':' Newline* @@"`
}

// Value is a quoted string, a number or a bare identifier.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *string        `parser:"| @Number"`
	Ident  *string        `parser:"| @Ident"`
}

// Text returns the textual form of v regardless of its kind.
func (v *Value) Text() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return *v.Number
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
}

// Kind returns the human-readable value type.
func (v *Value) Kind() string {
	switch {
	case v == nil:
		return "empty"
	case v.String != nil:
		return "string"
	case v.Number != nil:
		return "number"
	case v.Ident != nil:
		return "ident"
	default:
		return "empty"
	}
}

// StringLiteral is a quoted string with Go escape rules applied.
type StringLiteral string

// Capture unquotes the raw token.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("字符串字面量缺少取值")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses DSL content from an io.Reader. name is used in error positions.
func Parse(name string, r io.Reader) (*Document, error) {
	return documentParser.Parse(name, r)
}

// ParseString parses a .poster document held in memory.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
