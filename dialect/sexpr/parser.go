package sexpr

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var grammar = participle.MustBuild[File](
	participle.Lexer(tokens),
	participle.Unquote("String"),
	participle.Elide("Whitespace", "Comment"),
)

// Parser parses sexpr source into a *File.
type Parser struct{}

// New creates a new sexpr parser.
func New() *Parser { return &Parser{} }

// Parse parses sexpr source from a string.
func (p *Parser) Parse(input string) (*File, error) {
	f, err := grammar.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseFile parses sexpr source from a file.
func (p *Parser) ParseFile(filename string) (*File, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return p.Parse(string(content))
}
