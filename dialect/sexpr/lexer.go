package sexpr

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// tokens defines the lexical grammar as an ordered list of regexes, the
// same shape as a lexer.MustSimple definition anywhere else participle is
// used: each input position is matched against these in order, and the
// first one that matches wins.
var tokens = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "DollarDollarIdent", Pattern: `\$\$[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "DollarIdent", Pattern: `\$[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[(),:]`},
})
