// Package sexpr is a minimal parenthesized surface notation for atoms
// and rule declarations — the kind of "external dialect" the core term
// algebra and rewrite engine never need to know about. It exists as a
// convenience front end for tests, examples, and the cmd tools, the same
// role the teacher's own parser package plays relative to scanner: a
// separate, separately-testable layer that produces the types the real
// engine operates on, never the other way around.
//
// Grammar, informally:
//
//	file       := item*
//	item       := rule-decl | normalize-decl
//	rule-decl  := "rule" string sexpr "->" sexpr ("when" sexpr)? "in" ident ("," ident)*
//	normalize-decl := "normalize" ":" sexpr
//	sexpr      := int | string | "true" | "false" | ":" ident | "$" ident | "$$" ident | call
//	call       := "(" ident sexpr* ")"
package sexpr

// File is the top-level parse result: every rule declaration in source
// order, plus at most one normalize target.
type File struct {
	Items []*Item `parser:"@@*"`
}

// Item is one top-level declaration.
type Item struct {
	Rule      *RuleDecl `parser:"( @@"`
	Normalize *SExpr    `parser:"| 'normalize' ':' @@ )"`
}

// RuleDecl is one parsed rule declaration: a pattern, a rewrite, an
// optional whole-rule guard, and the ruleset names it's filed under.
type RuleDecl struct {
	Name     string   `parser:"'rule' @String"`
	Pattern  *SExpr   `parser:"@@"`
	Rewrite  *SExpr   `parser:"'->' @@"`
	Guard    *SExpr   `parser:"('when' @@)?"`
	Rulesets []string `parser:"'in' @Ident (',' @Ident)*"`
}

// SExpr is one parsed atom expression: exactly one of its fields is set.
type SExpr struct {
	Int     *int64    `parser:"  @Int"`
	Str     *string   `parser:"| @String"`
	Bool    *string   `parser:"| @('true' | 'false')"`
	Sym     *string   `parser:"| ':' @Ident"`
	MetaVar *string   `parser:"| @DollarDollarIdent"`
	Var     *string   `parser:"| @DollarIdent"`
	Call    *CallExpr `parser:"| @@"`
}

// CallExpr is an operator application: the operator's name followed by
// its arguments, parenthesized.
type CallExpr struct {
	Op   string   `parser:"'(' @Ident"`
	Args []*SExpr `parser:"@@* ')'"`
}
