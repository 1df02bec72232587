// Package rulelib implements rewrite rule validation and the rule
// library: bitset-indexed rulesets, by-kind/by-operator/by-name lookup
// tables, a literal-trigger prefilter over rule patterns, and synthetic
// completion rules for associative operators (spec §4.6, §4.6.1, §7).
package rulelib

import (
	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/rwerr"
)

// RewriteRule is a single pattern/rewrite pair plus its optional guard.
// It is kept as a plain struct rather than a first-class atom.Atom so
// that package atom never has to import package rulelib; NewSpecialForm
// is how a rule gets encoded into the algebra when it needs to be
// persisted or replayed (spec §6).
type RewriteRule struct {
	Name      string
	Pattern   atom.Atom
	Rewrite   atom.Atom
	Guard     atom.Atom
	Synthetic bool
}

// NewRule validates and constructs a RewriteRule (spec §7): a bare
// (always-bindable) variable as the pattern root would match anything
// and is rejected outright regardless of prefix — Ordinary and Meta
// variables are both bindable by matchVariable, so both are disallowed
// as a pattern root; a bare literal pattern is rejected unless
// allowLiteralPatterns is set; and a pattern structurally identical to
// its rewrite is rejected as a no-op.
func NewRule(name string, pattern, rewrite, guard atom.Atom, allowLiteralPatterns bool) (*RewriteRule, error) {
	if _, ok := pattern.(*atom.Variable); ok {
		return nil, &rwerr.BindablePatternError{Rule: name}
	}
	if _, ok := pattern.(*atom.Literal); ok && !allowLiteralPatterns {
		return nil, &rwerr.LiteralPatternError{Rule: name}
	}
	if pattern.Equal(rewrite) {
		return nil, &rwerr.IdentityRuleError{Rule: name}
	}
	return &RewriteRule{Name: name, Pattern: pattern, Rewrite: rewrite, Guard: guard}, nil
}

// Encode serializes a rule into a SpecialForm atom (spec §6), tagged
// "rule", field order name/pattern/rewrite/guard. A nil Guard is encoded
// as the NONE root type atom, the closest thing to "absent" the algebra
// has for a field that must always be present to keep field count fixed.
func (r *RewriteRule) Encode() *atom.SpecialForm {
	guard := r.Guard
	if guard == nil {
		guard = atom.RootTypeAtom(atom.RootNONE)
	}
	return atom.NewSpecialForm("rule", atom.NewSymbol(r.Name), r.Pattern, r.Rewrite, guard)
}

// DecodeRule is the inverse of Encode. It does not re-run NewRule's
// validation: a rule that was valid when encoded is assumed to still be
// valid on decode, since the algebra's structural equality is exact.
func DecodeRule(sf *atom.SpecialForm) (*RewriteRule, bool) {
	if sf.Tag() != "rule" || sf.Len() != 4 {
		return nil, false
	}
	nameLit, ok := sf.Field(0).(*atom.Literal)
	if !ok || nameLit.LiteralKind() != atom.LitSymbol {
		return nil, false
	}
	guard := sf.Field(3)
	if rt, ok := guard.(*atom.RootType); ok && rt.Name() == atom.RootNONE {
		guard = nil
	}
	return &RewriteRule{Name: nameLit.Str(), Pattern: sf.Field(1), Rewrite: sf.Field(2), Guard: guard}, true
}
