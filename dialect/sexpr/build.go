package sexpr

import (
	"fmt"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/operator"
	"github.com/termwoven/rewrite/rulelib"
)

// Builder converts a parsed *File into atom trees and rules, resolving
// each call's operator name against an operator.Library — the same
// separation the teacher keeps between parsing a YARA rule's condition
// clause (pure syntax) and evaluating it against a scanner.Rules (the
// semantic layer that knows what the named things actually are).
type Builder struct {
	Operators *operator.Library
}

// NewBuilder returns a Builder that resolves call operators against ops.
func NewBuilder(ops *operator.Library) *Builder { return &Builder{Operators: ops} }

// RuleResult bundles a built rule with the ruleset names it was declared
// under, which the caller (typically a rewrite.Context) files it into.
type RuleResult struct {
	Rule     *rulelib.RewriteRule
	Rulesets []string
}

// BuildFile converts every rule declaration and the optional normalize
// target into their runtime forms.
func (b *Builder) BuildFile(f *File) ([]RuleResult, atom.Atom, error) {
	var rules []RuleResult
	var normalize atom.Atom
	for _, item := range f.Items {
		switch {
		case item.Rule != nil:
			rr, err := b.BuildRule(item.Rule)
			if err != nil {
				return nil, nil, err
			}
			rules = append(rules, rr)
		case item.Normalize != nil:
			a, err := b.BuildAtom(item.Normalize)
			if err != nil {
				return nil, nil, err
			}
			normalize = a
		}
	}
	return rules, normalize, nil
}

// BuildRule converts one parsed rule declaration into a *rulelib.RewriteRule
// plus the ruleset names it names.
func (b *Builder) BuildRule(d *RuleDecl) (RuleResult, error) {
	pattern, err := b.BuildAtom(d.Pattern)
	if err != nil {
		return RuleResult{}, fmt.Errorf("rule %q: pattern: %w", d.Name, err)
	}
	rewrite, err := b.BuildAtom(d.Rewrite)
	if err != nil {
		return RuleResult{}, fmt.Errorf("rule %q: rewrite: %w", d.Name, err)
	}
	var guard atom.Atom
	if d.Guard != nil {
		guard, err = b.BuildAtom(d.Guard)
		if err != nil {
			return RuleResult{}, fmt.Errorf("rule %q: guard: %w", d.Name, err)
		}
	}
	rule, err := rulelib.NewRule(d.Name, pattern, rewrite, guard, false)
	if err != nil {
		return RuleResult{}, err
	}
	return RuleResult{Rule: rule, Rulesets: d.Rulesets}, nil
}

// BuildAtom converts one parsed s-expression into an atom.Atom. A call's
// operator name is resolved against b.Operators; a single argument is
// passed directly as the Apply's argument, multiple arguments are
// wrapped in an AtomSeq carrying the operator's declared properties —
// matching how every opbuiltin handler expects its argument shaped
// (unary operators like Not take the bare argument, n-ary ones like Plus
// take an AtomSeq).
func (b *Builder) BuildAtom(e *SExpr) (atom.Atom, error) {
	switch {
	case e.Int != nil:
		return atom.NewIntegerInt64(*e.Int), nil
	case e.Str != nil:
		return atom.NewString(*e.Str), nil
	case e.Bool != nil:
		return atom.NewBoolean(*e.Bool == "true"), nil
	case e.Sym != nil:
		return atom.NewSymbol(*e.Sym), nil
	case e.MetaVar != nil:
		return atom.NewVariable((*e.MetaVar)[2:], nil, nil, false, atom.Meta), nil
	case e.Var != nil:
		return atom.NewVariable((*e.Var)[1:], nil, nil, false, atom.Ordinary), nil
	case e.Call != nil:
		return b.buildCall(e.Call)
	default:
		return nil, fmt.Errorf("empty s-expression")
	}
}

func (b *Builder) buildCall(c *CallExpr) (atom.Atom, error) {
	op, ok := b.Operators.Lookup(c.Op)
	if !ok {
		return nil, fmt.Errorf("unknown operator %q", c.Op)
	}
	if len(c.Args) == 0 {
		return nil, fmt.Errorf("operator %q: no arguments given", c.Op)
	}
	args := make([]atom.Atom, len(c.Args))
	for i, a := range c.Args {
		built, err := b.BuildAtom(a)
		if err != nil {
			return nil, fmt.Errorf("operator %q argument %d: %w", c.Op, i, err)
		}
		args[i] = built
	}
	if len(args) == 1 {
		return op.Apply(args[0]), nil
	}
	seq, err := atom.NewAtomSeq(op.Properties(), args...)
	if err != nil {
		return nil, fmt.Errorf("operator %q: %w", c.Op, err)
	}
	return op.Apply(seq), nil
}
