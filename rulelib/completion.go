package rulelib

import (
	"fmt"

	"github.com/termwoven/rewrite/atom"
)

// Complete returns the synthetic companion rules spec §4.6.1 calls for
// when a rule's pattern root is an associative AtomSeq: without
// completion, a rule written against one fixed-arity slice of an
// associative chain ("f(a, b) -> c") would only ever fire when the whole
// chain happened to have exactly that arity. Each synthetic rule extends
// pattern and rewrite with one or more fresh rest variables, wrapped
// back under the same properties, so the rule keeps firing however much
// of the chain is left over once the fixed slice matches.
//
// If the operator is also commutative, a trailing variable can absorb
// any leftover elements regardless of where they'd sit in the original
// order, so exactly one synthetic is needed: a trailing $R.
//
// If the operator is associative but not commutative, order matters, so
// leftover elements can appear before the fixed slice, after it, or on
// both sides — three distinct synthetics are needed: a leading $L, a
// trailing $R, and both together.
//
// A side of the pattern that already ends (or begins) in a variable is
// left alone for that side: the associative matcher (package matchers)
// already lets such a variable absorb an arbitrary-length remainder
// there, so there is nothing left for completion to add on that side.
func Complete(rule *RewriteRule) []*RewriteRule {
	seq, ok := rule.Pattern.(*atom.AtomSeq)
	if !ok || !seq.Properties().IsAssociative() || seq.Len() == 0 {
		return nil
	}
	_, startsVar := seq.At(0).(*atom.Variable)
	_, endsVar := seq.At(seq.Len() - 1).(*atom.Variable)

	if seq.Properties().IsCommutative() {
		if endsVar {
			return nil
		}
		rest := atom.NewVariable(freshVarName(rule.Pattern, rule.Name, "R"), nil, nil, false, atom.Ordinary)
		synth := buildCompletion(rule, seq, nil, rest)
		if synth == nil {
			return nil
		}
		return []*RewriteRule{synth}
	}

	var out []*RewriteRule
	var left, right *atom.Variable
	if !startsVar {
		left = atom.NewVariable(freshVarName(rule.Pattern, rule.Name, "L"), nil, nil, false, atom.Ordinary)
		if synth := buildCompletion(rule, seq, left, nil); synth != nil {
			out = append(out, synth)
		}
	}
	if !endsVar {
		right = atom.NewVariable(freshVarName(rule.Pattern, rule.Name, "R"), nil, nil, false, atom.Ordinary)
		if synth := buildCompletion(rule, seq, nil, right); synth != nil {
			out = append(out, synth)
		}
	}
	if left != nil && right != nil {
		if synth := buildCompletion(rule, seq, left, right); synth != nil {
			out = append(out, synth)
		}
	}
	return out
}

// buildCompletion builds one synthetic rule extending seq's pattern (and
// rule.Rewrite) with left prepended and/or right appended, whichever is
// non-nil.
func buildCompletion(rule *RewriteRule, seq *atom.AtomSeq, left, right *atom.Variable) *RewriteRule {
	var patElems, rewriteElems []atom.Atom
	if left != nil {
		patElems = append(patElems, left)
		rewriteElems = append(rewriteElems, left)
	}
	patElems = append(patElems, seq.Elements()...)
	rewriteElems = append(rewriteElems, rule.Rewrite)
	if right != nil {
		patElems = append(patElems, right)
		rewriteElems = append(rewriteElems, right)
	}

	pattern, err := atom.NewAtomSeq(seq.Properties(), patElems...)
	if err != nil {
		return nil
	}
	rewrite, err := atom.NewAtomSeq(seq.Properties(), rewriteElems...)
	if err != nil {
		return nil
	}
	return &RewriteRule{
		Name:      rule.Name + "#assoc",
		Pattern:   pattern,
		Rewrite:   rewrite,
		Guard:     rule.Guard,
		Synthetic: true,
	}
}

// freshVarName picks a variable name guaranteed not to collide with any
// variable already free in a, seeded from ruleName and side ("L" or "R")
// so two rules' rest variables don't print identically in diagnostics
// and a rule's own $L and $R synthetics never collide with each other.
func freshVarName(a atom.Atom, ruleName, side string) string {
	used := make(map[string]bool)
	collectVarNames(a, used)
	base := fmt.Sprintf("__rest_%s_%s", ruleName, side)
	name := base
	for n := 0; used[name]; n++ {
		name = fmt.Sprintf("%s_%d", base, n)
	}
	return name
}

func collectVarNames(a atom.Atom, into map[string]bool) {
	switch v := a.(type) {
	case *atom.Variable:
		into[v.Name()] = true
	case *atom.AtomSeq:
		for _, e := range v.Elements() {
			collectVarNames(e, into)
		}
	case *atom.Apply:
		collectVarNames(v.Fn(), into)
		collectVarNames(v.Arg(), into)
	case *atom.Lambda:
		collectVarNames(v.Bound(), into)
		collectVarNames(v.Body(), into)
	case *atom.MapPair:
		collectVarNames(v.Key(), into)
		collectVarNames(v.Value(), into)
	case *atom.SpecialForm:
		for _, f := range v.Fields() {
			collectVarNames(f, into)
		}
	}
}
