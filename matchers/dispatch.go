// Package matchers implements the per-Kind matching rules spec §4
// describes: plain ordered sequences, commutative permutation search,
// associative regrouping, and the combined AC case, plus the
// constant-elimination prefilter (§4.3) and slot-wise AlgProp matching
// (§4.4). Every matcher returns a match.Iterator so an outer Compose can
// stay lazy across arbitrarily deep pattern trees.
package matchers

import (
	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/match"
)

// GuardEval evaluates a variable's guard atom under a candidate binding,
// reporting whether the guard holds. Evaluating a guard generally means
// running it through the rewrite engine (substituting bindings, then
// reducing to a Boolean), which would make package matchers depend on
// package rewrite; injecting it as a callback keeps the dependency
// pointed the other way.
type GuardEval func(guard atom.Atom, bindings atom.Bindings) bool

// Matcher bundles the one piece of matching behavior that needs help
// from outside the atom algebra: guard evaluation. The zero Matcher
// treats every guard as satisfied, which is enough for structural-only
// matching in tests.
type Matcher struct {
	Guard GuardEval
}

// Default is a Matcher with no guard evaluator; every Variable guard is
// treated as trivially satisfied.
var Default = Matcher{}

func (m Matcher) evalGuard(guard atom.Atom, bindings atom.Bindings) bool {
	if guard == nil {
		return true
	}
	if m.Guard == nil {
		return true
	}
	return m.Guard(guard, bindings)
}

// Match attempts to match pattern against a ground subject, extending
// bindings consistently, and dispatches on pattern's Kind (spec §4.1).
func (m Matcher) Match(pattern, subject atom.Atom, bindings atom.Bindings, clock *match.Clock) match.Iterator {
	if clock.TimedOut() {
		return match.Fail
	}
	switch p := pattern.(type) {
	case *atom.Variable:
		return m.matchVariable(p, subject, bindings)
	case *atom.Literal:
		if s, ok := subject.(*atom.Literal); ok && p.Equal(s) {
			return match.Single(bindings)
		}
		return match.Fail
	case *atom.AtomSeq:
		s, ok := subject.(*atom.AtomSeq)
		if !ok {
			return match.Fail
		}
		return m.matchSeq(p, s, bindings, clock)
	case *atom.Apply:
		s, ok := subject.(*atom.Apply)
		if !ok {
			return match.Fail
		}
		return match.ComposeTimed(m.Match(p.Fn(), s.Fn(), bindings, clock), func(b atom.Bindings) match.Iterator {
			return m.Match(p.Arg(), s.Arg(), b, clock)
		}, clock)
	case *atom.Lambda:
		s, ok := subject.(*atom.Lambda)
		if !ok {
			return match.Fail
		}
		return match.ComposeTimed(m.Match(p.Bound(), s.Bound(), bindings, clock), func(b atom.Bindings) match.Iterator {
			return m.Match(p.Body(), s.Body(), b, clock)
		}, clock)
	case *atom.MapPair:
		s, ok := subject.(*atom.MapPair)
		if !ok {
			return match.Fail
		}
		return match.ComposeTimed(m.Match(p.Key(), s.Key(), bindings, clock), func(b atom.Bindings) match.Iterator {
			return m.Match(p.Value(), s.Value(), b, clock)
		}, clock)
	case *atom.AlgProp:
		s, ok := subject.(*atom.AlgProp)
		if !ok {
			return match.Fail
		}
		return m.matchAlgProp(p, s, bindings, clock)
	default:
		// RootType, OperatorRef, RulesetRef, SpecialForm: none of
		// these are bindable pattern positions, so structural
		// equality is the whole of matching.
		if pattern.Equal(subject) {
			return match.Single(bindings)
		}
		return match.Fail
	}
}

func (m Matcher) matchVariable(p *atom.Variable, subject atom.Atom, bindings atom.Bindings) match.Iterator {
	if p.Type() != nil && !p.Type().Equal(atom.RootTypeAtom(atom.RootANY)) && !p.Type().Equal(subject.Type()) {
		return match.Fail
	}
	next, ok := bindings.Extend(p.Name(), subject)
	if !ok {
		return match.Fail
	}
	if !m.evalGuard(p.Guard(), next) {
		return match.Fail
	}
	return match.Single(next)
}

func (m Matcher) matchAlgProp(p, s *atom.AlgProp, bindings atom.Bindings, clock *match.Clock) match.Iterator {
	pp, sp := p.Props(), s.Props()
	slots := [][2]atom.Atom{
		{pp.Associative, sp.Associative},
		{pp.Commutative, sp.Commutative},
		{pp.Idempotent, sp.Idempotent},
		{pp.Absorber, sp.Absorber},
		{pp.Identity, sp.Identity},
	}
	it := match.Single(bindings)
	for _, slot := range slots {
		slot := slot
		it = match.ComposeTimed(it, func(b atom.Bindings) match.Iterator {
			if slot[0] == nil {
				if slot[1] == nil {
					return match.Single(b)
				}
				return match.Fail
			}
			if slot[1] == nil {
				return match.Fail
			}
			return m.Match(slot[0], slot[1], b, clock)
		}, clock)
	}
	return it
}
