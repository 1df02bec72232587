package matchers

import (
	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/match"
)

// matchAssociative matches an associative-but-not-commutative AtomSeq.
// Order is preserved; any pattern position may be a Variable that
// absorbs a contiguous run of two or more subject elements regrouped
// into a fresh AtomSeq carrying the same properties, so that "(a b) c"
// and "a (b c)" both satisfy a pattern matching the flattened run (spec
// §8 associative regrouping property). A Variable may also take an empty
// run, binding to the properties' Identity, but only when an Identity is
// declared. A non-Variable pattern position always consumes exactly one
// subject element.
func (m Matcher) matchAssociative(p, s *atom.AtomSeq, bindings atom.Bindings, clock *match.Clock) match.Iterator {
	var results []atom.Bindings
	m.assocSearch(p.Elements(), s.Elements(), p.Properties(), bindings, clock, func(b atom.Bindings) {
		results = append(results, b)
	})
	return match.Many(results)
}

func (m Matcher) assocSearch(pat, sub []atom.Atom, props atom.Props, bindings atom.Bindings, clock *match.Clock, emit func(atom.Bindings)) {
	if clock.TimedOut() {
		return
	}
	if len(pat) == 0 {
		if len(sub) == 0 {
			emit(bindings)
		}
		return
	}
	head, rest := pat[0], pat[1:]
	if len(rest) == 0 {
		m.assocConsume(head, sub, props, bindings, clock, emit)
		return
	}
	// Every remaining pattern position after head needs at least one
	// subject element, so head may not claim more than leaves that many.
	maxSplit := len(sub) - len(rest)
	if maxSplit < 0 {
		return
	}
	for split := 0; split <= maxSplit; split++ {
		m.assocConsume(head, sub[:split], props, bindings, clock, func(b atom.Bindings) {
			m.assocSearch(rest, sub[split:], props, b, clock, emit)
		})
	}
}

// assocConsume matches head, a single pattern element, against run, the
// contiguous block of subject elements assigned to it.
func (m Matcher) assocConsume(head atom.Atom, run []atom.Atom, props atom.Props, bindings atom.Bindings, clock *match.Clock, emit func(atom.Bindings)) {
	if len(run) == 1 {
		it := m.Match(head, run[0], bindings, clock)
		for b := it.Next(); b != nil; b = it.Next() {
			emit(*b)
		}
		return
	}
	v, ok := head.(*atom.Variable)
	if !ok {
		return
	}
	if len(run) == 0 {
		if props.Identity == nil {
			return
		}
		it := m.matchVariable(v, props.Identity, bindings)
		for b := it.Next(); b != nil; b = it.Next() {
			emit(*b)
		}
		return
	}
	regrouped, err := atom.NewAtomSeq(props, run...)
	if err != nil {
		return
	}
	it := m.matchVariable(v, regrouped, bindings)
	for b := it.Next(); b != nil; b = it.Next() {
		emit(*b)
	}
}
