package matchers

import (
	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/match"
)

// matchSeq dispatches an AtomSeq pattern to the matcher its properties
// call for (spec §4.1): plain fixed-order matching when neither
// associative nor commutative is set, and one of the three permutation/
// regrouping matchers otherwise.
func (m Matcher) matchSeq(p, s *atom.AtomSeq, bindings atom.Bindings, clock *match.Clock) match.Iterator {
	props := p.Properties()
	switch {
	case props.IsAssociative() && props.IsCommutative():
		return m.matchAC(p, s, bindings, clock)
	case props.IsCommutative():
		return m.matchCommutative(p, s, bindings, clock)
	case props.IsAssociative():
		return m.matchAssociative(p, s, bindings, clock)
	default:
		return m.matchPlain(p, s, bindings, clock)
	}
}

// matchPlain requires equal length and matches elementwise in order.
func (m Matcher) matchPlain(p, s *atom.AtomSeq, bindings atom.Bindings, clock *match.Clock) match.Iterator {
	if p.Len() != s.Len() {
		return match.Fail
	}
	it := match.Single(bindings)
	for i := 0; i < p.Len(); i++ {
		i := i
		it = match.ComposeTimed(it, func(b atom.Bindings) match.Iterator {
			return m.Match(p.At(i), s.At(i), b, clock)
		}, clock)
	}
	return it
}
