package matchers

import (
	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/match"
)

// matchAC matches an AtomSeq that is both associative and commutative:
// order is irrelevant, and the last non-constant pattern position, when
// it is a Variable, absorbs the whole leftover pool, regrouped, rather
// than just one element; every other position consumes exactly one
// element. Constants are eliminated up front exactly as in the
// commutative-only case.
func (m Matcher) matchAC(p, s *atom.AtomSeq, bindings atom.Bindings, clock *match.Clock) match.Iterator {
	patIdx, subIdx, ok := eliminateConstants(p, s)
	if !ok {
		return match.Fail
	}
	var results []atom.Bindings
	used := make([]bool, len(subIdx))
	m.acSearch(p, s, patIdx, subIdx, used, 0, bindings, clock, func(b atom.Bindings) {
		results = append(results, b)
	})
	return match.Many(results)
}

func (m Matcher) acSearch(p, s *atom.AtomSeq, patIdx, subIdx []int, used []bool, pos int, bindings atom.Bindings, clock *match.Clock, emit func(atom.Bindings)) {
	if clock.TimedOut() {
		return
	}
	if pos == len(patIdx) {
		for _, u := range used {
			if !u {
				return
			}
		}
		emit(bindings)
		return
	}
	elem := p.At(patIdx[pos])
	last := pos == len(patIdx)-1
	if v, isVar := elem.(*atom.Variable); isVar && last {
		var remaining []atom.Atom
		for i, si := range subIdx {
			if !used[i] {
				remaining = append(remaining, s.At(si))
			}
		}
		if len(remaining) != 1 {
			if regrouped, err := atom.NewAtomSeq(s.Properties(), remaining...); err == nil {
				it := m.matchVariable(v, regrouped, bindings)
				for b := it.Next(); b != nil; b = it.Next() {
					emit(*b)
				}
			}
			return
		}
		// Exactly one leftover element: fall through so the variable
		// can also bind it directly, same as any other position.
	}
	for i, si := range subIdx {
		if used[i] {
			continue
		}
		it := m.Match(elem, s.At(si), bindings, clock)
		used[i] = true
		for b := it.Next(); b != nil; b = it.Next() {
			m.acSearch(p, s, patIdx, subIdx, used, pos+1, *b, clock, emit)
		}
		used[i] = false
	}
}
