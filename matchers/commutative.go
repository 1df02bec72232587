package matchers

import (
	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/match"
)

// matchCommutative matches a commutative-but-not-associative AtomSeq:
// fixed arity, order irrelevant. Constants are eliminated first (spec
// §4.3) so the remaining backtracking search only has to consider
// non-constant elements on both sides.
func (m Matcher) matchCommutative(p, s *atom.AtomSeq, bindings atom.Bindings, clock *match.Clock) match.Iterator {
	patIdx, subIdx, ok := eliminateConstants(p, s)
	if !ok {
		return match.Fail
	}
	var results []atom.Bindings
	used := make([]bool, len(subIdx))
	m.commSearch(p, s, patIdx, subIdx, used, 0, bindings, clock, func(b atom.Bindings) {
		results = append(results, b)
	})
	return match.Many(results)
}

func (m Matcher) commSearch(p, s *atom.AtomSeq, patIdx, subIdx []int, used []bool, pos int, bindings atom.Bindings, clock *match.Clock, emit func(atom.Bindings)) {
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
	for i, si := range subIdx {
		if used[i] {
			continue
		}
		it := m.Match(elem, s.At(si), bindings, clock)
		used[i] = true
		for b := it.Next(); b != nil; b = it.Next() {
			m.commSearch(p, s, patIdx, subIdx, used, pos+1, *b, clock, emit)
		}
		used[i] = false
	}
}
