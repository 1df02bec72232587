// Package match implements the pull-based match iterator framework spec
// §4 builds every concrete matcher (sequence, commutative, associative,
// AC, AlgProp slot-wise) on top of. A match attempt conceptually produces
// one of three outcomes — Fail, Single, or Many binding sets — but rather
// than materializing "Many" eagerly, every matcher returns an Iterator
// that yields bindings one at a time: Fail is simply an
// iterator that yields nothing, Single one that yields exactly one
// binding set, Many one that yields more than one.
package match

import "github.com/termwoven/rewrite/atom"

// Iterator yields successive candidate binding sets for one match
// attempt. Next returns nil once exhausted; it must continue returning
// nil on every subsequent call (no restart).
type Iterator interface {
	Next() *atom.Bindings
}

type failIter struct{}

func (failIter) Next() *atom.Bindings { return nil }

// Fail is the iterator that yields nothing. It is stateless and safe to
// share.
var Fail Iterator = failIter{}

type singleIter struct {
	b    atom.Bindings
	done bool
}

// Single returns an iterator that yields exactly one binding set.
func Single(b atom.Bindings) Iterator { return &singleIter{b: b} }

func (s *singleIter) Next() *atom.Bindings {
	if s.done {
		return nil
	}
	s.done = true
	return &s.b
}

type sliceIter struct {
	items []atom.Bindings
	pos   int
}

// Many returns an iterator over a precomputed slice of binding sets, in
// order. It is the building block AC and commutative matching use once
// they've enumerated every consistent pairing.
func Many(items []atom.Bindings) Iterator {
	return &sliceIter{items: items}
}

func (s *sliceIter) Next() *atom.Bindings {
	if s.pos >= len(s.items) {
		return nil
	}
	b := s.items[s.pos]
	s.pos++
	return &b
}

// Collect drains an iterator into a slice. Intended for tests and for
// the rewrite driver's top-level "first match" consumption, not for use
// inside a matcher (which should stay lazy so that an outer Fail can
// short-circuit sibling subtrees without evaluating them).
func Collect(it Iterator) []atom.Bindings {
	var out []atom.Bindings
	for b := it.Next(); b != nil; b = it.Next() {
		out = append(out, *b)
	}
	return out
}

// First drains at most one binding set and reports whether the iterator
// produced anything at all.
func First(it Iterator) (atom.Bindings, bool) {
	b := it.Next()
	if b == nil {
		return atom.EmptyBindings, false
	}
	return *b, true
}

type composeIter struct {
	outer    Iterator
	next     func(atom.Bindings) Iterator
	cur      Iterator
	curBase  atom.Bindings
	clock    *Clock
	timedOut bool
}

// Compose sequences two match stages: for every binding set the outer
// iterator produces, next is invoked to build an inner iterator over
// that partial binding, and every inner result that merges consistently
// with the outer one is yielded (spec §4.2's sequential composition via
// flat-map). An inconsistent merge is silently skipped, exactly as if
// the inner iterator had failed for that particular outer binding; it
// does not abort the whole composition.
func Compose(outer Iterator, next func(atom.Bindings) Iterator) Iterator {
	return &composeIter{outer: outer, next: next}
}

// ComposeTimed is Compose with a cooperative cancellation check: once
// clock reports TimedOut, Next stops pulling from outer/inner and
// returns nil, so a long AC search aborts promptly instead of running to
// natural exhaustion (spec §7 cooperative timeout).
func ComposeTimed(outer Iterator, next func(atom.Bindings) Iterator, clock *Clock) Iterator {
	return &composeIter{outer: outer, next: next, clock: clock}
}

func (c *composeIter) Next() *atom.Bindings {
	if c.timedOut {
		return nil
	}
	for {
		if c.clock.TimedOut() {
			c.timedOut = true
			return nil
		}
		if c.cur == nil {
			ob := c.outer.Next()
			if ob == nil {
				return nil
			}
			c.curBase = *ob
			c.cur = c.next(c.curBase)
		}
		ib := c.cur.Next()
		if ib == nil {
			c.cur = nil
			continue
		}
		merged, ok := c.curBase.Merge(*ib)
		if !ok {
			continue
		}
		return &merged
	}
}

// All chains a slice of per-component iterator factories, merging
// bindings pairwise across all of them in order. Used by the sequence
// and AlgProp matchers, which just need "every component must match and
// all bindings must be mutually consistent" with no AC-style
// permutation search involved.
func All(factories []func(atom.Bindings) Iterator) Iterator {
	it := Single(atom.EmptyBindings)
	for _, f := range factories {
		f := f
		it = Compose(it, f)
	}
	return it
}
