package rewrite

import (
	"context"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/match"
	"github.com/termwoven/rewrite/matchers"
	"github.com/termwoven/rewrite/rulelib"
	"github.com/termwoven/rewrite/rwbits"
	"github.com/termwoven/rewrite/rwerr"
)

// RewriteOnce applies at most one root-level rewrite step to subject:
// the first matching rule among the given rulesets' candidates (spec
// §4.8), with no descent into children and no fixpoint loop. It reports
// whether a rule actually applied. rulesets is optional (spec §6's
// rewrite_once(atom, rulesets)); when omitted it resolves to this
// Context's currently-enabled rulesets.
func (c *Context) RewriteOnce(ctx context.Context, subject atom.Atom, rulesets ...string) (atom.Atom, bool, error) {
	clock := match.NewClock(ctx)
	return c.applyRoot(ctx, subject, c.resolveActive(rulesets), clock)
}

// Rewrite drives subject to normal form under this Context's rules,
// operators, and policy (spec §4.8, §6): repeatedly normalizing children
// (if descent is enabled) and applying root-level rules until none
// apply, the step limit is reached, or the same atom recurs (a rewriting
// cycle, which is not an error — Rewrite simply stops and returns its
// current result). A context deadline on ctx is the one condition that
// does propagate as an error, via rwerr.TimedOutError, from wherever in
// the recursive normalization it is observed — including from within a
// guard evaluation nested arbitrarily deep. rulesets is optional (spec
// §6's rewrite(atom, rulesets)); when omitted it resolves to this
// Context's currently-enabled rulesets.
func (c *Context) Rewrite(ctx context.Context, subject atom.Atom, rulesets ...string) (atom.Atom, error) {
	clock := match.NewClock(ctx)
	return c.normalize(ctx, subject, c.resolveActive(rulesets), clock)
}

// normalize is the memoized entry point every recursive call (children,
// guards) goes through, so that re-normalizing the same atom under the
// same active ruleset bitset anywhere in one call tree is a cache hit
// rather than repeated work (spec §4.7's memoization policy: advisory
// and lossy, never a source of a wrong answer, since cache hits are
// re-verified for structural and ruleset-bitset equality by rulelib.Memo
// itself).
func (c *Context) normalize(ctx context.Context, subject atom.Atom, active rwbits.Set, clock *match.Clock) (atom.Atom, error) {
	if cached, ok := c.memo.Get(subject, active); ok {
		return cached.Atom, nil
	}
	out, applied, err := c.fixpoint(ctx, subject, active, clock)
	if err != nil {
		return subject, err
	}
	c.memo.Put(subject, active, rulelib.MemoResult{Atom: out, Applied: applied})
	return out, nil
}

// fixpoint repeatedly normalizes current's children (per the
// normalize-children ordering policy) and applies a root rule, stopping
// at the first of: no root rule applies, the step limit is exhausted, or
// the atom reached previously within this call recurs (cycle safety).
func (c *Context) fixpoint(ctx context.Context, subject atom.Atom, active rwbits.Set, clock *match.Clock) (atom.Atom, bool, error) {
	current := subject
	var history []atom.Atom
	appliedAny := false
	for step := 0; c.limit <= 0 || step < c.limit; step++ {
		if clock.TimedOut() {
			return current, appliedAny, &rwerr.TimedOutError{During: "rewrite"}
		}
		if c.descend && c.normalizeChildren {
			descended, changed, err := c.descendChildren(ctx, current, active, clock)
			if err != nil {
				return current, appliedAny, err
			}
			if changed {
				current = descended
				appliedAny = true
			}
		}
		next, applied, err := c.applyRoot(ctx, current, active, clock)
		if err != nil {
			return current, appliedAny, err
		}
		if !applied && c.descend && !c.normalizeChildren {
			descended, changed, err := c.descendChildren(ctx, current, active, clock)
			if err != nil {
				return current, appliedAny, err
			}
			if !changed {
				return current, appliedAny, nil
			}
			current = descended
			appliedAny = true
			continue
		}
		if !applied {
			return current, appliedAny, nil
		}
		if recurs(history, next) {
			if c.logger != nil {
				c.logger.Printf("rewrite: cycle detected, stopping at %s", next.String())
			}
			return next, true, nil
		}
		history = append(history, current)
		current = next
		appliedAny = true
	}
	return current, appliedAny, nil
}

func recurs(history []atom.Atom, candidate atom.Atom) bool {
	for _, h := range history {
		if h.Equal(candidate) {
			return true
		}
	}
	return false
}

// applyRoot tries, in order: the subject's operator's native handler (if
// it is an Apply of a defined operator with one), then the first rule
// among Candidates whose pattern actually matches. It never descends
// into children.
//
// Before doing either, it consults subject's clean_rulesets annotation
// (spec §4.7 step 4): if subject is already marked clean under a
// superset of active, no rule in active could possibly still apply to
// it, so applyRoot returns immediately without a match attempt. On every
// other return path except the timeout abort and a native-handler error,
// it marks subject clean under active (step 6: "regardless of success"
// — a rule failing to match is not an error, it's the stable outcome
// the annotation is meant to let future callers skip redoing).
func (c *Context) applyRoot(ctx context.Context, subject atom.Atom, active rwbits.Set, clock *match.Clock) (atom.Atom, bool, error) {
	if clock.TimedOut() {
		return subject, false, &rwerr.TimedOutError{During: "rewrite_once"}
	}
	if subject.CleanRulesets().IsSupersetOf(active) {
		return subject, false, nil
	}
	if ap, ok := subject.(*atom.Apply); ok {
		if ref, ok := ap.Fn().(*atom.OperatorRef); ok {
			if op, found := c.operators.Resolve(ref); found && op.Handler() != nil {
				out, err := op.Handler()(ctx, op, ap.Arg(), atom.EmptyBindings)
				if err != nil {
					return subject, false, err
				}
				if out != nil {
					subject.MarkClean(active)
					return out, true, nil
				}
			}
		}
	}
	guardEval := c.guardEval(ctx, active, clock)
	m := matchers.Matcher{Guard: guardEval}
	for _, idx := range c.rules.Candidates(subject, active) {
		rule := c.rules.RuleAt(idx)
		it := m.Match(rule.Pattern, subject, atom.EmptyBindings, clock)
		for b := it.Next(); b != nil; b = it.Next() {
			if rule.Guard != nil && !guardEval(rule.Guard, *b) {
				continue
			}
			subject.MarkClean(active)
			return b.Substitute(rule.Rewrite), true, nil
		}
	}
	// A guard that hit the deadline reads as unsatisfied; report the
	// timeout here instead of recording a no-match outcome.
	if clock.TimedOut() {
		return subject, false, &rwerr.TimedOutError{During: "rewrite_once"}
	}
	subject.MarkClean(active)
	return subject, false, nil
}

// guardEval closes over ctx, active, and clock so a Variable pattern's
// guard atom is evaluated by fully normalizing it (after substituting
// the candidate binding) and checking it reduced to the literal true
// (spec §4.8's guard-evaluation rule). A guard that fails to normalize
// to a Boolean at all, or that errors, is treated as unsatisfied rather
// than propagating the error — a guard is a predicate, not a
// computation the caller is waiting on.
func (c *Context) guardEval(ctx context.Context, active rwbits.Set, clock *match.Clock) matchers.GuardEval {
	return func(guard atom.Atom, bindings atom.Bindings) bool {
		result, err := c.normalize(ctx, bindings.Substitute(guard), active, clock)
		if err != nil {
			return false
		}
		lit, ok := result.(*atom.Literal)
		return ok && lit.LiteralKind() == atom.LitBoolean && lit.Bool()
	}
}

// descendChildren normalizes a compound atom's immediate children (each
// fully, via the memoized normalize entry point) and rebuilds the atom
// if any child actually changed. Atoms with no children (Literal,
// Variable, RootType, OperatorRef, RulesetRef, AlgProp) are returned
// unchanged.
func (c *Context) descendChildren(ctx context.Context, a atom.Atom, active rwbits.Set, clock *match.Clock) (atom.Atom, bool, error) {
	switch v := a.(type) {
	case *atom.AtomSeq:
		elems := make([]atom.Atom, v.Len())
		changed := false
		for i := 0; i < v.Len(); i++ {
			child, err := c.normalize(ctx, v.At(i), active, clock)
			if err != nil {
				return a, changed, err
			}
			elems[i] = child
			if child != v.At(i) {
				changed = true
			}
		}
		if !changed {
			return a, false, nil
		}
		out, err := atom.NewAtomSeq(v.Properties(), elems...)
		if err != nil {
			return a, false, err
		}
		return out, true, nil
	case *atom.Apply:
		fn, err := c.normalize(ctx, v.Fn(), active, clock)
		if err != nil {
			return a, false, err
		}
		arg, err := c.normalize(ctx, v.Arg(), active, clock)
		if err != nil {
			return a, false, err
		}
		if fn == v.Fn() && arg == v.Arg() {
			return a, false, nil
		}
		return atom.NewApply(fn, arg, v.ResultType()), true, nil
	case *atom.Lambda:
		body, err := c.normalize(ctx, v.Body(), active, clock)
		if err != nil {
			return a, false, err
		}
		if body == v.Body() {
			return a, false, nil
		}
		return atom.NewLambda(v.Bound(), body), true, nil
	case *atom.MapPair:
		key, err := c.normalize(ctx, v.Key(), active, clock)
		if err != nil {
			return a, false, err
		}
		val, err := c.normalize(ctx, v.Value(), active, clock)
		if err != nil {
			return a, false, err
		}
		if key == v.Key() && val == v.Value() {
			return a, false, nil
		}
		return atom.NewMapPair(key, val), true, nil
	default:
		return a, false, nil
	}
}
