package rewrite

import (
	"context"
	"sort"
	"time"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/match"
	"github.com/termwoven/rewrite/matchers"
)

// RuleTiming holds the timing result for a single rule's match attempts
// during one Profile call, the rule-engine analogue of the teacher's
// scanner.RegexTiming.
type RuleTiming struct {
	Rule     string
	Attempts int
	Matches  int
	Duration time.Duration
}

// Profile attempts every candidate rule (as the rule library's
// Candidates proposes them under the active rulesets) against subject's
// whole atom tree (root plus every descendant, the same set descent would
// visit), without applying or rewriting anything, and reports how much
// time each rule spends matching, sorted slowest first.
func (c *Context) Profile(ctx context.Context, subject atom.Atom) []RuleTiming {
	clock := match.NewClock(ctx)
	guardEval := c.guardEval(ctx, c.active, clock)
	m := matchers.Matcher{Guard: guardEval}

	timings := make(map[string]*RuleTiming)
	order := make([]string, 0, c.rules.Len())

	visit := func(a atom.Atom) {
		for _, idx := range c.rules.Candidates(a, c.active) {
			rule := c.rules.RuleAt(idx)
			t, ok := timings[rule.Name]
			if !ok {
				t = &RuleTiming{Rule: rule.Name}
				timings[rule.Name] = t
				order = append(order, rule.Name)
			}

			start := time.Now()
			it := m.Match(rule.Pattern, a, atom.EmptyBindings, clock)
			matched := false
			for b := it.Next(); b != nil; b = it.Next() {
				if rule.Guard != nil && !guardEval(rule.Guard, *b) {
					continue
				}
				matched = true
				break
			}
			t.Duration += time.Since(start)
			t.Attempts++
			if matched {
				t.Matches++
			}
		}
	}

	walk(subject, visit)

	result := make([]RuleTiming, 0, len(order))
	for _, name := range order {
		result = append(result, *timings[name])
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Duration > result[j].Duration })
	return result
}

// walk calls visit on a and every descendant, the same structural
// traversal descendChildren performs while rewriting.
func walk(a atom.Atom, visit func(atom.Atom)) {
	visit(a)
	switch v := a.(type) {
	case *atom.AtomSeq:
		for i := 0; i < v.Len(); i++ {
			walk(v.At(i), visit)
		}
	case *atom.Apply:
		walk(v.Fn(), visit)
		walk(v.Arg(), visit)
	case *atom.Lambda:
		walk(v.Body(), visit)
	case *atom.MapPair:
		walk(v.Key(), visit)
		walk(v.Value(), visit)
	}
}
