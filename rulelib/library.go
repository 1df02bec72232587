package rulelib

import (
	"strings"

	ahocorasick "github.com/pgavlin/aho-corasick"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/rwbits"
	"github.com/termwoven/rewrite/rwerr"
)

// Library holds a set of rules plus the indices that let a rewrite
// driver narrow "which rules could possibly apply to this atom" down
// from a linear scan: a by-Kind index, a by-operator-name index for
// Apply patterns, a ruleset bitset per rule, and a literal-trigger
// prefilter (spec §4.3, §4.6) built with the same Aho-Corasick engine
// the teacher package used for scanning file contents, repointed here at
// the literal/symbol constants reachable from each rule's pattern.
type Library struct {
	rulesets *rulesetRegistry

	rules       []*RewriteRule
	ruleBits    []rwbits.Set
	nameToIndex map[string]int

	kindToRules map[atom.Kind][]int
	opToRules   map[string][]int

	triggerOf    map[string]int
	triggers     []string
	ruleTriggers [][]int
	prefilter    *ahocorasick.AhoCorasick
	dirty        bool

	// AllowUndeclaredRulesets lets AddRule reference a ruleset name
	// that hasn't been declared via Ruleset yet, auto-declaring it,
	// instead of raising NoSuchRulesetError.
	AllowUndeclaredRulesets bool

	// AllowLiteralPatterns is not consulted by AddRule or Candidates:
	// whether a bare-literal pattern root is accepted is decided by
	// NewRule's allowLiteralPatterns argument when the rule is built.
	AllowLiteralPatterns bool
}

// NewLibrary returns an empty Library with only the default ruleset
// declared.
func NewLibrary() *Library {
	return &Library{
		rulesets:    newRulesetRegistry(),
		nameToIndex: make(map[string]int),
		kindToRules: make(map[atom.Kind][]int),
		opToRules:   make(map[string][]int),
		triggerOf:   make(map[string]int),
	}
}

// Ruleset declares name if it isn't already known and returns its bit
// index.
func (l *Library) Ruleset(name string) int { return l.rulesets.getBit(name) }

// RulesetBit looks up a previously declared ruleset's bit index.
func (l *Library) RulesetBit(name string) (int, bool) { return l.rulesets.lookupBit(name) }

// Len reports how many rules (including synthetic completions) the
// library holds.
func (l *Library) Len() int { return len(l.rules) }

// RuleAt returns the rule stored at idx.
func (l *Library) RuleAt(idx int) *RewriteRule { return l.rules[idx] }

// Lookup finds a rule by name.
func (l *Library) Lookup(name string) (*RewriteRule, int, bool) {
	idx, ok := l.nameToIndex[name]
	if !ok {
		return nil, 0, false
	}
	return l.rules[idx], idx, true
}

// AddRule checks that the named rulesets are declared (the rule itself
// is validated by NewRule, not here), indexes it under them (or "default" if
// none given), and appends any synthetic completion rules it implies
// (spec §4.6.1). It returns the indices of every rule actually added,
// the rule itself first.
func (l *Library) AddRule(rule *RewriteRule, rulesets ...string) ([]int, error) {
	if len(rulesets) == 0 {
		rulesets = []string{DefaultRuleset}
	}
	if !l.AllowUndeclaredRulesets {
		for _, rs := range rulesets {
			if _, ok := l.rulesets.lookupBit(rs); !ok {
				return nil, &rwerr.NoSuchRulesetError{Name: rs}
			}
		}
	}
	added := []int{l.insert(rule, rulesets)}
	for _, synth := range Complete(rule) {
		added = append(added, l.insert(synth, rulesets))
	}
	return added, nil
}

func (l *Library) insert(rule *RewriteRule, rulesets []string) int {
	idx := len(l.rules)
	l.rules = append(l.rules, rule)
	l.ruleBits = append(l.ruleBits, l.rulesets.bitsFor(rulesets...))
	if rule.Name != "" {
		l.nameToIndex[rule.Name] = idx
	}
	l.kindToRules[rule.Pattern.Kind()] = append(l.kindToRules[rule.Pattern.Kind()], idx)
	if ap, ok := rule.Pattern.(*atom.Apply); ok {
		if ref, ok := ap.Fn().(*atom.OperatorRef); ok {
			l.opToRules[ref.Name()] = append(l.opToRules[ref.Name()], idx)
		}
	}
	l.ruleTriggers = append(l.ruleTriggers, l.triggersFor(rule.Pattern))
	l.dirty = true
	return idx
}

func (l *Library) triggersFor(a atom.Atom) []int {
	lits := make(map[string]bool)
	collectLiteralTriggers(a, lits)
	if len(lits) == 0 {
		return nil
	}
	idxs := make([]int, 0, len(lits))
	for s := range lits {
		idxs = append(idxs, l.internTrigger(s))
	}
	return idxs
}

func (l *Library) internTrigger(s string) int {
	if i, ok := l.triggerOf[s]; ok {
		return i
	}
	i := len(l.triggers)
	l.triggerOf[s] = i
	l.triggers = append(l.triggers, s)
	return i
}

func collectLiteralTriggers(a atom.Atom, into map[string]bool) {
	switch v := a.(type) {
	case *atom.Literal:
		if v.LiteralKind() == atom.LitString || v.LiteralKind() == atom.LitSymbol {
			into[v.Str()] = true
		}
	case *atom.AtomSeq:
		for _, e := range v.Elements() {
			collectLiteralTriggers(e, into)
		}
	case *atom.Apply:
		collectLiteralTriggers(v.Fn(), into)
		collectLiteralTriggers(v.Arg(), into)
	case *atom.Lambda:
		collectLiteralTriggers(v.Body(), into)
	case *atom.MapPair:
		collectLiteralTriggers(v.Key(), into)
		collectLiteralTriggers(v.Value(), into)
	case *atom.SpecialForm:
		for _, f := range v.Fields() {
			collectLiteralTriggers(f, into)
		}
	}
}

func (l *Library) ensurePrefilter() {
	if !l.dirty {
		return
	}
	l.dirty = false
	if len(l.triggers) == 0 {
		l.prefilter = nil
		return
	}
	builder := ahocorasick.NewAhoCorasickBuilder()
	ac := builder.Build(l.triggers)
	l.prefilter = &ac
}

// Candidates returns the indices of rules that could possibly match
// subject given the active ruleset bitset: narrowed by Kind, by operator
// name for Apply subjects, by ruleset membership, and finally by the
// literal-trigger prefilter when the rule requires a literal the subject
// doesn't carry anywhere beneath it. The result is a superset of the
// rules that will actually match — Candidates never runs the real
// matcher, it only prunes the search.
func (l *Library) Candidates(subject atom.Atom, active rwbits.Set) []int {
	base := l.kindToRules[subject.Kind()]
	if ap, ok := subject.(*atom.Apply); ok {
		if ref, ok := ap.Fn().(*atom.OperatorRef); ok {
			base = intersectSorted(base, l.opToRules[ref.Name()])
		}
	}
	l.ensurePrefilter()
	hit := l.scanTriggers(subject)

	out := make([]int, 0, len(base))
	for _, idx := range base {
		if !l.ruleBits[idx].Intersects(active) {
			continue
		}
		if needed := l.ruleTriggers[idx]; len(needed) > 0 && hit != nil && !anyHit(needed, hit) {
			continue
		}
		out = append(out, idx)
	}
	return out
}

func (l *Library) scanTriggers(subject atom.Atom) map[int]bool {
	if l.prefilter == nil {
		return nil
	}
	lits := make(map[string]bool)
	collectLiteralTriggers(subject, lits)
	if len(lits) == 0 {
		return map[int]bool{}
	}
	var sb strings.Builder
	for s := range lits {
		sb.WriteString(s)
		sb.WriteByte(0)
	}
	hit := make(map[int]bool)
	for _, m := range l.prefilter.FindAll(sb.String()) {
		hit[m.Pattern()] = true
	}
	return hit
}

func anyHit(needed []int, hit map[int]bool) bool {
	for _, t := range needed {
		if hit[t] {
			return true
		}
	}
	return false
}

// intersectSorted intersects two ascending slices of rule indices. Rule
// indices are assigned in insertion order, so both kindToRules and
// opToRules entries are already sorted ascending without any extra work.
func intersectSorted(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
