package rulelib

import "github.com/termwoven/rewrite/rwbits"

// DefaultRuleset is always declared and always occupies bit 0, so a
// Library built without ever calling Ruleset still has a well-defined
// bitset to run rewrite against.
const DefaultRuleset = "default"

// rulesetRegistry assigns each ruleset name a stable bit index, first-
// declared-first-assigned, with "default" wired to bit 0 at construction.
type rulesetRegistry struct {
	bitOf map[string]int
	names []string
}

func newRulesetRegistry() *rulesetRegistry {
	r := &rulesetRegistry{bitOf: make(map[string]int)}
	r.getBit(DefaultRuleset)
	return r
}

// getBit returns name's bit index, assigning the next free index the
// first time name is seen.
func (r *rulesetRegistry) getBit(name string) int {
	if b, ok := r.bitOf[name]; ok {
		return b
	}
	b := len(r.names)
	r.bitOf[name] = b
	r.names = append(r.names, name)
	return b
}

func (r *rulesetRegistry) lookupBit(name string) (int, bool) {
	b, ok := r.bitOf[name]
	return b, ok
}

func (r *rulesetRegistry) nameOf(bit int) string {
	if bit < 0 || bit >= len(r.names) {
		return ""
	}
	return r.names[bit]
}

// bitsFor builds the bitset for a set of ruleset names, declaring any
// name not already known.
func (r *rulesetRegistry) bitsFor(names ...string) rwbits.Set {
	s := rwbits.Set{}
	for _, n := range names {
		s.Set(r.getBit(n))
	}
	return s
}
