package atom

import (
	"sync"

	"github.com/termwoven/rewrite/rwbits"
)

// Atom is the tagged union every term in the algebra implements. Variant
// structs are plain value types (spec §9: "tagged sum, not open
// inheritance"); dispatch on Kind, not type-switches on behavior.
//
// Depth, the De Bruijn index, is_constant/is_term, and both hashes are
// computed once at construction time and never recomputed (spec §3.1
// invariants a-c). CleanRulesets/MarkClean are the one piece of mutable
// state an atom carries: an advisory annotation the rewrite driver stamps
// so that re-submitting an already-normalized subtree under the same (or a
// narrower) ruleset set is a no-op lookup rather than a re-walk. It never
// participates in Equal or Hash.
type Atom interface {
	Kind() Kind
	Type() Atom
	Depth() int
	DeBruijnIndex() int
	IsConstant() bool
	IsTerm() bool
	Hash() uint64
	SecondaryHash() uint64
	CleanRulesets() CleanSet
	MarkClean(CleanSet)
	Equal(Atom) bool
	String() string
}

// CleanSet is the bitset type used for an atom's clean_rulesets annotation.
type CleanSet = rwbits.Set

type cleanMark struct {
	mu   sync.Mutex
	bits CleanSet
}

func (b *base) CleanRulesets() CleanSet {
	if b.clean == nil {
		return CleanSet{}
	}
	b.clean.mu.Lock()
	defer b.clean.mu.Unlock()
	return b.clean.bits.Clone()
}

func (b *base) MarkClean(bits CleanSet) {
	if b.clean == nil {
		return
	}
	b.clean.mu.Lock()
	defer b.clean.mu.Unlock()
	b.clean.bits = b.clean.bits.Union(bits)
}

// base is embedded by every concrete atom variant. It is intentionally
// minimal: only the metadata the invariants in spec §3.1 require every
// atom to carry.
type base struct {
	depth    int
	deBruijn int
	constant bool
	term     bool
	h1       uint64
	h2       uint64
	clean    *cleanMark
}

func (b *base) Depth() int           { return b.depth }
func (b *base) DeBruijnIndex() int   { return b.deBruijn }
func (b *base) IsConstant() bool     { return b.constant }
func (b *base) IsTerm() bool         { return b.term }
func (b *base) Hash() uint64         { return b.h1 }
func (b *base) SecondaryHash() uint64 { return b.h2 }

func newBase(depth, deBruijn int, constant, term bool, h1, h2 uint64) base {
	return base{
		depth:    depth,
		deBruijn: deBruijn,
		constant: constant,
		term:     term,
		h1:       h1,
		h2:       h2,
		clean:    &cleanMark{},
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
