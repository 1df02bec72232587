package rulelib

import (
	"strconv"
	"sync"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/rwbits"
)

// MemoResult is the cached outcome of normalizing one atom under one
// ruleset bitset (spec §4.5): the resulting atom, and whether any rule
// actually applied along the way (so a driver can tell "already normal"
// apart from "wasn't looked at").
type MemoResult struct {
	Atom    atom.Atom
	Applied bool
}

// Memo is a (atom, ruleset-bitset) -> MemoResult cache. It is advisory
// and lossy: a miss is always safe, just slower, and every apparent hit
// is re-verified with Equal before being trusted, so a hash collision in
// the bucket key degrades to a miss rather than ever returning a wrong
// answer (spec §4.5).
type Memo struct {
	mu      sync.Mutex
	entries map[string][]memoEntry
}

type memoEntry struct {
	key   atom.Atom
	bits  rwbits.Set
	value MemoResult
}

// NewMemo returns an empty memoization cache.
func NewMemo() *Memo {
	return &Memo{entries: make(map[string][]memoEntry)}
}

func bucketKey(a atom.Atom) string {
	return strconv.FormatUint(a.Hash(), 36) + "/" + strconv.FormatUint(a.SecondaryHash(), 36)
}

// Get returns the cached result for (a, rulesets), if some bucket entry
// is both under the same ruleset bitset and structurally equal to a.
func (m *Memo) Get(a atom.Atom, rulesets rwbits.Set) (MemoResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries[bucketKey(a)] {
		if e.bits.Equal(rulesets) && e.key.Equal(a) {
			return e.value, true
		}
	}
	return MemoResult{}, false
}

// Put records the result of normalizing a under rulesets, replacing any
// existing entry for the same (atom, bitset) pair.
func (m *Memo) Put(a atom.Atom, rulesets rwbits.Set, result MemoResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := bucketKey(a)
	bucket := m.entries[key]
	for i, e := range bucket {
		if e.bits.Equal(rulesets) && e.key.Equal(a) {
			bucket[i].value = result
			return
		}
	}
	m.entries[key] = append(bucket, memoEntry{key: a, bits: rulesets.Clone(), value: result})
}

// Clear discards every cached entry. A rewrite Context calls this after
// every rule it successfully adds; declaring a ruleset does not clear
// the cache.
func (m *Memo) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string][]memoEntry)
}

// Len reports how many entries are cached.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, b := range m.entries {
		n += len(b)
	}
	return n
}
