package atom

import (
	"sort"
	"strings"
)

// VariablePrefix marks whether a Variable is an ordinary variable or a
// metavariable (spec §3.1: "prefix (marks ordinary vs. metavariable)").
type VariablePrefix int

const (
	Ordinary VariablePrefix = iota
	Meta
)

func (p VariablePrefix) String() string {
	if p == Meta {
		return "$$"
	}
	return "$"
}

// Variable is a named pattern/binding slot. Guard, when non-nil, is a
// boolean-typed atom that must reduce to true (under the candidate
// binding) for a match against this variable to hold.
type Variable struct {
	base
	name   string
	typ    Atom
	guard  Atom
	labels []string
	byName bool
	prefix VariablePrefix
}

// NewVariable constructs a Variable. labels are deduplicated and sorted so
// that Equal and Hash don't depend on call-site ordering.
func NewVariable(name string, typ Atom, guard Atom, byName bool, prefix VariablePrefix, labels ...string) *Variable {
	lbl := normalizeLabels(labels)
	h1 := hash1String(KindVariable, name, uint64(prefix), boolHash(byName), hashAtomOrNil(typ), hashAtomOrNil(guard), hashLabels(lbl))
	h2 := hash2String(KindVariable, name, uint64(prefix), boolHash(byName), hashAtomOrNilSecondary(typ), hashAtomOrNilSecondary(guard), hashLabels(lbl))
	return &Variable{
		base:   newBase(0, 0, false, true, h1, h2),
		name:   name,
		typ:    typ,
		guard:  guard,
		labels: lbl,
		byName: byName,
		prefix: prefix,
	}
}

func normalizeLabels(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

func hashLabels(labels []string) uint64 {
	h := uint64(fnvOffset64)
	for _, l := range labels {
		h = fnvString(h, l)
	}
	return h
}

func hashAtomOrNil(a Atom) uint64 {
	if a == nil {
		return 0
	}
	return a.Hash()
}

func hashAtomOrNilSecondary(a Atom) uint64 {
	if a == nil {
		return 0
	}
	return a.SecondaryHash()
}

func (v *Variable) Kind() Kind       { return KindVariable }
func (v *Variable) Name() string     { return v.name }
func (v *Variable) Type() Atom       { return v.typ }
func (v *Variable) Guard() Atom      { return v.guard }
func (v *Variable) Labels() []string { return v.labels }
func (v *Variable) ByName() bool     { return v.byName }
func (v *Variable) Prefix() VariablePrefix { return v.prefix }

// IsMetavariable reports whether this variable is a pattern metavariable
// (always-bindable slot) as opposed to an ordinary variable.
func (v *Variable) IsMetavariable() bool { return v.prefix == Meta }

func (v *Variable) Equal(other Atom) bool {
	o, ok := other.(*Variable)
	if !ok {
		return false
	}
	if v.name != o.name || v.byName != o.byName || v.prefix != o.prefix {
		return false
	}
	if !atomEqualOrNil(v.typ, o.typ) || !atomEqualOrNil(v.guard, o.guard) {
		return false
	}
	if len(v.labels) != len(o.labels) {
		return false
	}
	for i := range v.labels {
		if v.labels[i] != o.labels[i] {
			return false
		}
	}
	return true
}

func atomEqualOrNil(a, b Atom) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func (v *Variable) String() string {
	var sb strings.Builder
	sb.WriteString(v.prefix.String())
	sb.WriteString(v.name)
	if len(v.labels) > 0 {
		sb.WriteString(":")
		sb.WriteString(strings.Join(v.labels, ","))
	}
	if v.guard != nil {
		sb.WriteString("{")
		sb.WriteString(v.guard.String())
		sb.WriteString("}")
	}
	return sb.String()
}
