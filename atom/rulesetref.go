package atom

// RulesetRef names a ruleset declared in a rule library, the same way
// OperatorRef names an operator: by name, resolved outside package atom.
type RulesetRef struct {
	base
	name string
}

func NewRulesetRef(name string) *RulesetRef {
	return &RulesetRef{
		base: newBase(0, 0, true, true, hash1String(KindRulesetRef, name), hash2String(KindRulesetRef, name)),
		name: name,
	}
}

func (r *RulesetRef) Kind() Kind  { return KindRulesetRef }
func (r *RulesetRef) Type() Atom  { return RootTypeAtom(RootRSREF) }
func (r *RulesetRef) Name() string { return r.name }

func (r *RulesetRef) Equal(other Atom) bool {
	o, ok := other.(*RulesetRef)
	return ok && r.name == o.name
}

func (r *RulesetRef) String() string { return "#" + r.name }
