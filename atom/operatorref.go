package atom

// OperatorRef names an operator in some operator library without binding
// to a concrete *operator.Operator; package atom has no dependency on
// package operator, so resolution happens at rewrite time by name.
type OperatorRef struct {
	base
	name string
}

func NewOperatorRef(name string) *OperatorRef {
	return &OperatorRef{
		base: newBase(0, 0, true, true, hash1String(KindOperatorRef, name), hash2String(KindOperatorRef, name)),
		name: name,
	}
}

func (r *OperatorRef) Kind() Kind  { return KindOperatorRef }
func (r *OperatorRef) Type() Atom  { return RootTypeAtom(RootOPREF) }
func (r *OperatorRef) Name() string { return r.name }

func (r *OperatorRef) Equal(other Atom) bool {
	o, ok := other.(*OperatorRef)
	return ok && r.name == o.name
}

func (r *OperatorRef) String() string { return "@" + r.name }
