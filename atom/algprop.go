package atom

import "github.com/termwoven/rewrite/rwerr"

// Props is the five-field algebraic-properties record from spec §3.3. Each
// Boolean-ish slot is nil (None), the literal True/False atom, or an
// arbitrary atom interpreted as "unknown-Boolean" (e.g. a variable whose
// value isn't known until match time). Absorber and Identity are nil or
// an arbitrary atom.
//
// Props is a plain value (not an Atom) used by AtomSeq/Apply for matcher
// dispatch; AlgProp wraps a Props as a first-class atom per spec §3.1 so
// it can appear inside rules and be matched slot-wise (spec §4.4).
type Props struct {
	Associative Atom
	Commutative Atom
	Idempotent  Atom
	Absorber    Atom
	Identity    Atom
}

// NoProps is the empty properties record: a plain sequence matcher, no
// absorber, no identity.
var NoProps = Props{}

func isTrueBool(a Atom) bool {
	lit, ok := a.(*Literal)
	return ok && lit.lkind == LitBoolean && lit.b
}

func boolTyped(a Atom) bool {
	if a == nil {
		return true
	}
	return a.Type().Equal(RootTypeAtom(RootBOOLEAN))
}

// Validate enforces spec §3.3's constraints: idempotency, absorber, or
// identity require associativity, and the three Boolean slots must in
// fact be Boolean-typed.
func (p Props) Validate() error {
	if !boolTyped(p.Associative) {
		return &rwerr.IllegalPropertiesError{Reason: "associative slot is not Boolean-typed"}
	}
	if !boolTyped(p.Commutative) {
		return &rwerr.IllegalPropertiesError{Reason: "commutative slot is not Boolean-typed"}
	}
	if !boolTyped(p.Idempotent) {
		return &rwerr.IllegalPropertiesError{Reason: "idempotent slot is not Boolean-typed"}
	}
	assoc := isTrueBool(p.Associative)
	if p.Idempotent != nil && !assoc {
		return &rwerr.IllegalPropertiesError{Reason: "idempotent requires associative"}
	}
	if p.Absorber != nil && !assoc {
		return &rwerr.IllegalPropertiesError{Reason: "absorber requires associative"}
	}
	if p.Identity != nil && !assoc {
		return &rwerr.IllegalPropertiesError{Reason: "identity requires associative"}
	}
	return nil
}

// IsAssociative, IsCommutative, IsIdempotent report the resolved Boolean
// value of each slot; only a literal `true` enables the corresponding
// matching mode (spec §4.1: "only properties that resolve to a Boolean
// true enable the corresponding matching mode").
func (p Props) IsAssociative() bool { return isTrueBool(p.Associative) }
func (p Props) IsCommutative() bool { return isTrueBool(p.Commutative) }
func (p Props) IsIdempotent() bool  { return isTrueBool(p.Idempotent) }

// Join returns a new Props where each slot of q, if present (non-nil),
// overrides the corresponding slot of p (spec §3.3).
func (p Props) Join(q Props) Props {
	out := p
	if q.Associative != nil {
		out.Associative = q.Associative
	}
	if q.Commutative != nil {
		out.Commutative = q.Commutative
	}
	if q.Idempotent != nil {
		out.Idempotent = q.Idempotent
	}
	if q.Absorber != nil {
		out.Absorber = q.Absorber
	}
	if q.Identity != nil {
		out.Identity = q.Identity
	}
	return out
}

func (p Props) hashParts() []uint64 {
	return []uint64{
		hashAtomOrNil(p.Associative), hashAtomOrNil(p.Commutative), hashAtomOrNil(p.Idempotent),
		hashAtomOrNil(p.Absorber), hashAtomOrNil(p.Identity),
	}
}

func (p Props) String() string {
	slot := func(name string, a Atom) string {
		if a == nil {
			return ""
		}
		return name + "=" + a.String() + " "
	}
	s := slot("A", p.Associative) + slot("C", p.Commutative) + slot("I", p.Idempotent) +
		slot("absorber", p.Absorber) + slot("identity", p.Identity)
	if s == "" {
		return "{}"
	}
	return "{" + s[:len(s)-1] + "}"
}

func (p Props) equal(o Props) bool {
	return atomEqualOrNil(p.Associative, o.Associative) &&
		atomEqualOrNil(p.Commutative, o.Commutative) &&
		atomEqualOrNil(p.Idempotent, o.Idempotent) &&
		atomEqualOrNil(p.Absorber, o.Absorber) &&
		atomEqualOrNil(p.Identity, o.Identity)
}

// AlgProp is the first-class atom form of Props (spec §3.1).
type AlgProp struct {
	base
	props Props
}

// NewAlgProp validates props and wraps it as an atom. Construction fails
// exactly when Props.Validate would.
func NewAlgProp(props Props) (*AlgProp, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	parts := props.hashParts()
	return &AlgProp{
		base:  newBase(0, 0, true, true, hash1(KindAlgProp, parts...), hash2(KindAlgProp, parts...)),
		props: props,
	}, nil
}

func (a *AlgProp) Kind() Kind  { return KindAlgProp }
func (a *AlgProp) Type() Atom  { return RootTypeAtom(RootANY) }
func (a *AlgProp) Props() Props { return a.props }

func (a *AlgProp) Equal(other Atom) bool {
	o, ok := other.(*AlgProp)
	return ok && a.props.equal(o.props)
}

func (a *AlgProp) String() string { return a.props.String() }
