package atom

// RootType is the atom representing one of the well-known, built-in type
// atoms enumerated in spec §3.1: ANY, NONE, INTEGER, STRING, BOOLEAN,
// FLOAT, SYMBOL, BITSTRING, BINDING, STRATEGY, OPREF, RSREF, RULETYPE, and
// the type universe TYPE itself. Every root type's Type() is TYPE; TYPE's
// Type() is TYPE.
type RootType struct {
	base
	name RootTypeName
}

func (r *RootType) Kind() Kind { return KindRootType }
func (r *RootType) Name() RootTypeName { return r.name }

func (r *RootType) Type() Atom {
	if r.name == RootTYPE {
		return r
	}
	return rootTypes[RootTYPE]
}

func (r *RootType) Equal(other Atom) bool {
	o, ok := other.(*RootType)
	return ok && o.name == r.name
}

func (r *RootType) String() string { return r.name.String() }

var rootTypes map[RootTypeName]*RootType

func init() {
	rootTypes = make(map[RootTypeName]*RootType, int(RootTYPE)+1)
	for n := RootANY; n <= RootTYPE; n++ {
		h1 := hash1(KindRootType, uint64(n))
		h2 := hash2(KindRootType, uint64(n))
		rootTypes[n] = &RootType{
			base: newBase(0, 0, true, false, h1, h2),
			name: n,
		}
	}
}

// RootTypeAtom returns the singleton atom for the given root type name.
func RootTypeAtom(name RootTypeName) *RootType { return rootTypes[name] }
