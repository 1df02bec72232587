package atom

// MapPair is a key/value association atom. Maps are represented as an
// AtomSeq of MapPairs rather than as a dedicated collection kind, so the
// sequence matcher (commutative or not) is reused directly for map
// pattern matching (spec §3.1).
type MapPair struct {
	base
	key, val Atom
}

// NewMapPair constructs a key/value pair atom.
func NewMapPair(key, val Atom) *MapPair {
	h1 := hash1(KindMapPair, key.Hash(), val.Hash())
	h2 := hash2(KindMapPair, key.SecondaryHash(), val.SecondaryHash())
	return &MapPair{
		base: newBase(maxInt(key.Depth(), val.Depth())+1, maxInt(key.DeBruijnIndex(), val.DeBruijnIndex()),
			key.IsConstant() && val.IsConstant(), true, h1, h2),
		key: key,
		val: val,
	}
}

func (p *MapPair) Kind() Kind { return KindMapPair }
func (p *MapPair) Type() Atom { return RootTypeAtom(RootANY) }
func (p *MapPair) Key() Atom  { return p.key }
func (p *MapPair) Value() Atom { return p.val }

func (p *MapPair) Equal(other Atom) bool {
	o, ok := other.(*MapPair)
	return ok && p.key.Equal(o.key) && p.val.Equal(o.val)
}

func (p *MapPair) String() string {
	return p.key.String() + ": " + p.val.String()
}
