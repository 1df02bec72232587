package atom

// AtomSeq is an ordered sequence of atoms carrying an algebraic-properties
// record (spec §3.1, §3.4). Its constant map records, for every element
// that is itself constant (no free variable), which index it sits at,
// bucketed by hash so the matcher's "constant elimination" pass (spec
// §4.3) can look up a pattern constant in a subject's map in O(1)
// expected time instead of scanning linearly.
type AtomSeq struct {
	base
	props    Props
	elems    []Atom
	constMap map[uint64][]int
}

// NewAtomSeq constructs an AtomSeq. props must already satisfy
// Props.Validate (callers building a seq from an AlgProp atom should
// validate at that point; NewAtomSeq itself re-validates defensively).
func NewAtomSeq(props Props, elems ...Atom) (*AtomSeq, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	constMap := make(map[uint64][]int)
	constant := true
	depth := 0
	deBruijn := 0
	h1Parts := append([]uint64{}, props.hashParts()...)
	h2Parts := append([]uint64{}, props.hashParts()...)
	for i, e := range elems {
		if e.Depth()+1 > depth {
			depth = e.Depth() + 1
		}
		if e.DeBruijnIndex() > deBruijn {
			deBruijn = e.DeBruijnIndex()
		}
		if !e.IsConstant() {
			constant = false
		} else {
			constMap[e.Hash()] = append(constMap[e.Hash()], i)
		}
		h1Parts = append(h1Parts, e.Hash())
		h2Parts = append(h2Parts, e.SecondaryHash())
	}
	if !constantProps(props) {
		constant = false
	}
	return &AtomSeq{
		base:     newBase(depth, deBruijn, constant, true, hash1(KindAtomSeq, h1Parts...), hash2(KindAtomSeq, h2Parts...)),
		props:    props,
		elems:    elems,
		constMap: constMap,
	}, nil
}

func constantProps(p Props) bool {
	for _, a := range []Atom{p.Associative, p.Commutative, p.Idempotent, p.Absorber, p.Identity} {
		if a != nil && !a.IsConstant() {
			return false
		}
	}
	return true
}

func (s *AtomSeq) Kind() Kind      { return KindAtomSeq }
func (s *AtomSeq) Type() Atom      { return RootTypeAtom(RootANY) }
func (s *AtomSeq) Properties() Props { return s.props }
func (s *AtomSeq) Elements() []Atom { return s.elems }
func (s *AtomSeq) Len() int        { return len(s.elems) }
func (s *AtomSeq) At(i int) Atom   { return s.elems[i] }

// ConstantCandidates returns the indices of constant elements whose hash
// matches a's hash, for the caller to disambiguate with Equal.
func (s *AtomSeq) ConstantCandidates(a Atom) []int {
	return s.constMap[a.Hash()]
}

func (s *AtomSeq) Equal(other Atom) bool {
	o, ok := other.(*AtomSeq)
	if !ok || len(s.elems) != len(o.elems) || !s.props.equal(o.props) {
		return false
	}
	for i := range s.elems {
		if !s.elems[i].Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

func (s *AtomSeq) String() string {
	out := "["
	for i, e := range s.elems {
		if i > 0 {
			out += ", "
		}
		out += e.String()
	}
	return out + "]" + s.props.String()
}
