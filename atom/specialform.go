package atom

// SpecialForm is a tagged, fixed-shape payload of child atoms used to
// give otherwise-external constructs (most importantly a serialized
// rewrite rule: name, pattern, rewrite, guard) a first-class
// atom encoding so they can be persisted and replayed through the same
// substrate as everything else (spec §6).
type SpecialForm struct {
	base
	tag    string
	fields []Atom
}

// NewSpecialForm constructs a tagged special form. The "rule" tag is the
// one package rulelib round-trips RewriteRule through; other tags are
// reserved for future extension without needing a new Kind.
func NewSpecialForm(tag string, fields ...Atom) *SpecialForm {
	h1Parts := []uint64{}
	h2Parts := []uint64{}
	constant := true
	depth := 0
	deBruijn := 0
	for _, f := range fields {
		h1Parts = append(h1Parts, f.Hash())
		h2Parts = append(h2Parts, f.SecondaryHash())
		if !f.IsConstant() {
			constant = false
		}
		depth = maxInt(depth, f.Depth())
		deBruijn = maxInt(deBruijn, f.DeBruijnIndex())
	}
	return &SpecialForm{
		base:   newBase(depth+1, deBruijn, constant, true, hash1String(KindSpecialForm, tag, h1Parts...), hash2String(KindSpecialForm, tag, h2Parts...)),
		tag:    tag,
		fields: fields,
	}
}

func (s *SpecialForm) Kind() Kind { return KindSpecialForm }

func (s *SpecialForm) Type() Atom {
	if s.tag == "rule" {
		return RootTypeAtom(RootRULETYPE)
	}
	return RootTypeAtom(RootANY)
}

func (s *SpecialForm) Tag() string     { return s.tag }
func (s *SpecialForm) Fields() []Atom  { return s.fields }
func (s *SpecialForm) Field(i int) Atom { return s.fields[i] }
func (s *SpecialForm) Len() int        { return len(s.fields) }

func (s *SpecialForm) Equal(other Atom) bool {
	o, ok := other.(*SpecialForm)
	if !ok || s.tag != o.tag || len(s.fields) != len(o.fields) {
		return false
	}
	for i := range s.fields {
		if !s.fields[i].Equal(o.fields[i]) {
			return false
		}
	}
	return true
}

func (s *SpecialForm) String() string {
	out := "(" + s.tag
	for _, f := range s.fields {
		out += " " + f.String()
	}
	return out + ")"
}
