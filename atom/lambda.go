package atom

// Lambda binds one variable over a body atom. DeBruijnIndex follows the
// usual convention of counting unbound scope levels still open above this
// node: binding one level closes off the outermost free reference in
// body, so Lambda's own index is max(0, body.DeBruijnIndex()-1).
type Lambda struct {
	base
	bound Atom
	body  Atom
}

// NewLambda constructs a Lambda over bound and body. bound is ordinarily a
// *Variable but left as Atom so a pattern can bind over an AlgProp-carrying
// placeholder too.
func NewLambda(bound, body Atom) *Lambda {
	deBruijn := body.DeBruijnIndex() - 1
	if deBruijn < 0 {
		deBruijn = 0
	}
	h1 := hash1(KindLambda, bound.Hash(), body.Hash())
	h2 := hash2(KindLambda, bound.SecondaryHash(), body.SecondaryHash())
	return &Lambda{
		base:  newBase(body.Depth()+1, deBruijn, bound.IsConstant() && body.IsConstant(), true, h1, h2),
		bound: bound,
		body:  body,
	}
}

func (l *Lambda) Kind() Kind  { return KindLambda }
func (l *Lambda) Type() Atom  { return RootTypeAtom(RootANY) }
func (l *Lambda) Bound() Atom { return l.bound }
func (l *Lambda) Body() Atom  { return l.body }

func (l *Lambda) Equal(other Atom) bool {
	o, ok := other.(*Lambda)
	return ok && l.bound.Equal(o.bound) && l.body.Equal(o.body)
}

func (l *Lambda) String() string {
	return "\\" + l.bound.String() + "." + l.body.String()
}
