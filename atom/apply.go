package atom

// Apply represents one operator invocation: a function-position atom
// (ordinarily an OperatorRef, but left general so a Variable or another
// Apply can sit there during pattern matching), an argument atom, and an
// explicit result type. The result type is a constructor argument rather
// than something Apply derives from an operator library, since atom has
// no dependency on package operator (spec §3.1: "explicit result type").
type Apply struct {
	base
	fn, arg Atom
	result  Atom
}

// NewApply constructs an Apply atom. resultType must not be nil; callers
// that don't know a type statically should pass RootTypeAtom(RootANY).
func NewApply(fn, arg, resultType Atom) *Apply {
	if resultType == nil {
		resultType = RootTypeAtom(RootANY)
	}
	depth := maxInt(fn.Depth(), arg.Depth()) + 1
	deBruijn := maxInt(fn.DeBruijnIndex(), arg.DeBruijnIndex())
	constant := fn.IsConstant() && arg.IsConstant()
	h1 := hash1(KindApply, fn.Hash(), arg.Hash(), resultType.Hash())
	h2 := hash2(KindApply, fn.SecondaryHash(), arg.SecondaryHash(), resultType.SecondaryHash())
	return &Apply{
		base:   newBase(depth, deBruijn, constant, true, h1, h2),
		fn:     fn,
		arg:    arg,
		result: resultType,
	}
}

func (a *Apply) Kind() Kind     { return KindApply }
func (a *Apply) Type() Atom     { return a.result }
func (a *Apply) Fn() Atom       { return a.fn }
func (a *Apply) Arg() Atom      { return a.arg }
func (a *Apply) ResultType() Atom { return a.result }

func (a *Apply) Equal(other Atom) bool {
	o, ok := other.(*Apply)
	return ok && a.fn.Equal(o.fn) && a.arg.Equal(o.arg) && a.result.Equal(o.result)
}

func (a *Apply) String() string {
	return a.fn.String() + "(" + a.arg.String() + ")"
}
