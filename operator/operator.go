// Package operator implements the operator library spec §4.9/§9
// describes: named operators with formal parameters, a result type, an
// algebraic-properties record, and an optional native handler for
// operators whose behavior isn't expressible as rewrite rules alone
// (arithmetic, regex matching, and the like).
package operator

import (
	"context"

	"github.com/termwoven/rewrite/atom"
)

// Handler implements an operator natively rather than purely through
// rewrite rules. It receives the Apply's argument atom as it stands at
// that step (the rewrite driver normalizes it first only when children
// are normalized before the root) and a bindings value (the rewrite
// driver passes empty bindings), and returns either a replacement atom or
// an error (typically a *rwerr.NativeHandlerError wrapping whatever went
// wrong constructing or running the handler). A nil return with a nil
// error means "no native reduction applies, fall back to rules".
type Handler func(ctx context.Context, op *Operator, arg atom.Atom, bindings atom.Bindings) (atom.Atom, error)

// Operator is one named entry in a Library: its formal parameter type,
// result type, algebraic properties, and an optional native Handler.
type Operator struct {
	name     string
	param    atom.Atom
	result   atom.Atom
	props    atom.Props
	handler  Handler
}

// New constructs an Operator. paramType/resultType may be nil, meaning
// RootANY.
func New(name string, paramType, resultType atom.Atom, props atom.Props, handler Handler) (*Operator, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	if paramType == nil {
		paramType = atom.RootTypeAtom(atom.RootANY)
	}
	if resultType == nil {
		resultType = atom.RootTypeAtom(atom.RootANY)
	}
	return &Operator{name: name, param: paramType, result: resultType, props: props, handler: handler}, nil
}

func (o *Operator) Name() string        { return o.name }
func (o *Operator) ParamType() atom.Atom  { return o.param }
func (o *Operator) ResultType() atom.Atom { return o.result }
func (o *Operator) Properties() atom.Props { return o.props }
func (o *Operator) Handler() Handler     { return o.handler }

// Ref returns the OperatorRef atom naming this operator.
func (o *Operator) Ref() *atom.OperatorRef { return atom.NewOperatorRef(o.name) }

// Apply builds the Apply atom for invoking this operator on arg.
func (o *Operator) Apply(arg atom.Atom) *atom.Apply {
	return atom.NewApply(o.Ref(), arg, o.result)
}
