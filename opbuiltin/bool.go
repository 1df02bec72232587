package opbuiltin

import (
	"context"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/operator"
	"github.com/termwoven/rewrite/rwerr"
)

// And is the Boolean-and operator: associative, commutative, identity
// true, absorbing false.
func And() *operator.Operator {
	props := atom.Props{Associative: atom.True, Commutative: atom.True, Identity: atom.True, Absorber: atom.False}
	op, err := operator.New("and", nil, atom.RootTypeAtom(atom.RootBOOLEAN), props, foldBool("and", true, atom.False))
	if err != nil {
		panic(err)
	}
	return op
}

// Or is the Boolean-or operator: associative, commutative, identity
// false, absorbing true.
func Or() *operator.Operator {
	props := atom.Props{Associative: atom.True, Commutative: atom.True, Identity: atom.False, Absorber: atom.True}
	op, err := operator.New("or", nil, atom.RootTypeAtom(atom.RootBOOLEAN), props, foldBool("or", false, atom.True))
	if err != nil {
		panic(err)
	}
	return op
}

// foldBool builds a native Handler for an associative/commutative
// Boolean operator whose identity is the literal equal to identityValue:
// any element equal to the operator's Absorber short-circuits the whole
// expression to absorber, and every identity element is simply dropped.
func foldBool(name string, identityValue bool, absorber *atom.Literal) operator.Handler {
	return func(ctx context.Context, op *operator.Operator, arg atom.Atom, bindings atom.Bindings) (atom.Atom, error) {
		seq, ok := arg.(*atom.AtomSeq)
		if !ok {
			return nil, nil
		}
		rest := make([]atom.Atom, 0, seq.Len())
		changed := false
		for _, e := range seq.Elements() {
			lit, isLit := e.(*atom.Literal)
			if isLit && lit.LiteralKind() == atom.LitBoolean {
				if lit.Equal(absorber) {
					return absorber, nil
				}
				if lit.Bool() == identityValue {
					changed = true
					continue
				}
			}
			rest = append(rest, e)
		}
		if !changed {
			return nil, nil
		}
		if len(rest) == 0 {
			return atom.NewBoolean(identityValue), nil
		}
		if len(rest) == 1 {
			return rest[0], nil
		}
		out, err := atom.NewAtomSeq(seq.Properties(), rest...)
		if err != nil {
			return nil, &rwerr.NativeHandlerError{Operator: name, Cause: err}
		}
		return op.Apply(out), nil
	}
}

// Not is the Boolean-negation operator: not associative, not
// commutative, unary. Its native handler inverts a literal Boolean
// argument directly and falls back to rules for anything else.
func Not() *operator.Operator {
	op, err := operator.New("not", atom.RootTypeAtom(atom.RootBOOLEAN), atom.RootTypeAtom(atom.RootBOOLEAN), atom.NoProps,
		func(ctx context.Context, op *operator.Operator, arg atom.Atom, bindings atom.Bindings) (atom.Atom, error) {
			lit, ok := arg.(*atom.Literal)
			if !ok || lit.LiteralKind() != atom.LitBoolean {
				return nil, nil
			}
			return atom.NewBoolean(!lit.Bool()), nil
		})
	if err != nil {
		panic(err)
	}
	return op
}
