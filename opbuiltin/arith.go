// Package opbuiltin provides a small set of native-handler operators
// that callers register into an operator library or rewrite Context (a
// fresh Context starts with none of them): arithmetic plus/times,
// Boolean and/or, a ternary if, and a regex-match predicate. Each one
// grounds spec §4.9's native-handler seam — "an operator may short-
// circuit purely rule-driven rewriting with a Go closure" — in a
// concrete, testable example.
package opbuiltin

import (
	"context"
	"math/big"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/operator"
	"github.com/termwoven/rewrite/rwerr"
)

// Plus is the arithmetic-plus operator: associative, commutative,
// identity element 0. Its native handler folds every Integer literal in
// the argument sequence into one literal, leaving non-literal elements
// (variables, unresolved subterms) in place.
func Plus() *operator.Operator {
	props := atom.Props{Associative: atom.True, Commutative: atom.True, Identity: atom.NewIntegerInt64(0)}
	op, err := operator.New("plus", nil, atom.RootTypeAtom(atom.RootINTEGER), props,
		foldIntegers("plus", big.NewInt(0), func(acc, v *big.Int) { acc.Add(acc, v) }))
	if err != nil {
		panic(err)
	}
	return op
}

// Times is the arithmetic-times operator: associative, commutative,
// identity element 1, absorbing element 0.
func Times() *operator.Operator {
	props := atom.Props{Associative: atom.True, Commutative: atom.True,
		Identity: atom.NewIntegerInt64(1), Absorber: atom.NewIntegerInt64(0)}
	op, err := operator.New("times", nil, atom.RootTypeAtom(atom.RootINTEGER), props,
		foldIntegers("times", big.NewInt(1), func(acc, v *big.Int) { acc.Mul(acc, v) }))
	if err != nil {
		panic(err)
	}
	return op
}

// foldIntegers builds a native Handler that combines every Integer
// literal element of a sequence argument via combine, starting from
// seed, leaving every other element untouched. An arity-one result
// collapses straight to that element, since an associative operator
// applied to a single argument is the identity function. A handler
// returns (nil, nil) when there is nothing to fold, signaling "fall back
// to ordinary rule matching" to the rewrite driver.
func foldIntegers(name string, seed *big.Int, combine func(acc, v *big.Int)) operator.Handler {
	return func(ctx context.Context, op *operator.Operator, arg atom.Atom, bindings atom.Bindings) (atom.Atom, error) {
		seq, ok := arg.(*atom.AtomSeq)
		if !ok {
			return nil, nil
		}
		acc := new(big.Int).Set(seed)
		foldedCount := 0
		rest := make([]atom.Atom, 0, seq.Len())
		for _, e := range seq.Elements() {
			if lit, ok := e.(*atom.Literal); ok && lit.LiteralKind() == atom.LitInteger {
				combine(acc, lit.Int())
				foldedCount++
				continue
			}
			rest = append(rest, e)
		}
		if foldedCount <= 1 {
			return nil, nil
		}
		elems := append([]atom.Atom{atom.NewInteger(acc)}, rest...)
		if len(elems) == 1 {
			return elems[0], nil
		}
		out, err := atom.NewAtomSeq(seq.Properties(), elems...)
		if err != nil {
			return nil, &rwerr.NativeHandlerError{Operator: name, Cause: err}
		}
		return op.Apply(out), nil
	}
}
