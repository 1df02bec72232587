package rewrite

import (
	"context"
	"math/big"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/operator"
)

// operatorThatChecksZero is a test-only operator: reduces an Integer
// literal argument to a Boolean reporting whether it's zero, declining
// on anything else.
func operatorThatChecksZero() (*operator.Operator, error) {
	return operator.New("is_zero", atom.RootTypeAtom(atom.RootINTEGER), atom.RootTypeAtom(atom.RootBOOLEAN), atom.NoProps,
		func(ctx context.Context, op *operator.Operator, arg atom.Atom, bindings atom.Bindings) (atom.Atom, error) {
			lit, ok := arg.(*atom.Literal)
			if !ok || lit.LiteralKind() != atom.LitInteger {
				return nil, nil
			}
			return atom.NewBoolean(lit.Int().Sign() == 0), nil
		})
}

// operatorThatIncrements is a test-only operator that always applies,
// wrapping its result in another application of itself one higher — used
// to exercise the step limit and cooperative timeout without relying on
// any rule ever failing to match.
func operatorThatIncrements() (*operator.Operator, error) {
	return operator.New("inc", atom.RootTypeAtom(atom.RootINTEGER), atom.RootTypeAtom(atom.RootINTEGER), atom.NoProps,
		func(ctx context.Context, op *operator.Operator, arg atom.Atom, bindings atom.Bindings) (atom.Atom, error) {
			lit, ok := arg.(*atom.Literal)
			if !ok || lit.LiteralKind() != atom.LitInteger {
				return nil, nil
			}
			next := new(big.Int).Add(lit.Int(), big.NewInt(1))
			return op.Apply(atom.NewInteger(next)), nil
		})
}
