package opbuiltin

import (
	"context"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/operator"
)

// If is the ternary conditional operator: not associative, not
// commutative, fixed arity 3 (condition, then-branch, else-branch). Its
// native handler reduces as soon as the condition has normalized down to
// a Boolean literal; until then it returns (nil, nil) so the driver
// keeps normalizing the condition through ordinary rules.
func If() *operator.Operator {
	op, err := operator.New("if", atom.RootTypeAtom(atom.RootANY), atom.RootTypeAtom(atom.RootANY), atom.NoProps,
		func(ctx context.Context, op *operator.Operator, arg atom.Atom, bindings atom.Bindings) (atom.Atom, error) {
			seq, ok := arg.(*atom.AtomSeq)
			if !ok || seq.Len() != 3 {
				return nil, nil
			}
			cond, ok := seq.At(0).(*atom.Literal)
			if !ok || cond.LiteralKind() != atom.LitBoolean {
				return nil, nil
			}
			if cond.Bool() {
				return seq.At(1), nil
			}
			return seq.At(2), nil
		})
	if err != nil {
		panic(err)
	}
	return op
}
