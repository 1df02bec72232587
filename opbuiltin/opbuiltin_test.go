package opbuiltin

import (
	"context"
	"testing"

	"github.com/termwoven/rewrite/atom"
)

func seq(props atom.Props, elems ...atom.Atom) *atom.AtomSeq {
	s, err := atom.NewAtomSeq(props, elems...)
	if err != nil {
		panic(err)
	}
	return s
}

func TestPlusFoldsIntegerLiterals(t *testing.T) {
	op := Plus()
	x := atom.NewVariable("x", nil, nil, false, atom.Ordinary)
	arg := seq(op.Properties(), atom.NewIntegerInt64(2), atom.NewIntegerInt64(3), x)
	out, err := op.Handler()(context.Background(), op, arg, atom.EmptyBindings)
	if err != nil {
		t.Fatal(err)
	}
	app, ok := out.(*atom.Apply)
	if !ok {
		t.Fatalf("expected the handler to return a plus application, got %v", out)
	}
	got, ok := app.Arg().(*atom.AtomSeq)
	if !ok || got.Len() != 2 {
		t.Fatalf("expected a 2-element folded sequence, got %v", out)
	}
	if !got.At(0).Equal(atom.NewIntegerInt64(5)) {
		t.Fatalf("folded sum should be 5, got %v", got.At(0))
	}
}

func TestPlusHandlerDeclinesWithoutMultipleLiterals(t *testing.T) {
	op := Plus()
	x := atom.NewVariable("x", nil, nil, false, atom.Ordinary)
	arg := seq(op.Properties(), atom.NewIntegerInt64(2), x)
	out, err := op.Handler()(context.Background(), op, arg, atom.EmptyBindings)
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		t.Fatal("with only one literal to fold, the handler should decline (nil, nil)")
	}
}

func TestAndShortCircuitsOnAbsorber(t *testing.T) {
	op := And()
	x := atom.NewVariable("x", nil, nil, false, atom.Ordinary)
	arg := seq(op.Properties(), atom.True, atom.False, x)
	out, err := op.Handler()(context.Background(), op, arg, atom.EmptyBindings)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(atom.False) {
		t.Fatalf("and with a false element should collapse to false, got %v", out)
	}
}

func TestOrDropsIdentityElements(t *testing.T) {
	op := Or()
	x := atom.NewVariable("x", nil, nil, false, atom.Ordinary)
	arg := seq(op.Properties(), atom.False, x)
	out, err := op.Handler()(context.Background(), op, arg, atom.EmptyBindings)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(x) {
		t.Fatalf("or(false, x) should collapse to x, got %v", out)
	}
}

func TestIfSelectsBranchOnLiteralCondition(t *testing.T) {
	op := If()
	arg := seq(atom.NoProps, atom.True, atom.NewIntegerInt64(1), atom.NewIntegerInt64(2))
	out, err := op.Handler()(context.Background(), op, arg, atom.EmptyBindings)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(atom.NewIntegerInt64(1)) {
		t.Fatalf("if(true, 1, 2) should reduce to 1, got %v", out)
	}
}

func TestIfDeclinesOnUnresolvedCondition(t *testing.T) {
	op := If()
	cond := atom.NewVariable("c", nil, nil, false, atom.Ordinary)
	arg := seq(atom.NoProps, cond, atom.NewIntegerInt64(1), atom.NewIntegerInt64(2))
	out, err := op.Handler()(context.Background(), op, arg, atom.EmptyBindings)
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		t.Fatal("if with an unresolved condition should decline to reduce")
	}
}

func TestRegexMatchEvaluatesLiteralSubjectAndPattern(t *testing.T) {
	op := RegexMatch()
	arg := seq(atom.NoProps, atom.NewString("hello.txt"), atom.NewString(`\.txt$`))
	out, err := op.Handler()(context.Background(), op, arg, atom.EmptyBindings)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(atom.True) {
		t.Fatalf("expected a match, got %v", out)
	}
}
