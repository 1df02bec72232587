package rewrite

import (
	"context"
	"testing"
	"time"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/opbuiltin"
	"github.com/termwoven/rewrite/rulelib"
)

func plusSeq(elems ...atom.Atom) *atom.AtomSeq {
	props := atom.Props{Associative: atom.True, Commutative: atom.True, Identity: atom.NewIntegerInt64(0)}
	s, err := atom.NewAtomSeq(props, elems...)
	if err != nil {
		panic(err)
	}
	return s
}

func TestRewriteFoldsArithmeticViaNativeHandler(t *testing.T) {
	ctx := NewContext()
	plus := opbuiltin.Plus()
	ctx.AddOperator(plus)

	expr := plus.Apply(plusSeq(atom.NewIntegerInt64(2), atom.NewIntegerInt64(3), atom.NewIntegerInt64(4)))
	out, err := ctx.Rewrite(context.Background(), expr)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(atom.NewIntegerInt64(9)) {
		t.Fatalf("expected 2+3+4 to fold to 9, got %v", out)
	}
}

func TestRewriteDescendsIntoChildrenBeforeRoot(t *testing.T) {
	ctx := NewContext()
	plus := opbuiltin.Plus()
	ctx.AddOperator(plus)
	ctx.SetNormalizeChildren(true)

	inner := plus.Apply(plusSeq(atom.NewIntegerInt64(1), atom.NewIntegerInt64(1)))
	outer := plus.Apply(plusSeq(inner, atom.NewIntegerInt64(5)))

	out, err := ctx.Rewrite(context.Background(), outer)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(atom.NewIntegerInt64(7)) {
		t.Fatalf("expected nested sums to fold to 7, got %v", out)
	}
}

func TestRewriteAppliesRuleWithGuard(t *testing.T) {
	ctx := NewContext()

	wrap := atom.NewOperatorRef("wrap")
	x := atom.NewVariable("x", nil, nil, false, atom.Ordinary)
	pattern := atom.NewApply(wrap, x, nil)
	isZero := atom.NewApply(atom.NewOperatorRef("is_zero"), x, nil)
	rule, err := rulelib.NewRule("zero-to-none", pattern, atom.NewSymbol("zero"), isZero, false)
	if err != nil {
		t.Fatal(err)
	}

	isZeroOp, err := operatorThatChecksZero()
	if err != nil {
		t.Fatal(err)
	}
	ctx.AddOperator(isZeroOp)
	if err := ctx.AddRule(rule); err != nil {
		t.Fatal(err)
	}

	out, err := ctx.Rewrite(context.Background(), atom.NewApply(wrap, atom.NewIntegerInt64(0), nil))
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(atom.NewSymbol("zero")) {
		t.Fatalf("expected guarded rule to fire on wrap(0), got %v", out)
	}

	unchanged := atom.NewApply(wrap, atom.NewIntegerInt64(1), nil)
	out2, err := ctx.Rewrite(context.Background(), unchanged)
	if err != nil {
		t.Fatal(err)
	}
	if !out2.Equal(unchanged) {
		t.Fatalf("expected guarded rule to decline on wrap(1), got %v", out2)
	}
}

func TestRewriteStopsOnCycleWithoutError(t *testing.T) {
	ctx := NewContext()
	a := atom.NewSymbol("a")
	b := atom.NewSymbol("b")
	ruleAB, err := rulelib.NewRule("a-to-b", a, b, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	ruleBA, err := rulelib.NewRule("b-to-a", b, a, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.AddRule(ruleAB); err != nil {
		t.Fatal(err)
	}
	if err := ctx.AddRule(ruleBA); err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		_, err := ctx.Rewrite(context.Background(), a)
		if err != nil {
			t.Error(err)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("rewrite did not terminate on an a<->b cycle")
	}
}

func TestRewriteRespectsStepLimit(t *testing.T) {
	ctx := NewContext()
	ctx.SetLimit(2)
	incOp, err := operatorThatIncrements()
	if err != nil {
		t.Fatal(err)
	}
	ctx.AddOperator(incOp)

	expr := incOp.Apply(atom.NewIntegerInt64(0))
	out, err := ctx.Rewrite(context.Background(), expr)
	if err != nil {
		t.Fatal(err)
	}
	// Every step replaces inc(n) with inc(n+1), so after exactly 2 steps
	// the result is inc(2): still an inc(...) application, never a bare
	// integer (the handler keeps firing endlessly absent the limit).
	if out.Equal(atom.NewIntegerInt64(2)) {
		t.Fatalf("the handler never yields a bare integer; expected inc(2), got %v", out)
	}
}

func TestRewriteTimesOut(t *testing.T) {
	ctx := NewContext()
	ctx.SetLimit(0)
	incOp, err := operatorThatIncrements()
	if err != nil {
		t.Fatal(err)
	}
	ctx.AddOperator(incOp)

	timedCtx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	time.Sleep(5 * time.Millisecond)

	expr := incOp.Apply(atom.NewIntegerInt64(0))
	_, err = ctx.Rewrite(timedCtx, expr)
	if err == nil {
		t.Fatal("expected a TimedOutError from an already-expired context")
	}
}

func TestContextCloneIsIndependent(t *testing.T) {
	ctx := NewContext()
	ctx.BindGlobal("x", atom.NewIntegerInt64(1))
	clone := ctx.Clone()
	clone.BindGlobal("x", atom.NewIntegerInt64(2))

	orig, _ := ctx.Global("x")
	cloned, _ := clone.Global("x")
	if !orig.Equal(atom.NewIntegerInt64(1)) || !cloned.Equal(atom.NewIntegerInt64(2)) {
		t.Fatal("cloning a Context should not let mutations on one affect the other's globals")
	}
}

func TestEnableDisableRuleset(t *testing.T) {
	ctx := NewContext()
	ctx.DeclareRuleset("extra")
	if err := ctx.DisableRuleset("extra"); err != nil {
		t.Fatal(err)
	}

	a := atom.NewSymbol("a")
	b := atom.NewSymbol("b")
	rule, err := rulelib.NewRule("a-to-b", a, b, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.AddRule(rule, "extra"); err != nil {
		t.Fatal(err)
	}

	out, err := ctx.Rewrite(context.Background(), a)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(a) {
		t.Fatalf("rule filed under a disabled ruleset should not fire, got %v", out)
	}

	if err := ctx.EnableRuleset("extra"); err != nil {
		t.Fatal(err)
	}
	out2, err := ctx.Rewrite(context.Background(), a)
	if err != nil {
		t.Fatal(err)
	}
	if !out2.Equal(b) {
		t.Fatalf("rule should fire once its ruleset is enabled, got %v", out2)
	}
}
