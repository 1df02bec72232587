package atom

import "testing"

func TestLiteralEqualAndHash(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Atom
		wantEq bool
	}{
		{"same integer", NewIntegerInt64(3), NewIntegerInt64(3), true},
		{"different integer", NewIntegerInt64(3), NewIntegerInt64(4), false},
		{"same string", NewString("x"), NewString("x"), true},
		{"string vs symbol", NewString("x"), NewSymbol("x"), false},
		{"true vs false", True, False, false},
		{"true vs true", True, NewBoolean(true), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.wantEq {
				t.Errorf("Equal() = %v, want %v", got, tt.wantEq)
			}
			if tt.wantEq && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal atoms %v, %v hashed differently", tt.a, tt.b)
			}
		})
	}
}

func TestDepthIsRecursiveMax(t *testing.T) {
	leaf := NewIntegerInt64(1)
	if leaf.Depth() != 0 {
		t.Fatalf("leaf depth = %d, want 0", leaf.Depth())
	}
	seq, err := NewAtomSeq(NoProps, leaf, NewIntegerInt64(2))
	if err != nil {
		t.Fatal(err)
	}
	if seq.Depth() != 1 {
		t.Fatalf("seq depth = %d, want 1", seq.Depth())
	}
	nested, err := NewAtomSeq(NoProps, seq, leaf)
	if err != nil {
		t.Fatal(err)
	}
	if nested.Depth() != 2 {
		t.Fatalf("nested depth = %d, want 2", nested.Depth())
	}
}

func TestIsConstantPropagatesFreeVariable(t *testing.T) {
	v := NewVariable("x", nil, nil, false, Ordinary)
	if v.IsConstant() {
		t.Fatal("bare variable must not be constant")
	}
	seq, err := NewAtomSeq(NoProps, NewIntegerInt64(1), v)
	if err != nil {
		t.Fatal(err)
	}
	if seq.IsConstant() {
		t.Fatal("sequence containing a free variable must not be constant")
	}
	allLiterals, err := NewAtomSeq(NoProps, NewIntegerInt64(1), NewIntegerInt64(2))
	if err != nil {
		t.Fatal(err)
	}
	if !allLiterals.IsConstant() {
		t.Fatal("sequence of literals must be constant")
	}
}

func TestAtomSeqConstantMap(t *testing.T) {
	v := NewVariable("x", nil, nil, false, Ordinary)
	a := NewIntegerInt64(7)
	seq, err := NewAtomSeq(NoProps, v, a, NewString("hi"))
	if err != nil {
		t.Fatal(err)
	}
	cands := seq.ConstantCandidates(a)
	if len(cands) != 1 || cands[0] != 1 {
		t.Fatalf("ConstantCandidates(7) = %v, want [1]", cands)
	}
	if len(seq.ConstantCandidates(v)) != 0 {
		t.Fatal("a free variable must never appear in the constant map")
	}
}

func TestApplyResultType(t *testing.T) {
	fn := NewOperatorRef("plus")
	a := NewApply(fn, NewIntegerInt64(1), RootTypeAtom(RootINTEGER))
	if !a.Type().Equal(RootTypeAtom(RootINTEGER)) {
		t.Fatalf("Apply.Type() = %v, want INTEGER", a.Type())
	}
	b := NewApply(fn, NewIntegerInt64(1), nil)
	if !b.Type().Equal(RootTypeAtom(RootANY)) {
		t.Fatalf("Apply with nil result type should default to ANY, got %v", b.Type())
	}
}

func TestLambdaDeBruijnClosesOneLevel(t *testing.T) {
	v := NewVariable("x", nil, nil, false, Ordinary)
	body := NewVariable("y", nil, nil, false, Ordinary)
	lam := NewLambda(v, body)
	if lam.DeBruijnIndex() != 0 {
		t.Fatalf("Lambda over a leaf variable body should read index 0, got %d", lam.DeBruijnIndex())
	}
}

func TestRootTypeSelfTyped(t *testing.T) {
	typ := RootTypeAtom(RootTYPE)
	if !typ.Type().Equal(typ) {
		t.Fatal("the type universe must be self-typed")
	}
	if !RootTypeAtom(RootINTEGER).Type().Equal(typ) {
		t.Fatal("non-universe root types must be typed by the type universe")
	}
}

func TestSpecialFormRoundTripsFields(t *testing.T) {
	sf := NewSpecialForm("rule", NewString("pat"), NewString("rewrite"))
	if sf.Len() != 2 || sf.Field(0).(*Literal).Str() != "pat" {
		t.Fatalf("SpecialForm fields not preserved: %v", sf)
	}
	other := NewSpecialForm("rule", NewString("pat"), NewString("rewrite"))
	if !sf.Equal(other) {
		t.Fatal("structurally identical special forms must be equal")
	}
}
