package atom

import "testing"

func TestBindingsExtendConsistent(t *testing.T) {
	b := EmptyBindings
	b, ok := b.Extend("x", NewIntegerInt64(1))
	if !ok {
		t.Fatal("first extension should always succeed")
	}
	b, ok = b.Extend("x", NewIntegerInt64(1))
	if !ok {
		t.Fatal("re-binding to the same value should succeed")
	}
	if _, ok = b.Extend("x", NewIntegerInt64(2)); ok {
		t.Fatal("re-binding to a different value should fail")
	}
}

func TestBindingsMergeDetectsConflict(t *testing.T) {
	a, _ := EmptyBindings.Extend("x", NewIntegerInt64(1))
	b, _ := EmptyBindings.Extend("x", NewIntegerInt64(2))
	if _, ok := a.Merge(b); ok {
		t.Fatal("merging conflicting bindings should fail")
	}
	c, _ := EmptyBindings.Extend("y", NewIntegerInt64(2))
	merged, ok := a.Merge(c)
	if !ok {
		t.Fatal("merging disjoint bindings should succeed")
	}
	if merged.Len() != 2 {
		t.Fatalf("merged.Len() = %d, want 2", merged.Len())
	}
}

func TestSubstituteReplacesBoundVariablesOnly(t *testing.T) {
	x := NewVariable("x", nil, nil, false, Ordinary)
	y := NewVariable("y", nil, nil, false, Ordinary)
	seq, err := NewAtomSeq(NoProps, x, y, NewIntegerInt64(5))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := EmptyBindings.Extend("x", NewIntegerInt64(9))
	out := b.Substitute(seq).(*AtomSeq)
	if !out.At(0).Equal(NewIntegerInt64(9)) {
		t.Fatalf("bound variable x not substituted: got %v", out.At(0))
	}
	if !out.At(1).Equal(y) {
		t.Fatal("unbound variable y should be left untouched")
	}
}

func TestSubstituteOnConstantSubtreeIsIdentity(t *testing.T) {
	a := NewIntegerInt64(3)
	b, _ := EmptyBindings.Extend("x", NewIntegerInt64(9))
	if got := b.Substitute(a); got != a {
		t.Fatal("substituting into a constant atom should return it unchanged")
	}
}
