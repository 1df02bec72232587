package operator

import (
	"testing"

	"github.com/termwoven/rewrite/atom"
)

func TestNewRejectsInvalidProps(t *testing.T) {
	if _, err := New("bad", nil, nil, atom.Props{Idempotent: atom.True}, nil); err == nil {
		t.Fatal("idempotent without associative should be rejected at construction")
	}
}

func TestLibraryRedefinitionDoesNotMutatePreviousVersion(t *testing.T) {
	lib := NewLibrary()
	v1, err := New("plus", nil, nil, atom.Props{Associative: atom.True}, nil)
	if err != nil {
		t.Fatal(err)
	}
	lib.Define(v1)
	resolved1, ok := lib.Lookup("plus")
	if !ok || resolved1 != v1 {
		t.Fatal("lookup should resolve to v1")
	}

	v2, err := New("plus", nil, nil, atom.Props{Associative: atom.True, Commutative: atom.True}, nil)
	if err != nil {
		t.Fatal(err)
	}
	lib.Define(v2)

	if resolved1.Properties().IsCommutative() {
		t.Fatal("redefining plus must not retroactively mutate the v1 Operator value")
	}
	resolved2, ok := lib.Lookup("plus")
	if !ok || resolved2 != v2 {
		t.Fatal("lookup should now resolve to v2")
	}
	if len(lib.History("plus")) != 2 {
		t.Fatalf("History should report both versions, got %d", len(lib.History("plus")))
	}
}

func TestOperatorApplyBuildsApplyAtom(t *testing.T) {
	op, err := New("plus", nil, atom.RootTypeAtom(atom.RootINTEGER), atom.Props{Associative: atom.True}, nil)
	if err != nil {
		t.Fatal(err)
	}
	app := op.Apply(atom.NewIntegerInt64(5))
	if !app.Type().Equal(atom.RootTypeAtom(atom.RootINTEGER)) {
		t.Fatalf("Apply built from operator should carry its result type, got %v", app.Type())
	}
}
