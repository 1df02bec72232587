package match

import (
	"testing"

	"github.com/termwoven/rewrite/atom"
)

func TestFailYieldsNothing(t *testing.T) {
	if Fail.Next() != nil {
		t.Fatal("Fail must yield nothing")
	}
	if Fail.Next() != nil {
		t.Fatal("Fail must keep yielding nothing on repeated calls")
	}
}

func TestSingleYieldsExactlyOnce(t *testing.T) {
	b, _ := atom.EmptyBindings.Extend("x", atom.NewIntegerInt64(1))
	it := Single(b)
	got := it.Next()
	if got == nil || got.Len() != 1 {
		t.Fatal("Single must yield the provided binding set")
	}
	if it.Next() != nil {
		t.Fatal("Single must yield nothing after its one result")
	}
}

func TestManyYieldsInOrder(t *testing.T) {
	b1, _ := atom.EmptyBindings.Extend("x", atom.NewIntegerInt64(1))
	b2, _ := atom.EmptyBindings.Extend("y", atom.NewIntegerInt64(2))
	it := Many([]atom.Bindings{b1, b2})
	got := Collect(it)
	if len(got) != 2 {
		t.Fatalf("Collect returned %d results, want 2", len(got))
	}
	if _, ok := got[0].Lookup("x"); !ok {
		t.Fatal("first result should bind x")
	}
	if _, ok := got[1].Lookup("y"); !ok {
		t.Fatal("second result should bind y")
	}
}

func TestComposeMergesConsistentBindings(t *testing.T) {
	outerB, _ := atom.EmptyBindings.Extend("x", atom.NewIntegerInt64(1))
	outer := Single(outerB)
	it := Compose(outer, func(b atom.Bindings) Iterator {
		inner, _ := atom.EmptyBindings.Extend("y", atom.NewIntegerInt64(2))
		return Single(inner)
	})
	results := Collect(it)
	if len(results) != 1 || results[0].Len() != 2 {
		t.Fatalf("Compose should merge outer and inner bindings, got %v", results)
	}
}

func TestComposeSkipsInconsistentMerge(t *testing.T) {
	outerB, _ := atom.EmptyBindings.Extend("x", atom.NewIntegerInt64(1))
	outer := Single(outerB)
	it := Compose(outer, func(b atom.Bindings) Iterator {
		inner, _ := atom.EmptyBindings.Extend("x", atom.NewIntegerInt64(99))
		return Single(inner)
	})
	if len(Collect(it)) != 0 {
		t.Fatal("a conflicting inner binding must be dropped, not merged")
	}
}

func TestAllOfEmptyFactoriesYieldsEmptyBindings(t *testing.T) {
	it := All(nil)
	results := Collect(it)
	if len(results) != 1 || results[0].Len() != 0 {
		t.Fatalf("All(nil) should yield exactly one empty binding set, got %v", results)
	}
}

func TestClockNilNeverTimesOut(t *testing.T) {
	var c *Clock
	if c.TimedOut() {
		t.Fatal("nil clock must never report timed out")
	}
}
