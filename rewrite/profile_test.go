package rewrite

import (
	"context"
	"testing"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/rulelib"
)

func TestProfileReportsPerRuleMatchCounts(t *testing.T) {
	ctx := NewContext()
	a := atom.NewSymbol("a")
	b := atom.NewSymbol("b")
	c := atom.NewSymbol("c")

	ruleAB, err := rulelib.NewRule("a-to-b", a, b, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	ruleCNone, err := rulelib.NewRule("c-never-fires", c, b, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.AddRule(ruleAB); err != nil {
		t.Fatal(err)
	}
	if err := ctx.AddRule(ruleCNone); err != nil {
		t.Fatal(err)
	}

	timings := ctx.Profile(context.Background(), a)

	var found bool
	for _, tm := range timings {
		if tm.Rule == "a-to-b" {
			found = true
			if tm.Matches != 1 {
				t.Errorf("expected a-to-b to match once, got %d", tm.Matches)
			}
		}
		if tm.Rule == "c-never-fires" {
			t.Errorf("c-never-fires should never have been a candidate against subject %v", a)
		}
	}
	if !found {
		t.Fatalf("expected a timing entry for a-to-b, got %#v", timings)
	}
}

func TestProfileWalksCompoundSubjects(t *testing.T) {
	ctx := NewContext()
	a := atom.NewSymbol("a")
	b := atom.NewSymbol("b")
	rule, err := rulelib.NewRule("a-to-b", a, b, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.AddRule(rule); err != nil {
		t.Fatal(err)
	}

	seq := plusSeq(a, atom.NewIntegerInt64(1))
	timings := ctx.Profile(context.Background(), seq)

	for _, tm := range timings {
		if tm.Rule == "a-to-b" && tm.Attempts >= 1 {
			return
		}
	}
	t.Fatalf("expected a-to-b to be attempted against the nested symbol a, got %#v", timings)
}
