package sexpr

import (
	"testing"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/opbuiltin"
	"github.com/termwoven/rewrite/operator"
)

func testOperators() *operator.Library {
	lib := operator.NewLibrary()
	lib.Define(opbuiltin.Plus())
	lib.Define(opbuiltin.And())
	lib.Define(opbuiltin.Not())
	return lib
}

func TestParseRuleDeclaration(t *testing.T) {
	src := `rule "fold-zero" (plus $x 0) -> $x in arith`
	f, err := New().Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(f.Items) != 1 || f.Items[0].Rule == nil {
		t.Fatalf("expected one rule item, got %#v", f.Items)
	}
	decl := f.Items[0].Rule
	if decl.Name != "fold-zero" {
		t.Errorf("name = %q", decl.Name)
	}
	if len(decl.Rulesets) != 1 || decl.Rulesets[0] != "arith" {
		t.Errorf("rulesets = %v", decl.Rulesets)
	}
	if decl.Pattern.Call == nil || decl.Pattern.Call.Op != "plus" {
		t.Fatalf("pattern not a plus call: %#v", decl.Pattern)
	}
}

func TestParseGuardedRule(t *testing.T) {
	src := `rule "r" $x -> :zero when (not $x) in main`
	f, err := New().Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	decl := f.Items[0].Rule
	if decl.Guard == nil {
		t.Fatalf("expected guard to be parsed")
	}
	if decl.Guard.Call == nil || decl.Guard.Call.Op != "not" {
		t.Errorf("guard = %#v", decl.Guard)
	}
}

func TestParseNormalizeTarget(t *testing.T) {
	src := `normalize: (plus 1 2 3)`
	f, err := New().Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(f.Items) != 1 || f.Items[0].Normalize == nil {
		t.Fatalf("expected one normalize item, got %#v", f.Items)
	}
	if len(f.Items[0].Normalize.Call.Args) != 3 {
		t.Errorf("expected 3 args, got %d", len(f.Items[0].Normalize.Call.Args))
	}
}

func TestBuildAtomLiterals(t *testing.T) {
	b := NewBuilder(testOperators())
	f, err := New().Parse(`normalize: 42`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	a, err := b.BuildAtom(f.Items[0].Normalize)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	lit, ok := a.(*atom.Literal)
	if !ok || lit.Int().Int64() != 42 {
		t.Errorf("got %#v", a)
	}
}

func TestBuildAtomMultiArgCall(t *testing.T) {
	b := NewBuilder(testOperators())
	f, err := New().Parse(`normalize: (plus 1 2 3)`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	a, err := b.BuildAtom(f.Items[0].Normalize)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	app, ok := a.(*atom.Apply)
	if !ok {
		t.Fatalf("expected *atom.Apply, got %#v", a)
	}
	seq, ok := app.Arg().(*atom.AtomSeq)
	if !ok || seq.Len() != 3 {
		t.Errorf("expected a 3-element AtomSeq arg, got %#v", app.Arg())
	}
}

func TestBuildAtomSingleArgCallPassesDirectly(t *testing.T) {
	b := NewBuilder(testOperators())
	f, err := New().Parse(`normalize: (not true)`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	a, err := b.BuildAtom(f.Items[0].Normalize)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	app, ok := a.(*atom.Apply)
	if !ok {
		t.Fatalf("expected *atom.Apply, got %#v", a)
	}
	if _, isSeq := app.Arg().(*atom.AtomSeq); isSeq {
		t.Errorf("single-argument call should not be wrapped in an AtomSeq")
	}
}

func TestBuildRuleProducesMetavariables(t *testing.T) {
	b := NewBuilder(testOperators())
	f, err := New().Parse(`rule "r" (plus $$x 0) -> $$x in arith`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rr, err := b.BuildRule(f.Items[0].Rule)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if rr.Rulesets[0] != "arith" {
		t.Errorf("rulesets = %v", rr.Rulesets)
	}
	rewriteVar, ok := rr.Rule.Rewrite.(*atom.Variable)
	if !ok || !rewriteVar.IsMetavariable() {
		t.Errorf("expected rewrite side to be a metavariable, got %#v", rr.Rule.Rewrite)
	}
}

func TestBuildUnknownOperatorErrors(t *testing.T) {
	b := NewBuilder(testOperators())
	f, err := New().Parse(`normalize: (frobnicate 1)`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := b.BuildAtom(f.Items[0].Normalize); err == nil {
		t.Fatalf("expected an error for an unresolved operator name")
	}
}

func TestBuildFileCollectsRulesAndNormalizeTarget(t *testing.T) {
	b := NewBuilder(testOperators())
	src := `
rule "r1" (plus $x 0) -> $x in main
rule "r2" (not $x) -> $x in main
normalize: (and true false)
`
	f, err := New().Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rules, normalize, err := b.BuildFile(f)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if normalize == nil {
		t.Fatalf("expected a normalize target")
	}
}
