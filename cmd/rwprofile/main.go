// Command rwprofile loads a sexpr source file the same way rewrite does,
// but instead of normalizing its target, it reports per-rule match
// timings sorted slowest first — the rule-engine analogue of the
// teacher's regex-bench, which ranks regex engines by per-pattern match
// time against a corpus.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/termwoven/rewrite/dialect/sexpr"
	"github.com/termwoven/rewrite/opbuiltin"
	"github.com/termwoven/rewrite/operator"
	"github.com/termwoven/rewrite/rewrite"
)

func standardOperators() *operator.Library {
	lib := operator.NewLibrary()
	lib.Define(opbuiltin.Plus())
	lib.Define(opbuiltin.Times())
	lib.Define(opbuiltin.And())
	lib.Define(opbuiltin.Or())
	lib.Define(opbuiltin.Not())
	lib.Define(opbuiltin.If())
	lib.Define(opbuiltin.RegexMatch())
	return lib
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: rwprofile <rules.sexpr>\n")
		os.Exit(1)
	}

	sourceFile := flag.Arg(0)

	p := sexpr.New()
	file, err := p.ParseFile(sourceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing %s: %v\n", sourceFile, err)
		os.Exit(1)
	}

	ops := standardOperators()
	builder := sexpr.NewBuilder(ops)
	ruleResults, target, err := builder.BuildFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building rules: %v\n", err)
		os.Exit(1)
	}
	if target == nil {
		fmt.Fprintf(os.Stderr, "%s: no normalize target declared\n", sourceFile)
		os.Exit(1)
	}

	ctx := rewrite.NewContext()
	for _, op := range ops.Names() {
		o, _ := ops.Lookup(op)
		ctx.AddOperator(o)
	}

	rulesets := map[string]bool{}
	for _, rr := range ruleResults {
		for _, rs := range rr.Rulesets {
			if !rulesets[rs] {
				ctx.DeclareRuleset(rs)
				if err := ctx.EnableRuleset(rs); err != nil {
					fmt.Fprintf(os.Stderr, "error enabling ruleset %s: %v\n", rs, err)
					os.Exit(1)
				}
				rulesets[rs] = true
			}
		}
		if err := ctx.AddRule(rr.Rule, rr.Rulesets...); err != nil {
			fmt.Fprintf(os.Stderr, "error adding rule: %v\n", err)
			os.Exit(1)
		}
	}

	timings := ctx.Profile(context.Background(), target)

	fmt.Printf("%-30s %10s %10s %12s\n", "rule", "attempts", "matches", "duration")
	for _, t := range timings {
		fmt.Printf("%-30s %10d %10d %12s\n", t.Rule, t.Attempts, t.Matches, t.Duration)
	}
}
