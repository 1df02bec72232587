// Command rewrite loads a sexpr source file declaring rulesets and rule
// declarations plus a single normalize target, runs it to a fixpoint, and
// prints the result — the rule-engine analogue of the teacher's yargo
// command, which loads a YARA rules file and a scan path.
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

var (
	limit   = flag.Int("limit", 0, "maximum rewrite steps (0 = use the default limit)")
	verbose = flag.Bool("v", false, "has no effect; rewrite steps are not logged")
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
		fmt.Fprintf(os.Stderr, "usage: rewrite [flags] <rules.sexpr>\n")
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

	var opts []rewrite.Option
	if *limit > 0 {
		opts = append(opts, rewrite.WithLimit(*limit))
	}
	ctx := rewrite.NewContext(opts...)
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

	fmt.Fprintf(os.Stderr, "loaded %d rules across %d rulesets\n", len(ruleResults), len(rulesets))

	result, err := ctx.Rewrite(context.Background(), target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error rewriting: %v\n", err)
		os.Exit(1)
	}

	changed := !result.Equal(target)
	fmt.Printf("%s\n", result)
	fmt.Fprintf(os.Stderr, "changed: %v\n", changed)
}
