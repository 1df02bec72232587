// Package rewrite implements the rewrite driver and its external
// interface (spec §4.8, §6): a Context holds the declared rulesets,
// operator and rule libraries, global variable bindings, and the small
// set of policy knobs (step limit, child descent, normalize-children
// order) that govern how Rewrite drives a term to normal form.
package rewrite

import (
	"log"

	"github.com/termwoven/rewrite/atom"
	"github.com/termwoven/rewrite/operator"
	"github.com/termwoven/rewrite/rulelib"
	"github.com/termwoven/rewrite/rwbits"
	"github.com/termwoven/rewrite/rwerr"
)

// defaultLimit bounds the number of root-level rewrite steps a single
// Rewrite call will take before giving up and returning its best
// current result, as a backstop against a rule set that never reaches a
// fixpoint. 0 (via SetLimit) means unbounded.
const defaultLimit = 10000

// Context is one rewrite engine instance: its own rulesets, rules,
// operators, globals, and policy, but sharing nothing mutable with any
// other Context except through explicit Clone.
type Context struct {
	active rwbits.Set

	operators *operator.Library
	rules     *rulelib.Library
	memo      *rulelib.Memo

	globals map[string]atom.Atom
	logger  *log.Logger

	limit             int
	descend           bool
	normalizeChildren bool
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithLimit overrides the default root-level step bound (0 means
// unbounded).
func WithLimit(n int) Option { return func(c *Context) { c.limit = n } }

// WithDescend overrides whether Rewrite normalizes a compound atom's
// children at all (default true).
func WithDescend(enabled bool) Option { return func(c *Context) { c.descend = enabled } }

// WithNormalizeChildren overrides whether children are normalized before
// (true) or only after no root rule applies (false) at each step
// (default false).
func WithNormalizeChildren(enabled bool) Option {
	return func(c *Context) { c.normalizeChildren = enabled }
}

// WithLogger overrides where cycle-detection diagnostics are written
// (default log.Default()).
func WithLogger(l *log.Logger) Option { return func(c *Context) { c.logger = l } }

// NewContext returns a Context with only the default ruleset declared
// and active, descent enabled, and root-first ordering (children are
// normalized only after no root rule applies; see WithNormalizeChildren)
// unless opts says otherwise.
func NewContext(opts ...Option) *Context {
	rules := rulelib.NewLibrary()
	active := rwbits.Set{}
	active.Set(rules.Ruleset(rulelib.DefaultRuleset))
	c := &Context{
		active:            active,
		operators:         operator.NewLibrary(),
		rules:             rules,
		memo:              rulelib.NewMemo(),
		globals:           make(map[string]atom.Atom),
		logger:            log.Default(),
		limit:             defaultLimit,
		descend:           true,
		normalizeChildren: false,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DeclareRuleset declares name (idempotently) without activating it.
func (c *Context) DeclareRuleset(name string) int { return c.rules.Ruleset(name) }

// EnableRuleset activates a declared ruleset by name, declaring it first
// if AllowUndeclaredRulesets is set on the underlying rule library;
// otherwise an unknown name is an error.
func (c *Context) EnableRuleset(name string) error {
	bit, ok := c.rules.RulesetBit(name)
	if !ok {
		if !c.rules.AllowUndeclaredRulesets {
			return &rwerr.NoSuchRulesetError{Name: name}
		}
		bit = c.rules.Ruleset(name)
	}
	c.active.Set(bit)
	return nil
}

// DisableRuleset deactivates a ruleset; rules filed only under it stop
// being rewrite candidates until it's enabled again.
func (c *Context) DisableRuleset(name string) error {
	bit, ok := c.rules.RulesetBit(name)
	if !ok {
		return &rwerr.NoSuchRulesetError{Name: name}
	}
	c.active.Clear(bit)
	return nil
}

// AddOperator registers op, becoming its name's current version.
func (c *Context) AddOperator(op *operator.Operator) { c.operators.Define(op) }

// AddRule validates and indexes rule (plus any synthetic completions),
// filed under rulesets (or "default" if none given).
func (c *Context) AddRule(rule *rulelib.RewriteRule, rulesets ...string) error {
	_, err := c.rules.AddRule(rule, rulesets...)
	if err == nil {
		c.memo.Clear()
	}
	return err
}

// BindGlobal binds name to value in this Context's global environment.
func (c *Context) BindGlobal(name string, value atom.Atom) { c.globals[name] = value }

// UnbindGlobal removes name from the global environment.
func (c *Context) UnbindGlobal(name string) { delete(c.globals, name) }

// Global looks up a bound global variable.
func (c *Context) Global(name string) (atom.Atom, bool) {
	v, ok := c.globals[name]
	return v, ok
}

// SetLimit bounds the number of root-level rewrite steps per Rewrite
// call; 0 means unbounded.
func (c *Context) SetLimit(n int) { c.limit = n }

// SetDescend toggles whether Rewrite normalizes a compound atom's
// children at all.
func (c *Context) SetDescend(enabled bool) { c.descend = enabled }

// SetNormalizeChildren toggles whether children are normalized before
// (true) or only after no root rule applies (false) at each step.
func (c *Context) SetNormalizeChildren(enabled bool) { c.normalizeChildren = enabled }

// resolveActive maps an optional rulesets override (spec §4.7/§6's
// rewrite_once(atom, rulesets)/rewrite(atom, rulesets)) to the bitset a
// rewrite call should actually run under: an empty override resolves to
// this Context's currently-enabled rulesets (c.active), matching the
// spec's "empty means active" rule. An unrecognized name is skipped
// rather than treated as an error (unlike AddRule, which rejects an
// undeclared ruleset unless AllowUndeclaredRulesets is set).
func (c *Context) resolveActive(rulesets []string) rwbits.Set {
	if len(rulesets) == 0 {
		return c.active
	}
	var bits rwbits.Set
	for _, name := range rulesets {
		if bit, ok := c.rules.RulesetBit(name); ok {
			bits.Set(bit)
		}
	}
	return bits
}

// Clone returns an independent Context: its own globals map, active-
// ruleset bitset, and policy settings, but sharing the (append-only)
// rule and operator libraries and the memoization cache with the
// original, since those are safe to share and expensive to duplicate.
func (c *Context) Clone() *Context {
	globals := make(map[string]atom.Atom, len(c.globals))
	for k, v := range c.globals {
		globals[k] = v
	}
	return &Context{
		active:            c.active.Clone(),
		operators:         c.operators,
		rules:             c.rules,
		memo:              c.memo,
		globals:           globals,
		logger:            c.logger,
		limit:             c.limit,
		descend:           c.descend,
		normalizeChildren: c.normalizeChildren,
	}
}
