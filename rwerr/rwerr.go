// Package rwerr collects the error kinds from spec §7: validation errors
// that abort the API call that raised them, plus the TimedOutError type
// that propagates out of an entire rewrite call unchanged.
// Match's own Fail outcome is not an error at all (spec §7 policy); it is
// a value, defined alongside the matcher framework in package match.
package rwerr

import "fmt"

// NoSuchRulesetError is raised when a ruleset name is used but not
// declared and the library's allow_undeclared_rulesets flag is false.
type NoSuchRulesetError struct {
	Name string
}

func (e *NoSuchRulesetError) Error() string {
	return fmt.Sprintf("no such ruleset: %q", e.Name)
}

// IdentityRuleError is raised when a rule's pattern equals its rewrite.
type IdentityRuleError struct {
	Rule string
}

func (e *IdentityRuleError) Error() string {
	if e.Rule == "" {
		return "rule pattern and rewrite are identical"
	}
	return fmt.Sprintf("rule %q: pattern and rewrite are identical", e.Rule)
}

// BindablePatternError is raised when a rule's pattern root is a bare
// variable, which would match anything.
type BindablePatternError struct {
	Rule string
}

func (e *BindablePatternError) Error() string {
	if e.Rule == "" {
		return "rule pattern is a bare (always-bindable) variable"
	}
	return fmt.Sprintf("rule %q: pattern is a bare (always-bindable) variable", e.Rule)
}

// LiteralPatternError is raised when a rule's pattern root is a bare
// literal while literal rules are disabled.
type LiteralPatternError struct {
	Rule string
}

func (e *LiteralPatternError) Error() string {
	if e.Rule == "" {
		return "rule pattern is a bare literal and literal rules are disabled"
	}
	return fmt.Sprintf("rule %q: pattern is a bare literal and literal rules are disabled", e.Rule)
}

// IllegalPropertiesError is raised by inconsistent AlgProp construction:
// idempotent/absorber/identity without associative, or a boolean slot
// that isn't Boolean-typed.
type IllegalPropertiesError struct {
	Reason string
}

func (e *IllegalPropertiesError) Error() string {
	return fmt.Sprintf("illegal algebraic properties: %s", e.Reason)
}

// TimedOutError is raised by the cooperative cancellation check; it
// propagates out of the entire rewrite call unchanged (spec §7 policy).
type TimedOutError struct {
	During string
}

func (e *TimedOutError) Error() string {
	if e.During == "" {
		return "rewrite timed out"
	}
	return fmt.Sprintf("rewrite timed out during %s", e.During)
}

// NativeHandlerError is raised when a native handler could not be
// constructed or invoked.
type NativeHandlerError struct {
	Operator string
	Cause    error
}

func (e *NativeHandlerError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("native handler error for operator %q", e.Operator)
	}
	return fmt.Sprintf("native handler error for operator %q: %v", e.Operator, e.Cause)
}

func (e *NativeHandlerError) Unwrap() error { return e.Cause }
