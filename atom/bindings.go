package atom

// Bindings is an immutable finite map from variable name to the atom it is
// bound to. Every mutator returns a new Bindings rather than mutating in
// place, so a partial match attempt can branch and backtrack without one
// branch's bindings leaking into a sibling's (spec §4: match outcomes are
// pure values).
type Bindings struct {
	m map[string]Atom
}

// EmptyBindings is the binding set with no variables bound.
var EmptyBindings = Bindings{}

// Lookup returns the atom bound to name, if any.
func (b Bindings) Lookup(name string) (Atom, bool) {
	if b.m == nil {
		return nil, false
	}
	a, ok := b.m[name]
	return a, ok
}

// Extend attempts to bind name to value. If name is already bound, the
// extension succeeds only when the existing binding is structurally equal
// to value (consistent extension); otherwise it fails and the receiver is
// returned unchanged.
func (b Bindings) Extend(name string, value Atom) (Bindings, bool) {
	if existing, ok := b.Lookup(name); ok {
		return b, existing.Equal(value)
	}
	next := make(map[string]Atom, len(b.m)+1)
	for k, v := range b.m {
		next[k] = v
	}
	next[name] = value
	return Bindings{m: next}, true
}

// Merge combines two binding sets, succeeding only if every name bound in
// both agrees on its value (spec §4: "structural combination of match
// results"). On success it returns the union; on failure it returns the
// receiver and false.
func (b Bindings) Merge(o Bindings) (Bindings, bool) {
	if len(o.m) == 0 {
		return b, true
	}
	result := b
	for k, v := range o.m {
		var ok bool
		result, ok = result.Extend(k, v)
		if !ok {
			return b, false
		}
	}
	return result, true
}

// Len reports how many variables are bound.
func (b Bindings) Len() int { return len(b.m) }

// Names returns the bound variable names in no particular order.
func (b Bindings) Names() []string {
	names := make([]string, 0, len(b.m))
	for k := range b.m {
		names = append(names, k)
	}
	return names
}

// Substitute replaces every free occurrence of a bound variable in a with
// its bound atom, leaving unbound variables and all other atom kinds
// untouched (spec §6 "substitute-bindings"). Compound atoms are rebuilt
// bottom-up; atoms with no bound variables anywhere beneath them are
// returned unchanged (same pointer) to keep repeated substitution over an
// already-ground subtree cheap.
func (b Bindings) Substitute(a Atom) Atom {
	if len(b.m) == 0 || a.IsConstant() {
		return a
	}
	switch v := a.(type) {
	case *Variable:
		if bound, ok := b.Lookup(v.name); ok {
			return bound
		}
		return a
	case *Lambda:
		bound := b.Substitute(v.bound)
		body := b.Substitute(v.body)
		if bound == v.bound && body == v.body {
			return a
		}
		return NewLambda(bound, body)
	case *AtomSeq:
		elems := make([]Atom, len(v.elems))
		changed := false
		for i, e := range v.elems {
			elems[i] = b.Substitute(e)
			if elems[i] != e {
				changed = true
			}
		}
		if !changed {
			return a
		}
		out, err := NewAtomSeq(v.props, elems...)
		if err != nil {
			return a
		}
		return out
	case *Apply:
		fn := b.Substitute(v.fn)
		arg := b.Substitute(v.arg)
		if fn == v.fn && arg == v.arg {
			return a
		}
		return NewApply(fn, arg, v.result)
	case *MapPair:
		key := b.Substitute(v.key)
		val := b.Substitute(v.val)
		if key == v.key && val == v.val {
			return a
		}
		return NewMapPair(key, val)
	case *SpecialForm:
		fields := make([]Atom, len(v.fields))
		changed := false
		for i, f := range v.fields {
			fields[i] = b.Substitute(f)
			if fields[i] != f {
				changed = true
			}
		}
		if !changed {
			return a
		}
		return NewSpecialForm(v.tag, fields...)
	default:
		return a
	}
}
