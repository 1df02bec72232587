package operator

import "github.com/termwoven/rewrite/atom"

// Library is an append-only registry of operators, indexed by name.
// Redefining a name does not mutate the previous *Operator in place —
// other code may already be holding it from before the redefinition —
// it appends a new version and the name resolves to that version from
// then on (spec §4.9: "explicit redefinition produces a fresh ref").
type Library struct {
	byName map[string][]*Operator
}

// NewLibrary returns an empty operator library.
func NewLibrary() *Library {
	return &Library{byName: make(map[string][]*Operator)}
}

// Define adds op under its name, becoming the name's current version.
func (l *Library) Define(op *Operator) {
	l.byName[op.name] = append(l.byName[op.name], op)
}

// Lookup resolves name to its current operator.
func (l *Library) Lookup(name string) (*Operator, bool) {
	hist := l.byName[name]
	if len(hist) == 0 {
		return nil, false
	}
	return hist[len(hist)-1], true
}

// Resolve resolves an OperatorRef atom to its current operator.
func (l *Library) Resolve(ref *atom.OperatorRef) (*Operator, bool) {
	return l.Lookup(ref.Name())
}

// History returns every version ever defined for name, oldest first.
func (l *Library) History(name string) []*Operator {
	return append([]*Operator{}, l.byName[name]...)
}

// Names returns every operator name currently defined, in no particular
// order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.byName))
	for n := range l.byName {
		names = append(names, n)
	}
	return names
}
