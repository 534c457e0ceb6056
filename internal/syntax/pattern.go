package syntax

import "strings"

// Pattern is Unit | Var(name) | Pair(p, p) (spec §3.2). The Unit
// pattern binds nothing, Var binds exactly one name, Pair recursively
// binds both sides. Building code must not repeat a name within one
// pattern — Validate checks this.
type Pattern interface {
	isPattern()
	// Contains reports whether name is bound somewhere in this
	// pattern ("inPat" in Mini-TT).
	Contains(name string) bool
	// String renders the pattern for error messages.
	String() string
}

// PatUnit is the pattern that binds nothing, written `_`.
type PatUnit struct{}

func (PatUnit) isPattern()            {}
func (PatUnit) Contains(string) bool  { return false }
func (PatUnit) String() string        { return "_" }

// PatVar binds a single name.
type PatVar struct {
	Name string
}

func (p PatVar) isPattern()           {}
func (p PatVar) Contains(name string) bool { return p.Name == name }
func (p PatVar) String() string       { return p.Name }

// PatPair recursively binds both components of a pair.
type PatPair struct {
	First, Second Pattern
}

func (p PatPair) isPattern() {}
func (p PatPair) Contains(name string) bool {
	return p.First.Contains(name) || p.Second.Contains(name)
}
func (p PatPair) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(p.First.String())
	b.WriteString(", ")
	b.WriteString(p.Second.String())
	b.WriteByte(')')
	return b.String()
}

// names collects every name bound by p, in traversal order.
func names(p Pattern, out []string) []string {
	switch p := p.(type) {
	case PatUnit:
		return out
	case PatVar:
		return append(out, p.Name)
	case PatPair:
		out = names(p.First, out)
		return names(p.Second, out)
	default:
		return out
	}
}

// Validate reports an error if p binds the same name more than once
// (spec §3.2's invariant that implementers should enforce).
func Validate(p Pattern) error {
	seen := make(map[string]bool)
	for _, n := range names(p, nil) {
		if seen[n] {
			return &DuplicateBindingError{Name: n, Pattern: p}
		}
		seen[n] = true
	}
	return nil
}

// DuplicateBindingError reports that Pattern binds Name more than
// once.
type DuplicateBindingError struct {
	Name    string
	Pattern Pattern
}

func (e *DuplicateBindingError) Error() string {
	return "name `" + e.Name + "` bound twice in pattern `" + e.Pattern.String() + "`"
}
