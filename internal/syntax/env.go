package syntax

import "fmt"

// Env is the persistent environment ("telescope", spec §3.6): a
// singly-linked list of frames, shared between parent chains. Nodes
// are never mutated in place; extending an environment allocates a
// new frame pointing at the old one. The zero value is not a valid
// Env — use Nil.
type Env struct {
	kind envKind
	// UpVar fields.
	parent  *Env
	pattern Pattern
	value   *Value
	// UpDec fields.
	decl *Declaration
}

type envKind int

const (
	envNil envKind = iota
	envUpVar
	envUpDec
)

// Nil is the unique empty environment.
var Nil = &Env{kind: envNil}

// UpVar extends env with a pattern bound to value.
func UpVar(env *Env, pattern Pattern, value *Value) *Env {
	return &Env{kind: envUpVar, parent: env, pattern: pattern, value: value}
}

// UpDec extends env with a declaration frame. Recursive references
// resolve by re-entering this same frame (spec §3.6's invariant).
func UpDec(env *Env, decl *Declaration) *Env {
	return &Env{kind: envUpDec, parent: env, decl: decl}
}

// IsNil reports whether env is the empty environment.
func (env *Env) IsNil() bool { return env.kind == envNil }

// IsDecl reports whether env's outermost frame is an UpDec frame.
func (env *Env) IsDecl() bool { return env.kind == envUpDec }

// Parent returns the frame env was built on top of. Only valid when
// !env.IsNil().
func (env *Env) Parent() *Env { return env.parent }

// Pattern returns the bound pattern of an UpVar frame.
func (env *Env) Pattern() Pattern { return env.pattern }

// Value returns the bound value of an UpVar frame.
func (env *Env) Value() *Value { return env.value }

// Decl returns the declaration of an UpDec frame.
func (env *Env) Decl() *Declaration { return env.decl }

// UnresolvedNameError reports that name has no binding in the
// environment it was looked up in.
type UnresolvedNameError struct {
	Name string
}

func (e *UnresolvedNameError) Error() string {
	return fmt.Sprintf("unresolved reference: `%s`", e.Name)
}

// Resolve looks up name by walking frames head-first, the first frame
// whose pattern contains the name wins ("getRho" in Mini-TT, spec
// §4.1.1). A declaration's body is evaluated through evalFn, which
// package evaluator installs with SetEval to avoid an import cycle, the
// same way Case.ReduceToValue does.
func (env *Env) Resolve(name string) (*Value, error) {
	for e := env; e.kind != envNil; {
		switch e.kind {
		case envUpVar:
			if e.pattern.Contains(name) {
				return project(e.pattern, name, e.value)
			}
			e = e.parent
		case envUpDec:
			pattern := e.decl.Pattern
			if pattern.Contains(name) {
				var evalEnv *Env
				if e.decl.Kind == Recursive {
					evalEnv = e
				} else {
					evalEnv = e.parent
				}
				v := evalFn(e.decl.LiftedBody(), evalEnv)
				return project(pattern, name, v)
			}
			e = e.parent
		}
	}
	return nil, &UnresolvedNameError{Name: name}
}

// ProjectionError reports that pattern cannot be projected by name,
// which is an evaluator invariant violation (spec §4.1.1): it can
// only happen if a pattern was built without satisfying Contains for
// every name it is later projected with.
type ProjectionError struct {
	Pattern Pattern
	Name    string
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("cannot project `%s` from pattern `%s`", e.Name, e.Pattern.String())
}

// project implements "patProj" in Mini-TT (spec §4.1.1).
func project(pattern Pattern, name string, value *Value) (*Value, error) {
	switch p := pattern.(type) {
	case PatVar:
		if p.Name == name {
			return value, nil
		}
		return nil, &ProjectionError{Pattern: pattern, Name: name}
	case PatPair:
		if p.First.Contains(name) {
			return project(p.First, name, Fst(value))
		}
		if p.Second.Contains(name) {
			return project(p.Second, name, Snd(value))
		}
		return nil, &ProjectionError{Pattern: pattern, Name: name}
	case PatUnit:
		return nil, &ProjectionError{Pattern: pattern, Name: name}
	default:
		return nil, &ProjectionError{Pattern: pattern, Name: name}
	}
}
