package checker

import (
	"testing"

	"github.com/minitt-lang/minitt/internal/syntax"
)

func TestCheckDeclarationSimple(t *testing.T) {
	decl := &syntax.Declaration{Pattern: syntax.PatVar{Name: "x"}, Signature: syntax.One{}, Body: syntax.Unit{}, Kind: syntax.Simple}
	state, err := CheckDeclaration(0, InitialState, decl)
	if err != nil {
		t.Fatalf("CheckDeclaration(x : One = Unit): %v", err)
	}
	typ, ok := state.Gamma.Lookup("x")
	if !ok || typ.Kind != syntax.KOne {
		t.Fatalf("Gamma(x) = %v/%v, want KOne", typ, ok)
	}
	val, err := state.Env.Resolve("x")
	if err != nil || val.Kind != syntax.KUnit {
		t.Fatalf("Resolve(x) = %v/%v, want KUnit", val, err)
	}
}

func TestCheckDeclarationWithPrefixParameters(t *testing.T) {
	// const (a:One) : One = a -- a declaration with one prefix parameter,
	// lifted into signature Π a:One. One and body λa. a (spec §4.3.4).
	decl := &syntax.Declaration{
		Pattern:   syntax.PatVar{Name: "const"},
		Params:    []syntax.Param{{Pattern: syntax.PatVar{Name: "a"}, Type: syntax.One{}}},
		Signature: syntax.One{},
		Body:      syntax.Var{Name: "a"},
		Kind:      syntax.Simple,
	}
	state, err := CheckDeclaration(0, InitialState, decl)
	if err != nil {
		t.Fatalf("CheckDeclaration(const): %v", err)
	}
	typ, ok := state.Gamma.Lookup("const")
	if !ok {
		t.Fatalf("Gamma has no binding for `const`")
	}
	if typ.Kind != syntax.KPi {
		t.Fatalf("Gamma(const) = %v, want KPi (lifted parameter becomes a Π)", typ.Kind)
	}

	value, err := state.Env.Resolve("const")
	if err != nil {
		t.Fatalf("Resolve(const): %v", err)
	}
	if value.Kind != syntax.KLambda {
		t.Fatalf("Resolve(const) = %v, want KLambda (lifted parameter becomes a λ)", value.Kind)
	}
	applied := syntax.Apply(value, syntax.VUnit())
	if applied.Kind != syntax.KUnit {
		t.Fatalf("const Unit = %v, want KUnit", applied.Kind)
	}
}

func TestCheckDeclarationRecursiveSelfReference(t *testing.T) {
	natBranches := syntax.NewBranch().MustInsert("Zero", syntax.One{}).MustInsert("Suc", syntax.Var{Name: "nat"})
	natDecl := &syntax.Declaration{
		Pattern:   syntax.PatVar{Name: "nat"},
		Signature: syntax.TypeExpr{Level: 0},
		Body:      syntax.Sum{Branches: natBranches},
		Kind:      syntax.Recursive,
	}
	state, err := CheckDeclaration(0, InitialState, natDecl)
	if err != nil {
		t.Fatalf("CheckDeclaration(nat): %v", err)
	}

	// one : nat = Suc (Zero Unit), checked under a declaration whose
	// recursive reference re-enters the same UpDec frame.
	oneDecl := &syntax.Declaration{
		Pattern:   syntax.PatVar{Name: "one"},
		Signature: syntax.Var{Name: "nat"},
		Body:      syntax.Constructor{Name: "Suc", Payload: syntax.Constructor{Name: "Zero", Payload: syntax.Unit{}}},
		Kind:      syntax.Simple,
	}
	if _, err := CheckDeclaration(0, state, oneDecl); err != nil {
		t.Fatalf("CheckDeclaration(one : nat = Suc(Zero Unit)): %v", err)
	}
}
