package checker

import (
	"testing"

	"github.com/minitt-lang/minitt/internal/syntax"
)

func TestInferCanonicalTypes(t *testing.T) {
	tests := []struct {
		name string
		expr syntax.Expression
		kind syntax.ValueKind
	}{
		{"Unit infers One", syntax.Unit{}, syntax.KOne},
		{"One infers Type(0)", syntax.One{}, syntax.KType},
		{"Void infers Type(0)", syntax.Void{}, syntax.KType},
		{"Type(0) infers Type(1)", syntax.TypeExpr{Level: 0}, syntax.KType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(0, InitialState, tt.expr)
			if err != nil {
				t.Fatalf("Infer(%T): %v", tt.expr, err)
			}
			if got.Kind != tt.kind {
				t.Errorf("Infer(%T) = %v, want %v", tt.expr, got.Kind, tt.kind)
			}
		})
	}
}

func TestInferTypeLevelIncrements(t *testing.T) {
	got, err := Infer(0, InitialState, syntax.TypeExpr{Level: 3})
	if err != nil {
		t.Fatalf("Infer(Type(3)): %v", err)
	}
	if got.Level != 4 {
		t.Errorf("Infer(Type(3)) level = %d, want 4", got.Level)
	}
}

func TestInferUnresolvedVar(t *testing.T) {
	if _, err := Infer(0, InitialState, syntax.Var{Name: "nope"}); err == nil {
		t.Fatalf("Infer(Var(nope)) = nil error, want UnresolvedNameError")
	}
}

func TestInferPairSynthesizesSigma(t *testing.T) {
	pairExpr := syntax.Pair{First: syntax.Unit{}, Second: syntax.TypeExpr{Level: 0}}
	got, err := Infer(0, InitialState, pairExpr)
	if err != nil {
		t.Fatalf("Infer(pair): %v", err)
	}
	if got.Kind != syntax.KSigma {
		t.Fatalf("Infer((Unit, Type(0))) = %v, want KSigma", got.Kind)
	}
	if got.Domain.Kind != syntax.KOne {
		t.Errorf("Infer(pair).Domain = %v, want KOne (type of Unit)", got.Domain.Kind)
	}
}

func TestInferFirstSecondRequireSigma(t *testing.T) {
	if _, err := Infer(0, InitialState, syntax.First{Pair: syntax.Unit{}}); err == nil {
		t.Fatalf("Infer(Unit.1) = nil error, want WantSigmaButError")
	}
}

func TestInferConstructorSynthesizesSingletonSum(t *testing.T) {
	got, err := Infer(0, InitialState, syntax.Constructor{Name: "Zero", Payload: syntax.Unit{}})
	if err != nil {
		t.Fatalf("Infer(Zero Unit): %v", err)
	}
	if got.Kind != syntax.KSum {
		t.Fatalf("Infer(Zero Unit) = %v, want KSum", got.Kind)
	}
	if _, ok := got.Cases.Get("Zero"); !ok {
		t.Errorf("Infer(Zero Unit) sum has no Zero case")
	}
}

func TestInferApplicationAnnotatedLambdaIsLet(t *testing.T) {
	// (λa:One. a) Unit infers One: the checker treats an annotated
	// lambda in function position as a let-binding (spec §4.3.1).
	lambda := syntax.Lambda{Param: syntax.PatVar{Name: "a"}, ParamType: syntax.VOne(), Body: syntax.Var{Name: "a"}}
	app := syntax.Application{Function: lambda, Argument: syntax.Unit{}}

	got, err := Infer(0, InitialState, app)
	if err != nil {
		t.Fatalf("Infer((λa:One. a) Unit): %v", err)
	}
	if got.Kind != syntax.KOne {
		t.Errorf("Infer((λa:One. a) Unit) = %v, want KOne", got.Kind)
	}
}

func TestInferApplicationThroughDeclaredIdentity(t *testing.T) {
	// id : Π A:Type. Π _:A. A = λA. λa. a ; id One Unit infers One.
	idSignature := syntax.Pi{
		Domain: syntax.Typed{Pattern: syntax.PatVar{Name: "A"}, Domain: syntax.TypeExpr{Level: 0}},
		Body: syntax.Pi{
			Domain: syntax.Typed{Pattern: syntax.PatUnit{}, Domain: syntax.Var{Name: "A"}},
			Body:   syntax.Var{Name: "A"},
		},
	}
	idBody := syntax.Lambda{
		Param: syntax.PatVar{Name: "A"},
		Body:  syntax.Lambda{Param: syntax.PatVar{Name: "a"}, Body: syntax.Var{Name: "a"}},
	}
	decl := &syntax.Declaration{Pattern: syntax.PatVar{Name: "id"}, Signature: idSignature, Body: idBody, Kind: syntax.Simple}

	state, err := CheckDeclaration(0, InitialState, decl)
	if err != nil {
		t.Fatalf("CheckDeclaration(id): %v", err)
	}

	idApplied := syntax.Application{
		Function: syntax.Application{Function: syntax.Var{Name: "id"}, Argument: syntax.One{}},
		Argument: syntax.Unit{},
	}
	got, err := Infer(0, state, idApplied)
	if err != nil {
		t.Fatalf("Infer(id One Unit): %v", err)
	}
	if got.Kind != syntax.KOne {
		t.Errorf("Infer(id One Unit) = %v, want KOne", got.Kind)
	}
}

func TestInferTelescopeBindsPatternInEnvForDependentBody(t *testing.T) {
	// Π x:Type(0). Π _:x. x -- the inner Π's domain is the bound
	// variable x itself, so checking it as a type must evaluate `x`
	// under an Env that actually binds it, not just look up its type in
	// Γ (spec §4.3.1: "bind p := Gen(i) of that type in Γ and env").
	pi := syntax.Pi{
		Domain: syntax.Typed{Pattern: syntax.PatVar{Name: "x"}, Domain: syntax.TypeExpr{Level: 0}},
		Body: syntax.Pi{
			Domain: syntax.Typed{Pattern: syntax.PatUnit{}, Domain: syntax.Var{Name: "x"}},
			Body:   syntax.Var{Name: "x"},
		},
	}
	got, err := Infer(0, InitialState, pi)
	if err != nil {
		t.Fatalf("Infer(Π x:Type(0). Π _:x. x): %v", err)
	}
	if got.Kind != syntax.KType {
		t.Errorf("Infer(Π x:Type(0). Π _:x. x) = %v, want KType", got.Kind)
	}
}

func TestInferDeclarationExprCannotInfer(t *testing.T) {
	expr := syntax.DeclarationExpr{
		Decl: &syntax.Declaration{Pattern: syntax.PatVar{Name: "x"}, Signature: syntax.One{}, Body: syntax.Unit{}},
		Rest: syntax.Void{},
	}
	if _, err := Infer(0, InitialState, expr); err == nil {
		t.Fatalf("Infer(declaration) = nil error, want CannotInferError")
	}
}
