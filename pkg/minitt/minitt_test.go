package minitt

import (
	"testing"

	"github.com/minitt-lang/minitt/internal/syntax"
)

func TestCheckMainAcceptsAWellTypedProgram(t *testing.T) {
	// result : One = Unit; Void
	program := syntax.DeclarationExpr{
		Decl: &syntax.Declaration{Pattern: syntax.PatVar{Name: "result"}, Signature: syntax.One{}, Body: syntax.Unit{}, Kind: syntax.Simple},
		Rest: syntax.Void{},
	}
	checker := New()
	state, err := checker.CheckMain(program)
	if err != nil {
		t.Fatalf("CheckMain: %v", err)
	}
	value, err := state.Env.Resolve("result")
	if err != nil || value.Kind != syntax.KUnit {
		t.Fatalf("Resolve(result) = %v/%v, want KUnit", value, err)
	}
}

func TestCheckMainRejectsATypeMismatchAndTagsARequestID(t *testing.T) {
	program := syntax.DeclarationExpr{
		Decl: &syntax.Declaration{Pattern: syntax.PatVar{Name: "result"}, Signature: syntax.One{}, Body: syntax.TypeExpr{Level: 0}, Kind: syntax.Simple},
		Rest: syntax.Void{},
	}
	checker := New()
	_, err := checker.CheckMain(program)
	if err == nil {
		t.Fatalf("CheckMain(bad program) = nil error, want a RequestError")
	}
	reqErr, ok := err.(*RequestError)
	if !ok {
		t.Fatalf("CheckMain(bad program) error = %T, want *RequestError", err)
	}
	if reqErr.RequestID.String() == "" {
		t.Errorf("RequestError.RequestID is empty")
	}
}

func TestCheckContextualBuildsOnPriorState(t *testing.T) {
	checker := New()
	first := syntax.DeclarationExpr{
		Decl: &syntax.Declaration{Pattern: syntax.PatVar{Name: "a"}, Signature: syntax.One{}, Body: syntax.Unit{}, Kind: syntax.Simple},
		Rest: syntax.Void{},
	}
	state, err := checker.CheckContextual(InitialState, first)
	if err != nil {
		t.Fatalf("CheckContextual(first): %v", err)
	}

	second := syntax.DeclarationExpr{
		Decl: &syntax.Declaration{Pattern: syntax.PatVar{Name: "b"}, Signature: syntax.One{}, Body: syntax.Var{Name: "a"}, Kind: syntax.Simple},
		Rest: syntax.Void{},
	}
	if _, err := checker.CheckContextual(state, second); err != nil {
		t.Fatalf("CheckContextual(second) referencing `a` from the prior fragment: %v", err)
	}
}

func TestCheckInferContextual(t *testing.T) {
	checker := New()
	got, err := checker.CheckInferContextual(InitialState, syntax.Unit{})
	if err != nil {
		t.Fatalf("CheckInferContextual(Unit): %v", err)
	}
	if got.Kind != syntax.KOne {
		t.Errorf("CheckInferContextual(Unit) = %v, want KOne", got.Kind)
	}
}

func TestEvalAndReadback(t *testing.T) {
	app := syntax.Application{
		Function: syntax.Lambda{Param: syntax.PatVar{Name: "x"}, Body: syntax.Var{Name: "x"}},
		Argument: syntax.Unit{},
	}
	value := Eval(app, syntax.Nil)
	if value.Kind != syntax.KUnit {
		t.Fatalf("Eval((λx.x) Unit) = %v, want KUnit", value.Kind)
	}
	if got := Readback(value).String(); got != "Unit" {
		t.Errorf("Readback(...).String() = %q, want %q", got, "Unit")
	}
}

func TestLevelSafe(t *testing.T) {
	level, ok := LevelSafe(syntax.VType(2))
	if !ok || level != 3 {
		t.Fatalf("LevelSafe(Type(2)) = %d/%v, want 3/true", level, ok)
	}
	if _, ok := LevelSafe(syntax.VUnit()); ok {
		t.Errorf("LevelSafe(Unit) = ok, want false")
	}
}
