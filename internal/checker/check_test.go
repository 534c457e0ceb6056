package checker

import (
	"errors"
	"testing"

	"github.com/minitt-lang/minitt/internal/syntax"
)

func mustCheck(t *testing.T, expr syntax.Expression, t2 *syntax.Value) State {
	t.Helper()
	state, err := Check(0, InitialState, expr, t2)
	if err != nil {
		t.Fatalf("Check(%T): %v", expr, err)
	}
	return state
}

func TestCheckUnitAgainstOne(t *testing.T) {
	mustCheck(t, syntax.Unit{}, syntax.VOne())
}

func TestCheckUnitAgainstWrongTypeFails(t *testing.T) {
	if _, err := Check(0, InitialState, syntax.Unit{}, syntax.VType(0)); err == nil {
		t.Fatalf("Check(Unit, Type(0)) = nil error, want TypeMismatchError")
	}
}

func TestCheckUniverseCumulativity(t *testing.T) {
	if _, err := Check(0, InitialState, syntax.TypeExpr{Level: 0}, syntax.VType(1)); err != nil {
		t.Errorf("Check(Type(0), Type(1)) = %v, want nil (cumulativity)", err)
	}
}

func TestCheckUniverseNotAMemberOfItself(t *testing.T) {
	if _, err := Check(0, InitialState, syntax.TypeExpr{Level: 0}, syntax.VType(0)); err == nil {
		t.Fatalf("Check(Type(0), Type(0)) = nil, want TypeMismatchError: Type(ℓ) is only a member of Type(ℓ') for ℓ < ℓ'")
	}
}

func TestCheckPairAgainstNonSigmaFails(t *testing.T) {
	pair := syntax.Pair{First: syntax.Unit{}, Second: syntax.Unit{}}
	if _, err := Check(0, InitialState, pair, syntax.VOne()); err == nil {
		t.Fatalf("Check(pair, One) = nil error, want WrongExpectedKindError")
	}
}

func TestCheckConstructorAgainstNonSumFails(t *testing.T) {
	ctor := syntax.Constructor{Name: "Zero", Payload: syntax.Unit{}}
	if _, err := Check(0, InitialState, ctor, syntax.VOne()); err == nil {
		t.Fatalf("Check(Zero Unit, One) = nil error, want WrongExpectedKindError")
	}
}

func TestCheckSplitMissingCase(t *testing.T) {
	sumCases := syntax.NewCaseTree()
	sumCases.Insert("A", syntax.CaseOfValue(syntax.VOne()))
	sumCases.Insert("B", syntax.CaseOfValue(syntax.VOne()))
	pi := syntax.VPi(syntax.VSum(sumCases), syntax.CloValue(syntax.VOne()))

	branches := syntax.NewBranch().MustInsert("A", syntax.Lambda{Param: syntax.PatUnit{}, Body: syntax.Unit{}})
	split := syntax.Split{Branches: branches}

	_, err := Check(0, InitialState, split, pi)
	var missing *MissingCaseError
	if !errors.As(err, &missing) {
		t.Fatalf("Check(split missing B, Pi) = %v, want MissingCaseError", err)
	}
	if missing.Name != "B" {
		t.Errorf("MissingCaseError.Name = %q, want %q", missing.Name, "B")
	}
}

func TestCheckSplitUnexpectedCase(t *testing.T) {
	sumCases := syntax.NewCaseTree()
	sumCases.Insert("A", syntax.CaseOfValue(syntax.VOne()))
	pi := syntax.VPi(syntax.VSum(sumCases), syntax.CloValue(syntax.VOne()))

	branches := syntax.NewBranch().
		MustInsert("A", syntax.Lambda{Param: syntax.PatUnit{}, Body: syntax.Unit{}}).
		MustInsert("C", syntax.Lambda{Param: syntax.PatUnit{}, Body: syntax.Unit{}})
	split := syntax.Split{Branches: branches}

	_, err := Check(0, InitialState, split, pi)
	var unexpected *UnexpectedCasesError
	if !errors.As(err, &unexpected) {
		t.Fatalf("Check(split with extra C, Pi) = %v, want UnexpectedCasesError", err)
	}
}

func TestCheckSplitExactCoverage(t *testing.T) {
	sumCases := syntax.NewCaseTree()
	sumCases.Insert("A", syntax.CaseOfValue(syntax.VOne()))
	pi := syntax.VPi(syntax.VSum(sumCases), syntax.CloValue(syntax.VOne()))

	branches := syntax.NewBranch().MustInsert("A", syntax.Lambda{Param: syntax.PatUnit{}, Body: syntax.Unit{}})
	split := syntax.Split{Branches: branches}

	if _, err := Check(0, InitialState, split, pi); err != nil {
		t.Fatalf("Check(split exact coverage, Pi) = %v, want nil", err)
	}
}

func TestCheckDeclarationExprThreadsBindingIntoRest(t *testing.T) {
	// let id : One = Unit; id -- Rest refers to the declared name, so
	// the DeclarationExpr binding must be visible while checking Rest.
	expr := syntax.DeclarationExpr{
		Decl: &syntax.Declaration{Pattern: syntax.PatVar{Name: "id"}, Signature: syntax.One{}, Body: syntax.Unit{}, Kind: syntax.Simple},
		Rest: syntax.Var{Name: "id"},
	}
	if _, err := Check(0, InitialState, expr, syntax.VOne()); err != nil {
		t.Fatalf("Check(let id = Unit; id, One) = %v, want nil", err)
	}
}

func TestCheckConstantDiscardsBindingFromReturnedState(t *testing.T) {
	// Constant's local binding must not escape into the State Check
	// returns, even though Rest is checked under it.
	expr := syntax.Constant{
		Pattern: syntax.PatVar{Name: "x"},
		Body:    syntax.Unit{},
		Rest:    syntax.Var{Name: "x"},
	}
	state, err := Check(0, InitialState, expr, syntax.VOne())
	if err != nil {
		t.Fatalf("Check(let x = Unit; x, One) = %v, want nil", err)
	}
	if _, ok := state.Gamma.Lookup("x"); ok {
		t.Errorf("returned State.Gamma still has `x` bound, want the Constant binding discarded")
	}
}

func TestCheckRecursiveNatDeclaration(t *testing.T) {
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

	oneValue := syntax.Constructor{Name: "Suc", Payload: syntax.Constructor{Name: "Zero", Payload: syntax.Unit{}}}
	if _, ok := state.Gamma.Lookup("nat"); !ok {
		t.Fatalf("Gamma has no binding for `nat` after CheckDeclaration")
	}
	natValue, err := state.Env.Resolve("nat")
	if err != nil {
		t.Fatalf("Resolve(nat): %v", err)
	}
	if _, err := Check(0, state, oneValue, natValue); err != nil {
		t.Fatalf("Check(Suc(Zero Unit), nat) = %v, want nil", err)
	}
}
