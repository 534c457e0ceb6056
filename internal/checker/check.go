package checker

import (
	"github.com/minitt-lang/minitt/internal/evaluator"
	"github.com/minitt-lang/minitt/internal/subtype"
	"github.com/minitt-lang/minitt/internal/syntax"
)

// CheckType verifies that expr is a well-formed type and returns its
// level ("checkT"/"check_type" in Mini-TT, spec §4.3.2). Unlike Check,
// CheckType never needs to thread an updated State back to its caller:
// a Declaration/Constant can never appear in type position in a
// well-formed program, so no binding made while checking a type
// position is ever meant to escape it.
func CheckType(depth int, state State, expr syntax.Expression) (syntax.Level, error) {
	switch e := expr.(type) {
	case syntax.Sum:
		return checkSumType(depth, state, e.Branches)
	case syntax.Pi:
		return checkTelescoped(depth, state, e.Domain.Pattern, e.Domain.Domain, e.Body)
	case syntax.Sigma:
		return checkTelescoped(depth, state, e.Domain.Pattern, e.Domain.Domain, e.Body)
	case syntax.TypeExpr:
		return e.Level + 1, nil
	case syntax.Void, syntax.One:
		return 0, nil
	default:
		inferred, err := Infer(depth, state, expr)
		if err != nil {
			return 0, err
		}
		level, ok := inferred.LevelSafe()
		if !ok || level == 0 {
			return 0, &NotTypeTypeError{Value: inferred}
		}
		return level - 1, nil
	}
}

func checkSumType(depth int, state State, branches *syntax.Branch) (syntax.Level, error) {
	var maxLevel syntax.Level
	var err error
	branches.Each(func(_ string, expr syntax.Expression) bool {
		var level syntax.Level
		level, err = CheckType(depth, state, expr)
		if err != nil {
			return false
		}
		if level > maxLevel {
			maxLevel = level
		}
		return true
	})
	return maxLevel, err
}

func checkTelescoped(depth int, state State, pattern syntax.Pattern, domain, body syntax.Expression) (syntax.Level, error) {
	if _, err := CheckType(depth, state, domain); err != nil {
		return 0, err
	}
	domainValue := evaluator.Eval(domain, state.Env)
	gen := generated(depth)
	gamma, err := UpdateGamma(state.Gamma, pattern, domainValue, gen)
	if err != nil {
		return 0, err
	}
	inner := State{Gamma: gamma, Env: syntax.UpVar(state.Env, pattern, gen)}
	return CheckType(depth+1, inner, body)
}

func checkLevel(actual, bound syntax.Level) error {
	if actual <= bound {
		return nil
	}
	return &LevelMismatchError{Actual: actual, Bound: bound}
}

// Check verifies expr against the expected type value t ("check" in
// Mini-TT, spec §4.3.3), returning a possibly-updated State.
//
// Most rules discard whatever State resulted from checking a nested
// position and return their input State unchanged — e.g. checking a
// Lambda's body, or a Constant's scope, only has to type-check, its
// bindings are local and never meant to leak to the caller. The
// exceptions that do thread an updated State out are DeclarationExpr
// (a named declaration's binding must persist so later top-level
// fragments, e.g. in a REPL, can see it), Pair (whose second
// component is checked under whatever state resulted from the first,
// in case the first contains a nested declaration), Constructor
// (which returns the state from checking its payload) and a Split
// checked against a Π over a sum (which returns the state after its
// last clause) — this mirrors the original source's check function
// exactly, asymmetries included.
func Check(depth int, state State, expr syntax.Expression, t *syntax.Value) (State, error) {
	switch e := expr.(type) {
	case syntax.Unit:
		if t.Kind == syntax.KOne {
			return state, nil
		}
		return state, &TypeMismatchError{Expected: syntax.VOne(), Actual: t}
	case syntax.One:
		if t.Kind == syntax.KType && t.Level == 0 {
			return state, nil
		}
		return state, &TypeMismatchError{Expected: syntax.VType(0), Actual: t}
	case syntax.TypeExpr:
		if t.Kind != syntax.KType {
			return state, &TypeMismatchError{Expected: t, Actual: syntax.VType(e.Level)}
		}
		if e.Level < t.Level {
			return state, nil
		}
		return state, &TypeMismatchError{Expected: syntax.VType(e.Level + 1), Actual: t}
	case syntax.Void:
		return state, nil
	case syntax.Lambda:
		if t.Kind != syntax.KPi {
			return state, &WantPiButError{Value: t}
		}
		gen := generated(depth)
		gamma, err := UpdateGamma(state.Gamma, e.Param, t.Domain, gen)
		if err != nil {
			return state, err
		}
		inner := State{Gamma: gamma, Env: syntax.UpVar(state.Env, e.Param, gen)}
		if _, err := Check(depth+1, inner, e.Body, t.Closure.Instantiate(gen)); err != nil {
			return state, err
		}
		return state, nil
	case syntax.Pair:
		if t.Kind != syntax.KSigma {
			return state, &WrongExpectedKindError{Want: syntax.KSigma, Got: t}
		}
		next, err := Check(depth, state, e.First, t.Domain)
		if err != nil {
			return state, err
		}
		firstValue := evaluator.Eval(e.First, next.Env)
		return Check(depth, next, e.Second, t.Closure.Instantiate(firstValue))
	case syntax.Constructor:
		if t.Kind != syntax.KSum {
			return state, &WrongExpectedKindError{Want: syntax.KSum, Got: t}
		}
		c, ok := t.Cases.Get(e.Name)
		if !ok {
			return state, &InvalidConstructorError{Name: e.Name}
		}
		return Check(depth, state, e.Payload, c.ReduceToValue())
	case syntax.Sum:
		if t.Kind != syntax.KType {
			return state, &NotTypeTypeError{Value: t}
		}
		level, err := checkSumType(depth, state, e.Branches)
		if err != nil {
			return state, err
		}
		return state, checkLevel(level, t.Level)
	case syntax.Pi:
		if t.Kind != syntax.KType {
			return state, &NotTypeTypeError{Value: t}
		}
		level, err := checkTelescoped(depth, state, e.Domain.Pattern, e.Domain.Domain, e.Body)
		if err != nil {
			return state, err
		}
		return state, checkLevel(level, t.Level)
	case syntax.Sigma:
		if t.Kind != syntax.KType {
			return state, &NotTypeTypeError{Value: t}
		}
		level, err := checkTelescoped(depth, state, e.Domain.Pattern, e.Domain.Domain, e.Body)
		if err != nil {
			return state, err
		}
		return state, checkLevel(level, t.Level)
	case syntax.DeclarationExpr:
		next, err := CheckDeclaration(depth, state, e.Decl)
		if err != nil {
			return state, err
		}
		return Check(depth, next, e.Rest, t)
	case syntax.Constant:
		signature, err := Infer(depth, state, e.Body)
		if err != nil {
			return state, err
		}
		bodyValue := evaluator.Eval(e.Body, state.Env)
		gamma, err := UpdateGamma(state.Gamma, e.Pattern, signature, bodyValue)
		if err != nil {
			return state, err
		}
		inner := State{Gamma: gamma, Env: syntax.UpVar(state.Env, e.Pattern, bodyValue)}
		if _, err := Check(depth, inner, e.Rest, t); err != nil {
			return state, err
		}
		return state, nil
	case syntax.Split:
		if t.Kind == syntax.KPi && t.Domain.Kind == syntax.KSum {
			return checkSplit(depth, state, e, t)
		}
		return checkFallback(depth, state, expr, t)
	default:
		return checkFallback(depth, state, expr, t)
	}
}

// checkSplit handles (Split(branches), Pi(Sum(sumTree), cl)) (spec
// §4.3.3): every constructor the sum declares must have a matching
// clause, checked against the Π specialized to that constructor via a
// Choice closure; once every sum constructor is consumed, no clause
// may remain unmatched.
func checkSplit(depth int, state State, split syntax.Split, t *syntax.Value) (State, error) {
	remaining := make(map[string]bool)
	for _, name := range split.Branches.Names() {
		remaining[name] = true
	}
	current := state
	var err error
	t.Domain.Cases.Each(func(name string, sumCase syntax.Case) bool {
		clauseExpr, ok := split.Branches.Get(name)
		if !ok {
			err = &MissingCaseError{Name: name}
			return false
		}
		delete(remaining, name)
		branchValue := sumCase.ReduceToValue()
		signature := syntax.VPi(branchValue, syntax.CloChoice(t.Closure, name))
		current, err = Check(depth, current, clauseExpr, signature)
		return err == nil
	})
	if err != nil {
		return state, err
	}
	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for _, name := range split.Branches.Names() {
			if remaining[name] {
				names = append(names, name)
			}
		}
		return state, &UnexpectedCasesError{Names: names}
	}
	return current, nil
}

// checkFallback is the subtype fallback rule (spec §4.3.3's default
// case): infer expr's type and require it to be a subtype of t.
func checkFallback(depth int, state State, expr syntax.Expression, t *syntax.Value) (State, error) {
	inferred, err := Infer(depth, state, expr)
	if err != nil {
		return state, err
	}
	if err := subtype.Subtype(depth, inferred, t, true); err != nil {
		return state, err
	}
	return state, nil
}
