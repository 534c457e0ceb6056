package checker

import (
	"github.com/minitt-lang/minitt/internal/evaluator"
	"github.com/minitt-lang/minitt/internal/syntax"
)

// Infer synthesizes a type value for expr ("checkI"/"infer" in
// Mini-TT, spec §4.3.1).
func Infer(depth int, state State, expr syntax.Expression) (*syntax.Value, error) {
	switch e := expr.(type) {
	case syntax.Unit:
		return syntax.VOne(), nil
	case syntax.TypeExpr:
		return syntax.VType(e.Level + 1), nil
	case syntax.Void, syntax.One:
		return syntax.VType(0), nil
	case syntax.Var:
		t, ok := state.Gamma.Lookup(e.Name)
		if !ok {
			return nil, &UnresolvedNameError{Name: e.Name}
		}
		return t, nil
	case syntax.Constructor:
		// A fresh singleton sum type; subtyping (package subtype) makes
		// this usable against any sum type that also declares e.Name.
		inferred, err := Infer(depth, state, e.Payload)
		if err != nil {
			return nil, err
		}
		tree := syntax.NewCaseTree()
		tree.Insert(e.Name, syntax.CaseOfValue(inferred))
		return syntax.VSum(tree), nil
	case syntax.Pair:
		left, err := Infer(depth, state, e.First)
		if err != nil {
			return nil, err
		}
		right, err := Infer(depth, state, e.Second)
		if err != nil {
			return nil, err
		}
		return syntax.VSigma(left, syntax.CloValue(right)), nil
	case syntax.First:
		t, err := Infer(depth, state, e.Pair)
		if err != nil {
			return nil, err
		}
		if t.Kind != syntax.KSigma {
			return nil, &WantSigmaButError{Value: t}
		}
		return t.Domain, nil
	case syntax.Second:
		t, err := Infer(depth, state, e.Pair)
		if err != nil {
			return nil, err
		}
		if t.Kind != syntax.KSigma {
			return nil, &WantSigmaButError{Value: t}
		}
		pairValue := evaluator.Eval(e.Pair, state.Env)
		return t.Closure.Instantiate(syntax.Fst(pairValue)), nil
	case syntax.Sum:
		var maxLevel syntax.Level
		var err error
		e.Branches.Each(func(_ string, branchExpr syntax.Expression) bool {
			var level syntax.Level
			level, err = CheckType(depth, state, branchExpr)
			if err != nil {
				return false
			}
			if level > maxLevel {
				maxLevel = level
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		return syntax.VType(maxLevel), nil
	case syntax.Pi:
		return inferTelescope(depth, state, e.Domain, e.Body)
	case syntax.Sigma:
		return inferTelescope(depth, state, e.Domain, e.Body)
	case syntax.Application:
		return inferApplication(depth, state, e)
	case syntax.DeclarationExpr, syntax.Constant:
		// Unreachable per spec §4.3.1: declarations never appear in
		// inference position in a well-formed program.
		return nil, &CannotInferError{Expr: expr}
	default:
		return nil, &CannotInferError{Expr: expr}
	}
}

// inferTelescope infers the universe of a Π or Σ: check the domain as
// a type, bind a fresh generated variable of that type, check the
// body as a type at depth+1, and take the max of the two levels.
func inferTelescope(depth int, state State, domain syntax.Typed, body syntax.Expression) (*syntax.Value, error) {
	leftLevel, err := CheckType(depth, state, domain.Domain)
	if err != nil {
		return nil, err
	}
	domainValue := evaluator.Eval(domain.Domain, state.Env)
	gen := generated(depth)
	gamma, err := UpdateGamma(state.Gamma, domain.Pattern, domainValue, gen)
	if err != nil {
		return nil, err
	}
	inner := State{Gamma: gamma, Env: syntax.UpVar(state.Env, domain.Pattern, gen)}
	rightLevel, err := CheckType(depth+1, inner, body)
	if err != nil {
		return nil, err
	}
	level := leftLevel
	if rightLevel > level {
		level = rightLevel
	}
	return syntax.VType(level), nil
}

// inferApplication infers the type of f a. An annotated λ in function
// position is treated as a let: check the argument against the
// annotation, bind it, and infer the body directly (spec §4.3.1).
func inferApplication(depth int, state State, app syntax.Application) (*syntax.Value, error) {
	if lambda, ok := app.Function.(syntax.Lambda); ok && lambda.ParamType != nil {
		parameterType := lambda.ParamType
		if _, err := Check(depth, state, app.Argument, parameterType); err != nil {
			return nil, err
		}
		gen := generated(depth + 1)
		gamma, err := UpdateGamma(state.Gamma, lambda.Param, parameterType, gen)
		if err != nil {
			return nil, err
		}
		env := syntax.UpVar(state.Env, lambda.Param, gen)
		return Infer(depth+1, State{Gamma: gamma, Env: env}, lambda.Body)
	}
	fnType, err := Infer(depth, state, app.Function)
	if err != nil {
		return nil, err
	}
	if fnType.Kind != syntax.KPi {
		return nil, &WantPiButError{Value: fnType, Argument: app.Argument}
	}
	if _, err := Check(depth, state, app.Argument, fnType.Domain); err != nil {
		return nil, err
	}
	argValue := evaluator.Eval(app.Argument, state.Env)
	return fnType.Closure.Instantiate(argValue), nil
}
