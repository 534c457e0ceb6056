package checker

import (
	"github.com/minitt-lang/minitt/internal/evaluator"
	"github.com/minitt-lang/minitt/internal/syntax"
)

// CheckDeclaration checks decl and extends state with its binding
// (spec §4.3.4). Unlike most of Check's rules, the State this returns
// is meant to be threaded forward: it is how a checked declaration's
// binding becomes visible to whatever follows it.
//
// Declarations with prefix parameters are first lifted into ordinary
// Π/λ form (liftParameters) and otherwise checked exactly like a
// parameterless one; the declaration actually stored in the
// environment's UpDec frame keeps the original prefix-parameter form
// so that re-evaluating a recursive reference performs the same
// lifting again (spec §4.3.4's closing paragraph).
func CheckDeclaration(depth int, state State, decl *syntax.Declaration) (State, error) {
	if len(decl.Params) == 0 {
		gamma, err := checkDeclarationBody(depth, state, decl.Pattern, decl.Signature, decl.Body, decl.Kind, decl)
		if err != nil {
			return state, locate(err, decl.Pattern)
		}
		return State{Gamma: gamma, Env: syntax.UpDec(state.Env, decl)}, nil
	}

	signature, body, err := liftParameters(depth, state, decl.Params, func(liftedState State) (syntax.Expression, syntax.Expression, error) {
		if err := checkSignatureAndBody(depth, liftedState, decl); err != nil {
			return nil, nil, locate(err, decl.Pattern)
		}
		return decl.Signature, decl.Body, nil
	})
	if err != nil {
		return state, err
	}

	signatureValue := evaluator.Eval(signature, state.Env)
	bodyValue := evaluator.Eval(body, syntax.UpDec(state.Env, decl))
	gamma, err := UpdateGamma(state.Gamma, decl.Pattern, signatureValue, bodyValue)
	if err != nil {
		return state, locate(err, decl.Pattern)
	}
	return State{Gamma: gamma, Env: syntax.UpDec(state.Env, decl)}, nil
}

// checkSignatureAndBody checks a parameterized declaration's signature
// and body once its prefix parameters have been lifted into state
// (i.e. state's Γ/env already bind every parameter).
func checkSignatureAndBody(depth int, state State, decl *syntax.Declaration) error {
	if _, err := CheckType(depth, state, decl.Signature); err != nil {
		return err
	}
	signatureValue := evaluator.Eval(decl.Signature, state.Env)
	if decl.Kind == syntax.Recursive {
		gen := generated(depth)
		gamma, err := UpdateGamma(state.Gamma, decl.Pattern, signatureValue, gen)
		if err != nil {
			return err
		}
		fakeEnv := syntax.UpVar(state.Env, decl.Pattern, gen)
		_, err = Check(depth+1, State{Gamma: gamma, Env: fakeEnv}, decl.Body, signatureValue)
		return err
	}
	_, err := Check(depth, state, decl.Body, signatureValue)
	return err
}

// checkDeclarationBody is the no-prefix-parameter case of
// CheckDeclaration: Simple evaluates the body directly; Recursive
// checks the body under a fake Γ/env binding the declared name to a
// fresh generated variable first, then evaluates the real body under
// an UpDec frame so recursive references re-enter the declaration.
func checkDeclarationBody(depth int, state State, pattern syntax.Pattern, signature, body syntax.Expression, kind syntax.DeclKind, decl *syntax.Declaration) (*Gamma, error) {
	if _, err := CheckType(depth, state, signature); err != nil {
		return nil, err
	}
	signatureValue := evaluator.Eval(signature, state.Env)

	if kind == syntax.Simple {
		if _, err := Check(depth, state, body, signatureValue); err != nil {
			return nil, err
		}
		bodyValue := evaluator.Eval(body, state.Env)
		return UpdateGamma(state.Gamma, pattern, signatureValue, bodyValue)
	}

	gen := generated(depth)
	fakeGamma, err := UpdateGamma(state.Gamma, pattern, signatureValue, gen)
	if err != nil {
		return nil, err
	}
	fakeEnv := syntax.UpVar(state.Env, pattern, gen)
	if _, err := Check(depth+1, State{Gamma: fakeGamma, Env: fakeEnv}, body, signatureValue); err != nil {
		return nil, err
	}
	bodyValue := evaluator.Eval(body, syntax.UpDec(state.Env, decl))
	return UpdateGamma(state.Gamma, pattern, signatureValue, bodyValue)
}

// liftParameters lifts decl's prefix parameters one at a time into the
// checking context (spec §4.3.4): each parameter's type is checked and
// evaluated, a fresh generated variable of that type is bound in both
// Γ and env, and checkBody runs once every parameter has been lifted.
// The returned signature/body expressions are rebuilt with an
// enclosing Π/λ per lifted parameter, so the declaration as a whole
// reads exactly as if it had been written with no prefix parameters at
// all and an explicitly telescoped Π signature and nested λ body.
func liftParameters(depth int, state State, params []syntax.Param, checkBody func(State) (syntax.Expression, syntax.Expression, error)) (syntax.Expression, syntax.Expression, error) {
	if len(params) == 0 {
		return checkBody(state)
	}
	param := params[0]
	if _, err := CheckType(depth, state, param.Type); err != nil {
		return nil, nil, err
	}
	typeValue := evaluator.Eval(param.Type, state.Env)
	gen := generated(depth)
	gamma, err := UpdateGamma(state.Gamma, param.Pattern, typeValue, gen)
	if err != nil {
		return nil, nil, err
	}
	inner := State{Gamma: gamma, Env: syntax.UpVar(state.Env, param.Pattern, gen)}

	signature, body, err := liftParameters(depth+1, inner, params[1:], checkBody)
	if err != nil {
		return nil, nil, err
	}

	liftedSignature := syntax.Pi{Domain: syntax.Typed{Pattern: param.Pattern, Domain: param.Type}, Body: signature}
	liftedBody := syntax.Lambda{Param: param.Pattern, ParamType: typeValue, Body: body}
	return liftedSignature, liftedBody, nil
}
