// Package evaluator implements Mini-TT's normalization-by-evaluation
// front half (spec §2 item 2, §4.1): turning an Expression into a
// Value under a persistent Env. The companion half, read-back, lives
// in package normalform.
package evaluator

import (
	"fmt"

	"github.com/minitt-lang/minitt/internal/syntax"
)

func init() {
	// Break the syntax<->evaluator import cycle: CaseTree entries and
	// Env's UpDec frames need to evaluate an Expression under an Env,
	// but Expression/Env live in syntax, which evaluator imports.
	syntax.SetEval(Eval)
}

// Eval evaluates expr to a Value under env ("eval" in Mini-TT, spec
// §4.1). It panics (via syntax's InvariantViolationError) only on
// shapes that a passing type-check already rules out — Void's
// evaluation is undefined and Declaration/Constant in a position that
// reaches here is always well-typed by construction.
func Eval(expr syntax.Expression, env *syntax.Env) *syntax.Value {
	switch e := expr.(type) {
	case syntax.Unit:
		return syntax.VUnit()
	case syntax.One:
		return syntax.VOne()
	case syntax.TypeExpr:
		return syntax.VType(e.Level)
	case syntax.Var:
		v, err := env.Resolve(e.Name)
		if err != nil {
			panic(&syntax.InvariantViolationError{Message: err.Error()})
		}
		return v
	case syntax.Sum:
		return syntax.VSum(syntax.BranchToCaseTree(e.Branches, env))
	case syntax.Split:
		return syntax.VSplit(syntax.BranchToCaseTree(e.Branches, env))
	case syntax.Merge:
		return evalMerge(e, env)
	case syntax.Pi:
		domain := Eval(e.Domain.Domain, env)
		closure := syntax.CloAbstraction(e.Domain.Pattern, domain, e.Body, env)
		return syntax.VPi(domain, closure)
	case syntax.Sigma:
		first := Eval(e.Domain.Domain, env)
		closure := syntax.CloAbstraction(e.Domain.Pattern, first, e.Body, env)
		return syntax.VSigma(first, closure)
	case syntax.Lambda:
		closure := syntax.CloAbstraction(e.Param, e.ParamType, e.Body, env)
		return syntax.VLambda(closure)
	case syntax.First:
		return syntax.Fst(Eval(e.Pair, env))
	case syntax.Second:
		return syntax.Snd(Eval(e.Pair, env))
	case syntax.Application:
		fn := Eval(e.Function, env)
		arg := Eval(e.Argument, env)
		return syntax.Apply(fn, arg)
	case syntax.Pair:
		return syntax.VPair(Eval(e.First, env), Eval(e.Second, env))
	case syntax.Constructor:
		return syntax.VConstructor(e.Name, Eval(e.Payload, env))
	case syntax.DeclarationExpr:
		return Eval(e.Rest, syntax.UpDec(env, e.Decl))
	case syntax.Constant:
		value := Eval(e.Body, env)
		return Eval(e.Rest, syntax.UpVar(env, e.Pattern, value))
	case syntax.Void:
		panic(&syntax.InvariantViolationError{Message: "cannot evaluate Void: reached the end of a program"})
	default:
		panic(&syntax.InvariantViolationError{Message: fmt.Sprintf("cannot evaluate: %T", expr)})
	}
}

// evalMerge implements Merge(a, b): evaluate both operands, require
// both to reduce to Sum values, and concatenate their case trees
// (spec §4.1). The level of the result is the max of the two operand
// levels: since Mini-TT records a Sum's level eagerly as 0 (DESIGN
// NOTE §9, decision (a)), this reduces to 0 in practice, but the max
// is still computed explicitly so a future change to decision (a)
// only needs to change Value.LevelSafe/Sum construction, not this
// call site.
func evalMerge(e syntax.Merge, env *syntax.Env) *syntax.Value {
	left := Eval(e.Left, env)
	if left.Kind != syntax.KSum {
		panic(&syntax.InvariantViolationError{Message: fmt.Sprintf("left operand of merge is not a Sum: kind %v", left.Kind)})
	}
	right := Eval(e.Right, env)
	if right.Kind != syntax.KSum {
		panic(&syntax.InvariantViolationError{Message: fmt.Sprintf("right operand of merge is not a Sum: kind %v", right.Kind)})
	}
	merged := syntax.MergeCaseTree(left.Cases, right.Cases)
	level := left.Level
	if right.Level > level {
		level = right.Level
	}
	result := syntax.VSum(merged)
	result.Level = level
	return result
}
