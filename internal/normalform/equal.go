package normalform

import "github.com/minitt-lang/minitt/internal/syntax"

// Equal reports whether two normal forms are structurally identical
// ("eqNf" in Mini-TT, spec §4.2.2): since Readback already resolved
// every binder to a depth-indexed generated variable, structural
// equality here is exactly definitional equality on the values the two
// normal forms were read back from (spec §8's "read-back canonicity"
// property) — no alpha-renaming or further reduction is needed.
func Equal(a, b *NormalExpr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NUnit, NOne:
		return true
	case NType:
		return a.Level == b.Level
	case NLambda:
		return Equal(a.Body, b.Body)
	case NPi, NSigma:
		return Equal(a.Domain, b.Domain) && Equal(a.Body, b.Body)
	case NPair:
		return Equal(a.First, b.First) && Equal(a.Second, b.Second)
	case NConstructor:
		return a.Name == b.Name && Equal(a.Payload, b.Payload)
	case NSplit, NSum:
		return equalCaseTree(a.Cases, b.Cases)
	case NNeutral:
		return equalNeutral(a.Neutral, b.Neutral)
	default:
		return false
	}
}

// equalNeutral compares two read-back neutrals ("eqNeutral").
func equalNeutral(a, b *Neutral) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NGenerated:
		return a.Generated == b.Generated
	case NApplication:
		return equalNeutral(a.Inner, b.Inner) && Equal(a.Argument, b.Argument)
	case NFirst, NSecond:
		return equalNeutral(a.Inner, b.Inner)
	case NSplitNeutral:
		return equalNeutral(a.Inner, b.Inner) && equalCaseTree(a.Cases, b.Cases)
	default:
		return false
	}
}

// equalCaseTree compares two read-back case trees by constructor name
// and, per arm, either the read-back value (Left/HasValue) or the
// captured expression and environment verbatim (Right) — the Right arm
// is never forced here, matching Readback's own refusal to force it
// (spec §4.2's note on recursive sum types such as `nat`).
func equalCaseTree(a, b *CaseTree) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.Names) != len(b.Names) {
		return false
	}
	for _, name := range a.Names {
		ca, ok := a.Get(name)
		if !ok {
			return false
		}
		cb, ok := b.Get(name)
		if !ok {
			return false
		}
		if ca.HasValue != cb.HasValue {
			return false
		}
		if ca.HasValue {
			if !Equal(ca.Value, cb.Value) {
				return false
			}
			continue
		}
		if !equalExpression(ca.Expr, cb.Expr) || !equalEnv(ca.Env, cb.Env) {
			return false
		}
	}
	return true
}

// equalEnv compares two read-back environments frame by frame: UpDec
// frames compare their declarations verbatim, UpVar frames compare
// their bound (already read-back) values.
func equalEnv(a, b *Env) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ENil:
		return true
	case EUpDec:
		return equalDeclaration(a.Decl, b.Decl) && equalEnv(a.Parent, b.Parent)
	case EUpVar:
		return equalPattern(a.Pattern, b.Pattern) && Equal(a.Value, b.Value) && equalEnv(a.Parent, b.Parent)
	default:
		return false
	}
}

// equalPattern is raw structural equality on syntax.Pattern, used only
// to compare Right-arm case environments verbatim (never to decide
// type-checking equivalence, which always goes through Equal above).
func equalPattern(a, b syntax.Pattern) bool {
	switch pa := a.(type) {
	case syntax.PatUnit:
		_, ok := b.(syntax.PatUnit)
		return ok
	case syntax.PatVar:
		pb, ok := b.(syntax.PatVar)
		return ok && pa.Name == pb.Name
	case syntax.PatPair:
		pb, ok := b.(syntax.PatPair)
		return ok && equalPattern(pa.First, pb.First) && equalPattern(pa.Second, pb.Second)
	default:
		return false
	}
}

// equalExpression is raw structural equality on syntax.Expression,
// used only to compare Right-arm case bodies verbatim.
func equalExpression(a, b syntax.Expression) bool {
	switch ea := a.(type) {
	case syntax.Unit:
		_, ok := b.(syntax.Unit)
		return ok
	case syntax.One:
		_, ok := b.(syntax.One)
		return ok
	case syntax.TypeExpr:
		eb, ok := b.(syntax.TypeExpr)
		return ok && ea.Level == eb.Level
	case syntax.Void:
		_, ok := b.(syntax.Void)
		return ok
	case syntax.Var:
		eb, ok := b.(syntax.Var)
		return ok && ea.Name == eb.Name
	case syntax.Sum:
		eb, ok := b.(syntax.Sum)
		return ok && equalBranch(ea.Branches, eb.Branches)
	case syntax.Split:
		eb, ok := b.(syntax.Split)
		return ok && equalBranch(ea.Branches, eb.Branches)
	case syntax.Merge:
		eb, ok := b.(syntax.Merge)
		return ok && equalExpression(ea.Left, eb.Left) && equalExpression(ea.Right, eb.Right)
	case syntax.Pi:
		eb, ok := b.(syntax.Pi)
		return ok && equalTyped(ea.Domain, eb.Domain) && equalExpression(ea.Body, eb.Body)
	case syntax.Sigma:
		eb, ok := b.(syntax.Sigma)
		return ok && equalTyped(ea.Domain, eb.Domain) && equalExpression(ea.Body, eb.Body)
	case syntax.Lambda:
		eb, ok := b.(syntax.Lambda)
		return ok && equalPattern(ea.Param, eb.Param) && equalExpression(ea.Body, eb.Body)
	case syntax.First:
		eb, ok := b.(syntax.First)
		return ok && equalExpression(ea.Pair, eb.Pair)
	case syntax.Second:
		eb, ok := b.(syntax.Second)
		return ok && equalExpression(ea.Pair, eb.Pair)
	case syntax.Application:
		eb, ok := b.(syntax.Application)
		return ok && equalExpression(ea.Function, eb.Function) && equalExpression(ea.Argument, eb.Argument)
	case syntax.Pair:
		eb, ok := b.(syntax.Pair)
		return ok && equalExpression(ea.First, eb.First) && equalExpression(ea.Second, eb.Second)
	case syntax.Constructor:
		eb, ok := b.(syntax.Constructor)
		return ok && ea.Name == eb.Name && equalExpression(ea.Payload, eb.Payload)
	case syntax.Constant:
		eb, ok := b.(syntax.Constant)
		return ok && equalPattern(ea.Pattern, eb.Pattern) && equalExpression(ea.Body, eb.Body) && equalExpression(ea.Rest, eb.Rest)
	case syntax.DeclarationExpr:
		eb, ok := b.(syntax.DeclarationExpr)
		return ok && equalDeclaration(ea.Decl, eb.Decl) && equalExpression(ea.Rest, eb.Rest)
	default:
		return false
	}
}

func equalTyped(a, b syntax.Typed) bool {
	return equalPattern(a.Pattern, b.Pattern) && equalExpression(a.Domain, b.Domain)
}

func equalBranch(a, b *syntax.Branch) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, bn := a.Names(), b.Names()
	if len(an) != len(bn) {
		return false
	}
	for _, name := range an {
		ea, ok := a.Get(name)
		if !ok {
			return false
		}
		eb, ok := b.Get(name)
		if !ok {
			return false
		}
		if !equalExpression(ea, eb) {
			return false
		}
	}
	return true
}

func equalDeclaration(a, b *syntax.Declaration) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || len(a.Params) != len(b.Params) {
		return false
	}
	if !equalPattern(a.Pattern, b.Pattern) {
		return false
	}
	for i := range a.Params {
		if !equalPattern(a.Params[i].Pattern, b.Params[i].Pattern) {
			return false
		}
		if !equalExpression(a.Params[i].Type, b.Params[i].Type) {
			return false
		}
	}
	return equalExpression(a.Signature, b.Signature) && equalExpression(a.Body, b.Body)
}
