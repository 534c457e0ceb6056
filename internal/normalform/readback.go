package normalform

import "github.com/minitt-lang/minitt/internal/syntax"

// Readback converts a value back into a normal form at binder depth
// k ("rbV" in Mini-TT, spec §4.2). Binders introduce a fresh
// generated variable at the current depth and read back their body
// one depth deeper, so two α-equivalent values produce byte-for-byte
// identical normal forms (spec §8's α-invariance-via-depth property).
func Readback(v *syntax.Value, depth int) *NormalExpr {
	switch v.Kind {
	case syntax.KUnit:
		return unit()
	case syntax.KOne:
		return one()
	case syntax.KType:
		return typ(v.Level)
	case syntax.KLambda:
		body := v.Closure.Instantiate(generated(depth))
		return lambda(depth, Readback(body, depth+1))
	case syntax.KPi:
		body := v.Closure.Instantiate(generated(depth))
		return piOrSigma(NPi, Readback(v.Domain, depth), depth, Readback(body, depth+1))
	case syntax.KSigma:
		body := v.Closure.Instantiate(generated(depth))
		return piOrSigma(NSigma, Readback(v.Domain, depth), depth, Readback(body, depth+1))
	case syntax.KPair:
		return pair(Readback(v.First, depth), Readback(v.Second, depth))
	case syntax.KConstructor:
		return constructor(v.Name, Readback(v.Payload, depth))
	case syntax.KSplit:
		return splitOrSum(NSplit, readbackCaseTree(v.Cases, depth))
	case syntax.KSum:
		return splitOrSum(NSum, readbackCaseTree(v.Cases, depth))
	case syntax.KNeutral:
		return neutral(readbackNeutral(v.Neutral, depth))
	default:
		panic("normalform: unhandled value kind")
	}
}

func generated(depth int) *syntax.Value {
	return syntax.VNeutral(syntax.NGen(depth))
}

// readbackNeutral is "rbN" in Mini-TT.
func readbackNeutral(n syntax.Neutral, depth int) *Neutral {
	switch n.Kind {
	case syntax.NGenerated:
		return &Neutral{Kind: NGenerated, Generated: n.Generated}
	case syntax.NApplication:
		return &Neutral{
			Kind:     NApplication,
			Inner:    readbackNeutral(*n.Inner, depth),
			Argument: Readback(n.Argument, depth),
		}
	case syntax.NFirst:
		return &Neutral{Kind: NFirst, Inner: readbackNeutral(*n.Inner, depth)}
	case syntax.NSecond:
		return &Neutral{Kind: NSecond, Inner: readbackNeutral(*n.Inner, depth)}
	case syntax.NSplit:
		return &Neutral{
			Kind:  NSplitNeutral,
			Cases: readbackCaseTree(n.Cases, depth),
			Inner: readbackNeutral(*n.Inner, depth),
		}
	default:
		panic("normalform: unhandled neutral kind")
	}
}

// readbackCaseTree reads back every case: the Left (already-evaluated)
// arm is read back to a NormalExpr, the Right (unevaluated) arm is
// kept as-is with its captured environment read back (spec §4.2).
func readbackCaseTree(tree *syntax.CaseTree, depth int) *CaseTree {
	out := newCaseTree()
	tree.Each(func(name string, c syntax.Case) bool {
		if c.HasValue {
			out.insert(name, Case{HasValue: true, Value: Readback(c.Value, depth)})
		} else {
			out.insert(name, Case{Expr: c.Expr, Env: ReadbackEnv(c.Env, depth)})
		}
		return true
	})
	return out
}

// ReadbackEnv reads back an environment frame by frame ("rbRho" in
// Mini-TT, spec §4.2.1): Nil stays Nil, UpDec keeps its declaration
// verbatim, UpVar reads back its bound value.
func ReadbackEnv(env *syntax.Env, depth int) *Env {
	if env.IsNil() {
		return envNil
	}
	if env.IsDecl() {
		return &Env{Kind: EUpDec, Parent: ReadbackEnv(env.Parent(), depth), Decl: env.Decl()}
	}
	return &Env{
		Kind:    EUpVar,
		Parent:  ReadbackEnv(env.Parent(), depth),
		Pattern: env.Pattern(),
		Value:   Readback(env.Value(), depth),
	}
}
