// Package normalform implements Mini-TT's read-back procedure (spec
// §2 item 3, §4.2): converting values back into level-indexed normal
// forms so two terms can be compared for β-η equivalence without
// alpha-renaming. It mirrors package syntax's Value/Neutral/Env
// shapes, but every bound occurrence of λ/Π/Σ is recorded as the
// integer depth at which it was introduced instead of by the
// environment it closed over, so structural equality on this AST is
// exactly definitional equality on the values it came from (spec §8's
// "read-back canonicity" and "α-invariance via depth" properties).
package normalform

import "github.com/minitt-lang/minitt/internal/syntax"

// NormalExpr is a read-back value. Like syntax.Value, it is a tagged
// struct rather than an interface: the same mutual-recursion and
// uniformity reasons apply (see syntax.Value's doc comment), and it
// additionally needs Equal, which is far simpler to write once over a
// single concrete type than by type-switching an interface at every
// comparison site.
type NormalExpr struct {
	Kind Kind

	Level Level

	// NPi / NSigma: Domain is the read-back domain; BinderDepth is the
	// depth at which the bound variable was introduced; Body is the
	// read-back codomain/second-component with that variable free at
	// BinderDepth.
	Domain      *NormalExpr
	BinderDepth int
	Body        *NormalExpr

	// NPair.
	First, Second *NormalExpr

	// NConstructor.
	Name    string
	Payload *NormalExpr

	// NSplit / NSum.
	Cases *CaseTree

	// NNeutral.
	Neutral *Neutral
}

// Kind tags the variant of a NormalExpr, matching syntax.ValueKind's
// set of canonical forms plus NNeutral.
type Kind int

// Level is re-exported so callers of this package don't need to
// import syntax just to spell out a universe level.
type Level = syntax.Level

const (
	NUnit Kind = iota
	NOne
	NType
	NPi
	NSigma
	NPair
	NConstructor
	NSplit
	NSum
	NLambda
	NNeutral
)

func unit() *NormalExpr { return &NormalExpr{Kind: NUnit} }
func one() *NormalExpr  { return &NormalExpr{Kind: NOne} }
func typ(level Level) *NormalExpr {
	return &NormalExpr{Kind: NType, Level: level}
}
func lambda(depth int, body *NormalExpr) *NormalExpr {
	return &NormalExpr{Kind: NLambda, BinderDepth: depth, Body: body}
}
func piOrSigma(kind Kind, domain *NormalExpr, depth int, body *NormalExpr) *NormalExpr {
	return &NormalExpr{Kind: kind, Domain: domain, BinderDepth: depth, Body: body}
}
func pair(first, second *NormalExpr) *NormalExpr {
	return &NormalExpr{Kind: NPair, First: first, Second: second}
}
func constructor(name string, payload *NormalExpr) *NormalExpr {
	return &NormalExpr{Kind: NConstructor, Name: name, Payload: payload}
}
func splitOrSum(kind Kind, cases *CaseTree) *NormalExpr {
	return &NormalExpr{Kind: kind, Cases: cases}
}
func neutral(n *Neutral) *NormalExpr { return &NormalExpr{Kind: NNeutral, Neutral: n} }

// Neutral is the read-back form of syntax.Neutral (spec §4.2.1):
// Generated(j), Application(fn, arg), First(k), Second(k) or
// Split(tree, k).
type Neutral struct {
	Kind      NeutralKind
	Generated int
	Inner     *Neutral
	Argument  *NormalExpr
	Cases     *CaseTree
}

// NeutralKind tags the variant of a Neutral.
type NeutralKind int

const (
	NGenerated NeutralKind = iota
	NApplication
	NFirst
	NSecond
	NSplitNeutral
)

// Case is the read-back form of syntax.Case: the Left arm (an
// already-evaluated value) is read back to a NormalExpr, the Right
// arm (an unevaluated expression) is kept verbatim together with its
// read-back environment, exactly as spec §4.2 specifies — forcing the
// Right arm here would diverge on recursive sum types such as `nat`.
type Case struct {
	HasValue bool
	Value    *NormalExpr
	Expr     syntax.Expression
	Env      *Env
}

// CaseTree is an ordered mapping from constructor name to Case,
// mirroring syntax.CaseTree.
type CaseTree struct {
	Names []string
	byKey map[string]Case
}

func newCaseTree() *CaseTree {
	return &CaseTree{byKey: make(map[string]Case)}
}

func (t *CaseTree) insert(name string, c Case) {
	if _, ok := t.byKey[name]; !ok {
		t.Names = append(t.Names, name)
	}
	t.byKey[name] = c
}

// Get looks up a case by name.
func (t *CaseTree) Get(name string) (Case, bool) {
	c, ok := t.byKey[name]
	return c, ok
}

// Env is the read-back form of syntax.Env (spec §4.2.1): Nil, UpDec
// (the declaration kept verbatim) or UpVar (with the bound value read
// back).
type Env struct {
	Kind    EnvKind
	Parent  *Env
	Pattern syntax.Pattern
	Value   *NormalExpr
	Decl    *syntax.Declaration
}

// EnvKind tags the variant of an Env.
type EnvKind int

const (
	ENil EnvKind = iota
	EUpVar
	EUpDec
)

var envNil = &Env{Kind: ENil}
