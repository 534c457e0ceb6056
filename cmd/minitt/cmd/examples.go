package cmd

import "github.com/minitt-lang/minitt/internal/syntax"

// example is one of the end-to-end scenarios from spec §8, built
// directly as a syntax.Expression tree rather than parsed from source
// text — Mini-TT's core has no parser in scope (spec §6.1 takes
// Expression/Pattern/Declaration as already-built input), so the CLI's
// `examples` family of commands plays the parser's role for a fixed
// set of illustrative programs instead of reading files.
//
// Every example's program ends in a `result` declaration followed by
// Void, so `check`/`eval`/`normalize` can always find the interesting
// value by resolving the name `result` out of the final checker state
// — a declaration (not a Constant) is used for this specifically
// because only declarations persist their binding into the state
// Check returns (see checker.Check's doc comment).
type example struct {
	Name        string
	Description string
	WantError   string // empty if the program is expected to type-check
	Program     syntax.Expression
}

func declare(pattern syntax.Pattern, signature, body syntax.Expression, kind syntax.DeclKind, rest syntax.Expression) syntax.Expression {
	return syntax.DeclarationExpr{
		Decl: &syntax.Declaration{Pattern: pattern, Signature: signature, Body: body, Kind: kind},
		Rest: rest,
	}
}

func result(signature, body syntax.Expression) syntax.Expression {
	return declare(syntax.PatVar{Name: "result"}, signature, body, syntax.Simple, syntax.Void{})
}

var examples = buildExamples()

func buildExamples() []example {
	// id : Π A:Type. Π _:A. A = λA. λa. a
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
	idApplied := syntax.Application{
		Function: syntax.Application{Function: syntax.Var{Name: "id"}, Argument: syntax.One{}},
		Argument: syntax.Unit{},
	}
	identity := example{
		Name:        "identity",
		Description: "polymorphic identity function applied to (One, Unit)",
		Program:     declare(syntax.PatVar{Name: "id"}, idSignature, idBody, syntax.Simple, result(syntax.One{}, idApplied)),
	}

	// rec nat : Type = Sum { Zero 1 | Suc nat }; one : nat = Suc (Zero Unit)
	natBranches := syntax.NewBranch()
	natBranches.MustInsert("Zero", syntax.One{})
	natBranches.MustInsert("Suc", syntax.Var{Name: "nat"})
	natSignature := syntax.TypeExpr{Level: 0}
	natBody := syntax.Sum{Branches: natBranches}
	oneValue := syntax.Constructor{Name: "Suc", Payload: syntax.Constructor{Name: "Zero", Payload: syntax.Unit{}}}
	recursiveNat := example{
		Name:        "recursive-nat",
		Description: "a recursive sum type (nat) and a value built from it",
		Program: declare(syntax.PatVar{Name: "nat"}, natSignature, natBody, syntax.Recursive,
			result(syntax.Var{Name: "nat"}, oneValue)),
	}

	// bad : One = Type(0) -- fails with TypeMismatch
	badType := example{
		Name:        "bad-type",
		Description: "a Type checked against One, expected to fail",
		WantError:   "TypeMismatch",
		Program:     result(syntax.One{}, syntax.TypeExpr{Level: 0}),
	}

	// f : Π _:Sum{A 1 | B 1}. One = split { A _ => Unit } -- MissingCase("B")
	abBranches := syntax.NewBranch()
	abBranches.MustInsert("A", syntax.One{})
	abBranches.MustInsert("B", syntax.One{})
	splitMissingBranches := syntax.NewBranch()
	splitMissingBranches.MustInsert("A", syntax.Lambda{Param: syntax.PatUnit{}, Body: syntax.Unit{}})
	missingCase := example{
		Name:        "missing-case",
		Description: "a split missing a clause for constructor B",
		WantError:   "MissingCase",
		Program: result(
			syntax.Pi{Domain: syntax.Typed{Pattern: syntax.PatUnit{}, Domain: syntax.Sum{Branches: abBranches}}, Body: syntax.One{}},
			syntax.Split{Branches: splitMissingBranches},
		),
	}

	// g : Π _:Sum{A 1}. One = split { A _ => Unit | C _ => Unit } -- UnexpectedCases("C")
	aBranches := syntax.NewBranch()
	aBranches.MustInsert("A", syntax.One{})
	splitExtraBranches := syntax.NewBranch()
	splitExtraBranches.MustInsert("A", syntax.Lambda{Param: syntax.PatUnit{}, Body: syntax.Unit{}})
	splitExtraBranches.MustInsert("C", syntax.Lambda{Param: syntax.PatUnit{}, Body: syntax.Unit{}})
	unexpectedCase := example{
		Name:        "unexpected-case",
		Description: "a split with an extra clause C not in the expected sum",
		WantError:   "UnexpectedCases",
		Program: result(
			syntax.Pi{Domain: syntax.Typed{Pattern: syntax.PatUnit{}, Domain: syntax.Sum{Branches: aBranches}}, Body: syntax.One{}},
			syntax.Split{Branches: splitExtraBranches},
		),
	}

	// u : Type(1) = Type(0) -- ok (cumulativity); u2 : Type(0) = Type(0) -- fails (0 not < 0)
	universeOK := example{
		Name:        "universe-cumulative",
		Description: "Type(0) checked against Type(1): ok by cumulativity",
		Program:     result(syntax.TypeExpr{Level: 1}, syntax.TypeExpr{Level: 0}),
	}
	universeFail := example{
		Name:        "universe-non-cumulative",
		Description: "Type(0) checked against Type(0): fails, 0 is not < 0",
		WantError:   "TypeMismatch",
		Program:     result(syntax.TypeExpr{Level: 0}, syntax.TypeExpr{Level: 0}),
	}

	return []example{identity, recursiveNat, badType, missingCase, unexpectedCase, universeOK, universeFail}
}

func findExample(name string) (example, bool) {
	for _, e := range examples {
		if e.Name == name {
			return e, true
		}
	}
	return example{}, false
}

// countDeclarations counts the declaration/constant bindings threaded
// through a program's Rest chain, for the summary `check` prints.
func countDeclarations(expr syntax.Expression) int {
	switch e := expr.(type) {
	case syntax.DeclarationExpr:
		return 1 + countDeclarations(e.Rest)
	case syntax.Constant:
		return 1 + countDeclarations(e.Rest)
	default:
		return 0
	}
}
