package checker

import "github.com/minitt-lang/minitt/internal/syntax"

// State is TCS in Mini-TT (spec §4.3): the typing context Γ paired
// with the persistent evaluation environment. Checking functions take
// a State and, where the rule calls for it, thread an updated one
// back out; see the doc comments on Check and CheckDeclaration for
// exactly which rules do and don't let bindings escape.
type State struct {
	Gamma *Gamma
	Env   *syntax.Env
}

// InitialState is the empty state check_main begins from (spec §6.2).
var InitialState = State{Gamma: Empty, Env: syntax.Nil}

// generated returns a fresh free variable at binder depth depth
// ("generate_value" in the original source, "Gen(i)" in the spec).
func generated(depth int) *syntax.Value {
	return syntax.VNeutral(syntax.NGen(depth))
}
