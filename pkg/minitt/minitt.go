// Package minitt is the embeddable host API for the Mini-TT checker
// core, mirroring the shape of the teacher's own pkg/embed.VM: a
// small wrapper type constructed once per host program, exposing the
// operations a driver (CLI, REPL, test harness) needs without forcing
// callers to reach into internal/checker, internal/evaluator or
// internal/normalform directly.
package minitt

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/minitt-lang/minitt/internal/checker"
	"github.com/minitt-lang/minitt/internal/evaluator"
	"github.com/minitt-lang/minitt/internal/normalform"
	"github.com/minitt-lang/minitt/internal/syntax"
)

// Checker is a host-facing handle onto the Mini-TT core. It carries no
// state of its own beyond a count of the requests it has handled; each
// invocation is tagged with a fresh random request ID (see
// RequestError) — the actual typing state is the TCS value callers pass
// around explicitly, matching the core's "no hidden mutable state"
// design (spec §5).
type Checker struct {
	requests uint64
}

// New constructs a Checker.
func New() *Checker {
	return &Checker{}
}

// TCS is the checker's persistent state: the typing context Γ paired
// with the evaluation environment (spec §4.3). The zero value is not
// valid; start from InitialState.
type TCS = checker.State

// InitialState is the empty TCS that CheckMain starts a program from.
var InitialState = checker.InitialState

// RequestError wraps a checker error with the request ID it arose
// under, so multiple REPL-style checks running in one process can be
// told apart in logs (SPEC_FULL.md's domain-stack wiring for
// google/uuid).
type RequestError struct {
	RequestID uuid.UUID
	Err       error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("[%s] %s", e.RequestID, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

func (c *Checker) nextRequestID() uuid.UUID {
	c.requests++
	return uuid.New()
}

// CheckMain checks a whole program under an empty context, expected
// type One — programs do not return a value (spec §6.2).
func (c *Checker) CheckMain(program syntax.Expression) (TCS, error) {
	return c.CheckContextual(InitialState, program)
}

// CheckContextual checks another top-level fragment against an
// existing state, for REPL-style incremental checking (spec §6.2).
func (c *Checker) CheckContextual(state TCS, program syntax.Expression) (TCS, error) {
	id := c.nextRequestID()
	next, err := checker.Check(0, state, program, syntax.VOne())
	if err != nil {
		return state, &RequestError{RequestID: id, Err: err}
	}
	return next, nil
}

// CheckInferContextual infers a type for expr under an existing state,
// for a REPL's `:type` command (spec §6.2).
func (c *Checker) CheckInferContextual(state TCS, expr syntax.Expression) (*syntax.Value, error) {
	id := c.nextRequestID()
	value, err := checker.Infer(0, state, expr)
	if err != nil {
		return nil, &RequestError{RequestID: id, Err: err}
	}
	return value, nil
}

// Eval evaluates expr under env, exposed for a REPL's `:eval` command
// (spec §6.2).
func Eval(expr syntax.Expression, env *syntax.Env) *syntax.Value {
	return evaluator.Eval(expr, env)
}

// Readback converts v back into a normal form at binder depth 0,
// exposed for a REPL's `:normalize` command (spec §6.2).
func Readback(v *syntax.Value) *normalform.NormalExpr {
	return normalform.Readback(v, 0)
}

// LevelSafe returns the universe level of a type value, or (0, false)
// if v is not one of the type-valued kinds (spec §6.2).
func LevelSafe(v *syntax.Value) (syntax.Level, bool) {
	return v.LevelSafe()
}
