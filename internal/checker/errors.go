package checker

import (
	"errors"
	"fmt"

	"github.com/minitt-lang/minitt/internal/syntax"
)

// UnresolvedNameError reports a free variable with no entry in Γ.
type UnresolvedNameError struct {
	Name string
}

func (e *UnresolvedNameError) Error() string {
	return fmt.Sprintf("unresolved name: `%s`", e.Name)
}

// InvalidConstructorError reports a constructor checked against a sum
// type that does not declare it.
type InvalidConstructorError struct {
	Name string
}

func (e *InvalidConstructorError) Error() string {
	return fmt.Sprintf("`%s` is not a constructor of the expected sum type", e.Name)
}

// MissingCaseError reports a split missing a clause for a sum
// constructor the expected type requires.
type MissingCaseError struct {
	Name string
}

func (e *MissingCaseError) Error() string {
	return fmt.Sprintf("split is missing a case for constructor `%s`", e.Name)
}

// UnexpectedCasesError reports split clauses not covered by the
// expected sum type.
type UnexpectedCasesError struct {
	Names []string
}

func (e *UnexpectedCasesError) Error() string {
	return fmt.Sprintf("split has unexpected cases: %v", e.Names)
}

// WantPiButError reports application of a value that did not infer to
// a Π type.
type WantPiButError struct {
	Value    *syntax.Value
	Argument syntax.Expression
}

func (e *WantPiButError) Error() string {
	return fmt.Sprintf("expected a Π type, got value of kind %v", e.Value.Kind)
}

// WantSigmaButError reports a projection of a value that did not infer
// to a Σ type.
type WantSigmaButError struct {
	Value *syntax.Value
}

func (e *WantSigmaButError) Error() string {
	return fmt.Sprintf("expected a Σ type, got value of kind %v", e.Value.Kind)
}

// CannotInferError reports an expression in inference position with no
// synthesis rule (spec §4.3.1's default case).
type CannotInferError struct {
	Expr syntax.Expression
}

func (e *CannotInferError) Error() string {
	return fmt.Sprintf("cannot infer a type for %T", e.Expr)
}

// NotTypeTypeError reports an expression in type position whose
// inferred type is not itself a Type(ℓ).
type NotTypeTypeError struct {
	Value *syntax.Value
}

func (e *NotTypeTypeError) Error() string {
	return fmt.Sprintf("expected a type, inferred value of kind %v", e.Value.Kind)
}

// TypeMismatchError reports a canonical equivalence failure, e.g.
// Type(ℓ) checked against Type(ℓ') with ℓ ≥ ℓ'.
type TypeMismatchError struct {
	Expected, Actual *syntax.Value
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected kind %v, got kind %v", e.Expected.Kind, e.Actual.Kind)
}

// LevelMismatchError reports a sum/Π/Σ type whose computed level
// exceeds the level it was checked against.
type LevelMismatchError struct {
	Actual, Bound syntax.Level
}

func (e *LevelMismatchError) Error() string {
	return fmt.Sprintf("level mismatch: level %d exceeds bound %d", e.Actual, e.Bound)
}

// WrongExpectedKindError reports that an introduction form (Pair or
// Constructor) was checked against an expected type value whose Kind
// doesn't match what that form introduces. Sum, Pi and Sigma checked
// against a non-Type report NotTypeTypeError instead.
type WrongExpectedKindError struct {
	Want syntax.ValueKind
	Got  *syntax.Value
}

func (e *WrongExpectedKindError) Error() string {
	return fmt.Sprintf("expected a type of kind %v, got kind %v", e.Want, e.Got.Kind)
}

// PatternMismatchError reports updating Γ with a pair pattern against
// a non-Σ type.
type PatternMismatchError struct {
	Pattern syntax.Pattern
}

func (e *PatternMismatchError) Error() string {
	return fmt.Sprintf("cannot update the typing context with pattern `%s`", e.Pattern.String())
}

// LocatedError wraps another checker error with the pattern of the
// declaration being checked when it arose. Only the innermost wrapper
// survives — locate() refuses to nest a second one (spec §7).
type LocatedError struct {
	Inner   error
	Pattern syntax.Pattern
}

func (e *LocatedError) Error() string {
	return fmt.Sprintf("%s\nwhen checking the declaration of `%s`", e.Inner.Error(), e.Pattern.String())
}

func (e *LocatedError) Unwrap() error { return e.Inner }

// locate wraps err with pattern unless it is already Located — the
// first wrapper wins (spec §7).
func locate(err error, pattern syntax.Pattern) error {
	if err == nil {
		return nil
	}
	var located *LocatedError
	if errors.As(err, &located) {
		return err
	}
	return &LocatedError{Inner: err, Pattern: pattern}
}
