// Package diagnostics renders checker errors for a terminal: the
// package-level "should not happen" split between user errors and
// invariant violations (spec §7) becomes, at this layer, the
// difference between a short colorized message and a recovered-panic
// dump.
package diagnostics

import (
	"errors"
	"fmt"
	"io"

	"github.com/minitt-lang/minitt/internal/checker"
	"github.com/minitt-lang/minitt/internal/subtype"
	"github.com/minitt-lang/minitt/internal/syntax"
)

const (
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

// Render writes a one-or-two-line diagnostic for err to w. When color
// is true (the driver has already resolved the isatty + minitt.yaml
// policy, see internal/config.Config.UseColor), the headline is
// colorized red for a hard type error and yellow for a located
// wrapper's trailing context line.
func Render(w io.Writer, err error, color bool) {
	var located *checker.LocatedError
	if errors.As(err, &located) {
		headline(w, located.Inner, color)
		if color {
			fmt.Fprintf(w, "%swhen checking the declaration of `%s`%s\n", colorYellow, located.Pattern.String(), colorReset)
		} else {
			fmt.Fprintf(w, "when checking the declaration of `%s`\n", located.Pattern.String())
		}
		return
	}
	headline(w, err, color)
}

func headline(w io.Writer, err error, color bool) {
	msg := describe(err)
	if color {
		fmt.Fprintf(w, "%serror:%s %s\n", colorRed, colorReset, msg)
		return
	}
	fmt.Fprintf(w, "error: %s\n", msg)
}

// describe renders the specific checker/subtype error kind with a bit
// more context than its bare Error() string, mirroring how a
// diagnostics layer usually adds source-position framing around a
// plain message — Mini-TT has no source positions (no parser in
// scope, spec §6.1), so the added context is the offending value's
// shape instead.
func describe(err error) string {
	switch e := err.(type) {
	case *checker.UnresolvedNameError:
		return fmt.Sprintf("unresolved name `%s`", e.Name)
	case *checker.InvalidConstructorError:
		return fmt.Sprintf("`%s` is not a valid constructor here", e.Name)
	case *checker.MissingCaseError:
		return fmt.Sprintf("missing case for constructor `%s`", e.Name)
	case *checker.UnexpectedCasesError:
		return fmt.Sprintf("unexpected case(s): %v", e.Names)
	case *checker.WantPiButError:
		return fmt.Sprintf("expected a function type, found %s", kindName(e.Value))
	case *checker.WantSigmaButError:
		return fmt.Sprintf("expected a pair type, found %s", kindName(e.Value))
	case *checker.CannotInferError:
		return "cannot infer a type for this expression; add an annotation"
	case *checker.NotTypeTypeError:
		return fmt.Sprintf("expected a type, found %s", kindName(e.Value))
	case *checker.TypeMismatchError:
		return fmt.Sprintf("type mismatch: expected %s, found %s", kindName(e.Expected), kindName(e.Actual))
	case *checker.WrongExpectedKindError:
		return fmt.Sprintf("expected %s, found %s", kindName(&syntax.Value{Kind: e.Want}), kindName(e.Got))
	case *checker.LevelMismatchError:
		return fmt.Sprintf("universe level %d exceeds bound %d", e.Actual, e.Bound)
	case *checker.PatternMismatchError:
		return fmt.Sprintf("pattern `%s` does not match the expected type's shape", e.Pattern.String())
	case *subtype.TypeMismatchError:
		return fmt.Sprintf("not a subtype: %s is not a subtype of %s", kindName(e.Sub), kindName(e.Super))
	case *subtype.UnexpectedCasesError:
		return fmt.Sprintf("constructor `%s` is not permitted by the expected sum type", e.Name)
	case *subtype.ReadBackTypeMismatchError:
		return "the two types are not definitionally equal"
	default:
		return err.Error()
	}
}

func kindName(v *syntax.Value) string {
	if v == nil {
		return "<unknown>"
	}
	switch v.Kind {
	case syntax.KUnit:
		return "Unit"
	case syntax.KOne:
		return "One"
	case syntax.KType:
		return fmt.Sprintf("Type(%d)", v.Level)
	case syntax.KPi:
		return "a Π type"
	case syntax.KSigma:
		return "a Σ type"
	case syntax.KPair:
		return "a pair"
	case syntax.KConstructor:
		return fmt.Sprintf("constructor `%s`", v.Name)
	case syntax.KSplit:
		return "a split function"
	case syntax.KSum:
		return "a sum type"
	case syntax.KLambda:
		return "a function"
	case syntax.KNeutral:
		return "a neutral value"
	default:
		return "<unknown>"
	}
}

// RecoverInvariant converts a panicking syntax.InvariantViolationError
// (an evaluator "should not happen" case, spec §7) into an error so
// cmd/minitt can report it distinctly from an ordinary type error —
// this is a bug report, not a user mistake.
func RecoverInvariant() error {
	r := recover()
	if r == nil {
		return nil
	}
	if iv, ok := r.(*syntax.InvariantViolationError); ok {
		return fmt.Errorf("internal error (please report): %w", iv)
	}
	panic(r)
}
