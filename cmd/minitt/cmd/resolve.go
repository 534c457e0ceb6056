package cmd

import (
	"os"

	"github.com/minitt-lang/minitt/internal/diagnostics"
	"github.com/minitt-lang/minitt/internal/syntax"
	"github.com/minitt-lang/minitt/pkg/minitt"
)

// checkAndResolveResult type-checks ex's program and resolves its
// `result` binding out of the returned state's environment, the
// shared first step of `eval` and `normalize`. It exits the process on
// any failure, matching exitWithError's use elsewhere in this package.
func checkAndResolveResult(ex example) *syntax.Value {
	if ex.WantError != "" {
		exitWithError("%s: does not type-check (%s), nothing to resolve", ex.Name, ex.WantError)
	}

	checker := minitt.New()
	var (
		state    minitt.TCS
		checkErr error
	)
	func() {
		defer func() {
			if err := diagnostics.RecoverInvariant(); err != nil {
				checkErr = err
			}
		}()
		state, checkErr = checker.CheckMain(ex.Program)
	}()
	if checkErr != nil {
		diagnostics.Render(os.Stderr, checkErr, useColor())
		exitWithError("%s: unexpected failure", ex.Name)
	}

	value, err := state.Env.Resolve("result")
	if err != nil {
		exitWithError("%s: %s", ex.Name, err)
	}
	return value
}
