package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/minitt-lang/minitt/internal/diagnostics"
	"github.com/minitt-lang/minitt/pkg/minitt"
)

var checkCmd = &cobra.Command{
	Use:   "check <example>",
	Short: "Type-check one of the built-in example programs",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	ex, ok := findExample(args[0])
	if !ok {
		exitWithError("no such example: %s", args[0])
	}

	checker := minitt.New()
	start := time.Now()
	var checkErr error
	func() {
		defer func() {
			if err := diagnostics.RecoverInvariant(); err != nil {
				checkErr = err
			}
		}()
		_, checkErr = checker.CheckMain(ex.Program)
	}()
	elapsed := time.Since(start)

	if checkErr == nil {
		fmt.Printf("%s: ok (%s, %s declarations)\n", ex.Name, elapsed, humanize.Comma(int64(countDeclarations(ex.Program))))
		if ex.WantError != "" {
			exitWithError("%s: expected failure (%s) but it type-checked", ex.Name, ex.WantError)
		}
		return nil
	}

	if ex.WantError == "" {
		diagnostics.Render(os.Stderr, checkErr, useColor())
		exitWithError("%s: unexpected failure after %s", ex.Name, elapsed)
	}
	diagnostics.Render(os.Stdout, checkErr, useColor())
	fmt.Printf("%s: failed as expected (%s)\n", ex.Name, ex.WantError)
	return nil
}
