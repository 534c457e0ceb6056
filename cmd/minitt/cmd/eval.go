package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minitt-lang/minitt/pkg/minitt"
)

var evalCmd = &cobra.Command{
	Use:   "eval <example>",
	Short: "Type-check an example and evaluate its `result` binding",
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(_ *cobra.Command, args []string) error {
	ex, ok := findExample(args[0])
	if !ok {
		exitWithError("no such example: %s", args[0])
	}

	value := checkAndResolveResult(ex)
	fmt.Printf("%s: result = %s\n", ex.Name, minitt.Readback(value))
	return nil
}
