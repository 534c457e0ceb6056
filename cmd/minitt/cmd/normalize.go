package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minitt-lang/minitt/pkg/minitt"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <example>",
	Short: "Type-check an example and print the normal form of its `result` binding",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(_ *cobra.Command, args []string) error {
	ex, ok := findExample(args[0])
	if !ok {
		exitWithError("no such example: %s", args[0])
	}

	value := checkAndResolveResult(ex)
	fmt.Printf("%s: %s\n", ex.Name, minitt.Readback(value))
	return nil
}
