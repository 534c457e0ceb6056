package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the built-in example programs",
	RunE: func(*cobra.Command, []string) error {
		for _, e := range examples {
			status := "type-checks"
			if e.WantError != "" {
				status = "fails: " + e.WantError
			}
			fmt.Printf("%-24s %-28s %s\n", e.Name, status, e.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}
