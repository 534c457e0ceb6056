// Package cmd implements the minitt CLI's cobra commands, the thin
// driver layer SPEC_FULL.md assigns everything outside the checker
// core to (spec §6.3): exit codes, colorized diagnostics and the
// fixed example programs this CLI operates on in place of a parser.
package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/minitt-lang/minitt/internal/config"
	"github.com/minitt-lang/minitt/internal/subtype"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "minitt",
	Short: "A minimal dependent type checker core",
	Long: `minitt is a driver around the Mini-TT checking core: a small
dependently-typed lambda calculus with Π/Σ types, a universe
hierarchy, labelled sum types and case-split functions, checked by a
bidirectional type checker over normalization-by-evaluation.

This binary has no parser: its commands operate on a fixed set of
example programs built directly as syntax trees (see "minitt
examples"), the way the core's own test suite does.`,
	SilenceUsage: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		subtype.StrictCumulativity = loaded.StrictCumulativity
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName, "path to minitt.yaml")
}

func useColor() bool {
	isTerminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return cfg.UseColor(isTerminal)
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "minitt: "+msg+"\n", args...)
	os.Exit(1)
}
