package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "halcyon",
	Short: "Halcyon - seed-alignment policy toolkit",
	Long: `Halcyon resolves, lints, and watches seed-alignment scoring policies
for short-read aligners.

A policy is a ;-separated string of TAG=value clauses, for example:

  MA=2;MMP=C6;RDG=5,3;MIN=0,0.66;SEED=0,22;IVAL=S,1.0,0.0

It parameterizes the aligner's scoring model (match bonus, mismatch and N
cost models, gap penalties, score thresholds) and its seed-extraction
strategy (seed geometry, interval function, position-search tunables).`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
