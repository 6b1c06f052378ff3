// Package main provides the entry point for the parsebench CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for parsebench.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parsebench",
		Short: "Benchmark interchangeable Go parsing backends",
		Long: `parsebench measures and compares the throughput of interchangeable
Go parsing backends (go/parser and tree-sitter) over a corpus of
source files. It reports wall-clock time, CPU time, and CPU-time-based
byte and line throughput per backend.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewBenchCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
// Any error surfaces as a single diagnostic line on stderr and a
// nonzero exit status; no partial results are printed for the backend
// in progress at the time of failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
