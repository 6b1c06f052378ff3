package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mizuki-dev/parsebench/internal/bench"
	"github.com/mizuki-dev/parsebench/internal/config"
	"github.com/mizuki-dev/parsebench/internal/corpus"
	"github.com/mizuki-dev/parsebench/internal/executor"
	"github.com/mizuki-dev/parsebench/internal/report"
	"github.com/spf13/cobra"
)

// NewBenchCmd creates the bench command.
func NewBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [paths...]",
		Short: "Benchmark parsing backends over a corpus of source files",
		Long: `Bench collects source files from the given paths, runs each requested
parsing backend over the whole corpus, and reports per-backend timing
and throughput.

Backends run strictly one after another in the order they were
requested; every file is parsed individually and its wall-clock and CPU
time accumulated. Throughput is derived from CPU time, so results are
comparable across machines with different background load.

Available backends: goparser, treesitter

Examples:
  # Benchmark the default go/parser backend over a directory
  parsebench bench --parser goparser ./src

  # Compare both backends over the same corpus, ten passes each
  parsebench bench -p goparser -p treesitter -n 10 ./src

  # Skip function bodies where the backend supports it
  parsebench bench -p goparser --skip-bodies ./src

  # Output JSON report to a file
  parsebench bench -p goparser --json -o report.json ./src

Configuration file (.parsebench) example:
  parsers:
    - goparser
    - treesitter
  iterations: 5
  skipBodies: false
  extension: .go`,
		Args: cobra.ArbitraryArgs,
		RunE: runBenchCmd,
	}

	// Benchmark behavior flags
	cmd.Flags().StringSliceP("parser", "p", nil,
		"Backend to benchmark; repeatable, runs in the given order (goparser, treesitter)")
	cmd.Flags().IntP("iterations", "n", config.DefaultIterations,
		"Number of passes over the corpus per backend")
	cmd.Flags().Bool("skip-bodies", false,
		"Skip parsing of function bodies where the backend supports it")
	cmd.Flags().String("ext", config.DefaultExtension,
		"Source file extension to collect, including the leading dot")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .parsebench in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runBenchCmd executes the bench command.
func runBenchCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	return runBench(cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
//
// Precedence is file defaults first, then explicitly set flags: the
// configuration file is applied to the defaults, and any flag the user
// actually passed overrides the file's value.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load run defaults from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Explicitly set flags override config file defaults.
	if cmd.Flags().Changed("parser") {
		cfg.Parsers, err = cmd.Flags().GetStringSlice("parser")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("iterations") {
		cfg.Iterations, err = cmd.Flags().GetInt("iterations")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("skip-bodies") {
		cfg.SkipBodies, err = cmd.Flags().GetBool("skip-bodies")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("ext") {
		cfg.Extension, err = cmd.Flags().GetString("ext")
		if err != nil {
			return nil, err
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Get positional arguments (corpus files and directories)
	cfg.Paths = args

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runBench executes the benchmark.
//
// Backends are resolved up front so an unknown name fails before any
// parsing work starts. The corpus is collected and measured exactly
// once and shared by all backends. The first parse failure aborts the
// whole run: no report is written and the error propagates unchanged.
func runBench(cfg *config.Config, logger *slog.Logger) error {
	executors, err := executor.Resolve(cfg.Parsers)
	if err != nil {
		return err
	}

	logger.Info("starting benchmark",
		"parsers", cfg.Parsers,
		"iterations", cfg.Iterations,
		"skipBodies", cfg.SkipBodies,
		"paths", cfg.Paths,
	)

	collector := corpus.NewCollector(
		corpus.WithExtension(cfg.Extension),
		corpus.WithCollectorLogger(logger),
	)
	buffers := collector.Collect(cfg.Paths)
	stats := corpus.ComputeStats(buffers)

	logger.Info("corpus collected",
		"files", stats.FileCount,
		"bytes", stats.TotalBytes,
		"lines", stats.TotalLines,
	)

	runner := bench.New(bench.WithLogger(logger))
	opts := executor.Options{SkipBodies: cfg.SkipBodies}

	results := make([]*bench.Result, 0, len(executors))
	for _, exec := range executors {
		result, err := runner.Run(exec, buffers, stats, opts, cfg.Iterations)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	summary := &report.Summary{
		Stats:      stats,
		Iterations: cfg.Iterations,
		Results:    results,
	}

	return outputReport(cfg, summary)
}

// outputReport outputs the benchmark summary in the requested format.
func outputReport(cfg *config.Config, summary *report.Summary) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output)
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewTextWriter(output)
	}

	_, err := writer.Write(summary)
	return err
}
