package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultIterations is the number of passes over the corpus per
	// backend. One pass is enough for large corpora; small corpora
	// need more iterations to rise above clock resolution.
	DefaultIterations = 1

	// DefaultExtension selects which files are collected from the
	// input paths. parsebench benchmarks Go parsers, so the default
	// is Go source.
	DefaultExtension = ".go"

	// AppName is the application name used for XDG directory paths.
	AppName = "parsebench"
)

// Config holds all configuration options for one benchmark run.
// It is populated from CLI flags (with optional defaults from the
// configuration file) and passed through the application via dependency
// injection rather than global state.
//
// Design decision: a single flat struct, as the number of options is
// small; nesting would add complexity without benefit.
type Config struct {
	// Parsers is the list of requested backend names, in request
	// order. Backends run in exactly this order. An empty selection is
	// legal and produces corpus statistics only.
	Parsers []string

	// Iterations is the number of passes over the corpus per backend.
	// Must be at least 1.
	Iterations int

	// SkipBodies asks backends to elide parsing of function and type
	// member bodies where they support it.
	SkipBodies bool

	// Extension is the source file extension to collect, including
	// the leading dot.
	Extension string

	// Paths is the positional list of input files and directories.
	Paths []string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches the standard locations (see FindConfigFile).
	ConfigFilePath string

	// JSONReport enables JSON report output instead of the default
	// text format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// default text format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report. When set,
	// the report is written there instead of stdout; directories are
	// created as needed.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Iterations: DefaultIterations,
		Extension:  DefaultExtension,
	}
}

// XDGConfigDir returns the XDG config directory for parsebench.
// On Linux: ~/.config/parsebench
// On macOS: ~/Library/Application Support/parsebench
// On Windows: %APPDATA%\parsebench
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes
// others irrelevant. Called once after CLI parsing, before any
// collection or benchmarking begins.
func (c *Config) Validate() error {
	if c.Iterations < 1 {
		return ErrInvalidIterations
	}

	if !strings.HasPrefix(c.Extension, ".") {
		return ErrInvalidExtension
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
