package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration. They are
// package-level sentinels so callers can use errors.Is().
var (
	// ErrInvalidIterations is returned when the iteration count is not
	// positive. Zero iterations would measure nothing.
	ErrInvalidIterations = errors.New("invalid iterations: must be at least 1")

	// ErrInvalidExtension is returned when the source extension does
	// not start with a dot (e.g. "go" instead of ".go").
	ErrInvalidExtension = errors.New("invalid extension: must start with '.'")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at
	// a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
