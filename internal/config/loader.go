package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".parsebench"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .parsebench configuration file.
// It carries per-run defaults; CLI flags that were explicitly set
// override these values.
type File struct {
	// Parsers is the default backend selection.
	Parsers []string `yaml:"parsers,omitempty"`

	// Iterations is the default iteration count.
	Iterations int `yaml:"iterations,omitempty"`

	// SkipBodies is the default body-skipping setting.
	SkipBodies bool `yaml:"skipBodies,omitempty"`

	// Extension is the default source file extension.
	Extension string `yaml:"extension,omitempty"`
}

// LoadConfigFile loads run defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers
// should handle this based on whether the path was explicitly
// specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .parsebench in the current directory
//  3. Look for .parsebench in the XDG config directory
//  4. Look for .parsebench in the user's home directory
//
// Returns the path to the configuration file if found, or empty string
// if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), DefaultConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Apply copies the file's defaults into cfg for every value the file
// sets. Explicitly-set CLI flags are applied after this, so flags win.
func (cf *File) Apply(cfg *Config) {
	if len(cf.Parsers) > 0 {
		cfg.Parsers = append([]string(nil), cf.Parsers...)
	}
	if cf.Iterations > 0 {
		cfg.Iterations = cf.Iterations
	}
	if cf.SkipBodies {
		cfg.SkipBodies = true
	}
	if cf.Extension != "" {
		cfg.Extension = cf.Extension
	}
}
