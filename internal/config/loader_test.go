package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigFile tests loading the YAML defaults file.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads all fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `parsers:
  - goparser
  - treesitter
iterations: 5
skipBodies: true
extension: .go2
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cf.Parsers) != 2 || cf.Parsers[0] != "goparser" || cf.Parsers[1] != "treesitter" {
			t.Errorf("unexpected parsers: %v", cf.Parsers)
		}
		if cf.Iterations != 5 {
			t.Errorf("expected 5 iterations, got %d", cf.Iterations)
		}
		if !cf.SkipBodies {
			t.Error("expected skipBodies true")
		}
		if cf.Extension != ".go2" {
			t.Errorf("expected .go2, got %q", cf.Extension)
		}
	})

	t.Run("returns ErrConfigNotFound for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("parsers: [unterminated"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}

// TestFileApply tests merging file defaults into a Config.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("applies set values", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cf := &File{Parsers: []string{"goparser"}, Iterations: 3, SkipBodies: true, Extension: ".swift"}
		cf.Apply(cfg)

		if len(cfg.Parsers) != 1 || cfg.Parsers[0] != "goparser" {
			t.Errorf("unexpected parsers: %v", cfg.Parsers)
		}
		if cfg.Iterations != 3 {
			t.Errorf("expected 3 iterations, got %d", cfg.Iterations)
		}
		if !cfg.SkipBodies {
			t.Error("expected SkipBodies true")
		}
		if cfg.Extension != ".swift" {
			t.Errorf("expected .swift, got %q", cfg.Extension)
		}
	})

	t.Run("keeps defaults for unset values", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).Apply(cfg)

		if cfg.Iterations != DefaultIterations {
			t.Errorf("expected default iterations, got %d", cfg.Iterations)
		}
		if cfg.Extension != DefaultExtension {
			t.Errorf("expected default extension, got %q", cfg.Extension)
		}
	})
}

// TestFindConfigFile tests explicit config path resolution.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path when it exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("iterations: 2\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("returns empty for missing explicit path", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})
}
