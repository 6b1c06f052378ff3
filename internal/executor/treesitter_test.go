package executor

import (
	"errors"
	"testing"

	"github.com/mizuki-dev/parsebench/internal/corpus"
)

// TestTreeSitterParse tests the tree-sitter backend.
// When built without cgo the backend must fail every call with
// ErrUnsupported; with cgo it must parse normally.
func TestTreeSitterParse(t *testing.T) {
	t.Parallel()

	ts := NewTreeSitter()

	t.Run("has expected name", func(t *testing.T) {
		t.Parallel()
		if ts.Name() != "treesitter" {
			t.Errorf("expected name treesitter, got %q", ts.Name())
		}
	})

	t.Run("parses valid source", func(t *testing.T) {
		t.Parallel()
		buf := corpus.NewBuffer("ok.go", []byte("package ok\n\nfunc Hello() string { return \"hi\" }\n"))
		err := ts.Parse(buf, Options{})
		if errors.Is(err, ErrUnsupported) {
			t.Skip("treesitter not compiled into this binary")
		}
		if err != nil {
			t.Errorf("expected success, got %v", err)
		}
	})

	t.Run("reports syntax errors", func(t *testing.T) {
		t.Parallel()
		buf := corpus.NewBuffer("bad.go", []byte("package bad\n\nfunc {{{\n"))
		err := ts.Parse(buf, Options{})
		if errors.Is(err, ErrUnsupported) {
			t.Skip("treesitter not compiled into this binary")
		}
		if err == nil {
			t.Error("expected parse error for invalid source")
		}
	})
}
