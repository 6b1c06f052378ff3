package executor

import (
	"errors"
	"testing"
)

// TestResolve tests backend name resolution.
func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("resolves known names in request order", func(t *testing.T) {
		t.Parallel()

		executors, err := Resolve([]string{"treesitter", "goparser"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(executors) != 2 {
			t.Fatalf("expected 2 executors, got %d", len(executors))
		}
		if executors[0].Name() != "treesitter" || executors[1].Name() != "goparser" {
			t.Errorf("request order not preserved: %q, %q",
				executors[0].Name(), executors[1].Name())
		}
	})

	t.Run("allows repeated names", func(t *testing.T) {
		t.Parallel()

		executors, err := Resolve([]string{"goparser", "goparser"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(executors) != 2 {
			t.Errorf("expected 2 executors, got %d", len(executors))
		}
	})

	t.Run("empty selection is legal", func(t *testing.T) {
		t.Parallel()

		executors, err := Resolve(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(executors) != 0 {
			t.Errorf("expected no executors, got %d", len(executors))
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()

		_, err := Resolve([]string{"goparser", "yacc"})
		if !errors.Is(err, ErrUnknownExecutor) {
			t.Errorf("expected ErrUnknownExecutor, got %v", err)
		}
	})
}
