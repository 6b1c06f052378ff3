package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mizuki-dev/parsebench/internal/bench"
	"github.com/mizuki-dev/parsebench/internal/corpus"
)

// testSummary returns a summary with one backend that has throughput
// and one whose CPU time reads as zero.
func testSummary() *Summary {
	return &Summary{
		Stats:      corpus.Stats{FileCount: 3, TotalBytes: 1024, TotalLines: 40},
		Iterations: 2,
		Results: []*bench.Result{
			{
				Parser:        "goparser",
				WallTime:      12 * time.Millisecond,
				CPUTime:       10 * time.Millisecond,
				BytesPerSec:   204800,
				LinesPerSec:   8000,
				HasThroughput: true,
			},
			{
				Parser:   "treesitter",
				WallTime: 15 * time.Millisecond,
				CPUTime:  0,
			},
		},
	}
}

// TestTextWriterWrite tests the default text format.
func TestTextWriterWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewTextWriter(&buf).Write(testSummary())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	t.Run("reports written byte count", func(t *testing.T) {
		t.Parallel()
		if n != len(out) {
			t.Errorf("expected %d bytes reported, got %d", len(out), n)
		}
	})

	t.Run("writes corpus header", func(t *testing.T) {
		t.Parallel()
		for _, want := range []string{
			"file count:         3\n",
			"total bytes:     1024\n",
			"total lines:       40\n",
			"iterations:         2\n",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("writes one section per backend in order", func(t *testing.T) {
		t.Parallel()
		if strings.Count(out, "----\n") != 2 {
			t.Errorf("expected 2 separators, got:\n%s", out)
		}
		if strings.Index(out, "parser: goparser") > strings.Index(out, "parser: treesitter") {
			t.Errorf("expected goparser before treesitter, got:\n%s", out)
		}
	})

	t.Run("writes timing lines", func(t *testing.T) {
		t.Parallel()
		for _, want := range []string{
			"wall clock time (ms):       12\n",
			"cpu time (ms):              10\n",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("writes throughput only when cpu time is positive", func(t *testing.T) {
		t.Parallel()
		if strings.Count(out, "throughput (byte/s):") != 1 {
			t.Errorf("expected exactly 1 byte throughput line, got:\n%s", out)
		}
		if strings.Count(out, "throughput (line/s):") != 1 {
			t.Errorf("expected exactly 1 line throughput line, got:\n%s", out)
		}
		if !strings.Contains(out, "throughput (byte/s):    204800\n") {
			t.Errorf("expected goparser byte throughput, got:\n%s", out)
		}
	})
}

// TestTextWriterEmptySelection tests output with no requested backends.
func TestTextWriterEmptySelection(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	summary := &Summary{
		Stats:      corpus.Stats{},
		Iterations: 1,
	}

	if _, err := NewTextWriter(&buf).Write(summary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "----") {
		t.Errorf("expected no backend section, got:\n%s", out)
	}
	if !strings.Contains(out, "file count:         0\n") {
		t.Errorf("expected zero stats header, got:\n%s", out)
	}
}
