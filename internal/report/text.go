package report

import (
	"fmt"
	"io"

	"github.com/mizuki-dev/parsebench/internal/bench"
)

// TextWriter outputs the default plain text report.
//
// The format is fixed-width (%8d) so columns line up across backends:
//
//	file count:         3
//	total bytes:     1024
//	...
//	----
//	parser: goparser
//	wall clock time (ms):       12
//
// Throughput lines are printed only when the accumulated CPU time is
// positive; a zero CPU reading omits them rather than emitting a
// division artifact.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary in plain text format.
func (w *TextWriter) Write(summary *Summary) (int, error) {
	total, err := fmt.Fprintf(w.output,
		"file count:  %8d\ntotal bytes: %8d\ntotal lines: %8d\niterations:  %8d\n",
		summary.Stats.FileCount,
		summary.Stats.TotalBytes,
		summary.Stats.TotalLines,
		summary.Iterations,
	)
	if err != nil {
		return total, err
	}

	for _, result := range summary.Results {
		n, err := w.writeResult(result)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// writeResult outputs one backend's section.
func (w *TextWriter) writeResult(result *bench.Result) (int, error) {
	total, err := fmt.Fprintf(w.output,
		"----\nparser: %s\nwall clock time (ms): %8d\ncpu time (ms):        %8d\n",
		result.Parser,
		result.WallTime.Milliseconds(),
		result.CPUTime.Milliseconds(),
	)
	if err != nil {
		return total, err
	}

	if result.HasThroughput {
		n, err := fmt.Fprintf(w.output,
			"throughput (byte/s):  %8d\nthroughput (line/s):  %8d\n",
			result.BytesPerSec,
			result.LinesPerSec,
		)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// Compile-time interface compliance check.
var _ Writer = (*TextWriter)(nil)
