package report

import (
	"io"

	"github.com/mizuki-dev/parsebench/internal/bench"
	"github.com/mizuki-dev/parsebench/internal/corpus"
)

// Summary is the full outcome of one benchmark run: the corpus
// statistics (computed once, shared by all backends), the iteration
// count, and one result per requested backend in request order.
type Summary struct {
	// Stats describes the corpus every backend parsed.
	Stats corpus.Stats

	// Iterations is the number of passes over the corpus per backend.
	Iterations int

	// Results holds one completed measurement per backend.
	// Empty when no backend was requested.
	Results []*bench.Result
}

// Writer defines the interface for report output.
// Implementations render a benchmark summary in one format.
//
// Design decision: an interface rather than format flags on a single
// writer, so the output destination (stdout, file) and the format can
// vary independently with the same API.
type Writer interface {
	// Write renders the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(summary *Summary) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
