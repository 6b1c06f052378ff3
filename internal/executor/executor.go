package executor

import "github.com/mizuki-dev/parsebench/internal/corpus"

// Options holds the parse options passed to each backend call.
// Options is passed by value; backends must not retain or mutate it.
type Options struct {
	// SkipBodies asks the backend to elide analysis of function and
	// type member bodies where it supports partial parsing.
	SkipBodies bool
}

// Executor is one interchangeable parsing backend.
//
// Implementations must be stateless across calls: no caching of
// intermediate results, no shared parsing context. Each Parse call is
// independent and safe to repeat any number of times with an identical
// cost profile modulo system noise.
type Executor interface {
	// Name returns the backend name used for selection and reporting.
	Name() string

	// Parse parses one buffer under the given options and discards the
	// result. A returned error carries a self-describing message; it is
	// propagated to the user unchanged, so no further context is needed.
	Parse(buf *corpus.Buffer, opts Options) error
}
