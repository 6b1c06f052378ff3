package bench

import (
	"errors"
	"log/slog"
	"time"

	"github.com/mizuki-dev/parsebench/internal/corpus"
	"github.com/mizuki-dev/parsebench/internal/executor"
	"github.com/mizuki-dev/parsebench/internal/measure"
)

// ErrInvalidIterations is returned when the iteration count is not positive.
var ErrInvalidIterations = errors.New("invalid iterations: must be at least 1")

// Runner benchmarks one backend at a time over a fixed corpus.
//
// Execution is fully single-threaded and synchronous: no parallelism
// across buffers, iterations, or backends. Concurrency would corrupt
// CPU-time attribution and make wall-clock timing non-comparable
// between backends, so the running totals are updated strictly
// sequentially by the one control goroutine.
type Runner struct {
	// logger is used for per-run debug logging.
	logger *slog.Logger
}

// Option is a function that configures a Runner.
type Option func(*Runner)

// WithLogger sets a custom logger for the runner.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New creates a Runner with the given options.
func New(opts ...Option) *Runner {
	r := &Runner{}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Run measures exec over the corpus for the given iteration count.
//
// The outer loop walks iterations, the inner loop walks buffers in
// corpus order; every parse call is individually measured and its
// sample accumulated. The first parse error aborts the run immediately
// (remaining buffers and iterations are not attempted) and is returned
// unchanged; partially accumulated totals are discarded, not reported.
//
// stats must be the corpus statistics computed once for this run; the
// derived throughput uses them multiplied by iterations over the
// accumulated CPU time.
func (r *Runner) Run(exec executor.Executor, buffers []*corpus.Buffer, stats corpus.Stats, opts executor.Options, iterations int) (*Result, error) {
	if iterations < 1 {
		return nil, ErrInvalidIterations
	}

	var totalWall, totalCPU time.Duration

	r.logger.Debug("starting benchmark run",
		"parser", exec.Name(),
		"files", len(buffers),
		"iterations", iterations,
	)

	for i := 0; i < iterations; i++ {
		for _, buf := range buffers {
			var parseErr error
			sample := measure.Measure(func() {
				parseErr = exec.Parse(buf, opts)
			})
			if parseErr != nil {
				r.logger.Debug("benchmark run aborted",
					"parser", exec.Name(),
					"iteration", i,
					"buffer", buf.Name,
				)
				return nil, parseErr
			}

			totalWall += sample.Wall
			totalCPU += sample.CPU
		}
	}

	r.logger.Debug("benchmark run completed",
		"parser", exec.Name(),
		"wall", totalWall,
		"cpu", totalCPU,
	)

	return newResult(exec.Name(), totalWall, totalCPU, stats, iterations), nil
}
