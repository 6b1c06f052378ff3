package bench

import (
	"time"

	"github.com/mizuki-dev/parsebench/internal/corpus"
)

// Result is the completed measurement of one backend over the corpus.
// It is derived once, after all iterations finish, and never mutated.
type Result struct {
	// Parser is the backend name.
	Parser string

	// WallTime is the accumulated wall-clock time across all calls.
	WallTime time.Duration

	// CPUTime is the accumulated process CPU time across all calls.
	CPUTime time.Duration

	// BytesPerSec and LinesPerSec are the corpus size processed per
	// second of CPU time, cumulative across iterations. Valid only
	// when HasThroughput is true.
	BytesPerSec int64
	LinesPerSec int64

	// HasThroughput reports whether throughput could be derived.
	// It is false when the accumulated CPU time is zero; reports then
	// omit the throughput lines instead of printing a division artifact.
	HasThroughput bool
}

// newResult derives a Result from accumulated totals.
//
// Throughput reflects the cumulative corpus size processed across all
// iterations divided by cumulative CPU time, not a single-iteration
// rate. The intermediate math is float64: bytes x iterations x 1e9
// overflows int64 on large corpora.
func newResult(parser string, wall, cpu time.Duration, stats corpus.Stats, iterations int) *Result {
	r := &Result{
		Parser:   parser,
		WallTime: wall,
		CPUTime:  cpu,
	}

	if cpu > 0 {
		seconds := cpu.Seconds()
		r.BytesPerSec = int64(float64(stats.TotalBytes) * float64(iterations) / seconds)
		r.LinesPerSec = int64(float64(stats.TotalLines) * float64(iterations) / seconds)
		r.HasThroughput = true
	}

	return r
}
