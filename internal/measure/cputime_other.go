//go:build !unix

package measure

import "time"

// cpuTime returns zero on platforms without a process CPU clock.
// CPU-time deltas then read as zero, and throughput is omitted from
// reports rather than computed from a missing clock.
func cpuTime() time.Duration {
	return 0
}
