//go:build unix

package measure

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuTime returns the process CPU time (user + system) consumed so far.
//
// The reading comes from getrusage(RUSAGE_SELF), which reports
// microsecond-resolution timevals. A failed read yields zero, which
// callers treat as a degenerate-but-valid sample rather than an error.
func cpuTime() time.Duration {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano())
}
