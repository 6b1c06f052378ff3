package measure

import "time"

// Sample is one timed execution of a unit of work.
type Sample struct {
	// Wall is the elapsed monotonic wall-clock time.
	Wall time.Duration

	// CPU is the process CPU time (user + system) consumed.
	// Zero when the platform CPU clock is unavailable.
	CPU time.Duration
}

// Measure runs work and returns its wall-clock and CPU-time deltas.
//
// Both clocks are read immediately before and after the call. The work
// function must not panic; work that fails out-of-band (by recording an
// error for the caller) is still fully measured, since failed parses
// consume measurable time too. Deltas are clamped at zero so a sample
// is never negative even if a clock misbehaves.
func Measure(work func()) Sample {
	cpuStart := cpuTime()
	wallStart := time.Now()

	work()

	wall := time.Since(wallStart)
	cpu := cpuTime() - cpuStart

	if wall < 0 {
		wall = 0
	}
	if cpu < 0 {
		cpu = 0
	}

	return Sample{Wall: wall, CPU: cpu}
}
