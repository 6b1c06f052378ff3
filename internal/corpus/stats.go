package corpus

// Stats holds the aggregate statistics of a loaded corpus.
//
// Stats is computed exactly once per run, before any backend runs, and
// is shared unchanged by every backend as the throughput denominator.
// Every backend therefore parses (and is rated against) the same corpus.
type Stats struct {
	// FileCount is the number of loaded buffers.
	FileCount int

	// TotalBytes is the sum of all buffer sizes.
	TotalBytes int64

	// TotalLines is the sum of newline counts across all buffers.
	TotalLines int64
}

// ComputeStats derives Stats from the full buffer set.
func ComputeStats(buffers []*Buffer) Stats {
	stats := Stats{FileCount: len(buffers)}
	for _, buf := range buffers {
		stats.TotalBytes += int64(buf.Len())
		stats.TotalLines += int64(buf.Lines())
	}
	return stats
}
