package report

import (
	"bytes"
	"encoding/json"
	"io"
)

// JSONWriter outputs the summary as indented JSON for tool integration.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
}

// jsonSummary is the serialized shape of a Summary.
type jsonSummary struct {
	Corpus     jsonCorpus   `json:"corpus"`
	Iterations int          `json:"iterations"`
	Results    []jsonResult `json:"results"`
}

// jsonCorpus is the serialized shape of the corpus statistics.
type jsonCorpus struct {
	FileCount  int   `json:"file_count"`
	TotalBytes int64 `json:"total_bytes"`
	TotalLines int64 `json:"total_lines"`
}

// jsonResult is the serialized shape of one backend result.
// The throughput fields are omitted entirely when undefined (zero
// accumulated CPU time), mirroring the text format.
type jsonResult struct {
	Parser      string `json:"parser"`
	WallClockMs int64  `json:"wall_clock_ms"`
	CPUTimeMs   int64  `json:"cpu_time_ms"`
	BytesPerSec *int64 `json:"throughput_bytes_per_sec,omitempty"`
	LinesPerSec *int64 `json:"throughput_lines_per_sec,omitempty"`
}

// Write outputs the summary as JSON.
func (w *JSONWriter) Write(summary *Summary) (int, error) {
	out := jsonSummary{
		Corpus: jsonCorpus{
			FileCount:  summary.Stats.FileCount,
			TotalBytes: summary.Stats.TotalBytes,
			TotalLines: summary.Stats.TotalLines,
		},
		Iterations: summary.Iterations,
		Results:    make([]jsonResult, 0, len(summary.Results)),
	}

	for _, result := range summary.Results {
		jr := jsonResult{
			Parser:      result.Parser,
			WallClockMs: result.WallTime.Milliseconds(),
			CPUTimeMs:   result.CPUTime.Milliseconds(),
		}
		if result.HasThroughput {
			bps, lps := result.BytesPerSec, result.LinesPerSec
			jr.BytesPerSec = &bps
			jr.LinesPerSec = &lps
		}
		out.Results = append(out.Results, jr)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return 0, err
	}

	n, err := w.output.Write(buf.Bytes())
	return n, err
}

// Compile-time interface compliance check.
var _ Writer = (*JSONWriter)(nil)
