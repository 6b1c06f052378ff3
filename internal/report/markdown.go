package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs the summary as GitHub Flavored Markdown.
// This format is designed for pasting into issues and pull requests
// when sharing benchmark comparisons.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Parse Benchmark Report")
	md.PlainText("")

	md.H2("Corpus")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"File count", strconv.Itoa(summary.Stats.FileCount)},
			{"Total bytes", strconv.FormatInt(summary.Stats.TotalBytes, 10)},
			{"Total lines", strconv.FormatInt(summary.Stats.TotalLines, 10)},
			{"Iterations", strconv.Itoa(summary.Iterations)},
		},
	})
	md.PlainText("")

	if len(summary.Results) > 0 {
		w.writeResults(md, summary)
	}

	return len(md.String()), md.Build()
}

// writeResults writes the per-backend results table.
// Throughput cells show "-" for backends whose accumulated CPU time
// was zero, matching the omission rule of the other formats.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, summary *Summary) {
	rows := make([][]string, 0, len(summary.Results))
	for _, result := range summary.Results {
		bytesPerSec, linesPerSec := "-", "-"
		if result.HasThroughput {
			bytesPerSec = strconv.FormatInt(result.BytesPerSec, 10)
			linesPerSec = strconv.FormatInt(result.LinesPerSec, 10)
		}
		rows = append(rows, []string{
			"`" + result.Parser + "`",
			strconv.FormatInt(result.WallTime.Milliseconds(), 10),
			strconv.FormatInt(result.CPUTime.Milliseconds(), 10),
			bytesPerSec,
			linesPerSec,
		})
	}

	md.H2("Results")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Parser", "Wall (ms)", "CPU (ms)", "Bytes/s", "Lines/s"},
		Rows:   rows,
	})
	md.PlainText("")
}

// Compile-time interface compliance check.
var _ Writer = (*MarkdownWriter)(nil)
