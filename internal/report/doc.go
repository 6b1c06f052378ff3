// Package report formats benchmark summaries for output.
//
// This package contains writers for different output formats:
//   - TextWriter: the default plain text format for terminal display
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for sharing results
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably regardless of format or destination. Formatting is
// pure: writers only render the summary they are given.
package report
