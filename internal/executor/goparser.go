package executor

import (
	"go/parser"
	"go/token"

	"github.com/mizuki-dev/parsebench/internal/corpus"
)

// GoParserName selects the standard library go/parser backend.
const GoParserName = "goparser"

// GoParser is the backend wrapping the standard library's go/parser.
//
// Each Parse call constructs a fresh token.FileSet, so no positional
// state is shared or reused across calls. The per-call context
// construction cost is intentional: it measures cold, per-file parse
// cost rather than amortized warm-state cost.
type GoParser struct{}

// NewGoParser creates the go/parser backend.
func NewGoParser() *GoParser {
	return &GoParser{}
}

// Name implements Executor.Name.
func (p *GoParser) Name() string {
	return GoParserName
}

// Parse parses the buffer with go/parser and discards the file AST.
//
// SkipBodies maps to parser.SkipObjectResolution, go/parser's only
// cost-elision mode bit; the parser has no true body-deferral mode.
// Syntax errors are returned as-is: go/parser's scanner.ErrorList
// messages already name the file and position.
func (p *GoParser) Parse(buf *corpus.Buffer, opts Options) error {
	var mode parser.Mode
	if opts.SkipBodies {
		mode |= parser.SkipObjectResolution
	}

	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, buf.Name, buf.Data, mode)
	return err
}

// Compile-time interface compliance check.
var _ Executor = (*GoParser)(nil)
