package executor

import "github.com/mizuki-dev/parsebench/internal/corpus"

// TreeSitterName selects the tree-sitter backend.
const TreeSitterName = "treesitter"

// TreeSitter is the backend delegating to the tree-sitter incremental
// parsing library with its Go grammar.
//
// tree-sitter is a cgo dependency: when the binary is built with
// CGO_ENABLED=0 the library is not linked in and every Parse call fails
// immediately with ErrUnsupported, without touching the buffer. Keeping
// the backend itself present in both builds keeps dispatch unconditional
// and the unsupported path testable.
type TreeSitter struct{}

// NewTreeSitter creates the tree-sitter backend.
func NewTreeSitter() *TreeSitter {
	return &TreeSitter{}
}

// Name implements Executor.Name.
func (t *TreeSitter) Name() string {
	return TreeSitterName
}

// Parse parses the buffer with tree-sitter and discards the tree.
//
// Known limitation: the SkipBodies option is ignored. The tree-sitter
// Go grammar has no deferred-body mode, so honoring the flag would
// silently change what is being measured; the asymmetry with the
// goparser backend is deliberate and documented.
func (t *TreeSitter) Parse(buf *corpus.Buffer, _ Options) error {
	return parseTreeSitter(buf)
}

// Compile-time interface compliance check.
var _ Executor = (*TreeSitter)(nil)
