//go:build !cgo

package executor

import (
	"fmt"

	"github.com/mizuki-dev/parsebench/internal/corpus"
)

// parseTreeSitter reports the tree-sitter backend as unavailable.
// tree-sitter requires cgo; without it the library is not linked into
// the binary, so the call fails before touching the buffer.
func parseTreeSitter(_ *corpus.Buffer) error {
	return fmt.Errorf("%w: treesitter requires cgo", ErrUnsupported)
}
