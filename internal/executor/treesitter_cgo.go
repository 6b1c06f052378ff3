//go:build cgo

package executor

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/mizuki-dev/parsebench/internal/corpus"
)

// parseTreeSitter parses the buffer with a fresh tree-sitter parser.
//
// A new parser instance is created per call so that no parsing state
// survives between calls. tree-sitter is error-tolerant and always
// produces a tree; a tree whose root contains error nodes is reported
// as a parse failure so that both backends agree on what success means.
func parseTreeSitter(buf *corpus.Buffer) error {
	p := sitter.NewParser()
	p.SetLanguage(golang.GetLanguage())

	tree, err := p.ParseCtx(context.Background(), nil, buf.Data)
	if err != nil {
		return fmt.Errorf("%s: tree-sitter parse failed: %w", buf.Name, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return fmt.Errorf("%s: tree-sitter returned no syntax tree", buf.Name)
	}
	if root.HasError() {
		return fmt.Errorf("%s: source contains syntax errors", buf.Name)
	}

	return nil
}
