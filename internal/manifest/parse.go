// Package manifest locates version declarations inside Cargo.toml sources
// using a tree-sitter concrete syntax tree. Extraction keeps exact byte
// offsets so an edit can splice a single quoted literal while every other
// byte of the file (comments, whitespace, unrelated keys) survives
// verbatim.
package manifest

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/toml"

	"cratebump/internal/logging"
)

// ErrParse reports source the TOML grammar could not parse at all. A
// manifest that parses but carries no package table is not a parse error.
var ErrParse = errors.New("toml parse error")

// Tree is one file's parsed syntax tree together with the source it was
// parsed from. Spans handed out by Extract index into that exact source and
// are meaningless against any other byte slice; after an edit the new
// source must be re-parsed before any span can be trusted again.
type Tree struct {
	source []byte
	tree   *sitter.Tree
}

// Parse builds the syntax tree for one manifest source.
func Parse(source []byte) (*Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(toml.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if tree == nil {
		return nil, ErrParse
	}
	return &Tree{source: source, tree: tree}, nil
}

// Source returns the bytes this tree was parsed from.
func (t *Tree) Source() []byte { return t.source }

// Close releases the parser tree. Records already extracted stay valid:
// they copy their text and hold plain byte offsets, never parser memory.
func (t *Tree) Close() {
	t.tree.Close()
	logging.Get(logging.CategoryManifest).Debug("closed manifest tree")
}
