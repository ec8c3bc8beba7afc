// Package cst wraps the third-party tree-sitter parser (spec component C1).
// It is the only place in this module that knows grammar-node-kind strings
// belong to a particular tree-sitter binding; everything above this package
// deals in typed Nodes, not *sitter.Node.
package cst

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/unhappychoice/lintric-sub000/pos"
)

// Language selects which grammar a Tree was parsed with.
type Language int

const (
	Rust Language = iota
	TypeScript
	TSX
)

// String renders the language tag used in error messages and diagnostics.
func (l Language) String() string {
	switch l {
	case Rust:
		return "Rust"
	case TypeScript:
		return "TypeScript"
	case TSX:
		return "TSX"
	default:
		return "Unknown"
	}
}

func grammar(lang Language) (*sitter.Language, error) {
	switch lang {
	case Rust:
		return rust.GetLanguage(), nil
	case TypeScript:
		return typescript.GetLanguage(), nil
	case TSX:
		return tsx.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("cst: unknown language %d", lang)
	}
}

// Tree is a parsed source file together with the buffer it was parsed from;
// nodes carry byte ranges into this buffer rather than owned copies, so the
// buffer must outlive every Node derived from Root().
type Tree struct {
	tree *sitter.Tree
	src  []byte
	li   *pos.LineIndex
}

// Parse parses source with the grammar selected by lang.
func Parse(ctx context.Context, source []byte, lang Language) (*Tree, error) {
	g, err := grammar(lang)
	if err != nil {
		return nil, err
	}
	parser := sitter.NewParser()
	parser.SetLanguage(g)
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("cst: failed to parse %s source: %w", lang, err)
	}
	return &Tree{tree: tree, src: source, li: pos.NewLineIndex(source)}, nil
}

// Root returns the root node of the parsed tree.
func (t *Tree) Root() *Node {
	return &Node{n: t.tree.RootNode(), src: t.src, li: t.li}
}

// Source returns the buffer the tree was parsed from.
func (t *Tree) Source() []byte {
	return t.src
}

// LineIndex returns the byte-offset-to-line converter built for this tree's
// source buffer.
func (t *Tree) LineIndex() *pos.LineIndex {
	return t.li
}

// LineCount returns the number of lines in the source buffer.
func (t *Tree) LineCount() int {
	return t.li.LineCount()
}

// SExpression renders the whole tree as a nested S-expression, the C1
// debugging affordance the test harness uses (spec §6).
func SExpression(ctx context.Context, source []byte, lang Language) (string, error) {
	tree, err := Parse(ctx, source, lang)
	if err != nil {
		return "", err
	}
	return tree.tree.RootNode().String(), nil
}
