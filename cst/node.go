package cst

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/unhappychoice/lintric-sub000/pos"
)

// Node is a typed view over a tree-sitter node: kind, field-named children,
// byte ranges, and line/column positions, with the underlying grammar
// details hidden behind this package's boundary.
type Node struct {
	n   *sitter.Node
	src []byte
	li  *pos.LineIndex
}

func wrap(n *sitter.Node, src []byte, li *pos.LineIndex) *Node {
	if n == nil {
		return nil
	}
	return &Node{n: n, src: src, li: li}
}

// Kind returns the grammar node-kind string (e.g. "function_item").
func (nd *Node) Kind() string {
	return nd.n.Type()
}

// IsNamed reports whether the node is a named grammar production rather than
// an anonymous token (e.g. a punctuation literal).
func (nd *Node) IsNamed() bool {
	return nd.n.IsNamed()
}

// ChildByFieldName returns the child stored under the given grammar field
// name, or nil if absent.
func (nd *Node) ChildByFieldName(name string) *Node {
	return wrap(nd.n.ChildByFieldName(name), nd.src, nd.li)
}

// ChildCount returns the number of children, named and anonymous.
func (nd *Node) ChildCount() int {
	return int(nd.n.ChildCount())
}

// Child returns the i-th child, named and anonymous.
func (nd *Node) Child(i int) *Node {
	return wrap(nd.n.Child(i), nd.src, nd.li)
}

// NamedChildCount returns the number of named children.
func (nd *Node) NamedChildCount() int {
	return int(nd.n.NamedChildCount())
}

// NamedChild returns the i-th named child.
func (nd *Node) NamedChild(i int) *Node {
	return wrap(nd.n.NamedChild(i), nd.src, nd.li)
}

// Children returns every child, named and anonymous, in order.
func (nd *Node) Children() []*Node {
	out := make([]*Node, nd.ChildCount())
	for i := range out {
		out[i] = nd.Child(i)
	}
	return out
}

// NamedChildren returns every named child in order.
func (nd *Node) NamedChildren() []*Node {
	out := make([]*Node, nd.NamedChildCount())
	for i := range out {
		out[i] = nd.NamedChild(i)
	}
	return out
}

// Parent returns the node's parent, or nil for the root.
func (nd *Node) Parent() *Node {
	return wrap(nd.n.Parent(), nd.src, nd.li)
}

// Text returns the node's source text.
func (nd *Node) Text() string {
	return nd.n.Content(nd.src)
}

// StartByte returns the node's starting byte offset.
func (nd *Node) StartByte() uint32 {
	return nd.n.StartByte()
}

// EndByte returns the node's ending byte offset (exclusive).
func (nd *Node) EndByte() uint32 {
	return nd.n.EndByte()
}

// Position returns the node's line/column range.
func (nd *Node) Position() pos.Position {
	return nd.li.Position(int(nd.StartByte()), int(nd.EndByte()))
}

// ID returns a stable identity for this node, independent of the underlying
// parser's pointer arena: a hash of its kind and byte range (spec component
// C2's "stable node identity").
func (nd *Node) ID() pos.NodeID {
	return pos.StableID(nd.Kind(), nd.StartByte(), nd.EndByte())
}

// SExpr renders this node (and its subtree) as a nested S-expression.
func (nd *Node) SExpr() string {
	return nd.n.String()
}
