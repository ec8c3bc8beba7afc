package cst_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unhappychoice/lintric-sub000/cst"
)

func TestParse_Rust(t *testing.T) {
	src := []byte("fn add(a: i32, b: i32) -> i32 {\n    a + b\n}\n")
	tree, err := cst.Parse(context.Background(), src, cst.Rust)
	require.NoError(t, err)

	root := tree.Root()
	assert.Equal(t, "source_file", root.Kind())
	assert.Equal(t, 1, root.NamedChildCount())

	fn := root.NamedChild(0)
	assert.Equal(t, "function_item", fn.Kind())

	name := fn.ChildByFieldName("name")
	require.NotNil(t, name)
	assert.Equal(t, "add", name.Text())
	assert.Equal(t, 1, name.Position().StartLine)
}

func TestParse_TypeScript(t *testing.T) {
	src := []byte("function add(a: number, b: number): number {\n  return a + b;\n}\n")
	tree, err := cst.Parse(context.Background(), src, cst.TypeScript)
	require.NoError(t, err)

	root := tree.Root()
	fn := root.NamedChild(0)
	assert.Equal(t, "function_declaration", fn.Kind())
	name := fn.ChildByFieldName("name")
	require.NotNil(t, name)
	assert.Equal(t, "add", name.Text())
}

func TestParse_UnknownLanguageErrors(t *testing.T) {
	_, err := cst.Parse(context.Background(), []byte("x"), cst.Language(99))
	assert.Error(t, err)
}

func TestSExpression(t *testing.T) {
	out, err := cst.SExpression(context.Background(), []byte("let x = 1;"), cst.Rust)
	require.NoError(t, err)
	assert.Contains(t, out, "let_declaration")
}

func TestNode_ChildrenAndPosition(t *testing.T) {
	src := []byte("struct Point {\n    x: i32,\n    y: i32,\n}\n")
	tree, err := cst.Parse(context.Background(), src, cst.Rust)
	require.NoError(t, err)

	strct := tree.Root().NamedChild(0)
	assert.Equal(t, "struct_item", strct.Kind())
	assert.True(t, strct.ChildCount() > 0)
	assert.Equal(t, 1, strct.Position().StartLine)
	assert.Equal(t, 4, strct.Position().EndLine)

	p1 := strct.ID()
	p2 := strct.ID()
	assert.Equal(t, p1, p2)
}
