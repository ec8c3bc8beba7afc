package implindex_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unhappychoice/lintric-sub000/cst"
	"github.com/unhappychoice/lintric-sub000/lang/rust/implindex"
	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/pos"
)

func TestBuild_InherentAndTraitImpls(t *testing.T) {
	src := "struct P;\n" +
		"trait Greet { fn hello(&self); }\n" +
		"impl P {\n    fn new() -> P { P }\n}\n" +
		"impl Greet for P {\n    fn hello(&self) {}\n}\n"
	tree, err := cst.Parse(context.Background(), []byte(src), cst.Rust)
	require.NoError(t, err)

	lookup := func(name string, p pos.Position) *model.Definition {
		return &model.Definition{Name: name, Kind: model.Method, Position: p}
	}
	idx := implindex.Build(tree.Root(), lookup)

	methods := idx.MethodsOf("P")
	assert.Len(t, methods, 2)

	assert.NotNil(t, idx.QualifiedMethod("P", "Greet", "hello"))
	assert.NotNil(t, idx.QualifiedMethod("P", "", "new"))
	assert.Nil(t, idx.QualifiedMethod("P", "Greet", "new"))
	assert.NotNil(t, idx.ResolveMethod("P", "hello"))

	tr, ok := idx.Traits["Greet"]
	require.True(t, ok)
	assert.NotNil(t, tr.Methods["hello"])
}

func TestUFCS_PrefersTypeOverTrait(t *testing.T) {
	src := "trait Greet { fn hello(&self) {} }\nstruct P;\nimpl Greet for P {\n    fn hello(&self) {}\n}\n"
	tree, err := cst.Parse(context.Background(), []byte(src), cst.Rust)
	require.NoError(t, err)

	lookup := func(name string, p pos.Position) *model.Definition {
		return &model.Definition{Name: name, Kind: model.Method, Position: p}
	}
	idx := implindex.Build(tree.Root(), lookup)

	def := idx.UFCS("P", "Greet", "hello")
	require.NotNil(t, def)
	assert.Equal(t, 4, def.Position.StartLine) // P's impl on line 4, not the trait default on line 1
}
