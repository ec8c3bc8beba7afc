package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/pos"
	"github.com/unhappychoice/lintric-sub000/scope"
	"github.com/unhappychoice/lintric-sub000/symtab"
)

func TestTable_InsertPreservesTextualOrder(t *testing.T) {
	tab := symtab.New()
	def1 := &model.Definition{Name: "x", Position: pos.Position{StartLine: 2}}
	def2 := &model.Definition{Name: "x", Position: pos.Position{StartLine: 3}}
	tab.Insert(0, "x", def1)
	tab.Insert(0, "x", def2)

	got := tab.InScope(0, "x")
	assert.Equal(t, []*model.Definition{def1, def2}, got)
}

func TestTable_LookupInChainDeepestFirst(t *testing.T) {
	tree := scope.NewTree(scope.Module, pos.Position{StartLine: 1, EndLine: 100})
	fn, _ := tree.Create(0, scope.Function, pos.Position{StartLine: 2, EndLine: 10})
	blk, _ := tree.Create(fn, scope.Block, pos.Position{StartLine: 3, EndLine: 9})

	tab := symtab.New()
	outer := &model.Definition{Name: "x", ScopeID: fn, Position: pos.Position{StartLine: 2}}
	inner := &model.Definition{Name: "x", ScopeID: blk, Position: pos.Position{StartLine: 4}}
	tab.Insert(fn, "x", outer)
	tab.Insert(blk, "x", inner)

	got := tab.LookupInChain(tree, blk, "x")
	assert.Equal(t, []*model.Definition{inner, outer}, got)
}

func TestTable_LookupGlobalName(t *testing.T) {
	tab := symtab.New()
	tab.Insert(0, "Foo", &model.Definition{Name: "Foo"})
	tab.Insert(1, "Foo", &model.Definition{Name: "Foo"})

	got := tab.LookupGlobalName("Foo")
	assert.ElementsMatch(t, []scope.ID{0, 1}, got)
}

func TestTable_DuplicateNamesRetained(t *testing.T) {
	tab := symtab.New()
	tab.Insert(0, "x", &model.Definition{Name: "x", Position: pos.Position{StartLine: 1}})
	tab.Insert(0, "x", &model.Definition{Name: "x", Position: pos.Position{StartLine: 2}})
	assert.Len(t, tab.InScope(0, "x"), 2)
}
