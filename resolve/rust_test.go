package resolve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unhappychoice/lintric-sub000/cst"
	rustlang "github.com/unhappychoice/lintric-sub000/lang/rust"
	"github.com/unhappychoice/lintric-sub000/lang/rust/implindex"
	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/pos"
	"github.com/unhappychoice/lintric-sub000/resolve"
	"github.com/unhappychoice/lintric-sub000/scope"
	"github.com/unhappychoice/lintric-sub000/symtab"
	"github.com/unhappychoice/lintric-sub000/traverse"
)

type rustFixture struct {
	usages []*model.Usage
	dep    func(u *model.Usage) (*model.Dependency, bool)
}

func buildRustResolver(t *testing.T, src string) rustFixture {
	t.Helper()
	tree, err := cst.Parse(context.Background(), []byte(src), cst.Rust)
	require.NoError(t, err)

	root := tree.Root()
	scopes := scope.NewTree(scope.Module, root.Position())
	tab := symtab.New()
	ctx := &traverse.Context{Tree: scopes, Symbols: tab, Source: tree.Source()}

	usages, err := traverse.Walk(root, 0, rustlang.New(), ctx)
	require.NoError(t, err)

	lookup := implindex.MethodLookup(func(name string, namePos pos.Position) *model.Definition {
		for _, sid := range tab.LookupGlobalName(name) {
			for _, d := range tab.InScope(sid, name) {
				if d.Position == namePos {
					return d
				}
			}
		}
		return nil
	})
	idx := implindex.Build(root, lookup)
	targets := implindex.TargetScopes(root, scopes)

	r := resolve.NewRustResolver(scopes, tab, idx, targets, nil)
	return rustFixture{usages: usages, dep: r.Resolve}
}

func findUsage(usages []*model.Usage, line int, kind model.UsageKind) *model.Usage {
	for _, u := range usages {
		if u.Position.StartLine == line && u.Kind == kind {
			return u
		}
	}
	return nil
}

func TestScenario_RustShadowing(t *testing.T) {
	src := "fn main() {\n    let x = 1;\n    let x = x + 1;\n    println!(\"{x}\");\n}\n"
	f := buildRustResolver(t, src)

	u3 := findUsage(f.usages, 3, model.Identifier)
	require.NotNil(t, u3)
	dep, ok := f.dep(u3)
	require.True(t, ok)
	assert.Equal(t, 2, dep.TargetLine)

	u4 := findUsage(f.usages, 4, model.Identifier)
	require.NotNil(t, u4)
	dep4, ok := f.dep(u4)
	require.True(t, ok)
	assert.Equal(t, 3, dep4.TargetLine)
}

func TestScenario_RustImportAliasing(t *testing.T) {
	src := "mod m { pub struct S; }\nuse m::S as T;\nfn f() { let _ = T; }\n"
	f := buildRustResolver(t, src)

	u := findUsage(f.usages, 3, model.Identifier)
	require.NotNil(t, u)
	dep, ok := f.dep(u)
	require.True(t, ok)
	assert.Equal(t, 2, dep.TargetLine)
}

func TestScenario_RustMethodVsFieldTieBreak(t *testing.T) {
	src := "struct P{x:i32}\n\nimpl P { fn x(&self){} }\n\nfn f(p: P) {\n    p.x();\n}\n"
	f := buildRustResolver(t, src)

	u := findUsage(f.usages, 6, model.CallExpression)
	require.NotNil(t, u)
	dep, ok := f.dep(u)
	require.True(t, ok)
	assert.Equal(t, model.FunctionCall, dep.Kind)
	assert.Equal(t, 3, dep.TargetLine)
}

func TestScenario_RustUFCSPrefersTypeOverTrait(t *testing.T) {
	src := "trait Greet {\n    fn hello(&self);\n}\nstruct P;\nimpl Greet for P {\n    fn hello(&self) {}\n}\nfn f(p: P) {\n    <P as Greet>::hello(&p);\n}\n"
	f := buildRustResolver(t, src)

	u := findUsage(f.usages, 9, model.CallExpression)
	require.NotNil(t, u)
	dep, ok := f.dep(u)
	require.True(t, ok)
	assert.Equal(t, model.FunctionCall, dep.Kind)
	assert.Equal(t, 6, dep.TargetLine)
}

func TestScenario_RustSelfReferenceYieldsNoEdge(t *testing.T) {
	src := "fn main() {\n    let y = y;\n}\n"
	f := buildRustResolver(t, src)
	u := findUsage(f.usages, 2, model.Identifier)
	require.NotNil(t, u)
	_, ok := f.dep(u)
	assert.False(t, ok)
}

func TestScenario_RustNestedModuleHidesSiblingFunction(t *testing.T) {
	src := "mod inner {\n    fn helper() {}\n}\n\nfn f() {\n    helper();\n}\n"
	f := buildRustResolver(t, src)

	u := findUsage(f.usages, 6, model.CallExpression)
	require.NotNil(t, u)
	_, ok := f.dep(u)
	assert.False(t, ok, "sibling scope should not see a nested module's private item")
}
