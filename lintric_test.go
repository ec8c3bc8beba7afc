package lintric_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lintric "github.com/unhappychoice/lintric-sub000"
	"github.com/unhappychoice/lintric-sub000/model"
)

func TestAnalyze_RustShadowing(t *testing.T) {
	src := "fn main() {\n    let x = 1;\n    let x = x + 1;\n    println!(\"{x}\");\n}\n"
	graph, diag, err := lintric.Analyze(context.Background(), []byte(src), lintric.Rust)
	require.NoError(t, err)
	require.NotNil(t, graph)
	assert.Greater(t, diag.UsageCount, 0)

	var found bool
	for _, e := range graph.Edges {
		if e.Source == 3 && e.Target == 2 {
			found = true
		}
	}
	assert.True(t, found, "expected an edge from line 3 to line 2")
}

func TestAnalyze_TypeScriptHoisting(t *testing.T) {
	src := "foo();\n\nfunction foo() {}\n"
	graph, _, err := lintric.Analyze(context.Background(), []byte(src), lintric.TypeScript)
	require.NoError(t, err)

	var found bool
	for _, e := range graph.Edges {
		if e.Source == 1 && e.Target == 3 && e.Kind == model.FunctionCall {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnalyze_UnknownLanguageReturnsError(t *testing.T) {
	_, _, err := lintric.Analyze(context.Background(), []byte("x"), lintric.Language(99))
	require.Error(t, err)
	var lerr *lintric.Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, lintric.UnknownLanguage, lerr.Kind)
}

func TestAnalyze_WithCachePopulatesDiagnostics(t *testing.T) {
	src := "fn main() {\n    let x = 1;\n    let y = x + x;\n}\n"
	a := lintric.New(lintric.WithCache())
	_, diag, err := a.Analyze(context.Background(), []byte(src), lintric.Rust)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, diag.CacheMisses, 1)
}

type recordingPlugin struct {
	calls int
}

func (p *recordingPlugin) AfterResolve(u *model.Usage, dep *model.Dependency, resolved bool) {
	p.calls++
}

func TestAnalyze_PluginReceivesAfterResolveCallbacks(t *testing.T) {
	src := "fn main() {\n    let x = 1;\n    let y = x;\n}\n"
	p := &recordingPlugin{}
	a := lintric.New(lintric.WithPlugin(p))
	_, diag, err := a.Analyze(context.Background(), []byte(src), lintric.Rust)
	require.NoError(t, err)
	assert.Equal(t, diag.UsageCount, p.calls)
}

func TestAnalyze_AnnotationHookSeesEveryDefinition(t *testing.T) {
	src := "fn main() {\n    let x = 1;\n}\n"
	var names []string
	hook := func(def *model.Definition) {
		names = append(names, def.Name)
	}
	a := lintric.New(lintric.WithAnnotationHook(hook))
	_, _, err := a.Analyze(context.Background(), []byte(src), lintric.Rust)
	require.NoError(t, err)
	assert.Contains(t, names, "main")
	assert.Contains(t, names, "x")
}

func TestParseToCST_RoundTrips(t *testing.T) {
	tree, err := lintric.ParseToCST(context.Background(), []byte("fn main() {}"), lintric.Rust)
	require.NoError(t, err)
	assert.Equal(t, "source_file", tree.Root().Kind())
}

func TestExtractSExpression_ReturnsNestedForm(t *testing.T) {
	s, err := lintric.ExtractSExpression(context.Background(), []byte("fn main() {}"), lintric.Rust)
	require.NoError(t, err)
	assert.Contains(t, s, "source_file")
}
