// Package lintric is the surface API (spec §6): analyze a single Rust or
// TypeScript/TSX source file into an inter-line dependency graph. It wires
// together every lower-level component package — cst, scope, symtab,
// traverse, lang/rust(+implindex), lang/typescript, resolve, rescache, and
// depgraph — into the three operations callers outside the core consume.
package lintric

import (
	"context"
	"fmt"

	"github.com/unhappychoice/lintric-sub000/cst"
	"github.com/unhappychoice/lintric-sub000/depgraph"
	rustlang "github.com/unhappychoice/lintric-sub000/lang/rust"
	"github.com/unhappychoice/lintric-sub000/lang/rust/implindex"
	tslang "github.com/unhappychoice/lintric-sub000/lang/typescript"
	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/pos"
	"github.com/unhappychoice/lintric-sub000/rescache"
	"github.com/unhappychoice/lintric-sub000/resolve"
	"github.com/unhappychoice/lintric-sub000/scope"
	"github.com/unhappychoice/lintric-sub000/symtab"
	"github.com/unhappychoice/lintric-sub000/traverse"
)

// Language selects the grammar and extractor/resolver pair Analyze uses.
// It is an alias of cst.Language, re-exported so callers can name a language
// without importing package cst directly.
type Language = cst.Language

const (
	Rust       = cst.Rust
	TypeScript = cst.TypeScript
	TSX        = cst.TSX
)

// Graph is the edge-labelled dependency graph Analyze produces, whose nodes
// are every line 1..N of the analysed source.
type Graph = depgraph.Graph

// Analyzer runs Analyze with a fixed set of options. The zero value (via
// New with no options) resolves without a cache and invokes no hooks.
type Analyzer struct {
	useCache        bool
	plugins         []Plugin
	annotationHooks []AnnotationHook
}

// New builds an Analyzer configured by opts.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full pipeline over source for the given language and
// returns the resulting dependency graph plus run diagnostics. Package-level
// Analyze is a convenience for callers who don't need an Analyzer's Options.
func Analyze(ctx context.Context, source []byte, lang Language) (*Graph, *Diagnostics, error) {
	return New().Analyze(ctx, source, lang)
}

// ParseToCST parses source with the given language's grammar and returns the
// resulting tree, wrapping parse failures as a lintric.Error.
func ParseToCST(ctx context.Context, source []byte, lang Language) (*cst.Tree, error) {
	tree, err := cst.Parse(ctx, source, lang)
	if err != nil {
		return nil, classifyParseError(lang, err)
	}
	return tree, nil
}

// ExtractSExpression parses source and renders the CST as a nested
// S-expression, the debugging affordance the test harness uses.
func ExtractSExpression(ctx context.Context, source []byte, lang Language) (string, error) {
	s, err := cst.SExpression(ctx, source, lang)
	if err != nil {
		return "", classifyParseError(lang, err)
	}
	return s, nil
}

// Analyze runs the full pipeline: parse, traverse (building the scope tree
// and symbol table while collecting usages), resolve every usage, and
// assemble the resulting graph.
func (a *Analyzer) Analyze(ctx context.Context, source []byte, lang Language) (*Graph, *Diagnostics, error) {
	tree, err := cst.Parse(ctx, source, lang)
	if err != nil {
		return nil, nil, classifyParseError(lang, err)
	}

	root := tree.Root()
	scopes := scope.NewTree(scope.Module, root.Position())
	symbols := symtab.New()
	tctx := &traverse.Context{Tree: scopes, Symbols: symbols, Source: tree.Source()}

	ext, err := extractorFor(lang)
	if err != nil {
		return nil, nil, err
	}

	usages, err := traverse.Walk(root, 0, ext, tctx)
	if err != nil {
		return nil, nil, newError(ScopeInvariantViolation, "failed to build scope tree", err)
	}

	for _, hook := range a.annotationHooks {
		for _, def := range symbols.AllDefinitions() {
			hook(def)
		}
	}

	var cache *rescache.Cache
	if a.useCache {
		cache = rescache.New()
	}

	resolver, err := resolverFor(lang, root, scopes, symbols, cache)
	if err != nil {
		return nil, nil, err
	}

	graph := depgraph.New(tree.LineCount())
	diag := &Diagnostics{}

	for _, u := range usages {
		diag.UsageCount++
		dep, ok := resolver.Resolve(u)
		if ok {
			diag.ResolvedCount++
			graph.AddDependency(dep)
		} else {
			diag.UnresolvedCount++
		}
		for _, p := range a.plugins {
			p.AfterResolve(u, dep, ok)
		}
	}

	if rr, ok := resolver.(*resolve.RustResolver); ok {
		for _, dep := range rr.ImportEdges() {
			diag.ResolvedCount++
			graph.AddDependency(dep)
		}
	}

	if cache != nil {
		diag.CacheHits, diag.CacheMisses = cache.Stats()
	}

	return graph, diag, nil
}

func extractorFor(lang Language) (traverse.Extractor, error) {
	switch lang {
	case cst.Rust:
		return rustlang.New(), nil
	case cst.TypeScript, cst.TSX:
		return tslang.New(), nil
	default:
		return nil, newError(UnknownLanguage, fmt.Sprintf("unrecognised language selector %v", lang), nil)
	}
}

func resolverFor(lang Language, root *cst.Node, scopes *scope.Tree, symbols *symtab.Table, cache *rescache.Cache) (resolve.Resolver, error) {
	switch lang {
	case cst.Rust:
		lookup := implindex.MethodLookup(func(name string, namePos pos.Position) *model.Definition {
			for _, sid := range symbols.LookupGlobalName(name) {
				for _, d := range symbols.InScope(sid, name) {
					if d.Position == namePos {
						return d
					}
				}
			}
			return nil
		})
		idx := implindex.Build(root, lookup)
		targets := implindex.TargetScopes(root, scopes)
		return resolve.NewRustResolver(scopes, symbols, idx, targets, cache), nil
	case cst.TypeScript, cst.TSX:
		return resolve.NewTypeScriptResolver(scopes, symbols, cache), nil
	default:
		return nil, newError(UnknownLanguage, fmt.Sprintf("unrecognised language selector %v", lang), nil)
	}
}

func classifyParseError(lang Language, err error) *Error {
	if lang != cst.Rust && lang != cst.TypeScript && lang != cst.TSX {
		return newError(UnknownLanguage, fmt.Sprintf("unrecognised language selector %v", lang), err)
	}
	return newError(ParseError, fmt.Sprintf("failed to parse %s source", lang), err)
}
