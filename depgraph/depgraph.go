// Package depgraph builds the dependency graph (spec component C9): a
// directed, edge-labelled graph over line numbers 1..N, assembled from the
// Dependency values the resolver (C8) emits.
package depgraph

import "github.com/unhappychoice/lintric-sub000/model"

// Edge is one directed dependency edge, carrying the resolver's labels plus
// the derived distance between its endpoints.
type Edge struct {
	Source   int
	Target   int
	Symbol   string
	Kind     model.DependencyKind
	Context  string
	Distance int
}

// Graph is a directed graph whose nodes are every line 1..N of the analysed
// source file.
type Graph struct {
	LineCount int
	Edges     []Edge
	seen      map[dedupKey]bool
}

type dedupKey struct {
	source, target int
	context        string
}

// New creates an empty graph over lineCount lines.
func New(lineCount int) *Graph {
	return &Graph{LineCount: lineCount, seen: make(map[dedupKey]bool)}
}

// AddDependency appends dep as an edge, after the self-loop and bounds
// checks spec §8's universal invariants require, and applying the narrow
// dedup rule spec §4.8 describes: only edges whose context identifies a
// coincident ImportDefinition occurrence collapse into one.
func (g *Graph) AddDependency(dep *model.Dependency) {
	if dep == nil {
		return
	}
	if dep.SourceLine == dep.TargetLine {
		return
	}
	if dep.SourceLine < 1 || dep.SourceLine > g.LineCount || dep.TargetLine < 1 || dep.TargetLine > g.LineCount {
		return
	}
	if isImportDefinitionContext(dep.Context) {
		k := dedupKey{source: dep.SourceLine, target: dep.TargetLine, context: dep.Context}
		if g.seen[k] {
			return
		}
		g.seen[k] = true
	}
	distance := dep.SourceLine - dep.TargetLine
	if distance < 0 {
		distance = -distance
	}
	g.Edges = append(g.Edges, Edge{
		Source:   dep.SourceLine,
		Target:   dep.TargetLine,
		Symbol:   dep.Symbol,
		Kind:     dep.Kind,
		Context:  dep.Context,
		Distance: distance,
	})
}

// AddDependencies appends every non-nil dependency in deps.
func (g *Graph) AddDependencies(deps []*model.Dependency) {
	for _, d := range deps {
		g.AddDependency(d)
	}
}

func isImportDefinitionContext(context string) bool {
	return len(context) >= len("ImportDefinition:") && context[:len("ImportDefinition:")] == "ImportDefinition:"
}

// EdgesFrom returns every edge whose source is line.
func (g *Graph) EdgesFrom(line int) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Source == line {
			out = append(out, e)
		}
	}
	return out
}

// EdgesTo returns every edge whose target is line.
func (g *Graph) EdgesTo(line int) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Target == line {
			out = append(out, e)
		}
	}
	return out
}
