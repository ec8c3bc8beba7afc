package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	lintric "github.com/unhappychoice/lintric-sub000"
)

// reportEdge is the YAML-friendly projection of a depgraph.Edge, named the
// way a downstream metric layer would expect to consume it (spec.md §6).
type reportEdge struct {
	Source   int    `yaml:"sourceLine"`
	Target   int    `yaml:"targetLine"`
	Symbol   string `yaml:"symbol"`
	Kind     string `yaml:"kind"`
	Context  string `yaml:"context,omitempty"`
	Distance int    `yaml:"distance"`
}

type report struct {
	File            string       `yaml:"file"`
	LineCount       int          `yaml:"lineCount"`
	Edges           []reportEdge `yaml:"edges"`
	UsageCount      int          `yaml:"usageCount"`
	ResolvedCount   int          `yaml:"resolvedCount"`
	UnresolvedCount int          `yaml:"unresolvedCount"`
}

func writeYAML(w io.Writer, path string, graph *lintric.Graph, diag *lintric.Diagnostics) error {
	rep := report{
		File:            path,
		LineCount:       graph.LineCount,
		UsageCount:      diag.UsageCount,
		ResolvedCount:   diag.ResolvedCount,
		UnresolvedCount: diag.UnresolvedCount,
	}
	for _, e := range graph.Edges {
		rep.Edges = append(rep.Edges, reportEdge{
			Source:   e.Source,
			Target:   e.Target,
			Symbol:   e.Symbol,
			Kind:     string(e.Kind),
			Context:  e.Context,
			Distance: e.Distance,
		})
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(rep)
}

func writeText(w io.Writer, graph *lintric.Graph) error {
	for _, e := range graph.Edges {
		if _, err := fmt.Fprintf(w, "%d -> %d\t%s\t%s\n", e.Source, e.Target, e.Kind, e.Symbol); err != nil {
			return err
		}
	}
	return nil
}
