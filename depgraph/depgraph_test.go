package depgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unhappychoice/lintric-sub000/depgraph"
	"github.com/unhappychoice/lintric-sub000/model"
)

func TestAddDependency_RejectsSelfLoop(t *testing.T) {
	g := depgraph.New(10)
	g.AddDependency(&model.Dependency{SourceLine: 4, TargetLine: 4, Symbol: "x", Kind: model.VariableUse})
	assert.Empty(t, g.Edges)
}

func TestAddDependency_RejectsOutOfBounds(t *testing.T) {
	g := depgraph.New(3)
	g.AddDependency(&model.Dependency{SourceLine: 5, TargetLine: 1, Symbol: "x", Kind: model.VariableUse})
	assert.Empty(t, g.Edges)
}

func TestAddDependency_ComputesDistance(t *testing.T) {
	g := depgraph.New(10)
	g.AddDependency(&model.Dependency{SourceLine: 7, TargetLine: 2, Symbol: "x", Kind: model.VariableUse})
	assert.Len(t, g.Edges, 1)
	assert.Equal(t, 5, g.Edges[0].Distance)
}

func TestAddDependency_DedupsCoincidentImportEdges(t *testing.T) {
	g := depgraph.New(10)
	dep := &model.Dependency{SourceLine: 2, TargetLine: 1, Symbol: "T", Kind: model.VariableUse, Context: "ImportDefinition:2:4"}
	g.AddDependency(dep)
	g.AddDependency(dep)
	assert.Len(t, g.Edges, 1)
}

func TestAddDependency_KeepsDistinctNonImportEdgesBetweenSameLines(t *testing.T) {
	g := depgraph.New(10)
	g.AddDependency(&model.Dependency{SourceLine: 2, TargetLine: 1, Symbol: "x", Kind: model.VariableUse})
	g.AddDependency(&model.Dependency{SourceLine: 2, TargetLine: 1, Symbol: "y", Kind: model.FunctionCall})
	assert.Len(t, g.Edges, 2)
}
