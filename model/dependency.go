package model

// DependencyKind enumerates the edge labels the resolver can emit.
type DependencyKind string

const (
	VariableUse       DependencyKind = "VariableUse"
	FunctionCall      DependencyKind = "FunctionCall"
	StructFieldAccess DependencyKind = "StructFieldAccess"
	TypeUse           DependencyKind = "TypeUse"
)

// Dependency is a directed edge from one line to another, labelled with the
// symbol, kind, and context responsible for it. SourceLine must differ from
// TargetLine; self-references never reach this type (the resolver's common
// pre-filter discards them before a Dependency is ever built).
type Dependency struct {
	SourceLine int
	TargetLine int
	Symbol     string
	Kind       DependencyKind
	Context    string
}

// KindForUsage derives the DependencyKind from a usage kind, per spec §4.7.5:
// CallExpression -> FunctionCall, FieldExpression -> StructFieldAccess,
// everything else (Identifier, TypeIdentifier, StructExpression,
// Metavariable, Read) -> VariableUse. The core never emits a distinct
// type-use kind on its own; TypeUse exists for callers that want to
// reclassify TypeIdentifier edges after the fact.
func KindForUsage(k UsageKind) DependencyKind {
	switch k {
	case CallExpression:
		return FunctionCall
	case FieldExpression:
		return StructFieldAccess
	default:
		return VariableUse
	}
}
