package model

import (
	"github.com/unhappychoice/lintric-sub000/pos"
	"github.com/unhappychoice/lintric-sub000/scope"
)

// UsageKind enumerates the shapes of name-referencing occurrence a language
// extractor can produce.
type UsageKind string

const (
	Identifier      UsageKind = "Identifier"
	TypeIdentifier  UsageKind = "TypeIdentifier"
	CallExpression  UsageKind = "CallExpression"
	FieldExpression UsageKind = "FieldExpression"
	StructExpr      UsageKind = "StructExpression"
	Metavariable    UsageKind = "Metavariable"
	Read            UsageKind = "Read"
)

// Usage is a textual occurrence that refers to a name. Context records AST
// ancestry hints (e.g. "scoped_identifier", "call_expression",
// "field_expression") used for tie-breaking only, never for identity.
type Usage struct {
	Name     string
	Kind     UsageKind
	Position pos.Position
	Context  string
	ScopeID  scope.ID
}
