// Package model holds the data-model value types produced by the language
// extractors (C6) and consumed by the resolver (C8) and graph builder (C9):
// Definition, Usage, and Dependency, plus their kind enumerations.
package model

import (
	"github.com/unhappychoice/lintric-sub000/pos"
	"github.com/unhappychoice/lintric-sub000/scope"
)

// DefinitionKind enumerates the shapes of name-introducing occurrence a
// language extractor can produce.
type DefinitionKind string

const (
	Function      DefinitionKind = "Function"
	Method        DefinitionKind = "Method"
	Struct        DefinitionKind = "Struct"
	Enum          DefinitionKind = "Enum"
	Union         DefinitionKind = "Union"
	TraitOrIface  DefinitionKind = "TraitOrInterface"
	TypeAlias     DefinitionKind = "TypeAlias"
	ModuleDef     DefinitionKind = "Module"
	Variable      DefinitionKind = "Variable"
	ConstOrStatic DefinitionKind = "ConstOrStatic"
	StructField   DefinitionKind = "StructField"
	Property      DefinitionKind = "Property"
	Import        DefinitionKind = "Import"
	Macro         DefinitionKind = "Macro"
	MacroVariable DefinitionKind = "MacroVariable"
	Class         DefinitionKind = "Class"
	TypeParam     DefinitionKind = "TypeParam"
)

// Accessibility records the (intra-file) visibility of a definition. The core
// never resolves cross-file visibility; this only disambiguates nested
// module scopes (spec.md SPEC_FULL.md §3 item 3) from everything else.
type Accessibility string

const (
	Public  Accessibility = "public"
	Private Accessibility = "private"
)

// Definition is a textual occurrence that introduces a name into a scope.
type Definition struct {
	Name          string
	Kind          DefinitionKind
	Position      pos.Position
	ScopeID       scope.ID
	Accessibility Accessibility
	// IsHoisted is true when the definition is visible before its textual
	// position within its scope (functions, types, classes, modules,
	// interfaces, macros, var-style declarations).
	IsHoisted bool
	// OwnerModuleScope is the nearest enclosing mod_item scope, or
	// scope.None if the definition isn't nested in one. Only the Rust
	// extractor's item and struct-field definitions set it; every other
	// definition keeps the zero value (the root scope, 0), which the
	// resolver's module-visibility predicate treats as visible everywhere.
	OwnerModuleScope scope.ID
	// DeclaredType is the textual type annotation of a parameter or
	// `let`-bound variable (e.g. "P", "&mut Foo"), when the source spells
	// one out. Used by the Rust resolver to infer a method-call receiver's
	// type without relying on the receiver itself being a type name.
	DeclaredType string
}
