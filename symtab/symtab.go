// Package symtab implements the per-scope symbol table (spec component C4):
// a multimap of name to ordered definitions for each scope, plus a global
// reverse index used for batch operations.
package symtab

import (
	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/scope"
)

// Table holds every Definition inserted during traversal, keyed by the scope
// that owns it. It never mutates once the resolution phase (C8) begins.
type Table struct {
	byScope map[scope.ID]map[string][]*model.Definition
	byName  map[string]map[scope.ID]bool
}

// New creates an empty symbol table.
func New() *Table {
	return &Table{
		byScope: make(map[scope.ID]map[string][]*model.Definition),
		byName:  make(map[string]map[scope.ID]bool),
	}
}

// Insert appends def to scope id's symbols[name], preserving textual order
// because the traverser (C5) always inserts in document order. Duplicate
// names within one scope are not errors: they represent shadowing or
// duplicate declarations and are both retained.
func (t *Table) Insert(id scope.ID, name string, def *model.Definition) {
	names := t.byScope[id]
	if names == nil {
		names = make(map[string][]*model.Definition)
		t.byScope[id] = names
	}
	names[name] = append(names[name], def)

	scopes := t.byName[name]
	if scopes == nil {
		scopes = make(map[scope.ID]bool)
		t.byName[name] = scopes
	}
	scopes[id] = true
}

// InScope returns the definitions of name declared directly in scope id, in
// textual order. Returns nil if there are none.
func (t *Table) InScope(id scope.ID, name string) []*model.Definition {
	names := t.byScope[id]
	if names == nil {
		return nil
	}
	return names[name]
}

// AllInScope returns every definition declared directly in scope id, grouped
// by name, for callers that need to enumerate a scope's siblings.
func (t *Table) AllInScope(id scope.ID) map[string][]*model.Definition {
	return t.byScope[id]
}

// LookupInChain walks up the scope chain from start to the root, deepest
// scope first, and yields every definition of name found at each level,
// preserving in-scope textual order. The returned slice is ordered
// deepest-scope-first, then textual order within a scope — exactly the order
// the shadowing-aware resolver stage (spec §4.7.2 stage 5) needs to score
// candidates by scope distance.
func (t *Table) LookupInChain(tree *scope.Tree, start scope.ID, name string) []*model.Definition {
	var out []*model.Definition
	for _, id := range tree.WalkUp(start) {
		out = append(out, t.InScope(id, name)...)
	}
	return out
}

// AllDefinitions returns every definition inserted into the table, in no
// particular order. Used by passes that scan the whole file rather than a
// single scope chain (e.g. import-definition edge emission).
func (t *Table) AllDefinitions() []*model.Definition {
	var out []*model.Definition
	for _, names := range t.byScope {
		for _, defs := range names {
			out = append(out, defs...)
		}
	}
	return out
}

// LookupGlobalName returns every scope that declares name, for batch
// operations that need to enumerate all occurrences of a symbol regardless
// of scope (e.g. import-definition edge emission, spec §4.7.2 stage 9).
func (t *Table) LookupGlobalName(name string) []scope.ID {
	scopes := t.byName[name]
	if scopes == nil {
		return nil
	}
	out := make([]scope.ID, 0, len(scopes))
	for id := range scopes {
		out = append(out, id)
	}
	return out
}
