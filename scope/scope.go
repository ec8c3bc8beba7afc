// Package scope implements the hierarchical scope tree (spec component C3):
// an arena of Scopes addressed by integer handle, with parent links and
// position ranges, supporting lookup-at-position and walk-to-root.
package scope

import (
	"fmt"

	"github.com/unhappychoice/lintric-sub000/pos"
)

// Kind enumerates the flavors of scope a language extractor can open.
type Kind string

const (
	Module    Kind = "Module"
	Function  Kind = "Function"
	Class     Kind = "Class"
	Trait     Kind = "Trait"
	Interface Kind = "Interface"
	Impl      Kind = "Impl"
	Closure   Kind = "Closure"
	Block     Kind = "Block"
)

// ID is an opaque arena index. The root scope always has ID 0.
type ID int

// None is the sentinel used by the root scope's Parent field.
const None ID = -1

// Scope is one node of the scope tree.
type Scope struct {
	ID       ID
	Parent   ID // None for the root
	Kind     Kind
	Range    pos.Position
	Children []ID
}

// Tree is the arena holding every Scope created during traversal. It is built
// once by the traverser (C5) and then frozen for the resolution phase (C8);
// nothing in this package mutates a Scope's Range or Parent after creation.
type Tree struct {
	scopes []*Scope
}

// NewTree creates a tree with a root scope (ID 0) spanning rng.
func NewTree(rootKind Kind, rng pos.Position) *Tree {
	t := &Tree{}
	t.scopes = append(t.scopes, &Scope{ID: 0, Parent: None, Kind: rootKind, Range: rng})
	return t
}

// Create allocates a new child scope of parent. The child's range must lie
// within the parent's range; a violation is a fatal construction error
// (spec §4.2, §7 ScopeInvariantViolation) because it indicates a bug in a
// language extractor, not malformed input.
func (t *Tree) Create(parent ID, kind Kind, rng pos.Position) (ID, error) {
	p := t.Get(parent)
	if p == nil {
		return None, fmt.Errorf("scope: unknown parent scope %d", parent)
	}
	if !p.Range.ContainsRange(rng) {
		return None, fmt.Errorf("scope: child range %v escapes parent range %v", rng, p.Range)
	}
	id := ID(len(t.scopes))
	t.scopes = append(t.scopes, &Scope{ID: id, Parent: parent, Kind: kind, Range: rng})
	p.Children = append(p.Children, id)
	return id, nil
}

// Get returns the scope for id, or nil if id is out of range.
func (t *Tree) Get(id ID) *Scope {
	if id < 0 || int(id) >= len(t.scopes) {
		return nil
	}
	return t.scopes[id]
}

// Len returns the number of scopes in the arena.
func (t *Tree) Len() int {
	return len(t.scopes)
}

// FindAtPosition descends from the root, at each level picking the child
// whose range contains p, and returns the deepest containing scope (or the
// root if no child contains p). Runs in O(depth).
func (t *Tree) FindAtPosition(p pos.Position) ID {
	cur := t.Get(0)
	for {
		var next *Scope
		for _, childID := range cur.Children {
			child := t.Get(childID)
			if child != nil && child.Range.Contains(p) {
				next = child
				break
			}
		}
		if next == nil {
			return cur.ID
		}
		cur = next
	}
}

// WalkUp returns the chain of scope IDs from id to the root, inclusive,
// nearest-first.
func (t *Tree) WalkUp(id ID) []ID {
	var chain []ID
	for cur := t.Get(id); cur != nil; cur = t.Get(cur.Parent) {
		chain = append(chain, cur.ID)
		if cur.Parent == None {
			break
		}
	}
	return chain
}

// NearestOfKind walks up from id and returns the first scope whose Kind
// matches any of kinds, or None if none is found before the root.
func (t *Tree) NearestOfKind(id ID, kinds ...Kind) ID {
	match := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		match[k] = true
	}
	for _, cur := range t.WalkUp(id) {
		if s := t.Get(cur); s != nil && match[s.Kind] {
			return cur
		}
	}
	return None
}

// IsDescendantOf reports whether ancestor is ancestor-or-equal to candidate,
// i.e. candidate's scope chain passes through ancestor.
func (t *Tree) IsDescendantOf(candidate, ancestor ID) bool {
	for _, cur := range t.WalkUp(candidate) {
		if cur == ancestor {
			return true
		}
	}
	return false
}
