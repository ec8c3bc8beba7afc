// Package implindex builds the impl/method/trait index (spec component C7):
// a second pass over the CST, independent of scope/symbol construction, that
// answers "what methods does type T have, and through which impls/traits" —
// the lookup the method-call resolver stage (spec §4.7.2 stage 2) needs to
// go from a receiver's inferred type to its candidate method definitions.
package implindex

import (
	"github.com/unhappychoice/lintric-sub000/cst"
	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/pos"
	"github.com/unhappychoice/lintric-sub000/scope"
)

// Impl describes one `impl [Trait for] Type { ... }` block.
type Impl struct {
	Target  string // the type the impl is for
	Trait   string // "" for an inherent impl
	Methods map[string]*model.Definition
}

// Trait describes one trait declaration: its own method signatures (with or
// without a default body) and the supertraits it extends.
type Trait struct {
	Name        string
	Methods     map[string]*model.Definition
	Supertraits []string
}

// Index is the built impl/trait index for one source file.
type Index struct {
	ImplsByType map[string][]*Impl
	Traits      map[string]*Trait
}

// MethodLookup resolves the Definition the traverser already inserted for a
// method's name, identified by the exact position of its name node — the
// same position the traverser used as that Definition's Position.
type MethodLookup func(name string, namePos pos.Position) *model.Definition

// Build walks root and collects every impl_item and trait_item. It must run
// after traversal has populated the symbol table, since each method's
// Definition is looked up by position rather than constructed here.
func Build(root *cst.Node, lookup MethodLookup) *Index {
	idx := &Index{ImplsByType: make(map[string][]*Impl), Traits: make(map[string]*Trait)}
	var walk func(n *cst.Node)
	walk = func(n *cst.Node) {
		switch n.Kind() {
		case "impl_item":
			idx.addImpl(n, lookup)
		case "trait_item":
			idx.addTrait(n, lookup)
		}
		for i := 0; i < n.ChildCount(); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return idx
}

func (idx *Index) addImpl(n *cst.Node, lookup MethodLookup) {
	typeNode := n.ChildByFieldName("type")
	if typeNode == nil {
		return
	}
	target := baseTypeName(typeNode)
	impl := &Impl{Target: target, Methods: make(map[string]*model.Definition)}
	if traitNode := n.ChildByFieldName("trait"); traitNode != nil {
		impl.Trait = baseTypeName(traitNode)
	}

	if body := n.ChildByFieldName("body"); body != nil {
		for _, c := range body.NamedChildren() {
			if c.Kind() != "function_item" {
				continue
			}
			name := c.ChildByFieldName("name")
			if name == nil {
				continue
			}
			if def := lookup(name.Text(), name.Position()); def != nil {
				impl.Methods[name.Text()] = def
			}
		}
	}
	idx.ImplsByType[target] = append(idx.ImplsByType[target], impl)
}

func (idx *Index) addTrait(n *cst.Node, lookup MethodLookup) {
	name := n.ChildByFieldName("name")
	if name == nil {
		return
	}
	tr := &Trait{Name: name.Text(), Methods: make(map[string]*model.Definition)}
	if bounds := n.ChildByFieldName("bounds"); bounds != nil {
		for _, c := range bounds.NamedChildren() {
			tr.Supertraits = append(tr.Supertraits, baseTypeName(c))
		}
	}
	if body := n.ChildByFieldName("body"); body != nil {
		for _, c := range body.NamedChildren() {
			if c.Kind() != "function_item" && c.Kind() != "function_signature_item" {
				continue
			}
			mn := c.ChildByFieldName("name")
			if mn == nil {
				continue
			}
			if def := lookup(mn.Text(), mn.Position()); def != nil {
				tr.Methods[mn.Text()] = def
			}
		}
	}
	idx.Traits[tr.Name] = tr
}

// baseTypeName strips generic arguments and reference/pointer sigils down to
// the bare type identifier (e.g. "&mut Vec<T>" -> "Vec"; "<P as Greet>" is
// never passed here — qualified-path splitting belongs to the resolver).
func baseTypeName(n *cst.Node) string {
	switch n.Kind() {
	case "generic_type":
		if t := n.ChildByFieldName("type"); t != nil {
			return baseTypeName(t)
		}
	case "reference_type":
		if t := n.ChildByFieldName("type"); t != nil {
			return baseTypeName(t)
		}
	case "type_identifier", "identifier":
		return n.Text()
	case "scoped_type_identifier":
		if name := n.ChildByFieldName("name"); name != nil {
			return name.Text()
		}
	}
	if n.NamedChildCount() > 0 {
		return baseTypeName(n.NamedChild(0))
	}
	return n.Text()
}

// TargetScopes maps each Impl-kind scope created during traversal to the
// type name its impl_item targets, by re-locating the node's start position
// in the frozen scope tree. Used by the resolver to infer `self`'s type.
func TargetScopes(root *cst.Node, scopes *scope.Tree) map[scope.ID]string {
	out := make(map[scope.ID]string)
	var walk func(n *cst.Node)
	walk = func(n *cst.Node) {
		if n.Kind() == "impl_item" {
			if typeNode := n.ChildByFieldName("type"); typeNode != nil {
				start := n.Position()
				point := pos.Position{StartLine: start.StartLine, StartColumn: start.StartColumn, EndLine: start.StartLine, EndColumn: start.StartColumn}
				id := scopes.FindAtPosition(point)
				out[id] = baseTypeName(typeNode)
			}
		}
		for i := 0; i < n.ChildCount(); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return out
}

// MethodsOf returns the candidate method definitions for typeName across
// every impl block targeting it, inherent impls first (spec §4.7.2 stage 2's
// "inherent before trait" preference), trait impls after.
func (idx *Index) MethodsOf(typeName string) []*model.Definition {
	var inherent, fromTrait []*model.Definition
	for _, impl := range idx.ImplsByType[typeName] {
		for _, def := range impl.Methods {
			if impl.Trait == "" {
				inherent = append(inherent, def)
			} else {
				fromTrait = append(fromTrait, def)
			}
		}
	}
	return append(inherent, fromTrait...)
}

// QualifiedMethod resolves `<Type as Trait>::method` by looking only through
// impls of the named trait for typeName ("" matches any impl, trait-or-not).
func (idx *Index) QualifiedMethod(typeName, trait, method string) *model.Definition {
	for _, impl := range idx.ImplsByType[typeName] {
		if trait != "" && impl.Trait != trait {
			continue
		}
		if def, ok := impl.Methods[method]; ok {
			return def
		}
	}
	return nil
}

// ResolveMethod finds method on typeName: inherent impls first, then direct
// trait impls, then recursively through each implemented trait's
// supertraits (a trait impl never redeclares an inherited supertrait
// method, so the method's defining line lives on whichever impl actually
// provides it).
func (idx *Index) ResolveMethod(typeName, method string) *model.Definition {
	for _, impl := range idx.ImplsByType[typeName] {
		if impl.Trait == "" {
			if def, ok := impl.Methods[method]; ok {
				return def
			}
		}
	}
	seen := make(map[string]bool)
	var viaSupertraits func(trait string) *model.Definition
	viaSupertraits = func(trait string) *model.Definition {
		if seen[trait] {
			return nil
		}
		seen[trait] = true
		if def := idx.QualifiedMethod(typeName, trait, method); def != nil {
			return def
		}
		tr, ok := idx.Traits[trait]
		if !ok {
			return nil
		}
		for _, super := range tr.Supertraits {
			if def := viaSupertraits(super); def != nil {
				return def
			}
		}
		return nil
	}
	for _, impl := range idx.ImplsByType[typeName] {
		if impl.Trait == "" {
			continue
		}
		if def, ok := impl.Methods[method]; ok {
			return def
		}
		if def := viaSupertraits(impl.Trait); def != nil {
			return def
		}
	}
	return nil
}

// UFCS resolves `<T as Trait>::method`, trying candidates in priority
// [T, Trait] per spec §4.7.2 stage 3: T's impl of Trait first, then any
// impl on T at all, then Trait's own default-method definition.
func (idx *Index) UFCS(t, trait, method string) *model.Definition {
	if def := idx.QualifiedMethod(t, trait, method); def != nil {
		return def
	}
	if def := idx.ResolveMethod(t, method); def != nil {
		return def
	}
	if tr, ok := idx.Traits[trait]; ok {
		if def, ok := tr.Methods[method]; ok {
			return def
		}
	}
	return nil
}
