// Package typescript implements the TypeScript/TSX language extractor (spec
// component C6): definition and usage extraction for tree-sitter-typescript
// and tree-sitter-tsx node kinds (the two grammars share node-kind names, so
// one extractor serves both), plugged into the language-agnostic traverser.
package typescript

import (
	"github.com/unhappychoice/lintric-sub000/cst"
	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/pos"
	"github.com/unhappychoice/lintric-sub000/scope"
	"github.com/unhappychoice/lintric-sub000/traverse"
)

// Extractor implements traverse.Extractor for TypeScript and TSX source.
type Extractor struct {
	defined map[pos.Position]bool
}

// New creates a TypeScript extractor ready to drive a single traversal.
func New() *Extractor {
	return &Extractor{defined: make(map[pos.Position]bool)}
}

var _ traverse.Extractor = (*Extractor)(nil)

// OpensScope reports the scope-opening node kinds for TypeScript: function
// and method bodies, class/interface/enum/namespace bodies, and ordinary
// block and control-flow bodies.
func (e *Extractor) OpensScope(n *cst.Node) (traverse.ScopeOpen, bool) {
	switch n.Kind() {
	case "function_declaration", "function_expression", "generator_function_declaration", "arrow_function":
		return traverse.ScopeOpen{Kind: scope.Function, Range: n.Position()}, true
	case "method_definition":
		return traverse.ScopeOpen{Kind: scope.Function, Range: n.Position()}, true
	case "class_declaration", "class", "enum_declaration":
		return traverse.ScopeOpen{Kind: scope.Class, Range: n.Position()}, true
	case "interface_declaration", "type_alias_declaration":
		return traverse.ScopeOpen{Kind: scope.Interface, Range: n.Position()}, true
	case "internal_module", "module":
		return traverse.ScopeOpen{Kind: scope.Module, Range: n.Position()}, true
	case "statement_block", "for_statement", "for_in_statement", "while_statement",
		"if_statement", "switch_statement", "catch_clause":
		return traverse.ScopeOpen{Kind: scope.Block, Range: n.Position()}, true
	}
	return traverse.ScopeOpen{}, false
}

// ExtractDefinitions dispatches on node kind per the C6 TypeScript table.
func (e *Extractor) ExtractDefinitions(n *cst.Node, cur scope.ID, ctx *traverse.Context) []*model.Definition {
	switch n.Kind() {
	case "function_declaration", "generator_function_declaration":
		return e.named(n, cur, model.Function, true)
	case "function_expression":
		return e.named(n, cur, model.Function, false)
	case "method_definition":
		kind := model.Method
		if staticOrGetterName(n) == "constructor" {
			kind = model.Method
		}
		return e.namedField(n, "name", cur, kind, true)
	case "class_declaration", "class":
		return e.named(n, cur, model.Class, true)
	case "interface_declaration":
		return e.named(n, cur, model.TraitOrIface, true)
	case "type_alias_declaration":
		return e.named(n, cur, model.TypeAlias, true)
	case "enum_declaration":
		return e.named(n, cur, model.Enum, true)
	case "internal_module", "module":
		return e.namedField(n, "name", cur, model.ModuleDef, true)
	case "variable_declarator":
		pattern := n.ChildByFieldName("name")
		return e.defPattern(pattern, cur, model.Variable, isHoistedVar(n))
	case "required_parameter", "optional_parameter":
		pattern := n.ChildByFieldName("pattern")
		if pattern == nil {
			pattern = n.NamedChild(0)
		}
		return e.defPattern(pattern, cur, model.Variable, false)
	case "identifier":
		if p := n.Parent(); p != nil && p.Kind() == "formal_parameters" {
			return e.defPattern(n, cur, model.Variable, false)
		}
		return nil
	case "object_pattern", "array_pattern":
		if p := n.Parent(); p != nil && p.Kind() == "formal_parameters" {
			return e.defPattern(n, cur, model.Variable, false)
		}
		return nil
	case "catch_clause":
		param := n.ChildByFieldName("parameter")
		return e.defPattern(param, cur, model.Variable, false)
	case "type_parameter":
		return e.namedField(n, "name", cur, model.TypeParam, true)
	case "property_signature":
		return e.namedField(n, "name", cur, model.Property, true)
	case "method_signature":
		return e.namedField(n, "name", cur, model.Method, true)
	case "public_field_definition":
		return e.namedField(n, "name", cur, model.Property, true)
	case "enum_assignment", "property_identifier":
		return nil
	case "import_statement":
		return e.defImport(n, cur)
	}
	return nil
}

func staticOrGetterName(n *cst.Node) string {
	if name := n.ChildByFieldName("name"); name != nil {
		return name.Text()
	}
	return ""
}

func (e *Extractor) named(n *cst.Node, cur scope.ID, kind model.DefinitionKind, hoisted bool) []*model.Definition {
	return e.namedField(n, "name", cur, kind, hoisted)
}

func (e *Extractor) namedField(n *cst.Node, field string, cur scope.ID, kind model.DefinitionKind, hoisted bool) []*model.Definition {
	name := n.ChildByFieldName(field)
	if name == nil {
		return nil
	}
	d := &model.Definition{
		Name:      name.Text(),
		Kind:      kind,
		Position:  name.Position(),
		ScopeID:   cur,
		IsHoisted: hoisted,
	}
	e.mark(d.Position)
	return []*model.Definition{d}
}

func (e *Extractor) defPattern(pattern *cst.Node, cur scope.ID, kind model.DefinitionKind, hoisted bool) []*model.Definition {
	if pattern == nil {
		return nil
	}
	var defs []*model.Definition
	for _, id := range collectPatternIdentifiers(pattern) {
		d := &model.Definition{
			Name:      id.Text(),
			Kind:      kind,
			Position:  id.Position(),
			ScopeID:   cur,
			IsHoisted: hoisted,
		}
		e.mark(d.Position)
		defs = append(defs, d)
	}
	return defs
}

func (e *Extractor) defImport(n *cst.Node, cur scope.ID) []*model.Definition {
	var defs []*model.Definition
	for i := 0; i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c.Kind() == "string" {
			continue
		}
		for _, leaf := range collectImportLeaves(c) {
			d := &model.Definition{
				Name:      leaf.name,
				Kind:      model.Import,
				Position:  leaf.nameNode.Position(),
				ScopeID:   cur,
				IsHoisted: true,
			}
			e.mark(d.Position)
			defs = append(defs, d)
		}
	}
	return defs
}

// isHoistedVar reports whether a variable_declarator's declaration uses
// `var` (function-scoped, hoisted) rather than `let`/`const`
// (block-scoped, not hoisted per spec's temporal-dead-zone treatment).
func isHoistedVar(declarator *cst.Node) bool {
	p := declarator.Parent()
	if p == nil {
		return false
	}
	return p.Kind() == "variable_declaration"
}

// ExtractUsage dispatches on node kind per the C6 usage table.
func (e *Extractor) ExtractUsage(n *cst.Node, cur scope.ID, ctx *traverse.Context) (*model.Usage, bool) {
	switch n.Kind() {
	case "identifier":
		if e.defined[n.Position()] {
			return nil, false
		}
		if p := n.Parent(); p != nil && p.Kind() == "import_specifier" {
			return nil, false
		}
		return &model.Usage{Name: n.Text(), Kind: model.Identifier, Position: n.Position(), Context: contextOf(n), ScopeID: cur}, true
	case "type_identifier":
		if e.defined[n.Position()] {
			return nil, false
		}
		return &model.Usage{Name: n.Text(), Kind: model.TypeIdentifier, Position: n.Position(), Context: contextOf(n), ScopeID: cur}, true
	case "call_expression":
		fn := n.ChildByFieldName("function")
		if fn == nil {
			return nil, false
		}
		return &model.Usage{Name: fn.Text(), Kind: model.CallExpression, Position: n.Position(), Context: "call_expression", ScopeID: cur}, true
	case "new_expression":
		ctor := n.ChildByFieldName("constructor")
		if ctor == nil {
			return nil, false
		}
		return &model.Usage{Name: ctor.Text(), Kind: model.CallExpression, Position: n.Position(), Context: "new_expression", ScopeID: cur}, true
	case "member_expression":
		if parent := n.Parent(); parent != nil && parent.Kind() == "call_expression" {
			if fn := parent.ChildByFieldName("function"); fn != nil && fn.StartByte() == n.StartByte() && fn.EndByte() == n.EndByte() {
				return nil, false
			}
		}
		property := n.ChildByFieldName("property")
		if property == nil {
			return nil, false
		}
		return &model.Usage{Name: property.Text(), Kind: model.FieldExpression, Position: n.Position(), Context: "member_expression", ScopeID: cur}, true
	}
	return nil, false
}

func (e *Extractor) mark(p pos.Position) {
	e.defined[p] = true
}

func contextOf(n *cst.Node) string {
	if decoratedAncestor(n) {
		return "decorator"
	}
	if p := n.Parent(); p != nil {
		return p.Kind()
	}
	return ""
}

// decoratedAncestor reports whether n's nearest enclosing class or class
// member declaration carries a decorator sibling (e.g. `@Injectable()
// class Foo`), the one context hint beyond spec.md's named set.
func decoratedAncestor(n *cst.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		switch cur.Kind() {
		case "method_definition", "public_field_definition", "class_declaration":
			for i := 0; i < cur.ChildCount(); i++ {
				if cur.Child(i).Kind() == "decorator" {
					return true
				}
			}
			return false
		}
	}
	return false
}
