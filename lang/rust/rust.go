// Package rust implements the Rust language extractor (spec component C6):
// definition and usage extraction driven entirely by tree-sitter-rust node
// kinds, plugged into the language-agnostic traverser (package traverse).
package rust

import (
	"github.com/unhappychoice/lintric-sub000/cst"
	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/pos"
	"github.com/unhappychoice/lintric-sub000/scope"
	"github.com/unhappychoice/lintric-sub000/traverse"
)

// Extractor implements traverse.Extractor for Rust source.
type Extractor struct {
	defined map[pos.Position]bool
}

// New creates a Rust extractor ready to drive a single traversal.
func New() *Extractor {
	return &Extractor{defined: make(map[pos.Position]bool)}
}

var _ traverse.Extractor = (*Extractor)(nil)

// OpensScope reports the scope-opening node kinds listed for Rust: items
// that introduce their own member/parameter/field namespace, plus ordinary
// block and control-flow bodies.
func (e *Extractor) OpensScope(n *cst.Node) (traverse.ScopeOpen, bool) {
	switch n.Kind() {
	case "function_item":
		return traverse.ScopeOpen{Kind: scope.Function, Range: n.Position()}, true
	case "closure_expression":
		return traverse.ScopeOpen{Kind: scope.Closure, Range: n.Position()}, true
	case "impl_item":
		return traverse.ScopeOpen{Kind: scope.Impl, Range: n.Position()}, true
	case "trait_item":
		return traverse.ScopeOpen{Kind: scope.Trait, Range: n.Position()}, true
	case "struct_item", "union_item", "enum_item":
		return traverse.ScopeOpen{Kind: scope.Class, Range: n.Position()}, true
	case "mod_item":
		return traverse.ScopeOpen{Kind: scope.Module, Range: n.Position()}, true
	case "block",
		"for_expression", "while_expression", "if_expression", "match_expression":
		return traverse.ScopeOpen{Kind: scope.Block, Range: n.Position()}, true
	}
	return traverse.ScopeOpen{}, false
}

// ExtractDefinitions dispatches on node kind per the C6 Rust table.
func (e *Extractor) ExtractDefinitions(n *cst.Node, cur scope.ID, ctx *traverse.Context) []*model.Definition {
	switch n.Kind() {
	case "function_item":
		return e.defOne(n, cur, ctx, e.functionKind(cur, ctx))
	case "function_signature_item":
		if s := ctx.Tree.Get(cur); s != nil && s.Kind == scope.Trait {
			return e.defOne(n, cur, ctx, model.Function)
		}
		return nil
	case "let_declaration":
		return e.defPatternTyped(n.ChildByFieldName("pattern"), n.ChildByFieldName("type"), cur, ctx, model.Variable, false, collectPatternIdentifiers)
	case "const_item", "static_item":
		return e.defOne(n, cur, ctx, model.ConstOrStatic)
	case "struct_item":
		return e.defOne(n, cur, ctx, model.Struct)
	case "union_item":
		return e.defOne(n, cur, ctx, model.Union)
	case "enum_item":
		return e.defOne(n, cur, ctx, model.Enum)
	case "trait_item":
		return e.defOne(n, cur, ctx, model.TraitOrIface)
	case "mod_item":
		return e.defOne(n, cur, ctx, model.ModuleDef)
	case "macro_definition":
		return e.defOne(n, cur, ctx, model.Macro)
	case "type_item":
		return e.defOne(n, cur, ctx, model.TypeAlias)
	case "field_declaration":
		return e.defField(n, cur, ctx)
	case "type_parameter", "constrained_type_parameter", "lifetime":
		return e.defTypeParam(n, cur, ctx)
	case "use_declaration":
		return e.defUse(n, cur, ctx)
	case "match_arm":
		return e.defPattern(n.ChildByFieldName("pattern"), cur, ctx, model.Variable, false, collectBindingIdentifiers)
	case "for_expression":
		return e.defPattern(n.ChildByFieldName("pattern"), cur, ctx, model.Variable, false, collectBindingIdentifiers)
	case "let_condition":
		return e.defPattern(n.ChildByFieldName("pattern"), cur, ctx, model.Variable, false, collectBindingIdentifiers)
	case "parameter", "self_parameter":
		return e.defParameter(n, cur, ctx)
	case "metavariable":
		if isInMacroPattern(n) {
			d := &model.Definition{Name: n.Text(), Kind: model.MacroVariable, Position: n.Position(), ScopeID: cur}
			e.mark(d.Position)
			return []*model.Definition{d}
		}
		return nil
	}
	return nil
}

// functionKind decides Function vs Method by checking whether the enclosing
// scope is an impl/trait body: a function_item's own node never declares
// that ancestry itself, the surrounding scope kind does.
func (e *Extractor) functionKind(cur scope.ID, ctx *traverse.Context) model.DefinitionKind {
	if s := ctx.Tree.Get(cur); s != nil && (s.Kind == scope.Impl || s.Kind == scope.Trait) {
		return model.Method
	}
	return model.Function
}

func (e *Extractor) defOne(n *cst.Node, cur scope.ID, ctx *traverse.Context, kind model.DefinitionKind) []*model.Definition {
	name := n.ChildByFieldName("name")
	if name == nil {
		return nil
	}
	d := &model.Definition{
		Name:             name.Text(),
		Kind:             kind,
		Position:         name.Position(),
		ScopeID:          cur,
		Accessibility:    visibilityOf(n),
		IsHoisted:        true,
		OwnerModuleScope: nearestModuleScope(cur, ctx),
	}
	e.mark(d.Position)
	return []*model.Definition{d}
}

func (e *Extractor) defField(n *cst.Node, cur scope.ID, ctx *traverse.Context) []*model.Definition {
	name := n.ChildByFieldName("name")
	if name == nil {
		return nil
	}
	d := &model.Definition{
		Name:             name.Text(),
		Kind:             model.StructField,
		Position:         name.Position(),
		ScopeID:          cur,
		Accessibility:    visibilityOf(n),
		IsHoisted:        true,
		OwnerModuleScope: nearestModuleScope(cur, ctx),
	}
	e.mark(d.Position)
	return []*model.Definition{d}
}

func (e *Extractor) defTypeParam(n *cst.Node, cur scope.ID, ctx *traverse.Context) []*model.Definition {
	var name *cst.Node
	if n.Kind() == "lifetime" {
		name = n
	} else if nc := n.NamedChild(0); nc != nil {
		name = nc
	}
	if name == nil {
		return nil
	}
	d := &model.Definition{
		Name:      name.Text(),
		Kind:      model.TypeParam,
		Position:  name.Position(),
		ScopeID:   cur,
		IsHoisted: true,
	}
	e.mark(d.Position)
	return []*model.Definition{d}
}

func (e *Extractor) defParameter(n *cst.Node, cur scope.ID, ctx *traverse.Context) []*model.Definition {
	pattern := n.ChildByFieldName("pattern")
	if pattern == nil {
		return nil
	}
	return e.defPatternTyped(pattern, n.ChildByFieldName("type"), cur, ctx, model.Variable, false, collectPatternIdentifiers)
}

func (e *Extractor) defPattern(pattern *cst.Node, cur scope.ID, ctx *traverse.Context, kind model.DefinitionKind, hoisted bool, collect func(*cst.Node) []*cst.Node) []*model.Definition {
	return e.defPatternTyped(pattern, nil, cur, ctx, kind, hoisted, collect)
}

// defPatternTyped is defPattern plus an optional declared-type node (the
// `type` field of a parameter or `let x: T = ...` declaration). The type is
// only attached when the pattern is a single plain identifier: a destructured
// pattern's parts don't each carry the whole binding's type.
func (e *Extractor) defPatternTyped(pattern, typeNode *cst.Node, cur scope.ID, ctx *traverse.Context, kind model.DefinitionKind, hoisted bool, collect func(*cst.Node) []*cst.Node) []*model.Definition {
	if pattern == nil {
		return nil
	}
	var declaredType string
	if typeNode != nil && pattern.Kind() == "identifier" {
		declaredType = typeNode.Text()
	}
	var defs []*model.Definition
	for _, id := range collect(pattern) {
		d := &model.Definition{
			Name:         id.Text(),
			Kind:         kind,
			Position:     id.Position(),
			ScopeID:      cur,
			IsHoisted:    hoisted,
			DeclaredType: declaredType,
		}
		e.mark(d.Position)
		defs = append(defs, d)
	}
	return defs
}

func (e *Extractor) defUse(n *cst.Node, cur scope.ID, ctx *traverse.Context) []*model.Definition {
	arg := n.ChildByFieldName("argument")
	if arg == nil {
		return nil
	}
	var defs []*model.Definition
	for _, leaf := range collectUseLeaves(arg) {
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
	return defs
}

// ExtractUsage dispatches on node kind per the C6 usage table.
func (e *Extractor) ExtractUsage(n *cst.Node, cur scope.ID, ctx *traverse.Context) (*model.Usage, bool) {
	switch n.Kind() {
	case "identifier":
		if e.defined[n.Position()] {
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
	case "field_expression":
		if parent := n.Parent(); parent != nil && parent.Kind() == "call_expression" {
			if fn := parent.ChildByFieldName("function"); fn != nil && fn.StartByte() == n.StartByte() && fn.EndByte() == n.EndByte() {
				return nil, false
			}
		}
		field := n.ChildByFieldName("field")
		if field == nil {
			return nil, false
		}
		return &model.Usage{Name: field.Text(), Kind: model.FieldExpression, Position: n.Position(), Context: "field_expression", ScopeID: cur}, true
	case "struct_expression":
		name := n.ChildByFieldName("name")
		if name == nil {
			return nil, false
		}
		return &model.Usage{Name: name.Text(), Kind: model.StructExpr, Position: n.Position(), Context: "struct_expression", ScopeID: cur}, true
	case "metavariable":
		if isInMacroPattern(n) {
			return nil, false
		}
		return &model.Usage{Name: n.Text(), Kind: model.Metavariable, Position: n.Position(), Context: "metavariable", ScopeID: cur}, true
	}
	return nil, false
}

func (e *Extractor) mark(p pos.Position) {
	e.defined[p] = true
}

// contextOf reports the parent node kind, the tie-breaking "context hint"
// the resolver's usage-kind stages consult.
func contextOf(n *cst.Node) string {
	if p := n.Parent(); p != nil {
		return p.Kind()
	}
	return ""
}

func visibilityOf(n *cst.Node) model.Accessibility {
	for i := 0; i < n.ChildCount(); i++ {
		if n.Child(i).Kind() == "visibility_modifier" {
			return model.Public
		}
	}
	return model.Private
}

// nearestModuleScope returns the nearest enclosing non-root mod_item scope,
// or scope.None if the definition sits at file scope or isn't nested in an
// explicit mod block. The file-level root scope is never treated as a
// restricting module: top-level items are reachable throughout the file.
func nearestModuleScope(cur scope.ID, ctx *traverse.Context) scope.ID {
	for _, id := range ctx.Tree.WalkUp(cur) {
		if id == 0 {
			return scope.None
		}
		if s := ctx.Tree.Get(id); s != nil && s.Kind == scope.Module {
			return id
		}
	}
	return scope.None
}
