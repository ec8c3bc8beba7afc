package resolve

import (
	"fmt"
	"strings"

	"github.com/unhappychoice/lintric-sub000/lang/rust/implindex"
	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/rescache"
	"github.com/unhappychoice/lintric-sub000/scope"
	"github.com/unhappychoice/lintric-sub000/symtab"
)

// RustResolver implements the Rust resolution cascade, spec §4.7.2.
type RustResolver struct {
	tree        *scope.Tree
	symbols     *symtab.Table
	impls       *implindex.Index
	implTargets map[scope.ID]string
	cache       *rescache.Cache
}

// NewRustResolver builds a resolver over a frozen scope tree, symbol table,
// and impl index. implTargets maps each Impl scope to the type name its
// impl_item targets (see implindex.TargetScopes). cache may be nil.
func NewRustResolver(tree *scope.Tree, symbols *symtab.Table, impls *implindex.Index, implTargets map[scope.ID]string, cache *rescache.Cache) *RustResolver {
	return &RustResolver{tree: tree, symbols: symbols, impls: impls, implTargets: implTargets, cache: cache}
}

var _ Resolver = (*RustResolver)(nil)

func (r *RustResolver) Resolve(usage *model.Usage) (*model.Dependency, bool) {
	if r.cache != nil {
		if dep, ok := r.cache.Get(usage.Name, usage.Position); ok {
			return dep, dep != nil
		}
	}
	dep := r.resolveUncached(usage)
	if r.cache != nil {
		r.cache.Put(usage.Name, usage.Position, dep)
	}
	return dep, dep != nil
}

func (r *RustResolver) resolveUncached(usage *model.Usage) *model.Dependency {
	if usage.Kind == model.Identifier || usage.Kind == model.TypeIdentifier {
		for _, c := range lookupCandidates(r.tree, r.symbols, usage, usage.Name) {
			if c.Kind == model.TypeParam {
				return nil
			}
		}
	}

	switch {
	case usage.Kind == model.CallExpression && strings.Contains(usage.Name, "."):
		return r.resolveMethodCall(usage)
	case usage.Kind == model.CallExpression && strings.Contains(usage.Name, "::"):
		return r.resolveQualifiedCall(usage)
	case usage.Kind == model.FieldExpression:
		return r.resolveFieldAccess(usage)
	default:
		def := r.genericResolve(usage.Name, usage)
		return mkDep(usage, def, model.KindForUsage(usage.Kind), usage.Context)
	}
}

func (r *RustResolver) genericResolve(name string, usage *model.Usage) *model.Definition {
	cands := lookupCandidates(r.tree, r.symbols, usage, name)
	var visible []*model.Definition
	for _, c := range cands {
		if moduleVisible(r.tree, usage, c) {
			visible = append(visible, c)
		}
	}
	cands = visible
	if usage.Kind == model.TypeIdentifier {
		var typed []*model.Definition
		for _, c := range cands {
			if isTypeTier(c.Kind) {
				typed = append(typed, c)
			}
		}
		if len(typed) > 0 {
			cands = typed
		}
	}
	return selectBest(r.tree, cands, usage, rustKindRank)
}

// moduleVisible implements the extra intra-file visibility predicate a
// nested mod_item imposes: a definition owned by a module scope is only
// reachable from a usage whose own scope chain passes through that module,
// even though the definition is hoisted within its own scope.
func moduleVisible(tree *scope.Tree, usage *model.Usage, def *model.Definition) bool {
	if def.OwnerModuleScope == scope.None {
		return true
	}
	return tree.IsDescendantOf(usage.ScopeID, def.OwnerModuleScope)
}

func (r *RustResolver) resolveMethodCall(usage *model.Usage) *model.Dependency {
	idx := strings.LastIndex(usage.Name, ".")
	if idx < 0 {
		return nil
	}
	receiver, method := usage.Name[:idx], usage.Name[idx+1:]
	target := r.inferReceiverType(receiver, usage)
	if target == "" {
		return nil
	}
	def := r.impls.ResolveMethod(target, method)
	return mkDep(usage, def, model.FunctionCall, "method_call::"+target)
}

func (r *RustResolver) inferReceiverType(receiver string, usage *model.Usage) string {
	if receiver == "self" {
		implScope := r.tree.NearestOfKind(usage.ScopeID, scope.Impl)
		if implScope == scope.None {
			return ""
		}
		return r.implTargets[implScope]
	}
	for _, c := range r.symbols.LookupInChain(r.tree, usage.ScopeID, receiver) {
		switch c.Kind {
		case model.Struct, model.Union, model.Enum:
			return c.Name
		case model.Variable:
			if c.DeclaredType != "" {
				return baseTypeText(c.DeclaredType)
			}
		}
	}
	return ""
}

func (r *RustResolver) resolveQualifiedCall(usage *model.Usage) *model.Dependency {
	t, trait, method, isUFCS := parseQualifiedCall(usage.Name)
	if t != "" {
		var def *model.Definition
		if isUFCS {
			def = r.impls.UFCS(t, trait, method)
		} else {
			def = r.impls.ResolveMethod(t, method)
		}
		if def != nil {
			ctx := "call_expression"
			if isUFCS {
				ctx = "ufcs_call_expression"
			}
			return mkDep(usage, def, model.FunctionCall, ctx)
		}
		if method != "" {
			if def := r.genericResolve(method, usage); def != nil {
				return mkDep(usage, def, model.FunctionCall, "call_expression")
			}
		}
		return nil
	}
	return nil
}

func (r *RustResolver) resolveFieldAccess(usage *model.Usage) *model.Dependency {
	var best *model.Definition
	for _, sid := range r.symbols.LookupGlobalName(usage.Name) {
		for _, d := range r.symbols.InScope(sid, usage.Name) {
			if d.Kind != model.StructField {
				continue
			}
			if best == nil || d.Position.Less(best.Position) {
				best = d
			}
		}
	}
	if best == nil {
		return mkDep(usage, r.genericResolve(usage.Name, usage), model.StructFieldAccess, usage.Context)
	}
	return mkDep(usage, best, model.StructFieldAccess, usage.Context)
}

// ImportEdges implements spec §4.7.2 stage 9: for every ImportDefinition,
// emit an edge to the textually first non-import definition of the same
// name elsewhere in the file, if any, whether it comes before or after the
// import. These are independent of any Usage
// and are merged into the graph builder's input alongside per-usage edges.
func (r *RustResolver) ImportEdges() []*model.Dependency {
	var deps []*model.Dependency
	for _, def := range r.symbols.AllDefinitions() {
		if def.Kind != model.Import {
			continue
		}
		var original *model.Definition
		for _, sid := range r.symbols.LookupGlobalName(def.Name) {
			for _, d := range r.symbols.InScope(sid, def.Name) {
				if d == def || d.Kind == model.Import {
					continue
				}
				if original == nil || d.Position.Less(original.Position) {
					original = d
				}
			}
		}
		if original == nil || original.Position.StartLine == def.Position.StartLine {
			continue
		}
		deps = append(deps, &model.Dependency{
			SourceLine: def.Position.StartLine,
			TargetLine: original.Position.StartLine,
			Symbol:     def.Name,
			Kind:       model.VariableUse,
			Context:    fmt.Sprintf("ImportDefinition:%d:%d", def.Position.StartLine, def.Position.StartColumn),
		})
	}
	return deps
}

func isTypeTier(k model.DefinitionKind) bool {
	switch k {
	case model.TraitOrIface, model.TypeAlias, model.TypeParam, model.Struct, model.Union, model.Enum, model.Class:
		return true
	}
	return false
}

func rustKindRank(k model.DefinitionKind) int {
	switch k {
	case model.ModuleDef:
		return 0
	case model.Function:
		return 1
	case model.ConstOrStatic:
		return 2
	case model.Method:
		return 3
	case model.Struct, model.Union:
		return 4
	case model.Enum:
		return 5
	case model.TraitOrIface, model.TypeAlias, model.TypeParam:
		return 6
	case model.Import:
		return 7
	case model.Variable:
		return 8
	default:
		return 9
	}
}

// parseQualifiedCall splits a call target's textual form into its type,
// optional trait, and method segments. `<T as Trait>::method` is UFCS;
// `a::b::Type::method` takes the segment immediately before the method as
// the type (module-qualification beyond that isn't resolvable — cross-file
// resolution is out of scope).
func parseQualifiedCall(name string) (t, trait, method string, isUFCS bool) {
	if strings.HasPrefix(name, "<") {
		end := strings.Index(name, ">::")
		if end == -1 {
			return "", "", "", false
		}
		inner := name[1:end]
		method = name[end+3:]
		if i := strings.Index(inner, " as "); i >= 0 {
			t = baseTypeText(strings.TrimSpace(inner[:i]))
			trait = baseTypeText(strings.TrimSpace(inner[i+4:]))
		} else {
			t = baseTypeText(strings.TrimSpace(inner))
		}
		return t, trait, method, true
	}
	segs := strings.Split(name, "::")
	if len(segs) < 2 {
		return "", "", "", false
	}
	method = segs[len(segs)-1]
	t = segs[len(segs)-2]
	return t, "", method, false
}

func baseTypeText(s string) string {
	if i := strings.IndexByte(s, '<'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(s, "&mut "), "&"))
}
