package resolve

import (
	"strings"

	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/rescache"
	"github.com/unhappychoice/lintric-sub000/scope"
	"github.com/unhappychoice/lintric-sub000/symtab"
)

// TypeScriptResolver implements the TypeScript/TSX resolution cascade, spec
// §4.7.3.
type TypeScriptResolver struct {
	tree    *scope.Tree
	symbols *symtab.Table
	cache   *rescache.Cache
}

// NewTypeScriptResolver builds a resolver over a frozen scope tree and
// symbol table. cache may be nil.
func NewTypeScriptResolver(tree *scope.Tree, symbols *symtab.Table, cache *rescache.Cache) *TypeScriptResolver {
	return &TypeScriptResolver{tree: tree, symbols: symbols, cache: cache}
}

var _ Resolver = (*TypeScriptResolver)(nil)

func (r *TypeScriptResolver) Resolve(usage *model.Usage) (*model.Dependency, bool) {
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

func (r *TypeScriptResolver) resolveUncached(usage *model.Usage) *model.Dependency {
	name := usage.Name
	kind := model.KindForUsage(usage.Kind)
	// dotted call targets (method calls, namespace-qualified calls): only the
	// trailing segment is itself a name-introducing occurrence in this file.
	if usage.Kind == model.CallExpression {
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
	}
	def := r.genericResolve(name, usage)
	return mkDep(usage, def, kind, usage.Context)
}

func (r *TypeScriptResolver) genericResolve(name string, usage *model.Usage) *model.Definition {
	cands := lookupCandidates(r.tree, r.symbols, usage, name)
	isType := usage.Kind == model.TypeIdentifier || usage.Kind == model.StructExpr || isUppercaseStart(name)
	return selectBest(r.tree, cands, usage, tsKindRankFunc(isType))
}

func isUppercaseStart(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

// tsKindRankFunc implements spec §4.7.3 stage 2: imports are preferred in
// value context; in type context, type-shaped definitions outrank
// everything else, per stage 3's type-context detection.
func tsKindRankFunc(isTypeContext bool) kindRankFunc {
	if isTypeContext {
		return func(k model.DefinitionKind) int {
			switch k {
			case model.TraitOrIface, model.TypeAlias, model.Class, model.TypeParam, model.Enum:
				return 0
			case model.Function:
				return 1
			case model.Import:
				return 2
			case model.Variable:
				return 3
			default:
				return 4
			}
		}
	}
	return func(k model.DefinitionKind) int {
		switch k {
		case model.Import:
			return 0
		case model.Function, model.Class, model.TraitOrIface, model.TypeAlias, model.Enum, model.Method, model.ModuleDef:
			return 1
		case model.Variable:
			return 2
		default:
			return 3
		}
	}
}
