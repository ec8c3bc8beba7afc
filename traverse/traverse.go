// Package traverse implements the single-pass AST traverser (spec component
// C5): it walks the CST in document order, asking a language-specific
// Extractor whether each node opens a scope or produces definitions/usages,
// and builds the scope tree and symbol table as it goes. The traverser
// itself never looks at a grammar-node-kind string; that knowledge lives
// entirely inside the Extractor implementations in package lang/*.
package traverse

import (
	"github.com/unhappychoice/lintric-sub000/cst"
	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/pos"
	"github.com/unhappychoice/lintric-sub000/scope"
	"github.com/unhappychoice/lintric-sub000/symtab"
)

// ScopeOpen describes the scope a node opens: its kind and the position
// range the new scope spans (normally the node's own range).
type ScopeOpen struct {
	Kind  scope.Kind
	Range pos.Position
}

// Extractor is the per-language plugin the traverser consults at every node.
type Extractor interface {
	// OpensScope reports whether n opens a new child scope.
	OpensScope(n *cst.Node) (ScopeOpen, bool)
	// ExtractDefinitions returns the definitions n introduces into the
	// *current* scope (i.e. the scope active before any scope n itself
	// opens). Scope-creating items contribute the name being defined here,
	// to the parent scope; their own parameters/fields/type-parameters are
	// produced by separate child nodes visited after the new scope opens.
	ExtractDefinitions(n *cst.Node, current scope.ID, ctx *Context) []*model.Definition
	// ExtractUsage reports the single usage n produces, if any.
	ExtractUsage(n *cst.Node, current scope.ID, ctx *Context) (*model.Usage, bool)
}

// Context bundles the shared, mutable-during-build infrastructure every
// extractor needs: the scope tree and symbol table under construction, and
// the source buffer definitions/usages carry byte ranges into.
type Context struct {
	Tree    *scope.Tree
	Symbols *symtab.Table
	Source  []byte
}

// Walk performs the single depth-first traversal described in spec §4.4,
// starting at root with rootScope as the current scope, and returns every
// usage encountered in document order.
func Walk(root *cst.Node, rootScope scope.ID, ext Extractor, ctx *Context) ([]*model.Usage, error) {
	var usages []*model.Usage
	var visit func(n *cst.Node, cur scope.ID) error
	visit = func(n *cst.Node, cur scope.ID) error {
		for _, def := range ext.ExtractDefinitions(n, cur, ctx) {
			ctx.Symbols.Insert(def.ScopeID, def.Name, def)
		}
		if u, ok := ext.ExtractUsage(n, cur, ctx); ok {
			usages = append(usages, u)
		}
		if open, isOpen := ext.OpensScope(n); isOpen {
			child, err := ctx.Tree.Create(cur, open.Kind, open.Range)
			if err != nil {
				return err
			}
			for i := 0; i < n.ChildCount(); i++ {
				if err := visit(n.Child(i), child); err != nil {
					return err
				}
			}
			return nil
		}
		for i := 0; i < n.ChildCount(); i++ {
			if err := visit(n.Child(i), cur); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(root, rootScope); err != nil {
		return nil, err
	}
	return usages, nil
}
