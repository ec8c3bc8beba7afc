package rust

import "github.com/unhappychoice/lintric-sub000/cst"

// useLeaf is one name brought into scope by a use_declaration, carrying
// whichever identifier node is closest to the introduced name: the alias in
// a `use_as_clause`, otherwise the last path segment.
type useLeaf struct {
	name     string
	nameNode *cst.Node
}

// collectUseLeaves flattens a use_declaration's argument tree (use_list,
// use_as_clause, scoped_identifier, wildcard) into the set of names it
// introduces, per spec §4.6's import-aliasing rule: when a use_as_clause
// renames a path, only the alias becomes the importing scope's name for it.
func collectUseLeaves(n *cst.Node) []useLeaf {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "use_as_clause":
		alias := n.ChildByFieldName("alias")
		if alias == nil {
			return nil
		}
		return []useLeaf{{name: alias.Text(), nameNode: alias}}
	case "use_list":
		var out []useLeaf
		for _, c := range n.NamedChildren() {
			out = append(out, collectUseLeaves(c)...)
		}
		return out
	case "scoped_use_list":
		list := n.ChildByFieldName("list")
		return collectUseLeaves(list)
	case "use_wildcard":
		return nil
	case "scoped_identifier":
		name := n.ChildByFieldName("name")
		if name == nil {
			return nil
		}
		return []useLeaf{{name: name.Text(), nameNode: name}}
	case "identifier":
		return []useLeaf{{name: n.Text(), nameNode: n}}
	default:
		var out []useLeaf
		for _, c := range n.NamedChildren() {
			out = append(out, collectUseLeaves(c)...)
		}
		return out
	}
}
