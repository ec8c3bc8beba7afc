package typescript

import "github.com/unhappychoice/lintric-sub000/cst"

// importLeaf is one name an import_statement's clause brings into module
// scope, carrying the identifier node the name is taken from.
type importLeaf struct {
	name     string
	nameNode *cst.Node
}

// collectImportLeaves flattens an import_statement's clause (default import,
// namespace import, named imports with "as" aliasing) into the names it
// introduces. When an import specifier aliases a name, only the alias
// becomes the importing scope's binding for it, mirroring Rust's
// use_as_clause handling.
func collectImportLeaves(clause *cst.Node) []importLeaf {
	if clause == nil {
		return nil
	}
	var out []importLeaf
	var walk func(n *cst.Node)
	walk = func(n *cst.Node) {
		switch n.Kind() {
		case "import_specifier":
			if alias := n.ChildByFieldName("alias"); alias != nil {
				out = append(out, importLeaf{name: alias.Text(), nameNode: alias})
				return
			}
			if name := n.ChildByFieldName("name"); name != nil {
				out = append(out, importLeaf{name: name.Text(), nameNode: name})
			}
		case "namespace_import":
			if id := n.NamedChild(0); id != nil {
				out = append(out, importLeaf{name: id.Text(), nameNode: id})
			}
		case "identifier":
			// bare default import binding
			out = append(out, importLeaf{name: n.Text(), nameNode: n})
		default:
			for _, c := range n.NamedChildren() {
				walk(c)
			}
		}
	}
	walk(clause)
	return out
}
