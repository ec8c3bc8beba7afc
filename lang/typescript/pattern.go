package typescript

import "github.com/unhappychoice/lintric-sub000/cst"

// collectPatternIdentifiers walks a binding pattern (object/array
// destructuring, defaults, rest elements) and returns every bound
// "identifier" leaf, for variable_declarator, parameters, and catch clauses.
func collectPatternIdentifiers(n *cst.Node) []*cst.Node {
	var out []*cst.Node
	var walk func(n *cst.Node)
	walk = func(n *cst.Node) {
		if n == nil {
			return
		}
		switch n.Kind() {
		case "identifier", "shorthand_property_identifier_pattern":
			out = append(out, n)
			return
		case "property_identifier", "type_identifier":
			// key of a destructured property, or a type annotation — not a
			// binding on its own
			return
		case "assignment_pattern":
			// left side is the binding, right side is a default-value
			// expression that will be visited as ordinary usages by the
			// traverser
			if left := n.ChildByFieldName("left"); left != nil {
				walk(left)
			}
			return
		case "pair_pattern":
			if value := n.ChildByFieldName("value"); value != nil {
				walk(value)
			}
			return
		}
		for _, c := range n.NamedChildren() {
			walk(c)
		}
	}
	walk(n)
	return out
}
