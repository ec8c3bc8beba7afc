package rust

import "github.com/unhappychoice/lintric-sub000/cst"

// collectPatternIdentifiers walks a pattern subtree (tuple, struct, slice,
// reference, or-patterns) and returns every bare "identifier" leaf found,
// regardless of letter case. Used for let_declaration, whose bindings are
// never treated as constructor references.
func collectPatternIdentifiers(n *cst.Node) []*cst.Node {
	var out []*cst.Node
	var walk func(n *cst.Node)
	walk = func(n *cst.Node) {
		if n == nil {
			return
		}
		switch n.Kind() {
		case "identifier":
			out = append(out, n)
			return
		case "field_identifier", "type_identifier", "scoped_identifier", "path":
			// part of a struct/enum-variant pattern's type path, not a binding
			return
		}
		for _, c := range n.NamedChildren() {
			walk(c)
		}
	}
	walk(n)
	return out
}

// collectBindingIdentifiers is like collectPatternIdentifiers but used for
// match arms, for-loop patterns, and if-let/while-let conditions, where a
// capitalized leaf identifies an enum variant or constant being matched
// against rather than a new binding, per spec §4.6 note on pattern-context
// case sensitivity.
func collectBindingIdentifiers(n *cst.Node) []*cst.Node {
	all := collectPatternIdentifiers(n)
	out := all[:0:0]
	for _, id := range all {
		if isLowerStart(id.Text()) {
			out = append(out, id)
		}
	}
	return out
}

func isLowerStart(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return !(c >= 'A' && c <= 'Z')
}
