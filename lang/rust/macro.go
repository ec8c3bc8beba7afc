package rust

import "github.com/unhappychoice/lintric-sub000/cst"

// isInMacroPattern reports whether n lies in the left-hand (matcher) side of
// a macro_rule rather than its right-hand (transcriber) side, by locating the
// nearest macro_rule ancestor and comparing n's start byte against the
// "=>" separator's. Metavariables on the matcher side are bindings; on the
// transcriber side they are usages of those bindings.
func isInMacroPattern(n *cst.Node) bool {
	cur := n.Parent()
	for cur != nil {
		if cur.Kind() == "macro_rule" {
			arrow := findArrow(cur)
			if arrow == nil {
				return false
			}
			return n.StartByte() < arrow.StartByte()
		}
		cur = cur.Parent()
	}
	return false
}

func findArrow(macroRule *cst.Node) *cst.Node {
	for i := 0; i < macroRule.ChildCount(); i++ {
		c := macroRule.Child(i)
		if !c.IsNamed() && c.Text() == "=>" {
			return c
		}
	}
	return nil
}
