// Package resolve implements the per-language resolver (spec component C8):
// given a Usage, it returns zero or one Dependency by running a
// priority-ordered cascade of stages over the frozen scope tree and symbol
// table built by package traverse.
package resolve

import (
	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/pos"
	"github.com/unhappychoice/lintric-sub000/scope"
	"github.com/unhappychoice/lintric-sub000/symtab"
)

// Resolver is implemented by RustResolver and TypeScriptResolver.
type Resolver interface {
	Resolve(u *model.Usage) (*model.Dependency, bool)
}

func isGloballyAccessible(k model.DefinitionKind) bool {
	switch k {
	case model.ConstOrStatic, model.Import, model.ModuleDef, model.StructField:
		return true
	}
	return false
}

func sameFunctionScope(tree *scope.Tree, usageScope, defScope scope.ID) bool {
	uf := tree.NearestOfKind(usageScope, scope.Function)
	df := tree.NearestOfKind(defScope, scope.Function)
	if uf == scope.None && df == scope.None {
		return true
	}
	return uf == df
}

func posLE(a, b pos.Position) bool {
	return a.Less(b) || a.Equal(b)
}

// accessible implements spec §4.7.2 stage 8 / §4.7.4: a candidate is visible
// to usage if it's hoisted, of a globally-accessible kind, or declared in the
// same function scope at-or-before the usage's position.
func accessible(tree *scope.Tree, d *model.Definition, usage *model.Usage) bool {
	if d.IsHoisted || isGloballyAccessible(d.Kind) {
		return true
	}
	if !sameFunctionScope(tree, usage.ScopeID, d.ScopeID) {
		return false
	}
	return posLE(d.Position, usage.Position)
}

func scopeDistance(tree *scope.Tree, usageScope, defScope scope.ID) int {
	for i, id := range tree.WalkUp(usageScope) {
		if id == defScope {
			return i
		}
	}
	return tree.Len()
}

type kindRankFunc func(model.DefinitionKind) int

// selectBest implements the ranking spec §4.7.2 stages 5-7 describe:
// nearest scope wins, then kind preference, then textual-precedence
// tie-break (prefer the closest definition not after the usage; among
// forward (hoisted) references prefer the closest one after it). Candidates
// on the usage's own line are skipped: mkDep would discard them anyway, and
// in `let x = x + 1` the usage must reach the earlier x, not its own binding.
func selectBest(tree *scope.Tree, candidates []*model.Definition, usage *model.Usage, rank kindRankFunc) *model.Definition {
	var pool []*model.Definition
	for _, c := range candidates {
		if c.Position.StartLine == usage.Position.StartLine {
			continue
		}
		if accessible(tree, c, usage) {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return nil
	}
	best := pool[0]
	bestDist := scopeDistance(tree, usage.ScopeID, best.ScopeID)
	bestRank := rank(best.Kind)
	for _, c := range pool[1:] {
		d := scopeDistance(tree, usage.ScopeID, c.ScopeID)
		r := rank(c.Kind)
		if betterCandidate(c, d, r, best, bestDist, bestRank, usage.Position) {
			best, bestDist, bestRank = c, d, r
		}
	}
	return best
}

func betterCandidate(c *model.Definition, cDist, cRank int, best *model.Definition, bestDist, bestRank int, usagePos pos.Position) bool {
	if cDist != bestDist {
		return cDist < bestDist
	}
	if cRank != bestRank {
		return cRank < bestRank
	}
	cBefore := posLE(c.Position, usagePos)
	bBefore := posLE(best.Position, usagePos)
	if cBefore != bBefore {
		return cBefore
	}
	if cBefore {
		return best.Position.Less(c.Position) // both precede usage: prefer the later (closer) one
	}
	return c.Position.Less(best.Position) // both are forward (hoisted) references: prefer the closer one
}

// lookupCandidates gathers every definition of name reachable from usage's
// scope chain, falling back to the global reverse index only when the chain
// itself carries none (so e.g. a nested mod_item's exported items are still
// reachable even though they're outside the usage's own scope chain).
func lookupCandidates(tree *scope.Tree, tab *symtab.Table, usage *model.Usage, name string) []*model.Definition {
	cands := tab.LookupInChain(tree, usage.ScopeID, name)
	if len(cands) > 0 {
		return cands
	}
	var out []*model.Definition
	for _, sid := range tab.LookupGlobalName(name) {
		out = append(out, tab.InScope(sid, name)...)
	}
	return out
}

// mkDep builds a Dependency, enforcing the source_line != target_line
// invariant (spec §3, §8 boundary behaviour) by returning nil for
// same-line self-reference.
func mkDep(usage *model.Usage, def *model.Definition, kind model.DependencyKind, context string) *model.Dependency {
	if def == nil {
		return nil
	}
	if def.Position.StartLine == usage.Position.StartLine {
		return nil
	}
	return &model.Dependency{
		SourceLine: usage.Position.StartLine,
		TargetLine: def.Position.StartLine,
		Symbol:     usage.Name,
		Kind:       kind,
		Context:    context,
	}
}
