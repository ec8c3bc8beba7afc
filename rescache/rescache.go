// Package rescache implements the optional resolution cache (spec component
// C10): memoised usage-key -> definition answers, invalidated whenever the
// caller rebuilds the symbol table (i.e. by discarding the Cache and
// constructing a new one).
package rescache

import (
	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/pos"
)

type key struct {
	name        string
	startLine   int
	startColumn int
}

// entry holds a cached dependency, or an explicit "resolved to nothing"
// answer — both are distinct from "not yet cached".
type entry struct {
	dep *model.Dependency
}

// Cache is owned by a single resolver instance; it is never shared across
// goroutines and carries no internal locking (spec §5).
type Cache struct {
	entries map[key]entry
	hits    int
	misses  int
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[key]entry)}
}

// Get returns the cached dependency for (name, position.start), and whether
// an answer was cached at all (as opposed to a cached "no dependency",
// which returns ok=true, dep=nil).
func (c *Cache) Get(name string, p pos.Position) (*model.Dependency, bool) {
	k := key{name: name, startLine: p.StartLine, startColumn: p.StartColumn}
	e, ok := c.entries[k]
	if ok {
		c.hits++
		return e.dep, true
	}
	c.misses++
	return nil, false
}

// Put records the resolved dependency (nil for "no dependency") for
// (name, position.start).
func (c *Cache) Put(name string, p pos.Position, dep *model.Dependency) {
	k := key{name: name, startLine: p.StartLine, startColumn: p.StartColumn}
	c.entries[k] = entry{dep: dep}
}

// Stats reports cumulative hit/miss counts for diagnostics.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Len returns the number of distinct usage-keys currently cached.
func (c *Cache) Len() int {
	return len(c.entries)
}
