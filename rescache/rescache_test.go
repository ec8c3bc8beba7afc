package rescache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unhappychoice/lintric-sub000/model"
	"github.com/unhappychoice/lintric-sub000/pos"
	"github.com/unhappychoice/lintric-sub000/rescache"
)

func TestCache_MissThenHit(t *testing.T) {
	c := rescache.New()
	p := pos.Position{StartLine: 3, StartColumn: 4}

	_, ok := c.Get("x", p)
	assert.False(t, ok)

	dep := &model.Dependency{SourceLine: 3, TargetLine: 1, Symbol: "x", Kind: model.VariableUse}
	c.Put("x", p, dep)

	got, ok := c.Get("x", p)
	assert.True(t, ok)
	assert.Equal(t, dep, got)

	hits, misses := c.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestCache_CachesAbsenceToo(t *testing.T) {
	c := rescache.New()
	p := pos.Position{StartLine: 5}
	c.Put("y", p, nil)

	got, ok := c.Get("y", p)
	assert.True(t, ok)
	assert.Nil(t, got)
}

func TestCache_DistinctPositionsDoNotCollide(t *testing.T) {
	c := rescache.New()
	c.Put("x", pos.Position{StartLine: 1, StartColumn: 0}, &model.Dependency{TargetLine: 1})
	_, ok := c.Get("x", pos.Position{StartLine: 2, StartColumn: 0})
	assert.False(t, ok)
}
