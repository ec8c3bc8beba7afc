package lintric

import (
	"github.com/unhappychoice/lintric-sub000/model"
)

// Option configures an Analyzer, following the teacher's functional-options
// shape (analyzer/option.go's WithLanguage, WithMacher, WithPlugin, ...).
type Option func(*Analyzer)

// Plugin receives a callback after every usage has gone through the
// resolver, whether or not it produced an edge.
type Plugin interface {
	AfterResolve(usage *model.Usage, dep *model.Dependency, resolved bool)
}

// AnnotationHook is invoked once per definition discovered during traversal,
// before resolution begins. It lets a caller index or tag definitions
// without re-walking the tree itself.
type AnnotationHook func(def *model.Definition)

// WithCache enables the optional resolution cache (spec component C10) for
// the run. A fresh cache is built per Analyze call, since the cache is
// invalidated whenever the symbol table it was built over is rebuilt.
func WithCache() Option {
	return func(a *Analyzer) {
		a.useCache = true
	}
}

// WithPlugin registers a Plugin whose AfterResolve hook fires for every
// usage Analyze passes to the resolver, whether or not it resolved.
func WithPlugin(p Plugin) Option {
	return func(a *Analyzer) {
		a.plugins = append(a.plugins, p)
	}
}

// WithAnnotationHook registers a hook invoked for every definition
// discovered during traversal.
func WithAnnotationHook(hook AnnotationHook) Option {
	return func(a *Analyzer) {
		a.annotationHooks = append(a.annotationHooks, hook)
	}
}
