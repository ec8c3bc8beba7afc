package lintric

// Diagnostics reports counters from one Analyze run: how many usages were
// found, how many resolved to a dependency edge (for Rust, ResolvedCount
// also counts each import-to-original edge, which comes from no usage), how
// many did not, and (when a cache is enabled) its hit/miss tally. Nothing here is fatal; it exists so a caller
// can log or report without the core reaching for a logger itself.
type Diagnostics struct {
	UsageCount      int
	ResolvedCount   int
	UnresolvedCount int
	CacheHits       int
	CacheMisses     int
}
