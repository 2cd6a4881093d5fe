package analysis

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jahboukie/promptpro/internal/prompt"
)

// DefaultCacheSize is used when a cache is requested with a non-positive size
const DefaultCacheSize = 256

// CachedAnalyzer memoizes results per distinct prompt.
// A cached result keeps the model advice picked on first analysis.
type CachedAnalyzer struct {
	analyzer *Analyzer
	cache    *lru.Cache[prompt.Data, Result]
}

// NewCached wraps analyzer with an LRU cache holding up to size results
func NewCached(analyzer *Analyzer, size int) (*CachedAnalyzer, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[prompt.Data, Result](size)
	if err != nil {
		return nil, err
	}
	return &CachedAnalyzer{analyzer: analyzer, cache: cache}, nil
}

// Analyze returns the cached result for data, computing it on a miss
func (c *CachedAnalyzer) Analyze(data prompt.Data) Result {
	if r, ok := c.cache.Get(data); ok {
		return r.clone()
	}
	r := c.analyzer.Analyze(data)
	c.cache.Add(data, r)
	return r.clone()
}

// Len returns the number of cached results
func (c *CachedAnalyzer) Len() int {
	return c.cache.Len()
}

// Purge drops every cached result
func (c *CachedAnalyzer) Purge() {
	c.cache.Purge()
}
