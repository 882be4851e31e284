// Package resultcache memoises evaluation results in a bounded LRU.
package resultcache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/urlrisk/internal/urlrisk/domain"
	"github.com/haukened/urlrisk/internal/urlrisk/services/evaluator"
)

// resultCache is an LRU-backed evaluator.ResultCache.
// It tracks hits, misses and evictions.
type resultCache struct {
	lru       *lru.Cache[string, domain.EvaluationResult]
	hits      uint64
	misses    uint64
	evictions uint64
}

// disabledCache is a no-op ResultCache used when size <= 0.
type disabledCache struct{}

// New creates a ResultCache holding up to size results. If size <= 0 a
// disabled cache is returned that always misses.
func New(size int) (evaluator.ResultCache, error) {
	if size <= 0 {
		return &disabledCache{}, nil
	}
	var rc resultCache
	cache, err := lru.NewWithEvict(size, func(_ string, _ domain.EvaluationResult) {
		atomic.AddUint64(&rc.evictions, 1)
	})
	if err != nil {
		return nil, err
	}
	rc.lru = cache
	return &rc, nil
}

// Get looks up the result for url. The returned result is a copy.
func (c *resultCache) Get(url string) (domain.EvaluationResult, bool) {
	if val, ok := c.lru.Get(url); ok {
		atomic.AddUint64(&c.hits, 1)
		return val.Clone(), true
	}
	atomic.AddUint64(&c.misses, 1)
	return domain.EvaluationResult{}, false
}

// Put stores a copy of the result for url.
func (c *resultCache) Put(url string, r domain.EvaluationResult) {
	c.lru.Add(url, r.Clone())
}

// Len returns the number of cached results.
func (c *resultCache) Len() int { return c.lru.Len() }

// Stats returns cumulative hit/miss/eviction counters.
func (c *resultCache) Stats() (hits, misses, evictions uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses), atomic.LoadUint64(&c.evictions)
}

func (d *disabledCache) Get(string) (domain.EvaluationResult, bool) {
	return domain.EvaluationResult{}, false
}
func (d *disabledCache) Put(string, domain.EvaluationResult) {}
func (d *disabledCache) Len() int                            { return 0 }
func (d *disabledCache) Stats() (uint64, uint64, uint64)     { return 0, 0, 0 }

var _ evaluator.ResultCache = (*resultCache)(nil)
var _ evaluator.ResultCache = (*disabledCache)(nil)
