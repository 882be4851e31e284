package evaluator

import "github.com/haukened/urlrisk/internal/urlrisk/domain"

// Cached memoises verdicts of an inner evaluator. Reference lists never
// change at runtime, so a cached verdict stays valid for the life of the process.
// Errors are never cached.
type Cached struct {
	inner URLEvaluator
	cache ResultCache
}

// NewCached wraps inner with cache. A nil cache disables memoisation.
func NewCached(inner URLEvaluator, cache ResultCache) *Cached {
	return &Cached{inner: inner, cache: cache}
}

// Evaluate returns the cached verdict for raw or computes and stores it.
func (c *Cached) Evaluate(raw string) (domain.EvaluationResult, error) {
	if c.cache == nil {
		return c.inner.Evaluate(raw)
	}
	if r, ok := c.cache.Get(raw); ok {
		return r, nil
	}
	r, err := c.inner.Evaluate(raw)
	if err != nil {
		return domain.EvaluationResult{}, err
	}
	c.cache.Put(raw, r)
	return r, nil
}

var _ URLEvaluator = (*Cached)(nil)
