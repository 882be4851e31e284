package resultcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/urlrisk/internal/urlrisk/domain"
	"github.com/haukened/urlrisk/internal/urlrisk/services/evaluator"
)

func result(url string) domain.EvaluationResult {
	return domain.NewEvaluationResult(domain.RawURL(url), []domain.Warning{{Rule: domain.RuleMissingHTTPS, Message: "no https"}})
}

func TestResultCache_HitMissAndPut(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)

	_, ok := c.Get("http://a.com")
	assert.False(t, ok)

	c.Put("http://a.com", result("http://a.com"))
	got, ok := c.Get("http://a.com")
	assert.True(t, ok)
	assert.Equal(t, result("http://a.com"), got)

	hits, misses, evictions := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, uint64(0), evictions)
}

func TestResultCache_EvictionAndLen(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)
	c.Put("a", result("a"))
	c.Put("b", result("b"))
	c.Put("c", result("c"))

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok, "least recently used entry is evicted")
	_, _, evictions := c.Stats()
	assert.Equal(t, uint64(1), evictions)
}

func TestResultCache_ResultsAreIsolated(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)

	stored := result("http://a.com")
	c.Put("http://a.com", stored)
	stored.Warnings[0].Message = "changed after put"

	got, ok := c.Get("http://a.com")
	require.True(t, ok)
	got.Warnings[0].Message = "changed after get"

	again, ok := c.Get("http://a.com")
	require.True(t, ok)
	assert.Equal(t, result("http://a.com"), again)
}

func TestResultCache_Disabled(t *testing.T) {
	c, err := New(0)
	require.NoError(t, err)
	c.Put("x", result("x"))
	_, ok := c.Get("x")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
	hits, misses, evictions := c.Stats()
	assert.Zero(t, hits+misses+evictions)
}

func TestResultCache_BacksCachedEvaluator(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)
	e := evaluator.NewCached(evaluator.New(evaluator.Options{}), c)

	first, err := e.Evaluate("http://192.168.1.1/login")
	require.NoError(t, err)
	second, err := e.Evaluate("http://192.168.1.1/login")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}
