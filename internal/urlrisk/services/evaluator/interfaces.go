package evaluator

import "github.com/haukened/urlrisk/internal/urlrisk/domain"

// Rule is one independent heuristic. Check reports a warning when the rule
// fires; it must not depend on any other rule having run.
type Rule interface {
	ID() domain.RuleID
	Check(p domain.ParsedURL, raw domain.RawURL) (domain.Warning, bool)
}

// SuffixMatcher answers whether an authority ends with one of the
// suspicious TLDs.
type SuffixMatcher interface {
	HasSuspiciousSuffix(authority string) bool
}

// URLEvaluator is the operation every adapter depends on.
type URLEvaluator interface {
	Evaluate(raw string) (domain.EvaluationResult, error)
}

// ResultCache stores verdicts keyed by the raw URL.
type ResultCache interface {
	Get(url string) (domain.EvaluationResult, bool)
	Put(url string, r domain.EvaluationResult)
	Len() int
	Stats() (hits, misses, evictions uint64)
}
