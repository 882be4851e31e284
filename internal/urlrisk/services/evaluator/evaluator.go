// Package evaluator implements the URL risk evaluation: a fixed, ordered
// table of independent rules run against one parsed URL.
package evaluator

import (
	"github.com/haukened/urlrisk/internal/urlrisk/common/log"
	"github.com/haukened/urlrisk/internal/urlrisk/domain"
)

// Evaluator runs every rule against a URL and collects the warnings.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	rules  []Rule
	logger log.Logger
}

// Options configures an Evaluator. Nil fields fall back to the defaults:
// compiled-in lists, stock tunables, a linear TLD scan and the global logger.
// When Rules is set it replaces the default rule table entirely and the
// list, tunable and matcher fields are ignored.
type Options struct {
	Lists    *domain.ReferenceLists
	Tunables *domain.Tunables
	TLDs     SuffixMatcher
	Rules    []Rule
	Logger   log.Logger
}

// New builds an Evaluator from opts.
func New(opts Options) *Evaluator {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetLogger()
	}

	rules := opts.Rules
	if rules == nil {
		lists := domain.DefaultReferenceLists()
		if opts.Lists != nil {
			lists = *opts.Lists
		}
		tunables := domain.DefaultTunables()
		if opts.Tunables != nil {
			tunables = *opts.Tunables
		}
		rules = DefaultRules(lists, tunables, opts.TLDs)
	}

	return &Evaluator{rules: append([]Rule(nil), rules...), logger: logger}
}

// Evaluate returns the verdict for raw. Blank input fails with
// domain.ErrInvalidInput before any parsing happens; anything else yields a
// result, however malformed the URL.
func (e *Evaluator) Evaluate(raw string) (domain.EvaluationResult, error) {
	u, err := domain.NewRawURL(raw)
	if err != nil {
		return domain.EvaluationResult{}, err
	}

	parsed := domain.ParseURL(u.String())
	warnings := make([]domain.Warning, 0, len(e.rules))
	for _, r := range e.rules {
		if w, ok := r.Check(parsed, u); ok {
			warnings = append(warnings, w)
		}
	}

	result := domain.NewEvaluationResult(u, warnings)
	e.logger.Debug(map[string]any{
		"url":        result.URL,
		"authority":  parsed.Authority,
		"suspicious": result.Suspicious,
		"rules":      result.Rules(),
	}, "url evaluated")
	return result, nil
}

// RuleIDs lists the configured rules in evaluation order.
func (e *Evaluator) RuleIDs() []domain.RuleID {
	ids := make([]domain.RuleID, len(e.rules))
	for i, r := range e.rules {
		ids[i] = r.ID()
	}
	return ids
}

var _ URLEvaluator = (*Evaluator)(nil)
