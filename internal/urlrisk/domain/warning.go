package domain

import "slices"

// RuleID names one heuristic rule. IDs are stable and appear in JSON output and logs.
type RuleID string

const (
	RuleKeywordInPath     RuleID = "keyword_in_path"
	RuleSuspiciousTLD     RuleID = "suspicious_tld"
	RuleIPLiteral         RuleID = "ip_literal"
	RuleUnusualCharacters RuleID = "unusual_characters"
	RuleExcessSubdomains  RuleID = "excess_subdomains"
	RuleURLLength         RuleID = "url_length"
	RuleHighEntropy       RuleID = "high_entropy"
	RuleTyposquatting     RuleID = "typosquatting"
	RuleMissingHTTPS      RuleID = "missing_https"
)

// Warning is one triggered rule and its human readable explanation.
type Warning struct {
	Rule    RuleID `json:"rule"`
	Message string `json:"message"`
}

// String returns the message shown to users.
func (w Warning) String() string { return w.Message }

// EvaluationResult is the verdict for one URL.
// Warnings are in rule order and Suspicious is true iff there is at least one.
type EvaluationResult struct {
	URL        string    `json:"url"`
	Suspicious bool      `json:"suspicious"`
	Warnings   []Warning `json:"warnings"`
}

// NewEvaluationResult builds a result, deriving Suspicious from warnings.
func NewEvaluationResult(url RawURL, warnings []Warning) EvaluationResult {
	if warnings == nil {
		warnings = []Warning{}
	}
	return EvaluationResult{
		URL:        url.String(),
		Suspicious: len(warnings) > 0,
		Warnings:   warnings,
	}
}

// Messages returns the warning messages in order.
func (r EvaluationResult) Messages() []string {
	out := make([]string, len(r.Warnings))
	for i, w := range r.Warnings {
		out[i] = w.Message
	}
	return out
}

// Rules returns the IDs of the triggered rules in order.
func (r EvaluationResult) Rules() []RuleID {
	out := make([]RuleID, len(r.Warnings))
	for i, w := range r.Warnings {
		out[i] = w.Rule
	}
	return out
}

// Clone returns a copy of r that shares no backing array with it.
func (r EvaluationResult) Clone() EvaluationResult {
	r.Warnings = slices.Clone(r.Warnings)
	return r
}
