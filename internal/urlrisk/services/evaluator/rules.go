package evaluator

import (
	"regexp"
	"strings"

	"github.com/haukened/urlrisk/internal/urlrisk/common/entropy"
	"github.com/haukened/urlrisk/internal/urlrisk/domain"
)

// Warning messages, one per rule.
const (
	MsgKeywordInPath     = "Suspicious keyword found in URL path."
	MsgSuspiciousTLD     = "Suspicious TLD found in URL"
	MsgIPLiteral         = "URL contains an IP address which is unusual for legitimate sites."
	MsgUnusualCharacters = "URL contains unusual characters or multiple hyphens."
	MsgExcessSubdomains  = "Domain has multiple subdomains which is suspicious."
	MsgURLLength         = "URL is unusually long which may be suspicious."
	MsgHighEntropy       = "URL entropy is very high which suggests randomness."
	MsgTyposquatting     = "Domain closely resembles a popular domain (possible typosquatting)."
	MsgMissingHTTPS      = "URL does not use HTTPS which can cause security issues."
)

// dottedQuad matches four 1-3 digit groups anywhere in the string.
// Octet ranges are not validated.
var dottedQuad = regexp.MustCompile(`[0-9]{1,3}(\.[0-9]{1,3}){3}`)

const httpsPrefix = "https://"

// Predicate decides whether a rule fires.
type Predicate func(p domain.ParsedURL, raw domain.RawURL) bool

// predicateRule pairs a predicate with the warning it emits.
type predicateRule struct {
	id        domain.RuleID
	message   string
	predicate Predicate
}

// NewRule builds a Rule that emits message whenever predicate holds.
func NewRule(id domain.RuleID, message string, predicate Predicate) Rule {
	return &predicateRule{id: id, message: message, predicate: predicate}
}

func (r *predicateRule) ID() domain.RuleID { return r.id }

func (r *predicateRule) Check(p domain.ParsedURL, raw domain.RawURL) (domain.Warning, bool) {
	if !r.predicate(p, raw) {
		return domain.Warning{}, false
	}
	return domain.Warning{Rule: r.id, Message: r.message}, true
}

// KeywordInPathRule fires when the lower-cased path contains any keyword as a substring.
func KeywordInPathRule(lists domain.ReferenceLists) Rule {
	keywords := lists.PhishingKeywords()
	return NewRule(domain.RuleKeywordInPath, MsgKeywordInPath, func(p domain.ParsedURL, _ domain.RawURL) bool {
		path := strings.ToLower(p.Path)
		for _, kw := range keywords {
			if strings.Contains(path, kw) {
				return true
			}
		}
		return false
	})
}

// SuspiciousTLDRule fires when the authority ends with a suspicious TLD.
func SuspiciousTLDRule(m SuffixMatcher) Rule {
	return NewRule(domain.RuleSuspiciousTLD, MsgSuspiciousTLD, func(p domain.ParsedURL, _ domain.RawURL) bool {
		return m.HasSuspiciousSuffix(p.Authority)
	})
}

// IPLiteralRule fires when the authority contains a dotted quad.
func IPLiteralRule() Rule {
	return NewRule(domain.RuleIPLiteral, MsgIPLiteral, func(p domain.ParsedURL, _ domain.RawURL) bool {
		return dottedQuad.MatchString(p.Authority)
	})
}

// UnusualCharactersRule fires on an '@' anywhere in the URL or on more
// than maxHyphens hyphens in the authority.
func UnusualCharactersRule(maxHyphens int) Rule {
	return NewRule(domain.RuleUnusualCharacters, MsgUnusualCharacters, func(p domain.ParsedURL, raw domain.RawURL) bool {
		return strings.Contains(raw.String(), "@") || strings.Count(p.Authority, "-") > maxHyphens
	})
}

// ExcessSubdomainsRule fires when the authority has more than maxDots dots.
func ExcessSubdomainsRule(maxDots int) Rule {
	return NewRule(domain.RuleExcessSubdomains, MsgExcessSubdomains, func(p domain.ParsedURL, _ domain.RawURL) bool {
		return strings.Count(p.Authority, ".") > maxDots
	})
}

// URLLengthRule fires when the URL is longer than maxLen characters.
func URLLengthRule(maxLen int) Rule {
	return NewRule(domain.RuleURLLength, MsgURLLength, func(_ domain.ParsedURL, raw domain.RawURL) bool {
		return raw.Len() > maxLen
	})
}

// HighEntropyRule fires when the Shannon entropy of the URL exceeds threshold.
func HighEntropyRule(threshold float64) Rule {
	return NewRule(domain.RuleHighEntropy, MsgHighEntropy, func(_ domain.ParsedURL, raw domain.RawURL) bool {
		return entropy.Shannon(raw.String()) > threshold
	})
}

// TyposquattingRule fires when the authority is a near miss of a popular domain.
func TyposquattingRule(d *TyposquatDetector) Rule {
	return NewRule(domain.RuleTyposquatting, MsgTyposquatting, func(p domain.ParsedURL, _ domain.RawURL) bool {
		return d.IsTyposquatting(p.Authority)
	})
}

// MissingHTTPSRule fires unless the URL starts with "https://". With
// caseInsensitive the prefix comparison ignores case; otherwise it is literal,
// so "HTTPS://" fires.
func MissingHTTPSRule(caseInsensitive bool) Rule {
	return NewRule(domain.RuleMissingHTTPS, MsgMissingHTTPS, func(_ domain.ParsedURL, raw domain.RawURL) bool {
		s := raw.String()
		if caseInsensitive {
			return len(s) < len(httpsPrefix) || !strings.EqualFold(s[:len(httpsPrefix)], httpsPrefix)
		}
		return !strings.HasPrefix(s, httpsPrefix)
	})
}

// DefaultRules returns the nine rules in their canonical order.
func DefaultRules(lists domain.ReferenceLists, t domain.Tunables, tlds SuffixMatcher) []Rule {
	if tlds == nil {
		tlds = NewLinearSuffixMatcher(lists)
	}
	return []Rule{
		KeywordInPathRule(lists),
		SuspiciousTLDRule(tlds),
		IPLiteralRule(),
		UnusualCharactersRule(t.MaxDomainHyphens),
		ExcessSubdomainsRule(t.MaxDomainDots),
		URLLengthRule(t.MaxURLLength),
		HighEntropyRule(t.EntropyThreshold),
		TyposquattingRule(NewTyposquatDetector(lists, t.SimilarityThreshold)),
		MissingHTTPSRule(t.CaseInsensitiveHTTPS),
	}
}
