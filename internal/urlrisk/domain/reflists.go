package domain

import (
	"fmt"
	"strings"
)

// ReferenceLists bundles the three read-only datasets the rules consult.
// The zero value is empty; build one with NewReferenceLists or
// DefaultReferenceLists. Accessors return copies so a ReferenceLists can be
// shared between goroutines without locking.
type ReferenceLists struct {
	keywords []string
	tlds     []string
	popular  []string
}

// NewReferenceLists validates and copies the given lists, preserving order.
// Keywords are stored lower-cased because the path check is case-insensitive.
// Every TLD must begin with "."; empty entries are rejected in all lists.
func NewReferenceLists(keywords, tlds, popular []string) (ReferenceLists, error) {
	rl := ReferenceLists{
		keywords: make([]string, 0, len(keywords)),
		tlds:     make([]string, 0, len(tlds)),
		popular:  make([]string, 0, len(popular)),
	}
	for _, k := range keywords {
		if k == "" {
			return ReferenceLists{}, fmt.Errorf("phishing keyword must not be empty")
		}
		rl.keywords = append(rl.keywords, strings.ToLower(k))
	}
	for _, t := range tlds {
		if len(t) < 2 || !strings.HasPrefix(t, ".") {
			return ReferenceLists{}, fmt.Errorf("suspicious tld %q must start with '.'", t)
		}
		rl.tlds = append(rl.tlds, t)
	}
	for _, d := range popular {
		if d == "" {
			return ReferenceLists{}, fmt.Errorf("popular domain must not be empty")
		}
		rl.popular = append(rl.popular, d)
	}
	return rl, nil
}

// PhishingKeywords returns a copy of the keyword list.
func (r ReferenceLists) PhishingKeywords() []string { return clone(r.keywords) }

// SuspiciousTLDs returns a copy of the suspicious TLD list.
func (r ReferenceLists) SuspiciousTLDs() []string { return clone(r.tlds) }

// PopularDomains returns a copy of the popular domain list.
func (r ReferenceLists) PopularDomains() []string { return clone(r.popular) }

// WithPhishingKeywords returns a copy of r with the keyword list replaced.
func (r ReferenceLists) WithPhishingKeywords(keywords []string) (ReferenceLists, error) {
	return NewReferenceLists(keywords, r.tlds, r.popular)
}

// WithSuspiciousTLDs returns a copy of r with the TLD list replaced.
func (r ReferenceLists) WithSuspiciousTLDs(tlds []string) (ReferenceLists, error) {
	return NewReferenceLists(r.keywords, tlds, r.popular)
}

// WithPopularDomains returns a copy of r with the popular domain list replaced.
func (r ReferenceLists) WithPopularDomains(popular []string) (ReferenceLists, error) {
	return NewReferenceLists(r.keywords, r.tlds, popular)
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

var defaultKeywords = []string{
	"login", "logon", "signin", "verify", "verification",
	"account", "acct", "update", "secure", "upgrade",
	"security", "safe", "web", "webaccess", "webmail",
	"confirm", "confirmation", "payment", "pay",
	"checkout", "bank", "banking", "securebank",
	"service", "customer-service", "alert", "warning",
	"support", "helpdesk", "password", "pass", "pwd",
	"unlock", "reactivate", "validate", "validation",
	"reset", "recovery", "activity", "suspicious-activity",
	"online", "onlinebanking", "notice", "notification",
	"limited", "limitedtime", "expiring", "access",
	"restricted-access", "funds", "fundtransfer",
	"statement", "billing", "updateinfo", "info-update",
	"checkout", "purchase", "reward", "bonus", "prize",
	"gift", "giftcard", "giveaway", "promo", "promotion",
}

var defaultTLDs = []string{
	".biz", ".info", ".ru", ".cn", ".pw", ".top", ".work", ".club", ".link",
	".click", ".xyz", ".online", ".party", ".gq", ".ml", ".ga", ".cf", ".tk",
	".men", ".stream", ".download", ".racing", ".win", ".bid", ".loan", ".trade",
	".science", ".accountants", ".date", ".faith", ".press", ".review", ".space",
	".host", ".website",
}

var defaultPopularDomains = []string{
	"google.com", "paypal.com", "facebook.com", "amazon.com",
	"daraz.com", "rokomari.com", "bkash.com",
}

// DefaultReferenceLists returns the compiled-in lists.
func DefaultReferenceLists() ReferenceLists {
	rl, err := NewReferenceLists(defaultKeywords, defaultTLDs, defaultPopularDomains)
	if err != nil {
		panic(fmt.Sprintf("BUG: compiled-in reference lists are invalid: %v", err))
	}
	return rl
}
