package evaluator

import (
	"strings"

	"github.com/haukened/urlrisk/internal/urlrisk/domain"
)

// linearSuffixMatcher scans the TLD list on every call. It is the fallback
// when no index is injected.
type linearSuffixMatcher struct {
	tlds []string
}

// NewLinearSuffixMatcher returns a SuffixMatcher over lists.SuspiciousTLDs().
func NewLinearSuffixMatcher(lists domain.ReferenceLists) SuffixMatcher {
	return &linearSuffixMatcher{tlds: lists.SuspiciousTLDs()}
}

func (m *linearSuffixMatcher) HasSuspiciousSuffix(authority string) bool {
	for _, tld := range m.tlds {
		if strings.HasSuffix(authority, tld) {
			return true
		}
	}
	return false
}
