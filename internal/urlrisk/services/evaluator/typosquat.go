package evaluator

import (
	"github.com/haukened/urlrisk/internal/urlrisk/common/similarity"
	"github.com/haukened/urlrisk/internal/urlrisk/domain"
)

// TyposquatDetector flags domains that are nearly, but not exactly, one of
// the popular domains.
type TyposquatDetector struct {
	popular   []string
	threshold float64
}

// NewTyposquatDetector compares against lists.PopularDomains() in list order.
// A domain is a near match when its similarity ratio is strictly above threshold.
func NewTyposquatDetector(lists domain.ReferenceLists, threshold float64) *TyposquatDetector {
	return &TyposquatDetector{popular: lists.PopularDomains(), threshold: threshold}
}

// IsTyposquatting returns true at the first popular domain that is similar
// enough and not identical. Matching is exact string comparison, so case and
// port differences count as differences.
func (d *TyposquatDetector) IsTyposquatting(name string) bool {
	_, ok := d.Match(name)
	return ok
}

// Match is IsTyposquatting that also reports which popular domain matched.
func (d *TyposquatDetector) Match(name string) (string, bool) {
	for _, known := range d.popular {
		if name == known {
			continue
		}
		if similarity.Ratio(name, known) > d.threshold {
			return known, true
		}
	}
	return "", false
}
