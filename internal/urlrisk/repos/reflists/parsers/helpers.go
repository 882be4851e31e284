package parsers

import (
	"strings"
	"unicode"

	"github.com/haukened/urlrisk/internal/urlrisk/common/utils"
)

// normalizer maps a trimmed, comment-free token to its stored form.
// It returns false when the token must be skipped.
type normalizer func(token string) (string, bool)

// normalizeKeyword lower-cases a keyword. Keywords are path substrings, so
// embedded whitespace is rejected.
func normalizeKeyword(token string) (string, bool) {
	if strings.IndexFunc(token, unicode.IsSpace) >= 0 {
		return "", false
	}
	return strings.ToLower(token), true
}

// normalizeTLD lower-cases a suffix and ensures exactly one leading dot.
// "*.tk", ".tk" and "tk" all become ".tk".
func normalizeTLD(token string) (string, bool) {
	token = strings.TrimPrefix(token, "*")
	name := utils.CanonicalDomain(strings.TrimLeft(token, "."))
	if !isValidName(name, 1) {
		return "", false
	}
	return "." + name, true
}

// normalizeDomain canonicalizes a popular domain. At least two labels are
// required.
func normalizeDomain(token string) (string, bool) {
	name := utils.CanonicalDomain(token)
	if !isValidName(name, 2) {
		return "", false
	}
	return name, true
}

// isValidName checks a dotted name: total length at most 253, at least
// minLabels labels, each label 1..63 characters starting with a letter or
// digit, no whitespace and no URL delimiters.
func isValidName(name string, minLabels int) bool {
	if name == "" || len(name) > 253 {
		return false
	}
	if strings.ContainsAny(name, "/?#@: \t") {
		return false
	}
	labels := strings.Split(name, ".")
	if len(labels) < minLabels {
		return false
	}
	for _, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		if !isAlphaNumeric([]rune(label)[0]) {
			return false
		}
	}
	return true
}

// isAlphaNumeric reports whether r is a letter or digit.
func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
