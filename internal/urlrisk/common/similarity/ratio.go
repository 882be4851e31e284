// Package similarity scores how alike two strings are using the
// longest-matching-block sequence matcher.
package similarity

import (
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

// Ratio returns 2*M/T in [0,1], where M is the number of characters covered by
// the matching blocks found by recursively taking the longest common
// contiguous block and T is the combined length of a and b.
// Two empty strings are identical and score 1.
func Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

// runes splits s into one element per character, which is the sequence
// granularity the matcher works on. Bytes of invalid UTF-8 stay distinct.
func runes(s string) []string {
	out := make([]string, 0, len(s))
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		out = append(out, s[i:i+size])
		i += size
	}
	return out
}
