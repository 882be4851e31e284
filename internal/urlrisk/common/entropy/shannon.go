// Package entropy measures how random a string looks.
package entropy

import (
	"math"
	"unicode/utf8"
)

// Shannon returns the Shannon entropy of s in bits per character.
// Every rune counts, with no case folding or normalisation. Each byte of an
// invalid UTF-8 sequence is its own symbol, keyed by its byte value.
// The empty string has no distribution; Shannon reports 0 for it.
func Shannon(s string) float64 {
	counts := make(map[string]int, len(s))
	total := 0
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		counts[s[i:i+size]]++
		total++
		i += size
	}
	if total == 0 {
		return 0
	}

	n := float64(total)
	h := 0.0
	for _, c := range counts {
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}
