package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RawURL is a non-empty URL string exactly as the user supplied it.
type RawURL string

// NewRawURL validates s. Surrounding whitespace is not stripped from the
// stored value; it only decides whether the input is blank.
func NewRawURL(s string) (RawURL, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: url must not be empty", ErrInvalidInput)
	}
	return RawURL(s), nil
}

// String returns the URL text.
func (u RawURL) String() string { return string(u) }

// Len returns the length of the URL in characters, not bytes.
func (u RawURL) Len() int { return utf8.RuneCountInString(string(u)) }
