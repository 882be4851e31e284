package domain

import (
	"strings"

	"github.com/haukened/urlrisk/internal/urlrisk/common/utils"
)

// ParsedURL is the syntactic decomposition of a RawURL.
// Authority keeps userinfo and port, and it is the "domain" every rule inspects.
type ParsedURL struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string

	// Apex is the registrable domain of Authority. It is informational
	// and no rule reads it.
	Apex string
}

// ParseURL splits raw into its components using generic URI syntax.
//
// ParseURL never fails: any component that cannot be found is left empty
// and evaluation continues. Unlike net/url it accepts bad escapes, spaces
// and colons in the first path segment.
//
// Leading C0 controls and spaces are trimmed and every ASCII tab, CR and LF
// is removed before splitting, as WHATWG URL parsing does. Only the
// components are affected; rules reading the RawURL still see it verbatim.
func ParseURL(raw string) ParsedURL {
	var p ParsedURL
	rest := stripUnsafe(raw)

	if scheme, after, ok := splitScheme(rest); ok {
		p.Scheme = strings.ToLower(scheme)
		rest = after
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := strings.IndexAny(rest, "/?#")
		if end < 0 {
			end = len(rest)
		}
		p.Authority = rest[:end]
		rest = rest[end:]
	}

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		p.Fragment = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		p.Query = rest[i+1:]
		rest = rest[:i]
	}
	p.Path = rest
	p.Apex = utils.ApexDomain(p.Authority)
	return p
}

var newlineTabRemover = strings.NewReplacer("\t", "", "\r", "", "\n", "")

// stripUnsafe drops leading bytes <= 0x20 and all tab, CR and LF bytes.
func stripUnsafe(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool { return r <= ' ' })
	if strings.ContainsAny(s, "\t\r\n") {
		s = newlineTabRemover.Replace(s)
	}
	return s
}

// splitScheme returns the scheme and remainder when s starts with
// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) ":".
func splitScheme(s string) (scheme, rest string, ok bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isAlpha(c):
		case i > 0 && (isDigit(c) || c == '+' || c == '-' || c == '.'):
		case i > 0 && c == ':':
			return s[:i], s[i+1:], true
		default:
			return "", s, false
		}
	}
	return "", s, false
}

func isAlpha(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
