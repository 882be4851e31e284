package utils

import (
	"net"

	"golang.org/x/net/publicsuffix"
)

// ApexDomain returns the registrable domain (eTLD+1) of an authority.
// Userinfo and port are ignored. When the public suffix list cannot
// answer (IP literals, bare TLDs, empty input) the canonical host is returned.
func ApexDomain(authority string) string {
	host := CanonicalDomain(HostOnly(authority))
	if host == "" || net.ParseIP(host) != nil {
		return host
	}
	apex, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return apex
}
