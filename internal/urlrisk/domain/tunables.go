package domain

// Tunables holds the heuristic thresholds of the structural rules.
// Each rule fires when its measurement is strictly greater than the limit.
type Tunables struct {
	MaxDomainDots       int     // dots allowed in the authority
	MaxDomainHyphens    int     // hyphens allowed in the authority
	MaxURLLength        int     // characters allowed in the raw URL
	EntropyThreshold    float64 // bits per character
	SimilarityThreshold float64 // typosquat ratio, in [0,1]

	// CaseInsensitiveHTTPS accepts "HTTPS://" and other casings of the
	// scheme prefix. Off by default: the literal "https://" prefix is required.
	CaseInsensitiveHTTPS bool
}

// DefaultTunables returns the stock thresholds.
func DefaultTunables() Tunables {
	return Tunables{
		MaxDomainDots:       2,
		MaxDomainHyphens:    1,
		MaxURLLength:        75,
		EntropyThreshold:    4.0,
		SimilarityThreshold: 0.8,
	}
}
