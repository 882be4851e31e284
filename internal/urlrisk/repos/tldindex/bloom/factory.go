// Package bloom adapts bits-and-blooms Bloom filters to the tldindex interfaces.
package bloom

import (
	bitsbloom "github.com/bits-and-blooms/bloom/v3"

	"github.com/haukened/urlrisk/internal/urlrisk/repos/tldindex"
)

// factory implements tldindex.BloomFactory using internal sizing formulas.
type factory struct {
	sizer tldindex.BloomSizer
}

// NewFactory returns a BloomFactory that sizes filters from capacity and FP rate.
func NewFactory() tldindex.BloomFactory { return factory{sizer: NewSizer()} }

// New constructs a filter sized for capacity entries at fpRate.
func (f factory) New(capacity uint64, fpRate float64) tldindex.BloomFilter {
	m, k := f.sizer.Size(capacity, fpRate)
	return &filter{bf: bitsbloom.New(uint(m), uint(k))}
}
