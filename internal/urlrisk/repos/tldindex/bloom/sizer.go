package bloom

import (
	"math"

	bitsbloom "github.com/bits-and-blooms/bloom/v3"

	"github.com/haukened/urlrisk/internal/urlrisk/repos/tldindex"
)

// defaultFPRate replaces out-of-range false positive targets.
const defaultFPRate = 0.01

// sizer implements tldindex.BloomSizer on top of bloom.EstimateParameters,
// clamping the inputs to a usable range and k to the uint8 the interface
// returns.
type sizer struct{}

// NewSizer returns a BloomSizer implementation.
func NewSizer() tldindex.BloomSizer { return sizer{} }

func (sizer) Size(n uint64, p float64) (uint64, uint8) {
	n = max(n, 1)
	if !(p > 0 && p < 1) {
		p = defaultFPRate
	}
	m, k := bitsbloom.EstimateParameters(uint(n), p)
	return uint64(max(m, 1)), uint8(min(max(k, 1), math.MaxUint8))
}
