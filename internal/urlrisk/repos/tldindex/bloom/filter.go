package bloom

import (
	bitsbloom "github.com/bits-and-blooms/bloom/v3"
)

// filter is a write-then-read Bloom filter. The TLD index adds every entry
// before the filter is shared, so no locking is needed; Add must not race
// with MightContain.
type filter struct {
	bf *bitsbloom.BloomFilter
}

func (f *filter) Add(key []byte) {
	f.bf.Add(key)
}

func (f *filter) MightContain(key []byte) bool {
	return f.bf.Test(key)
}
