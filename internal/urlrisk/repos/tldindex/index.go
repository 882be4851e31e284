package tldindex

import (
	"strings"
	"sync/atomic"

	"github.com/haukened/urlrisk/internal/urlrisk/domain"
	"github.com/haukened/urlrisk/internal/urlrisk/services/evaluator"
)

// Index implements evaluator.SuffixMatcher. Every dot-anchored suffix of the
// authority is probed in the Bloom filter first; only maybe-positives reach
// the exact set. Because every TLD entry begins with '.', this is equivalent
// to testing strings.HasSuffix against each entry.
type Index struct {
	bloom BloomFilter
	exact map[string]struct{}

	probes    uint64
	negatives uint64
}

// Stats reports how often the Bloom filter settled a probe on its own.
type Stats struct {
	Entries        int
	Probes         uint64
	BloomNegatives uint64
}

// New builds an Index over lists.SuspiciousTLDs().
// The index is read-only after construction.
func New(lists domain.ReferenceLists, factory BloomFactory, fpRate float64) *Index {
	tlds := lists.SuspiciousTLDs()
	idx := &Index{
		bloom: factory.New(uint64(len(tlds)), fpRate),
		exact: make(map[string]struct{}, len(tlds)),
	}
	for _, tld := range tlds {
		idx.bloom.Add([]byte(tld))
		idx.exact[tld] = struct{}{}
	}
	return idx
}

// HasSuspiciousSuffix reports whether authority ends with an indexed TLD.
// Matching is case-sensitive.
func (x *Index) HasSuspiciousSuffix(authority string) bool {
	for i := strings.IndexByte(authority, '.'); i >= 0; {
		suffix := authority[i:]
		if x.probe(suffix) {
			return true
		}
		next := strings.IndexByte(authority[i+1:], '.')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return false
}

func (x *Index) probe(suffix string) bool {
	atomic.AddUint64(&x.probes, 1)
	if !x.bloom.MightContain([]byte(suffix)) {
		atomic.AddUint64(&x.negatives, 1)
		return false
	}
	_, ok := x.exact[suffix]
	return ok
}

// Stats returns a snapshot of the probe counters.
func (x *Index) Stats() Stats {
	return Stats{
		Entries:        len(x.exact),
		Probes:         atomic.LoadUint64(&x.probes),
		BloomNegatives: atomic.LoadUint64(&x.negatives),
	}
}

var _ evaluator.SuffixMatcher = (*Index)(nil)
