package abom

import (
	"github.com/nickboucher/abom/bloom"
)

const (
	filterIndexBits = 18

	// FilterSize is the bit width m of every Bloom filter in a container.
	FilterSize = 1 << filterIndexBits
	// FilterProbes is the probe count k per inserted hash.
	FilterProbes = 2
	// MaxFalsePositiveRate is the saturation ceiling. A filter whose
	// estimated false positive rate has reached it takes no more inserts;
	// the container grows a fresh filter instead.
	MaxFalsePositiveRate = 1.0 / (1 << 14)

	// IndexBits is the number of digest bits one probe set consumes.
	IndexBits = FilterProbes * filterIndexBits
	// IndexBytes is IndexBits rounded up to whole bytes.
	IndexBytes = (IndexBits + 7) / 8
)

// ABOM is an Automatic Bill of Materials: one or more compressed Bloom
// filters over dependency hashes. Filters overflow into new ones as they
// saturate, keeping the false positive rate of each under the ceiling.
type ABOM struct {
	filters []*bloom.Filter
}

func New() *ABOM {
	return &ABOM{}
}

func newFilter() *bloom.Filter {
	filter, _ := bloom.NewFilter(FilterSize, FilterProbes)
	return filter
}

// Insert records a dependency hash in the first filter still under the
// saturation ceiling, growing a new filter when all are full.
func (it *ABOM) Insert(hash Hash) {
	for _, filter := range it.filters {
		if filter.FalsePositiveRate() < MaxFalsePositiveRate {
			filter.Insert(hash[:])
			return
		}
	}
	fresh := newFilter()
	fresh.Insert(hash[:])
	it.filters = append(it.filters, fresh)
}

// Union merges another bill of materials into this one. Each incoming
// filter folds into the first existing filter that stays under the
// saturation ceiling after the merge, or is appended as-is.
func (it *ABOM) Union(other *ABOM) {
	for _, incoming := range other.filters {
		merged := false
		for at, own := range it.filters {
			folded := own.Clone()
			err := folded.Union(incoming)
			if err == nil && folded.FalsePositiveRate() < MaxFalsePositiveRate {
				it.filters[at] = folded
				merged = true
				break
			}
		}
		if !merged {
			it.filters = append(it.filters, incoming.Clone())
		}
	}
}

// Contains reports whether any filter claims the hash. Subject to the
// false positive rate of the filters; never falsely negative.
func (it *ABOM) Contains(hash Hash) bool {
	for _, filter := range it.filters {
		if filter.Contains(hash[:]) {
			return true
		}
	}
	return false
}

// Filters returns the number of Bloom filters in the container.
func (it *ABOM) Filters() int {
	return len(it.filters)
}

// Ones returns the total number of set bits across all filters.
func (it *ABOM) Ones() int {
	total := 0
	for _, filter := range it.filters {
		total += filter.Ones()
	}
	return total
}
