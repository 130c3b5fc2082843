package bloom

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/crypto/sha3"
)

// Filter is a Bloom filter of `size` bits probed at `probes` indices per
// entry. Entries are prehashed digests; the filter slices probe indices
// out of the digest bits instead of hashing again.
type Filter struct {
	size      int
	probes    int
	indexBits int
	words     []uint64
	ones      int
}

// NewFilter creates an empty filter. The size must be a power of two, so
// that digest bits map to indices without bias.
func NewFilter(size, probes int) (*Filter, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("filter size must be a power of two, not %d", size)
	}
	if probes < 1 {
		return nil, fmt.Errorf("filter needs at least one probe, not %d", probes)
	}
	return &Filter{
		size:      size,
		probes:    probes,
		indexBits: bits.Len(uint(size)) - 1,
		words:     make([]uint64, (size+63)/64),
	}, nil
}

func (it *Filter) Size() int {
	return it.size
}

func (it *Filter) Probes() int {
	return it.probes
}

// Ones returns the number of set bits.
func (it *Filter) Ones() int {
	return it.ones
}

// FalsePositiveRate estimates the false positive rate at the current
// saturation, (ones/size)^probes.
func (it *Filter) FalsePositiveRate() float64 {
	return math.Pow(float64(it.ones)/float64(it.size), float64(it.probes))
}

func (it *Filter) Bit(index int) bool {
	return it.words[index>>6]&(1<<uint(index&63)) != 0
}

func (it *Filter) SetBit(index int) {
	word, mask := index>>6, uint64(1)<<uint(index&63)
	if it.words[word]&mask == 0 {
		it.words[word] |= mask
		it.ones++
	}
}

// Insert sets the probe bits derived from a prehashed digest.
func (it *Filter) Insert(digest []byte) {
	for _, index := range it.indices(digest) {
		it.SetBit(index)
	}
}

// Contains reports whether every probe bit of the digest is set. False
// positives happen at the estimated rate, false negatives never.
func (it *Filter) Contains(digest []byte) bool {
	for _, index := range it.indices(digest) {
		if !it.Bit(index) {
			return false
		}
	}
	return true
}

// Union folds the other filter into this one. Sizes and probe counts must
// match.
func (it *Filter) Union(other *Filter) error {
	if it.size != other.size || it.probes != other.probes {
		return fmt.Errorf("cannot union filters of %d/%d and %d/%d bits/probes", it.size, it.probes, other.size, other.probes)
	}
	ones := 0
	for at, word := range other.words {
		it.words[at] |= word
		ones += bits.OnesCount64(it.words[at])
	}
	it.ones = ones
	return nil
}

func (it *Filter) Clone() *Filter {
	words := make([]uint64, len(it.words))
	copy(words, it.words)
	return &Filter{
		size:      it.size,
		probes:    it.probes,
		indexBits: it.indexBits,
		words:     words,
		ones:      it.ones,
	}
}

func (it *Filter) Equal(other *Filter) bool {
	if it.size != other.size || it.probes != other.probes || it.ones != other.ones {
		return false
	}
	for at, word := range other.words {
		if it.words[at] != word {
			return false
		}
	}
	return true
}

// indices slices the digest bits, most significant bit first, into probe
// indices of indexBits each. Digests with fewer than probes*indexBits bits
// are extended with SHAKE128 output over the given material.
func (it *Filter) indices(digest []byte) []int {
	needed := it.probes * it.indexBits
	material := digest
	if len(material)*8 < needed {
		expansion := make([]byte, (needed+7)/8-len(material))
		sha3.ShakeSum128(expansion, material)
		material = append(material[:len(material):len(material)], expansion...)
	}
	found := make([]int, it.probes)
	for probe := 0; probe < it.probes; probe++ {
		value := 0
		for at := probe * it.indexBits; at < (probe+1)*it.indexBits; at++ {
			value = value<<1 | int(material[at>>3]>>(7-uint(at&7))&1)
		}
		found[probe] = value
	}
	return found
}
