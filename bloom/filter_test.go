package bloom

import (
	"math"
	"testing"

	"github.com/nickboucher/abom/hamlet"
)

func TestFilterSizeMustBePowerOfTwo(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	for _, size := range []int{0, 1, 3, 100, 1<<18 - 1} {
		_, err := NewFilter(size, 2)
		wont.Nil(err)
	}
	for _, size := range []int{2, 64, 1 << 18} {
		filter, err := NewFilter(size, 2)
		must.Nil(err)
		wont.Nil(filter)
	}
	_, err := NewFilter(64, 0)
	wont.Nil(err)
}

func TestInsertedDigestIsContained(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	filter, err := NewFilter(1<<18, 2)
	must.Nil(err)
	digest := []byte{0xAB, 0xCD, 0xEF, 0x12, 0x34}
	wont.True(filter.Contains(digest))
	filter.Insert(digest)
	must.True(filter.Contains(digest))
	wont.True(filter.Contains([]byte{0x11, 0x22, 0x33, 0x44, 0x55}))
}

func TestDigestBitsSliceIntoProbeIndices(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	filter, err := NewFilter(1<<18, 2)
	must.Nil(err)

	filter.Insert([]byte{0xFF, 0xFF, 0xC0, 0x00, 0x00})
	must.True(filter.Bit(1<<18 - 1))
	must.True(filter.Bit(0))
	must.Equal(2, filter.Ones())

	filter.Insert([]byte{0x00, 0x00, 0x3F, 0xFF, 0xF0})
	must.Equal(2, filter.Ones())
}

func TestShortDigestsAreExpanded(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	filter, err := NewFilter(1<<18, 2)
	must.Nil(err)
	short := []byte{0x42, 0x77}
	filter.Insert(short)
	must.True(filter.Contains(short))
	must.True(filter.Ones() <= 2)
}

func TestFalsePositiveRateFollowsSaturation(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	filter, err := NewFilter(1<<18, 2)
	must.Nil(err)
	must.Equal(0.0, filter.FalsePositiveRate())

	filter.Insert([]byte{0xFF, 0xFF, 0xC0, 0x00, 0x00})
	must.Equal(2, filter.Ones())
	must.Equal(math.Pow(2.0/float64(1<<18), 2.0), filter.FalsePositiveRate())
}

func TestUnionMergesSetBits(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	left, err := NewFilter(1<<18, 2)
	must.Nil(err)
	right, err := NewFilter(1<<18, 2)
	must.Nil(err)

	one := []byte{0xAB, 0xCD, 0xEF, 0x12, 0x34}
	two := []byte{0x11, 0x22, 0x33, 0x44, 0x55}
	left.Insert(one)
	right.Insert(two)

	must.Nil(left.Union(right))
	must.True(left.Contains(one))
	must.True(left.Contains(two))
	wont.True(right.Contains(one))
}

func TestUnionRejectsMismatchedParameters(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	left, err := NewFilter(1<<18, 2)
	must.Nil(err)
	smaller, err := NewFilter(1<<17, 2)
	must.Nil(err)
	differentProbes, err := NewFilter(1<<18, 3)
	must.Nil(err)

	wont.Nil(left.Union(smaller))
	wont.Nil(left.Union(differentProbes))
}

func TestCloneIsIndependent(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	original, err := NewFilter(1<<18, 2)
	must.Nil(err)
	digest := []byte{0xAB, 0xCD, 0xEF, 0x12, 0x34}
	original.Insert(digest)

	clone := original.Clone()
	must.True(clone.Equal(original))

	clone.Insert([]byte{0x11, 0x22, 0x33, 0x44, 0x55})
	wont.True(clone.Equal(original))
	must.Equal(2, original.Ones())
}

func TestEqualComparesParametersAndBits(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	left, err := NewFilter(1<<18, 2)
	must.Nil(err)
	right, err := NewFilter(1<<18, 2)
	must.Nil(err)
	other, err := NewFilter(1<<17, 2)
	must.Nil(err)

	must.True(left.Equal(right))
	wont.True(left.Equal(other))

	left.Insert([]byte{0xAB, 0xCD, 0xEF, 0x12, 0x34})
	wont.True(left.Equal(right))
	right.Insert([]byte{0xAB, 0xCD, 0xEF, 0x12, 0x34})
	must.True(left.Equal(right))
}
