package bloom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/nickboucher/abom/hamlet"
)

func randomBits(seed int64, count int, density float64) []bool {
	generator := rand.New(rand.NewSource(seed))
	bits := make([]bool, count)
	for at := range bits {
		bits[at] = generator.Float64() < density
	}
	return bits
}

func roundtrip(t *testing.T, bits []bool, zeroProbability uint32) {
	t.Helper()
	encoder := NewRangeEncoder(zeroProbability)
	for _, bit := range bits {
		encoder.Encode(bit)
	}
	coded := encoder.Finish()

	decoder := NewRangeDecoder(zeroProbability, coded)
	for at, bit := range bits {
		if decoder.Decode() != bit {
			t.Fatalf("bit %d of %d differs after roundtrip (probability %d, %d coded bytes)", at, len(bits), zeroProbability, len(coded))
		}
	}
}

func TestRoundtripAcrossDensities(t *testing.T) {
	for _, density := range []float64{0.001, 0.01, 0.1, 0.5, 0.9, 0.999} {
		scaled := uint32(density * math.MaxUint32)
		bits := randomBits(42, 4096, density)
		roundtrip(t, bits, ZeroProbability(scaled))
	}
}

func TestRoundtripOfConstantStreams(t *testing.T) {
	zeroes := make([]bool, 2048)
	roundtrip(t, zeroes, ZeroProbability(0))

	ones := make([]bool, 2048)
	for at := range ones {
		ones[at] = true
	}
	roundtrip(t, ones, ZeroProbability(math.MaxUint32))
}

func TestRoundtripWithMismatchedModelStillDecodes(t *testing.T) {
	bits := randomBits(7, 1024, 0.5)
	scale := float64(math.MaxUint32)
	roundtrip(t, bits, ZeroProbability(uint32(0.05*scale)))
}

func TestEncoderIsDeterministic(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	bits := randomBits(11, 1024, 0.02)
	scale := float64(math.MaxUint32)
	probability := ZeroProbability(uint32(0.02 * scale))

	first := NewRangeEncoder(probability)
	second := NewRangeEncoder(probability)
	for _, bit := range bits {
		first.Encode(bit)
		second.Encode(bit)
	}
	must.Equal(first.Finish(), second.Finish())
}

func TestStreamStartsWithCacheZero(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	encoder := NewRangeEncoder(32768)
	for _, bit := range randomBits(3, 512, 0.5) {
		encoder.Encode(bit)
	}
	coded := encoder.Finish()
	must.True(len(coded) >= 5)
	must.Equal(byte(0), coded[0])
}

func TestSparseStreamsCompress(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	density := 1.0 / 128
	bits := randomBits(21, 1<<16, density)
	encoder := NewRangeEncoder(ZeroProbability(uint32(density * math.MaxUint32)))
	for _, bit := range bits {
		encoder.Encode(bit)
	}
	coded := encoder.Finish()
	must.True(len(coded) < len(bits)/8/4)
}

func TestZeroProbabilityQuantization(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal(uint32(probabilityLimit), ZeroProbability(0))
	must.Equal(uint32(1), ZeroProbability(math.MaxUint32))
	must.Equal(uint32(32768), ZeroProbability(math.MaxUint32/2+1))
}
