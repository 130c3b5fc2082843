package bloom

import "math"

// The payload coder is an LZMA style binary range coder with 16 bit
// probability precision and carry propagation through a byte cache.
// Encoder and decoder drive a static two-symbol model derived from the
// same quantized probability, so streams decode bit-exactly.

const (
	// ProbabilityBits is the precision of the two-symbol model.
	ProbabilityBits = 16

	probabilityLimit = 1<<ProbabilityBits - 1
	topValue         = 1 << 24
)

// ZeroProbability turns the ones probability of a bit stream, scaled to
// [0, 2^32-1] as carried in serialized headers, into the 16 bit zero
// probability that drives the coder. Degenerate streams are the caller's
// concern; the result never pins a symbol to probability zero.
func ZeroProbability(onesScaled uint32) uint32 {
	zeroes := uint64(math.MaxUint32 - onesScaled)
	scaled := (zeroes<<ProbabilityBits + math.MaxUint32/2) / math.MaxUint32
	if scaled < 1 {
		return 1
	}
	if scaled > probabilityLimit {
		return probabilityLimit
	}
	return uint32(scaled)
}

// RangeEncoder codes single bits against a fixed zero probability.
type RangeEncoder struct {
	probability uint32
	low         uint64
	width       uint32
	cache       byte
	pending     uint64
	coded       []byte
}

func NewRangeEncoder(zeroProbability uint32) *RangeEncoder {
	return &RangeEncoder{
		probability: zeroProbability,
		width:       math.MaxUint32,
		pending:     1,
	}
}

// Encode appends one bit to the stream.
func (it *RangeEncoder) Encode(bit bool) {
	bound := (it.width >> ProbabilityBits) * it.probability
	if bit {
		it.low += uint64(bound)
		it.width -= bound
	} else {
		it.width = bound
	}
	for it.width < topValue {
		it.shiftLow()
		it.width <<= 8
	}
}

// Finish flushes the coder state and returns the complete stream. The
// first byte is always the zero seeded from the initial cache; decoders
// skip it.
func (it *RangeEncoder) Finish() []byte {
	for count := 0; count < 5; count++ {
		it.shiftLow()
	}
	return it.coded
}

func (it *RangeEncoder) shiftLow() {
	if uint32(it.low) < 0xFF000000 || it.low > math.MaxUint32 {
		carry := byte(it.low >> 32)
		it.coded = append(it.coded, it.cache+carry)
		for ; it.pending > 1; it.pending-- {
			it.coded = append(it.coded, 0xFF+carry)
		}
		it.cache = byte(it.low >> 24)
	} else {
		it.pending++
	}
	it.low = uint64(uint32(it.low) << 8)
}

// RangeDecoder decodes a stream produced by RangeEncoder under the same
// zero probability. Reads past the end of the stream yield zero bytes;
// callers know the symbol count from their headers.
type RangeDecoder struct {
	probability uint32
	width       uint32
	code        uint32
	coded       []byte
	at          int
}

func NewRangeDecoder(zeroProbability uint32, coded []byte) *RangeDecoder {
	it := &RangeDecoder{
		probability: zeroProbability,
		width:       math.MaxUint32,
		coded:       coded,
		at:          1,
	}
	for count := 0; count < 4; count++ {
		it.code = it.code<<8 | uint32(it.next())
	}
	return it
}

// Decode removes and returns one bit from the stream.
func (it *RangeDecoder) Decode() bool {
	bound := (it.width >> ProbabilityBits) * it.probability
	bit := it.code >= bound
	if bit {
		it.code -= bound
		it.width -= bound
	} else {
		it.width = bound
	}
	for it.width < topValue {
		it.code = it.code<<8 | uint32(it.next())
		it.width <<= 8
	}
	return bit
}

func (it *RangeDecoder) next() byte {
	if it.at >= len(it.coded) {
		return 0
	}
	value := it.coded[it.at]
	it.at++
	return value
}
