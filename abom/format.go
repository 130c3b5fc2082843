package abom

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/nickboucher/abom/bloom"
	"github.com/nickboucher/abom/pathlib"
)

// Wire format, version 1 (little endian):
//   - magic word "ABOM"
//   - protocol version (uint8)
//   - number of Bloom filters n (uint16)
//   - ones probability over the concatenated filters, scaled to
//     [0, 2^32-1] (uint32)
//   - byte length l of the coded blob (uint32)
//   - blob: range coded concatenation of the n filter bit arrays, in
//     filter order, index order. Degenerate probabilities (all zero or
//     all one bits) carry an empty blob.

const (
	// ProtocolVersion is the only wire version this build reads or writes.
	ProtocolVersion = 1
	// HeaderSize is the byte length of the serialized header.
	HeaderSize = 15
	// SidecarSuffix names the detached carrier next to an artifact.
	SidecarSuffix = ".abom"

	minimumBlobSize = 5
)

var magicWord = [4]byte{'A', 'B', 'O', 'M'}

// FormatError marks a malformed payload, as opposed to an I/O failure
// while reading one.
type FormatError struct {
	reason string
}

func (it *FormatError) Error() string {
	return it.reason
}

func formatError(form string, details ...interface{}) error {
	return &FormatError{reason: fmt.Sprintf(form, details...)}
}

// IsFormatError tells payload corruption apart from I/O trouble.
func IsFormatError(err error) bool {
	var marker *FormatError
	return errors.As(err, &marker)
}

// Sidecar returns the detached carrier path for an artifact.
func Sidecar(artifact string) string {
	return artifact + SidecarSuffix
}

// Dump serializes the container. An empty container first materializes
// one empty filter, so every payload carries at least one.
func (it *ABOM) Dump(sink io.Writer) error {
	if len(it.filters) == 0 {
		it.filters = append(it.filters, newFilter())
	}
	if len(it.filters) > math.MaxUint16 {
		return formatError("too many filters to serialize: %d", len(it.filters))
	}
	scaled := scaledProbability(it.Ones(), len(it.filters)*FilterSize)
	var blob []byte
	if scaled > 0 && scaled < math.MaxUint32 {
		encoder := bloom.NewRangeEncoder(bloom.ZeroProbability(scaled))
		for _, filter := range it.filters {
			for index := 0; index < FilterSize; index++ {
				encoder.Encode(filter.Bit(index))
			}
		}
		blob = encoder.Finish()
	}
	header := make([]byte, 0, HeaderSize)
	header = append(header, magicWord[:]...)
	header = append(header, ProtocolVersion)
	header = binary.LittleEndian.AppendUint16(header, uint16(len(it.filters)))
	header = binary.LittleEndian.AppendUint32(header, scaled)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(blob)))
	_, err := sink.Write(header)
	if err != nil {
		return err
	}
	_, err = sink.Write(blob)
	return err
}

// Serialize returns the container as bytes.
func (it *ABOM) Serialize() ([]byte, error) {
	buffer := bytes.Buffer{}
	err := it.Dump(&buffer)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// DumpFile serializes the container into the named file, creating parent
// directories as needed.
func (it *ABOM) DumpFile(path string) error {
	sink, err := pathlib.Create(path)
	if err != nil {
		return err
	}
	defer sink.Close()
	return it.Dump(sink)
}

// Load deserializes a container. Malformed payloads come back as
// FormatError values; reader failures pass through unchanged.
func Load(source io.Reader) (*ABOM, error) {
	header := make([]byte, HeaderSize)
	_, err := io.ReadFull(source, header)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, formatError("truncated header")
	}
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(header[:4], magicWord[:]) {
		return nil, formatError("invalid magic word")
	}
	if header[4] != ProtocolVersion {
		return nil, formatError("unsupported protocol version %d", header[4])
	}
	count := int(binary.LittleEndian.Uint16(header[5:7]))
	scaled := binary.LittleEndian.Uint32(header[7:11])
	length := int(binary.LittleEndian.Uint32(header[11:15]))
	blob := make([]byte, length)
	_, err = io.ReadFull(source, blob)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, formatError("truncated payload, expected %d blob bytes", length)
	}
	if err != nil {
		return nil, err
	}
	container := New()
	if count == 0 {
		if length != 0 {
			return nil, formatError("blob carried for zero filters")
		}
		return container, nil
	}
	if scaled == 0 || scaled == math.MaxUint32 {
		if length != 0 {
			return nil, formatError("degenerate model with a nonempty blob")
		}
		saturated := scaled == math.MaxUint32
		for at := 0; at < count; at++ {
			filter := newFilter()
			if saturated {
				for index := 0; index < FilterSize; index++ {
					filter.SetBit(index)
				}
			}
			container.filters = append(container.filters, filter)
		}
		return container, nil
	}
	if length < minimumBlobSize {
		return nil, formatError("coded blob of %d bytes is too short", length)
	}
	decoder := bloom.NewRangeDecoder(bloom.ZeroProbability(scaled), blob)
	for at := 0; at < count; at++ {
		filter := newFilter()
		for index := 0; index < FilterSize; index++ {
			if decoder.Decode() {
				filter.SetBit(index)
			}
		}
		container.filters = append(container.filters, filter)
	}
	return container, nil
}

// LoadBytes deserializes a container held in memory.
func LoadBytes(payload []byte) (*ABOM, error) {
	return Load(bytes.NewReader(payload))
}

// LoadFile deserializes a container from the named file.
func LoadFile(path string) (*ABOM, error) {
	source, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer source.Close()
	return Load(source)
}

// scaledProbability quantizes ones/total to [0, 2^32-1]. Only truly
// constant bit streams map to the degenerate end values.
func scaledProbability(ones, total int) uint32 {
	if ones <= 0 {
		return 0
	}
	if ones >= total {
		return math.MaxUint32
	}
	scaled := uint32(float64(ones) / float64(total) * math.MaxUint32)
	if scaled == 0 {
		return 1
	}
	if scaled == math.MaxUint32 {
		return math.MaxUint32 - 1
	}
	return scaled
}
