package abom

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/sha3"
)

// Hash is a dependency identity: the leading IndexBits bits of the
// SHAKE128 digest of the file contents. The pad bits of the last byte
// stay zero.
type Hash [IndexBytes]byte

// ParseHash accepts the canonical 10 nibble form and the short 9 nibble
// form without the pad nibble. Pad bits beyond IndexBits are masked away.
func ParseHash(text string) (Hash, error) {
	var hash Hash
	switch len(text) {
	case IndexBits / 4:
		text += "0"
	case IndexBytes * 2:
	default:
		return hash, fmt.Errorf("hash must be %d or %d hex characters, not %d", IndexBits/4, IndexBytes*2, len(text))
	}
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return hash, fmt.Errorf("hash %q is not hexadecimal", text)
	}
	copy(hash[:], decoded)
	hash[IndexBytes-1] &= 0xF0
	return hash, nil
}

// String formats the hash in its canonical 10 nibble form, the pad nibble
// always zero.
func (it Hash) String() string {
	return hex.EncodeToString(it[:])
}

// Indices unpacks the two Bloom filter probe indices carried in the hash,
// most significant bit first.
func (it Hash) Indices() (int, int) {
	value := uint64(it[0])<<32 | uint64(it[1])<<24 | uint64(it[2])<<16 | uint64(it[3])<<8 | uint64(it[4])
	return int(value >> 22 & (FilterSize - 1)), int(value >> 4 & (FilterSize - 1))
}

// HashBytes digests in-memory content into its hash.
func HashBytes(content []byte) Hash {
	var hash Hash
	sha3.ShakeSum128(hash[:], content)
	hash[IndexBytes-1] &= 0xF0
	return hash
}

// HashReader digests a content stream into its hash.
func HashReader(source io.Reader) (Hash, error) {
	var hash Hash
	shake := sha3.NewShake128()
	_, err := io.Copy(shake, source)
	if err != nil {
		return hash, err
	}
	_, err = io.ReadFull(shake, hash[:])
	if err != nil {
		return hash, err
	}
	hash[IndexBytes-1] &= 0xF0
	return hash, nil
}

// HashFile digests the named file into its hash.
func HashFile(path string) (Hash, error) {
	source, err := os.Open(path)
	if err != nil {
		return Hash{}, err
	}
	defer source.Close()
	return HashReader(source)
}
