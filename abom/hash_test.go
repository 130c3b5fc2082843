package abom_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nickboucher/abom/abom"
	"github.com/nickboucher/abom/hamlet"
)

func TestHashBytesMatchesShakeVectors(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal("7f9c2ba4e0", abom.HashBytes(nil).String())
	must.Equal("7f9c2ba4e0", abom.HashBytes([]byte{}).String())
	must.Equal("5881092dd0", abom.HashBytes([]byte("abc")).String())
}

func TestHashReaderAgreesWithHashBytes(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	hash, err := abom.HashReader(strings.NewReader("abc"))
	must.Nil(err)
	must.Equal(abom.HashBytes([]byte("abc")), hash)
}

func TestHashFileDigestsContents(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	path := filepath.Join(t.TempDir(), "dependency.h")
	must.Nil(os.WriteFile(path, []byte("abc"), 0o644))
	hash, err := abom.HashFile(path)
	must.Nil(err)
	must.Equal("5881092dd0", hash.String())

	_, err = abom.HashFile(filepath.Join(t.TempDir(), "missing.h"))
	must.True(err != nil)
}

func TestParseHashAcceptsNineAndTenNibbles(t *testing.T) {
	tests := []struct {
		input     string
		canonical string
		wantErr   bool
	}{
		{"7f9c2ba4e", "7f9c2ba4e0", false},
		{"7f9c2ba4e0", "7f9c2ba4e0", false},
		{"7f9c2ba4e8", "7f9c2ba4e0", false},
		{"7F9C2BA4E", "7f9c2ba4e0", false},
		{"000000000", "0000000000", false},
		{"fffffffff", "fffffffff0", false},
		{"7f9c2ba4", "", true},
		{"7f9c2ba4e01", "", true},
		{"xyzzyxyzz", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			hash, err := abom.ParseHash(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHash(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && hash.String() != tt.canonical {
				t.Errorf("ParseHash(%q).String() = %q, want %q", tt.input, hash.String(), tt.canonical)
			}
		})
	}
}

func TestHashIndicesAreStable(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	hash, err := abom.ParseHash("7f9c2ba4e")
	must.Nil(err)
	first, second := hash.Indices()
	must.Equal(0x1FE70, first)
	must.Equal(0x2BA4E, second)

	hash, err = abom.ParseHash("5881092dd")
	must.Nil(err)
	first, second = hash.Indices()
	must.Equal(0x16204, first)
	must.Equal(0x092DD, second)
}

func TestPadBitsNeverReachTheIndices(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	padded, err := abom.ParseHash("7f9c2ba4e0")
	must.Nil(err)
	dirty, err := abom.ParseHash("7f9c2ba4ef")
	must.Nil(err)
	must.Equal(padded, dirty)
}
