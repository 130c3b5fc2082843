package toolchain

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
)

type (
	// Kind classifies a built artifact just far enough to choose the
	// right section embedding strategy for it.
	Kind int
)

const (
	UnknownKind Kind = iota
	ExecutableKind
	ObjectKind
	ArchiveKind
)

const sniffLength = 32

var (
	elfMagic     = []byte{0x7F, 'E', 'L', 'F'}
	archiveMagic = []byte("!<arch>\n")
)

func (it Kind) String() string {
	switch it {
	case ExecutableKind:
		return "executable"
	case ObjectKind:
		return "object"
	case ArchiveKind:
		return "archive"
	default:
		return "unknown"
	}
}

// Classify reads just enough of the file to tell relocatable objects,
// linked executables and libraries, and archives apart. It understands ELF,
// Mach-O (including fat), and ar magic numbers; anything else is unknown.
func Classify(pathname string) (Kind, error) {
	handle, err := os.Open(pathname)
	if err != nil {
		return UnknownKind, err
	}
	defer handle.Close()
	header := make([]byte, sniffLength)
	size, err := io.ReadFull(handle, header)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		header = header[:size]
		err = nil
	}
	if err != nil {
		return UnknownKind, err
	}
	return classify(header), nil
}

func classify(header []byte) Kind {
	switch {
	case bytes.HasPrefix(header, archiveMagic):
		return ArchiveKind
	case bytes.HasPrefix(header, elfMagic):
		return classifyElf(header)
	default:
		return classifyMachO(header)
	}
}

// classifyElf reads e_type at offset 16, honoring the byte order declared
// in the identification bytes.
func classifyElf(header []byte) Kind {
	if len(header) < 18 {
		return UnknownKind
	}
	var order binary.ByteOrder = binary.LittleEndian
	if header[5] == 2 {
		order = binary.BigEndian
	}
	switch order.Uint16(header[16:18]) {
	case 1:
		return ObjectKind
	case 2, 3:
		return ExecutableKind
	default:
		return UnknownKind
	}
}

// classifyMachO reads the filetype field at offset 12 for thin images. Fat
// images are always linked products, so they classify as executables
// without looking inside.
func classifyMachO(header []byte) Kind {
	if len(header) < 16 {
		return UnknownKind
	}
	var order binary.ByteOrder
	switch binary.BigEndian.Uint32(header[:4]) {
	case 0xCAFEBABE, 0xCAFEBABF:
		return ExecutableKind
	case 0xFEEDFACE, 0xFEEDFACF:
		order = binary.BigEndian
	case 0xCEFAEDFE, 0xCFFAEDFE:
		order = binary.LittleEndian
	default:
		return UnknownKind
	}
	switch order.Uint32(header[12:16]) {
	case 0x1:
		return ObjectKind
	case 0x2, 0x6, 0x7, 0x8, 0xB:
		return ExecutableKind
	default:
		return UnknownKind
	}
}
