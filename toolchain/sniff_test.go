package toolchain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nickboucher/abom/hamlet"
	"github.com/nickboucher/abom/toolchain"
)

func artifact(t *testing.T, name string, content []byte) string {
	t.Helper()
	pathname := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(pathname, content, 0o644)
	if err != nil {
		t.Fatalf("Could not write fixture %q, reason: %v", name, err)
	}
	return pathname
}

func elfHeader(filetype byte) []byte {
	header := make([]byte, 32)
	copy(header, []byte{0x7F, 'E', 'L', 'F', 2, 1, 1})
	header[16] = filetype
	return header
}

func machHeader(filetype byte) []byte {
	header := make([]byte, 32)
	copy(header, []byte{0xCF, 0xFA, 0xED, 0xFE})
	header[12] = filetype
	return header
}

func TestElfClassification(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	flows := []struct {
		filetype byte
		expected toolchain.Kind
	}{
		{1, toolchain.ObjectKind},
		{2, toolchain.ExecutableKind},
		{3, toolchain.ExecutableKind},
		{4, toolchain.UnknownKind},
	}
	for _, flow := range flows {
		kind, err := toolchain.Classify(artifact(t, "subject", elfHeader(flow.filetype)))
		must.Nil(err)
		must.Equal(flow.expected, kind)
	}
}

func TestMachOClassification(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	flows := []struct {
		filetype byte
		expected toolchain.Kind
	}{
		{0x1, toolchain.ObjectKind},
		{0x2, toolchain.ExecutableKind},
		{0x6, toolchain.ExecutableKind},
		{0x8, toolchain.ExecutableKind},
		{0xA, toolchain.UnknownKind},
	}
	for _, flow := range flows {
		kind, err := toolchain.Classify(artifact(t, "subject", machHeader(flow.filetype)))
		must.Nil(err)
		must.Equal(flow.expected, kind)
	}
}

func TestFatBinariesAreExecutables(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	fat := make([]byte, 32)
	copy(fat, []byte{0xCA, 0xFE, 0xBA, 0xBE, 0, 0, 0, 2})
	kind, err := toolchain.Classify(artifact(t, "universal", fat))
	must.Nil(err)
	must.Equal(toolchain.ExecutableKind, kind)
}

func TestArchiveClassification(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	kind, err := toolchain.Classify(artifact(t, "libdemo.a", []byte("!<arch>\ndemo.o/  ")))
	must.Nil(err)
	must.Equal(toolchain.ArchiveKind, kind)
}

func TestForeignContentIsUnknown(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	kind, err := toolchain.Classify(artifact(t, "notes.txt", []byte("just some text, long enough to fill the sniff window")))
	must.Nil(err)
	must.Equal(toolchain.UnknownKind, kind)

	kind, err = toolchain.Classify(artifact(t, "tiny", []byte{0x7F}))
	must.Nil(err)
	must.Equal(toolchain.UnknownKind, kind)
}

func TestMissingFileClassificationFails(t *testing.T) {
	_, wont := hamlet.Specifications(t)

	_, err := toolchain.Classify(filepath.Join(t.TempDir(), "absent"))
	wont.Nil(err)
}

func TestKindNames(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal("object", toolchain.ObjectKind.String())
	must.Equal("executable", toolchain.ExecutableKind.String())
	must.Equal("archive", toolchain.ArchiveKind.String())
	must.Equal("unknown", toolchain.UnknownKind.String())
}
