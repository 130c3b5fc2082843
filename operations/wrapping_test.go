package operations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nickboucher/abom/hamlet"
)

func TestArchiveTargetFindsFirstExistingFile(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	folder := t.TempDir()
	archive := filepath.Join(folder, "libanswer.a")
	member := filepath.Join(folder, "answer.o")
	must.Nil(os.WriteFile(archive, []byte("!<arch>\n"), 0o644))
	must.Nil(os.WriteFile(member, []byte("object"), 0o644))

	found, members, ok := archiveTarget([]string{"rc", archive, member})
	must.True(ok)
	must.Equal(archive, found)
	must.Equal([]string{member}, members)

	_, _, ok = archiveTarget([]string{"rc", filepath.Join(folder, "missing.a")})
	wont.True(ok)
}

func TestAssemblyInputDetection(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	must.True(assemblyInput([]string{"main.c", "boot.s"}))
	must.True(assemblyInput([]string{"vector.S"}))
	wont.True(assemblyInput([]string{"main.c", "main.h"}))
	wont.True(assemblyInput(nil))
}
