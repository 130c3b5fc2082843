package operations_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nickboucher/abom/abom"
	"github.com/nickboucher/abom/hamlet"
	"github.com/nickboucher/abom/operations"
)

func TestResolveDependencyAcceptsHashes(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	hash, err := operations.ResolveDependency("5881092dd")
	must.Nil(err)
	must.Equal("5881092dd0", hash.String())

	padded, err := operations.ResolveDependency("5881092dd0")
	must.Nil(err)
	must.Equal(hash, padded)
}

func TestResolveDependencyHashesFiles(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	subject := filepath.Join(t.TempDir(), "library.h")
	must.Nil(os.WriteFile(subject, []byte("int answer(void);\n"), 0o644))

	expected, err := abom.HashFile(subject)
	must.Nil(err)

	hash, err := operations.ResolveDependency(subject)
	must.Nil(err)
	must.Equal(expected, hash)
}

func TestResolveDependencyRejectsGarbage(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	_, err := operations.ResolveDependency("not-a-hash-nor-a-file")
	wont.Nil(err)
	must.True(len(err.Error()) > 0)

	_, err = operations.ResolveDependency("zzzzzzzzz")
	wont.Nil(err)
}
