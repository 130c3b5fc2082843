package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nickboucher/abom/cache"
	"github.com/nickboucher/abom/common"
	"github.com/nickboucher/abom/hamlet"
)

func TestDigestCacheRemembersAcrossSummons(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	defer common.Product.ForceHome("")

	subject := filepath.Join(t.TempDir(), "header.h")
	must.Nil(os.WriteFile(subject, []byte("#pragma once\n"), 0o644))

	digests := cache.SummonDigests()
	wont.Nil(digests)
	_, found := digests.Lookup(subject)
	wont.True(found)

	digests.Remember(subject, "5881092dd0")
	digest, found := digests.Lookup(subject)
	must.True(found)
	must.Equal("5881092dd0", digest)
	must.Nil(digests.Commit())

	reloaded := cache.SummonDigests()
	digest, found = reloaded.Lookup(subject)
	must.True(found)
	must.Equal("5881092dd0", digest)
}

func TestDigestCacheMissesWhenFileChanges(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	defer common.Product.ForceHome("")

	subject := filepath.Join(t.TempDir(), "header.h")
	must.Nil(os.WriteFile(subject, []byte("#pragma once\n"), 0o644))

	digests := cache.SummonDigests()
	digests.Remember(subject, "5881092dd0")
	must.Nil(digests.Commit())

	changed := time.Now().Add(3 * time.Second)
	must.Nil(os.Chtimes(subject, changed, changed))

	reloaded := cache.SummonDigests()
	_, found := reloaded.Lookup(subject)
	wont.True(found)
}

func TestDigestCacheIgnoresMissingFiles(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	defer common.Product.ForceHome("")

	digests := cache.SummonDigests()
	digests.Remember("/no/such/file.h", "5881092dd0")
	_, found := digests.Lookup("/no/such/file.h")
	wont.True(found)
	must.Nil(digests.Commit())
}
